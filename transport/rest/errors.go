package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

var errorStatuses = []struct {
	err    error
	status int
}{
	{apperror.ErrValidation, http.StatusBadRequest},
	{apperror.ErrInvalidCell, http.StatusBadRequest},
	{apperror.ErrCellOccupied, http.StatusBadRequest},
	{apperror.ErrNotYourTurn, http.StatusBadRequest},
	{apperror.ErrGameFinished, http.StatusBadRequest},
	{apperror.ErrGameIsNotStarted, http.StatusBadRequest},
	{apperror.ErrInvalidGameType, http.StatusBadRequest},
	{apperror.ErrInvalidDifficulty, http.StatusBadRequest},
	{apperror.ErrInvalidMark, http.StatusBadRequest},
	{apperror.ErrInvalidCredentials, http.StatusUnauthorized},
	{apperror.ErrUnauthorized, http.StatusUnauthorized},
	{apperror.ErrNotParticipant, http.StatusForbidden},
	{apperror.ErrNotGameOwner, http.StatusForbidden},
	{apperror.ErrGameNotFound, http.StatusNotFound},
	{apperror.ErrNotFound, http.StatusNotFound},
	{apperror.ErrUserAlreadyExists, http.StatusConflict},
	{apperror.ErrConcurrentUpdate, http.StatusConflict},
	{apperror.ErrGameIsFull, http.StatusConflict},
}

// StatusOf - maps an application error to the HTTP status and the message shown to the client.
func StatusOf(err error) (int, string) {
	for _, known := range errorStatuses {
		if !errors.Is(err, known.err) {
			continue
		}

		// validation errors carry the reason after the sentinel
		if known.err == apperror.ErrValidation {
			return known.status, validationDetail(err)
		}

		return known.status, known.err.Error()
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

func validationDetail(err error) string {
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		if errors.Unwrap(unwrapped) == apperror.ErrValidation {
			return unwrapped.Error()
		}
	}

	return apperror.ErrValidation.Error()
}

func (that *Server) handleError(err error, ctx echo.Context) {
	log := that.logger.With("method", "handleError")

	if ctx.Response().Committed {
		return
	}

	var (
		status int
		detail string
		httpErr *echo.HTTPError
	)

	if errors.As(err, &httpErr) {
		status = httpErr.Code
		detail = http.StatusText(status)
		if message, ok := httpErr.Message.(string); ok {
			detail = message
		}
	} else {
		status, detail = StatusOf(err)
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed", "path", ctx.Path(), "error", err)
	}

	if status == http.StatusUnauthorized {
		ctx.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}

	if err = ctx.JSON(status, errorResponse{Detail: detail}); err != nil {
		log.Error("failed to write error response", "error", err)
	}
}
