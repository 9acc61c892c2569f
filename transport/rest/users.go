package rest

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
)

type credentialsRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func newTokenResponse(token string) tokenResponse {
	return tokenResponse{AccessToken: token, TokenType: "bearer"}
}

func bindCredentials(ctx echo.Context) (*credentialsRequest, error) {
	var req credentialsRequest
	if err := ctx.Bind(&req); err != nil {
		return nil, fmt.Errorf("%w: malformed request body", apperror.ErrValidation)
	}

	return &req, nil
}

func (that *Server) Register(ctx echo.Context) error {
	req, err := bindCredentials(ctx)
	if err != nil {
		return err
	}

	user, err := that.users.Register(ctx.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}

	return ctx.JSON(http.StatusCreated, user)
}

func (that *Server) Login(ctx echo.Context) error {
	req, err := bindCredentials(ctx)
	if err != nil {
		return err
	}

	token, _, err := that.users.Login(ctx.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fmt.Errorf("failed to login: %w", err)
	}

	return ctx.JSON(http.StatusOK, newTokenResponse(token))
}

func (that *Server) Logout(ctx echo.Context) error {
	if err := that.users.Logout(ctx.Request().Context(), currentClaims(ctx)); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (that *Server) Me(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, currentUser(ctx))
}

func (that *Server) MyStats(ctx echo.Context) error {
	stats, err := that.games.Stats(ctx.Request().Context(), currentUser(ctx).ID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, stats)
}
