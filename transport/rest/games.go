package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type createGameRequest struct {
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
	Mark       string `json:"mark"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (that *Server) CreateGame(ctx echo.Context) error {
	var req createGameRequest
	if err := ctx.Bind(&req); err != nil {
		return fmt.Errorf("%w: malformed request body", apperror.ErrValidation)
	}

	if req.Type == "" {
		req.Type = entity.WithBotType
	}

	game, err := that.games.CreateGame(ctx.Request().Context(), currentUser(ctx).ID, req.Type, req.Difficulty, req.Mark)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, game)
}

func (that *Server) ListGames(ctx echo.Context) error {
	limit, err := intQueryParam(ctx, "limit")
	if err != nil {
		return err
	}

	skip, err := intQueryParam(ctx, "skip")
	if err != nil {
		return err
	}

	games, err := that.games.ListGames(ctx.Request().Context(), currentUser(ctx).ID, limit, skip)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, games)
}

func (that *Server) GetGame(ctx echo.Context) error {
	game, err := that.games.GetGame(ctx.Request().Context(), currentUser(ctx).ID, ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *Server) JoinGame(ctx echo.Context) error {
	game, err := that.games.JoinGame(ctx.Request().Context(), currentUser(ctx).ID, ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *Server) MakeTurn(ctx echo.Context) error {
	position, err := strconv.Atoi(ctx.Param("position"))
	if err != nil {
		return fmt.Errorf("%w: position must be a number from 0 to 8", apperror.ErrValidation)
	}

	game, err := that.games.MakeTurn(ctx.Request().Context(), currentUser(ctx).ID, ctx.Param("id"), position)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *Server) Resign(ctx echo.Context) error {
	game, err := that.games.Resign(ctx.Request().Context(), currentUser(ctx).ID, ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, game)
}

func (that *Server) DeleteGame(ctx echo.Context) error {
	if err := that.games.DeleteGame(ctx.Request().Context(), currentUser(ctx).ID, ctx.Param("id")); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "Game deleted"})
}

func (that *Server) DeleteAllGames(ctx echo.Context) error {
	if _, err := that.games.DeleteAllGames(ctx.Request().Context(), currentUser(ctx).ID); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "All games deleted"})
}

func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", apperror.ErrValidation, name)
	}

	return value, nil
}
