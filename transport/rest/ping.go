package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (that *Server) Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

func (that *Server) Root(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"message": "API is running",
	})
}

func (that *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": float64(time.Now().UnixMicro()) / 1e6,
	})
}
