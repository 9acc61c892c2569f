package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-api/internal/service"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 30 * time.Second
)

type userUseCase interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
	Login(ctx context.Context, username, password string) (string, *entity.User, error)
	LoginWithEmail(ctx context.Context, email string) (string, *entity.User, error)
	Authenticate(ctx context.Context, token string) (*entity.User, *service.Claims, error)
	Logout(ctx context.Context, claims *service.Claims) error
}

type gameUseCase interface {
	CreateGame(ctx context.Context, userID, gameType, difficulty, mark string) (*entity.Game, error)
	JoinGame(ctx context.Context, userID, gameID string) (*entity.Game, error)
	GetGame(ctx context.Context, userID, gameID string) (*entity.Game, error)
	ListGames(ctx context.Context, userID string, limit, skip int) ([]*entity.Game, error)
	MakeTurn(ctx context.Context, userID, gameID string, cell int) (*entity.Game, error)
	Resign(ctx context.Context, userID, gameID string) (*entity.Game, error)
	DeleteGame(ctx context.Context, userID, gameID string) error
	DeleteAllGames(ctx context.Context, userID string) (int64, error)
	Stats(ctx context.Context, userID string) (*entity.Stats, error)
}

type websocketHandler interface {
	Serve(writer http.ResponseWriter, req *http.Request, gameID string)
}

type Server struct {
	logger  *slog.Logger
	metrics *metrics.Metrics

	echo *echo.Echo
	srv  *http.Server

	users userUseCase
	games gameUseCase
}

func New(logger *slog.Logger, conf *config.Config, metrics *metrics.Metrics, users userUseCase, games gameUseCase, ws websocketHandler) *Server {
	that := &Server{
		logger:  logger.With("component", "rest"),
		metrics: metrics,
		echo:    echo.New(),
		users:   users,
		games:   games,
	}

	that.echo.HideBanner = true
	that.echo.HidePort = true
	that.echo.HTTPErrorHandler = that.handleError

	that.echo.Use(that.observe)
	that.echo.Use(middleware.Recover())

	that.echo.GET("/", that.Root)
	that.echo.GET("/health", that.Health)
	that.echo.GET("/ping", that.Ping)
	that.echo.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	if ws != nil {
		that.echo.GET("/ws/:game_id", func(ctx echo.Context) error {
			ws.Serve(ctx.Response(), ctx.Request(), ctx.Param("game_id"))
			return nil
		})
	}

	limiter := newRateLimiter(conf.RateLimit.RPS, conf.RateLimit.Burst)
	api := that.echo.Group("/api/v1", limiter.Middleware)

	auth := that.authenticate

	usersGroup := api.Group("/users")
	usersGroup.POST("/auth/register", that.Register)
	usersGroup.POST("/auth/login", that.Login)
	usersGroup.POST("/auth/logout", that.Logout, auth)
	usersGroup.GET("/me", that.Me, auth)
	usersGroup.GET("/me/stats", that.MyStats, auth)

	if conf.GoogleOAuth.Enabled() {
		google := NewAuth(logger, conf, users)

		googleGroup := api.Group("/auth/google", session.Middleware(sessions.NewCookieStore([]byte(conf.SessionSecret))))
		googleGroup.GET("/login", google.GoogleLogin)
		googleGroup.GET("/callback", google.GoogleCallback)
	}

	gamesGroup := api.Group("/games", auth)
	gamesGroup.POST("", that.CreateGame)
	gamesGroup.GET("", that.ListGames)
	gamesGroup.DELETE("", that.DeleteAllGames)
	gamesGroup.GET("/:id", that.GetGame)
	gamesGroup.DELETE("/:id", that.DeleteGame)
	gamesGroup.POST("/:id/join", that.JoinGame)
	gamesGroup.POST("/:id/move/:position", that.MakeTurn)
	gamesGroup.POST("/:id/resign", that.Resign)

	return that
}

func (that *Server) Handler() http.Handler {
	return that.echo
}

// Start - serves HTTP until Shutdown is called.
func (that *Server) Start(port string) error {
	that.srv = &http.Server{
		Addr:         ":" + port,
		Handler:      that.echo,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	that.logger.Info("http server started", "port", port)

	if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if that.srv == nil {
		return nil
	}

	if err := that.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
