package rest

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/service"
)

const (
	userContextKey   = "user"
	claimsContextKey = "claims"

	limiterCleanupInterval = 5 * time.Minute
)

// observe - writes one log line and the request metrics for every request.
func (that *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		started := time.Now()

		if err := next(ctx); err != nil {
			ctx.Error(err)
		}

		elapsed := time.Since(started)
		req := ctx.Request()
		status := ctx.Response().Status

		route := ctx.Path()
		if route == "" {
			route = "unmatched"
		}

		that.metrics.ObserveRequest(req.Method, route, status, elapsed)

		that.logger.Info("request",
			"method", req.Method,
			"path", req.URL.Path,
			"route", route,
			"status", status,
			"duration", elapsed.String(),
			"remote_ip", ctx.RealIP(),
		)

		return nil
	}
}

// authenticate - requires a valid bearer token and puts the user and its claims into the context.
func (that *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token, ok := bearerToken(ctx.Request())
		if !ok {
			return apperror.ErrUnauthorized
		}

		user, claims, err := that.users.Authenticate(ctx.Request().Context(), token)
		if err != nil {
			return err
		}

		ctx.Set(userContextKey, user)
		ctx.Set(claimsContextKey, claims)

		return next(ctx)
	}
}

func bearerToken(req *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(req.Header.Get(echo.HeaderAuthorization), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}

	return strings.TrimSpace(token), true
}

func currentUser(ctx echo.Context) *entity.User {
	user, _ := ctx.Get(userContextKey).(*entity.User)
	return user
}

func currentClaims(ctx echo.Context) *service.Claims {
	claims, _ := ctx.Get(claimsContextKey).(*service.Claims)
	return claims
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// rateLimiter - token bucket per client ip.
type rateLimiter struct {
	limit rate.Limit
	burst int

	mu          sync.Mutex
	clients     map[string]*clientLimiter
	lastCleanup time.Time
}

func newRateLimiter(rps float64, burst int) *rateLimiter {
	return &rateLimiter{
		limit:       rate.Limit(rps),
		burst:       burst,
		clients:     make(map[string]*clientLimiter),
		lastCleanup: time.Now(),
	}
}

func (that *rateLimiter) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if that.limit <= 0 {
			return next(ctx)
		}

		if !that.allow(ctx.RealIP()) {
			retryAfter := max(int(math.Ceil(1/float64(that.limit))), 1)
			ctx.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))

			return ctx.JSON(http.StatusTooManyRequests, errorResponse{Detail: "Too many requests"})
		}

		return next(ctx)
	}
}

func (that *rateLimiter) allow(key string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	now := time.Now()

	if now.Sub(that.lastCleanup) > limiterCleanupInterval {
		for client, entry := range that.clients {
			if now.Sub(entry.lastAccess) > 2*limiterCleanupInterval {
				delete(that.clients, client)
			}
		}

		that.lastCleanup = now
	}

	entry, ok := that.clients[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(that.limit, that.burst)}
		that.clients[key] = entry
	}

	entry.lastAccess = now

	return entry.limiter.Allow()
}
