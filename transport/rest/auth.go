package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/pkg"
)

const (
	urlUserInfo = "https://www.googleapis.com/oauth2/v2/userinfo"

	sessionName     = "session"
	sessionStateKey = "state"
	stateMaxAge     = 600
)

type AuthHandler interface {
	GoogleLogin(ctx echo.Context) error
	GoogleCallback(ctx echo.Context) error
}

type emailLogin interface {
	LoginWithEmail(ctx context.Context, email string) (string, *entity.User, error)
}

type authHandler struct {
	logger *slog.Logger

	oauthConfig *oauth2.Config
	userInfoURL string

	user emailLogin
}

func NewAuth(logger *slog.Logger, conf *config.Config, user emailLogin) AuthHandler {
	oauthConfig := &oauth2.Config{
		ClientID:     conf.GoogleOAuth.ClientID,
		ClientSecret: conf.GoogleOAuth.ClientSecret,

		RedirectURL: conf.GoogleOAuth.RedirectURL,

		Scopes:   conf.GoogleOAuth.Scopes,
		Endpoint: google.Endpoint,
	}

	return &authHandler{
		logger:      logger.With("component", "googleAuth"),
		oauthConfig: oauthConfig,
		userInfoURL: urlUserInfo,
		user:        user,
	}
}

func (that *authHandler) GoogleLogin(ctx echo.Context) error {
	log := that.logger.With("method", "GoogleLogin")

	stateToken, err := pkg.GenerateNewSessionID()
	if err != nil {
		return fmt.Errorf("failed to generate state token: %w", err)
	}

	userSession, err := session.Get(sessionName, ctx)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	userSession.Options.MaxAge = stateMaxAge
	userSession.Options.HttpOnly = true
	userSession.Values[sessionStateKey] = stateToken

	if err = userSession.Save(ctx.Request(), ctx.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	log.Debug("redirecting to google")

	// generate authURL for authorization with session token.
	authURL := that.oauthConfig.AuthCodeURL(stateToken)
	return ctx.Redirect(http.StatusTemporaryRedirect, authURL)
}

func (that *authHandler) GoogleCallback(ctx echo.Context) error {
	log := that.logger.With("method", "GoogleCallBack")

	// get state from session.
	userSession, err := session.Get(sessionName, ctx)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	// check existence of the state and it`s type.
	storedState, ok := userSession.Values[sessionStateKey].(string)
	if !ok || storedState == "" {
		log.Warn("state not found in session")
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid session state")
	}

	// state is single use
	delete(userSession.Values, sessionStateKey)
	if err = userSession.Save(ctx.Request(), ctx.Response()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	state := ctx.QueryParam("state")
	code := ctx.QueryParam("code")

	if state != storedState {
		log.Warn("invalid OAuth state")
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid OAuth state")
	}

	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Code not found in request")
	}

	// exchange code for token.
	token, err := that.oauthConfig.Exchange(ctx.Request().Context(), code)
	if err != nil {
		return fmt.Errorf("failed to exchange code for token: %w", err)
	}

	// getting user information
	client := that.oauthConfig.Client(ctx.Request().Context(), token)
	email, err := that.getUserEmail(client)
	if err != nil {
		return err
	}

	jwtToken, _, err := that.user.LoginWithEmail(ctx.Request().Context(), email)
	if err != nil {
		return fmt.Errorf("failed to login with email: %w", err)
	}

	return ctx.JSON(http.StatusOK, newTokenResponse(jwtToken))
}

func (that *authHandler) getUserEmail(client *http.Client) (string, error) {
	resp, err := client.Get(that.userInfoURL)
	if err != nil {
		return "", fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to get user info: status %d", resp.StatusCode)
	}

	var userInfo struct {
		Email         string `json:"email"`
		VerifiedEmail bool   `json:"verified_email"`
	}

	if err = json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return "", fmt.Errorf("failed to decode user info: %w", err)
	}

	if userInfo.Email == "" || !userInfo.VerifiedEmail {
		return "", echo.NewHTTPError(http.StatusBadRequest, "Google account has no verified email")
	}

	return userInfo.Email, nil
}
