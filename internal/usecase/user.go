package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-api/internal/service"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 32
	minPasswordLength = 6
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

type UserUseCase interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
	Login(ctx context.Context, username, password string) (string, *entity.User, error)
	LoginWithEmail(ctx context.Context, email string) (string, *entity.User, error)
	Authenticate(ctx context.Context, token string) (*entity.User, *service.Claims, error)
	Logout(ctx context.Context, claims *service.Claims) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

type userRepoDep interface {
	Save(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type authServiceDep interface {
	HashPassword(password string) (string, error)
	CheckPassword(hash, password string) bool
	GenerateToken(user *entity.User) (string, error)
	ParseToken(ctx context.Context, token string) (*service.Claims, error)
	RevokeToken(ctx context.Context, claims *service.Claims) error
}

type userUseCase struct {
	logger *slog.Logger

	repo userRepoDep
	auth authServiceDep
}

func NewUserUseCase(logger *slog.Logger, repo userRepoDep, auth authServiceDep) UserUseCase {
	return &userUseCase{
		logger: logger.With("component", "userUseCase"),
		repo:   repo,
		auth:   auth,
	}
}

func (that *userUseCase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	log := that.logger.With("method", "Register")

	username = strings.TrimSpace(username)
	if err := ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	hash, err := that.auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := that.newUser(username, "", hash)
	if err != nil {
		return nil, err
	}

	if err = that.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user into storage: %w", err)
	}

	log.Info("user registered", "userID", user.ID)

	return user, nil
}

func (that *userUseCase) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	user, err := that.repo.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, apperror.ErrNotFound) {
		return "", nil, apperror.ErrInvalidCredentials
	}

	if err != nil {
		return "", nil, fmt.Errorf("failed to find user into storage: %w", err)
	}

	if !user.IsActive || !that.auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, apperror.ErrInvalidCredentials
	}

	return that.issueToken(user)
}

// LoginWithEmail - signs in a user confirmed by an external provider, creating the account on first visit.
func (that *userUseCase) LoginWithEmail(ctx context.Context, email string) (string, *entity.User, error) {
	log := that.logger.With("method", "LoginWithEmail")

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", nil, fmt.Errorf("%w: email is required", apperror.ErrValidation)
	}

	user, err := that.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return "", nil, fmt.Errorf("failed to find user into storage: %w", err)
	}

	if user == nil {
		if user, err = that.createEmailUser(ctx, email); err != nil {
			return "", nil, err
		}

		log.Info("user created from email", "userID", user.ID)
	}

	if !user.IsActive {
		return "", nil, apperror.ErrInvalidCredentials
	}

	return that.issueToken(user)
}

func (that *userUseCase) createEmailUser(ctx context.Context, email string) (*entity.User, error) {
	username := UsernameFromEmail(email)

	user, err := that.newUser(username, email, "")
	if err != nil {
		return nil, err
	}

	err = that.repo.Save(ctx, user)
	if errors.Is(err, apperror.ErrUserAlreadyExists) {
		// name taken, retry once with a suffix from the new id
		user.Username = username[:min(len(username), maxUsernameLength-9)] + "-" + user.ID[:8]
		err = that.repo.Save(ctx, user)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to save user into storage: %w", err)
	}

	return user, nil
}

// Authenticate - resolves a bearer token into an active user.
func (that *userUseCase) Authenticate(ctx context.Context, token string) (*entity.User, *service.Claims, error) {
	claims, err := that.auth.ParseToken(ctx, token)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse token: %w", err)
	}

	user, err := that.repo.FindByID(ctx, claims.UserID())
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, nil, apperror.ErrUnauthorized
	}

	if err != nil {
		return nil, nil, fmt.Errorf("failed to find user into storage: %w", err)
	}

	if !user.IsActive {
		return nil, nil, apperror.ErrUnauthorized
	}

	return user, claims, nil
}

func (that *userUseCase) Logout(ctx context.Context, claims *service.Claims) error {
	if err := that.auth.RevokeToken(ctx, claims); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}

	return nil
}

func (that *userUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := that.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

func (that *userUseCase) issueToken(user *entity.User) (string, *entity.User, error) {
	token, err := that.auth.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

func (that *userUseCase) newUser(username, email, passwordHash string) (*entity.User, error) {
	userID, err := pkg.GenerateUserID()
	if err != nil {
		return nil, fmt.Errorf("error generating user ID: %w", err)
	}

	return &entity.User{
		ID:           userID,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func ValidateCredentials(username, password string) error {
	if len(username) < minUsernameLength || len(username) > maxUsernameLength {
		return fmt.Errorf("%w: username must be %d to %d characters", apperror.ErrValidation, minUsernameLength, maxUsernameLength)
	}

	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("%w: username may contain only letters, digits, '_', '.' and '-'", apperror.ErrValidation)
	}

	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", apperror.ErrValidation, minPasswordLength)
	}

	return nil
}

// UsernameFromEmail - builds a valid username out of the local part of an email.
func UsernameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var builder strings.Builder
	for _, r := range local {
		if r < 128 && usernamePattern.MatchString(string(r)) {
			builder.WriteRune(r)
		}
	}

	username := builder.String()
	if len(username) > maxUsernameLength {
		username = username[:maxUsernameLength]
	}

	for len(username) < minUsernameLength {
		username += "_"
	}

	return username
}
