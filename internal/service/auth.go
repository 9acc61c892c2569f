package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type AuthService interface {
	HashPassword(password string) (string, error)
	CheckPassword(hash, password string) bool

	GenerateToken(user *entity.User) (string, error)
	ParseToken(ctx context.Context, token string) (*Claims, error)
	RevokeToken(ctx context.Context, claims *Claims) error
}

// Claims - payload of an access token. Subject holds the user id.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func (that *Claims) UserID() string {
	return that.Subject
}

type tokenRepo interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type authServiceImpl struct {
	secretKey []byte
	ttl       time.Duration
	tokenRepo tokenRepo
}

func NewAuthService(secretKey string, ttl time.Duration, tokenRepo tokenRepo) AuthService {
	return &authServiceImpl{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		tokenRepo: tokenRepo,
	}
}

func (that *authServiceImpl) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

func (that *authServiceImpl) CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (that *authServiceImpl) GenerateToken(user *entity.User) (string, error) {
	now := time.Now()

	claims := &Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(that.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(that.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (that *authServiceImpl) ParseToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return that.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrUnauthorized, err)
	}

	if claims.Subject == "" || claims.ID == "" {
		return nil, fmt.Errorf("%w: incomplete claims", apperror.ErrUnauthorized)
	}

	revoked, err := that.tokenRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}

	if revoked {
		return nil, fmt.Errorf("%w: token revoked", apperror.ErrUnauthorized)
	}

	return claims, nil
}

func (that *authServiceImpl) RevokeToken(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.ExpiresAt == nil {
		return errors.New("token has no expiry")
	}

	if err := that.tokenRepo.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	return nil
}
