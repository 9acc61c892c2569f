package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type userRepository struct {
	conn *sql.DB
}

func NewUserRepository(conn *sql.DB) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

const userColumns = `id, username, email, password_hash, is_active, created_at`

func (that *userRepository) Save(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (` + userColumns + `) VALUES (?, ?, ?, ?, ?, ?)`

	email := sql.NullString{String: user.Email, Valid: user.Email != ""}

	_, err := that.conn.ExecContext(ctx, query,
		user.ID, user.Username, email, user.PasswordHash, user.IsActive, toMillis(user.CreatedAt),
	)
	if isUniqueViolation(err) {
		return apperror.ErrUserAlreadyExists
	}

	if err != nil {
		return fmt.Errorf("can't save user: %w", err)
	}

	return nil
}

func (that *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return that.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

func (that *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return that.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
}

func (that *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return that.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

func (that *userRepository) findOne(ctx context.Context, query string, arg string) (*entity.User, error) {
	var (
		user      entity.User
		email     sql.NullString
		createdAt int64
	)

	err := that.conn.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &email, &user.PasswordHash, &user.IsActive, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	user.Email = email.String
	user.CreatedAt = fromMillis(createdAt)

	return &user, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE || sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
