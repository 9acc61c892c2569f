package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	Update(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
	StatsByUser(ctx context.Context, userID string) (*entity.Stats, error)
}

type dbGame struct {
	conn *sql.DB
}

func NewGameRepository(conn *sql.DB) GameRepository {
	return &dbGame{
		conn: conn,
	}
}

const gameColumns = `id, owner_id, player_x, player_o, type, difficulty, board, turn, winner, status, version, created_at, updated_at`

func (that *dbGame) Create(ctx context.Context, game *entity.Game) error {
	board, err := json.Marshal(game.Board)
	if err != nil {
		return fmt.Errorf("could not marshal board: %w", err)
	}

	query := `INSERT INTO games (` + gameColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = that.conn.ExecContext(ctx, query,
		game.ID, game.OwnerID, game.PlayerX, game.PlayerO, game.Type, game.Difficulty,
		string(board), game.Turn, game.Winner, game.Status, game.Version,
		toMillis(game.CreatedAt), toMillis(game.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}

	return nil
}

// Update - saves game if nobody else changed it since it was read, and bumps its version.
func (that *dbGame) Update(ctx context.Context, game *entity.Game) error {
	board, err := json.Marshal(game.Board)
	if err != nil {
		return fmt.Errorf("could not marshal board: %w", err)
	}

	updatedAt := time.Now().UTC()

	query := `UPDATE games
		SET player_x = ?, player_o = ?, board = ?, turn = ?, winner = ?, status = ?, version = version + 1, updated_at = ?
		WHERE id = ? AND version = ?`

	result, err := that.conn.ExecContext(ctx, query,
		game.PlayerX, game.PlayerO, string(board), game.Turn, game.Winner, game.Status, toMillis(updatedAt),
		game.ID, game.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		if _, err = that.GetByID(ctx, game.ID); err != nil {
			return err
		}

		return apperror.ErrConcurrentUpdate
	}

	game.Version++
	game.UpdatedAt = updatedAt

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = ?`

	game, err := scanGame(that.conn.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *dbGame) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games
		WHERE owner_id = ? OR player_x = ? OR player_o = ?
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?`

	rows, err := that.conn.QueryContext(ctx, query, userID, userID, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	games := make([]*entity.Game, 0, limit)
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}

		games = append(games, game)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate games: %w", err)
	}

	return games, nil
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	result, err := that.conn.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return apperror.ErrGameNotFound
	}

	return nil
}

func (that *dbGame) DeleteByOwner(ctx context.Context, ownerID string) (int64, error) {
	result, err := that.conn.ExecContext(ctx, `DELETE FROM games WHERE owner_id = ?`, ownerID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete games by owner: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}

func (that *dbGame) StatsByUser(ctx context.Context, userID string) (*entity.Stats, error) {
	query := `SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN (player_x = ? AND winner = 'X') OR (player_o = ? AND winner = 'O') THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN winner = '-' THEN 1 ELSE 0 END), 0)
		FROM games
		WHERE status = 'finished' AND (player_x = ? OR player_o = ?)`

	var stats entity.Stats

	err := that.conn.QueryRowContext(ctx, query, userID, userID, userID, userID).Scan(&stats.Played, &stats.Wins, &stats.Draws)
	if err != nil {
		return nil, fmt.Errorf("failed to count games: %w", err)
	}

	stats.Losses = stats.Played - stats.Wins - stats.Draws

	return &stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (*entity.Game, error) {
	var (
		game                 entity.Game
		board                string
		createdAt, updatedAt int64
	)

	err := row.Scan(
		&game.ID, &game.OwnerID, &game.PlayerX, &game.PlayerO, &game.Type, &game.Difficulty,
		&board, &game.Turn, &game.Winner, &game.Status, &game.Version, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal([]byte(board), &game.Board); err != nil {
		return nil, fmt.Errorf("failed to unmarshal board: %w", err)
	}

	game.CreatedAt = fromMillis(createdAt)
	game.UpdatedAt = fromMillis(updatedAt)

	return &game, nil
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}
