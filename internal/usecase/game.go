package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-api/internal/pkg"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type GameUseCase interface {
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

type gameRepoDep interface {
	Create(ctx context.Context, game *entity.Game) error
	Update(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
	StatsByUser(ctx context.Context, userID string) (*entity.Stats, error)
}

type botServiceDep interface {
	MakeTurn(game *entity.Game) error
}

type eventPublisherDep interface {
	Publish(ctx context.Context, event *entity.GameEvent) error
}

type gameUseCase struct {
	logger  *slog.Logger
	metrics *metrics.Metrics

	gameRepo gameRepoDep
	bot      botServiceDep
	events   eventPublisherDep
}

func NewGameUseCase(logger *slog.Logger, metrics *metrics.Metrics, gameRepo gameRepoDep, bot botServiceDep, events eventPublisherDep) GameUseCase {
	return &gameUseCase{
		logger:  logger.With("component", "gameUseCase"),
		metrics: metrics,

		gameRepo: gameRepo,
		bot:      bot,
		events:   events,
	}
}

func (that *gameUseCase) CreateGame(ctx context.Context, userID, gameType, difficulty, mark string) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame", "userID", userID)

	if !entity.IsValidGameType(gameType) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidGameType, gameType)
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	var game *entity.Game

	switch gameType {
	case entity.WithBotType:
		game, err = that.newBotGame(gameID, userID, difficulty, mark)
	default:
		game = entity.NewGame(gameID, entity.PvPType, "", userID)
		game.PlayerX = userID
	}

	if err != nil {
		return nil, err
	}

	if err = that.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.metrics.GameCreated(game.Type)

	log.Info("game created", "gameID", game.ID, "type", game.Type)

	return game, nil
}

func (that *gameUseCase) newBotGame(gameID, userID, difficulty, mark string) (*entity.Game, error) {
	if difficulty == "" {
		difficulty = entity.EasyDifficulty
	}

	if !entity.IsValidDifficulty(difficulty) {
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidDifficulty, difficulty)
	}

	game := entity.NewGame(gameID, entity.WithBotType, difficulty, userID)

	switch mark {
	case "":
		mark, _ = game.GetRandomMarks()
	case entity.PlayerX, entity.PlayerO:
	default:
		return nil, apperror.ErrInvalidMark
	}

	_ = game.Seat(userID, mark)
	_ = game.Seat(entity.BotPlayerID, entity.Opponent(mark))
	game.Status = entity.StatusOngoing

	// bot with X opens the game
	if game.BotMark() == game.Turn {
		if err := that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("failed to make bot turn: %w", err)
		}

		that.metrics.MovesMade(1)
	}

	return game, nil
}

func (that *gameUseCase) JoinGame(ctx context.Context, userID, gameID string) (*entity.Game, error) {
	log := that.logger.With("method", "JoinGame", "userID", userID, "gameID", gameID)

	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if game.IsParticipant(userID) {
		return game, nil
	}

	mark := game.FreeMark()
	if !game.IsPvP() || !game.IsWaiting() || mark == "" {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameIsFull, gameID)
	}

	_ = game.Seat(userID, mark)
	game.Status = entity.StatusOngoing

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.publish(ctx, &entity.GameEvent{
		Action: entity.EventPlayerJoined,
		GameID: game.ID,
		Game:   game,
		UserID: userID,
	})
	that.publish(ctx, entity.NewGameStateEvent(game))

	log.Info("player joined game", "mark", mark)

	return game, nil
}

// GetGame - returns the game only to its participants, others get ErrGameNotFound.
func (that *gameUseCase) GetGame(ctx context.Context, userID, gameID string) (*entity.Game, error) {
	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.IsParticipant(userID) && game.OwnerID != userID {
		return nil, apperror.ErrGameNotFound
	}

	return game, nil
}

func (that *gameUseCase) ListGames(ctx context.Context, userID string, limit, skip int) ([]*entity.Game, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	if skip < 0 {
		skip = 0
	}

	games, err := that.gameRepo.ListByUser(ctx, userID, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	return games, nil
}

func (that *gameUseCase) MakeTurn(ctx context.Context, userID, gameID string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "userID", userID, "gameID", gameID)

	game, mark, err := that.participantGame(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if err = game.MakeTurn(mark, cell); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	moves := 1

	if game.IsWithBot() && !game.IsFinished() {
		if err = that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("failed to make bot turn: %w", err)
		}

		moves++
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.metrics.MovesMade(moves)
	that.notify(ctx, game)

	log.Info("turn made", "cell", cell, "status", game.Status)

	return game, nil
}

func (that *gameUseCase) Resign(ctx context.Context, userID, gameID string) (*entity.Game, error) {
	log := that.logger.With("method", "Resign", "userID", userID, "gameID", gameID)

	game, mark, err := that.participantGame(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}

	if err = game.Resign(mark); err != nil {
		return nil, fmt.Errorf("failed to resign: %w", err)
	}

	if err = that.updateGame(ctx, game); err != nil {
		return nil, err
	}

	that.notify(ctx, game)

	log.Info("player resigned", "winner", game.Winner)

	return game, nil
}

func (that *gameUseCase) DeleteGame(ctx context.Context, userID, gameID string) error {
	log := that.logger.With("method", "DeleteGame", "userID", userID, "gameID", gameID)

	game, err := that.GetGame(ctx, userID, gameID)
	if err != nil {
		return err
	}

	if game.OwnerID != userID {
		return apperror.ErrNotGameOwner
	}

	if err = that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted")

	return nil
}

func (that *gameUseCase) DeleteAllGames(ctx context.Context, userID string) (int64, error) {
	log := that.logger.With("method", "DeleteAllGames", "userID", userID)

	deleted, err := that.gameRepo.DeleteByOwner(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete games: %w", err)
	}

	log.Info("games deleted", "count", deleted)

	return deleted, nil
}

func (that *gameUseCase) Stats(ctx context.Context, userID string) (*entity.Stats, error) {
	stats, err := that.gameRepo.StatsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}

func (that *gameUseCase) participantGame(ctx context.Context, userID, gameID string) (*entity.Game, string, error) {
	game, err := that.getGameByID(ctx, gameID)
	if err != nil {
		return nil, "", err
	}

	mark := game.MarkOf(userID)
	if mark == "" {
		return nil, "", apperror.ErrNotParticipant
	}

	return game, mark, nil
}

func (that *gameUseCase) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) updateGame(ctx context.Context, game *entity.Game) error {
	if err := that.gameRepo.Update(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

// notify - tells everyone watching the game about its new state.
func (that *gameUseCase) notify(ctx context.Context, game *entity.Game) {
	that.publish(ctx, entity.NewGameStateEvent(game))

	if game.IsFinished() {
		that.metrics.GameFinished(game.Winner)
		that.publish(ctx, entity.NewGameOverEvent(game))
	}
}

func (that *gameUseCase) publish(ctx context.Context, event *entity.GameEvent) {
	log := that.logger.With("method", "publish")

	if err := that.events.Publish(ctx, event); err != nil {
		log.Error("failed to publish event", "action", event.Action, "gameID", event.GameID, "error", err)
	}
}
