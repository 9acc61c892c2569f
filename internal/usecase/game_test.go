package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-api/mocks/usecase"
)

var (
	errSomeError     = errors.New("some error")
	errStorageIsFull = errors.New("storage is full")
	errRedisDown     = errors.New("redis down")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type gameMocks struct {
	repo   *mockedUseCase.MockgameRepoDep
	bot    *mockedUseCase.MockbotServiceDep
	events *mockedUseCase.MockeventPublisherDep
}

func newGameUseCase(t *testing.T) (GameUseCase, gameMocks) {
	t.Helper()

	mocks := gameMocks{
		repo:   mockedUseCase.NewMockgameRepoDep(t),
		bot:    mockedUseCase.NewMockbotServiceDep(t),
		events: mockedUseCase.NewMockeventPublisherDep(t),
	}

	return NewGameUseCase(discardLogger(), nil, mocks.repo, mocks.bot, mocks.events), mocks
}

func actionIs(action string) interface{} {
	return mock.MatchedBy(func(event *entity.GameEvent) bool {
		return event.Action == action
	})
}

func ongoingPvPGame() *entity.Game {
	game := entity.NewGame("g1", entity.PvPType, "", "alice")
	game.PlayerX = "alice"
	game.PlayerO = "bob"
	game.Status = entity.StatusOngoing

	return game
}

func ongoingBotGame() *entity.Game {
	game := entity.NewGame("g1", entity.WithBotType, entity.EasyDifficulty, "alice")
	game.PlayerX = "alice"
	game.PlayerO = entity.BotPlayerID
	game.Status = entity.StatusOngoing

	return game
}

func TestGameUseCase_CreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates waiting pvp game with creator as X", func(t *testing.T) {
		// Given: a repository accepting the new game
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		// When: alice creates a pvp game
		game, err := useCaseInstance.CreateGame(ctx, "alice", entity.PvPType, "", "")

		// Then: the game waits for an opponent
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.StatusWaiting, game.Status)
		assert.Equal(t, "alice", game.PlayerX)
		assert.Empty(t, game.PlayerO)
		assert.Equal(t, "alice", game.OwnerID)
	})

	t.Run("Bot with X opens the game", func(t *testing.T) {
		// Given: a bot that plays the first free cell
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.bot.EXPECT().
			MakeTurn(mock.AnythingOfType("*entity.Game")).
			RunAndReturn(func(game *entity.Game) error {
				return game.MakeTurn(entity.PlayerX, 0)
			}).
			Once()
		mocks.repo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		// When: alice asks to play O against a hard bot
		game, err := useCaseInstance.CreateGame(ctx, "alice", entity.WithBotType, entity.HardDifficulty, entity.PlayerO)

		// Then: the bot sits at X and has already moved
		require.NoError(t, err)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, entity.BotPlayerID, game.PlayerX)
		assert.Equal(t, "alice", game.PlayerO)
		assert.Equal(t, entity.PlayerX, game.Board[0])
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.Equal(t, entity.HardDifficulty, game.Difficulty)
	})

	t.Run("Human with X moves first", func(t *testing.T) {
		// Given: a repository accepting the new game
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		// When: alice asks to play X without a difficulty
		game, err := useCaseInstance.CreateGame(ctx, "alice", entity.WithBotType, "", entity.PlayerX)

		// Then: the board is empty, easy difficulty is used and the bot did not move
		require.NoError(t, err)
		assert.Equal(t, "alice", game.PlayerX)
		assert.Equal(t, entity.BotPlayerID, game.PlayerO)
		assert.Equal(t, entity.EasyDifficulty, game.Difficulty)
		assert.Len(t, game.AvailableCells(), 9)
	})

	t.Run("Random mark seats both players", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.bot.EXPECT().
			MakeTurn(mock.AnythingOfType("*entity.Game")).
			RunAndReturn(func(game *entity.Game) error {
				return game.MakeTurn(entity.PlayerX, 4)
			}).
			Maybe()
		mocks.repo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()

		game, err := useCaseInstance.CreateGame(ctx, "alice", entity.WithBotType, entity.EasyDifficulty, "")

		require.NoError(t, err)
		assert.NotEmpty(t, game.MarkOf("alice"))
		assert.NotEmpty(t, game.BotMark())
	})

	t.Run("Rejects invalid input", func(t *testing.T) {
		useCaseInstance, _ := newGameUseCase(t)

		_, err := useCaseInstance.CreateGame(ctx, "alice", "chess", "", "")
		require.ErrorIs(t, err, apperror.ErrInvalidGameType)

		_, err = useCaseInstance.CreateGame(ctx, "alice", entity.WithBotType, "impossible", "")
		require.ErrorIs(t, err, apperror.ErrInvalidDifficulty)

		_, err = useCaseInstance.CreateGame(ctx, "alice", entity.WithBotType, entity.EasyDifficulty, "Z")
		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})

	t.Run("Returns error if gameRepo.Create fails", func(t *testing.T) {
		// Given: a repository that fails to store the game
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(errStorageIsFull).
			Once()

		// When: creating a game
		game, err := useCaseInstance.CreateGame(ctx, "alice", entity.PvPType, "", "")

		// Then: the storage error is returned
		require.ErrorIs(t, err, errStorageIsFull)
		assert.Nil(t, game)
	})
}

func TestGameUseCase_JoinGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Second player takes the O seat", func(t *testing.T) {
		// Given: a waiting pvp game created by alice
		useCaseInstance, mocks := newGameUseCase(t)

		waiting := entity.NewGame("g1", entity.PvPType, "", "alice")
		waiting.PlayerX = "alice"

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(waiting, nil).Once()
		mocks.repo.EXPECT().Update(mock.Anything, waiting).Return(nil).Once()
		mocks.events.EXPECT().Publish(mock.Anything, actionIs(entity.EventPlayerJoined)).Return(nil).Once()
		mocks.events.EXPECT().Publish(mock.Anything, actionIs(entity.EventGameState)).Return(nil).Once()

		// When: bob joins
		game, err := useCaseInstance.JoinGame(ctx, "bob", "g1")

		// Then: the game starts with bob as O
		require.NoError(t, err)
		assert.Equal(t, "bob", game.PlayerO)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Joining own game is a no-op", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		waiting := entity.NewGame("g1", entity.PvPType, "", "alice")
		waiting.PlayerX = "alice"

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(waiting, nil).Once()

		game, err := useCaseInstance.JoinGame(ctx, "alice", "g1")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusWaiting, game.Status)
	})

	t.Run("Returns ErrGameIsFull for a started game", func(t *testing.T) {
		// Given: a game with both seats taken
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(ongoingPvPGame(), nil).Once()

		// When: carol tries to join
		game, err := useCaseInstance.JoinGame(ctx, "carol", "g1")

		// Then: ErrGameIsFull is returned
		require.ErrorIs(t, err, apperror.ErrGameIsFull)
		assert.Nil(t, game)
	})

	t.Run("Returns ErrGameNotFound for unknown game", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "nope").Return(nil, apperror.ErrGameNotFound).Once()

		_, err := useCaseInstance.JoinGame(ctx, "bob", "nope")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameUseCase_GetGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Participant sees the game", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(ongoingPvPGame(), nil).Once()

		game, err := useCaseInstance.GetGame(ctx, "bob", "g1")

		require.NoError(t, err)
		assert.Equal(t, "g1", game.ID)
	})

	t.Run("Stranger gets ErrGameNotFound", func(t *testing.T) {
		// Given: a game between alice and bob
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(ongoingPvPGame(), nil).Once()

		// When: carol asks for it
		game, err := useCaseInstance.GetGame(ctx, "carol", "g1")

		// Then: the game is hidden
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})
}

func TestGameUseCase_ListGames(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		limit, skip   int
		expectedLimit int
		expectedSkip  int
	}{
		{name: "Default limit", limit: 0, skip: 0, expectedLimit: DefaultListLimit, expectedSkip: 0},
		{name: "Limit is capped", limit: 500, skip: 10, expectedLimit: MaxListLimit, expectedSkip: 10},
		{name: "Negative skip", limit: 5, skip: -3, expectedLimit: 5, expectedSkip: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCaseInstance, mocks := newGameUseCase(t)

			mocks.repo.EXPECT().
				ListByUser(mock.Anything, "alice", tt.expectedLimit, tt.expectedSkip).
				Return([]*entity.Game{ongoingPvPGame()}, nil).
				Once()

			games, err := useCaseInstance.ListGames(ctx, "alice", tt.limit, tt.skip)

			require.NoError(t, err)
			assert.Len(t, games, 1)
		})
	}

	t.Run("Returns error if gameRepo.ListByUser fails", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().ListByUser(mock.Anything, "alice", DefaultListLimit, 0).Return(nil, errSomeError).Once()

		_, err := useCaseInstance.ListGames(ctx, "alice", 0, 0)

		require.ErrorIs(t, err, errSomeError)
	})
}

func TestGameUseCase_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("PvP move is saved and published", func(t *testing.T) {
		// Given: an ongoing pvp game where X is to move
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(ongoingPvPGame(), nil).Once()
		mocks.repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()
		mocks.events.EXPECT().Publish(mock.Anything, actionIs(entity.EventGameState)).Return(nil).Once()

		// When: alice plays the center
		game, err := useCaseInstance.MakeTurn(ctx, "alice", "g1", 4)

		// Then: the move is applied and it's bob's turn
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[4])
		assert.Equal(t, entity.PlayerO, game.Turn)
	})

	t.Run("Bot answers in bot games", func(t *testing.T) {
		// Given: a bot game where alice plays X
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(ongoingBotGame(), nil).Once()
		mocks.bot.EXPECT().
			MakeTurn(mock.AnythingOfType("*entity.Game")).
			RunAndReturn(func(game *entity.Game) error {
				return game.MakeTurn(entity.PlayerO, 8)
			}).
			Once()
		mocks.repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()
		mocks.events.EXPECT().Publish(mock.Anything, actionIs(entity.EventGameState)).Return(nil).Once()

		// When: alice moves
		game, err := useCaseInstance.MakeTurn(ctx, "alice", "g1", 0)

		// Then: both moves are on the board and it's alice's turn again
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[0])
		assert.Equal(t, entity.PlayerO, game.Board[8])
		assert.Equal(t, entity.PlayerX, game.Turn)
	})

	t.Run("Winning move publishes game over and skips the bot", func(t *testing.T) {
		// Given: alice is one move away from winning against the bot
		useCaseInstance, mocks := newGameUseCase(t)

		game := ongoingBotGame()
		game.Board = [9]string{"X", "X", "", "O", "O", "", "", "", ""}

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(game, nil).Once()
		mocks.repo.EXPECT().Update(mock.Anything, game).Return(nil).Once()
		mocks.events.EXPECT().Publish(mock.Anything, actionIs(entity.EventGameState)).Return(nil).Once()
		mocks.events.EXPECT().Publish(mock.Anything, actionIs(entity.EventGameOver)).Return(nil).Once()

		// When: alice completes the top row
		result, err := useCaseInstance.MakeTurn(ctx, "alice", "g1", 2)

		// Then: the game is finished with X as winner
		require.NoError(t, err)
		assert.True(t, result.IsFinished())
		assert.Equal(t, entity.PlayerX, result.Winner)
	})

	t.Run("Returns ErrNotParticipant for a stranger", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(ongoingPvPGame(), nil).Once()

		_, err := useCaseInstance.MakeTurn(ctx, "carol", "g1", 0)

		require.ErrorIs(t, err, apperror.ErrNotParticipant)
	})

	t.Run("Returns ErrNotYourTurn", func(t *testing.T) {
		// Given: an ongoing game where X is to move
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(ongoingPvPGame(), nil).Once()

		// When: bob (O) tries to move
		_, err := useCaseInstance.MakeTurn(ctx, "bob", "g1", 0)

		// Then: ErrNotYourTurn is returned and nothing is saved
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("Returns ErrGameIsNotStarted for waiting game", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		waiting := entity.NewGame("g1", entity.PvPType, "", "alice")
		waiting.PlayerX = "alice"

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(waiting, nil).Once()

		_, err := useCaseInstance.MakeTurn(ctx, "alice", "g1", 0)

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrCellOccupied", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		game := ongoingPvPGame()
		game.Board[4] = entity.PlayerO
		game.Board[0] = entity.PlayerX
		game.Board[8] = entity.PlayerX
		game.Board[2] = entity.PlayerO

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(game, nil).Once()

		_, err := useCaseInstance.MakeTurn(ctx, "alice", "g1", 4)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
	})

	t.Run("Returns ErrConcurrentUpdate when the game changed meanwhile", func(t *testing.T) {
		// Given: a repository reporting a stale version
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(ongoingPvPGame(), nil).Once()
		mocks.repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Game")).Return(apperror.ErrConcurrentUpdate).Once()

		// When: alice moves
		game, err := useCaseInstance.MakeTurn(ctx, "alice", "g1", 4)

		// Then: the conflict is reported and nothing is published
		require.ErrorIs(t, err, apperror.ErrConcurrentUpdate)
		assert.Nil(t, game)
	})

	t.Run("Publish failure does not fail the move", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(ongoingPvPGame(), nil).Once()
		mocks.repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()
		mocks.events.EXPECT().Publish(mock.Anything, mock.Anything).Return(errRedisDown).Once()

		game, err := useCaseInstance.MakeTurn(ctx, "alice", "g1", 4)

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[4])
	})
}

func TestGameUseCase_Resign(t *testing.T) {
	ctx := context.Background()

	t.Run("Opponent wins", func(t *testing.T) {
		// Given: an ongoing pvp game
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(ongoingPvPGame(), nil).Once()
		mocks.repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()
		mocks.events.EXPECT().Publish(mock.Anything, actionIs(entity.EventGameState)).Return(nil).Once()
		mocks.events.EXPECT().Publish(mock.Anything, actionIs(entity.EventGameOver)).Return(nil).Once()

		// When: bob resigns
		game, err := useCaseInstance.Resign(ctx, "bob", "g1")

		// Then: alice (X) wins
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, entity.PlayerX, game.Winner)
	})

	t.Run("Returns ErrGameFinished for finished game", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		game := ongoingPvPGame()
		game.Status = entity.StatusFinished

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(game, nil).Once()

		_, err := useCaseInstance.Resign(ctx, "bob", "g1")

		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGameUseCase_DeleteGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner deletes the game", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(ongoingPvPGame(), nil).Once()
		mocks.repo.EXPECT().DeleteByID(mock.Anything, "g1").Return(nil).Once()

		err := useCaseInstance.DeleteGame(ctx, "alice", "g1")

		require.NoError(t, err)
	})

	t.Run("Participant who is not the owner gets ErrNotGameOwner", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(ongoingPvPGame(), nil).Once()

		err := useCaseInstance.DeleteGame(ctx, "bob", "g1")

		require.ErrorIs(t, err, apperror.ErrNotGameOwner)
	})

	t.Run("Stranger gets ErrGameNotFound", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().GetByID(mock.Anything, "g1").Return(ongoingPvPGame(), nil).Once()

		err := useCaseInstance.DeleteGame(ctx, "carol", "g1")

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameUseCase_DeleteAllGamesAndStats(t *testing.T) {
	ctx := context.Background()

	t.Run("DeleteAllGames returns the number of deleted games", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().DeleteByOwner(mock.Anything, "alice").Return(int64(3), nil).Once()

		deleted, err := useCaseInstance.DeleteAllGames(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})

	t.Run("Stats are read from the repository", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		expected := &entity.Stats{Played: 3, Wins: 1, Losses: 1, Draws: 1}
		mocks.repo.EXPECT().StatsByUser(mock.Anything, "alice").Return(expected, nil).Once()

		stats, err := useCaseInstance.Stats(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, expected, stats)
	})

	t.Run("Stats returns repository error", func(t *testing.T) {
		useCaseInstance, mocks := newGameUseCase(t)

		mocks.repo.EXPECT().StatsByUser(mock.Anything, "alice").Return(nil, errSomeError).Once()

		_, err := useCaseInstance.Stats(ctx, "alice")

		require.ErrorIs(t, err, errSomeError)
	})
}
