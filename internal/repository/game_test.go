package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/testing/suite"
)

func createUser(ctx context.Context, t *testing.T, repo UserRepository, id string) {
	t.Helper()

	err := repo.Save(ctx, &entity.User{
		ID:        id,
		Username:  "user-" + id,
		IsActive:  true,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestGameRepository_Create(t *testing.T) {
	ctx, st := suite.NewSQLite(t)

	gameRepo := NewGameRepository(st.Storage.Connection)
	createUser(ctx, t, NewUserRepository(st.Storage.Connection), "owner")

	// Given: a new pvp game
	game := entity.NewGame("123", entity.PvPType, "", "owner")
	game.PlayerX = "owner"

	// When: Create is called
	err := gameRepo.Create(ctx, game)

	// Then: no error should be returned, and game is stored
	require.NoError(t, err)

	stored, err := gameRepo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, game.Board, stored.Board)
	assert.Equal(t, entity.StatusWaiting, stored.Status)
	assert.Equal(t, "owner", stored.PlayerX)
	assert.Empty(t, stored.PlayerO)
	assert.Equal(t, game.CreatedAt.UnixMilli(), stored.CreatedAt.UnixMilli())
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		gameRepo := NewGameRepository(st.Storage.Connection)
		createUser(ctx, t, NewUserRepository(st.Storage.Connection), "owner")

		// Given: a stored game with a move on the board
		game := entity.NewGame("123", entity.WithBotType, entity.HardDifficulty, "owner")
		game.PlayerX = "owner"
		game.PlayerO = entity.BotPlayerID
		game.Board[4] = entity.PlayerX
		game.Turn = entity.PlayerO
		game.Status = entity.StatusOngoing

		require.NoError(t, gameRepo.Create(ctx, game))

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, game.ID, retrievedGame.ID)
		assert.Equal(t, game.Status, retrievedGame.Status)
		assert.Equal(t, game.Board, retrievedGame.Board)
		assert.Equal(t, entity.HardDifficulty, retrievedGame.Difficulty)
		assert.Equal(t, entity.BotPlayerID, retrievedGame.PlayerO)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		gameRepo := NewGameRepository(st.Storage.Connection)

		nonExistentGameID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, retrievedGame)
	})
}

func TestGameRepository_Update(t *testing.T) {
	t.Run("Update_Success", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		gameRepo := NewGameRepository(st.Storage.Connection)
		createUser(ctx, t, NewUserRepository(st.Storage.Connection), "owner")

		game := entity.NewGame("123", entity.PvPType, "", "owner")
		game.PlayerX = "owner"
		require.NoError(t, gameRepo.Create(ctx, game))

		// Given: the game got a second player and a move
		game.PlayerO = "guest"
		game.Status = entity.StatusOngoing
		require.NoError(t, game.MakeTurn(entity.PlayerX, 0))

		// When: Update is called
		err := gameRepo.Update(ctx, game)

		// Then: the version is bumped and changes are stored
		require.NoError(t, err)
		assert.Equal(t, 1, game.Version)

		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, stored.Version)
		assert.Equal(t, "guest", stored.PlayerO)
		assert.Equal(t, entity.PlayerX, stored.Board[0])
		assert.Equal(t, entity.PlayerO, stored.Turn)
	})

	t.Run("Update_StaleVersion", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		gameRepo := NewGameRepository(st.Storage.Connection)
		createUser(ctx, t, NewUserRepository(st.Storage.Connection), "owner")

		game := entity.NewGame("123", entity.PvPType, "", "owner")
		require.NoError(t, gameRepo.Create(ctx, game))

		// Given: two copies of the same game and the first one already saved
		first, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		second, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)

		first.Board[0] = entity.PlayerX
		require.NoError(t, gameRepo.Update(ctx, first))

		// When: the stale copy is saved
		second.Board[1] = entity.PlayerX
		err = gameRepo.Update(ctx, second)

		// Then: ErrConcurrentUpdate is returned and the first write survives
		require.ErrorIs(t, err, apperror.ErrConcurrentUpdate)

		stored, err := gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, stored.Board[0])
		assert.Equal(t, entity.EmptyCell, stored.Board[1])
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		gameRepo := NewGameRepository(st.Storage.Connection)

		// When: Update is called for a game that was never stored
		err := gameRepo.Update(ctx, entity.NewGame("missing", entity.PvPType, "", "owner"))

		// Then: ErrGameNotFound is returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameRepository_ListByUser(t *testing.T) {
	ctx, st := suite.NewSQLite(t)

	gameRepo := NewGameRepository(st.Storage.Connection)
	userRepo := NewUserRepository(st.Storage.Connection)
	createUser(ctx, t, userRepo, "alice")
	createUser(ctx, t, userRepo, "bob")

	// Given: alice owns two games, plays in one of bob's and bob has a private game
	base := time.Now().Add(-time.Hour)

	games := []*entity.Game{
		entity.NewGame("g1", entity.PvPType, "", "alice"),
		entity.NewGame("g2", entity.WithBotType, entity.EasyDifficulty, "alice"),
		entity.NewGame("g3", entity.PvPType, "", "bob"),
		entity.NewGame("g4", entity.PvPType, "", "bob"),
	}
	games[0].PlayerX = "alice"
	games[1].PlayerO = "alice"
	games[2].PlayerX = "bob"
	games[2].PlayerO = "alice"
	games[3].PlayerX = "bob"

	for i, game := range games {
		game.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		game.UpdatedAt = game.CreatedAt
		require.NoError(t, gameRepo.Create(ctx, game))
	}

	// When: ListByUser is called for alice
	list, err := gameRepo.ListByUser(ctx, "alice", 10, 0)

	// Then: her games are returned newest first
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "g3", list[0].ID)
	assert.Equal(t, "g2", list[1].ID)
	assert.Equal(t, "g1", list[2].ID)

	// When: paging through the list
	page, err := gameRepo.ListByUser(ctx, "alice", 1, 1)

	// Then: limit and offset are applied
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "g2", page[0].ID)
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		gameRepo := NewGameRepository(st.Storage.Connection)
		createUser(ctx, t, NewUserRepository(st.Storage.Connection), "owner")

		// Given: a stored finished game
		game := entity.NewGame("123", entity.PvPType, "", "owner")
		game.Status = entity.StatusFinished

		require.NoError(t, gameRepo.Create(ctx, game))

		// When: DeleteByID is called with existing ID
		err := gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		gameRepo := NewGameRepository(st.Storage.Connection)

		// Given: a non-existent game ID
		nonExistentGameID := "9999999"

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})
}

func TestGameRepository_DeleteByOwner(t *testing.T) {
	ctx, st := suite.NewSQLite(t)

	gameRepo := NewGameRepository(st.Storage.Connection)
	userRepo := NewUserRepository(st.Storage.Connection)
	createUser(ctx, t, userRepo, "alice")
	createUser(ctx, t, userRepo, "bob")

	// Given: two games owned by alice and one by bob
	require.NoError(t, gameRepo.Create(ctx, entity.NewGame("g1", entity.PvPType, "", "alice")))
	require.NoError(t, gameRepo.Create(ctx, entity.NewGame("g2", entity.PvPType, "", "alice")))
	require.NoError(t, gameRepo.Create(ctx, entity.NewGame("g3", entity.PvPType, "", "bob")))

	// When: DeleteByOwner is called for alice
	deleted, err := gameRepo.DeleteByOwner(ctx, "alice")

	// Then: only alice's games are removed
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = gameRepo.GetByID(ctx, "g3")
	require.NoError(t, err)
}

func TestGameRepository_StatsByUser(t *testing.T) {
	ctx, st := suite.NewSQLite(t)

	gameRepo := NewGameRepository(st.Storage.Connection)
	createUser(ctx, t, NewUserRepository(st.Storage.Connection), "alice")

	finished := func(id, playerX, playerO, winner string) *entity.Game {
		game := entity.NewGame(id, entity.PvPType, "", "alice")
		game.PlayerX = playerX
		game.PlayerO = playerO
		game.Status = entity.StatusFinished
		game.Winner = winner
		return game
	}

	// Given: alice won twice, lost once, drew once and has a game in progress
	ongoing := entity.NewGame("g5", entity.PvPType, "", "alice")
	ongoing.PlayerX = "alice"
	ongoing.Status = entity.StatusOngoing

	for _, game := range []*entity.Game{
		finished("g1", "alice", "bob", entity.PlayerX),
		finished("g2", "bob", "alice", entity.PlayerO),
		finished("g3", "alice", entity.BotPlayerID, entity.PlayerO),
		finished("g4", entity.BotPlayerID, "alice", entity.PlayerTie),
		ongoing,
	} {
		require.NoError(t, gameRepo.Create(ctx, game))
	}

	// When: StatsByUser is called
	stats, err := gameRepo.StatsByUser(ctx, "alice")

	// Then: only finished games are counted
	require.NoError(t, err)
	assert.Equal(t, &entity.Stats{Played: 4, Wins: 2, Losses: 1, Draws: 1}, stats)

	// When: a user without games asks for stats
	empty, err := gameRepo.StatsByUser(ctx, "nobody")

	// Then: all counters are zero
	require.NoError(t, err)
	assert.Equal(t, &entity.Stats{}, empty)
}
