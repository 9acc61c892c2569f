package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/testing/suite"
)

func TestUserRepository_Save(t *testing.T) {
	t.Run("Save_Success", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		userRepo := NewUserRepository(st.Storage.Connection)

		// Given: a new user without email
		user := &entity.User{
			ID:           "u1",
			Username:     "alice",
			PasswordHash: "hash",
			IsActive:     true,
			CreatedAt:    time.Now(),
		}

		// When: Save is called
		err := userRepo.Save(ctx, user)

		// Then: the user can be found by id and username
		require.NoError(t, err)

		byID, err := userRepo.FindByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "alice", byID.Username)
		assert.Equal(t, "hash", byID.PasswordHash)
		assert.Empty(t, byID.Email)
		assert.True(t, byID.IsActive)

		byName, err := userRepo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "u1", byName.ID)
	})

	t.Run("Save_DuplicateUsername", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		userRepo := NewUserRepository(st.Storage.Connection)

		// Given: alice is already registered
		require.NoError(t, userRepo.Save(ctx, &entity.User{ID: "u1", Username: "alice", CreatedAt: time.Now()}))

		// When: another user takes the same name
		err := userRepo.Save(ctx, &entity.User{ID: "u2", Username: "alice", CreatedAt: time.Now()})

		// Then: ErrUserAlreadyExists is returned
		require.ErrorIs(t, err, apperror.ErrUserAlreadyExists)
	})

	t.Run("Save_SeveralUsersWithoutEmail", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		userRepo := NewUserRepository(st.Storage.Connection)

		// When: two users without email are saved
		require.NoError(t, userRepo.Save(ctx, &entity.User{ID: "u1", Username: "alice", CreatedAt: time.Now()}))
		err := userRepo.Save(ctx, &entity.User{ID: "u2", Username: "bob", CreatedAt: time.Now()})

		// Then: the empty email does not collide
		require.NoError(t, err)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	t.Run("FindByEmail_Success", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		userRepo := NewUserRepository(st.Storage.Connection)

		// Given: a user registered through google
		require.NoError(t, userRepo.Save(ctx, &entity.User{
			ID:        "u1",
			Username:  "alice",
			Email:     "alice@example.com",
			IsActive:  true,
			CreatedAt: time.Now(),
		}))

		// When: FindByEmail is called
		user, err := userRepo.FindByEmail(ctx, "alice@example.com")

		// Then: the user is returned
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("FindByEmail_NotFound", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		userRepo := NewUserRepository(st.Storage.Connection)

		// When: FindByEmail is called for an unknown email
		user, err := userRepo.FindByEmail(ctx, "nobody@example.com")

		// Then: ErrNotFound is returned
		require.ErrorIs(t, err, apperror.ErrNotFound)
		assert.Nil(t, user)
	})
}
