package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is finished
		isFinished := game.IsFinished()

		// Then: it should return true
		assert.True(t, isFinished)
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is ongoing
		isOngoing := game.IsOngoing()

		// Then: it should return true
		assert.True(t, isOngoing)
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// When: checking if the game is waiting
		isWaiting := game.IsWaiting()

		// Then: it should return true
		assert.True(t, isWaiting)
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		// Given: a game with StatusOngoing
		game := &Game{Status: StatusOngoing}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return nil error
		assert.NoError(t, err)
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		// Given: a game with StatusWaiting
		game := &Game{Status: StatusWaiting}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrGameIsNotStarted
		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		// Given: a game with StatusFinished
		game := &Game{Status: StatusFinished}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrGameFinished
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown game status")
	})
}

func TestGame_DetermineGameResult(t *testing.T) {
	t.Run("Returns PlayerX when Player X wins", func(t *testing.T) {
		// Given: a game where Player X has a winning combination
		game := &Game{
			Board: [9]string{
				PlayerX, PlayerX, PlayerX,
				EmptyCell, EmptyCell, EmptyCell,
				EmptyCell, EmptyCell, EmptyCell,
			},
		}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return PlayerX as the winner
		assert.Equal(t, PlayerX, result)
	})

	t.Run("Returns PlayerO when Player O wins", func(t *testing.T) {
		// Given: a game where Player O has a winning combination
		game := &Game{
			Board: [9]string{
				PlayerO, PlayerO, PlayerO,
				EmptyCell, EmptyCell, EmptyCell,
				EmptyCell, EmptyCell, EmptyCell,
			},
		}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return PlayerO as the winner
		assert.Equal(t, PlayerO, result)
	})

	t.Run("Returns PlayerTie when the game is a tie", func(t *testing.T) {
		// Given: a game that ended in a tie
		game := &Game{
			Board: [9]string{
				PlayerX, PlayerO, PlayerX,
				PlayerO, PlayerX, PlayerO,
				PlayerO, PlayerX, PlayerO,
			},
		}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return PlayerTie
		assert.Equal(t, PlayerTie, result)
	})

	t.Run("Returns EmptyCell when the game is ongoing", func(t *testing.T) {
		// Given: a game that is still ongoing
		game := &Game{
			Board: [9]string{
				PlayerX, PlayerO, EmptyCell,
				EmptyCell, PlayerX, EmptyCell,
				EmptyCell, EmptyCell, PlayerO,
			},
		}

		// When: determining the game result
		result := game.DetermineGameResult()

		// Then: it should return EmptyCell (game continues)
		assert.Equal(t, EmptyCell, result)
	})
}

func TestGame_UpdateGameState(t *testing.T) {
	t.Run("Updates game state when Player X wins", func(t *testing.T) {
		// Given: a game where Player X has a winning combination
		game := &Game{
			Board: [9]string{
				PlayerX, PlayerX, PlayerX,
				EmptyCell, EmptyCell, EmptyCell,
				EmptyCell, EmptyCell, EmptyCell,
			},
			Status: StatusOngoing,
			Turn:   PlayerO,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with Player X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Updates game state when the game is a tie", func(t *testing.T) {
		// Given: a game that ended in a tie
		game := &Game{
			Board: [9]string{
				PlayerX, PlayerO, PlayerX,
				PlayerO, PlayerX, PlayerO,
				PlayerO, PlayerX, PlayerO,
			},
			Status: StatusOngoing,
			Turn:   PlayerX,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should be finished with a tie
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Game remains ongoing when there is no winner or tie", func(t *testing.T) {
		// Given: a game that is still ongoing
		game := &Game{
			Board: [9]string{
				PlayerX, PlayerO, EmptyCell,
				EmptyCell, PlayerX, EmptyCell,
				EmptyCell, EmptyCell, PlayerO,
			},
			Status: StatusOngoing,
			Turn:   PlayerO,
		}

		// When: updating the game state
		game.UpdateGameState()

		// Then: the game should remain ongoing
		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, "", game.Winner)
		assert.Equal(t, PlayerO, game.Turn)
	})
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123", PvPType, "", "owner")
		game.Status = StatusOngoing

		// When: Player X makes a valid turn
		err := game.MakeTurn(PlayerX, 0)
		require.NoError(t, err)

		// Then: The game state should reflect the turn and player turn should switch
		assert.Equal(t, [9]string{PlayerX, "", "", "", "", "", "", "", ""}, game.Board)
		assert.Equal(t, PlayerO, game.Turn)
		assert.Empty(t, game.Winner)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: A game where cell 0 is occupied by Player X
		game := NewGame("123", PvPType, "", "owner")
		game.Status = StatusOngoing
		err := game.MakeTurn(PlayerX, 0)
		require.NoError(t, err)

		// When: Player O tries to make a move to the same cell
		err = game.MakeTurn(PlayerO, 0)

		// Then: An ErrCellOccupied error should be returned
		require.ErrorIs(t, err, apperror.ErrCellOccupied)

		// And: The game state should remain unchanged
		assert.Equal(t, [9]string{PlayerX, "", "", "", "", "", "", "", ""}, game.Board)
		assert.Equal(t, PlayerO, game.Turn)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: A new game where it's Player X's turn
		game := NewGame("123", PvPType, "", "owner")
		game.Status = StatusOngoing

		// When: Player O tries to make a move
		err := game.MakeTurn(PlayerO, 1)

		// Then: An ErrNotYourTurn error should be returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)

		// And: The board should remain empty
		assert.Equal(t, [9]string{}, game.Board)
		assert.Equal(t, PlayerX, game.Turn)
	})

	t.Run("Error on Invalid Cell Index (Greater than Range)", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123", PvPType, "", "owner")
		game.Status = StatusOngoing

		// When: An invalid cell index is passed (greater than the range)
		err := game.MakeTurn(PlayerX, 20)

		// Then: An ErrInvalidCell error should be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Error on Invalid Cell Index (Negative)", func(t *testing.T) {
		// Given: A new game
		game := NewGame("123", PvPType, "", "owner")
		game.Status = StatusOngoing

		// When: A negative cell index is passed
		err := game.MakeTurn(PlayerX, -1)

		// Then: An ErrInvalidCell error should be returned
		assert.ErrorIs(t, err, apperror.ErrInvalidCell)
	})

	t.Run("Winning turn finishes the game", func(t *testing.T) {
		// Given: X has two in the top row and it's X's turn
		game := NewGame("123", PvPType, "", "owner")
		game.Status = StatusOngoing
		game.Board = [9]string{
			PlayerX, PlayerX, EmptyCell,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: X completes the row
		err := game.MakeTurn(PlayerX, 2)

		// Then: the game is finished with X as the winner and nobody to move
		require.NoError(t, err)
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerX, game.Winner)
		assert.Equal(t, EmptyCell, game.Turn)
	})

	t.Run("Error on finished game", func(t *testing.T) {
		// Given: a finished game
		game := NewGame("123", PvPType, "", "owner")
		game.Status = StatusFinished

		// When: a player tries to move
		err := game.MakeTurn(PlayerX, 4)

		// Then: ErrGameFinished is returned
		require.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_Resign(t *testing.T) {
	t.Run("Opponent wins when a player resigns", func(t *testing.T) {
		// Given: an ongoing game
		game := NewGame("g1", PvPType, "", "owner")
		game.Status = StatusOngoing

		// When: O resigns
		err := game.Resign(PlayerO)

		// Then: X wins
		require.NoError(t, err)
		assert.Equal(t, PlayerX, game.Winner)
		assert.True(t, game.IsFinished())
	})

	t.Run("Cannot resign a waiting game", func(t *testing.T) {
		// Given: a game that has not started
		game := NewGame("g1", PvPType, "", "owner")

		// When: X resigns
		err := game.Resign(PlayerX)

		// Then: ErrGameIsNotStarted is returned
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})
}

func TestGame_Seats(t *testing.T) {
	// Given: a game with X taken by alice
	game := NewGame("g1", PvPType, "", "alice")
	require.NoError(t, game.Seat("alice", PlayerX))

	// Then: seat lookups reflect that
	assert.Equal(t, PlayerX, game.MarkOf("alice"))
	assert.Equal(t, "", game.MarkOf("bob"))
	assert.Equal(t, "", game.MarkOf(""))
	assert.True(t, game.IsParticipant("alice"))
	assert.Equal(t, PlayerO, game.FreeMark())

	// When: bob takes the free seat
	require.NoError(t, game.Seat("bob", game.FreeMark()))

	// Then: there is no free seat left
	assert.Equal(t, PlayerO, game.MarkOf("bob"))
	assert.Equal(t, "", game.FreeMark())
	assert.ErrorIs(t, game.Seat("carol", "Z"), apperror.ErrInvalidMark)
}

func TestGame_AvailableCells(t *testing.T) {
	game := &Game{
		Board: [9]string{
			PlayerX, EmptyCell, PlayerO,
			EmptyCell, PlayerX, EmptyCell,
			PlayerO, EmptyCell, EmptyCell,
		},
	}

	assert.Equal(t, []int{1, 3, 5, 7, 8}, game.AvailableCells())
}

func TestNewGameOverEvent(t *testing.T) {
	t.Run("Names the winner", func(t *testing.T) {
		event := NewGameOverEvent(&Game{ID: "g1", Winner: PlayerO})

		assert.Equal(t, EventGameOver, event.Action)
		assert.Equal(t, "g1", event.GameID)
		assert.Equal(t, "Game over! Winner: O", event.Message)
	})

	t.Run("Reports a tie", func(t *testing.T) {
		event := NewGameOverEvent(&Game{ID: "g1", Winner: PlayerTie})

		assert.Equal(t, "Game over! It's a tie!", event.Message)
	})
}
