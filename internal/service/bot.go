package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

const winScore = 10

type BotService interface {
	MakeTurn(game *entity.Game) error
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

func (that *botService) MakeTurn(game *entity.Game) error {
	availableCells := game.AvailableCells()
	if len(availableCells) == 0 {
		return ErrNoAvailableMoves
	}

	botMark := game.BotMark()
	if botMark == "" {
		return ErrBotNotFound
	}

	var chosenCell int
	switch game.Difficulty {
	case entity.HardDifficulty:
		chosenCell = BestMove(game.Board, botMark)
	default:
		chosenCell = availableCells[rand.Intn(len(availableCells))] //nolint: gosec // it's ok
	}

	if err := game.MakeTurn(botMark, chosenCell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

// BestMove returns the minimax choice for mark, preferring the lowest cell among equal scores.
// Returns -1 on a full board.
func BestMove(board [9]string, mark string) int {
	bestCell, bestScore := -1, 0

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = mark
		score := minimax(board, mark, entity.Opponent(mark), 1)
		board[cell] = entity.EmptyCell

		if bestCell == -1 || score > bestScore {
			bestCell, bestScore = cell, score
		}
	}

	return bestCell
}

func minimax(board [9]string, botMark, toMove string, depth int) int {
	switch result := entity.ResultOf(board); result {
	case botMark:
		return winScore - depth
	case entity.Opponent(botMark):
		return depth - winScore
	case entity.PlayerTie:
		return 0
	}

	maximizing := toMove == botMark

	best := -winScore - 1
	if !maximizing {
		best = winScore + 1
	}

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = toMove
		score := minimax(board, botMark, entity.Opponent(toMove), depth+1)
		board[cell] = entity.EmptyCell

		if maximizing && score > best || !maximizing && score < best {
			best = score
		}
	}

	return best
}
