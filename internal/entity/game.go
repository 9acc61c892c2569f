package entity

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""
)

const (
	WithBotType = "bot"
	PvPType     = "pvp"
)

const (
	EasyDifficulty = "easy"
	HardDifficulty = "hard"
)

// BotPlayerID occupies the computer's seat in bot games.
const BotPlayerID = "bot"

var ErrUnknownGameStatus = errors.New("unknown game status")

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Game struct {
	ID         string    `json:"id"`
	Board      [9]string `json:"board"`
	Winner     string    `json:"winner"`
	Status     string    `json:"status"`
	Turn       string    `json:"turn"`
	Type       string    `json:"type"`
	Difficulty string    `json:"difficulty,omitempty"`
	OwnerID    string    `json:"owner_id"`
	PlayerX    string    `json:"player_x,omitempty"`
	PlayerO    string    `json:"player_o,omitempty"`
	Version    int       `json:"version"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewGame(id, gameType, difficulty, ownerID string) *Game {
	now := time.Now().UTC()

	return &Game{
		ID:         id,
		Board:      [9]string{EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell, EmptyCell},
		Turn:       PlayerX,
		Status:     StatusWaiting,
		Type:       gameType,
		Difficulty: difficulty,
		OwnerID:    ownerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (that *Game) DetermineGameResult() string {
	return ResultOf(that.Board)
}

// ResultOf returns the winning mark, PlayerTie for a full board, or "" while the game continues.
func ResultOf(board [9]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	// the game will continue until all the squares are full
	for _, cell := range board {
		if cell == EmptyCell {
			return ""
		}
	}

	return PlayerTie
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.finish(winner)
	// tie
	case PlayerTie:
		that.finish(PlayerTie)
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark string, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = playerMark
	that.Turn = Opponent(playerMark)

	that.UpdateGameState()

	return nil
}

// Resign ends an ongoing game in favour of the opponent of mark.
func (that *Game) Resign(mark string) error {
	if err := that.ConfirmOngoingState(); err != nil {
		return err
	}

	if mark != PlayerX && mark != PlayerO {
		return apperror.ErrInvalidMark
	}

	that.finish(Opponent(mark))

	return nil
}

func (that *Game) finish(winner string) {
	that.Winner = winner
	that.Status = StatusFinished
	that.Turn = ""
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

func (that *Game) IsPvP() bool {
	return that.Type == PvPType
}

// MarkOf returns the mark played by userID, or "" when the user has no seat.
func (that *Game) MarkOf(userID string) string {
	switch {
	case userID == "":
		return ""
	case that.PlayerX == userID:
		return PlayerX
	case that.PlayerO == userID:
		return PlayerO
	default:
		return ""
	}
}

func (that *Game) IsParticipant(userID string) bool {
	return that.MarkOf(userID) != ""
}

// BotMark returns the bot's mark, or "" when no bot is seated.
func (that *Game) BotMark() string {
	return that.MarkOf(BotPlayerID)
}

func (that *Game) Seat(userID, mark string) error {
	switch mark {
	case PlayerX:
		that.PlayerX = userID
	case PlayerO:
		that.PlayerO = userID
	default:
		return apperror.ErrInvalidMark
	}

	return nil
}

// FreeMark returns the unoccupied mark, or "" when both seats are taken.
func (that *Game) FreeMark() string {
	switch {
	case that.PlayerX == "":
		return PlayerX
	case that.PlayerO == "":
		return PlayerO
	default:
		return ""
	}
}

func (that *Game) AvailableCells() []int {
	cells := make([]int, 0, len(that.Board))
	for i, cell := range that.Board {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Game) GetRandomMarks() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return PlayerX, PlayerO
	}
	return PlayerO, PlayerX
}

func Opponent(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func IsValidGameType(gameType string) bool {
	return gameType == WithBotType || gameType == PvPType
}

func IsValidDifficulty(difficulty string) bool {
	return difficulty == EasyDifficulty || difficulty == HardDifficulty
}
