package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrGameNotFound      = errors.New("game not found")
	ErrGameIsFull        = errors.New("game already has two players")
	ErrNotParticipant    = errors.New("user is not a participant of the game")
	ErrNotGameOwner      = errors.New("only the owner can delete the game")
	ErrConcurrentUpdate  = errors.New("game was modified concurrently")
	ErrInvalidGameType   = errors.New("unknown game type")
	ErrInvalidDifficulty = errors.New("unknown difficulty")
	ErrInvalidMark       = errors.New("mark must be X or O")

	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrValidation         = errors.New("validation failed")
)
