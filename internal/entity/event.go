package entity

const (
	EventConnected    = "connected"
	EventPlayerJoined = "player:joined"
	EventPlayerLeft   = "player:left"
	EventGameState    = "game:state"
	EventGameOver     = "game:over"
	EventChatMessage  = "chat:message"
	EventError        = "error"
)

// GameEvent is a notification fanned out to everyone watching a game.
type GameEvent struct {
	Action   string `json:"action"`
	GameID   string `json:"game_id"`
	Game     *Game  `json:"game,omitempty"`
	UserID   string `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
	Message  string `json:"message,omitempty"`
}

func NewGameStateEvent(game *Game) *GameEvent {
	return &GameEvent{
		Action: EventGameState,
		GameID: game.ID,
		Game:   game,
	}
}

func NewGameOverEvent(game *Game) *GameEvent {
	message := "Game over! It's a tie!"
	if game.Winner != PlayerTie && game.Winner != "" {
		message = "Game over! Winner: " + game.Winner
	}

	return &GameEvent{
		Action:  EventGameOver,
		GameID:  game.ID,
		Game:    game,
		Message: message,
	}
}
