package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const (
	actionGameTurn  = "game:turn"
	actionGameState = entity.EventGameState
	actionGameLeave = "game:leave"
	actionChat      = entity.EventChatMessage
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload - body of messages in both directions, fields are set depending on the action.
type Payload struct {
	GameID   string       `json:"game_id,omitempty"`
	Game     *entity.Game `json:"game,omitempty"`
	UserID   string       `json:"user_id,omitempty"`
	Username string       `json:"username,omitempty"`
	Message  string       `json:"message,omitempty"`
	Cell     *int         `json:"cell,omitempty"`
	Error    string       `json:"error,omitempty"`
}

func encodeMessage(action string, payload Payload) ([]byte, error) {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: rawPayload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}

func encodeEvent(event *entity.GameEvent) ([]byte, error) {
	return encodeMessage(event.Action, Payload{
		GameID:   event.GameID,
		Game:     event.Game,
		UserID:   event.UserID,
		Username: event.Username,
		Message:  event.Message,
	})
}

func decodePayload(msg *Message) (*Payload, error) {
	var payload Payload

	if len(msg.Payload) == 0 {
		return &payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return &payload, nil
}
