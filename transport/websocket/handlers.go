package websocket

import (
	"context"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/transport/rest"
)

const maxChatMessageLength = 500

// handleGameTurn - the game use case publishes the new state, so nothing is sent back on success.
func (that *Server) handleGameTurn(ctx context.Context, c *client, payload *Payload) error {
	if payload.Cell == nil {
		return fmt.Errorf("%w: cell is required", apperror.ErrValidation)
	}

	if _, err := that.games.MakeTurn(ctx, c.user.ID, c.gameID, *payload.Cell); err != nil {
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return nil
}

func (that *Server) handleGameState(ctx context.Context, c *client, _ *Payload) error {
	game, err := that.games.GetGame(ctx, c.user.ID, c.gameID)
	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	that.sendTo(c, entity.EventGameState, Payload{
		GameID: c.gameID,
		Game:   game,
	})

	return nil
}

func (that *Server) handleGameLeave(ctx context.Context, c *client, _ *Payload) error {
	if _, err := that.games.Resign(ctx, c.user.ID, c.gameID); err != nil {
		return fmt.Errorf("failed to leave game: %w", err)
	}

	return nil
}

func (that *Server) handleChatMessage(ctx context.Context, c *client, payload *Payload) error {
	text := strings.TrimSpace(payload.Message)
	if text == "" {
		return nil
	}

	if len(text) > maxChatMessageLength {
		return fmt.Errorf("%w: message is too long", apperror.ErrValidation)
	}

	that.broadcast(ctx, &entity.GameEvent{
		Action:   entity.EventChatMessage,
		GameID:   c.gameID,
		UserID:   c.user.ID,
		Username: c.user.Username,
		Message:  text,
	})

	return nil
}

func errorDetail(err error) string {
	_, detail := rest.StatusOf(err)
	return detail
}
