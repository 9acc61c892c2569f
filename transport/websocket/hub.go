package websocket

import (
	"sync"
)

// hub - registry of rooms, one room per game with every connection watching it.
type hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}
}

func newHub() *hub {
	return &hub{
		rooms: make(map[string]map[*client]struct{}),
	}
}

func (that *hub) join(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, ok := that.rooms[c.gameID]
	if !ok {
		room = make(map[*client]struct{})
		that.rooms[c.gameID] = room
	}

	room[c] = struct{}{}
}

// leave - removes the client, reports false when it was already gone.
func (that *hub) leave(c *client) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, ok := that.rooms[c.gameID]
	if !ok {
		return false
	}

	if _, ok = room[c]; !ok {
		return false
	}

	delete(room, c)

	if len(room) == 0 {
		delete(that.rooms, c.gameID)
	}

	return true
}

func (that *hub) clients(gameID string) []*client {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room := that.rooms[gameID]

	clients := make([]*client, 0, len(room))
	for c := range room {
		clients = append(clients, c)
	}

	return clients
}

func (that *hub) all() []*client {
	that.mu.RLock()
	defer that.mu.RUnlock()

	var clients []*client
	for _, room := range that.rooms {
		for c := range room {
			clients = append(clients, c)
		}
	}

	return clients
}

func (that *hub) count(gameID string) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rooms[gameID])
}
