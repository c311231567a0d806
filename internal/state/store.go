package state

import (
	"slices"
	"sync"
)

// Conn is the part of a websocket connection the store needs.
// *websocket.Conn satisfies it.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Session is one open websocket of a player in a game. Writes are
// serialized because a websocket allows one concurrent writer.
type Session struct {
	GameID   int64
	PlayerID int64

	mu   sync.Mutex
	conn Conn
}

func (s *Session) WriteJSON(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}

type ConnectionStore interface {
	AddConnection(gameID, playerID int64, conn Conn) *Session
	RemoveConnection(gameID, playerID int64, session *Session)
	GetConnection(gameID, playerID int64) *Session
	Players(gameID int64) []int64
	CloseAll() int
}

type InMemoryConnectionStore struct {
	mu    sync.Mutex
	conns map[int64]map[int64]*Session
}

func NewConnectionStore() *InMemoryConnectionStore {
	return &InMemoryConnectionStore{conns: make(map[int64]map[int64]*Session)}
}

// AddConnection registers conn for the player. A previous session of the
// same player in the same game is closed and replaced.
func (c *InMemoryConnectionStore) AddConnection(gameID, playerID int64, conn Conn) *Session {
	session := &Session{GameID: gameID, PlayerID: playerID, conn: conn}
	c.mu.Lock()
	gameConns, exists := c.conns[gameID]
	if !exists {
		gameConns = make(map[int64]*Session)
		c.conns[gameID] = gameConns
	}
	old := gameConns[playerID]
	gameConns[playerID] = session
	c.mu.Unlock()
	if old != nil {
		old.Close()
	}
	return session
}

// RemoveConnection forgets the player's session if it is still session, so
// a replaced session going away does not drop its successor.
func (c *InMemoryConnectionStore) RemoveConnection(gameID, playerID int64, session *Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	gameConns, exists := c.conns[gameID]
	if !exists || gameConns[playerID] != session {
		return
	}
	delete(gameConns, playerID)
	if len(gameConns) == 0 {
		delete(c.conns, gameID)
	}
}

func (c *InMemoryConnectionStore) GetConnection(gameID, playerID int64) *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conns[gameID][playerID]
}

// Players lists the ids with an open session in the game, ascending.
func (c *InMemoryConnectionStore) Players(gameID int64) []int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	players := make([]int64, 0, len(c.conns[gameID]))
	for id := range c.conns[gameID] {
		players = append(players, id)
	}
	slices.Sort(players)
	return players
}

// CloseAll closes every session and empties the store. It returns the number
// of sessions closed.
func (c *InMemoryConnectionStore) CloseAll() int {
	c.mu.Lock()
	conns := c.conns
	c.conns = make(map[int64]map[int64]*Session)
	c.mu.Unlock()
	closed := 0
	for _, gameConns := range conns {
		for _, session := range gameConns {
			session.Close()
			closed++
		}
	}
	return closed
}
