package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Rext-dev/Uno-Game/internal/uno"
)

type Game struct {
	ID         int64          `db:"id"`
	Title      string         `db:"title"`
	Status     uno.GameStatus `db:"status"`
	MaxPlayers int            `db:"max_players"`
	Rules      string         `db:"rules"`
	CreatorID  int64          `db:"creator_id"`
	CreatedAt  time.Time      `db:"created_at"`
}

// GamePlayer is one roster entry.
type GamePlayer struct {
	GameID   int64            `db:"game_id"`
	PlayerID int64            `db:"player_id"`
	Status   uno.PlayerStatus `db:"status"`
	Position int              `db:"position"`
	Score    int              `db:"score"`
	JoinedAt time.Time        `db:"joined_at"`
	LeftAt   *time.Time       `db:"left_at"`
}

// GameState holds the turn state of a started game.
type GameState struct {
	GameID          int64         `db:"game_id"`
	CurrentPosition int           `db:"current_position"`
	Direction       uno.Direction `db:"direction"`
	TopColor        uno.Color     `db:"top_color"`
	TopValue        uno.Value     `db:"top_value"`
	CurrentColor    uno.Color     `db:"current_color"`
	DrawStack       int           `db:"draw_stack"`
	LastAction      Action        `db:"last_action"`
	UpdatedAt       time.Time     `db:"updated_at"`
}

func (s *GameState) TopCard() uno.Face {
	return uno.Face{Color: s.TopColor, Value: s.TopValue}
}

func (s *GameState) SetTopCard(f uno.Face) {
	s.TopColor = f.Color
	s.TopValue = f.Value
}

type Card struct {
	ID      int64          `db:"id"`
	GameID  int64          `db:"game_id"`
	Color   uno.Color      `db:"color"`
	Value   uno.Value      `db:"value"`
	OwnerID *int64         `db:"owner_id"`
	Status  uno.CardStatus `db:"status"`
	// DrawOrder positions the card in the draw pile, lowest on top.
	DrawOrder int `db:"draw_order"`
	// DiscardSeq orders the discard pile, highest on top.
	DiscardSeq int `db:"discard_seq"`
}

func (c Card) Face() uno.Face {
	return uno.Face{Color: c.Color, Value: c.Value}
}

type Score struct {
	ID         int64     `db:"id"`
	GameID     int64     `db:"game_id"`
	PlayerID   int64     `db:"player_id"`
	Score      int       `db:"score"`
	RecordedAt time.Time `db:"recorded_at"`
}

type ActionKind string

const (
	ActionStart  ActionKind = "start"
	ActionPlay   ActionKind = "play"
	ActionDraw   ActionKind = "draw"
	ActionLeave  ActionKind = "leave"
	ActionFinish ActionKind = "finish"
)

// Action records the most recent move on a game. It is stored as JSON.
type Action struct {
	Kind          ActionKind `json:"kind,omitempty"`
	PlayerID      int64      `json:"playerId,omitempty"`
	Card          *uno.Face  `json:"card,omitempty"`
	DeclaredColor uno.Color  `json:"declaredColor,omitempty"`
	// Drawn is the number of cards drawn by the action or forced on Target.
	Drawn  int       `json:"drawn,omitempty"`
	Target *int64    `json:"target,omitempty"`
	At     time.Time `json:"at"`
}

func (a Action) Value() (driver.Value, error) {
	if a.Kind == "" {
		return "", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (a *Action) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*a = Action{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into Action", src)
	}
	if len(raw) == 0 {
		*a = Action{}
		return nil
	}
	return json.Unmarshal(raw, a)
}
