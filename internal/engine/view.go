package engine

import (
	"time"

	"github.com/Rext-dev/Uno-Game/internal/db"
	"github.com/Rext-dev/Uno-Game/internal/uno"
)

type GameView struct {
	ID         int64          `json:"id"`
	Title      string         `json:"title"`
	Status     uno.GameStatus `json:"status"`
	MaxPlayers int            `json:"maxPlayers"`
	Rules      string         `json:"rules"`
	CreatorID  int64          `json:"creatorId"`
}

type PlayerView struct {
	ID        int64            `json:"id"`
	Position  int              `json:"position"`
	Status    uno.PlayerStatus `json:"status"`
	Score     int              `json:"score"`
	CardCount int              `json:"cardCount"`
	JoinedAt  time.Time        `json:"joinedAt"`
	LeftAt    *time.Time       `json:"leftAt"`
}

// GameStatusView is the snapshot returned by every engine operation. The
// turn fields are nil until the game has started and keep their last values
// once it has finished.
type GameStatusView struct {
	Game            GameView      `json:"game"`
	Players         []PlayerView  `json:"players"`
	CurrentPlayer   *int          `json:"currentPlayer"`
	CurrentPlayerID *int64        `json:"currentPlayerId"`
	Direction       uno.Direction `json:"direction,omitempty"`
	TopDiscardCard  *uno.Face     `json:"topDiscardCard"`
	CurrentColor    uno.Color     `json:"currentColor,omitempty"`
	DrawStack       int           `json:"drawStack"`
	LastAction      *db.Action    `json:"lastAction,omitempty"`
}

type CurrentPlayerView struct {
	ID       int64 `json:"id"`
	Position int   `json:"position"`
}

type ScoreView struct {
	PlayerID int64 `json:"playerId"`
	Score    int   `json:"score"`
}

type CardView struct {
	ID    int64     `json:"id"`
	Color uno.Color `json:"color"`
	Value uno.Value `json:"value"`
}

func gameView(g *db.Game) GameView {
	return GameView{
		ID:         g.ID,
		Title:      g.Title,
		Status:     g.Status,
		MaxPlayers: g.MaxPlayers,
		Rules:      g.Rules,
		CreatorID:  g.CreatorID,
	}
}

func cardViews(cards []db.Card) []CardView {
	views := make([]CardView, len(cards))
	for i, c := range cards {
		views[i] = CardView{ID: c.ID, Color: c.Color, Value: c.Value}
	}
	return views
}
