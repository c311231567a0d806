package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rext-dev/Uno-Game/internal/db"
	"github.com/Rext-dev/Uno-Game/internal/logger"
	"github.com/Rext-dev/Uno-Game/internal/uno"

	"github.com/hashicorp/go-set/v2"
)

// DefaultRuleset is the rules tag of games created without one.
const DefaultRuleset = "standard"

// RosterManager owns game membership and seat positions.
type RosterManager struct {
	rules  Rules
	clock  func() time.Time
	logger logger.Logger
}

func NewRosterManager(rules Rules, clock func() time.Time, log logger.Logger) *RosterManager {
	return &RosterManager{rules: rules, clock: clock, logger: log}
}

// LeaveResult tells the caller what a departure did to a started game.
type LeaveResult struct {
	Player db.GamePlayer
	// Active is set when the game was running and the row was retired
	// instead of deleted.
	Active bool
	// Remaining counts the players still waiting or playing.
	Remaining int
}

func loadGame(tx db.Tx, gameID int64) (*db.Game, error) {
	game, err := tx.GetGame(gameID)
	if errors.Is(err, db.ErrNotFound) {
		return nil, uno.Errorf(uno.KindNotFound, "game %d not found", gameID)
	}
	return game, err
}

// CreateGame stores an inactive game and seats its creator at position 0.
func (r *RosterManager) CreateGame(tx db.Tx, title string, maxPlayers int, rules string, creatorID int64) (*db.Game, error) {
	if maxPlayers <= 0 || maxPlayers > r.rules.MaxPlayers {
		maxPlayers = r.rules.MaxPlayers
	}
	maxPlayers = max(maxPlayers, r.rules.MinPlayers)
	rules = strings.TrimSpace(rules)
	if rules == "" {
		rules = DefaultRuleset
	}
	now := r.clock()
	game := &db.Game{
		Title:      strings.TrimSpace(title),
		Status:     uno.GameInactive,
		MaxPlayers: maxPlayers,
		Rules:      rules,
		CreatorID:  creatorID,
		CreatedAt:  now,
	}
	if err := tx.InsertGame(game); err != nil {
		return nil, err
	}
	creator := &db.GamePlayer{
		GameID:   game.ID,
		PlayerID: creatorID,
		Status:   uno.PlayerWaiting,
		Position: 0,
		JoinedAt: now,
	}
	if err := tx.InsertPlayer(creator); err != nil {
		return nil, err
	}
	r.logger.Info(fmt.Sprintf("Player %d created game %d", creatorID, game.ID))
	return game, nil
}

// Join seats playerID at the end of the roster of an inactive game.
func (r *RosterManager) Join(tx db.Tx, gameID, playerID int64) (*db.GamePlayer, error) {
	game, err := loadGame(tx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Status != uno.GameInactive {
		return nil, uno.Errorf(uno.KindInvalidState, "game %d is %s, cannot join", gameID, game.Status)
	}
	if _, err := tx.GetPlayer(gameID, playerID); err == nil {
		return nil, uno.Errorf(uno.KindConflict, "player %d is already in game %d", playerID, gameID)
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, err
	}
	count, err := tx.CountPlayers(gameID)
	if err != nil {
		return nil, err
	}
	if count >= game.MaxPlayers {
		return nil, uno.Errorf(uno.KindCapacity, "game %d is full (%d players)", gameID, game.MaxPlayers)
	}
	player := &db.GamePlayer{
		GameID:   gameID,
		PlayerID: playerID,
		Status:   uno.PlayerWaiting,
		Position: count,
		JoinedAt: r.clock(),
	}
	if err := tx.InsertPlayer(player); err != nil {
		return nil, err
	}
	r.logger.Info(fmt.Sprintf("Player %d joined game %d at seat %d", playerID, gameID, count))
	return player, nil
}

// Leave removes playerID from the game. Before the start the row is
// deleted and the remaining seats are renumbered densely; afterwards the row
// is kept with status left and seats never move.
func (r *RosterManager) Leave(tx db.Tx, gameID, playerID int64) (LeaveResult, error) {
	player, err := tx.GetPlayer(gameID, playerID)
	if errors.Is(err, db.ErrNotFound) {
		return LeaveResult{}, uno.Errorf(uno.KindNotFound, "player %d is not in game %d", playerID, gameID)
	}
	if err != nil {
		return LeaveResult{}, err
	}
	game, err := loadGame(tx, gameID)
	if err != nil {
		return LeaveResult{}, err
	}

	switch game.Status {
	case uno.GameInactive:
		if err := tx.DeletePlayer(gameID, playerID); err != nil {
			return LeaveResult{}, err
		}
		remaining, err := r.renumber(tx, gameID)
		if err != nil {
			return LeaveResult{}, err
		}
		r.logger.Info(fmt.Sprintf("Player %d left lobby of game %d", playerID, gameID))
		return LeaveResult{Player: *player, Remaining: remaining}, nil
	case uno.GameActive:
		if player.Status.Present() {
			left := r.clock()
			player.Status = uno.PlayerLeft
			player.LeftAt = &left
			if err := tx.UpdatePlayer(player); err != nil {
				return LeaveResult{}, err
			}
			r.logger.Info(fmt.Sprintf("Player %d left running game %d", playerID, gameID))
		}
		players, err := tx.ListPlayers(gameID)
		if err != nil {
			return LeaveResult{}, err
		}
		return LeaveResult{Player: *player, Active: true, Remaining: countPresent(players)}, nil
	}
	players, err := tx.ListPlayers(gameID)
	if err != nil {
		return LeaveResult{}, err
	}
	return LeaveResult{Player: *player, Remaining: countPresent(players)}, nil
}

// renumber packs the positions of the remaining rows into 0..n-1 keeping
// their relative order. Rows only ever move to a lower, already vacated
// seat, so the per-game position uniqueness holds after every update.
func (r *RosterManager) renumber(tx db.Tx, gameID int64) (int, error) {
	players, err := tx.ListPlayers(gameID)
	if err != nil {
		return 0, err
	}
	for i := range players {
		if players[i].Position == i {
			continue
		}
		players[i].Position = i
		if err := tx.UpdatePlayer(&players[i]); err != nil {
			return 0, err
		}
	}
	return len(players), nil
}

func countPresent(players []db.GamePlayer) int {
	n := 0
	for _, p := range players {
		if p.Status.Present() {
			n++
		}
	}
	return n
}

// playingSeats is the set of positions whose occupant is playing.
func playingSeats(players []db.GamePlayer) *set.Set[int] {
	seats := set.New[int](len(players))
	for _, p := range players {
		if p.Status == uno.PlayerPlaying {
			seats.Insert(p.Position)
		}
	}
	return seats
}

func playerAt(players []db.GamePlayer, position int) *db.GamePlayer {
	for i := range players {
		if players[i].Position == position {
			return &players[i]
		}
	}
	return nil
}

func findPlayer(players []db.GamePlayer, playerID int64) *db.GamePlayer {
	for i := range players {
		if players[i].PlayerID == playerID {
			return &players[i]
		}
	}
	return nil
}
