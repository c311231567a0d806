package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/Rext-dev/Uno-Game/internal/db"
	"github.com/Rext-dev/Uno-Game/internal/logger"
	"github.com/Rext-dev/Uno-Game/internal/uno"
)

// Rules are the table limits shared by every game.
type Rules struct {
	MinPlayers int
	MaxPlayers int
	HandSize   int
}

func DefaultRules() Rules {
	return Rules{MinPlayers: 2, MaxPlayers: 10, HandSize: 7}
}

// Engine exposes the game operations. Each call runs in a single store
// transaction and returns a snapshot read inside that same transaction.
type Engine struct {
	store  db.Store
	roster *RosterManager
	deck   *DeckFactory
	turns  *TurnEngine
	scores *ScoreAggregator
	Logger logger.Logger
}

func New(store db.Store, rules Rules, rng *rand.Rand, log logger.Logger) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	clock := time.Now
	deck := NewDeckFactory(rng, rules.HandSize, log.With("component", "deck"))
	scores := NewScoreAggregator(clock, log.With("component", "scores"))
	return &Engine{
		store:  store,
		roster: NewRosterManager(rules, clock, log.With("component", "roster")),
		deck:   deck,
		turns:  NewTurnEngine(rules, deck, scores, clock, log.With("component", "turns")),
		scores: scores,
		Logger: log,
	}
}

func (e *Engine) run(ctx context.Context, op string, fn func(tx db.Tx) error) error {
	err := e.store.WithTx(ctx, fn)
	if err == nil {
		return nil
	}
	var domainErr *uno.Error
	if errors.As(err, &domainErr) {
		e.Logger.Debug(fmt.Sprintf("%s rejected: %s", op, err))
		return err
	}
	e.Logger.Error(fmt.Sprintf("%s failed", op), err)
	return fmt.Errorf("%s: %w", op, err)
}

func (e *Engine) CreateGame(ctx context.Context, title string, maxPlayers int, rules string, creatorID int64) (int64, error) {
	var gameID int64
	err := e.run(ctx, "create game", func(tx db.Tx) error {
		game, err := e.roster.CreateGame(tx, title, maxPlayers, rules, creatorID)
		if err != nil {
			return err
		}
		gameID = game.ID
		return nil
	})
	return gameID, err
}

// mutate runs fn and reads the resulting status in the same transaction.
func (e *Engine) mutate(ctx context.Context, op string, gameID int64, fn func(tx db.Tx) error) (*GameStatusView, error) {
	var view *GameStatusView
	err := e.run(ctx, op, func(tx db.Tx) error {
		if err := fn(tx); err != nil {
			return err
		}
		v, err := e.status(tx, gameID)
		view = v
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (e *Engine) JoinGame(ctx context.Context, gameID, playerID int64) (*GameStatusView, error) {
	return e.mutate(ctx, "join game", gameID, func(tx db.Tx) error {
		_, err := e.roster.Join(tx, gameID, playerID)
		return err
	})
}

// LeaveGame removes the player. A running game that drops below the
// minimum number of players is finished.
func (e *Engine) LeaveGame(ctx context.Context, gameID, playerID int64) (*GameStatusView, error) {
	return e.mutate(ctx, "leave game", gameID, func(tx db.Tx) error {
		res, err := e.roster.Leave(tx, gameID, playerID)
		if err != nil || !res.Active {
			return err
		}
		if res.Remaining < e.roster.rules.MinPlayers {
			return e.turns.Finish(tx, gameID)
		}
		return e.turns.PassDeparted(tx, gameID, res.Player)
	})
}

func (e *Engine) StartGame(ctx context.Context, gameID, requesterID int64) (*GameStatusView, error) {
	return e.mutate(ctx, "start game", gameID, func(tx db.Tx) error {
		return e.turns.Start(tx, gameID, requesterID)
	})
}

func (e *Engine) FinishGame(ctx context.Context, gameID int64) (*GameStatusView, error) {
	return e.mutate(ctx, "finish game", gameID, func(tx db.Tx) error {
		return e.turns.Finish(tx, gameID)
	})
}

// FinishGameAs finishes the game on behalf of requesterID, who must be its
// creator.
func (e *Engine) FinishGameAs(ctx context.Context, gameID, requesterID int64) (*GameStatusView, error) {
	return e.mutate(ctx, "finish game", gameID, func(tx db.Tx) error {
		game, err := loadGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.CreatorID != requesterID {
			return uno.Errorf(uno.KindForbidden, "only the creator can finish game %d", gameID)
		}
		return e.turns.Finish(tx, gameID)
	})
}

func (e *Engine) PlayCard(ctx context.Context, gameID, playerID, cardID int64, declared uno.Color) (*GameStatusView, error) {
	return e.mutate(ctx, "play card", gameID, func(tx db.Tx) error {
		return e.turns.PlayCard(tx, gameID, playerID, cardID, declared)
	})
}

func (e *Engine) DrawCard(ctx context.Context, gameID, playerID int64) (*GameStatusView, error) {
	return e.mutate(ctx, "draw card", gameID, func(tx db.Tx) error {
		return e.turns.Draw(tx, gameID, playerID)
	})
}

func (e *Engine) GetGameStatus(ctx context.Context, gameID int64) (*GameStatusView, error) {
	return e.mutate(ctx, "get game status", gameID, func(db.Tx) error { return nil })
}

func (e *Engine) GetGamePlayers(ctx context.Context, gameID int64) ([]PlayerView, error) {
	view, err := e.GetGameStatus(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return view.Players, nil
}

func (e *Engine) GetCurrentPlayer(ctx context.Context, gameID int64) (*CurrentPlayerView, error) {
	var current *CurrentPlayerView
	err := e.run(ctx, "get current player", func(tx db.Tx) error {
		game, err := loadGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.Status != uno.GameActive {
			return uno.Errorf(uno.KindInvalidState, "game %d is not active", gameID)
		}
		state, err := tx.GetState(gameID)
		if err != nil {
			return err
		}
		players, err := tx.ListPlayers(gameID)
		if err != nil {
			return err
		}
		p := playerAt(players, state.CurrentPosition)
		if p == nil {
			return fmt.Errorf("no player at seat %d of game %d", state.CurrentPosition, gameID)
		}
		current = &CurrentPlayerView{ID: p.PlayerID, Position: p.Position}
		return nil
	})
	return current, err
}

// GetTopDiscardCard returns nil before the game has started.
func (e *Engine) GetTopDiscardCard(ctx context.Context, gameID int64) (*uno.Face, error) {
	view, err := e.GetGameStatus(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return view.TopDiscardCard, nil
}

// GetGameScores lists every roster entry by descending score.
func (e *Engine) GetGameScores(ctx context.Context, gameID int64) ([]ScoreView, error) {
	var scores []ScoreView
	err := e.run(ctx, "get game scores", func(tx db.Tx) error {
		if _, err := loadGame(tx, gameID); err != nil {
			return err
		}
		players, err := tx.ListPlayers(gameID)
		if err != nil {
			return err
		}
		sort.SliceStable(players, func(i, j int) bool { return players[i].Score > players[j].Score })
		scores = make([]ScoreView, len(players))
		for i, p := range players {
			scores[i] = ScoreView{PlayerID: p.PlayerID, Score: p.Score}
		}
		return nil
	})
	return scores, err
}

// GetHand lists the cards held by playerID.
func (e *Engine) GetHand(ctx context.Context, gameID, playerID int64) ([]CardView, error) {
	var hand []CardView
	err := e.run(ctx, "get hand", func(tx db.Tx) error {
		if _, err := tx.GetPlayer(gameID, playerID); errors.Is(err, db.ErrNotFound) {
			return uno.Errorf(uno.KindNotFound, "player %d is not in game %d", playerID, gameID)
		} else if err != nil {
			return err
		}
		cards, err := tx.ListHand(gameID, playerID)
		if err != nil {
			return err
		}
		hand = cardViews(cards)
		return nil
	})
	return hand, err
}

func (e *Engine) status(tx db.Tx, gameID int64) (*GameStatusView, error) {
	game, err := loadGame(tx, gameID)
	if err != nil {
		return nil, err
	}
	players, err := tx.ListPlayers(gameID)
	if err != nil {
		return nil, err
	}
	view := &GameStatusView{Game: gameView(game), Players: make([]PlayerView, len(players))}
	for i, p := range players {
		hand, err := tx.ListHand(gameID, p.PlayerID)
		if err != nil {
			return nil, err
		}
		view.Players[i] = PlayerView{
			ID:        p.PlayerID,
			Position:  p.Position,
			Status:    p.Status,
			Score:     p.Score,
			CardCount: len(hand),
			JoinedAt:  p.JoinedAt,
			LeftAt:    p.LeftAt,
		}
	}

	state, err := tx.GetState(gameID)
	if errors.Is(err, db.ErrNotFound) {
		return view, nil
	}
	if err != nil {
		return nil, err
	}
	position := state.CurrentPosition
	view.CurrentPlayer = &position
	if p := playerAt(players, position); p != nil {
		id := p.PlayerID
		view.CurrentPlayerID = &id
	}
	view.Direction = state.Direction
	if top := state.TopCard(); !top.IsZero() {
		view.TopDiscardCard = &top
	}
	view.CurrentColor = state.CurrentColor
	view.DrawStack = state.DrawStack
	if state.LastAction.Kind != "" {
		action := state.LastAction
		view.LastAction = &action
	}
	return view, nil
}
