package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/Rext-dev/Uno-Game/internal/db"
	"github.com/Rext-dev/Uno-Game/internal/logger"
	"github.com/Rext-dev/Uno-Game/internal/uno"
)

// TurnEngine drives the inactive -> active -> finished lifecycle and
// resolves every move made during a game.
type TurnEngine struct {
	rules  Rules
	deck   *DeckFactory
	scores *ScoreAggregator
	clock  func() time.Time
	logger logger.Logger
}

func NewTurnEngine(rules Rules, deck *DeckFactory, scores *ScoreAggregator, clock func() time.Time, log logger.Logger) *TurnEngine {
	return &TurnEngine{rules: rules, deck: deck, scores: scores, clock: clock, logger: log}
}

// turn is the state a move is checked and resolved against.
type turn struct {
	game    *db.Game
	state   *db.GameState
	players []db.GamePlayer
	actor   *db.GamePlayer
}

// Start moves the game to active, seats every waiting player and deals.
func (t *TurnEngine) Start(tx db.Tx, gameID, requesterID int64) error {
	game, err := loadGame(tx, gameID)
	if err != nil {
		return err
	}
	if game.CreatorID != requesterID {
		return uno.Errorf(uno.KindForbidden, "only the creator can start game %d", gameID)
	}
	if game.Status != uno.GameInactive {
		return uno.Errorf(uno.KindInvalidState, "game %d is already %s", gameID, game.Status)
	}
	count, err := tx.CountPlayers(gameID)
	if err != nil {
		return err
	}
	if count < t.rules.MinPlayers {
		return uno.Errorf(uno.KindInsufficientPlayers, "need at least %d players to start, have %d", t.rules.MinPlayers, count)
	}

	if err := tx.UpdateGameStatus(gameID, uno.GameActive); err != nil {
		return err
	}
	if err := tx.SetPlayersStatus(gameID, uno.PlayerPlaying, uno.PlayerWaiting); err != nil {
		return err
	}
	players, err := tx.ListPlayers(gameID)
	if err != nil {
		return err
	}

	now := t.clock()
	state := &db.GameState{
		GameID:          gameID,
		CurrentPosition: players[0].Position,
		Direction:       uno.Clockwise,
		UpdatedAt:       now,
	}
	cards, err := t.deck.BuildDeck(tx, gameID)
	if err != nil {
		return err
	}
	if err := t.deck.PersistDrawOrder(tx, cards); err != nil {
		return err
	}
	opening, err := t.deck.DealInitialHands(tx, gameID, players, state)
	if err != nil {
		return err
	}
	face := opening.Face()
	state.LastAction = db.Action{Kind: db.ActionStart, PlayerID: requesterID, Card: &face, At: now}
	if err := t.resolveOpening(tx, state, players, opening); err != nil {
		return err
	}
	if err := tx.InsertState(state); err != nil {
		return err
	}
	t.logger.Info(fmt.Sprintf("Game %d started with %d players", gameID, len(players)))
	return nil
}

// resolveOpening applies a colored action card flipped at the start as if
// a dealer seated just before the first seat had played it.
func (t *TurnEngine) resolveOpening(tx db.Tx, state *db.GameState, players []db.GamePlayer, opening db.Card) error {
	seats := playingSeats(players).Slice()
	first := state.CurrentPosition
	switch opening.Value {
	case uno.Skip:
		state.CurrentPosition, _ = uno.NextSeat(first, state.Direction, seats, 1)
	case uno.Reverse:
		state.Direction = state.Direction.Reverse()
	case uno.DrawTwo:
		victim := playerAt(players, first)
		if _, err := t.deck.DrawCards(tx, state.GameID, victim.PlayerID, opening.Value.Penalty()); err != nil {
			return err
		}
		state.DrawStack = opening.Value.Penalty()
		state.LastAction.Drawn = state.DrawStack
		state.LastAction.Target = &victim.PlayerID
		state.CurrentPosition, _ = uno.NextSeat(first, state.Direction, seats, 1)
	}
	return nil
}

// beginTurn loads a running game and checks that playerID holds the turn.
func (t *TurnEngine) beginTurn(tx db.Tx, gameID, playerID int64) (*turn, error) {
	game, err := loadGame(tx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Status != uno.GameActive {
		return nil, uno.Errorf(uno.KindInvalidState, "game %d is %s, not active", gameID, game.Status)
	}
	state, err := tx.GetState(gameID)
	if err != nil {
		return nil, err
	}
	players, err := tx.ListPlayers(gameID)
	if err != nil {
		return nil, err
	}
	actor := findPlayer(players, playerID)
	if actor == nil || actor.Status != uno.PlayerPlaying || actor.Position != state.CurrentPosition {
		return nil, uno.Errorf(uno.KindForbidden, "it is not player %d's turn", playerID)
	}
	return &turn{game: game, state: state, players: players, actor: actor}, nil
}

// advance moves the turn steps playing seats along the current direction.
func (tr *turn) advance(steps int) {
	seats := playingSeats(tr.players).Slice()
	if next, ok := uno.NextSeat(tr.state.CurrentPosition, tr.state.Direction, seats, steps); ok {
		tr.state.CurrentPosition = next
	}
}

// PlayCard puts cardID from playerID's hand on the discard pile and
// resolves its effect. Playing the last card finishes and scores the game.
func (t *TurnEngine) PlayCard(tx db.Tx, gameID, playerID, cardID int64, declared uno.Color) error {
	tr, err := t.beginTurn(tx, gameID, playerID)
	if err != nil {
		return err
	}
	card, err := tx.GetCard(gameID, cardID)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return err
	}
	if err != nil || !heldBy(card, playerID) {
		return uno.Errorf(uno.KindIllegalMove, "card %d is not in player %d's hand", cardID, playerID)
	}
	face := card.Face()
	state := tr.state
	if !uno.CanPlay(face, state.TopCard(), state.CurrentColor) {
		return uno.Errorf(uno.KindIllegalMove, "cannot play %s on %s (current color %s)", face, state.TopCard(), state.CurrentColor)
	}
	color := face.Color
	action := db.Action{Kind: db.ActionPlay, PlayerID: playerID, Card: &face, At: t.clock()}
	if face.Value.IsWild() {
		if !declared.Playable() {
			return uno.Errorf(uno.KindIllegalMove, "a %s needs a declared color", face.Value)
		}
		color = declared
		action.DeclaredColor = declared
	}
	if err := t.deck.Discard(tx, card); err != nil {
		return err
	}
	state.SetTopCard(face)
	state.CurrentColor = color
	state.DrawStack = 0

	switch face.Value {
	case uno.Skip:
		tr.advance(2)
	case uno.Reverse:
		state.Direction = state.Direction.Reverse()
		if playingSeats(tr.players).Size() == 2 {
			tr.advance(2)
		} else {
			tr.advance(1)
		}
	case uno.DrawTwo, uno.WildDrawFour:
		seats := playingSeats(tr.players).Slice()
		victimSeat, _ := uno.NextSeat(state.CurrentPosition, state.Direction, seats, 1)
		victim := playerAt(tr.players, victimSeat)
		penalty := face.Value.Penalty()
		if _, err := t.deck.DrawCards(tx, gameID, victim.PlayerID, penalty); err != nil {
			return err
		}
		state.DrawStack = penalty
		action.Drawn = penalty
		action.Target = &victim.PlayerID
		tr.advance(2)
	default:
		tr.advance(1)
	}
	state.LastAction = action
	state.UpdatedAt = action.At
	if err := tx.UpdateState(state); err != nil {
		return err
	}
	t.logger.Debug(fmt.Sprintf("Player %d played %s in game %d", playerID, face, gameID))

	hand, err := tx.ListHand(gameID, playerID)
	if err != nil {
		return err
	}
	if len(hand) > 0 {
		return nil
	}
	t.logger.Info(fmt.Sprintf("Player %d emptied their hand in game %d", playerID, gameID))
	if err := t.Finish(tx, gameID); err != nil {
		return err
	}
	_, err = t.scores.ComputeFinishScores(tx, gameID)
	return err
}

func heldBy(card *db.Card, playerID int64) bool {
	return card.Status == uno.InHand && card.OwnerID != nil && *card.OwnerID == playerID
}

// Draw gives the current player one card and passes the turn.
func (t *TurnEngine) Draw(tx db.Tx, gameID, playerID int64) error {
	tr, err := t.beginTurn(tx, gameID, playerID)
	if err != nil {
		return err
	}
	drawn, err := t.deck.DrawCards(tx, gameID, playerID, 1)
	if err != nil {
		return err
	}
	tr.advance(1)
	now := t.clock()
	tr.state.DrawStack = 0
	tr.state.LastAction = db.Action{Kind: db.ActionDraw, PlayerID: playerID, Drawn: len(drawn), At: now}
	tr.state.UpdatedAt = now
	return tx.UpdateState(tr.state)
}

// PassDeparted hands the turn on when the player who held it has left.
func (t *TurnEngine) PassDeparted(tx db.Tx, gameID int64, departed db.GamePlayer) error {
	state, err := tx.GetState(gameID)
	if err != nil {
		return err
	}
	if state.CurrentPosition != departed.Position {
		return nil
	}
	players, err := tx.ListPlayers(gameID)
	if err != nil {
		return err
	}
	tr := &turn{state: state, players: players}
	tr.advance(1)
	now := t.clock()
	state.LastAction = db.Action{Kind: db.ActionLeave, PlayerID: departed.PlayerID, At: now}
	state.UpdatedAt = now
	return tx.UpdateState(state)
}

// Finish force-moves the game to finished from any state and retires every
// roster row that has not left. Finishing a finished game does nothing.
func (t *TurnEngine) Finish(tx db.Tx, gameID int64) error {
	game, err := loadGame(tx, gameID)
	if err != nil {
		return err
	}
	if game.Status == uno.GameFinished {
		return nil
	}
	if err := tx.UpdateGameStatus(gameID, uno.GameFinished); err != nil {
		return err
	}
	if err := tx.SetPlayersStatus(gameID, uno.PlayerFinished, uno.PlayerWaiting, uno.PlayerPlaying); err != nil {
		return err
	}
	// Games finished before the start have no state to annotate. A game
	// won by a play keeps that play as its last action.
	state, err := tx.GetState(gameID)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return err
	}
	if state != nil && state.LastAction.Kind != db.ActionPlay {
		now := t.clock()
		state.LastAction = db.Action{Kind: db.ActionFinish, At: now}
		state.UpdatedAt = now
		if err := tx.UpdateState(state); err != nil {
			return err
		}
	}
	t.logger.Info(fmt.Sprintf("Game %d finished", gameID))
	return nil
}
