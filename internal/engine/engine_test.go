package engine

import (
	"context"
	"errors"
	"math/rand"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Rext-dev/Uno-Game/internal/db"
	"github.com/Rext-dev/Uno-Game/internal/logger"
	"github.com/Rext-dev/Uno-Game/internal/uno"

	"github.com/hashicorp/go-set/v2"
	"github.com/stretchr/testify/suite"
)

// With the deck left in canonical order and two players, the creator holds
// red 0..6, the second player red 1..7 and red 7 is the opening card. The
// draw pile then starts with red 8.
const twoPlayerOpening = 14

// Three players deal 21 cards, which would open on a red reverse. Swapping
// it with red 8 keeps the opening a plain number.
var threePlayerSwap = [2]int{21, 15}

type EngineTestSuite struct {
	suite.Suite
	ctx    context.Context
	store  *db.SqliteStore
	engine *Engine
}

func (s *EngineTestSuite) SetupTest() {
	s.ctx = context.Background()
	store, err := db.SetupDB(filepath.Join(s.T().TempDir(), "uno"), logger.New("test_logger"))
	s.Require().NoError(err)
	s.store = store
	s.engine = New(store, DefaultRules(), rand.New(rand.NewSource(42)), logger.New("test_logger"))
}

func (s *EngineTestSuite) TearDownTest() {
	s.store.CloseConnection()
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) orderedDeck(swaps ...[2]int) {
	s.engine.deck.shuffle = func(cards []db.Card) {
		for _, sw := range swaps {
			cards[sw[0]], cards[sw[1]] = cards[sw[1]], cards[sw[0]]
		}
	}
}

func (s *EngineTestSuite) newGame(maxPlayers int, players ...int64) int64 {
	gameID, err := s.engine.CreateGame(s.ctx, "T", maxPlayers, "standard", players[0])
	s.Require().NoError(err)
	for _, p := range players[1:] {
		_, err := s.engine.JoinGame(s.ctx, gameID, p)
		s.Require().NoError(err)
	}
	return gameID
}

func (s *EngineTestSuite) startedGame(players ...int64) int64 {
	gameID := s.newGame(len(players), players...)
	_, err := s.engine.StartGame(s.ctx, gameID, players[0])
	s.Require().NoError(err)
	return gameID
}

func (s *EngineTestSuite) tx(fn func(tx db.Tx) error) {
	s.Require().NoError(s.store.WithTx(s.ctx, fn))
}

func (s *EngineTestSuite) hand(gameID, playerID int64) []db.Card {
	var cards []db.Card
	s.tx(func(tx db.Tx) error {
		var err error
		cards, err = tx.ListHand(gameID, playerID)
		return err
	})
	return cards
}

func (s *EngineTestSuite) counts(gameID int64) map[uno.CardStatus]int {
	var counts map[uno.CardStatus]int
	s.tx(func(tx db.Tx) error {
		var err error
		counts, err = tx.CountCards(gameID)
		return err
	})
	return counts
}

// giveCard moves a card with face f into playerID's hand, taking it from
// the draw pile or, failing that, from another player's hand.
func (s *EngineTestSuite) giveCard(gameID, playerID int64, f uno.Face) int64 {
	var id int64
	s.tx(func(tx db.Tx) error {
		pile, err := tx.ListCards(gameID, uno.InDeck)
		if err != nil {
			return err
		}
		held, err := tx.ListCards(gameID, uno.InHand)
		if err != nil {
			return err
		}
		for _, c := range append(pile, held...) {
			if c.Face() == f && !heldBy(&c, playerID) {
				owner := playerID
				c.Status = uno.InHand
				c.OwnerID = &owner
				id = c.ID
				return tx.UpdateCards(c)
			}
		}
		return errors.New("no card with that face to give")
	})
	return id
}

func (s *EngineTestSuite) returnToDeck(cards ...db.Card) {
	s.tx(func(tx db.Tx) error {
		for i := range cards {
			cards[i].Status = uno.InDeck
			cards[i].OwnerID = nil
			cards[i].DrawOrder = 1000 + i
		}
		return tx.UpdateCards(cards...)
	})
}

func (s *EngineTestSuite) assertCardTotal(gameID int64) {
	total := 0
	for _, n := range s.counts(gameID) {
		total += n
	}
	s.Equal(uno.DeckSize, total)
}

func (s *EngineTestSuite) TestCreateGameSeatsCreator() {
	gameID, err := s.engine.CreateGame(s.ctx, "T", 0, "", 1)
	s.Require().NoError(err)
	view, err := s.engine.GetGameStatus(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal(uno.GameInactive, view.Game.Status)
	s.Equal(10, view.Game.MaxPlayers, "zero means the configured cap")
	s.Equal(DefaultRuleset, view.Game.Rules)
	s.Require().Len(view.Players, 1)
	s.Equal(int64(1), view.Players[0].ID)
	s.Equal(0, view.Players[0].Position)
	s.Equal(uno.PlayerWaiting, view.Players[0].Status)
	s.Nil(view.CurrentPlayer)
	s.Nil(view.TopDiscardCard)

	capped, err := s.engine.CreateGame(s.ctx, "big", 50, "standard", 1)
	s.Require().NoError(err)
	view, err = s.engine.GetGameStatus(s.ctx, capped)
	s.Require().NoError(err)
	s.Equal(10, view.Game.MaxPlayers)
}

func (s *EngineTestSuite) TestJoinUntilCapacity() {
	gameID := s.newGame(3, 1)
	for _, p := range []int64{2, 3} {
		_, err := s.engine.JoinGame(s.ctx, gameID, p)
		s.Require().NoError(err)
	}
	_, err := s.engine.JoinGame(s.ctx, gameID, 4)
	s.ErrorIs(err, uno.ErrCapacity)

	view, err := s.engine.GetGameStatus(s.ctx, gameID)
	s.Require().NoError(err)
	s.Len(view.Players, 3)
	for i, p := range view.Players {
		s.Equal(i, p.Position)
	}
}

func (s *EngineTestSuite) TestJoinFailures() {
	_, err := s.engine.JoinGame(s.ctx, 999, 2)
	s.ErrorIs(err, uno.ErrNotFound)

	gameID := s.newGame(4, 1, 2)
	_, err = s.engine.JoinGame(s.ctx, gameID, 2)
	s.ErrorIs(err, uno.ErrConflict)

	_, err = s.engine.StartGame(s.ctx, gameID, 1)
	s.Require().NoError(err)
	_, err = s.engine.JoinGame(s.ctx, gameID, 3)
	s.ErrorIs(err, uno.ErrInvalidState)
}

func (s *EngineTestSuite) TestConcurrentJoinsNeverExceedCapacity() {
	gameID := s.newGame(2, 1)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.engine.JoinGame(s.ctx, gameID, int64(10+i))
		}(i)
	}
	wg.Wait()

	capacity := 0
	for _, err := range errs {
		if err != nil {
			s.ErrorIs(err, uno.ErrCapacity)
			capacity++
		}
	}
	s.Equal(1, capacity)
	players, err := s.engine.GetGamePlayers(s.ctx, gameID)
	s.Require().NoError(err)
	s.Len(players, 2)
}

func (s *EngineTestSuite) TestConcurrentJoinsFillLargeTable() {
	gameID := s.newGame(5, 1)
	var wg sync.WaitGroup
	var mu sync.Mutex
	joined, full := 0, 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(p int64) {
			defer wg.Done()
			_, err := s.engine.JoinGame(s.ctx, gameID, p)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				joined++
			} else if errors.Is(err, uno.ErrCapacity) {
				full++
			}
		}(int64(100 + i))
	}
	wg.Wait()
	s.Equal(4, joined)
	s.Equal(6, full)
	players, err := s.engine.GetGamePlayers(s.ctx, gameID)
	s.Require().NoError(err)
	seats := make([]int, len(players))
	for i, p := range players {
		seats[i] = p.Position
	}
	s.Equal([]int{0, 1, 2, 3, 4}, seats)
}

func (s *EngineTestSuite) TestLeaveInactiveRenumbersSeats() {
	gameID := s.newGame(4, 1, 2, 3, 4)
	view, err := s.engine.LeaveGame(s.ctx, gameID, 2)
	s.Require().NoError(err)
	s.Require().Len(view.Players, 3)
	for i, want := range []int64{1, 3, 4} {
		s.Equal(want, view.Players[i].ID)
		s.Equal(i, view.Players[i].Position)
	}

	_, err = s.engine.JoinGame(s.ctx, gameID, 5)
	s.Require().NoError(err)
	players, err := s.engine.GetGamePlayers(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal(int64(5), players[3].ID)
	s.Equal(3, players[3].Position)

	_, err = s.engine.LeaveGame(s.ctx, gameID, 42)
	s.ErrorIs(err, uno.ErrNotFound)
}

func (s *EngineTestSuite) TestStartChecks() {
	gameID := s.newGame(4, 1)
	_, err := s.engine.StartGame(s.ctx, gameID, 1)
	s.ErrorIs(err, uno.ErrInsufficientPlayers)

	_, err = s.engine.JoinGame(s.ctx, gameID, 2)
	s.Require().NoError(err)
	_, err = s.engine.StartGame(s.ctx, gameID, 2)
	s.ErrorIs(err, uno.ErrForbidden)

	_, err = s.engine.StartGame(s.ctx, gameID, 1)
	s.Require().NoError(err)
	_, err = s.engine.StartGame(s.ctx, gameID, 1)
	s.ErrorIs(err, uno.ErrInvalidState)

	_, err = s.engine.StartGame(s.ctx, 999, 1)
	s.ErrorIs(err, uno.ErrNotFound)
}

func (s *EngineTestSuite) TestStartDealsHands() {
	players := []int64{1, 2, 3}
	gameID := s.startedGame(players...)

	view, err := s.engine.GetGameStatus(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal(uno.GameActive, view.Game.Status)
	s.Require().NotNil(view.TopDiscardCard)
	s.False(view.TopDiscardCard.Value.IsWild(), "wild openings are reflipped")
	s.True(view.CurrentColor.Playable())
	for _, p := range view.Players {
		s.Equal(uno.PlayerPlaying, p.Status)
	}
	counts := s.counts(gameID)
	dealt := 0
	for _, p := range players {
		dealt += len(s.hand(gameID, p))
	}
	s.Equal(uno.DeckSize-dealt, counts[uno.InDeck]+counts[uno.InDiscard])
	s.Equal(1, counts[uno.InDiscard])
	s.assertCardTotal(gameID)
}

func (s *EngineTestSuite) TestStartScenario() {
	s.orderedDeck()
	gameID, err := s.engine.CreateGame(s.ctx, "T", 2, "standard", 1)
	s.Require().NoError(err)
	_, err = s.engine.JoinGame(s.ctx, gameID, 2)
	s.Require().NoError(err)
	view, err := s.engine.StartGame(s.ctx, gameID, 1)
	s.Require().NoError(err)

	s.Equal(uno.GameActive, view.Game.Status)
	s.Require().Len(view.Players, 2)
	for _, p := range view.Players {
		s.Equal(uno.PlayerPlaying, p.Status)
		s.Equal(7, p.CardCount)
	}
	s.Require().NotNil(view.CurrentPlayer)
	s.Equal(0, *view.CurrentPlayer)
	s.Equal(uno.Clockwise, view.Direction)
	s.Equal(0, view.DrawStack)
	s.Equal(&uno.Face{Color: uno.Red, Value: uno.Number(7)}, view.TopDiscardCard)
	s.Equal(uno.Red, view.CurrentColor)
	s.Equal(1, s.counts(gameID)[uno.InDiscard])
	s.Equal(uno.DeckSize-15, s.counts(gameID)[uno.InDeck])
}

func (s *EngineTestSuite) TestDecksOfDifferentGamesDoNotOverlap() {
	first := s.startedGame(1, 2)
	second := s.startedGame(3, 4)
	ids := func(gameID int64) *set.Set[int64] {
		out := set.New[int64](uno.DeckSize)
		s.tx(func(tx db.Tx) error {
			for _, st := range []uno.CardStatus{uno.InDeck, uno.InHand, uno.InDiscard} {
				cards, err := tx.ListCards(gameID, st)
				if err != nil {
					return err
				}
				for _, c := range cards {
					out.Insert(c.ID)
				}
			}
			return nil
		})
		return out
	}
	a, b := ids(first), ids(second)
	s.Equal(uno.DeckSize, a.Size())
	s.Equal(uno.DeckSize, b.Size())
	s.Zero(a.Intersect(b).Size())
}

func (s *EngineTestSuite) TestOpeningCards() {
	tests := []struct {
		name      string
		swap      int
		position  int
		direction uno.Direction
		top       uno.Face
		handSizes [2]int
	}{
		{"skip", 19, 1, uno.Clockwise, uno.Face{Color: uno.Red, Value: uno.Skip}, [2]int{7, 7}},
		{"reverse", 21, 0, uno.Counterclockwise, uno.Face{Color: uno.Red, Value: uno.Reverse}, [2]int{7, 7}},
		{"draw two", 23, 1, uno.Clockwise, uno.Face{Color: uno.Red, Value: uno.DrawTwo}, [2]int{9, 7}},
		{"wild is reflipped", 100, 0, uno.Clockwise, uno.Face{Color: uno.Red, Value: uno.Number(8)}, [2]int{7, 7}},
	}
	for i, tt := range tests {
		s.Run(tt.name, func() {
			s.orderedDeck([2]int{twoPlayerOpening, tt.swap})
			creator := int64(10 * (i + 1))
			gameID := s.startedGame(creator, creator+1)
			view, err := s.engine.GetGameStatus(s.ctx, gameID)
			s.Require().NoError(err)
			s.Equal(tt.position, *view.CurrentPlayer)
			s.Equal(tt.direction, view.Direction)
			s.Equal(tt.top, *view.TopDiscardCard)
			s.Len(s.hand(gameID, creator), tt.handSizes[0])
			s.Len(s.hand(gameID, creator+1), tt.handSizes[1])
			s.assertCardTotal(gameID)
		})
	}
}

func (s *EngineTestSuite) TestPlayNumberAdvances() {
	s.orderedDeck(threePlayerSwap)
	gameID := s.startedGame(1, 2, 3)
	hand := s.hand(gameID, 1)
	view, err := s.engine.PlayCard(s.ctx, gameID, 1, hand[0].ID, "")
	s.Require().NoError(err)
	s.Equal(1, *view.CurrentPlayer)
	s.Equal(uno.Face{Color: uno.Red, Value: uno.Number(0)}, *view.TopDiscardCard)
	s.Equal(db.ActionPlay, view.LastAction.Kind)
	s.Len(s.hand(gameID, 1), 6)
	s.Equal(2, s.counts(gameID)[uno.InDiscard])
	s.assertCardTotal(gameID)
}

func (s *EngineTestSuite) TestPlayRejections() {
	s.orderedDeck()
	gameID := s.startedGame(1, 2)

	p2 := s.hand(gameID, 2)
	_, err := s.engine.PlayCard(s.ctx, gameID, 2, p2[0].ID, "")
	s.ErrorIs(err, uno.ErrForbidden)

	_, err = s.engine.PlayCard(s.ctx, gameID, 1, p2[0].ID, "")
	s.ErrorIs(err, uno.ErrIllegalMove, "card of another player")

	blue := s.giveCard(gameID, 1, uno.Face{Color: uno.Blue, Value: uno.Number(5)})
	_, err = s.engine.PlayCard(s.ctx, gameID, 1, blue, "")
	s.ErrorIs(err, uno.ErrIllegalMove)

	wild := s.giveCard(gameID, 1, uno.Face{Color: uno.Black, Value: uno.Wild})
	_, err = s.engine.PlayCard(s.ctx, gameID, 1, wild, "")
	s.ErrorIs(err, uno.ErrIllegalMove)
	_, err = s.engine.PlayCard(s.ctx, gameID, 1, wild, uno.Black)
	s.ErrorIs(err, uno.ErrIllegalMove)

	view, err := s.engine.PlayCard(s.ctx, gameID, 1, wild, uno.Blue)
	s.Require().NoError(err)
	s.Equal(uno.Blue, view.CurrentColor)
	s.Equal(uno.Face{Color: uno.Black, Value: uno.Wild}, *view.TopDiscardCard)
	s.Equal(uno.Blue, view.LastAction.DeclaredColor)
	s.Equal(1, *view.CurrentPlayer)

	_, err = s.engine.PlayCard(s.ctx, 999, 1, wild, uno.Blue)
	s.ErrorIs(err, uno.ErrNotFound)
}

func (s *EngineTestSuite) TestReverseWithTwoPlayersActsAsSkip() {
	s.orderedDeck()
	gameID := s.startedGame(1, 2)
	reverse := s.giveCard(gameID, 1, uno.Face{Color: uno.Red, Value: uno.Reverse})
	view, err := s.engine.PlayCard(s.ctx, gameID, 1, reverse, "")
	s.Require().NoError(err)
	s.Equal(0, *view.CurrentPlayer)
	s.Equal(int64(1), *view.CurrentPlayerID)
	s.Equal(uno.Counterclockwise, view.Direction)
}

func (s *EngineTestSuite) TestReverseWithThreePlayers() {
	s.orderedDeck(threePlayerSwap)
	gameID := s.startedGame(1, 2, 3)
	reverse := s.giveCard(gameID, 1, uno.Face{Color: uno.Red, Value: uno.Reverse})
	view, err := s.engine.PlayCard(s.ctx, gameID, 1, reverse, "")
	s.Require().NoError(err)
	s.Equal(2, *view.CurrentPlayer)
	s.Equal(uno.Counterclockwise, view.Direction)
}

func (s *EngineTestSuite) TestSkip() {
	s.orderedDeck(threePlayerSwap)
	gameID := s.startedGame(1, 2, 3)
	skip := s.giveCard(gameID, 1, uno.Face{Color: uno.Red, Value: uno.Skip})
	view, err := s.engine.PlayCard(s.ctx, gameID, 1, skip, "")
	s.Require().NoError(err)
	s.Equal(2, *view.CurrentPlayer)
}

func (s *EngineTestSuite) TestDrawPenalties() {
	s.orderedDeck(threePlayerSwap)
	gameID := s.startedGame(1, 2, 3)
	drawTwo := s.giveCard(gameID, 1, uno.Face{Color: uno.Red, Value: uno.DrawTwo})
	view, err := s.engine.PlayCard(s.ctx, gameID, 1, drawTwo, "")
	s.Require().NoError(err)
	s.Equal(2, *view.CurrentPlayer)
	s.Equal(2, view.DrawStack)
	s.Require().NotNil(view.LastAction.Target)
	s.Equal(int64(2), *view.LastAction.Target)
	s.Len(s.hand(gameID, 2), 9)

	wd4 := s.giveCard(gameID, 3, uno.Face{Color: uno.Black, Value: uno.WildDrawFour})
	view, err = s.engine.PlayCard(s.ctx, gameID, 3, wd4, uno.Green)
	s.Require().NoError(err)
	s.Equal(1, *view.CurrentPlayer)
	s.Equal(uno.Green, view.CurrentColor)
	s.Equal(4, view.DrawStack)
	s.Len(s.hand(gameID, 1), 11)
	s.assertCardTotal(gameID)
}

func (s *EngineTestSuite) TestDrawPassesTurn() {
	s.orderedDeck()
	gameID := s.startedGame(1, 2)
	_, err := s.engine.DrawCard(s.ctx, gameID, 2)
	s.ErrorIs(err, uno.ErrForbidden)

	view, err := s.engine.DrawCard(s.ctx, gameID, 1)
	s.Require().NoError(err)
	s.Equal(1, *view.CurrentPlayer)
	s.Equal(db.ActionDraw, view.LastAction.Kind)
	hand := s.hand(gameID, 1)
	s.Len(hand, 8)
	s.Equal(uno.Face{Color: uno.Red, Value: uno.Number(8)}, hand[len(hand)-1].Face())
}

func (s *EngineTestSuite) TestDrawReshufflesDiscards() {
	s.orderedDeck()
	gameID := s.startedGame(1, 2)
	s.tx(func(tx db.Tx) error {
		pile, err := tx.ListCards(gameID, uno.InDeck)
		if err != nil {
			return err
		}
		for i := range pile {
			pile[i].Status = uno.InDiscard
			pile[i].DiscardSeq = 0
		}
		return tx.UpdateCards(pile...)
	})
	s.Equal(0, s.counts(gameID)[uno.InDeck])

	view, err := s.engine.DrawCard(s.ctx, gameID, 1)
	s.Require().NoError(err)
	s.Equal(uno.Face{Color: uno.Red, Value: uno.Number(7)}, *view.TopDiscardCard)
	counts := s.counts(gameID)
	s.Equal(1, counts[uno.InDiscard])
	s.Equal(uno.DeckSize-15-1, counts[uno.InDeck])
	s.Len(s.hand(gameID, 1), 8)
	s.assertCardTotal(gameID)
}

func (s *EngineTestSuite) TestDrawOutOfCards() {
	s.orderedDeck()
	gameID := s.startedGame(1, 2)
	s.tx(func(tx db.Tx) error {
		pile, err := tx.ListCards(gameID, uno.InDeck)
		if err != nil {
			return err
		}
		owner := int64(2)
		for i := range pile {
			pile[i].Status = uno.InHand
			pile[i].OwnerID = &owner
		}
		return tx.UpdateCards(pile...)
	})
	_, err := s.engine.DrawCard(s.ctx, gameID, 1)
	s.ErrorIs(err, uno.ErrOutOfCards)
	s.Len(s.hand(gameID, 1), 7)
	view, err := s.engine.GetGameStatus(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal(0, *view.CurrentPlayer, "failed draw keeps the turn")
}

func (s *EngineTestSuite) TestLastCardWinsAndScores() {
	s.orderedDeck()
	gameID := s.startedGame(1, 2)
	hand := s.hand(gameID, 1)
	last := hand[len(hand)-1]
	s.Equal(uno.Face{Color: uno.Red, Value: uno.Number(6)}, last.Face())
	s.returnToDeck(hand[:len(hand)-1]...)

	view, err := s.engine.PlayCard(s.ctx, gameID, 1, last.ID, "")
	s.Require().NoError(err)
	s.Equal(uno.GameFinished, view.Game.Status)
	for _, p := range view.Players {
		s.Equal(uno.PlayerFinished, p.Status)
	}

	scores, err := s.engine.GetGameScores(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal([]ScoreView{{PlayerID: 1, Score: 28}, {PlayerID: 2, Score: 0}}, scores)

	s.tx(func(tx db.Tx) error {
		recorded, err := tx.ListScores(gameID)
		if err != nil {
			return err
		}
		s.Require().Len(recorded, 1)
		s.Equal(int64(1), recorded[0].PlayerID)
		s.Equal(28, recorded[0].Score)
		return nil
	})

	_, err = s.engine.PlayCard(s.ctx, gameID, 2, s.hand(gameID, 2)[0].ID, "")
	s.ErrorIs(err, uno.ErrInvalidState)
	_, err = s.engine.GetCurrentPlayer(s.ctx, gameID)
	s.ErrorIs(err, uno.ErrInvalidState)
	top, err := s.engine.GetTopDiscardCard(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal(last.Face(), *top, "finished games keep their last discard")
}

func (s *EngineTestSuite) TestLeaveActiveGame() {
	s.orderedDeck(threePlayerSwap)
	gameID := s.startedGame(1, 2, 3)

	view, err := s.engine.LeaveGame(s.ctx, gameID, 1)
	s.Require().NoError(err)
	s.Equal(uno.GameActive, view.Game.Status)
	s.Equal(uno.PlayerLeft, view.Players[0].Status)
	s.NotNil(view.Players[0].LeftAt)
	s.Equal(0, view.Players[0].Position, "seats never move once started")
	s.Equal(1, *view.CurrentPlayer, "turn moves past the departed player")

	current, err := s.engine.GetCurrentPlayer(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal(int64(2), current.ID)

	// Seat 0 is empty now, so turns wrap from seat 2 straight to seat 1.
	view, err = s.engine.PlayCard(s.ctx, gameID, 2, s.hand(gameID, 2)[0].ID, "")
	s.Require().NoError(err)
	s.Equal(2, *view.CurrentPlayer)
	_, err = s.engine.DrawCard(s.ctx, gameID, 3)
	s.Require().NoError(err)
	current, err = s.engine.GetCurrentPlayer(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal(int64(2), current.ID)

	view, err = s.engine.LeaveGame(s.ctx, gameID, 3)
	s.Require().NoError(err)
	s.Equal(uno.GameFinished, view.Game.Status)
	statuses := []uno.PlayerStatus{view.Players[0].Status, view.Players[1].Status, view.Players[2].Status}
	s.Equal([]uno.PlayerStatus{uno.PlayerLeft, uno.PlayerFinished, uno.PlayerLeft}, statuses)
	s.Equal(db.ActionFinish, view.LastAction.Kind)
}

func (s *EngineTestSuite) TestFinish() {
	gameID := s.newGame(4, 1, 2)
	_, err := s.engine.FinishGameAs(s.ctx, gameID, 2)
	s.ErrorIs(err, uno.ErrForbidden)

	view, err := s.engine.FinishGame(s.ctx, gameID)
	s.Require().NoError(err)
	s.Equal(uno.GameFinished, view.Game.Status)
	for _, p := range view.Players {
		s.Equal(uno.PlayerFinished, p.Status)
	}
	view, err = s.engine.FinishGameAs(s.ctx, gameID, 1)
	s.Require().NoError(err)
	s.Equal(uno.GameFinished, view.Game.Status)

	_, err = s.engine.StartGame(s.ctx, gameID, 1)
	s.ErrorIs(err, uno.ErrInvalidState)
	_, err = s.engine.FinishGame(s.ctx, 999)
	s.ErrorIs(err, uno.ErrNotFound)
}

func (s *EngineTestSuite) TestQueriesBeforeStart() {
	gameID := s.newGame(4, 1, 2)
	_, err := s.engine.GetCurrentPlayer(s.ctx, gameID)
	s.ErrorIs(err, uno.ErrInvalidState)
	top, err := s.engine.GetTopDiscardCard(s.ctx, gameID)
	s.Require().NoError(err)
	s.Nil(top)
	scores, err := s.engine.GetGameScores(s.ctx, gameID)
	s.Require().NoError(err)
	s.Len(scores, 2)
	_, err = s.engine.GetGameStatus(s.ctx, 999)
	s.ErrorIs(err, uno.ErrNotFound)
	_, err = s.engine.GetHand(s.ctx, gameID, 7)
	s.ErrorIs(err, uno.ErrNotFound)
}

func (s *EngineTestSuite) TestGetHand() {
	s.orderedDeck()
	gameID := s.startedGame(1, 2)
	hand, err := s.engine.GetHand(s.ctx, gameID, 2)
	s.Require().NoError(err)
	s.Require().Len(hand, 7)
	s.Equal(uno.Red, hand[0].Color)
	s.Equal(uno.Number(1), hand[0].Value)
}
