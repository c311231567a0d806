package engine

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/Rext-dev/Uno-Game/internal/db"
	"github.com/Rext-dev/Uno-Game/internal/logger"
	"github.com/Rext-dev/Uno-Game/internal/uno"
)

// DeckFactory builds, shuffles and deals the cards of a game. The draw
// pile is the set of cards in the deck ordered by DrawOrder, lowest on top.
type DeckFactory struct {
	handSize int
	logger   logger.Logger

	mu      sync.Mutex
	rng     *rand.Rand
	shuffle func(cards []db.Card)
}

func NewDeckFactory(rng *rand.Rand, handSize int, log logger.Logger) *DeckFactory {
	d := &DeckFactory{handSize: handSize, logger: log, rng: rng}
	d.shuffle = func(cards []db.Card) { uno.Shuffle(cards, d.rng) }
	return d
}

func (d *DeckFactory) shuffleCards(cards []db.Card) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shuffle(cards)
}

// BuildDeck stores the 108 cards of a fresh deck for gameID in canonical
// order and returns a shuffled copy. The stored rows keep their order until
// PersistDrawOrder is called.
func (d *DeckFactory) BuildDeck(tx db.Tx, gameID int64) ([]db.Card, error) {
	faces := uno.StandardDeck()
	cards := make([]db.Card, len(faces))
	for i, f := range faces {
		cards[i] = db.Card{GameID: gameID, Color: f.Color, Value: f.Value, Status: uno.InDeck}
	}
	if err := tx.InsertCards(cards); err != nil {
		return nil, err
	}
	shuffled := append([]db.Card(nil), cards...)
	d.shuffleCards(shuffled)
	d.logger.Debug(fmt.Sprintf("Built deck of %d cards for game %d", len(cards), gameID))
	return shuffled, nil
}

// PersistDrawOrder makes cards, top first, the draw pile order.
func (d *DeckFactory) PersistDrawOrder(tx db.Tx, cards []db.Card) error {
	for i := range cards {
		cards[i].DrawOrder = i + 1
	}
	return tx.UpdateCards(cards...)
}

// DealInitialHands deals the hand size to every seated player, one card at
// a time in seat order, then flips the opening discard onto state. Wild
// cards turned up as the opening card go back to the bottom of the pile
// and another card is flipped. The opening card is returned so the caller
// can resolve its effect.
func (d *DeckFactory) DealInitialHands(tx db.Tx, gameID int64, seated []db.GamePlayer, state *db.GameState) (db.Card, error) {
	pile, err := tx.ListCards(gameID, uno.InDeck)
	if err != nil {
		return db.Card{}, err
	}
	need := d.handSize*len(seated) + 1
	if len(pile) < need {
		return db.Card{}, uno.Errorf(uno.KindOutOfCards, "need %d cards to deal, have %d", need, len(pile))
	}
	next := 0
	dealt := make([]db.Card, 0, d.handSize*len(seated))
	for round := 0; round < d.handSize; round++ {
		for _, p := range seated {
			owner := p.PlayerID
			card := pile[next]
			card.Status = uno.InHand
			card.OwnerID = &owner
			dealt = append(dealt, card)
			next++
		}
	}
	if err := tx.UpdateCards(dealt...); err != nil {
		return db.Card{}, err
	}

	rest := pile[next:]
	bottom := rest[len(rest)-1].DrawOrder
	var moved []db.Card
	for i := range rest {
		if !rest[i].Value.IsWild() {
			opening := rest[i]
			opening.Status = uno.InDiscard
			opening.DiscardSeq = 1
			if err := tx.UpdateCards(append(moved, opening)...); err != nil {
				return db.Card{}, err
			}
			state.SetTopCard(opening.Face())
			state.CurrentColor = opening.Color
			d.logger.Debug(fmt.Sprintf("Game %d opens with %s", gameID, opening.Face()))
			return opening, nil
		}
		bottom++
		wild := rest[i]
		wild.DrawOrder = bottom
		moved = append(moved, wild)
	}
	return db.Card{}, uno.Errorf(uno.KindOutOfCards, "no card left to open game %d", gameID)
}

// DrawCards moves n cards from the top of the draw pile into playerID's
// hand. When the pile runs short the discard pile, minus its top card, is
// shuffled back underneath it first.
func (d *DeckFactory) DrawCards(tx db.Tx, gameID, playerID int64, n int) ([]db.Card, error) {
	if n <= 0 {
		return nil, nil
	}
	pile, err := tx.ListCards(gameID, uno.InDeck)
	if err != nil {
		return nil, err
	}
	if len(pile) < n {
		recycled, err := d.recycleDiscards(tx, gameID, pile)
		if err != nil {
			return nil, err
		}
		pile = append(pile, recycled...)
	}
	if len(pile) < n {
		return nil, uno.Errorf(uno.KindOutOfCards, "cannot draw %d cards, only %d left", n, len(pile))
	}
	drawn := append([]db.Card(nil), pile[:n]...)
	for i := range drawn {
		owner := playerID
		drawn[i].Status = uno.InHand
		drawn[i].OwnerID = &owner
	}
	if err := tx.UpdateCards(drawn...); err != nil {
		return nil, err
	}
	return drawn, nil
}

func (d *DeckFactory) recycleDiscards(tx db.Tx, gameID int64, pile []db.Card) ([]db.Card, error) {
	discards, err := tx.ListCards(gameID, uno.InDiscard)
	if err != nil {
		return nil, err
	}
	if len(discards) <= 1 {
		return nil, nil
	}
	under := discards[:len(discards)-1]
	d.shuffleCards(under)
	bottom := 0
	if len(pile) > 0 {
		bottom = pile[len(pile)-1].DrawOrder
	}
	for i := range under {
		under[i].Status = uno.InDeck
		under[i].DiscardSeq = 0
		under[i].DrawOrder = bottom + i + 1
	}
	if err := tx.UpdateCards(under...); err != nil {
		return nil, err
	}
	d.logger.Debug(fmt.Sprintf("Reshuffled %d discards into the draw pile of game %d", len(under), gameID))
	return under, nil
}

// Discard puts card from a hand on top of the discard pile.
func (d *DeckFactory) Discard(tx db.Tx, card *db.Card) error {
	discards, err := tx.ListCards(card.GameID, uno.InDiscard)
	if err != nil {
		return err
	}
	seq := 1
	if len(discards) > 0 {
		seq = discards[len(discards)-1].DiscardSeq + 1
	}
	card.Status = uno.InDiscard
	card.OwnerID = nil
	card.DiscardSeq = seq
	return tx.UpdateCards(*card)
}
