package uno

import "math/rand"

// DeckSize is the number of cards in a full deck.
const DeckSize = 108

// StandardDeck enumerates the 108 faces of a full deck in a fixed order:
// per color one 0, two each of 1..9, two each of skip, reverse and draw two,
// followed by four wilds and four wild draw fours.
func StandardDeck() []Face {
	deck := make([]Face, 0, DeckSize)
	for _, c := range Colors {
		deck = append(deck, Face{Color: c, Value: Number(0)})
		for n := 1; n <= 9; n++ {
			deck = append(deck, Face{Color: c, Value: Number(n)}, Face{Color: c, Value: Number(n)})
		}
		for _, v := range []Value{Skip, Reverse, DrawTwo} {
			deck = append(deck, Face{Color: c, Value: v}, Face{Color: c, Value: v})
		}
	}
	for i := 0; i < 4; i++ {
		deck = append(deck, Face{Color: Black, Value: Wild})
	}
	for i := 0; i < 4; i++ {
		deck = append(deck, Face{Color: Black, Value: WildDrawFour})
	}
	return deck
}

// Shuffle permutes items in place with Fisher-Yates.
func Shuffle[T any](items []T, rng *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
