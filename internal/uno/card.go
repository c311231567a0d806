package uno

import (
	"fmt"
	"strconv"
)

// Color of a card. Black marks wild cards.
type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
	Black  Color = "black"
)

// Colors lists the four playable colors in deck enumeration order.
var Colors = []Color{Red, Blue, Green, Yellow}

func (c Color) Valid() bool {
	switch c {
	case Red, Blue, Green, Yellow, Black:
		return true
	}
	return false
}

// Playable reports whether c can be the effective color of the discard pile.
func (c Color) Playable() bool {
	return c.Valid() && c != Black
}

// ParseColor validates a color received from a caller.
func ParseColor(s string) (Color, error) {
	c := Color(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}

// Value is the face of a card.
type Value string

const (
	Skip         Value = "skip"
	Reverse      Value = "reverse"
	DrawTwo      Value = "draw_two"
	Wild         Value = "wild"
	WildDrawFour Value = "wild_draw_four"
)

// Number returns the value for a numbered card 0..9.
func Number(n int) Value {
	return Value(strconv.Itoa(n))
}

// IsNumber reports whether v is one of "0".."9".
func (v Value) IsNumber() bool {
	return len(v) == 1 && v[0] >= '0' && v[0] <= '9'
}

// IsWild reports whether the player chooses the color.
func (v Value) IsWild() bool {
	return v == Wild || v == WildDrawFour
}

// IsAction reports whether playing v has an effect beyond passing the turn.
func (v Value) IsAction() bool {
	return !v.IsNumber()
}

func (v Value) Valid() bool {
	if v.IsNumber() {
		return true
	}
	switch v {
	case Skip, Reverse, DrawTwo, Wild, WildDrawFour:
		return true
	}
	return false
}

// Penalty is the number of cards the next player is forced to draw.
func (v Value) Penalty() int {
	switch v {
	case DrawTwo:
		return 2
	case WildDrawFour:
		return 4
	}
	return 0
}

// Points is the scoring value of a card left in a hand.
func (v Value) Points() int {
	switch {
	case v.IsNumber():
		return int(v[0] - '0')
	case v.IsWild():
		return 50
	}
	return 20
}

// Face is the color and value pair printed on a card.
type Face struct {
	Color Color `json:"color"`
	Value Value `json:"value"`
}

func (f Face) String() string {
	return fmt.Sprintf("%s %s", f.Color, f.Value)
}

// IsZero reports whether no face is set.
func (f Face) IsZero() bool {
	return f.Color == "" && f.Value == ""
}

// HandPoints sums the points of the given faces.
func HandPoints(faces []Face) int {
	total := 0
	for _, f := range faces {
		total += f.Value.Points()
	}
	return total
}
