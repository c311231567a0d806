package uno

import (
	"errors"
	"fmt"
	"testing"
)

func TestCanPlay(t *testing.T) {
	top := Face{Red, Number(5)}
	tests := []struct {
		name    string
		card    Face
		current Color
		want    bool
	}{
		{"same color", Face{Red, Number(1)}, Red, true},
		{"same number", Face{Blue, Number(5)}, Red, true},
		{"mismatch", Face{Blue, Number(1)}, Red, false},
		{"wild always", Face{Black, Wild}, Red, true},
		{"wild draw four always", Face{Black, WildDrawFour}, Green, true},
		{"declared color wins over literal", Face{Green, Number(2)}, Green, true},
		{"literal color after wild", Face{Red, Number(2)}, Green, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanPlay(tt.card, top, tt.current); got != tt.want {
				t.Fatalf("CanPlay(%v) = %v, want %v", tt.card, got, tt.want)
			}
		})
	}

	skip := Face{Blue, Skip}
	if !CanPlay(Face{Yellow, Skip}, skip, Blue) {
		t.Fatalf("skip on skip should be legal")
	}
}

func TestNextSeat(t *testing.T) {
	tests := []struct {
		name     string
		from     int
		dir      Direction
		occupied []int
		steps    int
		want     int
	}{
		{"clockwise one", 0, Clockwise, []int{0, 1, 2, 3}, 1, 1},
		{"clockwise wraps", 3, Clockwise, []int{0, 1, 2, 3}, 1, 0},
		{"clockwise two", 2, Clockwise, []int{0, 1, 2, 3}, 2, 0},
		{"counterclockwise wraps", 0, Counterclockwise, []int{0, 1, 2, 3}, 1, 3},
		{"skips vacated seat", 0, Clockwise, []int{0, 2, 3}, 1, 2},
		{"from vacated seat", 1, Clockwise, []int{0, 2, 3}, 1, 2},
		{"from vacated seat backwards", 1, Counterclockwise, []int{0, 2, 3}, 1, 0},
		{"two players two steps", 0, Clockwise, []int{0, 1}, 2, 0},
		{"unsorted input", 1, Clockwise, []int{3, 0, 1}, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextSeat(tt.from, tt.dir, tt.occupied, tt.steps)
			if !ok || got != tt.want {
				t.Fatalf("NextSeat = %d,%v, want %d", got, ok, tt.want)
			}
		})
	}
	if _, ok := NextSeat(0, Clockwise, nil, 1); ok {
		t.Fatalf("expected no seat for empty table")
	}
}

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("join: %w", Errorf(KindCapacity, "game %d is full", 3))
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected capacity error, got %v", err)
	}
	if errors.Is(err, ErrConflict) {
		t.Fatalf("capacity error must not match conflict")
	}
	if KindOf(err) != KindCapacity {
		t.Fatalf("kind = %s", KindOf(err))
	}
	if KindOf(errors.New("disk")) != KindInternal {
		t.Fatalf("plain errors should be internal")
	}
}
