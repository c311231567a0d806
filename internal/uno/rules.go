package uno

import "sort"

// CanPlay reports whether a card with face f may be put on top of the
// discard pile whose top card is top and whose effective color is current.
func CanPlay(f, top Face, current Color) bool {
	if f.Value.IsWild() {
		return true
	}
	if f.Color == current {
		return true
	}
	return f.Value == top.Value
}

// NextSeat walks steps occupied seats away from seat from in direction dir.
// Seats are absolute positions; from does not need to be occupied itself.
// It returns false when no seat is occupied.
func NextSeat(from int, dir Direction, occupied []int, steps int) (int, bool) {
	if len(occupied) == 0 {
		return 0, false
	}
	seats := append([]int(nil), occupied...)
	sort.Ints(seats)
	seat := from
	for i := 0; i < steps; i++ {
		seat = adjacent(seat, dir, seats)
	}
	return seat, true
}

func adjacent(from int, dir Direction, seats []int) int {
	if dir == Counterclockwise {
		for i := len(seats) - 1; i >= 0; i-- {
			if seats[i] < from {
				return seats[i]
			}
		}
		return seats[len(seats)-1]
	}
	for _, s := range seats {
		if s > from {
			return s
		}
	}
	return seats[0]
}
