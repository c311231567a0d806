package uno

// GameStatus is the lifecycle stage of a game.
type GameStatus string

const (
	// GameInactive is the lobby stage where players can join and leave.
	GameInactive GameStatus = "inactive"
	// GameActive is the stage where cards are played.
	GameActive GameStatus = "active"
	// GameFinished is terminal.
	GameFinished GameStatus = "finished"
)

func (s GameStatus) Valid() bool {
	switch s {
	case GameInactive, GameActive, GameFinished:
		return true
	}
	return false
}

// PlayerStatus is the state of a single roster entry.
type PlayerStatus string

const (
	PlayerWaiting  PlayerStatus = "waiting"
	PlayerPlaying  PlayerStatus = "playing"
	PlayerLeft     PlayerStatus = "left"
	PlayerFinished PlayerStatus = "finished"
)

func (s PlayerStatus) Valid() bool {
	switch s {
	case PlayerWaiting, PlayerPlaying, PlayerLeft, PlayerFinished:
		return true
	}
	return false
}

// Present reports whether the player still occupies the seat.
func (s PlayerStatus) Present() bool {
	return s == PlayerWaiting || s == PlayerPlaying
}

// Direction is the order in which seats take turns.
type Direction string

const (
	Clockwise        Direction = "clockwise"
	Counterclockwise Direction = "counterclockwise"
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Counterclockwise {
		return Clockwise
	}
	return Counterclockwise
}

// Step is the seat index delta for one move in this direction.
func (d Direction) Step() int {
	if d == Counterclockwise {
		return -1
	}
	return 1
}

// CardStatus is where a card currently lives.
type CardStatus string

const (
	InDeck    CardStatus = "deck"
	InHand    CardStatus = "hand"
	InDiscard CardStatus = "discard"
)
