package uno

import (
	"errors"
	"fmt"
)

// ErrorKind classifies engine failures for callers.
type ErrorKind string

const (
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindInvalidState        ErrorKind = "INVALID_STATE"
	KindForbidden           ErrorKind = "FORBIDDEN"
	KindConflict            ErrorKind = "CONFLICT"
	KindCapacity            ErrorKind = "CAPACITY"
	KindInsufficientPlayers ErrorKind = "INSUFFICIENT_PLAYERS"
	KindIllegalMove         ErrorKind = "ILLEGAL_MOVE"
	KindOutOfCards          ErrorKind = "OUT_OF_CARDS"
	// KindInternal is reported for anything outside the taxonomy, such as
	// storage failures.
	KindInternal ErrorKind = "INTERNAL"
)

// Error is a domain failure carrying its kind and a readable message.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) ErrorCode() string { return string(e.Kind) }
func (e *Error) Error() string     { return e.Msg }

// Is matches any *Error of the same kind, so errors.Is(err, ErrCapacity)
// works for messages built with Errorf.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	// ErrNotFound means the game or roster entry does not exist
	ErrNotFound = &Error{KindNotFound, "not found"}
	// ErrInvalidState means the operation is not allowed in the current lifecycle stage
	ErrInvalidState = &Error{KindInvalidState, "invalid game state"}
	// ErrForbidden means the caller lacks the required role
	ErrForbidden = &Error{KindForbidden, "forbidden"}
	// ErrConflict means the player is already seated
	ErrConflict = &Error{KindConflict, "player already in game"}
	// ErrCapacity means the roster is full
	ErrCapacity = &Error{KindCapacity, "game is full"}
	// ErrInsufficientPlayers means too few players to start
	ErrInsufficientPlayers = &Error{KindInsufficientPlayers, "not enough players"}
	// ErrIllegalMove means the card cannot be played now
	ErrIllegalMove = &Error{KindIllegalMove, "illegal move"}
	// ErrOutOfCards means draw and discard piles are both exhausted
	ErrOutOfCards = &Error{KindOutOfCards, "out of cards"}
)

// Errorf builds an Error of the given kind.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
