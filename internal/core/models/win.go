package models

import "fmt"

// WinState is either ongoing (the zero value) or won by one kind. Once won it
// never changes again.
type WinState struct {
	won    bool
	winner Kind
}

// Declare moves the state to won(k). Declaring twice is an error and leaves
// the first winner in place.
func (w *WinState) Declare(k Kind) error {
	if w.won {
		return fmt.Errorf("%w: %s", ErrAlreadyWon, w.winner)
	}
	if !k.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	w.won, w.winner = true, k
	return nil
}

// Winner returns the winning kind, if any.
func (w WinState) Winner() (Kind, bool) { return w.winner, w.won }

// Done reports whether the match has a winner.
func (w WinState) Done() bool { return w.won }

func (w WinState) String() string {
	if !w.won {
		return "ongoing"
	}
	return "won(" + w.winner.String() + ")"
}
