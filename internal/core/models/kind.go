package models

import (
	"fmt"
	"strings"
)

// Kind is the type label carried by an agent.
type Kind uint8

const (
	Rock Kind = iota
	Paper
	Scissors
)

// NumKinds is the number of kinds taking part in the cycle.
const NumKinds = 3

// Kinds lists every kind in spawn order. Remainder agents go to the earliest
// entries.
var Kinds = [NumKinds]Kind{Paper, Rock, Scissors}

var (
	prey     = [NumKinds]Kind{Rock: Scissors, Scissors: Paper, Paper: Rock}
	predator = [NumKinds]Kind{Scissors: Rock, Paper: Scissors, Rock: Paper}
	names    = [NumKinds]string{Rock: "rock", Paper: "paper", Scissors: "scissors"}
)

// PreyOf returns the kind that k captures.
func PreyOf(k Kind) Kind { return prey[k] }

// PredatorOf returns the kind that captures k.
func PredatorOf(k Kind) Kind { return predator[k] }


func (k Kind) Valid() bool { return k < NumKinds }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return names[k]
}

// ParseKind accepts the lower-case kind name, ignoring surrounding space and case.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range names {
		if n == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(names[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
