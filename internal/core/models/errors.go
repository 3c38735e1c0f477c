package models

import "errors"

var (
	ErrUnknownKind  = errors.New("unknown kind")
	ErrAlreadyWon   = errors.New("winner already declared")
	ErrOutOfRange   = errors.New("agent index out of range")
	ErrEmptyField   = errors.New("field has no area")
	ErrTooFewAgents = errors.New("population needs at least one agent of every kind")
)
