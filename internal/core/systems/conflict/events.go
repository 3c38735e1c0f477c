package conflict

import "github.com/zeusync/rpsim/internal/core/models"

// Event types published on the world's bus.
const (
	EventCaptured = "agent.captured"
	EventWon      = "match.won"
)

// Capture is the payload of EventCaptured.
type Capture struct {
	Frame    int64
	Capturer models.EntityID
	Captured models.EntityID
	From     models.Kind
	To       models.Kind

	// Final is set when the captured agent was the last of its kind.
	Final bool
}

// Victory is the payload of EventWon.
type Victory struct {
	Frame  int64
	Winner models.Kind
	By     models.EntityID
	Counts [models.NumKinds]int

	// Survivors lists the kinds still on the field, in Kind order.
	Survivors []models.Kind
}
