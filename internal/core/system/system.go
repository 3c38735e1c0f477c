package system

// System is a unit of game logic run once per tick by the Manager.
type System interface {
	Name() string
	Priority() Priority
	// Update advances the world by one tick. An error aborts the tick.
	Update(world *World) error
}

// Priority defines execution order; higher runs first.
type Priority uint16

const (
	PriorityLow     Priority = 500
	PriorityNormal  Priority = 600
	PriorityHigh    Priority = 1000
	PriorityHighest Priority = 1300
)
