package conflict

import "github.com/zeusync/rpsim/internal/core/system"

var _ system.System = (*System)(nil)

// System runs Step as part of a system.Manager.
type System struct{}

func New() *System { return &System{} }

func (*System) Name() string                    { return "conflict" }
func (*System) Priority() system.Priority       { return system.PriorityHigh }
func (*System) Update(world *system.World) error { return Step(world) }
