package conflict

import (
	"errors"
	"fmt"

	"github.com/zeusync/rpsim/internal/core/events/bus"
	"github.com/zeusync/rpsim/internal/core/models"
	"github.com/zeusync/rpsim/internal/core/observability/log"
	"github.com/zeusync/rpsim/internal/core/system"
	"github.com/zeusync/rpsim/internal/core/systems/physics"
)

// ErrInvariant means the population lost a kind while the match was still
// running. The tick is aborted; the world should not be ticked again.
var ErrInvariant = errors.New("simulation invariant violated")

// Step advances w by one tick. Every agent is updated in population order.
// Once a winner is declared no further agent is visited, and every later call
// is a no-op.
func Step(w *system.World) error {
	if w.Win.Done() {
		return nil
	}
	for i := range w.Population.Len() {
		if w.Win.Done() {
			break
		}
		if err := updateAgent(w, i); err != nil {
			return err
		}
	}
	w.Advance()
	return nil
}

func updateAgent(w *system.World, i int) error {
	pop := w.Population
	a := pop.At(i)
	kind := a.Kind()
	r := w.CaptureRadius

	prey, ok := pop.NearestOfKind(i, models.PreyOf(kind), false)
	if !ok {
		return missing(w, a, "prey", models.PreyOf(kind))
	}
	pred, hasPred := pop.NearestOfKind(i, models.PredatorOf(kind), false)
	ally, hasAlly := pop.NearestOfKind(i, kind, true)

	// Without a predator only a match-ending capture may still happen; anything
	// else fails before the population is touched.
	catches := prey.Distance < r
	if !hasPred && !(catches && pop.Count(models.PreyOf(kind)) == 1) {
		return missing(w, a, "predator", models.PredatorOf(kind))
	}

	if catches {
		won, err := capture(w, i, prey.Index)
		if err != nil || won {
			return err
		}
	}

	dir := steer(a.Pos, pop.At(prey.Index).Pos, prey.Distance, pop.At(pred.Index).Pos, pred.Distance)
	if hasAlly && ally.Distance < 2*r {
		away := a.Pos.Sub(pop.At(ally.Index).Pos).Normalize()
		dir = dir.Add(away).Normalize()
	}

	minX, minY, maxX, maxY := w.Bounds()
	next := a.Pos.Add(dir)
	a.Pos = physics.V(physics.Clamp(next.X, minX, maxX), physics.Clamp(next.Y, minY, maxY))
	return nil
}

// steer blends moving toward the prey with fleeing the predator. The closer
// the prey is relative to the predator, the more the agent chases; the closer
// the predator, the more it flees.
func steer(pos, preyPos physics.Vec2, preyDist float64, predPos physics.Vec2, predDist float64) physics.Vec2 {
	var towardPrey, fromPred float64
	if total := preyDist + predDist; total > 0 {
		towardPrey = predDist / total
		fromPred = preyDist / total
	}
	chase := preyPos.Sub(pos).Normalize().Mul(towardPrey)
	flee := pos.Sub(predPos).Normalize().Mul(fromPred)
	return chase.Add(flee).Normalize()
}

// capture relabels the target to the capturer's kind. The last-of-kind check
// happens before the relabel; when it hits, the capturer's kind wins.
func capture(w *system.World, capturer, target int) (bool, error) {
	pop := w.Population
	a, p := pop.At(capturer), pop.At(target)
	from, to := p.Kind(), a.Kind()

	final := pop.Count(from) == 1
	if final {
		if err := w.Win.Declare(to); err != nil {
			return false, err
		}
	}
	if err := pop.Relabel(target, to); err != nil {
		return false, err
	}

	events := []bus.Event{w.Event(EventCaptured, Capture{
		Frame: w.Frame(), Capturer: a.ID, Captured: p.ID, From: from, To: to, Final: final,
	})}
	if final {
		w.Logger().Info("winner declared",
			log.Stringer("winner", to),
			log.Int64("frame", w.Frame()),
			log.Uint64("capturer", uint64(a.ID)),
		)
		events = append(events, w.Event(EventWon, Victory{
			Frame: w.Frame(), Winner: to, By: a.ID, Counts: pop.Counts(), Survivors: pop.Survivors(),
		}))
	}
	if err := w.Publish(events...); err != nil {
		w.Logger().Warn("event handler failed", log.Error(err), log.Bool("final", final))
	}
	return final, nil
}

func missing(w *system.World, a *models.Agent, role string, want models.Kind) error {
	err := fmt.Errorf("%w: agent %d (%s) has no %s of kind %s while the match is ongoing",
		ErrInvariant, a.ID, a.Kind(), role, want)
	w.Logger().Error("tick aborted", log.Error(err), log.Int64("frame", w.Frame()))
	return err
}
