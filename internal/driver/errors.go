package driver

import "errors"

var (
	// ErrNoSurface is returned at startup when there is nothing to render to
	// or the field has no area.
	ErrNoSurface = errors.New("render surface unavailable")
	ErrNilWorld  = errors.New("driver needs a world and a manager")
)
