package system

import "sync"

// Field reports the current playing area. Origin is top-left, positive axes
// point right and down. The size may change between ticks.
type Field interface {
	Size() (w, h float64)
}

// FixedField never changes size.
type FixedField struct{ W, H float64 }

func (f FixedField) Size() (w, h float64) { return f.W, f.H }

// ResizableField can be resized from another goroutine, e.g. a window
// resize callback, while the driver keeps ticking.
type ResizableField struct {
	mu   sync.RWMutex
	w, h float64
}

func NewResizableField(w, h float64) *ResizableField {
	return &ResizableField{w: w, h: h}
}

func (f *ResizableField) Size() (w, h float64) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.w, f.h
}

func (f *ResizableField) Resize(w, h float64) {
	f.mu.Lock()
	f.w, f.h = w, h
	f.mu.Unlock()
}
