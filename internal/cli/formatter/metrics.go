package formatter

// Surface is the small rendering seam between view logic and the screen.
// Views write named text slots through it, so shaping logic tests against
// a plain map instead of a live terminal.
type Surface interface {
	// Has reports whether a slot with this id exists.
	Has(id string) bool
	// SetText replaces the slot's displayed text.
	SetText(id, text string)
	// Text returns the slot's current text.
	Text(id string) string
}

// MapSurface is a Surface over a fixed set of slots.
type MapSurface struct {
	slots map[string]string
}

// NewMapSurface creates a surface with the given slot ids.
func NewMapSurface(ids ...string) *MapSurface {
	slots := make(map[string]string, len(ids))
	for _, id := range ids {
		slots[id] = ""
	}
	return &MapSurface{slots: slots}
}

func (s *MapSurface) Has(id string) bool {
	_, ok := s.slots[id]
	return ok
}

func (s *MapSurface) SetText(id, text string) {
	if _, ok := s.slots[id]; ok {
		s.slots[id] = text
	}
}

func (s *MapSurface) Text(id string) string {
	return s.slots[id]
}

// RenderMetrics writes each metric into the surface slot named by its
// key. Keys with no matching slot are skipped, never an error.
func RenderMetrics(surface Surface, metrics map[string]string) {
	for id, value := range metrics {
		if !surface.Has(id) {
			continue
		}
		surface.SetText(id, value)
	}
}
