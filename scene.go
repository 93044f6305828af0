package pictor

// Scene is an ordered collection of shapes plus a selection index.
// Index 0 is the back-most shape and is drawn first; the last index is the
// front-most and wins hit tests.
//
// The scene owns its shapes. Tools refer to them by index only, and every
// accessor validates the index, so a stale index held across a deletion or
// an undo reads as "nothing" rather than a dangling object.
type Scene struct {
	objects  []Shape
	selected int
}

// NewScene creates an empty scene with no selection.
func NewScene() *Scene {
	return &Scene{selected: -1}
}

// Len returns the number of shapes.
func (s *Scene) Len() int {
	return len(s.objects)
}

// At returns the shape at index i, or nil if i is out of range.
func (s *Scene) At(i int) Shape {
	if i < 0 || i >= len(s.objects) {
		return nil
	}
	return s.objects[i]
}

// Objects returns the shapes in back-to-front order. The returned slice
// MUST NOT be mutated.
func (s *Scene) Objects() []Shape {
	return s.objects
}

// Add appends a shape at the front and returns its index.
func (s *Scene) Add(g Shape) int {
	s.objects = append(s.objects, g)
	return len(s.objects) - 1
}

// Remove deletes the shape at index i. The selection follows the shape it
// referred to and is cleared if that shape was removed. Returns false if i
// is out of range.
func (s *Scene) Remove(i int) bool {
	if i < 0 || i >= len(s.objects) {
		return false
	}
	copy(s.objects[i:], s.objects[i+1:])
	s.objects[len(s.objects)-1] = nil
	s.objects = s.objects[:len(s.objects)-1]

	switch {
	case s.selected == i:
		s.selected = -1
	case s.selected > i:
		s.selected--
	}
	return true
}

// Selected returns the selected index, or -1 when there is no valid selection.
func (s *Scene) Selected() int {
	if s.selected < 0 || s.selected >= len(s.objects) {
		return -1
	}
	return s.selected
}

// SelectedShape returns the selected shape, or nil.
func (s *Scene) SelectedShape() Shape {
	return s.At(s.Selected())
}

// Select sets the selection. Out-of-range indices clear it.
func (s *Scene) Select(i int) {
	if i < 0 || i >= len(s.objects) {
		s.selected = -1
		return
	}
	s.selected = i
}

// validateSelection clamps a stale selection back to -1.
func (s *Scene) validateSelection() {
	s.selected = s.Selected()
}

// Clear removes every shape and the selection.
func (s *Scene) Clear() {
	for i := range s.objects {
		s.objects[i] = nil
	}
	s.objects = s.objects[:0]
	s.selected = -1
}

// Replace swaps in a whole new set of shapes and clears the selection.
func (s *Scene) Replace(objects []Shape) {
	s.objects = objects
	s.selected = -1
}

// HitTest returns the index of the front-most shape containing p, or -1.
func (s *Scene) HitTest(p Vec2) int {
	for i := len(s.objects) - 1; i >= 0; i-- {
		if s.objects[i].HitTest(p) {
			return i
		}
	}
	return -1
}

// Swap exchanges the shapes at i and j, keeping the selection on the shape
// it referred to. Returns false if either index is out of range.
func (s *Scene) Swap(i, j int) bool {
	if i < 0 || j < 0 || i >= len(s.objects) || j >= len(s.objects) {
		return false
	}
	s.objects[i], s.objects[j] = s.objects[j], s.objects[i]
	switch s.selected {
	case i:
		s.selected = j
	case j:
		s.selected = i
	}
	return true
}

// Draw renders every shape back to front.
func (s *Scene) Draw(surface Surface) {
	for _, g := range s.objects {
		g.Draw(surface)
	}
}
