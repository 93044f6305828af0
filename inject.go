package pictor

// EventQueue holds synthetic input events for scripted or automated runs.
// Coordinates are screen pixels, identical to real mouse input. The host
// drains one event per frame with Next, so a drag plays out over several
// frames the way a real one would.
type EventQueue struct {
	events []Event
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// Push appends arbitrary events.
func (q *EventQueue) Push(evs ...Event) {
	q.events = append(q.events, evs...)
}

// InjectPress queues a primary button press at (x, y).
func (q *EventQueue) InjectPress(x, y float64) {
	q.Push(MouseDown(x, y, MouseButtonLeft))
}

// InjectMove queues a cursor move to (x, y).
func (q *EventQueue) InjectMove(x, y float64) {
	q.Push(MouseMove(x, y))
}

// InjectRelease queues a primary button release at (x, y).
func (q *EventQueue) InjectRelease(x, y float64) {
	q.Push(MouseUp(x, y, MouseButtonLeft))
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (q *EventQueue) InjectClick(x, y float64) {
	q.InjectPress(x, y)
	q.InjectRelease(x, y)
}

// InjectRightClick queues a secondary press and release at (x, y).
func (q *EventQueue) InjectRightClick(x, y float64) {
	q.Push(MouseDown(x, y, MouseButtonRight), MouseUp(x, y, MouseButtonRight))
}

// InjectKey queues a key press and release.
func (q *EventQueue) InjectKey(key string, mods KeyModifiers) {
	q.Push(KeyDown(key, mods), Event{Type: EventKeyUp, Key: key, Modifiers: mods})
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, then a move and release at (toX, toY). Minimum frames
// is 2.
func (q *EventQueue) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	q.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		q.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	q.InjectMove(toX, toY)
	q.InjectRelease(toX, toY)
}

// Next pops the oldest event. ok is false when the queue is empty.
func (q *EventQueue) Next() (ev Event, ok bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev = q.events[0]
	copy(q.events, q.events[1:])
	q.events = q.events[:len(q.events)-1]
	return ev, true
}
