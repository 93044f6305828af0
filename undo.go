package pictor

// DefaultUndoLimit is the number of snapshots an UndoStack keeps.
const DefaultUndoLimit = 20

// UndoStack is a bounded LIFO of scene snapshots. Pushing past the limit
// evicts the oldest snapshot. There is no redo.
type UndoStack struct {
	entries []string
	limit   int
}

// NewUndoStack creates a stack holding at most limit snapshots. A limit of
// zero or less selects DefaultUndoLimit.
func NewUndoStack(limit int) *UndoStack {
	if limit <= 0 {
		limit = DefaultUndoLimit
	}
	return &UndoStack{
		entries: make([]string, 0, limit),
		limit:   limit,
	}
}

// Push stores a snapshot, evicting the oldest one when full.
func (u *UndoStack) Push(snapshot string) {
	if len(u.entries) == u.limit {
		copy(u.entries, u.entries[1:])
		u.entries = u.entries[:len(u.entries)-1]
	}
	u.entries = append(u.entries, snapshot)
}

// Pop removes and returns the most recent snapshot. ok is false when the
// stack is empty.
func (u *UndoStack) Pop() (snapshot string, ok bool) {
	if len(u.entries) == 0 {
		return "", false
	}
	last := len(u.entries) - 1
	snapshot = u.entries[last]
	u.entries[last] = ""
	u.entries = u.entries[:last]
	return snapshot, true
}

// Peek returns the most recent snapshot without removing it.
func (u *UndoStack) Peek() (string, bool) {
	if len(u.entries) == 0 {
		return "", false
	}
	return u.entries[len(u.entries)-1], true
}

// Len returns the number of stored snapshots.
func (u *UndoStack) Len() int {
	return len(u.entries)
}

// Limit returns the capacity.
func (u *UndoStack) Limit() int {
	return u.limit
}

// Clear drops every snapshot.
func (u *UndoStack) Clear() {
	for i := range u.entries {
		u.entries[i] = ""
	}
	u.entries = u.entries[:0]
}
