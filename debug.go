package pictor

import "time"

// debugStats holds per-frame counters. Only updated when debug mode is on.
type debugStats struct {
	events   int
	frames   int
	drawTime time.Duration
}

// debugLogEvery throttles the frame summary to one line per this many frames.
const debugLogEvery = 60

// debugLog emits a frame summary at debug level.
func (e *Editor) debugLog() {
	if !e.debug || e.stats.frames%debugLogEvery != 0 {
		return
	}
	e.logger.Debug("frame",
		"frame", e.stats.frames,
		"events", e.stats.events,
		"objects", e.scene.Len(),
		"selected", e.scene.Selected(),
		"undo", e.undo.Len(),
		"tool", e.tool.Kind().String(),
		"draw", e.stats.drawTime,
	)
}
