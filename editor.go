package pictor

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tanema/gween/ease"
)

// ErrNoSelection is returned by operations that need a selected shape.
var ErrNoSelection = errors.New("no shape selected")

// pasteOffset shifts pasted shapes so they do not hide their originals.
var pasteOffset = Vec2{10, 10}

// Editor is one drawing session: a scene, the current style, the undo
// history, the active tool and the toolbar. It is single threaded. Events
// are fed in one at a time with ProcessEvent, and Draw only reads state, so
// it must not run concurrently with ProcessEvent.
type Editor struct {
	scene   *Scene
	style   StyleState
	undo    *UndoStack
	tool    Tool
	toolbar *Toolbar
	mouse   Vec2

	width, height    int
	savePath         string
	exportDir        string
	snapshotOnDelete bool

	clipboard Clipboard
	pulse     *Pulse
	logger    *slog.Logger
	debug     bool
	stats     debugStats
	now       func() time.Time
}

// NewEditor creates an editor with an empty scene, the default style and
// the default tool. A ButtonSize of zero or less disables the toolbar.
func NewEditor(cfg Config) *Editor {
	e := &Editor{
		scene:            NewScene(),
		style:            NewStyleState(),
		undo:             NewUndoStack(cfg.UndoLimit),
		tool:             newTool(DefaultTool),
		width:            cfg.Width,
		height:           cfg.Height,
		savePath:         cfg.SavePath,
		exportDir:        cfg.ExportDir,
		snapshotOnDelete: cfg.SnapshotOnDelete,
		clipboard:        defaultClipboard(),
		pulse:            NewPulse(pulseLow, pulseHigh, pulseDuration, ease.InOutSine),
		logger:           slog.Default(),
		debug:            cfg.Debug,
		now:              time.Now,
	}
	if cfg.ButtonSize > 0 {
		e.toolbar = NewToolbar(cfg.IconDir, cfg.ButtonSize)
	}
	return e
}

// Scene returns the edited scene.
func (e *Editor) Scene() *Scene { return e.scene }

// Style returns the attributes the next created shape receives.
func (e *Editor) Style() Attributes { return e.style.Current() }

// Tool returns the active tool.
func (e *Editor) Tool() Tool { return e.tool }

// Toolbar returns the toolbar, or nil when it is disabled.
func (e *Editor) Toolbar() *Toolbar { return e.toolbar }

// History returns the undo stack.
func (e *Editor) History() *UndoStack { return e.undo }

// Mouse returns the last known cursor position.
func (e *Editor) Mouse() Vec2 { return e.mouse }

// SetLogger replaces the logger. A nil logger restores slog.Default.
func (e *Editor) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	e.logger = l
}

// SetClipboard replaces the clipboard used by Copy and Paste.
func (e *Editor) SetClipboard(c Clipboard) {
	e.clipboard = c
}

// SetDebugMode enables per-event and per-frame debug logging.
func (e *Editor) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// SeedDemo adds the two sample rectangles shown on a fresh start. It does
// not record an undo snapshot.
func (e *Editor) SeedDemo() {
	e.scene.Add(NewRectangle(Attributes{Border: ColorCyan, Fill: ColorGreen, Filled: true, Thickness: 6},
		Vec2{100, 100}, Vec2{300, 200}))
	e.scene.Add(NewRectangle(Attributes{Border: ColorRed, Fill: ColorBlue, Filled: true, Thickness: 5},
		Vec2{500, 300}, Vec2{600, 600}))
}

// ProcessEvent handles one input event. The toolbar sees mouse presses
// first, then Ctrl shortcuts are matched, and everything else goes to the
// active tool.
func (e *Editor) ProcessEvent(ev Event) {
	if ev.Type <= EventMouseMove {
		e.mouse = ev.Pos
	}
	e.scene.validateSelection()
	e.stats.events++
	if e.debug {
		e.logger.Debug("event", "type", ev.Type.String(), "x", ev.Pos.X, "y", ev.Pos.Y,
			"button", int(ev.Button), "key", ev.Key, "tool", e.tool.Kind().String())
	}

	if ev.Type == EventMouseDown && e.toolbar != nil {
		if b, ok := e.toolbar.HitTest(ev.Pos); ok {
			e.logger.Debug("button pressed", "name", b.Name)
			_ = e.Do(b.Action)
			return
		}
	}
	if ev.Type == EventKeyDown && ev.Modifiers&ModCtrl != 0 {
		if a, ok := shortcuts[ev.Key]; ok {
			_ = e.Do(a)
			return
		}
	}

	e.tool.ProcessEvent(ev, e)
	e.scene.validateSelection()
}

// PushUndo records a snapshot of the scene as it is now. Call it before a
// mutation that should be undoable.
func (e *Editor) PushUndo() {
	e.undo.Push(EncodeSnapshot(e.scene.Objects()))
}

// Undo restores the most recent snapshot and cancels whatever the active
// tool was in the middle of. Returns false when there was nothing to undo.
func (e *Editor) Undo() bool {
	snap, ok := e.undo.Pop()
	if !ok {
		return false
	}
	objects, err := DecodeSnapshot(snap)
	if err != nil {
		e.logger.Warn("discarding corrupt undo snapshot", "error", err)
		return false
	}
	e.scene.Replace(dropShortPolygons(objects))
	e.tool.Reset()
	return true
}

// SetTool switches the active tool. A polygon under construction is
// finished first; all other transient tool state is discarded.
func (e *Editor) SetTool(k ToolKind) {
	e.finishTool()
	e.tool = newTool(k)
}

// finishTool completes a construction in progress so that editor-level
// mutations never snapshot or reorder a provisional shape.
func (e *Editor) finishTool() {
	if f, ok := e.tool.(finisher); ok {
		f.Finish(e)
	}
}

// dropShortPolygons filters out polygons with fewer than two points, which
// the editor never keeps.
func dropShortPolygons(objects []Shape) []Shape {
	kept := objects[:0]
	for _, g := range objects {
		if p, ok := g.(*Polygon); ok && len(p.Points) < 2 {
			continue
		}
		kept = append(kept, g)
	}
	return kept
}

// BringForward swaps the selected shape with the one in front of it.
// Returns false, without recording undo, when there is no selection or
// the shape is already front-most.
func (e *Editor) BringForward() bool {
	e.finishTool()
	i := e.scene.Selected()
	if i < 0 || i >= e.scene.Len()-1 {
		return false
	}
	e.PushUndo()
	return e.scene.Swap(i, i+1)
}

// SendBackward swaps the selected shape with the one behind it. Returns
// false when there is no selection or the shape is already back-most.
func (e *Editor) SendBackward() bool {
	e.finishTool()
	i := e.scene.Selected()
	if i <= 0 {
		return false
	}
	e.PushUndo()
	return e.scene.Swap(i, i-1)
}

// Clear empties the scene, recording undo only if it had shapes, and
// returns the tool and style to their defaults.
func (e *Editor) Clear() {
	e.finishTool()
	if e.scene.Len() > 0 {
		e.PushUndo()
	}
	e.scene.Clear()
	e.tool = newTool(DefaultTool)
	e.style.Reset()
	e.logger.Info("scene cleared")
}

// Save writes the scene snapshot to the configured save path.
func (e *Editor) Save() error {
	data := EncodeSnapshot(e.scene.Objects())
	if err := os.WriteFile(e.savePath, []byte(data), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", e.savePath, err)
	}
	e.logger.Info("scene saved", "path", e.savePath, "objects", e.scene.Len())
	return nil
}

// Load replaces the scene with the snapshot at the configured save path.
// The load is recorded as one undoable step. On any failure the scene is
// left untouched. Polygons with fewer than two points are dropped.
func (e *Editor) Load() error {
	data, err := os.ReadFile(e.savePath)
	if err != nil {
		return fmt.Errorf("load %s: %w", e.savePath, err)
	}
	objects, err := DecodeSnapshot(string(data))
	if err != nil {
		return fmt.Errorf("load %s: %w", e.savePath, err)
	}
	kept := dropShortPolygons(objects)
	e.finishTool()
	e.PushUndo()
	e.scene.Replace(kept)
	e.tool.Reset()
	e.logger.Info("scene loaded", "path", e.savePath, "objects", len(kept))
	return nil
}

// Copy puts the selected shape on the clipboard as a one-shape snapshot.
func (e *Editor) Copy() error {
	g := e.scene.SelectedShape()
	if g == nil {
		return ErrNoSelection
	}
	if err := e.clipboard.WriteAll(EncodeSnapshot([]Shape{g})); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

// Paste decodes shapes from the clipboard, offsets them slightly, appends
// them at the front and selects the last one.
func (e *Editor) Paste() error {
	text, err := e.clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	objects, err := DecodeSnapshot(text)
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	objects = dropShortPolygons(objects)
	if len(objects) == 0 {
		return nil
	}
	e.finishTool()
	e.PushUndo()
	last := -1
	for _, g := range objects {
		g.MoveBy(pasteOffset)
		last = e.scene.Add(g)
	}
	e.scene.Select(last)
	return nil
}

// ExportPNG renders the scene (without toolbar, tool preview or cursor)
// into a timestamped PNG under the export directory and returns its path.
func (e *Editor) ExportPNG(label string) (string, error) {
	path := exportPath(e.exportDir, label, e.now())
	if err := writeScenePNG(e.scene, e.width, e.height, path); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	e.logger.Info("scene exported", "path", path)
	return path, nil
}

// Tick advances time-based effects by dt seconds.
func (e *Editor) Tick(dt float32) {
	e.pulse.Update(dt)
}

// Draw renders the scene, the toolbar, the active tool's preview and the
// cursor, in that order.
func (e *Editor) Draw(s Surface) {
	start := time.Now()

	e.scene.Draw(s)
	if e.toolbar != nil {
		e.toolbar.Draw(s)
	}
	e.tool.Draw(s, e)
	e.drawCursor(s)

	if e.debug {
		e.stats.frames++
		e.stats.drawTime = time.Since(start)
		e.debugLog()
	}
}

const cursorArm = 7.0

// drawCursor draws a white crosshair with a black shadow and the active
// tool's name beside it.
func (e *Editor) drawCursor(s Surface) {
	p := e.mouse
	r := cursorArm
	s.DrawLine(p.Add(Vec2{r, 1}), p.Add(Vec2{-r, 1}), ColorBlack, 1)
	s.DrawLine(p.Add(Vec2{r, -1}), p.Add(Vec2{-r, -1}), ColorBlack, 1)
	s.DrawLine(p.Add(Vec2{1, -r}), p.Add(Vec2{1, r}), ColorBlack, 1)
	s.DrawLine(p.Add(Vec2{-1, -r}), p.Add(Vec2{-1, r}), ColorBlack, 1)
	s.DrawLine(p.Sub(Vec2{r, 0}), p.Add(Vec2{r, 0}), ColorWhite, 1)
	s.DrawLine(p.Sub(Vec2{0, r}), p.Add(Vec2{0, r}), ColorWhite, 1)

	s.DrawText(p.Add(Vec2{20, 0}), e.tool.Kind().String(), 16, ColorYellow)
}
