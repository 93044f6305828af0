package pictor

import (
	"errors"
	"fmt"
)

// Action names an editor operation that toolbar buttons, keyboard
// shortcuts and scripts can trigger.
type Action string

const (
	ActionToolSegment    Action = "tool-segment"
	ActionToolRectangle  Action = "tool-rectangle"
	ActionToolCircle     Action = "tool-circle"
	ActionToolPolygon    Action = "tool-polygon"
	ActionToolSelect     Action = "tool-select"
	ActionToolEditPoints Action = "tool-edit-points"
	ActionCycleBorder    Action = "cycle-border"
	ActionCycleFill      Action = "cycle-fill"
	ActionCycleThickness Action = "cycle-thickness"
	ActionToggleFill     Action = "toggle-fill"
	ActionFront          Action = "front"
	ActionBack           Action = "back"
	ActionClear          Action = "clear"
	ActionSave           Action = "save"
	ActionLoad           Action = "load"
	ActionUndo           Action = "undo"
	ActionCopy           Action = "copy"
	ActionPaste          Action = "paste"
	ActionExport         Action = "export"
)

// ErrUnknownAction is returned by Editor.Do for names it does not recognize.
var ErrUnknownAction = errors.New("unknown action")

// toolActions maps the select-tool actions to their tools.
var toolActions = map[Action]ToolKind{
	ActionToolSegment:    ToolSegment,
	ActionToolRectangle:  ToolRectangle,
	ActionToolCircle:     ToolCircle,
	ActionToolPolygon:    ToolPolygon,
	ActionToolSelect:     ToolSelect,
	ActionToolEditPoints: ToolEditPoints,
}

// shortcuts maps keys pressed with Ctrl to actions.
var shortcuts = map[string]Action{
	"Z": ActionUndo,
	"S": ActionSave,
	"O": ActionLoad,
	"C": ActionCopy,
	"V": ActionPaste,
	"E": ActionExport,
}

// Do runs the named action. I/O failures are logged at warn level and
// returned; they never end the session.
func (e *Editor) Do(a Action) error {
	e.logger.Debug("action", "name", string(a))

	if k, ok := toolActions[a]; ok {
		e.SetTool(k)
		return nil
	}

	var err error
	switch a {
	case ActionCycleBorder:
		e.style.CycleBorder()
	case ActionCycleFill:
		e.style.CycleFill()
	case ActionCycleThickness:
		e.style.CycleThickness()
	case ActionToggleFill:
		e.style.ToggleFill()
	case ActionFront:
		e.BringForward()
	case ActionBack:
		e.SendBackward()
	case ActionClear:
		e.Clear()
	case ActionSave:
		err = e.Save()
	case ActionLoad:
		err = e.Load()
	case ActionUndo:
		e.Undo()
	case ActionCopy:
		err = e.Copy()
	case ActionPaste:
		err = e.Paste()
	case ActionExport:
		_, err = e.ExportPNG(string(a))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, string(a))
	}

	switch {
	case err == nil:
	case errors.Is(err, ErrNoSelection):
		e.logger.Debug("action skipped", "name", string(a), "reason", err)
	default:
		e.logger.Warn("action failed", "name", string(a), "error", err)
	}
	return err
}
