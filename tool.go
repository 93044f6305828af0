package pictor

// ToolKind identifies one of the editor's tools.
type ToolKind uint8

const (
	ToolSegment ToolKind = iota
	ToolRectangle
	ToolCircle
	ToolPolygon
	ToolSelect
	ToolEditPoints
)

var toolKindNames = [...]string{"Segment", "Rectangle", "Circle", "Polygon", "Select", "EditPoints"}

func (k ToolKind) String() string {
	if int(k) < len(toolKindNames) {
		return toolKindNames[k]
	}
	return "Unknown"
}

// DefaultTool is the tool a new editor (or a cleared scene) starts with.
const DefaultTool = ToolSegment

// Tool interprets input events into scene edits. Exactly one tool is active
// per editor. Tools refer to scene objects by index and re-validate those
// indices on every event, so they tolerate the scene being replaced under
// them by undo or load.
type Tool interface {
	Kind() ToolKind
	ProcessEvent(ev Event, ed *Editor)
	// Draw renders the tool's transient preview on top of the scene.
	Draw(s Surface, ed *Editor)
	// Reset drops all transient interaction state without touching the scene.
	Reset()
}

// finisher is implemented by tools that leave provisional objects in the
// scene and must settle them before being switched away from.
type finisher interface {
	Finish(ed *Editor)
}

func newTool(k ToolKind) Tool {
	switch k {
	case ToolRectangle:
		return &shapeTool{kind: ToolRectangle}
	case ToolCircle:
		return &shapeTool{kind: ToolCircle}
	case ToolPolygon:
		return &polygonTool{index: -1}
	case ToolSelect:
		return &selectTool{}
	case ToolEditPoints:
		return &editPointsTool{obj: -1, point: -1}
	}
	return &shapeTool{kind: ToolSegment}
}

// toolState is the two-state machine shared by the creation tools.
type toolState uint8

const (
	stateWait toolState = iota
	stateInteract
)
