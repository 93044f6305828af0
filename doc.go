// Package pictor is the editing engine of a small interactive 2D vector
// drawing program.
//
// An [Editor] owns a [Scene] of shapes ([Segment], [Rectangle], [Circle],
// [Polygon]), the current drawing [Attributes], a bounded [UndoStack] of
// scene snapshots, and exactly one active [Tool]. Input arrives as discrete
// [Event] values through [Editor.ProcessEvent]; rendering goes through the
// [Surface] interface, so the engine never depends on a window or GPU.
//
// # Running
//
// The Ebitengine host lives in package ebitenview:
//
//	cfg, err := pictor.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	ed := pictor.NewEditor(cfg)
//	ed.SeedDemo()
//	err = ebitenview.Run(ed, ebitenview.RunConfig{
//		Title: cfg.Title, Width: cfg.Width, Height: cfg.Height,
//	})
//
// # Driving the editor without a window
//
// Everything is reachable headless. Feed events directly, or queue them on
// an [EventQueue] and drain one per frame:
//
//	ed := pictor.NewEditor(pictor.Config{UndoLimit: 20})
//	ed.SetTool(pictor.ToolRectangle)
//	ed.ProcessEvent(pictor.MouseDown(10, 10, pictor.MouseButtonLeft))
//	ed.ProcessEvent(pictor.MouseUp(50, 50, pictor.MouseButtonLeft))
//	ed.Undo()
//
// # Snapshots
//
// [EncodeSnapshot] and [DecodeSnapshot] define the text form used for undo,
// the save file and the clipboard:
//
//	2
//	RECT 100 100 300 200 0 1 1 0 1 0 6 1
//	POLY 3 0 0 10 0 10 10 1 1 1 0.5 0.5 0.5 2 0
//
// Decoding is strict. Any malformed input fails with an error wrapping
// [ErrMalformedSnapshot] and leaves the caller's scene untouched.
//
// # Scripts
//
// [LoadTestScript] reads a JSON list of steps (click, rightclick, press,
// move, release, drag, key, tool, do, wait, export) that a host plays back
// through an [EventQueue], one event per frame.
package pictor
