package object

import "log/slog"

// RootFrame is the index of the frame created by NewFrames.
const RootFrame = 0

const noParent = -1

type frame struct {
	parent   int
	bindings map[string]Object
}

// Frames is an arena of environment frames linked by parent index. Frames
// are never freed individually; the arena as a whole is discarded when the
// evaluation that owns it completes. Indices stay valid for the arena's
// lifetime, so no frame holds a pointer into another.
type Frames struct {
	frames []frame
}

// NewFrames creates an arena holding a single root frame.
func NewFrames() *Frames {
	f := &Frames{}
	f.Push(noParent)
	return f
}

// Push appends a fresh frame chained to parent and returns its index.
// Pass RootFrame to enclose in the root scope.
func (f *Frames) Push(parent int) int {
	slog.Debug("new frame",
		slog.Int("index", len(f.frames)),
		slog.Int("parent", parent))
	f.frames = append(f.frames, frame{
		parent:   parent,
		bindings: make(map[string]Object),
	})
	return len(f.frames) - 1
}

// Define binds name in exactly the given frame. Enclosing frames are never
// touched; a name defined here shadows any outer binding until the frame's
// evaluation completes.
func (f *Frames) Define(idx int, name string, val Object) {
	slog.Debug("define binding",
		slog.Int("frame", idx),
		slog.String("name", name),
		slog.String("type", string(val.Type())))
	f.frames[idx].bindings[name] = val
}

// Resolve looks name up starting at the given frame and walking the parent
// chain outward, innermost scope first.
func (f *Frames) Resolve(idx int, name string) (Object, bool) {
	for idx != noParent {
		if val, ok := f.frames[idx].bindings[name]; ok {
			return val, true
		}
		idx = f.frames[idx].parent
	}
	return nil, false
}

// ResolveLocal looks name up in the given frame only.
func (f *Frames) ResolveLocal(idx int, name string) (Object, bool) {
	val, ok := f.frames[idx].bindings[name]
	return val, ok
}

// Len reports how many frames the arena holds.
func (f *Frames) Len() int {
	return len(f.frames)
}
