package object

import "testing"

func TestResolveWalksParentChain(t *testing.T) {
	frames := NewFrames()
	frames.Define(RootFrame, "x", &Integer{Value: 1})

	child := frames.Push(RootFrame)
	grandchild := frames.Push(child)

	val, ok := frames.Resolve(grandchild, "x")
	if !ok {
		t.Fatalf("x not found from grandchild frame")
	}
	if val.(*Integer).Value != 1 {
		t.Errorf("wrong value. got=%s, want=1", val.Inspect())
	}
}

func TestInnermostScopeShadows(t *testing.T) {
	frames := NewFrames()
	frames.Define(RootFrame, "x", &Integer{Value: 1})

	child := frames.Push(RootFrame)
	frames.Define(child, "x", &Integer{Value: 2})

	val, _ := frames.Resolve(child, "x")
	if val.(*Integer).Value != 2 {
		t.Errorf("child lookup should see the shadowing binding. got=%s", val.Inspect())
	}

	val, _ = frames.Resolve(RootFrame, "x")
	if val.(*Integer).Value != 1 {
		t.Errorf("root binding was mutated by child define. got=%s", val.Inspect())
	}
}

func TestDefineDoesNotLeakToParent(t *testing.T) {
	frames := NewFrames()
	child := frames.Push(RootFrame)
	frames.Define(child, "local", NIL)

	if _, ok := frames.Resolve(RootFrame, "local"); ok {
		t.Errorf("binding defined in child frame is visible from root")
	}
	if _, ok := frames.ResolveLocal(RootFrame, "local"); ok {
		t.Errorf("binding defined in child frame is stored in root")
	}
}

func TestSiblingFramesAreIsolated(t *testing.T) {
	frames := NewFrames()
	left := frames.Push(RootFrame)
	right := frames.Push(RootFrame)
	frames.Define(left, "x", &Integer{Value: 1})

	if _, ok := frames.Resolve(right, "x"); ok {
		t.Errorf("binding defined in one sibling is visible from the other")
	}
}

func TestResolveMissing(t *testing.T) {
	frames := NewFrames()
	if _, ok := frames.Resolve(RootFrame, "nope"); ok {
		t.Errorf("resolved a name that was never defined")
	}
}
