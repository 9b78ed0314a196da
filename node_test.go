package chalk

import "testing"

func TestAddChildReparents(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewBox("child", 10, 10)

	a.AddChild(child)
	assertEqual(t, child.Parent, a)
	assertEqual(t, a.NumChildren(), 1)

	b.AddChild(child)
	assertEqual(t, child.Parent, b)
	assertEqual(t, a.NumChildren(), 0)
	assertEqual(t, b.NumChildren(), 1)
}

func TestAddChildPanicsOnNil(t *testing.T) {
	n := NewContainer("n")
	assertPanics(t, func() { n.AddChild(nil) })
}

func TestAddChildPanicsOnCycle(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	a.AddChild(b)
	assertPanics(t, func() { b.AddChild(a) })
}

func TestRemoveChildPanicsOnWrongParent(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	child := NewContainer("child")
	a.AddChild(child)
	assertPanics(t, func() { b.RemoveChild(child) })
}

func TestDisposeRecursesAndDetaches(t *testing.T) {
	root := NewContainer("root")
	mid := NewContainer("mid")
	leaf := NewBox("leaf", 4, 4)
	root.AddChild(mid)
	mid.AddChild(leaf)

	mid.Dispose()
	assertTrue(t, mid.IsDisposed(), "mid not disposed")
	assertTrue(t, leaf.IsDisposed(), "descendants must be disposed")
	assertEqual(t, root.NumChildren(), 0)

	// Double dispose is a no-op.
	mid.Dispose()
}

func TestWorldPosition(t *testing.T) {
	root := NewContainer("root")
	root.SetPosition(10, 20)
	child := NewContainer("child")
	child.SetPosition(5, 7)
	root.AddChild(child)
	leaf := NewBox("leaf", 1, 1)
	leaf.SetPosition(1, 2)
	child.AddChild(leaf)

	x, y := leaf.worldPosition()
	assertClose(t, x, 16)
	assertClose(t, y, 29)
}
