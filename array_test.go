package chalk

import "testing"

func TestNewArrayBuildsCells(t *testing.T) {
	_, arr := newTestArray(t, 5, 3, 8)
	assertEqual(t, arr.Len(), 3)
	assertEqual(t, len(arr.cells), 3)
	assertEqual(t, arr.cells[1].label.Text, "3")
}

func TestNewArrayMixedAtomKinds(t *testing.T) {
	_, arr := newTestArray(t, 1, 2.5, "xy")
	assertEqual(t, arr.cells[0].text, "1")
	assertEqual(t, arr.cells[1].text, "2.5")
	assertEqual(t, arr.cells[2].text, "xy")
}

func TestNewArrayRejectsBadAtom(t *testing.T) {
	scene := NewScene()
	_, err := NewArray(scene, []any{1, struct{}{}}, ArrayConfig{Font: testFont()})
	se := assertErrorAs[*ShapeError](t, err)
	assertEqual(t, se.Index, 1)
}

func TestNewArrayRequiresFont(t *testing.T) {
	_, err := NewArray(NewScene(), nil, ArrayConfig{})
	ce := assertErrorAs[*ConfigError](t, err)
	assertEqual(t, ce.Field, "font")
}

func TestUpdateValueGrowAndShrink(t *testing.T) {
	_, arr := newTestArray(t, 1, 2)

	assertNoError(t, arr.UpdateValue([]any{1, 2, 3, 4}, false))
	assertEqual(t, len(arr.cells), 4)

	assertNoError(t, arr.UpdateValue([]any{1}, false))
	assertEqual(t, len(arr.cells), 1)
}

func TestUpdateValueKeepsSurvivorIdentity(t *testing.T) {
	_, arr := newTestArray(t, 1, 2, 3)
	box0 := arr.cells[0].box
	box1 := arr.cells[1].box

	assertNoError(t, arr.UpdateValue([]any{1, 9}, false))
	assertEqual(t, arr.cells[0].box, box0)
	assertEqual(t, arr.cells[1].box, box1)
	assertEqual(t, arr.cells[1].label.Text, "9")
}

func TestUpdateValueFailsBeforeMutation(t *testing.T) {
	_, arr := newTestArray(t, 1, 2)
	err := arr.UpdateValue([]any{1, []int{2}}, false)
	assertErrorAs[*ShapeError](t, err)

	// The failed update must not have touched anything.
	assertEqual(t, arr.Len(), 2)
	assertEqual(t, arr.cells[1].label.Text, "2")
}

func TestUpdateValueContentOnlyKeepsLayout(t *testing.T) {
	_, arr := newTestArray(t, 5, 3)
	x1 := arr.cells[1].x
	red := Hex("#ff0000")
	assertNoError(t, arr.HighlightContainers([]int{1}, red))

	// 5 -> 7 renders at the same width, so no cell may move and no
	// unrelated highlight may change.
	assertNoError(t, arr.UpdateValue([]any{7, 3}, false))
	assertClose(t, arr.cells[1].x, x1)
	assertEqual(t, arr.cells[0].label.Text, "7")
	assertEqual(t, arr.cells[1].box.Fill, red)
}

func TestUpdateValueReflowsOnWidthChange(t *testing.T) {
	_, arr := newTestArray(t, 5, 3)
	x1 := arr.cells[1].x

	assertNoError(t, arr.UpdateValue([]any{1000000, 3}, false))
	assertTrue(t, arr.cells[1].x > x1, "wider cell 0 must push cell 1 right")
}

func TestUpdateValueEmptyTransitions(t *testing.T) {
	_, arr := newTestArray(t, 1, 2)

	assertNoError(t, arr.UpdateValue(nil, false))
	assertEqual(t, arr.Len(), 0)
	assertEqual(t, len(arr.cells), 0)
	assertTrue(t, arr.placeholder != nil, "empty array must show a placeholder")
	assertEqual(t, arr.placeholder.label.Text, "[]")

	assertNoError(t, arr.UpdateValue([]any{9}, false))
	assertTrue(t, arr.placeholder == nil, "placeholder must vanish")
	assertEqual(t, len(arr.cells), 1)

	// Empty to empty is a no-op.
	assertNoError(t, arr.UpdateValue(nil, false))
	assertNoError(t, arr.UpdateValue(nil, false))
}

func TestHighlightSurvivesUpdate(t *testing.T) {
	_, arr := newTestArray(t, 1, 2, 3)
	red := Hex("#ff0000")
	assertNoError(t, arr.HighlightContainers([]int{1}, red))
	assertEqual(t, arr.cells[1].box.Fill, red)

	assertNoError(t, arr.UpdateValue([]any{1, 2, 3, 4}, false))
	assertEqual(t, arr.cells[1].box.Fill, red)
	assertEqual(t, arr.cells[3].box.Fill, arr.theme.FillColor)
}

func TestHighlightDroppedWithRemovedIndex(t *testing.T) {
	_, arr := newTestArray(t, 1, 2, 3)
	assertNoError(t, arr.HighlightContainers([]int{2}))

	assertNoError(t, arr.UpdateValue([]any{1, 2}, false))
	assertNoError(t, arr.UpdateValue([]any{1, 2, 3}, false))

	// Index 2 was removed and recreated; its highlight must not resurrect.
	assertEqual(t, arr.cells[2].box.Fill, arr.theme.FillColor)
}

func TestHighlightDefaultsAndOverrides(t *testing.T) {
	_, arr := newTestArray(t, 1, 2, 3)

	assertNoError(t, arr.HighlightContainers([]int{0, 1, 2}))
	assertEqual(t, arr.cells[0].box.Fill, arr.theme.Color1)
	assertEqual(t, arr.cells[1].box.Fill, arr.theme.Color2)
	assertEqual(t, arr.cells[2].box.Fill, arr.theme.Color3)

	purple := Hex("#800080")
	assertNoError(t, arr.HighlightContainers([]int{0}, purple))
	assertEqual(t, arr.cells[0].box.Fill, purple)
	// A new highlight replaces the previous one.
	assertEqual(t, arr.cells[1].box.Fill, arr.theme.FillColor)
}

func TestHighlightCollisionColors(t *testing.T) {
	_, arr := newTestArray(t, 1, 2, 3)

	assertNoError(t, arr.HighlightContainers([]int{1, 1}))
	assertEqual(t, arr.cells[1].box.Fill, arr.theme.Color12)

	assertNoError(t, arr.HighlightContainers([]int{1, 1, 1}))
	assertEqual(t, arr.cells[1].box.Fill, arr.theme.Color123)

	assertNoError(t, arr.HighlightContainers([]int{0, 2, 0}))
	assertEqual(t, arr.cells[0].box.Fill, arr.theme.Color13)
	assertEqual(t, arr.cells[2].box.Fill, arr.theme.Color2)

	assertNoError(t, arr.HighlightContainers([]int{0, 2, 2}))
	assertEqual(t, arr.cells[2].box.Fill, arr.theme.Color23)
	assertEqual(t, arr.cells[0].box.Fill, arr.theme.Color1)
}

func TestHighlightValidation(t *testing.T) {
	_, arr := newTestArray(t, 1, 2)

	ie := assertErrorAs[*IndexError](t, arr.HighlightContainers([]int{5}))
	assertEqual(t, ie.Index, 5)

	assertErrorAs[*ConfigError](t, arr.HighlightContainers(nil))
	assertErrorAs[*ConfigError](t, arr.HighlightContainers([]int{0, 1, 0, 1}))
	assertErrorAs[*ConfigError](t, arr.HighlightContainers([]int{0}, Hex("#ffffff"), Hex("#ffffff")))

	// Highlighting an empty structure is out of range by definition.
	assertNoError(t, arr.UpdateValue(nil, false))
	assertErrorAs[*IndexError](t, arr.HighlightContainers([]int{0}))
}

func TestHighlightWithValue(t *testing.T) {
	_, arr := newTestArray(t, 3, 1, 3, 2)

	assertNoError(t, arr.HighlightContainersWithValue(3))
	assertEqual(t, arr.cells[0].box.Fill, arr.theme.ValueMatch)
	assertEqual(t, arr.cells[2].box.Fill, arr.theme.ValueMatch)
	assertEqual(t, arr.cells[1].box.Fill, arr.theme.FillColor)

	// A missing value errors without clearing the current highlights.
	assertErrorAs[*NotFoundError](t, arr.HighlightContainersWithValue(99))
	assertEqual(t, arr.cells[0].box.Fill, arr.theme.ValueMatch)
}

func TestClearContainersHighlights(t *testing.T) {
	_, arr := newTestArray(t, 1, 2)
	assertNoError(t, arr.HighlightContainers([]int{0, 1}))
	arr.ClearContainersHighlights()
	assertEqual(t, arr.cells[0].box.Fill, arr.theme.FillColor)
	assertEqual(t, arr.cells[1].box.Fill, arr.theme.FillColor)
}

func TestArrayAnchors(t *testing.T) {
	scene := NewScene()
	arr, err := NewArray(scene, []any{1, 2}, ArrayConfig{
		Font: testFont(),
		Pos:  Vec2{X: 100, Y: 50},
	})
	assertNoError(t, err)

	left0, err := arr.AnchorFor(0, EdgeLeft)
	assertNoError(t, err)
	assertClose(t, left0.X, 100)

	right0, err := arr.AnchorFor(0, EdgeRight)
	assertNoError(t, err)
	left1, err := arr.AnchorFor(1, EdgeLeft)
	assertNoError(t, err)
	assertClose(t, left1.X-right0.X, arr.theme.CellGap)

	top0, err := arr.AnchorFor(0, EdgeTop)
	assertNoError(t, err)
	bot0, err := arr.AnchorFor(0, EdgeBottom)
	assertNoError(t, err)
	assertClose(t, top0.Y, 50)
	assertClose(t, bot0.Y-top0.Y, arr.cells[0].spec.Height)

	_, err = arr.AnchorFor(7, EdgeCenter)
	assertErrorAs[*IndexError](t, err)
}

func TestArrayExtentAndAlignTo(t *testing.T) {
	scene := NewScene()
	arr, err := NewArray(scene, []any{1, 2, 3}, ArrayConfig{
		Font: testFont(),
		Pos:  Vec2{X: 10, Y: 20},
	})
	assertNoError(t, err)

	ext := arr.Extent()
	assertClose(t, ext.X, 10)
	assertClose(t, ext.Y, 20)
	assertTrue(t, ext.Width > 0 && ext.Height > 0, "extent must be non-degenerate")

	caption := NewLabel("caption", "hi", testFont(), 16)
	scene.Root().AddChild(caption)
	AlignTo(caption, arr, EdgeBottom, Vec2{Y: 12})
	assertClose(t, caption.X, ext.X+ext.Width/2)
	assertClose(t, caption.Y, ext.Y+ext.Height+12)
}

func TestArrayCenteredRow(t *testing.T) {
	scene := NewScene()
	arr, err := NewArray(scene, []any{1, 2}, ArrayConfig{
		Font:     testFont(),
		Centered: true,
	})
	assertNoError(t, err)

	ext := arr.Extent()
	assertClose(t, ext.X, -ext.Width/2)
}

func TestArrayAnimatedUpdateSettles(t *testing.T) {
	scene := NewScene()
	arr, err := NewArray(scene, []any{1, 2, 3}, ArrayConfig{Font: testFont()})
	assertNoError(t, err)

	assertNoError(t, arr.UpdateValue([]any{1000000, 2, 3}, true))
	assertTrue(t, !scene.Idle(), "animated update must queue tweens")

	scene.Timeline().Finish()
	for i, cell := range arr.cells {
		if cell.box.X != cell.x {
			t.Fatalf("cell %d box at %v, settled layout at %v", i, cell.box.X, cell.x)
		}
	}
}

func TestArrayAnimatedShrinkDisposesRemoved(t *testing.T) {
	scene := NewScene()
	arr, err := NewArray(scene, []any{1, 2, 3}, ArrayConfig{Font: testFont()})
	assertNoError(t, err)
	removed := arr.cells[2].box

	assertNoError(t, arr.UpdateValue([]any{1, 2}, true))
	scene.Timeline().Finish()
	assertTrue(t, removed.IsDisposed(), "removed cell must be disposed after the fade")
}

func TestArrayValuesCopy(t *testing.T) {
	_, arr := newTestArray(t, 1, 2)
	vals := arr.Values()
	assertEqual(t, len(vals), 2)
	vals[0] = 99
	assertEqual(t, arr.Values()[0].(int), 1)
}

func TestArrayDebugInvariants(t *testing.T) {
	scene := NewScene()
	scene.SetDebug(true)
	arr, err := NewArray(scene, []any{1, 2}, ArrayConfig{Font: testFont()})
	assertNoError(t, err)
	assertNoError(t, arr.UpdateValue([]any{3, 4, 5}, false))
	assertNoError(t, arr.UpdateValue(nil, false))
}
