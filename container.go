package chalk

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// atom is one logical element of a structure's value: the raw value plus its
// rendered text. Only ints, floats, and strings are accepted; anything else
// is rejected up front with a ShapeError before any visual state changes.
type atom struct {
	raw  any
	text string
}

func makeAtoms(values []any) ([]atom, error) {
	atoms := make([]atom, len(values))
	for i, v := range values {
		s, ok := atomText(v)
		if !ok {
			return nil, &ShapeError{Index: i, Value: v}
		}
		atoms[i] = atom{raw: v, text: s}
	}
	return atoms, nil
}

func atomText(v any) (string, bool) {
	switch v.(type) {
	case string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprint(v), true
	}
	return "", false
}

func atomTexts(atoms []atom) []string {
	texts := make([]string, len(atoms))
	for i, a := range atoms {
		texts[i] = a.text
	}
	return texts
}

// visualCell bundles the primitives that represent one atom. x and y are the
// settled layout position in root space; anchors read these, not the node's
// possibly-mid-tween coordinates.
type visualCell struct {
	box   *Node // NodeBox or NodeDisc
	label *Node
	top   *Node // per-cell marker above the cell, Background-colored when idle
	bot   *Node // per-cell marker below the cell
	conn  *Node // outgoing connector (linked lists only, nil on the tail)

	spec CellSpec
	text string
	x, y float64

	// fresh marks a cell created by the current update; reflow positions it
	// instantly instead of tweening it in from the origin.
	fresh bool
}

func (vc *visualCell) nodes() []*Node {
	return []*Node{vc.box, vc.label, vc.top, vc.bot, vc.conn}
}

// cellLayout is the strategy a concrete structure plugs into the core: how to
// compute geometry, build and tear down the primitives for one element, and
// arrange everything after a change. The core owns the diffing and highlight
// bookkeeping; the layout owns shapes and arrangement.
type cellLayout interface {
	computeSpecs(texts []string) []CellSpec
	cellSpec(text string) CellSpec
	newCell(spec CellSpec, text string) *visualCell
	makePlaceholder() *visualCell // nil when the structure shows nothing while empty
	destroyCell(cell *visualCell)
	reflow()
	anchorLocal(index int, edge Edge) Vec2
	extentLocal() Rect
	defaultFill() Color
}

// core is the shared state machine behind Array, String, and LinkedList. It
// reconciles the visual cells against a new logical value, keeps the highlight
// store authoritative across rebuilds, and re-anchors pointers afterwards.
type core struct {
	scene  *Scene
	theme  Theme
	font   Font
	name   string
	root   *Node
	layout cellLayout

	data        []atom
	cells       []*visualCell
	specs       []CellSpec
	placeholder *visualCell
	hl          *HighlightStore
	pointers    []*Pointer

	// animate is the structure's configured animation mode; updateValue
	// overrides it for the duration of one call.
	animate bool
}

func (c *core) init(scene *Scene, theme Theme, font Font, name string, pos Vec2, animate bool) {
	c.scene = scene
	c.theme = theme
	c.font = font
	c.name = name
	c.root = NewContainer(name)
	c.root.SetPosition(pos.X, pos.Y)
	c.hl = NewHighlightStore()
	c.animate = animate && theme.AnimSeconds > 0
	scene.Root().AddChild(c.root)
}

// seed builds the initial visual state without animation.
func (c *core) seed(values []any) error {
	atoms, err := makeAtoms(values)
	if err != nil {
		return err
	}
	prev := c.animate
	c.animate = false
	defer func() { c.animate = prev }()

	c.data = atoms
	if len(atoms) > 0 {
		c.specs = c.layout.computeSpecs(atomTexts(atoms))
		for i := range atoms {
			cell := c.layout.newCell(c.specs[i], atoms[i].text)
			c.cells = append(c.cells, cell)
		}
	} else {
		c.placeholder = c.layout.makePlaceholder()
	}
	c.layout.reflow()
	return nil
}

// --- Reconciliation ---

// updateValue diffs the new value against the current one and applies the
// minimal structural change: retext survivors, destroy trailing extras, create
// trailing additions. Highlight state is snapshotted before the change and
// restored after it, so surviving indices keep their colors even when their
// cells were rebuilt. Validation happens first; on error nothing has changed.
func (c *core) updateValue(values []any, animated bool) error {
	atoms, err := makeAtoms(values)
	if err != nil {
		return err
	}

	oldLen := len(c.data)
	newLen := len(atoms)
	if oldLen == 0 && newLen == 0 {
		return nil
	}

	prev := c.animate
	c.animate = animated && c.theme.AnimSeconds > 0
	defer func() { c.animate = prev }()

	snap := c.hl.Snapshot()
	texts := atomTexts(atoms)

	if oldLen == 0 {
		c.removePlaceholder()
	}

	// Trailing removals.
	if newLen < oldLen {
		for i := oldLen - 1; i >= newLen; i-- {
			c.layout.destroyCell(c.cells[i])
			c.cells[i] = nil
		}
		c.cells = c.cells[:newLen]
	}

	// Geometry is recomputed only when the shape changed: a different
	// length, or a surviving atom whose new text needs a different width.
	shapeChanged := oldLen != newLen
	if !shapeChanged {
		for i := range atoms {
			if atoms[i].text == c.data[i].text {
				continue
			}
			if c.layout.cellSpec(atoms[i].text).Width != c.specs[i].Width {
				shapeChanged = true
				break
			}
		}
	}
	if shapeChanged {
		c.specs = c.layout.computeSpecs(texts)
	}

	// Retext survivors.
	n := min(oldLen, newLen)
	for i := 0; i < n; i++ {
		changed := atoms[i].text != c.data[i].text
		if !changed && !shapeChanged {
			continue
		}
		if changed && !shapeChanged {
			c.specs[i] = c.layout.cellSpec(atoms[i].text)
		}
		cell := c.cells[i]
		cell.text = atoms[i].text
		cell.spec = c.specs[i]
		cell.label.Text = atoms[i].text
		cell.label.FontSize = c.specs[i].FontSize
		if cell.box.Type == NodeBox {
			cell.box.Width = c.specs[i].Width
			cell.box.Height = c.specs[i].Height
		}
	}

	// Trailing additions.
	for i := oldLen; i < newLen; i++ {
		cell := c.layout.newCell(c.specs[i], atoms[i].text)
		c.cells = append(c.cells, cell)
		c.fadeIn(cell.nodes()...)
	}

	c.data = atoms
	if newLen == 0 {
		c.placeholder = c.layout.makePlaceholder()
		c.fadeInCell(c.placeholder)
	}
	c.layout.reflow()

	// Highlight continuity: restore the pre-change state, then drop indices
	// that no longer exist. Pointers re-resolve before the repaint so their
	// marker entries land on the right indices.
	c.hl.Restore(snap)
	for i := newLen; i < oldLen; i++ {
		c.hl.Remove(i)
	}
	err = c.reanchorPointers()
	c.applyContainerColors()
	c.applyMarkerColors(SlotPointerTop)
	c.applyMarkerColors(SlotPointerBottom)

	if globalDebug || c.scene.debug {
		debugCheckReconciled(c)
	}
	return err
}

func (c *core) removePlaceholder() {
	if c.placeholder == nil {
		return
	}
	c.discard(c.placeholder.nodes()...)
	c.placeholder = nil
}

// --- Highlight operations ---

// HighlightContainers highlights up to three elements. Omitted colors fall
// back to the theme's slot palette; indices that coincide take the theme's
// collision color (Color12, Color13, Color23, or Color123) so overlapping
// highlights stay distinguishable.
func (c *core) HighlightContainers(indices []int, colors ...Color) error {
	want, err := c.resolveHighlights("highlight containers", indices, colors)
	if err != nil {
		return err
	}
	c.hl.ClearSlot(SlotContainer)
	for i, col := range want {
		c.hl.Set(i, SlotContainer, col)
	}
	c.applyContainerColors()
	return nil
}

// HighlightContainersWithValue highlights every element whose value renders to
// the same text as value. Returns a NotFoundError, without changing anything,
// when no element matches.
func (c *core) HighlightContainersWithValue(value any, colors ...Color) error {
	matches, err := c.matchValue(value)
	if err != nil {
		return err
	}
	col := c.theme.ValueMatch
	if len(colors) > 0 {
		col = colors[0]
	}
	c.hl.ClearSlot(SlotContainer)
	for _, i := range matches {
		c.hl.Set(i, SlotContainer, col)
	}
	c.applyContainerColors()
	return nil
}

// ClearContainersHighlights resets every element to the resting fill.
func (c *core) ClearContainersHighlights() {
	c.hl.ClearSlot(SlotContainer)
	c.applyContainerColors()
}

// resolveHighlights validates a highlight request and maps each index to its
// final color, applying the collision palette for coinciding indices.
func (c *core) resolveHighlights(op string, indices []int, colors []Color) (map[int]Color, error) {
	if len(indices) < 1 || len(indices) > 3 {
		return nil, &ConfigError{
			Field:  "indices",
			Reason: fmt.Sprintf("want 1 to 3 indices, got %d", len(indices)),
		}
	}
	if len(colors) > len(indices) {
		return nil, &ConfigError{
			Field:  "colors",
			Reason: fmt.Sprintf("%d colors for %d indices", len(colors), len(indices)),
		}
	}
	for _, i := range indices {
		if i < 0 || i >= len(c.data) {
			return nil, &IndexError{Op: op, Index: i, Len: len(c.data)}
		}
	}

	defaults := [3]Color{c.theme.Color1, c.theme.Color2, c.theme.Color3}
	pick := func(k int) Color {
		if k < len(colors) {
			return colors[k]
		}
		return defaults[k]
	}

	out := make(map[int]Color, len(indices))
	switch len(indices) {
	case 1:
		out[indices[0]] = pick(0)
	case 2:
		if indices[0] == indices[1] {
			out[indices[0]] = c.theme.Color12
		} else {
			out[indices[0]] = pick(0)
			out[indices[1]] = pick(1)
		}
	case 3:
		a, b, d := indices[0], indices[1], indices[2]
		switch {
		case a == b && b == d:
			out[a] = c.theme.Color123
		case a == b:
			out[a] = c.theme.Color12
			out[d] = pick(2)
		case a == d:
			out[a] = c.theme.Color13
			out[b] = pick(1)
		case b == d:
			out[b] = c.theme.Color23
			out[a] = pick(0)
		default:
			out[a] = pick(0)
			out[b] = pick(1)
			out[d] = pick(2)
		}
	}
	return out, nil
}

// matchValue returns the indices whose text matches value's text.
func (c *core) matchValue(value any) ([]int, error) {
	text, ok := atomText(value)
	if !ok {
		return nil, &ShapeError{Index: -1, Value: value}
	}
	var matches []int
	for i, a := range c.data {
		if a.text == text {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		return nil, &NotFoundError{Target: value}
	}
	return matches, nil
}

// applyContainerColors repaints every cell's fill from the highlight store.
func (c *core) applyContainerColors() {
	for i, cell := range c.cells {
		want, ok := c.hl.Get(i, SlotContainer)
		if !ok {
			want = c.layout.defaultFill()
		}
		c.paintFill(cell.box, want)
	}
}

// applyMarkerColors repaints the per-cell markers of one pointer slot. Idle
// markers take the background color, which makes them invisible until
// highlighted.
func (c *core) applyMarkerColors(slot Slot) {
	for i, cell := range c.cells {
		m := cell.top
		if slot == SlotPointerBottom {
			m = cell.bot
		}
		if m == nil {
			continue
		}
		want, ok := c.hl.Get(i, slot)
		if !ok {
			want = c.theme.Background
		}
		c.paintFill(m, want)
	}
}

// --- Anchored ---

// AnchorFor returns the world-space anchor point of the element at index.
func (c *core) AnchorFor(index int, edge Edge) (Vec2, error) {
	if index < 0 || index >= len(c.data) {
		return Vec2{}, &IndexError{Op: "anchor", Index: index, Len: len(c.data)}
	}
	local := c.layout.anchorLocal(index, edge)
	wx, wy := c.root.worldPosition()
	return Vec2{local.X + wx, local.Y + wy}, nil
}

// Extent returns the world-space bounding rectangle of the structure.
func (c *core) Extent() Rect {
	r := c.layout.extentLocal()
	wx, wy := c.root.worldPosition()
	r.X += wx
	r.Y += wy
	return r
}

// Len returns the number of logical elements.
func (c *core) Len() int {
	return len(c.data)
}

// Values returns a copy of the current logical value.
func (c *core) Values() []any {
	out := make([]any, len(c.data))
	for i, a := range c.data {
		out[i] = a.raw
	}
	return out
}

// Name returns the structure's name, used in node names and debug output.
func (c *core) Name() string {
	return c.name
}

// Root returns the structure's root node, for manual scene composition.
func (c *core) Root() *Node {
	return c.root
}

// Position returns the structure's local position in the scene.
func (c *core) Position() Vec2 {
	return Vec2{c.root.X, c.root.Y}
}

// SetPosition moves the structure instantly.
func (c *core) SetPosition(x, y float64) {
	c.root.SetPosition(x, y)
}

// MoveTo moves the structure, tweening when animated.
func (c *core) MoveTo(x, y float64, animated bool) {
	if !animated || c.theme.AnimSeconds <= 0 {
		c.root.SetPosition(x, y)
		return
	}
	c.scene.timeline.Add(TweenPosition(c.root, x, y, c.dur(), ease.OutQuad))
}

// Dispose removes the structure and all its primitives from the scene.
func (c *core) Dispose() {
	c.root.Dispose()
	c.cells = nil
	c.placeholder = nil
	c.pointers = nil
	c.data = nil
}

// --- Animation helpers ---

func (c *core) dur() float32 {
	return float32(c.theme.AnimSeconds)
}

// moveNode repositions a node, tweening unless instant or animation is off.
func (c *core) moveNode(n *Node, x, y float64, instant bool) {
	if n == nil {
		return
	}
	if !c.animate || instant || (n.X == x && n.Y == y) {
		n.SetPosition(x, y)
		return
	}
	c.scene.timeline.Add(TweenPosition(n, x, y, c.dur(), ease.OutQuad))
}

// moveConnector repositions both endpoints of a connector.
func (c *core) moveConnector(n *Node, x, y, ex, ey float64, instant bool) {
	if n == nil {
		return
	}
	if !c.animate || instant {
		n.SetPosition(x, y)
		n.EndX, n.EndY = ex, ey
		return
	}
	c.scene.timeline.Add(TweenEndpoints(n, x, y, ex, ey, c.dur(), ease.OutQuad))
}

// paintFill recolors a node's fill, tweening when animation is on.
func (c *core) paintFill(n *Node, to Color) {
	if n == nil {
		return
	}
	if !c.animate || n.Fill == to {
		n.Fill = to
		return
	}
	c.scene.timeline.Add(TweenFill(n, to, c.dur(), ease.OutQuad))
}

// fadeIn makes freshly created nodes appear gradually when animation is on.
func (c *core) fadeIn(nodes ...*Node) {
	if !c.animate {
		return
	}
	for _, n := range nodes {
		if n == nil {
			continue
		}
		n.Alpha = 0
		c.scene.timeline.Add(TweenAlpha(n, 1, c.dur(), ease.OutQuad))
	}
}

func (c *core) fadeInCell(cell *visualCell) {
	if cell == nil {
		return
	}
	c.fadeIn(cell.nodes()...)
}

// discard fades nodes out and disposes them, or disposes immediately when
// animation is off.
func (c *core) discard(nodes ...*Node) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if !c.animate {
			n.Dispose()
			continue
		}
		target := n
		g := TweenAlpha(n, 0, c.dur(), ease.OutQuad)
		g.OnComplete = func() { target.Dispose() }
		c.scene.timeline.Add(g)
	}
}
