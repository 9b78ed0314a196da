package chalk

import (
	"fmt"
	"math"
)

// pointerFontScale sizes pointer labels relative to the theme font.
const pointerFontScale = 0.6

// Pointer is a labeled arrow attached above or below one element. The arrow
// itself is the element's slot marker, colored through the highlight store;
// the pointer owns only its text label. That makes pointer visibility survive
// structural rebuilds for free, the same way plain highlights do.
//
// A pointer tracks either a fixed index or a value. Value pointers re-resolve
// to the first matching element after every update and hide when the value
// disappears.
type Pointer struct {
	label string
	slot  Slot
	color Color

	index     int
	value     any
	valueText string
	byValue   bool
	resolved  bool

	text *Node
}

// Label returns the pointer's unique label.
func (p *Pointer) Label() string { return p.label }

// Slot returns the pointer's slot (top or bottom).
func (p *Pointer) Slot() Slot { return p.slot }

// Index returns the element index the pointer currently targets. Meaningless
// while Resolved is false.
func (p *Pointer) Index() int { return p.index }

// Resolved reports whether the pointer currently targets an element.
func (p *Pointer) Resolved() bool { return p.resolved }

// PointerSpec describes one pointer for CreatePointers. A zero Color takes
// the theme's first highlight color.
type PointerSpec struct {
	Label string
	Index int
	Slot  Slot
	Color Color
}

// --- Pointer operations ---

// AddPointer attaches a labeled pointer to the element at index. Labels are
// unique per structure; the slot selects above or below.
func (c *core) AddPointer(label string, index int, slot Slot, color Color) error {
	if err := c.checkPointerArgs(label, slot); err != nil {
		return err
	}
	if index < 0 || index >= len(c.data) {
		return &IndexError{Op: "pointer", Index: index, Len: len(c.data)}
	}
	c.attachPointer(&Pointer{
		label: label,
		slot:  slot,
		color: defaultPointerColor(color, &c.theme),
		index: index,
	})
	return nil
}

// PointerOnValue attaches a labeled pointer to the first element matching
// value. The pointer follows the value across updates: it re-resolves after
// every UpdateValue and hides when no element matches anymore.
func (c *core) PointerOnValue(label string, value any, slot Slot, color Color) error {
	if err := c.checkPointerArgs(label, slot); err != nil {
		return err
	}
	text, ok := atomText(value)
	if !ok {
		return &ShapeError{Index: -1, Value: value}
	}
	index := c.findText(text)
	if index < 0 {
		return &NotFoundError{Target: value}
	}
	c.attachPointer(&Pointer{
		label:     label,
		slot:      slot,
		color:     defaultPointerColor(color, &c.theme),
		index:     index,
		value:     value,
		valueText: text,
		byValue:   true,
	})
	return nil
}

// CreatePointers attaches several pointers at once. All specs are validated
// before any pointer is attached, so a bad spec leaves the structure
// unchanged.
func (c *core) CreatePointers(specs []PointerSpec) error {
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if err := c.checkPointerArgs(s.Label, s.Slot); err != nil {
			return err
		}
		if seen[s.Label] {
			return &ConfigError{Field: "label", Reason: fmt.Sprintf("%q given twice", s.Label)}
		}
		seen[s.Label] = true
		if s.Index < 0 || s.Index >= len(c.data) {
			return &IndexError{Op: "pointer", Index: s.Index, Len: len(c.data)}
		}
	}
	for _, s := range specs {
		c.attachPointer(&Pointer{
			label: s.Label,
			slot:  s.Slot,
			color: defaultPointerColor(s.Color, &c.theme),
			index: s.Index,
		})
	}
	return nil
}

// RemovePointer detaches the pointer with the given label.
func (c *core) RemovePointer(label string) error {
	for i, p := range c.pointers {
		if p.label != label {
			continue
		}
		p.text.Dispose()
		copy(c.pointers[i:], c.pointers[i+1:])
		c.pointers[len(c.pointers)-1] = nil
		c.pointers = c.pointers[:len(c.pointers)-1]

		c.resetPointerSlot(p.slot)
		c.applyMarkerColors(p.slot)
		c.layoutPointers()
		return nil
	}
	return &NotFoundError{Target: label}
}

// FindPointer returns the pointer with the given label, if attached.
func (c *core) FindPointer(label string) (*Pointer, bool) {
	for _, p := range c.pointers {
		if p.label == label {
			return p, true
		}
	}
	return nil, false
}

// Pointers returns the attached pointers. The slice is a copy.
func (c *core) Pointers() []*Pointer {
	out := make([]*Pointer, len(c.pointers))
	copy(out, c.pointers)
	return out
}

// HighlightPointers highlights the slot markers of up to three elements,
// with the same color defaulting and collision rules as HighlightContainers.
// Labeled pointers in the slot keep their markers unless an index collides,
// in which case the highlight wins.
func (c *core) HighlightPointers(indices []int, slot Slot, colors ...Color) error {
	if err := checkPointerSlot(slot); err != nil {
		return err
	}
	want, err := c.resolveHighlights("highlight pointers", indices, colors)
	if err != nil {
		return err
	}
	c.resetPointerSlot(slot)
	for i, col := range want {
		c.hl.Set(i, slot, col)
	}
	c.applyMarkerColors(slot)
	return nil
}

// PointersOnValue highlights the slot markers of every element matching
// value. Returns a NotFoundError, without changing anything, when no element
// matches.
func (c *core) PointersOnValue(value any, slot Slot, colors ...Color) error {
	if err := checkPointerSlot(slot); err != nil {
		return err
	}
	matches, err := c.matchValue(value)
	if err != nil {
		return err
	}
	col := c.theme.ValueMatch
	if len(colors) > 0 {
		col = colors[0]
	}
	c.resetPointerSlot(slot)
	for _, i := range matches {
		c.hl.Set(i, slot, col)
	}
	c.applyMarkerColors(slot)
	return nil
}

// ClearPointersHighlights clears transient marker highlights in the given
// slots (both pointer slots when none are given). Labeled pointers keep their
// markers.
func (c *core) ClearPointersHighlights(slots ...Slot) {
	if len(slots) == 0 {
		slots = []Slot{SlotPointerTop, SlotPointerBottom}
	}
	for _, slot := range slots {
		if checkPointerSlot(slot) != nil {
			continue
		}
		c.resetPointerSlot(slot)
		c.applyMarkerColors(slot)
	}
}

// --- Internals ---

func checkPointerSlot(slot Slot) error {
	if slot != SlotPointerTop && slot != SlotPointerBottom {
		return &ConfigError{Field: "slot", Reason: "must be SlotPointerTop or SlotPointerBottom"}
	}
	return nil
}

func (c *core) checkPointerArgs(label string, slot Slot) error {
	if err := checkPointerSlot(slot); err != nil {
		return err
	}
	if label == "" {
		return &ConfigError{Field: "label", Reason: "must not be empty"}
	}
	if _, ok := c.FindPointer(label); ok {
		return &ConfigError{Field: "label", Reason: fmt.Sprintf("%q already in use", label)}
	}
	return nil
}

func defaultPointerColor(color Color, th *Theme) Color {
	if color.A == 0 {
		return th.Color1
	}
	return color
}

func (c *core) attachPointer(p *Pointer) {
	p.resolved = true
	p.text = NewLabel(c.name+".ptr."+p.label, p.label, c.font, c.theme.FontSize*pointerFontScale)
	p.text.Fill = p.color
	c.root.AddChild(p.text)
	c.fadeIn(p.text)

	c.pointers = append(c.pointers, p)
	c.hl.Set(p.index, p.slot, p.color)
	c.applyMarkerColors(p.slot)
	c.layoutPointers()
}

// findText returns the index of the first element rendering to text, or -1.
func (c *core) findText(text string) int {
	for i, a := range c.data {
		if a.text == text {
			return i
		}
	}
	return -1
}

// resetPointerSlot clears a slot and re-asserts the marker entries of the
// labeled pointers attached there.
func (c *core) resetPointerSlot(slot Slot) {
	c.hl.ClearSlot(slot)
	for _, p := range c.pointers {
		if p.slot == slot && p.resolved {
			c.hl.Set(p.index, slot, p.color)
		}
	}
}

// reanchorPointers re-resolves every pointer after a value change. Value
// pointers move to the first element that matches again, or hide (and report
// a NotFoundError) when their value disappeared. Index pointers whose index
// fell off the end are detached.
func (c *core) reanchorPointers() error {
	var firstErr error
	keep := c.pointers[:0]

	for _, p := range c.pointers {
		if !p.byValue {
			if p.index >= len(c.data) {
				p.text.Dispose()
				continue
			}
			c.hl.Set(p.index, p.slot, p.color)
			keep = append(keep, p)
			continue
		}

		oldIdx, wasResolved := p.index, p.resolved
		idx := c.findText(p.valueText)
		if idx < 0 {
			p.resolved = false
			p.text.Visible = false
			if wasResolved {
				if col, ok := c.hl.Get(oldIdx, p.slot); ok && col == p.color {
					c.hl.Clear(oldIdx, p.slot)
				}
				if firstErr == nil {
					firstErr = &NotFoundError{Target: p.value}
				}
			}
			keep = append(keep, p)
			continue
		}

		if wasResolved && oldIdx != idx {
			if col, ok := c.hl.Get(oldIdx, p.slot); ok && col == p.color {
				c.hl.Clear(oldIdx, p.slot)
			}
		}
		p.index = idx
		p.resolved = true
		p.text.Visible = true
		c.hl.Set(idx, p.slot, p.color)
		keep = append(keep, p)
	}

	for i := len(keep); i < len(c.pointers); i++ {
		c.pointers[i] = nil
	}
	c.pointers = keep

	c.layoutPointers()
	return firstErr
}

// layoutPointers positions every pointer label outside its element's marker.
// Pointers sharing an index and slot stack outward.
func (c *core) layoutPointers() {
	th := &c.theme
	markH := th.MarkerSize * math.Sqrt(3) / 2
	size := th.FontSize * pointerFontScale

	type key struct {
		index int
		slot  Slot
	}
	stack := make(map[key]int)

	for _, p := range c.pointers {
		if !p.resolved {
			continue
		}
		k := key{p.index, p.slot}
		level := stack[k]
		stack[k]++

		edge := EdgeTop
		if p.slot == SlotPointerBottom {
			edge = EdgeBottom
		}
		anchor := c.layout.anchorLocal(p.index, edge)

		w, h := c.font.MeasureString(p.label, size)
		x := anchor.X - w/2
		var y float64
		if p.slot == SlotPointerTop {
			y = anchor.Y - th.MarkerGap - markH - 4 - h - float64(level)*(h+4)
		} else {
			y = anchor.Y + th.MarkerGap + markH + 4 + float64(level)*(h+4)
		}
		c.moveNode(p.text, x, y, false)
	}
}
