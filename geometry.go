package chalk

import "strings"

// CellSpec is the computed geometry for one cell or node. Specs are derived,
// never mutated in place: the same values, font, and constraints always
// produce the same specs, which is what makes reconciliation diffable.
//
// For rectangle cells TextDX/TextDY offset from the cell's top-left corner to
// the top-left of the text's cap box. For circular nodes they offset from the
// node center.
type CellSpec struct {
	Width, Height  float64
	FontSize       float64
	TextDX, TextDY float64
	TextW, TextH   float64
}

// CellConstraints tunes ComputeCellSpecs for a concrete layout.
type CellConstraints struct {
	// Square forces Width == Height regardless of content (string cells).
	Square bool
	// AlignLeft pins text to the left padding instead of centering it.
	AlignLeft bool
	// EmptyLiteral is the text shown by the placeholder cell when the
	// logical value is empty ("[]" for arrays, `""` for strings).
	EmptyLiteral string
}

// cellMetrics are the shared per-font-size layout quantities. All of them
// derive from the cap height of "0" so that rows of cells with mixed content
// keep one optical baseline.
type cellMetrics struct {
	pad        float64 // symmetric inner padding
	cellH      float64 // shared cell height
	topBuff    float64 // inset for top-hugging glyphs (quotes, accents)
	bottomBuff float64 // inset for baseline-sitting glyphs
	deepBuff   float64 // inset for descender glyphs
}

func metricsFor(font Font, size float64) cellMetrics {
	_, h := font.MeasureString("0", size)
	pad := h / 2.375
	return cellMetrics{
		pad:        pad,
		cellH:      2*pad + h,
		topBuff:    h / 3.958,
		bottomBuff: h/35.625 + pad,
		deepBuff:   h / 7.125,
	}
}

// ComputeCellSpecs computes per-cell geometry for a row of rectangle cells.
// It is a pure function: no state is read or written besides the arguments.
// An empty values slice yields a single placeholder spec for the constraint's
// EmptyLiteral, so an empty container still has a visible, correctly sized
// shape.
func ComputeCellSpecs(values []string, font Font, fontSize float64, c CellConstraints) []CellSpec {
	m := metricsFor(font, fontSize)
	if len(values) == 0 {
		lit := c.EmptyLiteral
		if lit == "" {
			lit = "[]"
		}
		return []CellSpec{cellSpecFor(lit, font, fontSize, m, c)}
	}
	specs := make([]CellSpec, len(values))
	for i, v := range values {
		specs[i] = cellSpecFor(v, font, fontSize, m, c)
	}
	return specs
}

func cellSpecFor(text string, font Font, size float64, m cellMetrics, c CellConstraints) CellSpec {
	w, h := font.MeasureString(text, size)
	width := requiredWidth(w, m, c)

	dx := (width - w) / 2
	if c.AlignLeft {
		dx = m.pad * 1.25
	}

	var dy float64
	switch alignFor(text) {
	case alignTop:
		dy = m.topBuff
	case alignCenter:
		dy = (m.cellH - h) / 2
	case alignDeepBottom:
		dy = m.cellH - h - m.deepBuff
	default:
		dy = m.cellH - h - m.bottomBuff
	}

	return CellSpec{
		Width:    width,
		Height:   m.cellH,
		FontSize: size,
		TextDX:   dx,
		TextDY:   dy,
		TextW:    w,
		TextH:    h,
	}
}

// requiredWidth returns the cell width needed for a text of advance w: padded
// content width, but never narrower than the cell is tall.
func requiredWidth(w float64, m cellMetrics, c CellConstraints) float64 {
	if c.Square {
		return m.cellH
	}
	width := m.pad*2.5 + w
	if width < m.cellH {
		return m.cellH
	}
	return width
}

// --- Vertical alignment classes ---

// Different glyph classes have different ink boxes relative to the cap box;
// shifting them per class keeps mixed rows optically centered.
type alignClass uint8

const (
	alignBottom alignClass = iota
	alignTop
	alignCenter
	alignDeepBottom
)

const (
	topGlyphs      = "\"'^`"
	deepGlyphs     = "ypgj"
	centerAnyGlyph = "\\/|()[]{}&$"
	centerAllGlyph = "<>-=+~:#%*@.,0123456789"
)

func alignFor(s string) alignClass {
	if s == "" {
		return alignCenter
	}
	if strings.ContainsAny(s, centerAnyGlyph) || allIn(s, centerAllGlyph) {
		return alignCenter
	}
	if allIn(s, topGlyphs) {
		return alignTop
	}
	if allIn(s, deepGlyphs) {
		return alignDeepBottom
	}
	return alignBottom
}

// allIn reports whether every rune of s appears in set.
func allIn(s, set string) bool {
	for _, r := range s {
		if !strings.ContainsRune(set, r) {
			return false
		}
	}
	return true
}

// --- Circular node geometry ---

// ComputeNodeSpecs computes label geometry for circular nodes of the given
// radius. Like ComputeCellSpecs it is pure. The base font size is the largest
// whose cap height fits half the node diameter; individual labels too wide for
// the node shrink further.
func ComputeNodeSpecs(values []string, font Font, radius float64) []CellSpec {
	pad := radius / 2
	base := fitFontSize(font, radius)
	maxW := (radius - pad) * 2.5

	specs := make([]CellSpec, len(values))
	for i, v := range values {
		specs[i] = nodeSpecFor(v, font, base, radius, pad, maxW)
	}
	return specs
}

func nodeSpecFor(text string, font Font, base, radius, pad, maxW float64) CellSpec {
	size := base
	w, h := font.MeasureString(text, size)
	for w > maxW && size > 4 {
		size--
		w, h = font.MeasureString(text, size)
	}

	dx := -w / 2
	var dy float64
	switch alignFor(text) {
	case alignTop:
		dy = -radius + pad
	case alignDeepBottom:
		dy = -h/2 + radius/16
	case alignBottom:
		dy = radius - pad - h
	default:
		dy = -h / 2
	}

	return CellSpec{
		Width:    radius * 2,
		Height:   radius * 2,
		FontSize: size,
		TextDX:   dx,
		TextDY:   dy,
		TextW:    w,
		TextH:    h,
	}
}

// fitFontSize grows the font size until the cap height of "0" reaches target.
func fitFontSize(font Font, target float64) float64 {
	size := 10.0
	for size < 200 {
		_, h := font.MeasureString("0", size)
		if h >= target {
			break
		}
		size++
	}
	return size
}
