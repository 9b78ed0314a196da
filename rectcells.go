package chalk

// rectLayout arranges rectangle cells in a horizontal row. It backs both
// Array (variable-width cells, configurable gap) and String (square cells,
// zero gap, flanking quote cells).
type rectLayout struct {
	c *core

	gap       float64
	square    bool
	alignLeft bool
	centered  bool // row centered on the origin instead of left-anchored
	quotes    bool
	emptyLit  string

	leftQuote, rightQuote *visualCell
}

func (l *rectLayout) constraints() CellConstraints {
	return CellConstraints{
		Square:       l.square,
		AlignLeft:    l.alignLeft,
		EmptyLiteral: l.emptyLit,
	}
}

func (l *rectLayout) computeSpecs(texts []string) []CellSpec {
	return ComputeCellSpecs(texts, l.c.font, l.c.theme.FontSize, l.constraints())
}

func (l *rectLayout) cellSpec(text string) CellSpec {
	return ComputeCellSpecs([]string{text}, l.c.font, l.c.theme.FontSize, l.constraints())[0]
}

func (l *rectLayout) defaultFill() Color {
	return l.c.theme.FillColor
}

func (l *rectLayout) newCell(spec CellSpec, text string) *visualCell {
	th := &l.c.theme

	box := NewBox(l.c.name+".cell", spec.Width, spec.Height)
	box.Fill = l.defaultFill()
	box.Stroke = th.ContainerColor
	box.StrokeWidth = 2

	label := NewLabel(l.c.name+".value", text, l.c.font, spec.FontSize)
	label.Fill = th.FontColor

	top := NewMarker(l.c.name+".mark-top", th.MarkerSize, true)
	top.Fill = th.Background
	bot := NewMarker(l.c.name+".mark-bot", th.MarkerSize, false)
	bot.Fill = th.Background

	for _, n := range []*Node{box, label, top, bot} {
		l.c.root.AddChild(n)
	}
	return &visualCell{box: box, label: label, top: top, bot: bot, spec: spec, text: text, fresh: true}
}

// makePlaceholder builds the borderless literal shown while the value is
// empty ("[]" or a bare quote pair).
func (l *rectLayout) makePlaceholder() *visualCell {
	spec := l.computeSpecs(nil)[0]
	lit := l.emptyLit
	if lit == "" {
		lit = "[]"
	}

	box := NewBox(l.c.name+".empty", spec.Width, spec.Height)
	box.Fill = l.c.theme.Background
	box.StrokeWidth = 0

	label := NewLabel(l.c.name+".empty-text", lit, l.c.font, spec.FontSize)
	label.Fill = l.c.theme.FontColor

	l.c.root.AddChild(box)
	l.c.root.AddChild(label)
	return &visualCell{box: box, label: label, spec: spec, text: lit, fresh: true}
}

func (l *rectLayout) destroyCell(cell *visualCell) {
	l.c.discard(cell.nodes()...)
}

func (l *rectLayout) reflow() {
	cells := l.c.cells

	if l.quotes {
		if len(cells) > 0 {
			l.ensureQuotes()
		} else {
			l.dropQuotes()
		}
	}

	if len(cells) == 0 {
		if p := l.c.placeholder; p != nil {
			x := 0.0
			if l.centered {
				x = -p.spec.Width / 2
			}
			l.placeCell(p, x)
		}
		return
	}

	total := 0.0
	for _, cell := range cells {
		total += cell.spec.Width
	}
	total += l.gap * float64(len(cells)-1)
	if l.leftQuote != nil {
		total += 2 * (l.leftQuote.spec.Width + l.gap)
	}

	x := 0.0
	if l.centered {
		x = -total / 2
	}

	if l.leftQuote != nil {
		l.placeCell(l.leftQuote, x)
		x += l.leftQuote.spec.Width + l.gap
	}
	for _, cell := range cells {
		l.placeCell(cell, x)
		x += cell.spec.Width + l.gap
	}
	if l.rightQuote != nil {
		l.placeCell(l.rightQuote, x)
	}
}

// placeCell moves a cell's primitives to row position x. Fresh cells snap
// into place; surviving cells tween when animation is on.
func (l *rectLayout) placeCell(cell *visualCell, x float64) {
	th := &l.c.theme
	instant := cell.fresh
	spec := cell.spec

	l.c.moveNode(cell.box, x, 0, instant)
	l.c.moveNode(cell.label, x+spec.TextDX, spec.TextDY, instant)

	cx := x + spec.Width/2
	l.c.moveNode(cell.top, cx, -th.MarkerGap, instant)
	l.c.moveNode(cell.bot, cx, spec.Height+th.MarkerGap, instant)

	cell.x = x
	cell.y = 0
	cell.fresh = false
}

func (l *rectLayout) ensureQuotes() {
	if l.leftQuote != nil {
		return
	}
	spec := ComputeCellSpecs([]string{`"`}, l.c.font, l.c.theme.FontSize, CellConstraints{Square: true})[0]
	l.leftQuote = l.quoteCell(spec)
	l.rightQuote = l.quoteCell(spec)
	l.c.fadeInCell(l.leftQuote)
	l.c.fadeInCell(l.rightQuote)
}

func (l *rectLayout) quoteCell(spec CellSpec) *visualCell {
	th := &l.c.theme
	box := NewBox(l.c.name+".quote", spec.Width, spec.Height)
	box.Fill = l.defaultFill()
	box.Stroke = th.ContainerColor
	box.StrokeWidth = 2
	label := NewLabel(l.c.name+".quote-text", `"`, l.c.font, spec.FontSize)
	label.Fill = th.FontColor
	l.c.root.AddChild(box)
	l.c.root.AddChild(label)
	return &visualCell{box: box, label: label, spec: spec, text: `"`, fresh: true}
}

func (l *rectLayout) dropQuotes() {
	if l.leftQuote == nil {
		return
	}
	l.c.discard(l.leftQuote.nodes()...)
	l.c.discard(l.rightQuote.nodes()...)
	l.leftQuote = nil
	l.rightQuote = nil
}

func (l *rectLayout) anchorLocal(index int, edge Edge) Vec2 {
	cell := l.c.cells[index]
	w, h := cell.spec.Width, cell.spec.Height
	switch edge {
	case EdgeTop:
		return Vec2{cell.x + w/2, cell.y}
	case EdgeBottom:
		return Vec2{cell.x + w/2, cell.y + h}
	case EdgeLeft:
		return Vec2{cell.x, cell.y + h/2}
	case EdgeRight:
		return Vec2{cell.x + w, cell.y + h/2}
	default:
		return Vec2{cell.x + w/2, cell.y + h/2}
	}
}

func (l *rectLayout) extentLocal() Rect {
	cells := l.c.cells
	if len(cells) == 0 {
		if p := l.c.placeholder; p != nil {
			return Rect{X: p.x, Y: p.y, Width: p.spec.Width, Height: p.spec.Height}
		}
		return Rect{}
	}
	minX := cells[0].x
	maxX := cells[len(cells)-1].x + cells[len(cells)-1].spec.Width
	if l.leftQuote != nil {
		minX = l.leftQuote.x
		maxX = l.rightQuote.x + l.rightQuote.spec.Width
	}
	return Rect{X: minX, Y: 0, Width: maxX - minX, Height: cells[0].spec.Height}
}
