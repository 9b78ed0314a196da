package chalk

import "math"

// ListNode is a singly linked list node. The visual LinkedList reads a chain
// of these; it never mutates them.
type ListNode struct {
	Val  any
	Next *ListNode
}

// NewListNode returns a node holding v with no successor.
func NewListNode(v any) *ListNode {
	return &ListNode{Val: v}
}

// CreateLinkedList builds a chain from a slice. Returns nil for an empty
// slice.
func CreateLinkedList(values []any) *ListNode {
	var head, tail *ListNode
	for _, v := range values {
		n := &ListNode{Val: v}
		if head == nil {
			head = n
		} else {
			tail.Next = n
		}
		tail = n
	}
	return head
}

// LinkedListToList flattens a chain into a slice.
func LinkedListToList(head *ListNode) []any {
	var out []any
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Val)
	}
	return out
}

// LinkedListLength returns the number of nodes in a chain.
func LinkedListLength(head *ListNode) int {
	count := 0
	for n := head; n != nil; n = n.Next {
		count++
	}
	return count
}

// LinkedListConfig configures a new LinkedList visual.
type LinkedListConfig struct {
	Theme *Theme
	Font  Font
	Name  string
	Pos   Vec2

	// Radius overrides Theme.NodeRadius when greater than zero.
	Radius float64
	// Direction is the axis along which nodes are laid out. The zero value
	// means rightward; any other vector is normalized.
	Direction Vec2
	// Animated makes highlight and movement changes tween by default.
	Animated bool
}

// LinkedList renders a chain of ListNodes as circles joined by arrows. The
// head circle sits at the structure's position; following nodes extend along
// the configured direction.
type LinkedList struct {
	core
}

// NewLinkedList builds the initial visual for the chain at head and attaches
// it to the scene. A nil head renders nothing until the first non-empty
// UpdateValue.
func NewLinkedList(scene *Scene, head *ListNode, cfg LinkedListConfig) (*LinkedList, error) {
	if scene == nil {
		return nil, &ConfigError{Field: "scene", Reason: "required"}
	}
	if cfg.Font == nil {
		return nil, &ConfigError{Field: "font", Reason: "required"}
	}
	theme := DefaultTheme()
	if cfg.Theme != nil {
		theme = *cfg.Theme
	}
	if err := theme.validate(); err != nil {
		return nil, err
	}
	radius := theme.NodeRadius
	if cfg.Radius != 0 {
		radius = cfg.Radius
	}
	if radius < 1 {
		return nil, &ConfigError{Field: "radius", Reason: "must be at least 1"}
	}
	dir, ok := normalize(cfg.Direction)
	if !ok {
		dir = Vec2{1, 0}
	}
	name := cfg.Name
	if name == "" {
		name = "list"
	}

	l := &LinkedList{}
	l.core.init(scene, theme, cfg.Font, name, cfg.Pos, cfg.Animated)
	l.core.layout = &nodeLayout{c: &l.core, radius: radius, dir: dir}
	if err := l.core.seed(LinkedListToList(head)); err != nil {
		l.core.Dispose()
		return nil, err
	}
	return l, nil
}

// UpdateValue reconciles the visual against the chain at head. Surviving
// nodes keep their circles (and highlights); removed tail nodes disappear and
// appended nodes grow the chain.
func (l *LinkedList) UpdateValue(head *ListNode, animated bool) error {
	return l.core.updateValue(LinkedListToList(head), animated)
}

// Length returns the number of visualized nodes.
func (l *LinkedList) Length() int {
	return l.Len()
}

func normalize(v Vec2) (Vec2, bool) {
	ln := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if ln < 1e-9 {
		return Vec2{}, false
	}
	return Vec2{v.X / ln, v.Y / ln}, true
}

// --- Layout ---

// nodeLayout arranges circular nodes along a direction vector, one outgoing
// arrow per non-tail node. Node centers sit a full radius apart edge to edge.
type nodeLayout struct {
	c      *core
	radius float64
	dir    Vec2
}

func (l *nodeLayout) computeSpecs(texts []string) []CellSpec {
	return ComputeNodeSpecs(texts, l.c.font, l.radius)
}

func (l *nodeLayout) cellSpec(text string) CellSpec {
	return ComputeNodeSpecs([]string{text}, l.c.font, l.radius)[0]
}

func (l *nodeLayout) defaultFill() Color {
	return l.c.theme.FillColor
}

func (l *nodeLayout) newCell(spec CellSpec, text string) *visualCell {
	th := &l.c.theme

	disc := NewDisc(l.c.name+".node", l.radius)
	disc.Fill = l.defaultFill()
	disc.Stroke = th.ContainerColor
	disc.StrokeWidth = math.Max(2, l.radius*0.12)

	label := NewLabel(l.c.name+".value", text, l.c.font, spec.FontSize)
	label.Fill = th.FontColor

	top := NewMarker(l.c.name+".mark-top", th.MarkerSize, true)
	top.Fill = th.Background
	bot := NewMarker(l.c.name+".mark-bot", th.MarkerSize, false)
	bot.Fill = th.Background

	for _, n := range []*Node{disc, label, top, bot} {
		l.c.root.AddChild(n)
	}
	return &visualCell{box: disc, label: label, top: top, bot: bot, spec: spec, text: text, fresh: true}
}

// makePlaceholder returns nil: an empty linked list renders nothing.
func (l *nodeLayout) makePlaceholder() *visualCell {
	return nil
}

func (l *nodeLayout) destroyCell(cell *visualCell) {
	l.c.discard(cell.nodes()...)
}

func (l *nodeLayout) reflow() {
	th := &l.c.theme
	cells := l.c.cells
	r := l.radius
	step := 3 * r // diameter plus one radius of air between nodes

	for i, cell := range cells {
		cx := l.dir.X * step * float64(i)
		cy := l.dir.Y * step * float64(i)
		instant := cell.fresh

		l.c.moveNode(cell.box, cx, cy, instant)
		l.c.moveNode(cell.label, cx+cell.spec.TextDX, cy+cell.spec.TextDY, instant)
		l.c.moveNode(cell.top, cx, cy-r-th.MarkerGap, instant)
		l.c.moveNode(cell.bot, cx, cy+r+th.MarkerGap, instant)

		if i < len(cells)-1 {
			nx := l.dir.X * step * float64(i+1)
			ny := l.dir.Y * step * float64(i+1)
			created := cell.conn == nil
			if created {
				cell.conn = l.newConnector()
				l.c.fadeIn(cell.conn)
			}
			l.c.moveConnector(cell.conn,
				cx+l.dir.X*r, cy+l.dir.Y*r,
				nx-l.dir.X*r, ny-l.dir.Y*r,
				instant || created)
		} else if cell.conn != nil {
			l.c.discard(cell.conn)
			cell.conn = nil
		}

		cell.x = cx
		cell.y = cy
		cell.fresh = false
	}
}

func (l *nodeLayout) newConnector() *Node {
	conn := NewConnector(l.c.name+".arrow", l.radius*0.45)
	conn.Stroke = l.c.theme.ContainerColor
	conn.StrokeWidth = math.Max(2, l.radius*0.1)
	l.c.root.AddChild(conn)
	return conn
}

func (l *nodeLayout) anchorLocal(index int, edge Edge) Vec2 {
	cell := l.c.cells[index]
	r := l.radius
	switch edge {
	case EdgeTop:
		return Vec2{cell.x, cell.y - r}
	case EdgeBottom:
		return Vec2{cell.x, cell.y + r}
	case EdgeLeft:
		return Vec2{cell.x - r, cell.y}
	case EdgeRight:
		return Vec2{cell.x + r, cell.y}
	default:
		return Vec2{cell.x, cell.y}
	}
}

func (l *nodeLayout) extentLocal() Rect {
	cells := l.c.cells
	if len(cells) == 0 {
		return Rect{}
	}
	r := l.radius
	minX, minY := cells[0].x-r, cells[0].y-r
	maxX, maxY := cells[0].x+r, cells[0].y+r
	last := cells[len(cells)-1]
	minX = math.Min(minX, last.x-r)
	minY = math.Min(minY, last.y-r)
	maxX = math.Max(maxX, last.x+r)
	maxY = math.Max(maxY, last.y+r)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
