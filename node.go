package chalk

// NodeType distinguishes rendering behavior for a Node.
type NodeType uint8

const (
	NodeContainer NodeType = iota // group node with no visual output
	NodeBox                       // bordered rectangle (X, Y = top-left)
	NodeDisc                      // filled circle with stroke (X, Y = center)
	NodeConnector                 // directed edge from (X, Y) to (EndX, EndY)
	NodeMarker                    // small pointer triangle (X, Y = tip)
	NodeLabel                     // text run (X, Y = top-left of the text box)
)

// nodeIDCounter is a plain counter (no atomic — chalk is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene element. A single flat struct is used for all
// primitive kinds to avoid interface dispatch on the hot path; the Type field
// selects which geometry fields are meaningful.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Position, local to the parent. Children inherit the parent's offset
	// and alpha only; structures never rotate or scale their primitives.
	X, Y float64

	// Visibility
	Alpha   float64
	Visible bool
	ZIndex  int

	// Box geometry
	Width, Height float64

	// Disc / Marker geometry
	Radius float64

	// Connector geometry: local end point and arrowhead edge length.
	EndX, EndY float64
	ArrowSize  float64

	// Marker orientation: true when the triangle points downward (markers
	// above a structure point at it from above).
	PointsDown bool

	// Paint
	Fill        Color
	Stroke      Color
	StrokeWidth float64

	// Label content
	Text     string
	Font     Font
	FontSize float64

	// Internal
	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Visible = true
	n.Fill = ColorWhite
	n.Stroke = ColorWhite
	n.StrokeWidth = 1
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeContainer}
	nodeDefaults(n)
	return n
}

// NewBox creates a bordered rectangle node.
func NewBox(name string, w, h float64) *Node {
	n := &Node{Name: name, Type: NodeBox, Width: w, Height: h}
	nodeDefaults(n)
	return n
}

// NewDisc creates a circle node positioned by its center.
func NewDisc(name string, radius float64) *Node {
	n := &Node{Name: name, Type: NodeDisc, Radius: radius}
	nodeDefaults(n)
	return n
}

// NewConnector creates a directed edge node from (X, Y) to (EndX, EndY) with
// a filled arrowhead at the end point.
func NewConnector(name string, arrowSize float64) *Node {
	n := &Node{Name: name, Type: NodeConnector, ArrowSize: arrowSize}
	nodeDefaults(n)
	return n
}

// NewMarker creates a pointer triangle node. size is the edge length.
func NewMarker(name string, size float64, pointsDown bool) *Node {
	n := &Node{Name: name, Type: NodeMarker, Radius: size, PointsDown: pointsDown}
	nodeDefaults(n)
	return n
}

// NewLabel creates a text node.
func NewLabel(name, text string, font Font, size float64) *Node {
	n := &Node{Name: name, Type: NodeLabel, Text: text, Font: font, FontSize: size}
	nodeDefaults(n)
	return n
}

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("chalk: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("chalk: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("chalk: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Font = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// worldPosition accumulates parent offsets up to the root.
func (n *Node) worldPosition() (float64, float64) {
	x, y := n.X, n.Y
	for p := n.Parent; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return x, y
}
