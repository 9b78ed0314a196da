package chalk

// Anchored is implemented by every visual structure. Anchors are stable
// geometric reference points other objects can align against; they track the
// logical layout, so mid-animation they already report the settled position.
type Anchored interface {
	// AnchorFor returns the world-space anchor point of the element at
	// index: the center of the requested edge of its shape, or the shape
	// center for EdgeCenter. Out-of-range indices return an IndexError.
	AnchorFor(index int, edge Edge) (Vec2, error)

	// Extent returns the world-space bounding rectangle of the whole
	// structure, placeholder included.
	Extent() Rect

	// Len returns the number of logical elements.
	Len() int
}

// AlignTo positions n so that its origin sits at the given edge point of
// target's extent, plus offset. This is how captions and secondary structures
// stay attached to a structure that moves or changes shape.
func AlignTo(n *Node, target Anchored, edge Edge, offset Vec2) {
	ext := target.Extent()
	var p Vec2
	switch edge {
	case EdgeTop:
		p = Vec2{ext.X + ext.Width/2, ext.Y}
	case EdgeBottom:
		p = Vec2{ext.X + ext.Width/2, ext.Y + ext.Height}
	case EdgeLeft:
		p = Vec2{ext.X, ext.Y + ext.Height/2}
	case EdgeRight:
		p = Vec2{ext.X + ext.Width, ext.Y + ext.Height/2}
	default:
		p = Vec2{ext.X + ext.Width/2, ext.Y + ext.Height/2}
	}
	n.SetPosition(p.X+offset.X, p.Y+offset.Y)
}
