package chalk

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whitePixel is a shared 1x1 white image used to rasterize filled triangles
// through DrawTriangles. Created lazily so headless tests never touch the GPU.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// drawNode renders n and its children depth-first. ox and oy are the
// accumulated parent offsets; alpha is the accumulated parent alpha.
func drawNode(dst *ebiten.Image, n *Node, ox, oy, alpha float64) {
	if !n.Visible {
		return
	}
	a := alpha * n.Alpha
	x := ox + n.X
	y := oy + n.Y

	switch n.Type {
	case NodeBox:
		fill := n.Fill.WithAlpha(n.Fill.A * a)
		stroke := n.Stroke.WithAlpha(n.Stroke.A * a)
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(n.Width), float32(n.Height), fill.toRGBA(), true)
		if n.StrokeWidth > 0 {
			vector.StrokeRect(dst, float32(x), float32(y), float32(n.Width), float32(n.Height), float32(n.StrokeWidth), stroke.toRGBA(), true)
		}

	case NodeDisc:
		fill := n.Fill.WithAlpha(n.Fill.A * a)
		stroke := n.Stroke.WithAlpha(n.Stroke.A * a)
		vector.DrawFilledCircle(dst, float32(x), float32(y), float32(n.Radius), fill.toRGBA(), true)
		if n.StrokeWidth > 0 {
			vector.StrokeCircle(dst, float32(x), float32(y), float32(n.Radius), float32(n.StrokeWidth), stroke.toRGBA(), true)
		}

	case NodeConnector:
		drawConnector(dst, n, ox, oy, a)

	case NodeMarker:
		drawMarker(dst, n, x, y, a)

	case NodeLabel:
		if ff, ok := n.Font.(*FaceFont); ok && n.Text != "" {
			ff.draw(dst, n.Text, n.FontSize, n.Fill.WithAlpha(n.Fill.A*a), x, y)
		}
	}

	for _, child := range n.children {
		drawNode(dst, child, x, y, a)
	}
}

// drawConnector renders a line with a filled arrowhead at the end point.
// The line stops at the arrowhead base so the tip stays crisp.
func drawConnector(dst *ebiten.Image, n *Node, ox, oy, alpha float64) {
	x0 := ox + n.X
	y0 := oy + n.Y
	x1 := ox + n.EndX
	y1 := oy + n.EndY

	dx := x1 - x0
	dy := y1 - y0
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-6 {
		return
	}
	ux := dx / ln
	uy := dy / ln

	head := n.ArrowSize
	if head > ln {
		head = ln
	}
	bx := x1 - ux*head
	by := y1 - uy*head

	clr := n.Stroke.WithAlpha(n.Stroke.A * alpha)
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(bx), float32(by), float32(n.StrokeWidth), clr.toRGBA(), true)

	// Arrowhead: tip at the end point, base perpendicular to the line.
	px := -uy
	py := ux
	halfW := head * 0.6
	fillTriangle(dst, clr,
		x1, y1,
		bx+px*halfW, by+py*halfW,
		bx-px*halfW, by-py*halfW,
	)
}

// drawMarker renders the pointer triangle with its tip at (x, y).
func drawMarker(dst *ebiten.Image, n *Node, x, y, alpha float64) {
	s := n.Radius
	h := s * math.Sqrt(3) / 2
	clr := n.Fill.WithAlpha(n.Fill.A * alpha)
	if n.PointsDown {
		fillTriangle(dst, clr, x, y, x-s/2, y-h, x+s/2, y-h)
	} else {
		fillTriangle(dst, clr, x, y, x-s/2, y+h, x+s/2, y+h)
	}
}

// fillTriangle rasterizes one solid triangle via DrawTriangles over the shared
// white pixel.
func fillTriangle(dst *ebiten.Image, clr Color, x0, y0, x1, y1, x2, y2 float64) {
	r := float32(clr.R * clr.A)
	g := float32(clr.G * clr.A)
	b := float32(clr.B * clr.A)
	a := float32(clr.A)
	verts := []ebiten.Vertex{
		{DstX: float32(x0), DstY: float32(y0), SrcX: 0.5, SrcY: 0.5, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: float32(x1), DstY: float32(y1), SrcX: 0.5, SrcY: 0.5, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: float32(x2), DstY: float32(y2), SrcX: 0.5, SrcY: 0.5, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	}
	inds := []uint16{0, 1, 2}
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), nil)
}
