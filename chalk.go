package chalk

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// Hex parses a "#rrggbb" color string. It panics on a malformed string and is
// meant for palette literals; use ParseColor for untrusted input.
func Hex(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic("chalk: bad hex color literal " + s)
	}
	return c
}

// ParseColor parses a "#rrggbb" color string into a fully opaque Color.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// BlendLab interpolates between c and other in CIE-Lab space, which avoids the
// muddy midpoints RGB interpolation produces. t=0 returns c, t=1 returns other.
// Alpha is interpolated linearly.
func (c Color) BlendLab(other Color, t float64) Color {
	a := colorful.Color{R: c.R, G: c.G, B: c.B}
	b := colorful.Color{R: other.R, G: other.G, B: other.B}
	m := a.BlendLab(b, t).Clamped()
	return Color{
		R: m.R,
		G: m.G,
		B: m.B,
		A: c.A + (other.A-c.A)*t,
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toRGBA converts to a standard library color, scaling alpha into the
// premultiplied form ebiten expects.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ColorWhite is the default text color.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Edge selects a point on a cell, node, or structure extent.
type Edge uint8

const (
	EdgeCenter Edge = iota
	EdgeTop
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Slot identifies one of the independently tracked highlight classes.
type Slot uint8

const (
	SlotContainer   Slot = iota // cell / node fill
	SlotPointerTop              // markers above the structure
	SlotPointerBottom           // markers below the structure
)

// numSlots is the size of per-slot storage arrays.
const numSlots = 3
