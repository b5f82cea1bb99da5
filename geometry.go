// Package ember is a retained-mode widget toolkit: a tree of widgets with
// constraint-based layout, style application, animation easing, and a
// renderer-agnostic paint pass.
//
// The host application owns the platform loop. It calls Measure and Layout on
// the root once per structural change or resize, Render once per frame, and
// forwards input through the root's Handle* entry points. All tree access is
// single-threaded: one goroutine owns the tree and every operation completes
// synchronously inside the caller's frame.
package ember

import (
	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a normalized RGBA color. Components are 0-1; alpha 0 is fully
// transparent.
type Color struct {
	R, G, B, A float32
}

// RGB constructs an opaque color from normalized components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA constructs a color from normalized components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromHex unpacks a 0xRRGGBBAA value.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>24)&0xFF) / 255,
		G: float32((hex>>16)&0xFF) / 255,
		B: float32((hex>>8)&0xFF) / 255,
		A: float32(hex&0xFF) / 255,
	}
}

// ParseColor parses a CSS-style hex string ("#rrggbb"). Alpha is 1.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, err
	}
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: 1}, nil
}

// WithAlpha returns the color with a replaced alpha component.
func (c Color) WithAlpha(a float32) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// Lerp interpolates component-wise toward another color.
func (c Color) Lerp(to Color, t float32) Color {
	return Color{
		R: lerp(c.R, to.R, t),
		G: lerp(c.G, to.G, t),
		B: lerp(c.B, to.B, t),
		A: lerp(c.A, to.A, t),
	}
}

// Blend mixes two colors in L*a*b* space, which reads better than naive RGB
// interpolation for gradient endpoints. Alpha is interpolated linearly.
func (c Color) Blend(to Color, t float32) Color {
	a := colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
	b := colorful.Color{R: float64(to.R), G: float64(to.G), B: float64(to.B)}
	m := a.BlendLab(b, float64(t)).Clamped()
	return Color{
		R: float32(m.R),
		G: float32(m.G),
		B: float32(m.B),
		A: lerp(c.A, to.A, t),
	}
}

// Point is a position in window coordinates.
type Point struct {
	X, Y float32
}

// Add returns the component-wise sum.
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns the component-wise difference.
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Size is a width/height pair. Negative components are legal: layout never
// clamps, visual degradation is the renderer's problem.
type Size struct {
	Width, Height float32
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether the point lies inside the rectangle, right/bottom
// edges inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// TopLeft returns the origin corner.
func (r Rect) TopLeft() Point { return Point{r.X, r.Y} }

// Center returns the midpoint.
func (r Rect) Center() Point { return Point{r.X + r.Width/2, r.Y + r.Height/2} }

// Inset shrinks the rectangle by the padding on all four sides.
func (r Rect) Inset(p Padding) Rect {
	return Rect{
		X:      r.X + p.Left,
		Y:      r.Y + p.Top,
		Width:  r.Width - p.Horizontal(),
		Height: r.Height - p.Vertical(),
	}
}

// Padding is per-side spacing, also used for margins.
type Padding struct {
	Top, Right, Bottom, Left float32
}

// PaddingAll applies the same value to every side.
func PaddingAll(v float32) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// PaddingXY applies horizontal and vertical values symmetrically.
func PaddingXY(horizontal, vertical float32) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Horizontal returns left + right.
func (p Padding) Horizontal() float32 { return p.Left + p.Right }

// Vertical returns top + bottom.
func (p Padding) Vertical() float32 { return p.Top + p.Bottom }

// BorderRadius holds the four corner radii, clockwise from top-left.
type BorderRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

// RadiusAll applies the same radius to every corner.
func RadiusAll(r float32) BorderRadius {
	return BorderRadius{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// IsZero reports whether all corners are square.
func (b BorderRadius) IsZero() bool {
	return b.TopLeft == 0 && b.TopRight == 0 && b.BottomRight == 0 && b.BottomLeft == 0
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

func maxf(a, b float32) float32 {
	return math32.Max(a, b)
}
