package ember

// TextAlign positions text horizontally inside the content box.
type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextVAlign positions text vertically inside the content box.
type TextVAlign int

const (
	TextVAlignTop TextVAlign = iota
	TextVAlignMiddle
	TextVAlignBottom
)

// TextStyle describes how text content is drawn. Copied by value into
// widgets; mutating a style after assignment has no effect on the widget.
type TextStyle struct {
	FontFamily string
	FontSize   float32
	Color      Color
	Bold       bool
	Italic     bool
	LineHeight float32 // multiplier, 1.4 by default
	Align      TextAlign
	VAlign     TextVAlign
}

// DefaultTextStyle returns the style text widgets start from.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		FontFamily: "sans-serif",
		FontSize:   14,
		Color:      RGB(1, 1, 1),
		LineHeight: 1.4,
		VAlign:     TextVAlignMiddle,
	}
}

// Shadow is an optional drop shadow behind the widget's background.
type Shadow struct {
	Color  Color
	Offset Point
	Blur   float32
}

// Gradient is an optional two-stop linear gradient background. When enabled
// it replaces the flat background fill.
type Gradient struct {
	Start Color
	End   Color
	Angle float32 // degrees
}

// BoxStyle is the visual styling of a widget's box. Value-typed: widgets copy
// it, there is no sharing between widgets.
type BoxStyle struct {
	Background   Color
	BorderColor  Color
	BorderWidth  float32
	BorderRadius BorderRadius
	Padding      Padding
	Margin       Padding

	HasShadow bool
	Shadow    Shadow

	HasGradient bool
	Gradient    Gradient
}

// DefaultBoxStyle returns a fully transparent, zero-spacing box.
func DefaultBoxStyle() BoxStyle {
	return BoxStyle{
		Shadow: Shadow{
			Color:  RGBA(0, 0, 0, 0.3),
			Offset: Point{X: 0, Y: 2},
			Blur:   4,
		},
	}
}
