package ember

// SizeConstraint specifies how a dimension (width or height) is calculated.
type SizeConstraint int

const (
	// SizeContent sizes to fit the widget's intrinsic content (default).
	SizeContent SizeConstraint = iota

	// SizeFixed uses an explicit pixel value.
	SizeFixed

	// SizeFill fills the parent's available space.
	SizeFill

	// SizePercent uses a percentage of the parent's available space.
	SizePercent
)

// SizeSpec is a declarative sizing rule for one axis. The zero value is
// Content sizing.
type SizeSpec struct {
	Constraint SizeConstraint
	Value      float32 // used by Fixed and Percent
}

// Fixed sizes the axis to an explicit pixel value. The value is honored even
// when it exceeds the available space; overflow is the caller's concern.
func Fixed(v float32) SizeSpec {
	return SizeSpec{Constraint: SizeFixed, Value: v}
}

// Fill sizes the axis to exactly the available space.
func Fill() SizeSpec {
	return SizeSpec{Constraint: SizeFill}
}

// Content sizes the axis to the widget's intrinsic content plus padding.
func Content() SizeSpec {
	return SizeSpec{Constraint: SizeContent}
}

// Percent sizes the axis to a percentage (0-100) of the available space.
func Percent(v float32) SizeSpec {
	return SizeSpec{Constraint: SizePercent, Value: v}
}

// Resolve converts the spec plus an available-space scalar into a concrete
// length. content is the intrinsic content length along the axis and
// paddingAlong the padding sum along it; both are consulted only for Content
// specs. The result is deliberately unclamped: a negative available length
// resolves to a negative length and the layout pass carries it through,
// degrading visually rather than aborting the frame.
func (s SizeSpec) Resolve(available, content, paddingAlong float32) float32 {
	switch s.Constraint {
	case SizeFixed:
		return s.Value
	case SizeFill:
		return available
	case SizePercent:
		return available * (s.Value / 100)
	default:
		return content + paddingAlong
	}
}
