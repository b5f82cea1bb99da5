package ember

import "unicode/utf8"

// Direction is the main axis of a Box or the scrollable axis of a ScrollView.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// Alignment positions children along an axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd

	// AlignStretch forces children to the container's full cross-axis extent,
	// overriding their own measured size on that axis.
	AlignStretch
)

// SidebarPosition selects which edge the fixed panel occupies.
type SidebarPosition int

const (
	SidebarLeft SidebarPosition = iota
	SidebarRight
	SidebarTop
	SidebarBottom
)

// unconstrainedExtent stands in for infinite space when measuring along a
// scrollable axis. Large enough that no real content hits it, small enough
// that float32 math stays exact.
const unconstrainedExtent = 1e9

// scrollWheelFactor converts one wheel detent into pixels of offset.
const scrollWheelFactor = 20

// charWidthFactor approximates glyph advance as a fraction of font size.
// Real metrics need a font face, which only the renderer has; the layout
// pass works from this estimate and text rendering absorbs the error.
const charWidthFactor = 0.6

// ============================================================================
// Intrinsic Content Measurement
// ============================================================================

// measureContent computes the widget's intrinsic content size, consulted only
// when an axis uses Content sizing. available has already had this widget's
// margin removed but not its padding.
func (w *Widget) measureContent(available Size) Size {
	if w.measureFunc != nil {
		return w.measureFunc(available)
	}

	inner := Size{
		Width:  available.Width - w.style.Padding.Horizontal(),
		Height: available.Height - w.style.Padding.Vertical(),
	}

	switch w.kind {
	case KindBox:
		return w.measureBoxContent(inner)
	case KindStack:
		return w.measureStackContent(inner)
	case KindGrid:
		return w.measureGridContent(inner)
	case KindScrollView:
		return w.measureScrollContent(inner)
	case KindSidebar:
		return w.measureSidebarContent(inner)
	case KindText, KindLabel, KindButton:
		return w.measureText(w.text)
	case KindTextInput:
		if w.text == "" {
			return w.measureText(w.placeholder)
		}
		return w.measureText(w.text)
	case KindImage:
		// Texture pixel dimensions live behind the renderer, which measure
		// has no access to. Content-sized images get a nominal square; give
		// images explicit specs for anything else.
		return Size{Width: 100, Height: 100}
	case KindIcon:
		return Size{Width: 24, Height: 24}
	case KindCheckbox:
		return Size{Width: 18, Height: 18}
	case KindSlider:
		return Size{Width: inner.Width, Height: 20}
	case KindProgressBar:
		return Size{Width: inner.Width, Height: 8}
	case KindDivider:
		return Size{Width: inner.Width, Height: 1}
	default:
		return Size{}
	}
}

// measureText estimates a single-line extent from rune count and font size.
func (w *Widget) measureText(s string) Size {
	runes := float32(utf8.RuneCountInString(s))
	return Size{
		Width:  runes * w.textStyle.FontSize * charWidthFactor,
		Height: w.textStyle.FontSize * w.textStyle.LineHeight,
	}
}

func (w *Widget) measureBoxContent(inner Size) Size {
	children := w.visibleChildren()
	if len(children) == 0 {
		return Size{}
	}

	// Inter-child gaps come out of the space offered to children, so Fill
	// and Percent children size against the net extent.
	gaps := w.spacing * float32(len(children)-1)
	if w.direction == Vertical {
		inner.Height -= gaps
	} else {
		inner.Width -= gaps
	}

	var total Size
	for _, child := range children {
		sz := child.Measure(inner)
		sz.Width += child.style.Margin.Horizontal()
		sz.Height += child.style.Margin.Vertical()
		if w.direction == Vertical {
			total.Height += sz.Height
			total.Width = maxf(total.Width, sz.Width)
		} else {
			total.Width += sz.Width
			total.Height = maxf(total.Height, sz.Height)
		}
	}
	if w.direction == Vertical {
		total.Height += gaps
	} else {
		total.Width += gaps
	}
	return total
}

func (w *Widget) measureStackContent(inner Size) Size {
	var total Size
	for _, child := range w.visibleChildren() {
		sz := child.Measure(inner)
		total.Width = maxf(total.Width, sz.Width+child.style.Margin.Horizontal())
		total.Height = maxf(total.Height, sz.Height+child.style.Margin.Vertical())
	}
	return total
}

func (w *Widget) measureGridContent(inner Size) Size {
	count := len(w.visibleChildren())
	if count == 0 || w.columns <= 0 {
		return Size{}
	}
	// Without an explicit cell size the available width divides evenly
	// across columns, square cells, same derivation layoutGrid uses.
	cellW := w.cellSize.Width
	if cellW <= 0 {
		cellW = (inner.Width - w.spacing*float32(w.columns-1)) / float32(w.columns)
	}
	cellH := w.cellSize.Height
	if cellH <= 0 {
		cellH = cellW
	}
	rows := (count + w.columns - 1) / w.columns
	return Size{
		Width:  float32(w.columns)*cellW + float32(w.columns-1)*w.spacing,
		Height: float32(rows)*cellH + float32(rows-1)*w.spacing,
	}
}

func (w *Widget) measureScrollContent(inner Size) Size {
	// Along the scroll axis children see unconstrained space; the cross
	// axis stays bounded by the viewport.
	avail := inner
	if w.scrollDir == Vertical {
		inner.Height = unconstrainedExtent
	} else {
		inner.Width = unconstrainedExtent
	}
	var total Size
	for _, child := range w.visibleChildren() {
		sz := child.Measure(inner)
		total.Width = maxf(total.Width, sz.Width+child.style.Margin.Horizontal())
		total.Height = maxf(total.Height, sz.Height+child.style.Margin.Vertical())
	}
	// The viewport spans the available cross extent even when the content
	// shrink-wraps narrower.
	if w.scrollDir == Vertical {
		total.Width = avail.Width
	} else {
		total.Height = avail.Height
	}
	return total
}

func (w *Widget) measureSidebarContent(inner Size) Size {
	// Sidebar fills whatever it is given; content measurement only matters
	// when an axis is Content-sized, in which case the panel extent plus the
	// larger child's measure is the best answer available.
	var total Size
	for _, child := range w.visibleChildren() {
		sz := child.Measure(inner)
		total.Width = maxf(total.Width, sz.Width)
		total.Height = maxf(total.Height, sz.Height)
	}
	switch w.sidebarPos {
	case SidebarLeft, SidebarRight:
		total.Width += w.sidebarSize
	default:
		total.Height += w.sidebarSize
	}
	return total
}

// ============================================================================
// Layout Policies
// ============================================================================

// layoutChildren arranges children inside the content bounds according to the
// widget kind. Leaf kinds ignore children.
func (w *Widget) layoutChildren() {
	switch w.kind {
	case KindBox:
		w.layoutBox()
	case KindStack:
		w.layoutStack()
	case KindGrid:
		w.layoutGrid()
	case KindScrollView:
		w.layoutScrollView()
	case KindSidebar:
		w.layoutSidebar()
	default:
		// Leaf kinds keep their children (if any) stacked at the content
		// origin so misuse degrades instead of vanishing.
		for _, child := range w.visibleChildren() {
			child.Layout(Rect{
				X:      w.contentBounds.X + child.style.Margin.Left,
				Y:      w.contentBounds.Y + child.style.Margin.Top,
				Width:  child.measured.Width,
				Height: child.measured.Height,
			})
		}
	}
}

// layoutBox places children sequentially along the main axis with fixed
// spacing between adjacent visible children, then aligns the run as a block
// along the main axis and each child individually on the cross axis.
func (w *Widget) layoutBox() {
	children := w.visibleChildren()
	if len(children) == 0 {
		return
	}
	cb := w.contentBounds

	avail := Size{
		Width:  cb.Width,
		Height: cb.Height,
	}

	var mainTotal float32
	sizes := make([]Size, len(children))
	for i, child := range children {
		sz := child.Measure(avail)
		sizes[i] = sz
		if w.direction == Vertical {
			mainTotal += sz.Height + child.style.Margin.Vertical()
		} else {
			mainTotal += sz.Width + child.style.Margin.Horizontal()
		}
	}
	mainTotal += w.spacing * float32(len(children)-1)

	var cursor float32
	if w.direction == Vertical {
		cursor = cb.Y + alignOffset(w.mainAlign, cb.Height, mainTotal)
	} else {
		cursor = cb.X + alignOffset(w.mainAlign, cb.Width, mainTotal)
	}

	for i, child := range children {
		sz := sizes[i]
		m := child.style.Margin
		if w.direction == Vertical {
			crossW := sz.Width
			if w.crossAlign == AlignStretch {
				crossW = cb.Width - m.Horizontal()
			}
			x := cb.X + m.Left + alignOffset(w.crossAlign, cb.Width-m.Horizontal(), crossW)
			child.Layout(Rect{X: x, Y: cursor + m.Top, Width: crossW, Height: sz.Height})
			cursor += sz.Height + m.Vertical() + w.spacing
		} else {
			crossH := sz.Height
			if w.crossAlign == AlignStretch {
				crossH = cb.Height - m.Vertical()
			}
			y := cb.Y + m.Top + alignOffset(w.crossAlign, cb.Height-m.Vertical(), crossH)
			child.Layout(Rect{X: cursor + m.Left, Y: y, Width: sz.Width, Height: sz.Height})
			cursor += sz.Width + m.Horizontal() + w.spacing
		}
	}

	if layoutDebug {
		debugLog("box layout: dir=%d children=%d main=%.1f content=%v",
			w.direction, len(children), mainTotal, cb)
	}
}

// alignOffset returns the leading offset that places an extent of length
// `used` inside `total` per the alignment. Stretch aligns like Start; the
// caller handles the resize.
func alignOffset(a Alignment, total, used float32) float32 {
	switch a {
	case AlignCenter:
		return (total - used) / 2
	case AlignEnd:
		return total - used
	default:
		return 0
	}
}

// layoutStack overlays every child on the same content rect, each aligned
// independently on both axes. Later children paint on top.
func (w *Widget) layoutStack() {
	cb := w.contentBounds
	for _, child := range w.visibleChildren() {
		sz := child.Measure(Size{Width: cb.Width, Height: cb.Height})
		m := child.style.Margin

		width := sz.Width
		if w.hAlign == AlignStretch {
			width = cb.Width - m.Horizontal()
		}
		height := sz.Height
		if w.vAlign == AlignStretch {
			height = cb.Height - m.Vertical()
		}

		child.Layout(Rect{
			X:      cb.X + m.Left + alignOffset(w.hAlign, cb.Width-m.Horizontal(), width),
			Y:      cb.Y + m.Top + alignOffset(w.vAlign, cb.Height-m.Vertical(), height),
			Width:  width,
			Height: height,
		})
	}
}

// layoutGrid places children left to right, top to bottom into uniform cells.
// Cell width derives from the content width and column count unless an
// explicit cell size is set; a non-positive column count leaves children
// unplaced rather than dividing by zero.
func (w *Widget) layoutGrid() {
	children := w.visibleChildren()
	if len(children) == 0 || w.columns <= 0 {
		return
	}
	cb := w.contentBounds

	cellW := w.cellSize.Width
	if cellW <= 0 {
		cellW = (cb.Width - w.spacing*float32(w.columns-1)) / float32(w.columns)
	}
	cellH := w.cellSize.Height
	if cellH <= 0 {
		cellH = cellW
	}

	for i, child := range children {
		col := i % w.columns
		row := i / w.columns
		child.Measure(Size{Width: cellW, Height: cellH})
		child.Layout(Rect{
			X:      cb.X + float32(col)*(cellW+w.spacing),
			Y:      cb.Y + float32(row)*(cellH+w.spacing),
			Width:  cellW,
			Height: cellH,
		})
	}
}

// layoutScrollView lays children out in an unbounded strip along the scroll
// axis, shifted by the current offset. The content extent is captured for
// offset clamping; a stale offset from a previous larger content is pulled
// back into range here.
func (w *Widget) layoutScrollView() {
	cb := w.contentBounds

	inner := Size{Width: cb.Width, Height: cb.Height}
	if w.scrollDir == Vertical {
		inner.Height = unconstrainedExtent
	} else {
		inner.Width = unconstrainedExtent
	}

	var extent Size
	for _, child := range w.visibleChildren() {
		sz := child.Measure(inner)
		extent.Width = maxf(extent.Width, sz.Width+child.style.Margin.Horizontal())
		extent.Height = maxf(extent.Height, sz.Height+child.style.Margin.Vertical())
	}
	w.contentSize = extent
	w.clampScrollOffset()

	for _, child := range w.visibleChildren() {
		m := child.style.Margin
		child.Layout(Rect{
			X:      cb.X + m.Left - w.scrollOffset.X,
			Y:      cb.Y + m.Top - w.scrollOffset.Y,
			Width:  child.measured.Width,
			Height: child.measured.Height,
		})
	}
}

// clampScrollOffset keeps the offset within [0, content - viewport] on the
// scroll axis and pins the other axis to zero.
func (w *Widget) clampScrollOffset() {
	maxX := maxf(0, w.contentSize.Width-w.contentBounds.Width)
	maxY := maxf(0, w.contentSize.Height-w.contentBounds.Height)
	if w.scrollDir == Vertical {
		maxX = 0
	} else {
		maxY = 0
	}
	w.scrollOffset.X = clampf(w.scrollOffset.X, 0, maxX)
	w.scrollOffset.Y = clampf(w.scrollOffset.Y, 0, maxY)
}

// handleScrollWheel consumes a scroll gesture when the pointer is over the
// viewport, converting wheel detents to pixels and re-laying the strip.
func (w *Widget) handleScrollWheel(ev ScrollEvent) bool {
	if !w.contentBounds.Contains(ev.Position) {
		return false
	}
	if w.scrollDir == Vertical {
		w.scrollOffset.Y -= ev.DeltaY * scrollWheelFactor
	} else {
		w.scrollOffset.X -= ev.DeltaX * scrollWheelFactor
	}
	w.clampScrollOffset()
	w.layoutScrollView()
	if layoutDebug {
		debugLog("scroll: offset=%v content=%v viewport=%v",
			w.scrollOffset, w.contentSize, w.contentBounds)
	}
	return true
}

// ScrollOffset returns the current scroll position.
func (w *Widget) ScrollOffset() Point { return w.scrollOffset }

// ScrollTo sets the scroll position, clamped to the content extent.
func (w *Widget) ScrollTo(offset Point) *Widget {
	w.scrollOffset = offset
	w.clampScrollOffset()
	return w
}

// ScrollContentSize returns the content extent captured by the last layout.
func (w *Widget) ScrollContentSize() Size { return w.contentSize }

// layoutSidebar splits the content rect into a fixed-extent panel on the
// configured edge and a main area taking the remainder. The first child is
// the panel, the second the main content; extra children are ignored and
// fewer than two children is a no-op.
func (w *Widget) layoutSidebar() {
	children := w.visibleChildren()
	if len(children) < 2 {
		return
	}
	cb := w.contentBounds

	var panel, main Rect
	switch w.sidebarPos {
	case SidebarLeft:
		panel = Rect{X: cb.X, Y: cb.Y, Width: w.sidebarSize, Height: cb.Height}
		main = Rect{X: cb.X + w.sidebarSize, Y: cb.Y, Width: cb.Width - w.sidebarSize, Height: cb.Height}
	case SidebarRight:
		panel = Rect{X: cb.X + cb.Width - w.sidebarSize, Y: cb.Y, Width: w.sidebarSize, Height: cb.Height}
		main = Rect{X: cb.X, Y: cb.Y, Width: cb.Width - w.sidebarSize, Height: cb.Height}
	case SidebarTop:
		panel = Rect{X: cb.X, Y: cb.Y, Width: cb.Width, Height: w.sidebarSize}
		main = Rect{X: cb.X, Y: cb.Y + w.sidebarSize, Width: cb.Width, Height: cb.Height - w.sidebarSize}
	case SidebarBottom:
		panel = Rect{X: cb.X, Y: cb.Y + cb.Height - w.sidebarSize, Width: cb.Width, Height: w.sidebarSize}
		main = Rect{X: cb.X, Y: cb.Y, Width: cb.Width, Height: cb.Height - w.sidebarSize}
	}

	children[0].Measure(Size{Width: panel.Width, Height: panel.Height})
	children[0].Layout(panel)
	children[1].Measure(Size{Width: main.Width, Height: main.Height})
	children[1].Layout(main)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
