package ember

// WidgetKind identifies the type of widget. The toolkit is a closed set of
// kinds dispatched by tag rather than an open hierarchy; custom behavior
// hangs off the hook fields of Widget instead.
type WidgetKind string

const (
	// Container widgets
	KindBox        WidgetKind = "Box"
	KindStack      WidgetKind = "Stack"
	KindGrid       WidgetKind = "Grid"
	KindScrollView WidgetKind = "ScrollView"
	KindSidebar    WidgetKind = "Sidebar"

	// Leaf widgets
	KindText    WidgetKind = "Text"
	KindLabel   WidgetKind = "Label"
	KindImage   WidgetKind = "Image"
	KindIcon    WidgetKind = "Icon"
	KindSpacer  WidgetKind = "Spacer"
	KindDivider WidgetKind = "Divider"

	// Interactive controls
	KindButton      WidgetKind = "Button"
	KindTextInput   WidgetKind = "TextInput"
	KindCheckbox    WidgetKind = "Checkbox"
	KindSlider      WidgetKind = "Slider"
	KindProgressBar WidgetKind = "ProgressBar"

	// App-defined content via OnMeasure/OnRender hooks
	KindCustom WidgetKind = "Custom"
)

// Widget is a node in the UI tree. Container kinds own an ordered child list:
// order is z-order for rendering (later children paint on top) and, reversed,
// the hit-test order for pointer events (top-most first).
//
// A widget's final bounds are always assigned by its parent's layout policy;
// a widget never positions itself. Configuration is chained: every setter
// returns the widget.
type Widget struct {
	kind WidgetKind

	widthSpec  SizeSpec
	heightSpec SizeSpec
	style      BoxStyle

	visible bool
	enabled bool
	hovered bool
	focused bool
	pressed bool

	measured      Size
	bounds        Rect
	contentBounds Rect

	onClick func()
	onHover func(bool)
	onFocus func(bool)

	children []*Widget
	focus    *FocusManager // propagated from the hosting App, may be nil

	// Box
	direction  Direction
	spacing    float32
	mainAlign  Alignment
	crossAlign Alignment

	// Stack
	hAlign Alignment
	vAlign Alignment

	// Grid
	columns  int
	cellSize Size

	// ScrollView
	scrollDir    Direction
	scrollOffset Point
	contentSize  Size // extent of the scrolled content, captured during layout

	// Sidebar
	sidebarPos  SidebarPosition
	sidebarSize float32

	// Text content
	text        string
	textStyle   TextStyle
	placeholder string
	cursor      int
	onChange    func(string)
	onSubmit    func(string)

	// Image / icon
	imagePath      string
	preserveAspect bool
	opacity        float32
	iconColor      Color

	// Button
	hoverBg  Color
	activeBg Color

	// Checkbox
	checked    bool
	checkColor Color
	onToggle   func(bool)

	// Slider
	sliderMin     float32
	sliderMax     float32
	sliderValue   float32
	dragging      bool
	thumbColor    Color
	fillColor     Color
	onValueChange func(float32)

	// ProgressBar
	progress     float32
	showProgress bool

	// Custom hooks
	measureFunc func(available Size) Size
	renderFunc  func(r Renderer, contentBounds Rect)
}

// NewWidget creates a widget of the given kind with default state. The typed
// constructors (NewBox, NewText, ...) also apply theme defaults and are the
// usual entry point.
func NewWidget(kind WidgetKind) *Widget {
	return &Widget{
		kind:           kind,
		style:          DefaultBoxStyle(),
		textStyle:      DefaultTextStyle(),
		visible:        true,
		enabled:        true,
		opacity:        1,
		preserveAspect: true,
		columns:        1,
		sliderMax:      1,
		scrollDir:      Vertical,
	}
}

// Kind returns the widget type tag.
func (w *Widget) Kind() WidgetKind { return w.kind }

// ============================================================================
// Tree Structure
// ============================================================================

// AddChild appends children in order. Ownership is exclusive: a widget must
// not live under two parents.
func (w *Widget) AddChild(children ...*Widget) *Widget {
	for _, child := range children {
		child.attach(w.focus)
		w.children = append(w.children, child)
	}
	return w
}

// InsertChild inserts a child at the given index, clamped to the list.
func (w *Widget) InsertChild(index int, child *Widget) *Widget {
	if index < 0 {
		index = 0
	}
	if index > len(w.children) {
		index = len(w.children)
	}
	child.attach(w.focus)
	w.children = append(w.children, nil)
	copy(w.children[index+1:], w.children[index:])
	w.children[index] = child
	return w
}

// RemoveChild removes a child by identity. Removing a widget that is not a
// child is a no-op.
func (w *Widget) RemoveChild(child *Widget) *Widget {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			break
		}
	}
	return w
}

// ClearChildren removes all children.
func (w *Widget) ClearChildren() *Widget {
	w.children = nil
	return w
}

// Children returns the ordered child list. The slice is the widget's own;
// callers must not mutate it.
func (w *Widget) Children() []*Widget { return w.children }

// attach propagates the focus manager reference down a subtree when it is
// inserted under an already-hosted parent.
func (w *Widget) attach(fm *FocusManager) {
	w.focus = fm
	for _, child := range w.children {
		child.attach(fm)
	}
}

// ============================================================================
// Configuration (chained)
// ============================================================================

// SetWidth sets the width specification.
func (w *Widget) SetWidth(spec SizeSpec) *Widget {
	w.widthSpec = spec
	return w
}

// SetHeight sets the height specification.
func (w *Widget) SetHeight(spec SizeSpec) *Widget {
	w.heightSpec = spec
	return w
}

// SetSize sets both axis specifications.
func (w *Widget) SetSize(width, height SizeSpec) *Widget {
	w.widthSpec = width
	w.heightSpec = height
	return w
}

// SetPadding sets uniform padding on all sides.
func (w *Widget) SetPadding(all float32) *Widget {
	w.style.Padding = PaddingAll(all)
	return w
}

// SetPaddingSides sets per-side padding.
func (w *Widget) SetPaddingSides(p Padding) *Widget {
	w.style.Padding = p
	return w
}

// SetMargin sets uniform margin on all sides.
func (w *Widget) SetMargin(all float32) *Widget {
	w.style.Margin = PaddingAll(all)
	return w
}

// SetMarginSides sets per-side margin.
func (w *Widget) SetMarginSides(m Padding) *Widget {
	w.style.Margin = m
	return w
}

// SetBackground sets the flat fill color.
func (w *Widget) SetBackground(c Color) *Widget {
	w.style.Background = c
	return w
}

// SetBorder sets border color and width.
func (w *Widget) SetBorder(c Color, width float32) *Widget {
	w.style.BorderColor = c
	w.style.BorderWidth = width
	return w
}

// SetCornerRadius sets a uniform corner radius.
func (w *Widget) SetCornerRadius(r float32) *Widget {
	w.style.BorderRadius = RadiusAll(r)
	return w
}

// SetCornerRadii sets per-corner radii.
func (w *Widget) SetCornerRadii(r BorderRadius) *Widget {
	w.style.BorderRadius = r
	return w
}

// SetShadow enables a drop shadow.
func (w *Widget) SetShadow(c Color, offset Point, blur float32) *Widget {
	w.style.HasShadow = true
	w.style.Shadow = Shadow{Color: c, Offset: offset, Blur: blur}
	return w
}

// SetGradient enables a two-stop linear gradient background, replacing the
// flat fill.
func (w *Widget) SetGradient(start, end Color, angle float32) *Widget {
	w.style.HasGradient = true
	w.style.Gradient = Gradient{Start: start, End: end, Angle: angle}
	return w
}

// SetStyle replaces the whole box style.
func (w *Widget) SetStyle(s BoxStyle) *Widget {
	w.style = s
	return w
}

// SetVisible controls participation in measurement, layout, rendering, and
// event dispatch. An invisible widget contributes no space to its parent.
func (w *Widget) SetVisible(v bool) *Widget {
	w.visible = v
	return w
}

// SetEnabled controls whether the widget and its subtree receive
// pointer-button events. Hover tracking is unaffected.
func (w *Widget) SetEnabled(e bool) *Widget {
	w.enabled = e
	return w
}

// OnClick sets the click callback, fired on a left press inside bounds.
func (w *Widget) OnClick(fn func()) *Widget {
	w.onClick = fn
	return w
}

// OnHover sets the hover callback, fired on hover transition edges only.
func (w *Widget) OnHover(fn func(bool)) *Widget {
	w.onHover = fn
	return w
}

// OnFocus sets the focus callback, fired on focus transition edges only.
func (w *Widget) OnFocus(fn func(bool)) *Widget {
	w.onFocus = fn
	return w
}

// OnMeasure overrides intrinsic content measurement.
func (w *Widget) OnMeasure(fn func(available Size) Size) *Widget {
	w.measureFunc = fn
	return w
}

// OnRender sets a custom content painter, called after the base box paint
// with the widget's content bounds.
func (w *Widget) OnRender(fn func(r Renderer, contentBounds Rect)) *Widget {
	w.renderFunc = fn
	return w
}

// ============================================================================
// State Accessors
// ============================================================================

// Bounds returns the rectangle assigned by the parent's layout policy.
func (w *Widget) Bounds() Rect { return w.bounds }

// ContentBounds returns bounds inset by padding. Width and height may be
// negative when padding exceeds the assigned rect; layout does not guard.
func (w *Widget) ContentBounds() Rect { return w.contentBounds }

// MeasuredSize returns the size stored by the last measure pass.
func (w *Widget) MeasuredSize() Size { return w.measured }

// Style returns the widget's box style.
func (w *Widget) Style() BoxStyle { return w.style }

func (w *Widget) IsVisible() bool { return w.visible }
func (w *Widget) IsEnabled() bool { return w.enabled }
func (w *Widget) IsHovered() bool { return w.hovered }
func (w *Widget) IsFocused() bool { return w.focused }

// SetFocus sets keyboard focus on this widget, firing the focus callback on
// edges. It does not clear focus elsewhere; exclusivity is the
// FocusManager's job, or the caller's when driving the tree directly.
func (w *Widget) SetFocus(focus bool) {
	if w.focused == focus {
		return
	}
	w.focused = focus
	if w.onFocus != nil {
		w.onFocus(focus)
	}
}

// requestFocus routes through the focus manager when one is attached so that
// focus stays exclusive across the tree.
func (w *Widget) requestFocus() {
	if w.focus != nil {
		w.focus.Request(w)
	} else {
		w.SetFocus(true)
	}
}

// ============================================================================
// Measure / Layout
// ============================================================================

// Measure resolves the widget's size against the available space and stores
// it. Invisible widgets measure to zero and are skipped by their parents for
// the rest of the pass. Available space may go negative after the margin
// subtraction; resolution carries negatives through unguarded.
func (w *Widget) Measure(available Size) Size {
	if !w.visible {
		w.measured = Size{}
		return w.measured
	}

	available.Width -= w.style.Margin.Horizontal()
	available.Height -= w.style.Margin.Vertical()

	var content Size
	if w.widthSpec.Constraint == SizeContent || w.heightSpec.Constraint == SizeContent {
		content = w.measureContent(available)
	}

	w.measured = Size{
		Width:  w.widthSpec.Resolve(available.Width, content.Width, w.style.Padding.Horizontal()),
		Height: w.heightSpec.Resolve(available.Height, content.Height, w.style.Padding.Vertical()),
	}
	return w.measured
}

// Layout assigns the final rectangle, derives content bounds, and arranges
// children through the kind's layout policy. Layout is idempotent for the
// same rect; only ScrollView carries state (its offset) across calls.
func (w *Widget) Layout(rect Rect) {
	w.bounds = rect
	w.contentBounds = rect.Inset(w.style.Padding)
	w.layoutChildren()
}

// visibleChildren returns the children that participate in layout.
func (w *Widget) visibleChildren() []*Widget {
	n := 0
	for _, c := range w.children {
		if c.visible {
			n++
		}
	}
	if n == len(w.children) {
		return w.children
	}
	out := make([]*Widget, 0, n)
	for _, c := range w.children {
		if c.visible {
			out = append(out, c)
		}
	}
	return out
}

// ============================================================================
// Event Dispatch
// ============================================================================

// HandleMouseMove updates hover state from a point-in-bounds test and fires
// the hover callback on transition edges. Motion is forwarded to every child
// unconditionally: hover is not exclusive between overlapping siblings, and
// children need leave edges even after the pointer exits the parent.
func (w *Widget) HandleMouseMove(ev MouseEvent) bool {
	if !w.visible {
		return false
	}

	wasHovered := w.hovered
	w.hovered = w.bounds.Contains(ev.Position)
	if w.hovered != wasHovered && w.onHover != nil {
		w.onHover(w.hovered)
	}

	handled := w.hovered

	if w.kind == KindSlider && w.dragging {
		w.setSliderFromX(ev.Position.X)
		handled = true
	}

	for _, child := range w.children {
		if child.HandleMouseMove(ev) {
			handled = true
		}
	}
	return handled
}

// HandleMouseButton dispatches a pointer-button event. Children are tried
// top-most first (reverse child order, mirroring render z-order) and the
// first one that handles the press short-circuits the rest; the widget's own
// hit test runs only when no child consumed the event. Disabled widgets
// block button events for their whole subtree.
func (w *Widget) HandleMouseButton(ev MouseEvent) bool {
	if !w.visible || !w.enabled {
		return false
	}

	for i := len(w.children) - 1; i >= 0; i-- {
		if w.children[i].HandleMouseButton(ev) {
			return true
		}
	}

	if w.handleControlButton(ev) {
		return true
	}

	if ev.Pressed && ev.Button == MouseLeft && w.bounds.Contains(ev.Position) {
		if w.onClick != nil {
			w.onClick()
			return true
		}
	}
	return false
}

// HandleKey delivers a key event to the focused widget. Containers forward
// until some descendant handles it.
func (w *Widget) HandleKey(ev KeyEvent) bool {
	if !w.visible {
		return false
	}

	if w.focused && w.kind == KindTextInput {
		return w.handleTextInputKey(ev)
	}

	for _, child := range w.children {
		if child.HandleKey(ev) {
			return true
		}
	}
	return false
}

// HandleScroll dispatches a scroll event. Children are tried top-most first
// so that a nested scroll view closer to the pointer wins over an ancestor.
func (w *Widget) HandleScroll(ev ScrollEvent) bool {
	if !w.visible {
		return false
	}

	for i := len(w.children) - 1; i >= 0; i-- {
		if w.children[i].HandleScroll(ev) {
			return true
		}
	}

	if w.kind == KindScrollView {
		return w.handleScrollWheel(ev)
	}
	return false
}
