package ember

// Typed constructors. Each one creates a widget of its kind with the current
// theme's defaults applied, ready for further chaining.

// NewBox creates a sequential container laying children along a main axis.
func NewBox(dir Direction) *Widget {
	w := NewWidget(KindBox)
	w.direction = dir
	return w
}

// NewVBox creates a vertical Box.
func NewVBox() *Widget { return NewBox(Vertical) }

// NewHBox creates a horizontal Box.
func NewHBox() *Widget { return NewBox(Horizontal) }

// NewStack creates an overlay container. Children share the content rect and
// later children paint on top.
func NewStack() *Widget {
	return NewWidget(KindStack)
}

// NewGrid creates a uniform-cell grid with the given column count.
func NewGrid(columns int) *Widget {
	w := NewWidget(KindGrid)
	w.columns = columns
	return w
}

// NewScrollView creates a clipping viewport scrolling along one axis. Content
// goes in as children; they see unconstrained space on the scroll axis.
func NewScrollView(dir Direction) *Widget {
	w := NewWidget(KindScrollView)
	w.scrollDir = dir
	w.widthSpec = Fill()
	w.heightSpec = Fill()
	return w
}

// NewSidebar creates a two-region split with a fixed panel on one edge. Add
// the panel child first, then the main-content child.
func NewSidebar(pos SidebarPosition, size float32) *Widget {
	w := NewWidget(KindSidebar)
	w.sidebarPos = pos
	w.sidebarSize = size
	w.widthSpec = Fill()
	w.heightSpec = Fill()
	return w
}

// NewText creates a text leaf sized to its content.
func NewText(s string) *Widget {
	w := NewWidget(KindText)
	w.text = s
	w.textStyle = CurrentTheme().textStyle()
	return w
}

// NewLabel creates a text leaf in the theme's muted label style.
func NewLabel(s string) *Widget {
	w := NewWidget(KindLabel)
	w.text = s
	w.textStyle = CurrentTheme().textStyle()
	w.textStyle.Color = CurrentTheme().mustColor(CurrentTheme().MutedText)
	return w
}

// NewImage creates an image leaf. The texture loads lazily through the
// renderer; a placeholder fill shows until it resolves.
func NewImage(path string) *Widget {
	w := NewWidget(KindImage)
	w.imagePath = path
	return w
}

// NewIcon creates a circular icon leaf in the theme accent color.
func NewIcon() *Widget {
	w := NewWidget(KindIcon)
	w.iconColor = CurrentTheme().mustColor(CurrentTheme().Accent)
	return w
}

// NewSpacer creates a fixed-extent gap for use inside a Box.
func NewSpacer(size float32) *Widget {
	w := NewWidget(KindSpacer)
	w.widthSpec = Fixed(size)
	w.heightSpec = Fixed(size)
	return w
}

// NewFlexSpacer creates a gap that absorbs remaining Box space.
func NewFlexSpacer() *Widget {
	w := NewWidget(KindSpacer)
	w.widthSpec = Fill()
	w.heightSpec = Fill()
	return w
}

// NewDivider creates a one-pixel horizontal rule in the theme border color.
func NewDivider() *Widget {
	w := NewWidget(KindDivider)
	w.widthSpec = Fill()
	w.heightSpec = Fixed(1)
	w.style.Background = CurrentTheme().mustColor(CurrentTheme().Border)
	return w
}

// NewButton creates a push button with the theme's button fills and a click
// callback.
func NewButton(label string, onClick func()) *Widget {
	t := CurrentTheme()
	w := NewWidget(KindButton)
	w.text = label
	w.onClick = onClick
	w.textStyle = t.textStyle()
	w.textStyle.Align = TextAlignCenter
	w.style.Background = t.mustColor(t.ButtonBg)
	w.hoverBg = t.mustColor(t.ButtonHoverBg)
	w.activeBg = t.mustColor(t.ButtonActiveBg)
	w.style.BorderRadius = RadiusAll(t.CornerRadius)
	w.style.Padding = PaddingXY(16, 8)
	return w
}

// NewTextInput creates a single-line text input.
func NewTextInput(placeholder string) *Widget {
	t := CurrentTheme()
	w := NewWidget(KindTextInput)
	w.placeholder = placeholder
	w.textStyle = t.textStyle()
	w.textStyle.Align = TextAlignLeft
	w.style.Background = t.mustColor(t.InputBg)
	w.style.BorderColor = t.mustColor(t.Border)
	w.style.BorderWidth = 1
	w.style.BorderRadius = RadiusAll(t.CornerRadius)
	w.style.Padding = PaddingXY(10, 6)
	w.heightSpec = Fixed(32)
	return w
}

// NewCheckbox creates a toggleable checkbox.
func NewCheckbox(checked bool) *Widget {
	t := CurrentTheme()
	w := NewWidget(KindCheckbox)
	w.checked = checked
	w.checkColor = t.mustColor(t.Accent)
	w.style.Background = t.mustColor(t.InputBg)
	w.style.BorderColor = t.mustColor(t.Border)
	w.style.BorderWidth = 1
	w.style.BorderRadius = RadiusAll(3)
	w.widthSpec = Fixed(18)
	w.heightSpec = Fixed(18)
	return w
}

// NewSlider creates a draggable slider over [min, max] starting at value.
func NewSlider(min, max, value float32) *Widget {
	t := CurrentTheme()
	w := NewWidget(KindSlider)
	w.sliderMin = min
	w.sliderMax = max
	w.sliderValue = clampf(value, min, max)
	w.fillColor = t.mustColor(t.Accent)
	w.thumbColor = t.mustColor(t.Text)
	w.style.BorderColor = t.mustColor(t.Border)
	w.heightSpec = Fixed(20)
	w.widthSpec = Fill()
	return w
}

// NewProgressBar creates a read-only completion bar.
func NewProgressBar(progress float32) *Widget {
	t := CurrentTheme()
	w := NewWidget(KindProgressBar)
	w.progress = progress
	w.fillColor = t.mustColor(t.Accent)
	w.style.BorderColor = t.mustColor(t.Border)
	w.textStyle = t.textStyle()
	w.textStyle.FontSize = 10
	w.heightSpec = Fixed(8)
	w.widthSpec = Fill()
	return w
}

// NewCustom creates a widget whose content is defined entirely by the
// OnMeasure and OnRender hooks.
func NewCustom(measure func(Size) Size, render func(Renderer, Rect)) *Widget {
	w := NewWidget(KindCustom)
	w.measureFunc = measure
	w.renderFunc = render
	return w
}
