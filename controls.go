package ember

// Control-specific configuration and input handling. The generic dispatch in
// widget.go calls into handleControlButton and handleTextInputKey; everything
// else here is chained setters in the usual style.

// ============================================================================
// Text Content
// ============================================================================

// SetText sets the text content and, for inputs, moves the cursor to the end.
func (w *Widget) SetText(s string) *Widget {
	w.text = s
	w.cursor = len([]rune(s))
	return w
}

// Text returns the text content.
func (w *Widget) Text() string { return w.text }

// SetTextStyle replaces the text style.
func (w *Widget) SetTextStyle(ts TextStyle) *Widget {
	w.textStyle = ts
	return w
}

// TextStyleRef returns a pointer to the widget's text style for in-place
// tweaks between frames.
func (w *Widget) TextStyleRef() *TextStyle { return &w.textStyle }

// SetFontSize sets the font size, keeping the rest of the text style.
func (w *Widget) SetFontSize(size float32) *Widget {
	w.textStyle.FontSize = size
	return w
}

// SetTextColor sets the text color, keeping the rest of the text style.
func (w *Widget) SetTextColor(c Color) *Widget {
	w.textStyle.Color = c
	return w
}

// SetTextAlign sets horizontal and vertical text alignment.
func (w *Widget) SetTextAlign(h TextAlign, v TextVAlign) *Widget {
	w.textStyle.Align = h
	w.textStyle.VAlign = v
	return w
}

// SetPlaceholder sets the hint text an empty unfocused input shows.
func (w *Widget) SetPlaceholder(s string) *Widget {
	w.placeholder = s
	return w
}

// OnChange sets the callback fired after every edit, with the new text.
func (w *Widget) OnChange(fn func(string)) *Widget {
	w.onChange = fn
	return w
}

// OnSubmit sets the callback fired when Enter is pressed in an input.
func (w *Widget) OnSubmit(fn func(string)) *Widget {
	w.onSubmit = fn
	return w
}

// CursorPos returns the rune index of the input caret.
func (w *Widget) CursorPos() int { return w.cursor }

// ============================================================================
// Container Configuration
// ============================================================================

// SetDirection sets a Box's main axis or a ScrollView's scroll axis.
func (w *Widget) SetDirection(d Direction) *Widget {
	w.direction = d
	w.scrollDir = d
	return w
}

// SetSpacing sets the gap between adjacent children in a Box or Grid.
func (w *Widget) SetSpacing(s float32) *Widget {
	w.spacing = s
	return w
}

// SetAlignment sets a Box's main-axis and cross-axis alignment, or a Stack's
// horizontal and vertical alignment.
func (w *Widget) SetAlignment(main, cross Alignment) *Widget {
	w.mainAlign = main
	w.crossAlign = cross
	w.hAlign = main
	w.vAlign = cross
	return w
}

// SetColumns sets a Grid's column count.
func (w *Widget) SetColumns(n int) *Widget {
	w.columns = n
	return w
}

// SetCellSize sets an explicit Grid cell size. Zero components fall back to
// dividing the content width by the column count.
func (w *Widget) SetCellSize(sz Size) *Widget {
	w.cellSize = sz
	return w
}

// SetSidebar configures the panel edge and its fixed extent.
func (w *Widget) SetSidebar(pos SidebarPosition, size float32) *Widget {
	w.sidebarPos = pos
	w.sidebarSize = size
	return w
}

// ============================================================================
// Control Configuration
// ============================================================================

// SetHoverBackground sets a button's hovered fill.
func (w *Widget) SetHoverBackground(c Color) *Widget {
	w.hoverBg = c
	return w
}

// SetActiveBackground sets a button's pressed fill.
func (w *Widget) SetActiveBackground(c Color) *Widget {
	w.activeBg = c
	return w
}

// SetImage sets the image path. The renderer resolves and caches the texture.
func (w *Widget) SetImage(path string) *Widget {
	w.imagePath = path
	return w
}

// SetOpacity sets image draw opacity, 0 to 1.
func (w *Widget) SetOpacity(o float32) *Widget {
	w.opacity = o
	return w
}

// SetPreserveAspect controls letterboxing versus stretching for images.
func (w *Widget) SetPreserveAspect(p bool) *Widget {
	w.preserveAspect = p
	return w
}

// SetIconColor sets the icon fill color.
func (w *Widget) SetIconColor(c Color) *Widget {
	w.iconColor = c
	return w
}

// SetChecked sets checkbox state without firing the toggle callback.
func (w *Widget) SetChecked(checked bool) *Widget {
	w.checked = checked
	return w
}

// IsChecked returns checkbox state.
func (w *Widget) IsChecked() bool { return w.checked }

// OnToggle sets the callback fired when the user toggles a checkbox.
func (w *Widget) OnToggle(fn func(bool)) *Widget {
	w.onToggle = fn
	return w
}

// SetRange sets a slider's value range. min must be below max; the current
// value is re-clamped into the new range.
func (w *Widget) SetRange(min, max float32) *Widget {
	w.sliderMin = min
	w.sliderMax = max
	w.sliderValue = clampf(w.sliderValue, min, max)
	return w
}

// SetValue sets a slider's value, clamped to its range, without firing the
// change callback.
func (w *Widget) SetValue(v float32) *Widget {
	w.sliderValue = clampf(v, w.sliderMin, w.sliderMax)
	return w
}

// Value returns a slider's current value.
func (w *Widget) Value() float32 { return w.sliderValue }

// OnValueChange sets the callback fired while the user drags a slider.
func (w *Widget) OnValueChange(fn func(float32)) *Widget {
	w.onValueChange = fn
	return w
}

// SetProgress sets a progress bar's completion fraction, clamped to 0-1 at
// render time.
func (w *Widget) SetProgress(p float32) *Widget {
	w.progress = p
	return w
}

// Progress returns the completion fraction as set.
func (w *Widget) Progress() float32 { return w.progress }

// SetShowProgress toggles the percentage label over the bar.
func (w *Widget) SetShowProgress(show bool) *Widget {
	w.showProgress = show
	return w
}

// ============================================================================
// Control Input
// ============================================================================

// handleControlButton implements kind-specific pointer-button behavior.
// Returns true when the control consumed the event.
func (w *Widget) handleControlButton(ev MouseEvent) bool {
	switch w.kind {
	case KindButton:
		return w.buttonPress(ev)
	case KindTextInput:
		if ev.Pressed && ev.Button == MouseLeft && w.bounds.Contains(ev.Position) {
			w.requestFocus()
			return true
		}
	case KindCheckbox:
		if ev.Pressed && ev.Button == MouseLeft && w.bounds.Contains(ev.Position) {
			w.checked = !w.checked
			if w.onToggle != nil {
				w.onToggle(w.checked)
			}
			return true
		}
	case KindSlider:
		return w.sliderPress(ev)
	}
	return false
}

// buttonPress tracks pressed state across the press/release pair. The click
// callback fires on press; release inside or outside just clears the visual
// state.
func (w *Widget) buttonPress(ev MouseEvent) bool {
	if ev.Button != MouseLeft {
		return false
	}
	if ev.Pressed {
		if !w.bounds.Contains(ev.Position) {
			return false
		}
		w.pressed = true
		if w.onClick != nil {
			w.onClick()
		}
		return true
	}
	if w.pressed {
		w.pressed = false
		return true
	}
	return false
}

// sliderPress starts a drag on press inside bounds and ends it on any left
// release, including releases outside the widget.
func (w *Widget) sliderPress(ev MouseEvent) bool {
	if ev.Button != MouseLeft {
		return false
	}
	if ev.Pressed {
		if !w.bounds.Contains(ev.Position) {
			return false
		}
		w.dragging = true
		w.setSliderFromX(ev.Position.X)
		return true
	}
	if w.dragging {
		w.dragging = false
		return true
	}
	return false
}

// sliderFraction maps the current value into 0-1 over the range. A collapsed
// range reads as zero.
func (w *Widget) sliderFraction() float32 {
	span := w.sliderMax - w.sliderMin
	if span <= 0 {
		return 0
	}
	return clampf((w.sliderValue-w.sliderMin)/span, 0, 1)
}

// setSliderFromX converts a pointer x position into a value and fires the
// change callback when it moved.
func (w *Widget) setSliderFromX(x float32) {
	cb := w.contentBounds
	if cb.Width <= 0 {
		return
	}
	t := clampf((x-cb.X)/cb.Width, 0, 1)
	v := w.sliderMin + t*(w.sliderMax-w.sliderMin)
	if v == w.sliderValue {
		return
	}
	w.sliderValue = v
	if w.onValueChange != nil {
		w.onValueChange(v)
	}
}

// handleTextInputKey edits the input text from a key press. Only presses are
// acted on; releases are consumed without effect so they do not leak to other
// widgets while the input is focused.
func (w *Widget) handleTextInputKey(ev KeyEvent) bool {
	if !ev.Pressed {
		return true
	}

	runes := []rune(w.text)
	if w.cursor > len(runes) {
		w.cursor = len(runes)
	}

	switch ev.Code {
	case KeyBackspace:
		if w.cursor > 0 {
			runes = append(runes[:w.cursor-1], runes[w.cursor:]...)
			w.cursor--
			w.setEditedText(string(runes))
		}
	case KeyDelete:
		if w.cursor < len(runes) {
			runes = append(runes[:w.cursor], runes[w.cursor+1:]...)
			w.setEditedText(string(runes))
		}
	case KeyLeft:
		if w.cursor > 0 {
			w.cursor--
		}
	case KeyRight:
		if w.cursor < len(runes) {
			w.cursor++
		}
	case KeyEnter:
		if w.onSubmit != nil {
			w.onSubmit(w.text)
		}
	default:
		if ev.Text != "" {
			inserted := []rune(ev.Text)
			runes = append(runes[:w.cursor], append(inserted, runes[w.cursor:]...)...)
			w.cursor += len(inserted)
			w.setEditedText(string(runes))
		}
	}
	return true
}

func (w *Widget) setEditedText(s string) {
	w.text = s
	if w.onChange != nil {
		w.onChange(s)
	}
}
