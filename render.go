package ember

import "fmt"

// Render paints the widget and its subtree in z-order. The base box paints
// first (shadow, background, border), then the kind's content, then children
// in list order so later children cover earlier ones.
//
// Rendering never mutates layout state; it reads the rectangles the last
// Layout call produced.
func (w *Widget) Render(r Renderer) {
	if !w.visible {
		return
	}

	w.renderBox(r)
	w.renderContent(r)

	for _, child := range w.children {
		child.Render(r)
	}
}

// renderBox paints shadow, background fill, and border.
func (w *Widget) renderBox(r Renderer) {
	s := &w.style

	if s.HasShadow && s.Shadow.Color.A > 0 {
		shadowRect := Rect{
			X:      w.bounds.X + s.Shadow.Offset.X - s.Shadow.Blur/2,
			Y:      w.bounds.Y + s.Shadow.Offset.Y - s.Shadow.Blur/2,
			Width:  w.bounds.Width + s.Shadow.Blur,
			Height: w.bounds.Height + s.Shadow.Blur,
		}
		if s.BorderRadius.IsZero() {
			r.DrawRect(shadowRect, s.Shadow.Color)
		} else {
			r.DrawRoundedRect(shadowRect, s.BorderRadius, s.Shadow.Color)
		}
	}

	bg := w.backgroundColor()
	switch {
	case s.HasGradient:
		r.DrawGradient(w.bounds, s.Gradient.Start, s.Gradient.End, s.Gradient.Angle)
	case bg.A > 0:
		if s.BorderRadius.IsZero() {
			r.DrawRect(w.bounds, bg)
		} else {
			r.DrawRoundedRect(w.bounds, s.BorderRadius, bg)
		}
	}

	if s.BorderWidth > 0 && s.BorderColor.A > 0 {
		r.DrawBorder(w.bounds, s.BorderRadius, s.BorderColor, s.BorderWidth)
	}
}

// backgroundColor resolves the fill, swapping in the interaction variants for
// buttons. Pressed wins over hovered.
func (w *Widget) backgroundColor() Color {
	if w.kind != KindButton || !w.enabled {
		return w.style.Background
	}
	if w.pressed && w.activeBg.A > 0 {
		return w.activeBg
	}
	if w.hovered && w.hoverBg.A > 0 {
		return w.hoverBg
	}
	return w.style.Background
}

// renderContent paints the kind-specific interior.
func (w *Widget) renderContent(r Renderer) {
	if w.renderFunc != nil {
		w.renderFunc(r, w.contentBounds)
		return
	}

	switch w.kind {
	case KindText, KindLabel, KindButton:
		w.renderText(r, w.text, w.textStyle)
	case KindTextInput:
		w.renderTextInput(r)
	case KindImage:
		w.renderImage(r)
	case KindIcon:
		w.renderIcon(r)
	case KindCheckbox:
		w.renderCheckbox(r)
	case KindSlider:
		w.renderSlider(r)
	case KindProgressBar:
		w.renderProgressBar(r)
	}
}

// renderText positions a single line inside the content box per the style's
// alignments and draws it.
func (w *Widget) renderText(r Renderer, text string, style TextStyle) {
	if text == "" || style.Color.A == 0 {
		return
	}
	font := r.LoadFont(style.FontFamily, style.FontSize)
	sz := font.MeasureText(text)
	cb := w.contentBounds

	var x float32
	switch style.Align {
	case TextAlignCenter:
		x = cb.X + (cb.Width-sz.Width)/2
	case TextAlignRight:
		x = cb.X + cb.Width - sz.Width
	default:
		x = cb.X
	}

	var y float32
	switch style.VAlign {
	case TextVAlignMiddle:
		y = cb.Y + (cb.Height-sz.Height)/2
	case TextVAlignBottom:
		y = cb.Y + cb.Height - sz.Height
	default:
		y = cb.Y
	}

	r.DrawText(text, Point{X: x, Y: y}, font, style.Color, style)
}

// Image placeholder fills, used while a texture is unavailable.
var (
	imagePendingFill = RGB(0.3, 0.3, 0.3)
	imageErrorFill   = RGB(0.5, 0.2, 0.2)
)

func (w *Widget) renderImage(r Renderer) {
	if w.imagePath == "" {
		r.DrawRect(w.contentBounds, imagePendingFill)
		return
	}
	tex := r.LoadImage(w.imagePath)
	if tex == nil || !tex.Valid() {
		r.DrawRect(w.contentBounds, imageErrorFill)
		return
	}

	dst := w.contentBounds
	if w.preserveAspect && tex.Width() > 0 && tex.Height() > 0 {
		texAspect := tex.Width() / tex.Height()
		boxAspect := dst.Width / dst.Height
		if texAspect > boxAspect {
			h := dst.Width / texAspect
			dst.Y += (dst.Height - h) / 2
			dst.Height = h
		} else {
			wd := dst.Height * texAspect
			dst.X += (dst.Width - wd) / 2
			dst.Width = wd
		}
	}
	r.DrawImage(tex, dst, w.opacity)
}

// renderIcon draws a filled circle sized to the smaller content dimension.
// A dedicated glyph path can replace this once the renderer grows one.
func (w *Widget) renderIcon(r Renderer) {
	cb := w.contentBounds
	d := cb.Width
	if cb.Height < d {
		d = cb.Height
	}
	circle := Rect{
		X:      cb.X + (cb.Width-d)/2,
		Y:      cb.Y + (cb.Height-d)/2,
		Width:  d,
		Height: d,
	}
	r.DrawRoundedRect(circle, RadiusAll(d/2), w.iconColor)
}

func (w *Widget) renderTextInput(r Renderer) {
	if w.focused {
		ring := w.textStyle.Color.WithAlpha(0.6)
		r.DrawBorder(w.bounds, w.style.BorderRadius, ring, 2)
	}

	if w.text == "" && w.placeholder != "" && !w.focused {
		placeholderStyle := w.textStyle
		placeholderStyle.Color = placeholderStyle.Color.WithAlpha(0.4)
		w.renderText(r, w.placeholder, placeholderStyle)
		return
	}

	w.renderText(r, w.text, w.textStyle)

	if w.focused {
		font := r.LoadFont(w.textStyle.FontFamily, w.textStyle.FontSize)
		prefix := font.MeasureText(string([]rune(w.text)[:w.cursor]))
		cb := w.contentBounds
		caretH := w.textStyle.FontSize * w.textStyle.LineHeight
		r.DrawRect(Rect{
			X:      cb.X + prefix.Width,
			Y:      cb.Y + (cb.Height-caretH)/2,
			Width:  1,
			Height: caretH,
		}, w.textStyle.Color)
	}
}

func (w *Widget) renderCheckbox(r Renderer) {
	if !w.checked {
		return
	}
	cb := w.contentBounds
	// Checkmark as two crossing strokes; a path API would do better but the
	// renderer surface is rectangles.
	inset := cb.Width * 0.2
	stroke := maxf(2, cb.Width*0.12)
	r.DrawRect(Rect{
		X:      cb.X + inset,
		Y:      cb.Y + cb.Height/2,
		Width:  cb.Width/2 - inset,
		Height: stroke,
	}, w.checkColor)
	r.DrawRect(Rect{
		X:      cb.X + cb.Width/2,
		Y:      cb.Y + inset,
		Width:  stroke,
		Height: cb.Height - inset*2,
	}, w.checkColor)
}

func (w *Widget) renderSlider(r Renderer) {
	cb := w.contentBounds
	trackH := float32(4)
	track := Rect{
		X:      cb.X,
		Y:      cb.Y + (cb.Height-trackH)/2,
		Width:  cb.Width,
		Height: trackH,
	}
	r.DrawRoundedRect(track, RadiusAll(trackH/2), w.style.BorderColor)

	t := w.sliderFraction()
	fill := track
	fill.Width = track.Width * t
	r.DrawRoundedRect(fill, RadiusAll(trackH/2), w.fillColor)

	thumbD := cb.Height
	thumb := Rect{
		X:      cb.X + (cb.Width-thumbD)*t,
		Y:      cb.Y,
		Width:  thumbD,
		Height: thumbD,
	}
	r.DrawRoundedRect(thumb, RadiusAll(thumbD/2), w.thumbColor)
}

func (w *Widget) renderProgressBar(r Renderer) {
	cb := w.contentBounds
	radius := RadiusAll(cb.Height / 2)
	r.DrawRoundedRect(cb, radius, w.style.BorderColor)

	t := clampf(w.progress, 0, 1)
	fill := cb
	fill.Width = cb.Width * t
	if fill.Width > 0 {
		r.DrawRoundedRect(fill, radius, w.fillColor)
	}

	if w.showProgress {
		label := fmt.Sprintf("%d%%", int(t*100+0.5))
		style := w.textStyle
		style.Align = TextAlignCenter
		w.renderText(r, label, style)
	}
}
