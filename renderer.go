package ember

// Renderer is the drawing capability the widget tree consumes. The toolkit
// never talks to the GPU directly; a backend implements this interface over
// whatever graphics API the platform provides.
//
// Drawing calls are fire-and-forget. A backend must not fail a frame because
// a resource is missing: LoadFont falls back to a default face and LoadImage
// returns nil, which widgets render as a placeholder.
type Renderer interface {
	DrawRect(rect Rect, color Color)
	DrawRoundedRect(rect Rect, radius BorderRadius, color Color)
	DrawBorder(rect Rect, radius BorderRadius, color Color, width float32)
	DrawGradient(rect Rect, start, end Color, angle float32)
	DrawText(text string, pos Point, font Font, color Color, style TextStyle)
	DrawImage(tex Texture, rect Rect, opacity float32)

	// LoadFont resolves a font face, cached by family and size. It never
	// returns nil; unknown families resolve to the backend's default face.
	LoadFont(family string, size float32) Font

	// LoadImage resolves a texture, cached by path. Returns nil while the
	// image is unavailable (missing file, still decoding).
	LoadImage(path string) Texture
}

// Font is a loaded face handle. Widgets use it only for metrics; glyph
// rasterization stays behind the renderer.
type Font interface {
	MeasureText(s string) Size
}

// Texture is a loaded image handle. Widgets hold these unowned; the renderer
// caches and owns the underlying resource.
type Texture interface {
	Width() float32
	Height() float32
	Valid() bool
}
