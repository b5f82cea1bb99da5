package ember

// FocusManager keeps keyboard focus exclusive across a widget tree. Widgets
// route focus requests here when attached to an App; SetFocus on a widget
// stays available for trees driven without one.
type FocusManager struct {
	focused *Widget
}

// Request moves focus to the widget, clearing it from the previous holder.
// Both widgets see their focus callbacks fire on the transition.
func (fm *FocusManager) Request(w *Widget) {
	if fm.focused == w {
		return
	}
	if fm.focused != nil {
		fm.focused.SetFocus(false)
	}
	fm.focused = w
	if w != nil {
		w.SetFocus(true)
	}
}

// Clear removes focus from the current holder.
func (fm *FocusManager) Clear() { fm.Request(nil) }

// Focused returns the widget currently holding focus, or nil.
func (fm *FocusManager) Focused() *Widget { return fm.focused }

// App drives a widget tree against a renderer and an event source. It owns
// the frame loop: poll input, dispatch to the tree, run the frame hook,
// paint. All of it happens on the calling goroutine.
type App struct {
	renderer Renderer
	events   EventSource
	focus    FocusManager

	root     *Widget
	viewport Size
	onFrame  func(dt float32)
	quit     bool
}

// NewApp creates an app over the given backend pair with an initial viewport
// size.
func NewApp(r Renderer, ev EventSource, viewport Size) *App {
	return &App{
		renderer: r,
		events:   ev,
		viewport: viewport,
	}
}

// SetRoot installs the widget tree, attaches focus routing, and runs an
// initial measure and layout pass over the viewport.
func (a *App) SetRoot(root *Widget) {
	a.root = root
	if root != nil {
		root.attach(&a.focus)
		a.relayout()
	}
}

// Root returns the installed tree.
func (a *App) Root() *Widget { return a.root }

// Focus returns the app's focus manager.
func (a *App) Focus() *FocusManager { return &a.focus }

// Resize updates the viewport and re-lays the tree.
func (a *App) Resize(viewport Size) {
	a.viewport = viewport
	a.relayout()
}

// Relayout re-runs measure and layout over the current viewport. Call after
// structural changes to the tree.
func (a *App) Relayout() { a.relayout() }

func (a *App) relayout() {
	if a.root == nil {
		return
	}
	a.root.Measure(a.viewport)
	a.root.Layout(Rect{Width: a.viewport.Width, Height: a.viewport.Height})
}

// OnFrame sets a hook that runs every frame after input dispatch and before
// rendering, with the frame delta in seconds. Animations advance here.
func (a *App) OnFrame(fn func(dt float32)) {
	a.onFrame = fn
}

// RunFrame executes one loop iteration: poll, dispatch, frame hook, render.
// Exposed so hosts with their own outer loop can drive the app themselves.
func (a *App) RunFrame() {
	events, dt := a.events.Poll()
	if a.root != nil {
		for _, ev := range events {
			a.dispatch(ev)
		}
	}
	if a.onFrame != nil {
		a.onFrame(dt)
	}
	if a.root != nil {
		a.root.Render(a.renderer)
	}
}

func (a *App) dispatch(ev InputEvent) {
	switch ev.Kind {
	case InputMouseMove:
		a.root.HandleMouseMove(ev.Mouse)
	case InputMouseButton:
		handled := a.root.HandleMouseButton(ev.Mouse)
		// A press landing on nothing interactive drops focus, matching how
		// desktop toolkits dismiss an active text input.
		if !handled && ev.Mouse.Pressed {
			a.focus.Clear()
		}
	case InputScroll:
		a.root.HandleScroll(ev.Scroll)
	case InputKey:
		a.root.HandleKey(ev.Key)
	}
}

// Run loops RunFrame until Quit is called.
func (a *App) Run() {
	for !a.quit {
		a.RunFrame()
	}
}

// Quit stops Run after the current frame.
func (a *App) Quit() { a.quit = true }
