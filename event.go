package ember

// MouseButton identifies which mouse button an event refers to.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseButton4
	MouseButton5
)

// Modifiers is a bitmask of modifier keys held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on macOS, Win key elsewhere
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Key codes for the keys the toolkit itself reacts to (text editing).
// Values follow the Linux evdev scancodes the platform layer reports.
const (
	KeyBackspace uint32 = 14
	KeyEnter     uint32 = 28
	KeyLeft      uint32 = 105
	KeyRight     uint32 = 106
	KeyDelete    uint32 = 111
)

// MouseEvent carries pointer motion and button state. For motion events
// Button is meaningless; for button events Delta is zero.
type MouseEvent struct {
	Position Point
	Delta    Point
	Button   MouseButton
	Pressed  bool
	Mods     Modifiers
}

// KeyEvent carries a key transition. Text holds the character input the key
// produced, if any, already translated by the platform layer.
type KeyEvent struct {
	Code    uint32
	Pressed bool
	Mods    Modifiers
	Text    string
}

// ScrollEvent carries a wheel or touchpad scroll gesture at a position.
type ScrollEvent struct {
	Position Point
	DeltaX   float32
	DeltaY   float32
}

// InputKind tags the variants of InputEvent.
type InputKind uint8

const (
	InputMouseMove InputKind = iota + 1
	InputMouseButton
	InputScroll
	InputKey
)

// InputEvent is the union the platform event source delivers. Exactly one of
// the payload fields is meaningful, selected by Kind.
type InputEvent struct {
	Kind   InputKind
	Mouse  MouseEvent
	Scroll ScrollEvent
	Key    KeyEvent
}

// EventSource is the platform side of the run loop. One Poll call corresponds
// to one loop iteration: it returns the input accumulated since the previous
// call plus the elapsed frame time in seconds. Implementations may block
// until input or the next frame tick arrives.
type EventSource interface {
	Poll() (events []InputEvent, dt float32)
}
