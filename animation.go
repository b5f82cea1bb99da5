package ember

import "github.com/chewxy/math32"

// EasingCurve shapes the progress of an animation over time.
type EasingCurve int

const (
	EaseLinear EasingCurve = iota
	EaseIn
	EaseOut
	EaseInOut
	EaseBounce
	EaseElastic
)

// EaseValue maps linear progress t to eased progress. Inputs outside [0, 1]
// clamp to the endpoints, so every curve starts at exactly 0 and ends at
// exactly 1 regardless of its interior overshoot.
func EaseValue(curve EasingCurve, t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch curve {
	case EaseIn:
		return t * t
	case EaseOut:
		return t * (2 - t)
	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	case EaseBounce:
		return bounceOut(t)
	case EaseElastic:
		const p = 0.3
		return math32.Pow(2, -10*t)*math32.Sin((t-p/4)*(2*math32.Pi)/p) + 1
	default:
		return t
	}
}

func bounceOut(t float32) float32 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

// Animation is a one-shot tween between two values of any interpolable type.
// The host advances it with Update(dt) once per frame and reads Value to
// apply the result; the animation itself never touches widgets.
type Animation[T any] struct {
	From     T
	To       T
	Duration float32 // seconds
	Curve    EasingCurve
	OnDone   func()

	lerpFn  func(a, b T, t float32) T
	elapsed float32
	running bool
	done    bool
}

// NewAnimation creates a tween with an explicit interpolator. The typed
// constructors below cover the common value types.
func NewAnimation[T any](from, to T, duration float32, curve EasingCurve, lerpFn func(a, b T, t float32) T) *Animation[T] {
	return &Animation[T]{
		From:     from,
		To:       to,
		Duration: duration,
		Curve:    curve,
		lerpFn:   lerpFn,
	}
}

// NewFloatAnimation tweens a float32.
func NewFloatAnimation(from, to, duration float32, curve EasingCurve) *Animation[float32] {
	return NewAnimation(from, to, duration, curve, lerp)
}

// NewColorAnimation tweens a color component-wise.
func NewColorAnimation(from, to Color, duration float32, curve EasingCurve) *Animation[Color] {
	return NewAnimation(from, to, duration, curve, Color.Lerp)
}

// NewPointAnimation tweens a point.
func NewPointAnimation(from, to Point, duration float32, curve EasingCurve) *Animation[Point] {
	return NewAnimation(from, to, duration, curve, func(a, b Point, t float32) Point {
		return Point{X: lerp(a.X, b.X, t), Y: lerp(a.Y, b.Y, t)}
	})
}

// NewSizeAnimation tweens a size.
func NewSizeAnimation(from, to Size, duration float32, curve EasingCurve) *Animation[Size] {
	return NewAnimation(from, to, duration, curve, func(a, b Size, t float32) Size {
		return Size{Width: lerp(a.Width, b.Width, t), Height: lerp(a.Height, b.Height, t)}
	})
}

// Start begins or restarts playback from the beginning.
func (a *Animation[T]) Start() {
	a.elapsed = 0
	a.running = true
	a.done = false
}

// Stop halts playback, freezing Value at its current position.
func (a *Animation[T]) Stop() {
	a.running = false
}

// Reset rewinds to the start without playing.
func (a *Animation[T]) Reset() {
	a.elapsed = 0
	a.running = false
	a.done = false
}

// Update advances the animation by dt seconds and reports whether this tick
// completed it. On the completing tick the value lands exactly on To and
// OnDone fires once; further updates are no-ops until Start is called again.
func (a *Animation[T]) Update(dt float32) bool {
	if !a.running {
		return false
	}
	a.elapsed += dt
	if a.Duration <= 0 || a.elapsed >= a.Duration {
		a.elapsed = a.Duration
		a.running = false
		a.done = true
		if a.OnDone != nil {
			a.OnDone()
		}
		return true
	}
	return false
}

// Value returns the current interpolated value.
func (a *Animation[T]) Value() T {
	var t float32
	switch {
	case a.done:
		t = 1
	case a.Duration <= 0:
		t = 0
	default:
		t = a.elapsed / a.Duration
	}
	return a.lerpFn(a.From, a.To, EaseValue(a.Curve, t))
}

// IsRunning reports whether the animation is advancing.
func (a *Animation[T]) IsRunning() bool { return a.running }

// IsDone reports whether the animation completed its run.
func (a *Animation[T]) IsDone() bool { return a.done }
