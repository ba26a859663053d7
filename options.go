package blade

import "math"

// Option configures a Ribbon during creation.
//
// Example:
//
//	r, err := blade.New(32,
//	    blade.WithWidth(8),
//	    blade.WithTaper(true),
//	    blade.WithRetireInterval(1.0/30),
//	)
type Option func(*options)

// options holds optional configuration for Ribbon creation.
type options struct {
	width          float64
	retireInterval float64
	texture        any
	autoDim        bool
	taper          bool
	textureLength  float64
	interpolation  float64
	onDrained      func()
}

// Default configuration values.
const (
	// DefaultWidth is the ribbon half-thickness used when WithWidth is not given.
	DefaultWidth = 5.0

	// DefaultRetireInterval is the decay cadence in seconds: one point per
	// frame at 60 Hz.
	DefaultRetireInterval = 1.0 / 60
)

// defaultOptions returns the default ribbon options.
func defaultOptions() options {
	return options{
		width:          DefaultWidth,
		retireInterval: DefaultRetireInterval,
	}
}

// WithWidth sets the ribbon half-thickness. Negative values are clamped to 0.
func WithWidth(w float64) Option {
	return func(o *options) {
		o.width = max(w, 0)
	}
}

// WithRetireInterval sets the decay cadence in seconds. While auto-dimming
// or finishing, the ribbon retires one point every interval.
// Values that are not positive and finite are ignored.
func WithRetireInterval(seconds float64) Option {
	return func(o *options) {
		if validInterval(seconds) {
			o.retireInterval = seconds
		}
	}
}

// WithTexture sets the initial texture handle. The handle is opaque to the
// ribbon and handed unchanged to render adapters.
func WithTexture(tex any) Option {
	return func(o *options) {
		o.texture = tex
	}
}

// WithAutoDim starts the ribbon with auto-dimming enabled.
func WithAutoDim(enabled bool) Option {
	return func(o *options) {
		o.autoDim = enabled
	}
}

// WithTaper narrows each segment from full width at its newest point to
// zero at its oldest point.
func WithTaper(enabled bool) Option {
	return func(o *options) {
		o.taper = enabled
	}
}

// WithTextureLength makes the texture tile every length units of trail
// instead of stretching once over each segment. Non-positive values restore
// the stretched mapping.
func WithTextureLength(length float64) Option {
	return func(o *options) {
		o.textureLength = max(length, 0)
	}
}

// WithInterpolation inserts intermediate points whenever a push lands more
// than step units from the previous point, following the curve through the
// last two points and the new one. Zero (the default) disables it.
//
// Interpolated points count against the capacity like pushed ones.
func WithInterpolation(step float64) Option {
	return func(o *options) {
		o.interpolation = max(step, 0)
	}
}

// WithDrainedFunc registers fn to be called once, when a finishing ribbon
// runs out of points. Owners use it to detach the ribbon from their scene.
func WithDrainedFunc(fn func()) Option {
	return func(o *options) {
		o.onDrained = fn
	}
}

// validInterval reports whether seconds can drive the decay timer. NaN would
// never retire a point and +Inf would stall a finishing ribbon forever.
func validInterval(seconds float64) bool {
	return seconds > 0 && !math.IsInf(seconds, 1)
}
