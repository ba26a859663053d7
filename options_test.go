package blade

import (
	"math"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.width != DefaultWidth {
		t.Errorf("width = %v, want %v", o.width, DefaultWidth)
	}
	if o.retireInterval != DefaultRetireInterval {
		t.Errorf("retireInterval = %v, want %v", o.retireInterval, DefaultRetireInterval)
	}
	if o.autoDim || o.taper || o.textureLength != 0 || o.interpolation != 0 {
		t.Errorf("unexpected non-zero defaults: %+v", o)
	}
}

func TestOptions_Clamping(t *testing.T) {
	tests := []struct {
		name  string
		opt   Option
		check func(o options) bool
	}{
		{"negative width", WithWidth(-3), func(o options) bool { return o.width == 0 }},
		{"width", WithWidth(7), func(o options) bool { return o.width == 7 }},
		{"zero interval ignored", WithRetireInterval(0), func(o options) bool { return o.retireInterval == DefaultRetireInterval }},
		{"negative interval ignored", WithRetireInterval(-1), func(o options) bool { return o.retireInterval == DefaultRetireInterval }},
		{"NaN interval ignored", WithRetireInterval(math.NaN()), func(o options) bool { return o.retireInterval == DefaultRetireInterval }},
		{"infinite interval ignored", WithRetireInterval(math.Inf(1)), func(o options) bool { return o.retireInterval == DefaultRetireInterval }},
		{"interval", WithRetireInterval(0.25), func(o options) bool { return o.retireInterval == 0.25 }},
		{"negative texture length", WithTextureLength(-1), func(o options) bool { return o.textureLength == 0 }},
		{"negative interpolation", WithInterpolation(-1), func(o options) bool { return o.interpolation == 0 }},
		{"taper", WithTaper(true), func(o options) bool { return o.taper }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			if !tt.check(o) {
				t.Errorf("unexpected options after apply: %+v", o)
			}
		})
	}
}

func TestWithAutoDimStartsDimming(t *testing.T) {
	r := newTestRibbon(t, 4, WithAutoDim(true))
	if r.State() != AutoDimming || !r.AutoDim() {
		t.Errorf("State() = %v, AutoDim() = %v, want AutoDimming/true", r.State(), r.AutoDim())
	}
}
