package blade

import (
	"math"
	"testing"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Idle, "Idle"},
		{AutoDimming, "AutoDimming"},
		{Finishing, "Finishing"},
		{Drained, "Drained"},
		{State(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestDecayTimer_Dim(t *testing.T) {
	d := decayTimer{interval: 0.1}

	if !d.dim(true) || d.state != AutoDimming {
		t.Fatalf("dim(true) from Idle: state = %v, want AutoDimming", d.state)
	}
	if d.dim(true) {
		t.Error("dim(true) while AutoDimming should not report a change")
	}
	if !d.dim(false) || d.state != Idle {
		t.Fatalf("dim(false) from AutoDimming: state = %v, want Idle", d.state)
	}

	d.finish(false)
	if d.dim(false) || d.dim(true) {
		t.Error("dim should not change a finishing timer")
	}
	if d.state != Finishing {
		t.Errorf("state = %v, want Finishing", d.state)
	}
}

func TestDecayTimer_Finish(t *testing.T) {
	tests := []struct {
		name  string
		from  State
		empty bool
		want  State
	}{
		{"idle with points", Idle, false, Finishing},
		{"dimming with points", AutoDimming, false, Finishing},
		{"idle empty", Idle, true, Drained},
		{"already finishing", Finishing, true, Finishing},
		{"drained stays", Drained, false, Drained},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decayTimer{state: tt.from, interval: 0.1}
			d.finish(tt.empty)
			if d.state != tt.want {
				t.Errorf("state = %v, want %v", d.state, tt.want)
			}
		})
	}
}

func TestDecayTimer_Advance(t *testing.T) {
	tests := []struct {
		name  string
		state State
		steps []float64
		want  int
	}{
		{"idle ignores time", Idle, []float64{1, 1}, 0},
		{"drained ignores time", Drained, []float64{1}, 0},
		{"below interval", AutoDimming, []float64{0.05}, 0},
		{"exact interval", AutoDimming, []float64{0.1}, 1},
		{"two halves", AutoDimming, []float64{0.05, 0.05}, 1},
		{"quarters", Finishing, []float64{0.025, 0.025, 0.025, 0.025, 0.025, 0.025, 0.025, 0.025}, 2},
		{"stall", Finishing, []float64{0.35}, 3},
		{"negative ignored", AutoDimming, []float64{-1, 0.1}, 1},
		{"nan ignored", AutoDimming, []float64{math.NaN(), 0.1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decayTimer{state: tt.state, interval: 0.1}
			got := 0
			for _, dt := range tt.steps {
				got += d.advance(dt)
			}
			if got != tt.want {
				t.Errorf("retirements = %d, want %d", got, tt.want)
			}
			if d.elapsed < 0 {
				t.Errorf("elapsed = %v, must not go negative", d.elapsed)
			}
		})
	}
}

func TestDecayTimer_CadenceOverManyFrames(t *testing.T) {
	d := decayTimer{state: AutoDimming, interval: 1.0 / 60}
	got := 0
	// One second at 240 Hz.
	for range 240 {
		got += d.advance(1.0 / 240)
	}
	if got != 60 {
		t.Errorf("retirements over one second = %d, want 60", got)
	}
}
