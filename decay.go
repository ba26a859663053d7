package blade

import "math"

// State is the decay state of a Ribbon.
type State uint8

const (
	// Idle retires points only on explicit Pop or capacity pressure.
	Idle State = iota

	// AutoDimming retires one point every retire interval.
	AutoDimming

	// Finishing refuses new points and retires one every retire interval
	// until the ribbon is empty.
	Finishing

	// Drained is terminal: the ribbon finished and holds no points.
	Drained
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case AutoDimming:
		return "AutoDimming"
	case Finishing:
		return "Finishing"
	case Drained:
		return "Drained"
	default:
		return "Unknown"
	}
}

// retireEpsilon absorbs float accumulation error, so that time steps
// summing to k intervals retire exactly k points.
const retireEpsilon = 1e-9

// decayTimer is the time-driven half of the ribbon: it owns the state and
// turns elapsed time into a number of retirements.
type decayTimer struct {
	state    State
	interval float64
	elapsed  float64
}

// active reports whether time advances the timer in the current state.
func (d *decayTimer) active() bool {
	return d.state == AutoDimming || d.state == Finishing
}

// dim switches between Idle and AutoDimming. It reports whether the state
// changed; Finishing and Drained ignore it.
func (d *decayTimer) dim(enabled bool) bool {
	switch {
	case enabled && d.state == Idle:
		d.state = AutoDimming
		d.elapsed = 0
		return true
	case !enabled && d.state == AutoDimming:
		d.state = Idle
		d.elapsed = 0
		return true
	}
	return false
}

// finish enters Finishing, or Drained directly when nothing is left.
// The timer keeps its accumulated time so an ongoing cadence is not reset.
func (d *decayTimer) finish(empty bool) {
	if d.state == Finishing || d.state == Drained {
		return
	}
	if empty {
		d.state = Drained
		return
	}
	d.state = Finishing
}

// advance adds dt and returns how many retirements are due.
func (d *decayTimer) advance(dt float64) int {
	if !d.active() || dt <= 0 || math.IsNaN(dt) {
		return 0
	}
	d.elapsed += dt
	if math.IsInf(d.elapsed, 1) {
		d.elapsed = 0
		return math.MaxInt32
	}
	due := math.Floor((d.elapsed + retireEpsilon) / d.interval)
	if due < 1 {
		return 0
	}
	d.elapsed = max(d.elapsed-due*d.interval, 0)
	if due > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(due)
}
