package blade

import "fmt"

// Ribbon is a blade trail: a bounded history of points following a moving
// tip, the ribbon mesh derived from it, and the decay timer that fades it.
//
// A Ribbon is not safe for concurrent use. It is meant to be driven from a
// single update/render loop; callers on several goroutines must serialize
// access themselves.
type Ribbon struct {
	ring  *pointRing
	decay decayTimer
	geom  geometryBuilder

	width         float64
	texture       any
	autoDim       bool
	resetPending  bool
	taper         bool
	textureLength float64
	interpolation float64
	onDrained     func()

	// dirty is set by every change that invalidates the mesh.
	dirty bool
}

// New creates a Ribbon holding at most capacity points.
// The capacity must be within [2, MaxCapacity].
func New(capacity int, opts ...Option) (*Ribbon, error) {
	if capacity < 2 {
		Logger().Debug("blade: rejected ribbon capacity", "capacity", capacity)
		return nil, fmt.Errorf("%w: got %d", ErrCapacityTooSmall, capacity)
	}
	if capacity > MaxCapacity {
		Logger().Debug("blade: rejected ribbon capacity", "capacity", capacity)
		return nil, fmt.Errorf("%w: got %d, max %d", ErrCapacityTooLarge, capacity, MaxCapacity)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Ribbon{
		ring:          newPointRing(capacity),
		decay:         decayTimer{interval: o.retireInterval},
		width:         o.width,
		texture:       o.texture,
		taper:         o.taper,
		textureLength: o.textureLength,
		interpolation: o.interpolation,
		onDrained:     o.onDrained,
	}
	if o.autoDim {
		r.Dim(true)
	}
	return r, nil
}

// Push appends p as the newest point.
//
// A full ribbon retires its oldest point first, so the count never exceeds
// PointLimit. After Reset, p starts a new segment that is not connected to
// the previous points. Push is ignored once Finish has been called.
func (r *Ribbon) Push(p Point) {
	if r.finishing() {
		return
	}

	prev := r.ring.last()
	if r.resetPending || prev == nil || r.interpolation <= 0 {
		r.appendPoint(p)
		return
	}

	steps := interpolationSteps(prev.pos.Distance(p), r.interpolation)
	if steps == 1 {
		r.appendPoint(p)
		return
	}

	// Curve through the point before prev (if it is in the same segment),
	// prev and p; a straight line otherwise.
	p1 := prev.pos
	p0, curved := Point{}, false
	if n := r.ring.Len(); n >= 2 && !prev.start {
		p0, curved = r.ring.at(n-2).pos, true
	}
	// Only the newest PointLimit points of the jump survive, so the older
	// intermediate points are never generated.
	for k := min(steps, r.ring.Cap()) - 1; k >= 1; k-- {
		t := float64(steps-k) / float64(steps)
		if curved {
			r.appendPoint(lagrange(p0, p1, p, 1+t))
		} else {
			r.appendPoint(p1.Lerp(p, t))
		}
	}
	r.appendPoint(p)
}

// appendPoint links p to the current segment (or starts a new one) and
// stores it in the ring.
func (r *Ribbon) appendPoint(p Point) {
	tp := trailPoint{pos: p, dir: Pt(1, 0), start: true}

	prev := r.ring.last()
	if prev != nil && !r.resetPending {
		tp.start = false
		step := p.Sub(prev.pos)
		if l := step.Length(); l > degenerateEpsilon {
			tp.dir = step.Div(l)
			tp.valid = true
			tp.dist = prev.dist + l
			if !prev.valid {
				r.backfillDirection(tp.dir)
			}
		} else {
			tp.dir = prev.dir
			tp.valid = prev.valid
			tp.dist = prev.dist
		}
	}
	if r.resetPending {
		r.resetPending = false
		if prev != nil {
			Logger().Debug("blade: starting new segment", "points", r.ring.Len())
		}
	}

	r.ring.push(tp)
	r.dirty = true
}

// backfillDirection gives the leading coincident points of the newest
// segment the first valid direction found in it.
func (r *Ribbon) backfillDirection(dir Point) {
	for i := r.ring.Len() - 1; i >= 0; i-- {
		tp := r.ring.at(i)
		if tp.valid {
			return
		}
		tp.dir = dir
		if tp.start {
			return
		}
	}
}

// Pop retires the n oldest points. Values of n larger than Len are clamped;
// n <= 0 does nothing.
func (r *Ribbon) Pop(n int) {
	if n < 0 {
		Logger().Debug("blade: ignoring negative pop", "n", n)
		return
	}
	if r.ring.pop(n) > 0 {
		r.dirty = true
		r.checkDrained()
	}
}

// Clear retires every point. It leaves a pending reset and the finishing
// state untouched; a finishing ribbon becomes drained.
func (r *Ribbon) Clear() {
	if r.ring.Len() > 0 {
		r.ring.clear()
		r.dirty = true
	}
	r.checkDrained()
}

// Reset makes the next pushed point start a new segment, disconnected from
// the current points. Reset is ignored once Finish has been called.
func (r *Ribbon) Reset() {
	if r.finishing() {
		return
	}
	r.resetPending = true
}

// ResetPending reports whether the next push starts a new segment.
func (r *Ribbon) ResetPending() bool {
	return r.resetPending
}

// Dim enables or disables auto-dimming. While enabled, Update retires one
// point every retire interval even when no points are pushed.
func (r *Ribbon) Dim(enabled bool) {
	r.autoDim = enabled
	if r.decay.dim(enabled) {
		Logger().Debug("blade: decay state changed", "state", r.decay.state)
	}
}

// AutoDim reports whether auto-dimming was requested.
func (r *Ribbon) AutoDim() bool {
	return r.autoDim
}

// Finish stops the ribbon from accepting points and lets it drain at the
// retire cadence regardless of AutoDim. Finish is irreversible.
func (r *Ribbon) Finish() {
	if r.finishing() {
		return
	}
	r.resetPending = false
	r.decay.finish(r.ring.Len() == 0)
	Logger().Debug("blade: decay state changed", "state", r.decay.state)
	if r.decay.state == Drained {
		r.drained()
	}
}

// Update advances the decay timer by dt seconds and retires the points that
// fell due. Non-positive dt is ignored.
func (r *Ribbon) Update(dt float64) {
	due := r.decay.advance(dt)
	if due == 0 {
		return
	}
	r.Pop(due)
	if r.ring.Len() == 0 {
		// Nothing left to retire; do not bank time for later pushes.
		r.decay.elapsed = 0
	}
}

// finishing reports whether Finish has been called.
func (r *Ribbon) finishing() bool {
	return r.decay.state == Finishing || r.decay.state == Drained
}

// checkDrained moves a finishing ribbon to Drained once it is empty.
func (r *Ribbon) checkDrained() {
	if r.decay.state != Finishing || r.ring.Len() != 0 {
		return
	}
	r.decay.state = Drained
	r.drained()
}

func (r *Ribbon) drained() {
	Logger().Info("blade: ribbon drained")
	if fn := r.onDrained; fn != nil {
		r.onDrained = nil
		fn()
	}
}

// State returns the current decay state.
func (r *Ribbon) State() State {
	return r.decay.state
}

// Finishing reports whether Finish has been called.
func (r *Ribbon) Finishing() bool {
	return r.finishing()
}

// Drained reports whether the ribbon finished and ran out of points.
// The owner can discard a drained ribbon.
func (r *Ribbon) Drained() bool {
	return r.decay.state == Drained
}

// Live reports whether the ribbon has geometry to draw. A segment needs at
// least three points before it covers any area.
func (r *Ribbon) Live() bool {
	return !r.Mesh().Empty()
}

// Len returns the number of points held.
func (r *Ribbon) Len() int {
	return r.ring.Len()
}

// PointLimit returns the capacity given to New.
func (r *Ribbon) PointLimit() int {
	return r.ring.Cap()
}

// Path returns a copy of the current points, oldest first.
func (r *Ribbon) Path() []Point {
	return r.ring.appendTo(make([]Point, 0, r.ring.Len()))
}

// Segments returns the number of disconnected segments held.
func (r *Ribbon) Segments() int {
	n := r.ring.Len()
	if n == 0 {
		return 0
	}
	segments := 1
	for i := 1; i < n; i++ {
		if r.ring.at(i).start {
			segments++
		}
	}
	return segments
}

// Width returns the ribbon half-thickness.
func (r *Ribbon) Width() float64 {
	return r.width
}

// SetWidth sets the ribbon half-thickness. Negative values are clamped to 0.
func (r *Ribbon) SetWidth(w float64) {
	if w < 0 {
		Logger().Debug("blade: clamping negative width", "width", w)
		w = 0
	}
	if w != r.width {
		r.width = w
		r.dirty = true
	}
}

// Texture returns the texture handle.
func (r *Ribbon) Texture() any {
	return r.texture
}

// SetTexture sets the texture handle.
func (r *Ribbon) SetTexture(tex any) {
	r.texture = tex
}

// RetireInterval returns the decay cadence in seconds.
func (r *Ribbon) RetireInterval() float64 {
	return r.decay.interval
}

// SetRetireInterval sets the decay cadence in seconds. Values that are not
// positive and finite are ignored.
func (r *Ribbon) SetRetireInterval(seconds float64) {
	if !validInterval(seconds) {
		Logger().Debug("blade: ignoring invalid retire interval", "seconds", seconds)
		return
	}
	r.decay.interval = seconds
}

// VertexCount returns the number of vertices in the current mesh.
func (r *Ribbon) VertexCount() int {
	r.rebuild()
	return len(r.geom.vertices)
}

// Mesh returns the current geometry, rebuilding it if points or width
// changed since the last call. The returned slices are owned by the ribbon
// and valid until the next mutating call.
func (r *Ribbon) Mesh() Mesh {
	r.rebuild()
	return Mesh{
		Vertices:  r.geom.vertices,
		TexCoords: r.geom.texCoords,
		Indices:   r.geom.indices,
		Spans:     r.geom.spans,
		Texture:   r.texture,
	}
}

func (r *Ribbon) rebuild() {
	if !r.dirty {
		return
	}
	r.geom.build(r.ring, geometryParams{
		width:         r.width,
		taper:         r.taper,
		textureLength: r.textureLength,
	})
	r.dirty = false
}
