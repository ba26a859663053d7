package blade

// trailPoint is one entry of the point ring together with the data the
// geometry builder derives from it at push time.
type trailPoint struct {
	pos Point

	// dir is the unit direction of the segment arriving at pos. For a
	// segment's first point, or when every earlier step was degenerate,
	// it holds a placeholder until a valid direction shows up.
	dir   Point
	valid bool

	// dist is the arc length from the segment's first point to pos.
	dist float64

	// start marks the first point of a segment created by a reset.
	start bool
}

// pointRing is a fixed-capacity FIFO of trail points addressed by head
// index and count. Index 0 is always the oldest point.
type pointRing struct {
	data  []trailPoint
	head  int
	count int
}

func newPointRing(capacity int) *pointRing {
	return &pointRing{data: make([]trailPoint, capacity)}
}

// Len returns the number of points held.
func (r *pointRing) Len() int { return r.count }

// Cap returns the fixed capacity.
func (r *pointRing) Cap() int { return len(r.data) }

func (r *pointRing) full() bool { return r.count == len(r.data) }

// at returns the i-th point counting from the oldest.
func (r *pointRing) at(i int) *trailPoint {
	return &r.data[(r.head+i)%len(r.data)]
}

// last returns the newest point, or nil when the ring is empty.
func (r *pointRing) last() *trailPoint {
	if r.count == 0 {
		return nil
	}
	return r.at(r.count - 1)
}

// push appends tp, evicting the oldest point first when the ring is full.
// It reports whether an eviction happened.
func (r *pointRing) push(tp trailPoint) bool {
	evicted := false
	if r.full() {
		r.pop(1)
		evicted = true
	}
	r.data[(r.head+r.count)%len(r.data)] = tp
	r.count++
	return evicted
}

// pop retires up to n oldest points and returns how many were removed.
func (r *pointRing) pop(n int) int {
	n = min(max(n, 0), r.count)
	if n == 0 {
		return 0
	}
	r.head = (r.head + n) % len(r.data)
	r.count -= n
	if r.count == 0 {
		r.head = 0
	}
	return n
}

// clear drops every point.
func (r *pointRing) clear() {
	r.head = 0
	r.count = 0
}

// appendTo appends the positions of all points, oldest first, to dst.
func (r *pointRing) appendTo(dst []Point) []Point {
	for i := range r.count {
		dst = append(dst, r.at(i).pos)
	}
	return dst
}
