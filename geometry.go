package blade

import "math"

// miterLimit caps how far a join vertex may be pushed out on sharp turns,
// as a multiple of the ribbon width.
const miterLimit = 2.0

// degenerateEpsilon is the step length below which two consecutive points
// are treated as coincident.
const degenerateEpsilon = 1e-9

// Span is the vertex range of one continuous segment inside a Mesh.
type Span struct {
	First int
	Count int
}

// Mesh is a renderable snapshot of a Ribbon.
//
// Vertices and TexCoords are parallel; Indices describe a triangle list
// over Vertices. Each segment is laid out as a triangle strip (tail tip,
// interior left/right pairs, head tip) and Spans records where it lives.
//
// The slices are borrowed from the ribbon and stay valid only until the
// next mutating call.
type Mesh struct {
	Vertices  []Point
	TexCoords []Point
	Indices   []uint16
	Spans     []Span
	Texture   any
}

// Empty reports whether the mesh has no triangles to draw.
func (m Mesh) Empty() bool {
	return len(m.Indices) == 0
}

// Fades writes, for every vertex, its position along its segment from 0 at
// the tail tip to 1 at the head tip. dst is reused when large enough.
func (m Mesh) Fades(dst []float32) []float32 {
	if cap(dst) < len(m.Vertices) {
		dst = make([]float32, len(m.Vertices))
	}
	dst = dst[:len(m.Vertices)]

	for _, s := range m.Spans {
		// A span of c vertices covers c/2+1 points; vertex t belongs to
		// point (t+1)/2.
		last := float32(s.Count / 2)
		for t := range s.Count {
			dst[s.First+t] = float32((t+1)/2) / last
		}
	}
	return dst
}

// geometryParams are the ribbon settings the builder reads.
type geometryParams struct {
	width         float64
	taper         bool
	textureLength float64
}

// geometryBuilder owns the vertex buffers and reuses them across rebuilds.
type geometryBuilder struct {
	vertices  []Point
	texCoords []Point
	indices   []uint16
	spans     []Span
}

// build regenerates the mesh for every segment in the ring.
func (b *geometryBuilder) build(r *pointRing, p geometryParams) {
	b.vertices = b.vertices[:0]
	b.texCoords = b.texCoords[:0]
	b.indices = b.indices[:0]
	b.spans = b.spans[:0]

	n := r.Len()
	for first := 0; first < n; {
		last := first + 1
		for last < n && !r.at(last).start {
			last++
		}
		b.buildSegment(r, first, last, p)
		first = last
	}
}

// buildSegment emits the strip for points [first, end).
func (b *geometryBuilder) buildSegment(r *pointRing, first, end int, p geometryParams) {
	k := end - first
	if k < 2 {
		return
	}

	base := len(b.vertices)
	startDist := r.at(first).dist
	length := r.at(end-1).dist - startDist

	u := func(j int) float64 {
		d := r.at(first+j).dist
		switch {
		case p.textureLength > 0:
			return d / p.textureLength
		case length > degenerateEpsilon:
			return (d - startDist) / length
		default:
			return float64(j) / float64(k-1)
		}
	}

	// Tail tip.
	b.vertices = append(b.vertices, r.at(first).pos)
	b.texCoords = append(b.texCoords, Pt(u(0), 0.5))

	for j := 1; j < k-1; j++ {
		tp := r.at(first + j)
		w := p.width
		if p.taper {
			w *= float64(j) / float64(k-1)
		}
		off := joinNormal(tp.dir, r.at(first+j+1).dir).Mul(w)
		uj := u(j)
		b.vertices = append(b.vertices, tp.pos.Add(off), tp.pos.Sub(off))
		b.texCoords = append(b.texCoords, Pt(uj, 0), Pt(uj, 1))
	}

	// Head tip.
	b.vertices = append(b.vertices, r.at(end-1).pos)
	b.texCoords = append(b.texCoords, Pt(u(k-1), 0.5))

	count := len(b.vertices) - base
	for t := 0; t+2 < count; t++ {
		i := uint16(base + t) //nolint:gosec // base+count <= 2*MaxCapacity-2
		b.indices = append(b.indices, i, i+1, i+2)
	}
	b.spans = append(b.spans, Span{First: base, Count: count})
}

// joinNormal returns the offset direction at a point between an incoming
// direction in and an outgoing direction out. The two segment normals are
// averaged and lengthened so the ribbon keeps its width across the turn,
// up to miterLimit.
func joinNormal(in, out Point) Point {
	n0 := in.Perp()
	sum := n0.Add(out.Perp())
	if sum.Length() < degenerateEpsilon {
		// Full reversal: the normals cancel out.
		return n0
	}
	avg := sum.Normalize()
	cos := avg.Dot(n0)
	if cos <= 1/miterLimit {
		return avg.Mul(miterLimit)
	}
	return avg.Div(cos)
}

// lagrange evaluates the quadratic through p0, p1, p2 placed at t = 0, 1, 2.
func lagrange(p0, p1, p2 Point, t float64) Point {
	a := (t - 1) * (t - 2) / 2
	b := -t * (t - 2)
	c := t * (t - 1) / 2
	return p0.Mul(a).Add(p1.Mul(b)).Add(p2.Mul(c))
}

// maxInterpolationSteps bounds the step count so huge jumps (or infinite
// ones) still convert to an int.
const maxInterpolationSteps = math.MaxInt32

// interpolationSteps returns how many pieces a jump of dist should be cut
// into for the given step length.
func interpolationSteps(dist, step float64) int {
	if !(step > 0) || !(dist > step) {
		return 1
	}
	return int(math.Min(math.Ceil(dist/step), maxInterpolationSteps))
}
