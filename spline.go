package bcc

// Spline evaluates a uniform Catmull-Rom curve over an ordered list of
// control points, the curve type carried by BCC files. The curve
// interpolates every control point. A closed spline wraps its ends, an
// open spline clamps them.
type Spline struct {
	points []Point3
	closed bool
}

// NewSpline creates a spline over the given control points. The slice is
// referenced, not copied; callers must not modify it while the spline is
// in use.
func NewSpline(points []Point3, closed bool) Spline {
	return Spline{points: points, closed: closed}
}

// CurveSpline creates a spline over curve n of the collection, closed iff
// the curve is looping. Valid for n in [0, NumCurves()).
func CurveSpline(c *Collection, n int) Spline {
	count := c.NumCurvePoints(n)
	points := make([]Point3, count)
	for i := range points {
		points[i] = c.CurvePoint(n, i)
	}
	return Spline{points: points, closed: c.Looping(n)}
}

// Closed reports whether the spline wraps from its last control point
// back to its first.
func (s Spline) Closed() bool {
	return s.closed
}

// NumSegments returns the number of cubic segments of the spline.
// An open spline over k points has k-1 segments, a closed one has k.
func (s Spline) NumSegments() int {
	switch {
	case len(s.points) < 2:
		return 0
	case s.closed:
		return len(s.points)
	default:
		return len(s.points) - 1
	}
}

// Eval evaluates the spline at parameter t in [0, 1], spread uniformly
// across all segments. Eval(0) is the first control point; Eval(1) is the
// last for an open spline and the first again for a closed one.
func (s Spline) Eval(t float32) Point3 {
	if len(s.points) == 0 {
		return Point3{}
	}
	if len(s.points) == 1 {
		return s.points[0]
	}

	segments := s.NumSegments()
	u := t * float32(segments)
	// Clamp before truncating: int(u) rounds toward zero, so small
	// negative u would land in segment 0 with a negative local parameter.
	if u < 0 {
		u = 0
	}
	seg := int(u)
	if seg >= segments {
		seg = segments - 1
		u = float32(segments)
	}
	return s.evalSegment(seg, u-float32(seg))
}

// Flatten samples the spline into a polyline with the given number of
// segments per spline segment.
func (s Spline) Flatten(perSegment int) []Point3 {
	segments := s.NumSegments()
	if segments == 0 || perSegment < 1 {
		return append([]Point3(nil), s.points...)
	}
	out := make([]Point3, 0, segments*perSegment+1)
	for seg := 0; seg < segments; seg++ {
		for i := 0; i < perSegment; i++ {
			out = append(out, s.evalSegment(seg, float32(i)/float32(perSegment)))
		}
	}
	out = append(out, s.evalSegment(segments-1, 1))
	return out
}

// evalSegment evaluates segment seg at local parameter u in [0, 1] using
// the uniform Catmull-Rom basis.
func (s Spline) evalSegment(seg int, u float32) Point3 {
	p0 := s.points[s.clampIndex(seg-1)]
	p1 := s.points[s.clampIndex(seg)]
	p2 := s.points[s.clampIndex(seg+1)]
	p3 := s.points[s.clampIndex(seg+2)]

	u2 := u * u
	u3 := u2 * u

	a := p1.Scale(2)
	b := p2.Sub(p0).Scale(u)
	c := p0.Scale(2).Sub(p1.Scale(5)).Add(p2.Scale(4)).Sub(p3).Scale(u2)
	d := p3.Sub(p0).Add(p1.Sub(p2).Scale(3)).Scale(u3)

	return a.Add(b).Add(c).Add(d).Scale(0.5)
}

// clampIndex maps a possibly out-of-range control index into the point
// list: modular for closed splines, clamped for open ones.
func (s Spline) clampIndex(i int) int {
	n := len(s.points)
	if s.closed {
		return ((i % n) + n) % n
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
