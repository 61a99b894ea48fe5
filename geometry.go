package bcc

import (
	"math"

	"github.com/gogpu/gputypes"
)

// RestartIndex is the primitive-restart sentinel: the maximum uint32,
// reserved exclusively to separate line strips within a shared index
// buffer. It is never a valid control-point index.
const RestartIndex = uint32(math.MaxUint32)

// Geometry is renderable line-strip geometry built from a Collection.
// Positions are in the Y-up convention regardless of the source file's
// coordinate system. The host rendering layer owns uploading the buffers
// to its own mesh type.
type Geometry struct {
	// Positions holds one vertex per control point, order-preserving.
	Positions []Point3

	// Indices packs every curve as a connected line strip, separated by
	// RestartIndex. A looping curve repeats its first index at the end
	// of its strip.
	Indices []uint32

	// Topology is always gputypes.PrimitiveTopologyLineStrip.
	Topology gputypes.PrimitiveTopology

	// IndexFormat is always gputypes.IndexFormatUint32, matching the
	// width of Indices and RestartIndex.
	IndexFormat gputypes.IndexFormat
}

// BuildGeometry converts a Collection into line-strip geometry.
//
// The operation is pure: it never mutates the Collection, and repeated
// calls yield identical output. Multiple goroutines may build geometry
// from the same Collection concurrently.
//
// The collection must be 3-dimensional (always true for a parsed one) and
// its control points must fit the uint32 index width with the sentinel
// value left over; violations return ErrInvalidDimensions and
// *IndexOverflowError respectively.
func BuildGeometry(c *Collection) (*Geometry, error) {
	if c.header.Dimensions() != pointDimensions {
		return nil, ErrInvalidDimensions
	}

	total := c.FirstControlPoint(c.NumCurves())
	// The sentinel is reserved, so RestartIndex itself must never be a
	// valid offset.
	if uint64(total) >= uint64(RestartIndex) {
		return nil, &IndexOverflowError{ControlPoints: total, Max: RestartIndex - 1}
	}

	positions := make([]Point3, total)
	pts := c.ControlPoints()
	switch c.header.UpDirection() {
	case UpY:
		for i := range positions {
			positions[i] = Point3{X: pts[i*3], Y: pts[i*3+1], Z: pts[i*3+2]}
		}
	case UpZ:
		// Normalize into the Y-up convention.
		for i := range positions {
			positions[i] = Point3{X: pts[i*3], Y: -pts[i*3+2], Z: pts[i*3+1]}
		}
	default:
		return nil, ErrInvalidUpDirection
	}

	numCurves := c.NumCurves()
	loopingCurves := 0
	for i := 0; i < numCurves; i++ {
		if c.Looping(i) {
			loopingCurves++
		}
	}

	// All control points, +1 per looping curve for the closing repeat,
	// +1 per strip boundary for the restart sentinel.
	indicesLen := total + loopingCurves
	if numCurves > 0 {
		indicesLen += numCurves - 1
	}

	indices := make([]uint32, 0, indicesLen)
	for i := 0; i < numCurves; i++ {
		l := uint32(c.FirstControlPoint(i))
		r := uint32(c.FirstControlPoint(i + 1))
		for idx := l; idx < r; idx++ {
			indices = append(indices, idx)
		}
		if c.Looping(i) {
			indices = append(indices, l)
		}
		if int(r) != total {
			indices = append(indices, RestartIndex)
		}
	}

	if len(indices) != indicesLen {
		// Trailing empty curves emit fewer restarts than the capacity
		// formula predicts.
		return nil, ErrCorruptData
	}

	return &Geometry{
		Positions:   positions,
		Indices:     indices,
		Topology:    gputypes.PrimitiveTopologyLineStrip,
		IndexFormat: gputypes.IndexFormatUint32,
	}, nil
}
