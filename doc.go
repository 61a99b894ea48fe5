// Package bcc reads and writes BCC binary curve collection files.
//
// # Overview
//
// BCC is a compact binary format for collections of piecewise Catmull-Rom
// curves with uniform parameterization in 3D space, originally defined by
// Cem Yuksel for yarn-level cloth models. A file holds a fixed 64-byte
// header followed by one record per curve: a signed 32-bit point count
// (negative means the curve loops back to its first point) and the curve's
// control points as little-endian 32-bit floats.
//
// # Quick Start
//
//	import "github.com/gogpu/bcc"
//
//	f, err := os.Open("yarn.bcc")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	// Decode the file into an immutable Collection.
//	c, err := bcc.Parse(f)
//	if err != nil {
//	    return err
//	}
//
//	// Convert to line-strip geometry ready for upload.
//	geom, err := bcc.BuildGeometry(c)
//	if err != nil {
//	    return err
//	}
//	_ = geom.Positions // []Point3, Y-up
//	_ = geom.Indices   // []uint32 with bcc.RestartIndex separators
//
// # Decoding
//
// Parse reads a blocking io.Reader. ParseContext runs the identical decode
// but observes context cancellation at every read boundary, for use inside
// asset pipelines that need cooperative shutdown. Both produce bit-identical
// Collections for the same input.
//
// # Geometry
//
// BuildGeometry turns a Collection into positions plus a single index
// buffer packing all curves as connected line strips. Strips are separated
// by RestartIndex (the maximum uint32, reserved exclusively as the
// primitive-restart sentinel). Z-up files are normalized to the Y-up
// convention used by the gogpu stack.
//
// The Collection is immutable after decoding and safe for concurrent use,
// including concurrent BuildGeometry calls.
//
// # Scope
//
// The package is a pure codec: it does not render, cache, or upload
// anything. Hosts wire Parse and BuildGeometry into their own asset and
// rendering layers.
package bcc
