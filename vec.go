package bcc

import "math"

// Point3 represents a 3D point or vector with float32 components,
// matching the precision of the BCC wire format.
type Point3 struct {
	X, Y, Z float32
}

// Pt3 is a convenience function to create a Point3.
func Pt3(x, y, z float32) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// Add returns the sum of two points (vector addition).
func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point3) Sub(q Point3) Point3 {
	return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns the point scaled by a scalar.
func (p Point3) Scale(s float32) Point3 {
	return Point3{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Dot returns the dot product of two vectors.
func (p Point3) Dot(q Point3) float32 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product of two vectors.
func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the length of the vector.
func (p Point3) Length() float32 {
	return float32(math.Sqrt(float64(p.Dot(p))))
}

// Distance returns the distance between two points.
func (p Point3) Distance(q Point3) float32 {
	return p.Sub(q).Length()
}

// Lerp returns the linear interpolation between p and q at parameter t.
func (p Point3) Lerp(q Point3, t float32) Point3 {
	return p.Add(q.Sub(p).Scale(t))
}
