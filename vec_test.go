package bcc

import "testing"

func TestPoint3Arithmetic(t *testing.T) {
	a := Pt3(1, 2, 3)
	b := Pt3(4, 5, 6)

	if got := a.Add(b); got != Pt3(5, 7, 9) {
		t.Errorf("Add = %v, want (5, 7, 9)", got)
	}
	if got := b.Sub(a); got != Pt3(3, 3, 3) {
		t.Errorf("Sub = %v, want (3, 3, 3)", got)
	}
	if got := a.Scale(2); got != Pt3(2, 4, 6) {
		t.Errorf("Scale = %v, want (2, 4, 6)", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
}

func TestPoint3Cross(t *testing.T) {
	x := Pt3(1, 0, 0)
	y := Pt3(0, 1, 0)
	if got := x.Cross(y); got != Pt3(0, 0, 1) {
		t.Errorf("Cross = %v, want (0, 0, 1)", got)
	}
	if got := y.Cross(x); got != Pt3(0, 0, -1) {
		t.Errorf("Cross reversed = %v, want (0, 0, -1)", got)
	}
}

func TestPoint3LengthDistance(t *testing.T) {
	p := Pt3(3, 4, 0)
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := Pt3(1, 1, 1).Distance(Pt3(1, 1, 1)); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
}

func TestPoint3Lerp(t *testing.T) {
	a := Pt3(0, 0, 0)
	b := Pt3(2, 4, 6)
	if got := a.Lerp(b, 0.5); got != Pt3(1, 2, 3) {
		t.Errorf("Lerp(0.5) = %v, want (1, 2, 3)", got)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
}
