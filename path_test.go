package orbital2d

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestEllipsePoints(t *testing.T) {
	focus := Vector2{3, -2}
	for _, e := range []float64{0, 0.2, 0.6, 0.9} {
		for _, ω := range []float64{0, 0.7, 3} {
			o := NewOrbit(e, 10, ω, 1)
			points, err := EllipsePoints(o, focus, 64)
			if err != nil {
				t.Fatal(err)
			}
			if len(points) != 64 {
				t.Fatalf("%d points", len(points))
			}
			other := o.Centroid(focus).Scale(2).Sub(focus)
			for i, p := range points {
				if d := p.Sub(focus).Norm() + p.Sub(other).Norm(); !floats.EqualWithinAbs(d, 20, 1e-9) {
					t.Fatalf("e=%f ω=%f point %d: sum of focal distances %f", e, ω, i, d)
				}
			}
			if rP := points[0].Sub(focus).Norm(); !floats.EqualWithinAbs(rP, o.Periapsis(), 1e-9) {
				t.Fatalf("e=%f ω=%f: first point at %f from focus, periapsis is %f", e, ω, rP, o.Periapsis())
			}
			if rA := points[32].Sub(focus).Norm(); !floats.EqualWithinAbs(rA, o.Apoapsis(), 1e-9) {
				t.Fatalf("e=%f ω=%f: middle point at %f from focus, apoapsis is %f", e, ω, rA, o.Apoapsis())
			}
			// Counter clockwise.
			if points[0].Sub(focus).Cross(points[1].Sub(focus)) <= 0 {
				t.Fatalf("e=%f ω=%f: points are clockwise", e, ω)
			}
		}
	}
}

func TestEllipsePointsErrors(t *testing.T) {
	if _, err := EllipsePoints(NewOrbit(0.1, 10, 0, 1), Vector2{}, 2); !errors.Is(err, ErrResolution) {
		t.Fatalf("expected %s got %v", ErrResolution, err)
	}
	if _, err := EllipsePoints(NewOrbit(1.1, 10, 0, 1), Vector2{}, 10); !errors.Is(err, ErrNotElliptic) {
		t.Fatalf("expected %s got %v", ErrNotElliptic, err)
	}
}

func TestBezierPath(t *testing.T) {
	o := NewOrbit(0.5, 10, 1.1, 1)
	focus := Vector2{-4, 9}
	path, err := BezierPath(o, focus)
	if err != nil {
		t.Fatal(err)
	}
	if len(path) != 5 || path[0] != path[4] {
		t.Fatal("path should be closed with five points")
	}
	if rP := path[0].Position.Sub(focus).Norm(); !floats.EqualWithinAbs(rP, o.Periapsis(), 1e-9) {
		t.Fatalf("path starts %f from the focus", rP)
	}
	if rA := path[2].Position.Sub(focus).Norm(); !floats.EqualWithinAbs(rA, o.Apoapsis(), 1e-9) {
		t.Fatalf("apoapsis vertex %f from the focus", rA)
	}
	// Every arc stays close to the ellipse.
	centroid := o.Centroid(focus)
	shape := o.Shape()
	inv := R2(o.ArgPeriapsis() - math.Pi/2)
	for i := 0; i < 4; i++ {
		for s := 0.; s <= 1; s += 0.125 {
			p := MxV22(inv, BezierAt(path[i], path[i+1], s).Sub(centroid))
			lhs := (p.X*p.X)/(shape.A*shape.A) + (p.Y*p.Y)/(shape.B*shape.B)
			if !floats.EqualWithinAbs(lhs, 1, 2e-3) {
				t.Fatalf("arc %d s=%f: %f", i, s, lhs)
			}
		}
	}
}

func TestBezierPathErrors(t *testing.T) {
	for _, o := range []Orbit{NewOrbit(1, 10, 0, 1), NewOrbit(1.5, 10, 0, 1), NewOrbit(0.5, -10, 0, 1)} {
		path, err := BezierPath(o, Vector2{})
		if err == nil || path != nil {
			t.Fatalf("%s: expected an error, got %d points", o, len(path))
		}
	}
	if _, err := BezierPath(NewOrbit(1.5, 10, 0, 1), Vector2{}); !errors.Is(err, ErrNotElliptic) {
		t.Fatalf("expected %s got %v", ErrNotElliptic, err)
	}
}
