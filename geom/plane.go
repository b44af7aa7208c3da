package geom

import "math"

// Plane is a surface frame: the local origin in global coordinates and the
// rotation from global to local directions. The plane itself is local z = 0.
type Plane struct {
	Position Vec3     `yaml:"position"`
	Rotation Rotation `yaml:"rotation"`
}

// ToLocal transforms a global point into the frame of the plane.
func (p Plane) ToLocal(g Vec3) Vec3 {
	return p.Rotation.Apply(g.Sub(p.Position))
}

// ToGlobal transforms a local point into global coordinates.
func (p Plane) ToGlobal(l Vec3) Vec3 {
	return p.Rotation.Inverse(l).Add(p.Position)
}

// Normal is the local z axis in global coordinates.
func (p Plane) Normal() Vec3 { return p.Rotation[2] }

// Span is a closed interval.
type Span struct {
	Min float64
	Max float64
}

// EmptySpan is the identity of Union.
func EmptySpan() Span {
	return Span{Min: math.Inf(+1), Max: math.Inf(-1)}
}

// Union returns the smallest span containing both s and o.
func (s Span) Union(o Span) Span {
	return Span{Min: math.Min(s.Min, o.Min), Max: math.Max(s.Max, o.Max)}
}


// TrapezoidBounds describes a trapezoid centred on the local origin with its
// parallel edges along local x, the short one at -HalfLength.
type TrapezoidBounds struct {
	HalfWidthBottom float64 `yaml:"halfWidthBottom"`
	HalfWidthTop    float64 `yaml:"halfWidthTop"`
	HalfLength      float64 `yaml:"halfLength"`
	HalfThickness   float64 `yaml:"halfThickness"`
}

// HalfWidthAt returns the local half width at local y.
func (b TrapezoidBounds) HalfWidthAt(y float64) float64 {
	if b.HalfLength == 0 {
		return b.HalfWidthBottom
	}
	f := (y + b.HalfLength) / (2 * b.HalfLength)
	return b.HalfWidthBottom + f*(b.HalfWidthTop-b.HalfWidthBottom)
}

// Inside reports whether a local point is within the bounds.
func (b TrapezoidBounds) Inside(l Vec3) bool {
	if math.Abs(l.Y) > b.HalfLength || math.Abs(l.Z) > b.HalfThickness {
		return false
	}
	return math.Abs(l.X) <= b.HalfWidthAt(l.Y)
}

// Corners returns the eight corners of the bounded volume in local
// coordinates.
func (b TrapezoidBounds) Corners() [8]Vec3 {
	var c [8]Vec3
	i := 0
	for _, z := range []float64{-b.HalfThickness, +b.HalfThickness} {
		c[i+0] = Vec3{-b.HalfWidthBottom, -b.HalfLength, z}
		c[i+1] = Vec3{+b.HalfWidthBottom, -b.HalfLength, z}
		c[i+2] = Vec3{+b.HalfWidthTop, +b.HalfLength, z}
		c[i+3] = Vec3{-b.HalfWidthTop, +b.HalfLength, z}
		i += 4
	}
	return c
}

// BoundPlane is a plane with trapezoidal bounds.
type BoundPlane struct {
	Plane  `yaml:",inline"`
	Bounds TrapezoidBounds `yaml:"bounds"`
}

// RSpan returns the range of global radii covered by the corners of the
// surface.
func (p BoundPlane) RSpan() Span {
	s := EmptySpan()
	for _, c := range p.Bounds.Corners() {
		r := p.ToGlobal(c).Perp()
		s = s.Union(Span{r, r})
	}
	return s
}

// ZSpan returns the range of global z covered by the corners of the surface.
func (p BoundPlane) ZSpan() Span {
	s := EmptySpan()
	for _, c := range p.Bounds.Corners() {
		z := p.ToGlobal(c).Z
		s = s.Union(Span{z, z})
	}
	return s
}
