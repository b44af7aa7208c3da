package geom

import "fmt"

// DiskBounds bounds an annulus in local perp and a slab in local z. Both
// ranges are closed.
type DiskBounds struct {
	RMin float64
	RMax float64
	ZMin float64
	ZMax float64
}

// Valid reports whether neither range is inverted.
func (b DiskBounds) Valid() bool {
	return b.RMin <= b.RMax && b.ZMin <= b.ZMax
}

// Inside reports whether a local point is within the bounds.
func (b DiskBounds) Inside(l Vec3) bool {
	r := l.Perp()
	return r >= b.RMin && r <= b.RMax && l.Z >= b.ZMin && l.Z <= b.ZMax
}

func (b DiskBounds) String() string {
	return fmt.Sprintf("r=[%g, %g] z=[%g, %g]", b.RMin, b.RMax, b.ZMin, b.ZMax)
}

// Disk is a bounded plane perpendicular to the beam axis.
type Disk struct {
	Plane
	Bounds DiskBounds
}

// NewDisk returns a disk centred on the beam axis at global z, with a frame
// aligned with the global one.
func NewDisk(z float64, bounds DiskBounds) (*Disk, error) {
	if !bounds.Valid() {
		return nil, fmt.Errorf("geom: inverted disk bounds %v", bounds)
	}
	return &Disk{
		Plane:  Plane{Position: Vec3{Z: z}, Rotation: Identity},
		Bounds: bounds,
	}, nil
}

// Contains reports whether the global point falls inside the disk bounds.
func (d *Disk) Contains(g Vec3) bool {
	return d.Bounds.Inside(d.ToLocal(g))
}
