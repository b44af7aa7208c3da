package geometry

import (
	"math"

	"github.com/decibelcooper/gemdqm/detid"
	"github.com/decibelcooper/gemdqm/geom"
)

// Station1Layout parametrizes an idealized first muon endcap station: ME1/1
// chambers split into ME1/1a (inner) and ME1/1b (outer) with alternating z,
// and a GE1/1 superchamber of two layers in front of them.
type Station1Layout struct {
	// NChambers is the number of chambers per endcap.
	NChambers int

	// CSCZNear and CSCZFar are the |z| of even and odd chambers.
	CSCZNear  float64
	CSCZFar   float64
	CSCRInner float64
	// CSCRSplit is the ME1/1a / ME1/1b boundary radius.
	CSCRSplit    float64
	CSCROuter    float64
	CSCHalfThick float64

	// GEMZ holds the |z| of layers 1 and 2.
	GEMZ         [2]float64
	GEMRInner    float64
	GEMROuter    float64
	GEMNRolls    int
	GEMNStrips   int
	GEMHalfThick float64

	// HalfOpeningPhi is half of the azimuthal chamber opening.
	HalfOpeningPhi float64
}

// DefaultStation1 approximates the ME1/1 and GE1/1 dimensions.
var DefaultStation1 = Station1Layout{
	NChambers:      36,
	CSCZNear:       585,
	CSCZFar:        611,
	CSCRInner:      100,
	CSCRSplit:      135,
	CSCROuter:      260,
	CSCHalfThick:   7,
	GEMZ:           [2]float64{567, 570},
	GEMRInner:      130,
	GEMROuter:      262,
	GEMNRolls:      8,
	GEMNStrips:     384,
	GEMHalfThick:   0.5,
	HalfOpeningPhi: 5 * math.Pi / 180,
}

// NewIdealStation1 builds the CSC and GEM geometries of the layout for both
// endcaps. Chamber frames have local y pointing outward in radius and local
// z pointing away from the interaction point.
func NewIdealStation1(l Station1Layout) (*CSCGeometry, *GEMGeometry) {
	var (
		chambers   []*CSCChamber
		partitions []*GEMEtaPartition
	)

	for _, endcap := range []int{1, 2} {
		sign := +1.0
		if endcap == 2 {
			sign = -1
		}
		for ich := 1; ich <= l.NChambers; ich++ {
			phi := 2 * math.Pi * float64(ich-1) / float64(l.NChambers)
			rot := chamberRotation(phi, sign)

			z := l.CSCZNear
			if ich%2 == 1 {
				z = l.CSCZFar
			}
			for _, ring := range []struct {
				ring      int
				rin, rout float64
			}{
				{1, l.CSCRSplit, l.CSCROuter},
				{4, l.CSCRInner, l.CSCRSplit},
			} {
				id := detid.CSCDetID{Endcap: endcap, Station: 1, Ring: ring.ring, Chamber: ich}
				chambers = append(chambers, &CSCChamber{
					ID:      id,
					Surface: l.trapezoid(phi, sign*z, ring.rin, ring.rout, l.CSCHalfThick, rot),
				})
			}

			dr := (l.GEMROuter - l.GEMRInner) / float64(l.GEMNRolls)
			for layer := 1; layer <= 2; layer++ {
				for roll := 1; roll <= l.GEMNRolls; roll++ {
					// roll 1 is the outermost partition
					rout := l.GEMROuter - float64(roll-1)*dr
					id := detid.GEMDetID{
						Region:  int(sign),
						Ring:    1,
						Station: 1,
						Layer:   layer,
						Chamber: ich,
						Roll:    roll,
					}
					partitions = append(partitions, &GEMEtaPartition{
						ID:      id,
						NStrips: l.GEMNStrips,
						Surface: l.trapezoid(phi, sign*l.GEMZ[layer-1], rout-dr, rout, l.GEMHalfThick, rot),
					})
				}
			}
		}
	}

	return NewCSCGeometry(chambers), NewGEMGeometry(partitions)
}

func (l Station1Layout) trapezoid(phi, z, rin, rout, halfThick float64, rot geom.Rotation) geom.BoundPlane {
	rc := 0.5 * (rin + rout)
	tan := math.Tan(l.HalfOpeningPhi)
	return geom.BoundPlane{
		Plane: geom.Plane{
			Position: geom.Vec3{X: rc * math.Cos(phi), Y: rc * math.Sin(phi), Z: z},
			Rotation: rot,
		},
		Bounds: geom.TrapezoidBounds{
			HalfWidthBottom: rin * tan,
			HalfWidthTop:    rout * tan,
			HalfLength:      0.5 * (rout - rin),
			HalfThickness:   halfThick,
		},
	}
}

func chamberRotation(phi, sign float64) geom.Rotation {
	c, s := math.Cos(phi), math.Sin(phi)
	return geom.Rotation{
		{X: sign * s, Y: -sign * c},
		{X: c, Y: s},
		{Z: sign},
	}
}
