package genfilter

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/decibelcooper/gemdqm/geom"
	"github.com/decibelcooper/gemdqm/geometry"
)

// envelope is the union of the ME1/1 chamber spans of one endcap, with z
// the position of its first chamber.
type envelope struct {
	endcap int
	z      float64
	r      geom.Span
	zs     geom.Span
}

// envelopes groups the ME1/1 chambers by endcap, in ascending endcap order.
func envelopes(csc *geometry.CSCGeometry) []envelope {
	type spans struct {
		z                      float64
		rmin, rmax, zmin, zmax []float64
	}
	byEndcap := make(map[int]*spans)
	for _, ch := range csc.Chambers() {
		if !ch.ID.IsME11() {
			continue
		}
		s, ok := byEndcap[ch.ID.Endcap]
		if !ok {
			s = &spans{z: ch.Surface.Position.Z}
			byEndcap[ch.ID.Endcap] = s
		}
		r, z := ch.Surface.RSpan(), ch.Surface.ZSpan()
		s.rmin = append(s.rmin, r.Min)
		s.rmax = append(s.rmax, r.Max)
		s.zmin = append(s.zmin, z.Min)
		s.zmax = append(s.zmax, z.Max)
	}

	endcaps := make([]int, 0, len(byEndcap))
	for endcap := range byEndcap {
		endcaps = append(endcaps, endcap)
	}
	sort.Ints(endcaps)

	envs := make([]envelope, 0, len(endcaps))
	for _, endcap := range endcaps {
		s := byEndcap[endcap]
		envs = append(envs, envelope{
			endcap: endcap,
			z:      s.z,
			r:      geom.Span{Min: floats.Min(s.rmin), Max: floats.Max(s.rmax)},
			zs:     geom.Span{Min: floats.Min(s.zmin), Max: floats.Max(s.zmax)},
		})
	}
	return envs
}

// buildDisks turns envelopes into disks. Envelopes with inverted bounds are
// logged and left out.
func buildDisks(envs []envelope, msg *slog.Logger) []*geom.Disk {
	var disks []*geom.Disk
	for _, env := range envs {
		bounds := geom.DiskBounds{
			RMin: env.r.Min,
			RMax: env.r.Max,
			ZMin: env.zs.Min - env.z,
			ZMax: env.zs.Max - env.z,
		}
		disk, err := geom.NewDisk(env.z, bounds)
		if err != nil {
			msg.Error("could not build ME11 disk", "endcap", env.endcap, "error", err)
			continue
		}
		msg.Debug("ME11 disk", "endcap", env.endcap, "z", env.z, "bounds", bounds.String())
		disks = append(disks, disk)
	}
	return disks
}

// BuildDisks returns one disk per endcap enclosing its ME1/1 chambers.
func BuildDisks(csc *geometry.CSCGeometry, msg *slog.Logger) []*geom.Disk {
	return buildDisks(envelopes(csc), msg)
}
