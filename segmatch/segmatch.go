// Package segmatch associates muon-system tracks with the segments that
// share their rec hits.
package segmatch

import (
	"math"

	"github.com/decibelcooper/gemdqm/edm"
	"github.com/decibelcooper/gemdqm/geom"
	"github.com/decibelcooper/gemdqm/reco"
)

// cscHitTolerance is the local position window, in cm, within which a
// track hit and a segment hit on the same CSC layer are the same hit.
const cscHitTolerance = 1e-5

// Parameters configures a Matcher.
type Parameters struct {
	CSCSegments   string  `yaml:"CSCsegments"`
	DTSegments    string  `yaml:"DTsegments"`
	DTRadius      float64 `yaml:"DTradius"`
	TightMatchDT  bool    `yaml:"TightMatchDT"`
	TightMatchCSC bool    `yaml:"TightMatchCSC"`
}

// Matcher finds the segments of an event used by a track.
type Matcher struct {
	params Parameters
}

func New(params Parameters) *Matcher {
	return &Matcher{params: params}
}

// MatchCSC returns the CSC segments sharing hits with the track. With
// TightMatchCSC every segment hit must be on the track, otherwise one
// shared hit suffices. A missing segment product yields no match.
func (m *Matcher) MatchCSC(track *reco.Track, evt edm.Event) []*reco.CSCSegment {
	segments, ok := evt.CSCSegments(m.params.CSCSegments)
	if !ok || track == nil {
		return nil
	}

	var matched []*reco.CSCSegment
	for i := range segments {
		seg := &segments[i]
		n := 0
		for _, sh := range seg.RecHits {
			for _, th := range track.CSCHits {
				if th.ID == sh.ID && samePosition(th.LocalPosition, sh.LocalPosition, cscHitTolerance) {
					n++
					break
				}
			}
		}
		if accept(n, len(seg.RecHits), m.params.TightMatchCSC) {
			matched = append(matched, seg)
		}
	}
	return matched
}

// MatchDT is MatchCSC for DT segments, with DTRadius as position window.
func (m *Matcher) MatchDT(track *reco.Track, evt edm.Event) []*reco.DTSegment {
	segments, ok := evt.DTSegments(m.params.DTSegments)
	if !ok || track == nil {
		return nil
	}

	var matched []*reco.DTSegment
	for i := range segments {
		seg := &segments[i]
		n := 0
		for _, sh := range seg.RecHits {
			for _, th := range track.DTHits {
				if th.ID == sh.ID && samePosition(th.LocalPosition, sh.LocalPosition, m.params.DTRadius) {
					n++
					break
				}
			}
		}
		if accept(n, len(seg.RecHits), m.params.TightMatchDT) {
			matched = append(matched, seg)
		}
	}
	return matched
}

func accept(shared, total int, tight bool) bool {
	if tight {
		return shared > 0 && shared == total
	}
	return shared > 0
}

func samePosition(a, b geom.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol
}
