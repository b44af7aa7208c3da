// Package efficiency measures the GE1/1 efficiency with ME1/1 segments: for
// every GEM-CSC segment in ME1/1 it records the fit quality, the GEM hits of
// both layers and the kinematics of the standalone muon using the segment.
package efficiency

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/decibelcooper/gemdqm/edm"
	"github.com/decibelcooper/gemdqm/geometry"
	"github.com/decibelcooper/gemdqm/logging"
	"github.com/decibelcooper/gemdqm/reco"
	"github.com/decibelcooper/gemdqm/segmatch"
)

// Category is the logging category of the analyzer.
const Category = "GEMCSCSegmentEfficiencyAnalyzer"

// ErrMissingInput is returned when a product or a service needed by the
// analyzer is not available for the event.
var ErrMissingInput = errors.New("efficiency: missing input")

// Analyzer builds the efficiency records of an event.
type Analyzer struct {
	cfg     Config
	matcher *segmatch.Matcher
	out     Writer
	msg     *slog.Logger
}

// New returns an analyzer writing to out. A nil logger selects the default
// one of the Category.
func New(cfg Config, out Writer, msg *slog.Logger) *Analyzer {
	if msg == nil {
		msg = logging.New(Category)
	}
	return &Analyzer{
		cfg:     cfg,
		matcher: segmatch.New(cfg.MatchParameters),
		out:     out,
		msg:     msg,
	}
}

// matchKey identifies a CSC segment across independent reconstructions.
// Positions are compared exactly: two keys match only for the very same
// segment.
type matchKey struct {
	endcap  int
	chamber int
	x, y, z float64
}

func keyOf(seg *reco.CSCSegment) matchKey {
	return matchKey{
		endcap:  seg.ID.Endcap,
		chamber: seg.ID.Chamber,
		x:       seg.LocalPosition.X,
		y:       seg.LocalPosition.Y,
		z:       seg.LocalPosition.Z,
	}
}

// Analyze writes one record per ME1/1 GEM-CSC segment of the event and
// returns the number of records written. Events with a missing input are
// skipped with an error wrapping ErrMissingInput; events without GEM-CSC
// segments are skipped without error.
func (a *Analyzer) Analyze(evt edm.Event, setup edm.Setup) (int, error) {
	id := evt.ID()

	segments, ok := evt.GEMCSCSegments(a.cfg.GEMCSCSegmentTag)
	if !ok {
		return a.missing(id, "GEMCSCSegmentCollection")
	}
	if _, ok := evt.GEMRecHits(a.cfg.GEMRecHitTag); !ok {
		return a.missing(id, "GEMRecHitCollection")
	}
	if _, ok := evt.CSCSegments(a.cfg.CSCSegmentTag); !ok {
		return a.missing(id, "CSCSegmentCollection")
	}
	muons, ok := evt.Muons(a.cfg.RecoMuonTag)
	if !ok {
		return a.missing(id, "MuonCollection")
	}
	simInfos, ok := evt.MuonSimInfos(a.cfg.MuonSimInfoTag)
	if !ok {
		return a.missing(id, "MuonSimInfo map")
	}
	gem, ok := setup.GEMGeometry()
	if !ok {
		return a.missing(id, "GEMGeometry")
	}
	if _, ok := setup.CSCGeometry(); !ok {
		return a.missing(id, "CSCGeometry")
	}

	if len(segments) == 0 {
		a.msg.Info("GEMCSCSegment is empty", "run", id.Run, "event", id.Event)
		return 0, nil
	}

	matched := a.matchME11Segments(evt, muons)

	for i, info := range simInfos {
		a.msg.Debug("muon sim info",
			"index", i,
			"flavour", info.Flavour,
			"pdgId", info.PdgID,
			"primaryClass", info.PrimaryClass,
			"motherFlavour", info.MotherFlavour,
			"motherPdgId", info.MotherPdgID,
		)
	}
	a.msg.Debug("matched ME11 segments", "n", len(matched))

	n := 0
	for i := range segments {
		seg := &segments[i]
		cscID := seg.CSCDetID()
		if !cscID.IsME11() {
			continue
		}

		muon, isMatched := matched[keyOf(&seg.CSCSegment)]
		rec := a.fill(seg, gem, muon)

		if err := a.out.Append(rec); err != nil {
			return n, fmt.Errorf("efficiency: could not write record: %w", err)
		}
		n++

		a.msg.Debug("segment",
			"matched", isMatched,
			"gemRecHits", len(seg.GEMRecHits),
			"chamber", cscID.String(),
		)
	}
	return n, nil
}

func (a *Analyzer) missing(id edm.ID, what string) (int, error) {
	a.msg.Error(what+" is not valid", "run", id.Run, "event", id.Event)
	return 0, fmt.Errorf("%w: %s", ErrMissingInput, what)
}

// matchME11Segments maps the ME1/1 segments of every standalone muon to
// that muon. A segment used by several muons goes to the last one.
func (a *Analyzer) matchME11Segments(evt edm.Event, muons []reco.Muon) map[matchKey]*reco.Muon {
	matched := make(map[matchKey]*reco.Muon)
	for i := range muons {
		muon := &muons[i]
		if !muon.IsStandAloneMuon() {
			continue
		}
		for _, seg := range a.matcher.MatchCSC(muon.OuterTrack, evt) {
			if !seg.ID.IsME11() {
				continue
			}
			matched[keyOf(seg)] = muon
		}
	}
	return matched
}

func (a *Analyzer) fill(seg *reco.GEMCSCSegment, gem *geometry.GEMGeometry, muon *reco.Muon) *Record {
	var layer1, layer2 *reco.GEMRecHit
	for i := range seg.GEMRecHits {
		hit := &seg.GEMRecHits[i]
		if hit.ID.Station != 1 {
			a.msg.Warn("GEMRecHit outside GE1/1", "id", hit.ID.String())
			continue
		}
		if hit.ID.Layer == 1 {
			layer1 = hit
		} else {
			layer2 = hit
		}
	}

	cscID := seg.CSCDetID()

	rec := NewRecord()
	rec.GEMCSCReducedChi2 = seg.ReducedChi2()
	rec.GEMCSCCSCHitSize = len(seg.CSCRecHits())
	rec.GEMCSCGEMHitSize = len(seg.GEMRecHits)
	rec.GEMCSCRegion = cscID.ZEndcap()

	rec.CSCChamber = cscID.Chamber
	rec.CSCIsME1a = cscID.IsME1a()
	rec.CSCReducedChi2 = seg.CSCSegment.ReducedChi2()

	if layer1 != nil {
		rec.GEMChamber = layer1.ID.Chamber
		rec.GEMHasLayer1 = true
		rec.GEMLayer1IEta = layer1.ID.Roll
		rec.GEMLayer1Strip = strip(gem, layer1)
		rec.GEMLayer1CLS = layer1.ClusterSize
		rec.GEMLayer1BX = layer1.BX
	}

	if layer2 != nil {
		rec.GEMChamber = layer2.ID.Chamber
		rec.GEMHasLayer2 = true
		rec.GEMLayer2IEta = layer2.ID.Roll
		rec.GEMLayer2Strip = strip(gem, layer2)
		rec.GEMLayer2CLS = layer2.ClusterSize
		rec.GEMLayer2BX = layer2.BX
	}

	if muon != nil {
		rec.IsMatchedWithMuon = true
		rec.MuonPt = float32(muon.Pt())
		rec.MuonEta = float32(muon.Eta())
		rec.MuonPhi = float32(muon.Phi())
		rec.MuonCharge = muon.Charge
	}

	return rec
}

// strip returns the strip of the hit, -1 if its eta partition is unknown.
func strip(gem *geometry.GEMGeometry, hit *reco.GEMRecHit) int {
	part, ok := gem.EtaPartition(hit.ID)
	if !ok {
		return -1
	}
	return int(part.Strip(hit.LocalPosition))
}
