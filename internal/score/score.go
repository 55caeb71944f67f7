package score

import "cvmatch/pkg/models"

// Band is the three-tier severity classification for a score
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// BandFor classifies a score. This is the only place the thresholds live;
// every rendering surface goes through it.
func BandFor(s float64) Band {
	if s >= 80 {
		return BandHigh
	}
	if s >= 60 {
		return BandMedium
	}
	return BandLow
}

// Color returns the hex color token for a band
func (b Band) Color() string {
	switch b {
	case BandHigh:
		return "#27ae60"
	case BandMedium:
		return "#f39c12"
	default:
		return "#e74c3c"
	}
}

// Interpretation is the one-line reading of an overall score's band
func (b Band) Interpretation() string {
	switch b {
	case BandHigh:
		return "Excellent match! Strong candidate for this role."
	case BandMedium:
		return "Good match! Consider applying."
	default:
		return "Fair match. Review the detailed scores below."
	}
}

// Normalize shapes a decoded service response for rendering. Scores pass
// through untouched; missing nested stat sides get zero-valued defaults so the
// renderer never dereferences nil. Running it twice is a no-op.
func Normalize(r models.MatchResult) models.MatchResult {
	if r.PreprocessingStats == nil {
		return r
	}
	ps := *r.PreprocessingStats
	if ps.CV == nil {
		ps.CV = &models.SideStats{}
	}
	if ps.JD == nil {
		ps.JD = &models.SideStats{}
	}
	r.PreprocessingStats = &ps
	return r
}
