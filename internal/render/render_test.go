package render

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"cvmatch/internal/score"
	"cvmatch/pkg/models"
)

func sampleResult() models.MatchResult {
	return models.MatchResult{
		OverallMatch:       85,
		SkillMatch:         90,
		ExperienceMatch:    80,
		EducationMatch:     70,
		SemanticSimilarity: 88,
	}
}

func TestBuildBandsAndInterpretation(t *testing.T) {
	view := Build(sampleResult())

	if view.Overall.Band != score.BandHigh {
		t.Errorf("overall band = %v, expected high", view.Overall.Band)
	}
	if view.Interpretation != "Excellent match! Strong candidate for this role." {
		t.Errorf("unexpected interpretation: %q", view.Interpretation)
	}

	expected := []score.Band{score.BandHigh, score.BandHigh, score.BandMedium, score.BandHigh}
	for i, d := range view.Subs {
		if d.Band != expected[i] {
			t.Errorf("sub %q band = %v, expected %v", d.Label, d.Band, expected[i])
		}
		if d.Color != d.Band.Color() {
			t.Errorf("sub %q color %q does not match its band", d.Label, d.Color)
		}
	}
}

func TestScoreDisplayFormats(t *testing.T) {
	d := ScoreDisplay{Value: 85}
	if d.Exact() != "85.00%" {
		t.Errorf("Exact() = %q", d.Exact())
	}
	if d.Rounded() != "85%" {
		t.Errorf("Rounded() = %q", d.Rounded())
	}

	d = ScoreDisplay{Value: 72.456}
	if d.Exact() != "72.46%" {
		t.Errorf("Exact() = %q", d.Exact())
	}
	if d.Rounded() != "72%" {
		t.Errorf("Rounded() = %q", d.Rounded())
	}
}

func TestArcDash(t *testing.T) {
	tests := []struct {
		value    float64
		expected float64
	}{
		{0, 0},
		{50, 141.5},
		{100, 283},
	}
	for _, tt := range tests {
		d := ScoreDisplay{Value: tt.value}
		if math.Abs(d.ArcDash()-tt.expected) > 1e-9 {
			t.Errorf("ArcDash(%v) = %v, expected %v", tt.value, d.ArcDash(), tt.expected)
		}
	}
}

func TestBuildWithoutStats(t *testing.T) {
	view := Build(sampleResult())

	if view.Stats.CVOriginal != 0 || view.Stats.CVCleaned != 0 {
		t.Error("missing stats should render as zero lengths for the CV side")
	}
	if view.Stats.JDOriginal != 0 || view.Stats.JDCleaned != 0 {
		t.Error("missing stats should render as zero lengths for the JD side")
	}
	if view.Stats.CVSections != nil || view.Stats.JDSections != nil {
		t.Error("missing stats should omit the sections rows")
	}

	// The detailed view must render without panicking and without sections rows
	out := view.Detailed()
	if strings.Contains(out, "Sections Found") {
		t.Error("sections rows should be omitted when absent")
	}
	if !strings.Contains(out, "CV - Original Length: 0 chars") {
		t.Error("zero-length default not rendered")
	}
}

func TestBuildWithStats(t *testing.T) {
	r := sampleResult()
	r.PreprocessingStats = &models.PreprocessingStats{
		CV: &models.SideStats{OriginalLength: 500, CleanedLength: 420, SectionsFound: []string{"experience", "skills"}},
		JD: &models.SideStats{OriginalLength: 300, CleanedLength: 250},
	}
	view := Build(r)

	if view.Stats.CVOriginal != 500 || view.Stats.CVCleaned != 420 {
		t.Error("CV lengths not carried through")
	}
	if len(view.Stats.CVSections) != 2 {
		t.Errorf("CV sections = %v", view.Stats.CVSections)
	}
	if view.Stats.JDSections != nil {
		t.Error("JD sections should stay omitted")
	}

	out := view.Detailed()
	if !strings.Contains(out, "experience, skills") {
		t.Error("sections row missing from detailed view")
	}
}

func TestBuildZeroResultDoesNotPanic(t *testing.T) {
	view := Build(models.MatchResult{})
	if view.Overall.Band != score.BandLow {
		t.Errorf("zero result should band low, got %v", view.Overall.Band)
	}
	_ = view.Detailed()
	_ = view.Compact()
}

func TestBuildDoesNotMutateResult(t *testing.T) {
	r := sampleResult()
	r.PreprocessingStats = &models.PreprocessingStats{
		CV: &models.SideStats{OriginalLength: 10},
	}
	before := *r.PreprocessingStats.CV
	_ = Build(r)
	if !reflect.DeepEqual(*r.PreprocessingStats.CV, before) {
		t.Error("Build mutated the MatchResult")
	}
}

func TestBar(t *testing.T) {
	full := Bar(ScoreDisplay{Value: 100, Color: "#27ae60"}, 10)
	if strings.Count(full, "█") != 10 || strings.Count(full, "░") != 0 {
		t.Errorf("full bar wrong: %q", full)
	}

	empty := Bar(ScoreDisplay{Value: 0, Color: "#e74c3c"}, 10)
	if strings.Count(empty, "█") != 0 || strings.Count(empty, "░") != 10 {
		t.Errorf("empty bar wrong: %q", empty)
	}

	half := Bar(ScoreDisplay{Value: 50, Color: "#f39c12"}, 10)
	if strings.Count(half, "█") != 5 || strings.Count(half, "░") != 5 {
		t.Errorf("half bar wrong: %q", half)
	}
}

func TestPreview(t *testing.T) {
	long := strings.Repeat("x", 200)
	got := Preview(long, 150)
	if len(got) != 153 || !strings.HasSuffix(got, "...") {
		t.Errorf("Preview did not truncate to 150 chars plus ellipsis: %d", len(got))
	}
	if Preview("short", 150) != "short" {
		t.Error("short strings should pass through untouched")
	}
}
