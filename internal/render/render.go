package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cvmatch/internal/score"
	"cvmatch/pkg/models"
)

// arcCircumference is the dash total for the circular score gauges
// (2 * pi * r for the r=45 circle, rounded as the web UI does).
const arcCircumference = 283.0

// ScoreDisplay is the renderable form of one score dimension
type ScoreDisplay struct {
	Label string
	Value float64
	Band  score.Band
	Color string
}

// Exact formats the value for the dedicated results view
func (d ScoreDisplay) Exact() string {
	return fmt.Sprintf("%.2f%%", d.Value)
}

// Rounded formats the value for compact summaries
func (d ScoreDisplay) Rounded() string {
	return fmt.Sprintf("%.0f%%", d.Value)
}

// Fill is the proportional bar fill in [0,100]
func (d ScoreDisplay) Fill() float64 {
	return d.Value
}

// ArcDash is the stroke dash length for an arc gauge sweep
func (d ScoreDisplay) ArcDash() float64 {
	return d.Value / 100 * arcCircumference
}

// StatsView is the preprocessing block ready for display. Lengths default to
// zero when the service omitted them; a nil sections slice means the row is
// left out entirely.
type StatsView struct {
	CVOriginal int
	CVCleaned  int
	CVSections []string
	JDOriginal int
	JDCleaned  int
	JDSections []string
}

// ResultView is the full display model for one MatchResult
type ResultView struct {
	Overall        ScoreDisplay
	Interpretation string
	Subs           []ScoreDisplay
	Stats          StatsView
}

func display(label string, value float64) ScoreDisplay {
	b := score.BandFor(value)
	return ScoreDisplay{Label: label, Value: value, Band: b, Color: b.Color()}
}

// Build maps a MatchResult to its display model. It never mutates the result
// and never fails, even on a partially populated response.
func Build(r models.MatchResult) ResultView {
	overall := display("Overall Match", r.OverallMatch)
	view := ResultView{
		Overall:        overall,
		Interpretation: overall.Band.Interpretation(),
		Subs: []ScoreDisplay{
			display("Skill Match", r.SkillMatch),
			display("Experience Match", r.ExperienceMatch),
			display("Education Match", r.EducationMatch),
			display("Semantic Similarity", r.SemanticSimilarity),
		},
	}
	if ps := r.PreprocessingStats; ps != nil {
		if ps.CV != nil {
			view.Stats.CVOriginal = ps.CV.OriginalLength
			view.Stats.CVCleaned = ps.CV.CleanedLength
			view.Stats.CVSections = ps.CV.SectionsFound
		}
		if ps.JD != nil {
			view.Stats.JDOriginal = ps.JD.OriginalLength
			view.Stats.JDCleaned = ps.JD.CleanedLength
			view.Stats.JDSections = ps.JD.SectionsFound
		}
	}
	return view
}

// Bar draws a proportional fill bar of the given width in the display's color
func Bar(d ScoreDisplay, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(d.Fill() / 100 * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(d.Color))
	rest := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return fill.Render(strings.Repeat("█", filled)) + rest.Render(strings.Repeat("░", width-filled))
}

// Preview truncates stored document text for compact history rows
func Preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Detailed renders the full results view: overall box, sub-score bars, and
// the preprocessing block.
func (v ResultView) Detailed() string {
	var b strings.Builder

	overallStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(v.Overall.Color)).
		Padding(0, 2).
		Align(lipgloss.Center)
	scoreStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(v.Overall.Color))

	b.WriteString(overallStyle.Render(fmt.Sprintf("%s\n%s\n%s",
		v.Overall.Label,
		scoreStyle.Render(v.Overall.Exact()),
		v.Interpretation,
	)))
	b.WriteString("\n\n")

	for _, d := range v.Subs {
		valStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(d.Color))
		b.WriteString(fmt.Sprintf("%-22s %s\n", d.Label, valStyle.Render(d.Exact())))
		b.WriteString("  " + Bar(d, 40) + "\n")
	}

	b.WriteString("\nText Processing Details\n")
	b.WriteString(fmt.Sprintf("  CV - Original Length: %d chars\n", v.Stats.CVOriginal))
	b.WriteString(fmt.Sprintf("  CV - Cleaned Length:  %d chars\n", v.Stats.CVCleaned))
	if v.Stats.CVSections != nil {
		b.WriteString(fmt.Sprintf("  CV - Sections Found:  %s\n", strings.Join(v.Stats.CVSections, ", ")))
	}
	b.WriteString(fmt.Sprintf("  JD - Original Length: %d chars\n", v.Stats.JDOriginal))
	b.WriteString(fmt.Sprintf("  JD - Cleaned Length:  %d chars\n", v.Stats.JDCleaned))
	if v.Stats.JDSections != nil {
		b.WriteString(fmt.Sprintf("  JD - Sections Found:  %s\n", strings.Join(v.Stats.JDSections, ", ")))
	}

	return b.String()
}

// Compact renders the one-line summary used by history rows
func (v ResultView) Compact() string {
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(v.Overall.Color)).
		Padding(0, 1)
	parts := make([]string, 0, len(v.Subs))
	for _, d := range v.Subs {
		parts = append(parts, fmt.Sprintf("%s: %s", shortLabel(d.Label), d.Rounded()))
	}
	return badge.Render(v.Overall.Rounded()) + "  " + strings.Join(parts, " | ")
}

func shortLabel(label string) string {
	switch label {
	case "Skill Match":
		return "Skills"
	case "Experience Match":
		return "Exp"
	case "Education Match":
		return "Edu"
	case "Semantic Similarity":
		return "Semantic"
	}
	return label
}
