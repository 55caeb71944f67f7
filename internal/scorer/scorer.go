package scorer

import (
	"math"
	"regexp"
	"strings"

	"cvmatch/pkg/models"
)

// A deliberately simple lexical stand-in for the real ML scoring service,
// used by the local development server. It produces the same response shape
// with keyword-overlap scores.

var skillTerms = []string{
	"python", "java", "javascript", "typescript", "go", "golang", "rust",
	"c++", "sql", "react", "node", "django", "kubernetes", "docker", "aws",
	"gcp", "azure", "terraform", "linux", "git", "graphql", "rest", "kafka",
	"redis", "postgresql", "mongodb", "machine learning", "data analysis",
}

var experienceTerms = []string{
	"years", "experience", "led", "managed", "built", "shipped", "delivered",
	"designed", "architected", "maintained", "senior", "junior", "lead",
	"engineer", "developer", "analyst", "manager", "intern",
}

var educationTerms = []string{
	"bachelor", "master", "phd", "degree", "university", "college",
	"bsc", "msc", "diploma", "certification", "certified", "graduate",
}

// sectionHeadings are the CV/JD headings the preprocessor looks for
var sectionHeadings = []string{
	"summary", "experience", "education", "skills", "projects", "certifications",
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// clean lowercases and collapses whitespace
func clean(text string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(text)), " ")
}

// termOverlap scores how much of a term set both documents share. Terms
// present in the JD set the denominator; the CV supplies the matches. With no
// JD terms the dimension is neutral at 50.
func termOverlap(cv, jd string, terms []string) float64 {
	required := 0
	matched := 0
	for _, term := range terms {
		if !strings.Contains(jd, term) {
			continue
		}
		required++
		if strings.Contains(cv, term) {
			matched++
		}
	}
	if required == 0 {
		return 50
	}
	return float64(matched) / float64(required) * 100
}

// tokenSet splits cleaned text into a set of words longer than 3 characters
func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(text) {
		w = strings.Trim(w, ".,!?;:()[]\"'")
		if len(w) > 3 {
			set[w] = true
		}
	}
	return set
}

// jaccard computes token-set similarity as a percentage
func jaccard(cv, jd string) float64 {
	a := tokenSet(cv)
	b := tokenSet(jd)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if b[w] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union) * 100
}

// sectionsFound lists which standard headings appear in the cleaned text
func sectionsFound(cleaned string) []string {
	var found []string
	for _, h := range sectionHeadings {
		if strings.Contains(cleaned, h) {
			found = append(found, h)
		}
	}
	return found
}

func sideStats(original, cleaned string) *models.SideStats {
	return &models.SideStats{
		OriginalLength: len(original),
		CleanedLength:  len(cleaned),
		SectionsFound:  sectionsFound(cleaned),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Score computes match percentages for a CV/JD pair
func Score(cvText, jdText string) models.MatchResult {
	cv := clean(cvText)
	jd := clean(jdText)

	skill := termOverlap(cv, jd, skillTerms)
	exp := termOverlap(cv, jd, experienceTerms)
	edu := termOverlap(cv, jd, educationTerms)
	semantic := jaccard(cv, jd)

	// Weighted roughly how recruiters read: skills first, then experience
	overall := skill*0.4 + exp*0.25 + edu*0.15 + semantic*0.2

	return models.MatchResult{
		OverallMatch:       round2(overall),
		SkillMatch:         round2(skill),
		ExperienceMatch:    round2(exp),
		EducationMatch:     round2(edu),
		SemanticSimilarity: round2(semantic),
		PreprocessingStats: &models.PreprocessingStats{
			CV: sideStats(cvText, cv),
			JD: sideStats(jdText, jd),
		},
	}
}
