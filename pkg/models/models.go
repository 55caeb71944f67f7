package models

import "time"

// SideStats holds the preprocessing counters for one document side (CV or JD)
type SideStats struct {
	OriginalLength int      `json:"original_length"`
	CleanedLength  int      `json:"cleaned_length"`
	SectionsFound  []string `json:"sections_found,omitempty"`
}

// PreprocessingStats is the optional nested stats block returned by the scoring service
type PreprocessingStats struct {
	CV *SideStats `json:"cv,omitempty"`
	JD *SideStats `json:"jd,omitempty"`
}

// MatchResult is the scoring service response for one CV/JD pair.
// All scores are percentages in [0,100]; the service owns that invariant.
type MatchResult struct {
	OverallMatch       float64             `json:"overall_match"`
	SkillMatch         float64             `json:"skill_match"`
	ExperienceMatch    float64             `json:"experience_match"`
	EducationMatch     float64             `json:"education_match"`
	SemanticSimilarity float64             `json:"semantic_similarity"`
	PreprocessingStats *PreprocessingStats `json:"preprocessing_stats,omitempty"`
}

// HistoryEntry is one stored match from the history endpoint
type HistoryEntry struct {
	ID        string    `json:"id"`
	CVText    string    `json:"cv_text"`
	JDText    string    `json:"jd_text"`
	CreatedAt time.Time `json:"created_at"`
	MatchResult
}

// FormatInfo describes what the scoring service accepts for file uploads
type FormatInfo struct {
	FileFormats   map[string]string `json:"file_formats"`
	MaxFileSizeMB int               `json:"max_file_size_mb"`
	TextModes     []string          `json:"text_modes"`
}
