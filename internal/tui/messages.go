package tui

import "cvmatch/pkg/models"

// submitDoneMsg is sent when the scoring round trip finishes
type submitDoneMsg struct {
	Result *models.MatchResult
	Err    error
}
