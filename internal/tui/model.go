package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"cvmatch/internal/api"
	"cvmatch/internal/field"
	"cvmatch/pkg/models"
)

// Phase represents the analyzer state machine
type Phase int

const (
	PhaseInput Phase = iota
	PhaseSubmitting
	PhaseResult
)

// Model is the interactive analyzer. It drives one field state machine per
// document side and holds the single in-flight submission flag.
type Model struct {
	Client *api.Client

	CV *field.State
	JD *field.State

	// Path entry buffers for file mode; a buffer becomes the field's file
	// once it validates.
	CVPath string
	JDPath string

	FocusJD bool
	Phase   Phase
	Loading bool

	Result *models.MatchResult
	ErrMsg string
}

// NewModel creates the analyzer with both fields in text mode
func NewModel(client *api.Client) Model {
	return Model{
		Client: client,
		CV:     field.NewState("CV"),
		JD:     field.NewState("JD"),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// focused returns the field the keyboard is acting on
func (m *Model) focused() *field.State {
	if m.FocusJD {
		return m.JD
	}
	return m.CV
}

func (m *Model) focusedPath() *string {
	if m.FocusJD {
		return &m.JDPath
	}
	return &m.CVPath
}

// reset discards both field states so the next submission starts fresh
func (m *Model) reset() {
	m.CV = field.NewState("CV")
	m.JD = field.NewState("JD")
	m.CVPath = ""
	m.JDPath = ""
	m.FocusJD = false
	m.Result = nil
	m.ErrMsg = ""
	m.Phase = PhaseInput
}
