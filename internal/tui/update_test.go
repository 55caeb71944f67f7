package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"cvmatch/internal/field"
	"cvmatch/pkg/models"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTypingFillsFocusedField(t *testing.T) {
	m := NewModel(nil)

	next, _ := m.Update(keyRunes("h"))
	next, _ = next.Update(keyRunes("i"))
	m = next.(Model)

	if m.CV.Text != "hi" {
		t.Errorf("cv text = %q", m.CV.Text)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	next, _ = next.Update(keyRunes("x"))
	m = next.(Model)

	if m.JD.Text != "x" {
		t.Errorf("jd text = %q", m.JD.Text)
	}
	if m.CV.Text != "hi" {
		t.Errorf("cv text changed: %q", m.CV.Text)
	}
}

func TestModeToggleKey(t *testing.T) {
	m := NewModel(nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	m = next.(Model)
	if m.CV.Mode != field.ModeFile {
		t.Error("ctrl+f should switch the focused field to file mode")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	m = next.(Model)
	if m.CV.Mode != field.ModeText {
		t.Error("ctrl+f should toggle back to text mode")
	}
}

func TestPastedPathActsAsDrop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	if err := os.WriteFile(path, []byte("Experienced engineer"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewModel(nil)
	m.CV.Err = "CV: No file selected"

	next, _ := m.Update(keyRunes(path))
	m = next.(Model)

	if m.CV.Mode != field.ModeFile {
		t.Error("a dropped path should force the field into file mode")
	}
	if m.CV.File == nil || m.CV.File.Name != "resume.txt" {
		t.Errorf("file not selected from drop: %+v", m.CV.File)
	}
	if m.CV.Err != "" {
		t.Errorf("drop should clear the field error, got %q", m.CV.Err)
	}
}

func TestPastedUnsupportedPathLeavesModeUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	if err := os.WriteFile(path, []byte("not a document"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewModel(nil)
	next, _ := m.Update(keyRunes(path))
	m = next.(Model)

	if m.CV.Mode != field.ModeText {
		t.Error("a failed drop must not change the mode")
	}
	if m.ErrMsg == "" {
		t.Error("a failed drop should surface the field error")
	}
}

func TestSubmitGuardRejectsOverlap(t *testing.T) {
	m := NewModel(nil)
	m.CV.SetText("Experienced software engineer...")
	m.JD.SetText("We are hiring a backend engineer...")
	m.Loading = true

	next, cmd := m.submit()
	m = next.(Model)

	if cmd != nil {
		t.Error("an in-flight submission must not dispatch another request")
	}
	if m.ErrMsg == "" {
		t.Error("overlapping submission should surface an error")
	}
}

func TestSubmitDone(t *testing.T) {
	m := NewModel(nil)
	m.Loading = true
	m.Phase = PhaseSubmitting

	next, _ := m.Update(submitDoneMsg{Result: &models.MatchResult{OverallMatch: 85}})
	m = next.(Model)

	if m.Loading {
		t.Error("loading flag must clear on completion")
	}
	if m.Phase != PhaseResult || m.Result == nil {
		t.Error("successful submission should show the result")
	}
}

func TestSubmitDoneError(t *testing.T) {
	m := NewModel(nil)
	m.Loading = true
	m.Phase = PhaseSubmitting

	next, _ := m.Update(submitDoneMsg{Err: errors.New("Network error: connection refused")})
	m = next.(Model)

	if m.Loading {
		t.Error("loading flag must clear on failure too")
	}
	if m.Phase != PhaseInput {
		t.Error("a failed submission returns to input")
	}
	if m.ErrMsg != "Network error: connection refused" {
		t.Errorf("error message = %q", m.ErrMsg)
	}
}

func TestAnalyzeAnotherStartsFresh(t *testing.T) {
	m := NewModel(nil)
	m.CV.SetText("old cv")
	m.Phase = PhaseResult
	m.Result = &models.MatchResult{OverallMatch: 85}

	next, _ := m.Update(keyRunes("a"))
	m = next.(Model)

	if m.Phase != PhaseInput || m.Result != nil {
		t.Error("analyze-another should return to input")
	}
	if m.CV.Text != "" {
		t.Error("the next submission starts from fresh field states")
	}
}
