package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"cvmatch/internal/app"
	"cvmatch/internal/field"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case submitDoneMsg:
		return m.handleSubmitDone(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	if m.Phase == PhaseResult {
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "a":
			m.reset()
			return m, nil
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab":
		m.FocusJD = !m.FocusJD
		return m, nil
	case "ctrl+f":
		f := m.focused()
		if f.Mode == field.ModeText {
			f.SetMode(field.ModeFile)
		} else {
			f.SetMode(field.ModeText)
		}
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "backspace":
		m.erase()
		return m, nil
	case "enter":
		f := m.focused()
		if f.Mode == field.ModeFile {
			m.loadPath()
		} else {
			f.SetText(f.Text + "\n")
		}
		return m, nil
	}

	if msg.Type == tea.KeyRunes {
		m.typeRunes(string(msg.Runes))
	}
	if msg.Type == tea.KeySpace {
		m.typeRunes(" ")
	}
	return m, nil
}

// typeRunes feeds keyboard input into the focused capture. A pasted burst
// that resolves to an existing file is treated like a drop on the focused
// field, which is how a file dragged onto the terminal arrives.
func (m *Model) typeRunes(runes string) {
	f := m.focused()

	if len([]rune(runes)) > 1 {
		path := strings.TrimSpace(strings.Trim(strings.TrimSpace(runes), "'\""))
		if ref, err := field.NewFileRef(path); err == nil {
			f.DragEnter()
			res := f.Drop(ref)
			if res.Valid {
				*m.focusedPath() = path
				m.ErrMsg = ""
			} else {
				m.ErrMsg = f.Err
			}
			return
		}
	}

	if f.Mode == field.ModeText {
		f.SetText(f.Text + runes)
	} else {
		*m.focusedPath() += runes
	}
}

func (m *Model) erase() {
	f := m.focused()
	if f.Mode == field.ModeText {
		if r := []rune(f.Text); len(r) > 0 {
			f.SetText(string(r[:len(r)-1]))
		}
		return
	}
	p := m.focusedPath()
	if r := []rune(*p); len(r) > 0 {
		*p = string(r[:len(r)-1])
	}
}

// loadPath turns the focused path buffer into a validated file selection
func (m *Model) loadPath() {
	f := m.focused()
	path := strings.TrimSpace(*m.focusedPath())
	if path == "" {
		return
	}
	ref, err := field.NewFileRef(path)
	if err != nil {
		m.ErrMsg = f.Label + ": " + err.Error()
		return
	}
	if res := f.SelectFile(ref); !res.Valid {
		m.ErrMsg = f.Err
		return
	}
	m.ErrMsg = ""
}

// submit dispatches the scoring request; a second attempt while one is
// outstanding is rejected here, not queued.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.Loading {
		m.ErrMsg = app.ErrRequestInFlight.Error()
		return m, nil
	}
	m.Loading = true
	m.Phase = PhaseSubmitting
	m.ErrMsg = ""
	return m, submitCmd(m.Client, m.CV, m.JD)
}

func (m Model) handleSubmitDone(msg submitDoneMsg) (tea.Model, tea.Cmd) {
	m.Loading = false
	if msg.Err != nil {
		m.Phase = PhaseInput
		m.ErrMsg = msg.Err.Error()
		return m, nil
	}
	m.Result = msg.Result
	m.Phase = PhaseResult
	m.ErrMsg = ""
	return m, nil
}
