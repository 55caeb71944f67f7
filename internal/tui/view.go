package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cvmatch/internal/field"
	"cvmatch/internal/render"
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CV Match Analyzer"))
	b.WriteString("\n")

	switch m.Phase {
	case PhaseResult:
		if m.Result != nil {
			b.WriteString(render.Build(*m.Result).Detailed())
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("[a] analyze another  [q] quit"))
	case PhaseSubmitting:
		b.WriteString(m.inputPanels())
		b.WriteString("\n")
		b.WriteString("Analyzing...")
	default:
		b.WriteString(m.inputPanels())
		if m.ErrMsg != "" {
			b.WriteString("\n" + errorStyle.Render(m.ErrMsg))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("[tab] switch field  [ctrl+f] toggle text/file  [ctrl+s] analyze  [esc] quit"))
	}

	return b.String()
}

func (m Model) inputPanels() string {
	cv := m.panel(m.CV, m.CVPath, !m.FocusJD, "Your CV / Resume")
	jd := m.panel(m.JD, m.JDPath, m.FocusJD, "Job Description")
	return lipgloss.JoinHorizontal(lipgloss.Top, cv, " ", jd)
}

func (m Model) panel(s *field.State, pathBuf string, focused bool, heading string) string {
	var b strings.Builder

	b.WriteString(heading + "\n")
	b.WriteString(modeTabs(s.Mode) + "\n\n")

	if s.Mode == field.ModeText {
		b.WriteString(textPreview(s.Text))
	} else {
		if s.File != nil {
			b.WriteString(fmt.Sprintf("✓ %s (%d bytes)\n", s.File.Name, s.File.Size))
		} else {
			b.WriteString("Drag a file onto the terminal\nor type a path and press enter\n")
		}
		b.WriteString("\nPath: " + pathBuf)
	}

	style := panelStyle
	if s.DragActive {
		style = dropPanelStyle
	} else if focused {
		style = focusedPanelStyle
	}
	return style.Render(b.String())
}

func modeTabs(m field.Mode) string {
	text := tabStyle.Render("Paste Text")
	file := tabStyle.Render("Upload File")
	if m == field.ModeText {
		text = activeTabStyle.Render("Paste Text")
	} else {
		file = activeTabStyle.Render("Upload File")
	}
	return text + " " + file
}

// textPreview shows the tail of a long text entry so the cursor area stays
// visible
func textPreview(text string) string {
	const max = 280
	if len(text) > max {
		text = "..." + text[len(text)-max:]
	}
	if text == "" {
		return "Paste your text here..."
	}
	return text
}
