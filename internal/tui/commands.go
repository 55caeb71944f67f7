package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"cvmatch/internal/api"
	"cvmatch/internal/field"
)

// submitCmd runs the single outstanding scoring request
func submitCmd(client *api.Client, cv, jd *field.State) tea.Cmd {
	return func() tea.Msg {
		result, err := client.SubmitMatch(context.Background(), cv, jd)
		return submitDoneMsg{Result: result, Err: err}
	}
}
