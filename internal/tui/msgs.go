package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
)

// StepMsg carries one pipeline progress event into the program.
type StepMsg domain.StepEvent

// DoneMsg ends the program: the pipeline finished or aborted.
type DoneMsg struct {
	Record domain.BootstrapRecord
	Err    error
}

func listenPipeline(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return DoneMsg{}
		}
		return msg
	}
}
