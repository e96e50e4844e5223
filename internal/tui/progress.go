// Package tui renders the bootstrap pipeline as a live step list.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
)

// Deps wires the progress view to a pipeline already running elsewhere.
type Deps struct {
	Identifier string
	Plan       []domain.StepPlan
	Events     <-chan tea.Msg

	// Cancel interrupts the pipeline; the view keeps running until the
	// final DoneMsg arrives so partial state stays visible.
	Cancel func()
}

type stepView struct {
	plan       domain.StepPlan
	status     domain.StepStatus
	durationMS int64
}

type model struct {
	theme   Theme
	deps    Deps
	spin    spinner.Model
	steps   []stepView
	current int // index of the running step, -1 when idle

	cancelled bool
	done      bool
	record    domain.BootstrapRecord
	err       error
}

// Run drives the progress view until the pipeline reports completion, then
// returns the final record and the pipeline error, if any.
func Run(deps Deps) (domain.BootstrapRecord, error) {
	m := newModel(deps)
	p := tea.NewProgram(m)
	out, err := p.Run()
	if err != nil {
		return domain.BootstrapRecord{}, err
	}
	final, ok := out.(model)
	if !ok {
		return domain.BootstrapRecord{}, fmt.Errorf("unexpected final model %T", out)
	}
	return final.record, final.err
}

func newModel(deps Deps) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	steps := make([]stepView, 0, len(deps.Plan))
	for _, p := range deps.Plan {
		steps = append(steps, stepView{plan: p, status: domain.StepPending})
	}

	return model{
		theme:   DefaultTheme(),
		deps:    deps,
		spin:    sp,
		steps:   steps,
		current: -1,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, listenPipeline(m.deps.Events))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.deps.Cancel != nil && !m.cancelled {
				m.cancelled = true
				m.deps.Cancel()
			}
			return m, nil
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case StepMsg:
		m.apply(domain.StepEvent(msg))
		return m, listenPipeline(m.deps.Events)

	case DoneMsg:
		m.done = true
		m.record = msg.Record
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

func (m *model) apply(e domain.StepEvent) {
	idx := e.Index - 1
	if idx < 0 || idx >= len(m.steps) {
		return
	}

	switch e.Phase {
	case domain.PhaseStarted:
		m.steps[idx].status = domain.StepRunning
		m.current = idx
	case domain.PhaseFinished:
		if e.Result != nil {
			m.steps[idx].status = e.Result.Status
			m.steps[idx].durationMS = e.Result.DurationMS
		}
		m.current = -1
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("repoinit") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("bootstrapping %s", m.deps.Identifier)) + "\n"

	var b strings.Builder
	for i, s := range m.steps {
		b.WriteString(m.renderStep(i, s))
		b.WriteByte('\n')
	}

	footer := m.theme.Help.Render("ctrl+c abort")
	if m.cancelled && !m.done {
		footer = m.theme.Help.Render("aborting, waiting for the current step...")
	}
	if m.done && m.err != nil {
		footer = m.theme.StepFailed.Render(m.err.Error())
	}

	return wrap.Render(header + "\n" + m.theme.Card.Render(b.String()) + "\n" + footer)
}

func (m model) renderStep(i int, s stepView) string {
	marker := "·"
	label := s.plan.Title

	switch s.status {
	case domain.StepRunning:
		marker = m.spin.View()
	case domain.StepOK:
		marker = m.theme.StepOK.Render("✓")
		label += m.theme.Subtitle.Render(" " + formatDuration(s.durationMS))
	case domain.StepFailed:
		marker = m.theme.StepFailed.Render("✗")
	case domain.StepSkipped:
		marker = m.theme.StepSkipped.Render("-")
		label += m.theme.Subtitle.Render(" skipped")
	}

	return fmt.Sprintf(" %s [%2d/%d] %s", marker, i+1, len(m.steps), label)
}

func formatDuration(ms int64) string {
	return (time.Duration(ms) * time.Millisecond).Round(100 * time.Millisecond).String()
}
