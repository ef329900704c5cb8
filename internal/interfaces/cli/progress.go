package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"mcbundle.dev/cli/internal/assemble"
	"mcbundle.dev/cli/internal/core/domain/deploy"
)

// stepMsg reports one generated file.
type stepMsg struct {
	n, total int
	label    string
}

// finishedMsg carries the final assembly outcome.
type finishedMsg struct {
	result *assemble.Result
	err    error
}

// progressModel is the minimal bubbletea model behind the generate
// command's live progress line.
type progressModel struct {
	current  stepMsg
	done     bool
	result   *assemble.Result
	err      error
	canceled bool
	cancel   context.CancelFunc
}

func (m progressModel) Init() tea.Cmd { return nil }

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stepMsg:
		m.current = msg
		return m, nil
	case finishedMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.canceled = true
			m.cancel()
			return m, nil
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	if m.canceled {
		return warnStyle.Render("Canceling...") + "\n"
	}
	if m.current.total == 0 {
		return dimStyle.Render("Preparing bundle...") + "\n"
	}
	return fmt.Sprintf("%s %s\n",
		titleStyle.Render(fmt.Sprintf("[%d/%d]", m.current.n, m.current.total)),
		m.current.label)
}

// runGenerateWithProgress drives Assemble under a bubbletea program so the
// per-file progress renders as a single updating line. Ctrl+C cancels the
// context, which aborts the batch between the resolution and fetch phases.
func runGenerateWithProgress(ctx context.Context, asm *assemble.Assembler, cfg deploy.Config, download bool) (*assemble.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(progressModel{cancel: cancel})
	asm.OnStep = func(step, total int, label string) {
		program.Send(stepMsg{n: step, total: total, label: label})
	}

	go func() {
		result, err := asm.Assemble(ctx, cfg, download)
		program.Send(finishedMsg{result: result, err: err})
	}()

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("progress display failed: %w", err)
	}
	m := final.(progressModel)
	return m.result, m.err
}
