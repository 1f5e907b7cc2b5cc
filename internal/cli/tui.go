package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// ProgressModel - generation progress bar
// =============================================================================

// progressMsg carries a batch tick from the plotter's observer.
type progressMsg struct {
	done  uint64
	total uint64
}

// finishedMsg tells the model the pipeline has returned.
type finishedMsg struct{}

// ProgressModel is the bubbletea model showing dot-plotting progress.
// The generation loop has no cancellation point, so key presses only detach
// the bar; the run itself always completes.
type ProgressModel struct {
	done     uint64
	total    uint64
	barWidth int
	finished bool
}

// NewProgressModel creates a progress model for a run of total dots.
func NewProgressModel(total uint64) ProgressModel {
	return ProgressModel{total: total, barWidth: 40}
}

func (m ProgressModel) Init() tea.Cmd {
	return nil
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.done = msg.done
		if msg.total != 0 {
			m.total = msg.total
		}
	case finishedMsg:
		m.finished = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.barWidth = msg.Width - 24
		if m.barWidth < 10 {
			m.barWidth = 10
		}
		if m.barWidth > 60 {
			m.barWidth = 60
		}
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ProgressModel) View() string {
	if m.finished {
		return ""
	}

	frac := m.fraction()
	filled := int(frac * float64(m.barWidth))
	if filled > m.barWidth {
		filled = m.barWidth
	}

	bar := styleBarFilled.Render(strings.Repeat("█", filled)) +
		styleBarEmpty.Render(strings.Repeat("░", m.barWidth-filled))
	counts := StyleDim.Render(fmt.Sprintf("%d/%d dots", m.done, m.total))

	return fmt.Sprintf("%s %3.0f%% %s\n", bar, frac*100, counts)
}

// fraction returns completion in [0, 1]; a zero-dot run counts as complete.
func (m ProgressModel) fraction() float64 {
	if m.total == 0 {
		return 1
	}
	f := float64(m.done) / float64(m.total)
	if f > 1 {
		return 1
	}
	return f
}
