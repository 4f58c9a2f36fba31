// Package progress shows a live view of a batch render.
package progress

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/genart/internal/batch"
)

const (
	barWidth     = 40
	historyLimit = 60
)

var (
	cyan = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	red  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	bold = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
)

// ResultMsg reports one finished seed.
type ResultMsg batch.Result

// DoneMsg ends the view once the batch returns.
type DoneMsg struct{ Err error }

type Model struct {
	title   string
	total   int
	done    int
	failed  int
	last    string
	history []float64
	started time.Time
	elapsed time.Duration
	err     error

	finished bool
	quitting bool
	cancel   context.CancelFunc
}

// New builds the view for total seeds. cancel is called when the user quits
// early and may be nil.
func New(title string, total int, cancel context.CancelFunc) Model {
	return Model{
		title:   title,
		total:   total,
		started: time.Now(),
		history: make([]float64, 0, historyLimit),
		cancel:  cancel,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
		return m, nil
	case ResultMsg:
		m.done++
		if msg.Err != nil {
			m.failed++
			m.last = fmt.Sprintf("seed %d: %v", msg.Seed, msg.Err)
		} else {
			m.last = msg.Run
		}
		m.history = append(m.history, msg.Duration.Seconds())
		if len(m.history) > historyLimit {
			m.history = m.history[len(m.history)-historyLimit:]
		}
		m.elapsed = time.Since(m.started)
		return m, nil
	case DoneMsg:
		m.finished = true
		m.err = msg.Err
		m.elapsed = time.Since(m.started)
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) Done() int { return m.done }

func (m Model) Failed() int { return m.failed }

func (m Model) Err() error { return m.err }

func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + bold.Render(m.title) + "\n\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", m.bar(), dim.Render(fmt.Sprintf("%d/%d", m.done, m.total))))

	if m.last != "" {
		b.WriteString("  " + dim.Render("last ") + m.last + "\n")
	}
	if spark := sparkline(m.history, barWidth); spark != "" {
		b.WriteString("  " + dim.Render("time ") + cyan.Render(spark) + "\n")
	}
	if m.failed > 0 {
		b.WriteString("  " + red.Render(fmt.Sprintf("%d failed", m.failed)) + "\n")
	}

	switch {
	case m.finished && m.err != nil:
		b.WriteString("\n  " + red.Render(m.err.Error()) + "\n")
	case m.finished:
		b.WriteString("\n  " + dim.Render(fmt.Sprintf("done in %s", m.elapsed.Round(time.Millisecond))) + "\n")
	case m.quitting:
		b.WriteString("\n  " + dim.Render("stopping") + "\n")
	default:
		b.WriteString("\n  " + dim.Render("q quit") + "\n")
	}
	return b.String()
}

func (m Model) bar() string {
	filled := 0
	if m.total > 0 {
		filled = min(barWidth*m.done/m.total, barWidth)
	}
	return cyan.Render(strings.Repeat("█", filled)) + dim.Render(strings.Repeat("░", barWidth-filled))
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := data[0], data[0]
	for _, v := range data {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	var sb strings.Builder
	for _, v := range data {
		idx := int((v - lo) / span * 7)
		sb.WriteRune(chars[max(0, min(idx, 7))])
	}
	return sb.String()
}

// Run drives work while showing its progress. work reports each finished
// seed through the callback it is given; quitting the view cancels ctx.
func Run(ctx context.Context, out io.Writer, title string, total int, work func(ctx context.Context, report func(batch.Result)) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(New(title, total, cancel), tea.WithContext(ctx), tea.WithOutput(out))

	errc := make(chan error, 1)
	go func() {
		err := work(ctx, func(res batch.Result) { p.Send(ResultMsg(res)) })
		p.Send(DoneMsg{Err: err})
		errc <- err
	}()

	final, runErr := p.Run()
	cancel()
	workErr := <-errc

	if m, ok := final.(Model); ok && m.quitting {
		return context.Canceled
	}
	if workErr != nil {
		return workErr
	}
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	return nil
}
