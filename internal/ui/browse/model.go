// Package browse provides an interactive report browser. Each keypress runs
// at most one query; nothing is polled.
package browse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/j-veylop/screentime/internal/models"
	"github.com/j-veylop/screentime/internal/names"
	"github.com/j-veylop/screentime/internal/report"
	"github.com/j-veylop/screentime/internal/ui/components"
)

// Lines reserved above and below the scrolling body.
const (
	headerHeight = 4
	footerHeight = 2
)

// Loader runs report queries for the browser.
type Loader interface {
	Usage(ctx context.Context, days int) report.Outcome
	Message(outcome report.Outcome) string
	Names() *names.Directory
}

// keyMap defines the key bindings of the browser.
type keyMap struct {
	ToggleRange key.Binding
	ToggleView  key.Binding
	Refresh     key.Binding
	Up          key.Binding
	Down        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ToggleRange: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "time range"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "list/bars"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "ctrl+r"),
			key.WithHelp("r", "reload"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// usageLoadedMsg carries the result of a query for days.
type usageLoadedMsg struct {
	days    int
	outcome report.Outcome
	labels  []string
}

// Model is the browser state.
type Model struct {
	ctx      context.Context
	loader   Loader
	keys     keyMap
	viewport viewport.Model
	spinner  components.LoadingSpinner
	width    int
	height   int

	// days is the window being shown. custom is set while it is not one of
	// the TimeRange presets.
	days      int
	custom    bool
	timeRange models.TimeRange
	bars      bool

	loading     bool
	loaded      bool
	outcome     report.Outcome
	labels      []string
	lastRefresh time.Time
}

// New creates a browser starting on a window of days.
func New(ctx context.Context, loader Loader, days int) *Model {
	days = max(days, 1)
	tr, preset := models.TimeRangeForDays(days)
	return &Model{
		ctx:       ctx,
		loader:    loader,
		keys:      defaultKeyMap(),
		viewport:  viewport.New(0, 0),
		spinner:   components.NewSpinner("Reading usage..."),
		days:      days,
		custom:    !preset,
		timeRange: tr,
		loading:   true,
	}
}

// Init starts the first query.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick())
}

// loadCmd queries the current window and resolves display names off the
// UI goroutine.
func (m *Model) loadCmd() tea.Cmd {
	days := m.days
	return func() tea.Msg {
		outcome := m.loader.Usage(m.ctx, days)
		dir := m.loader.Names()
		labels := make([]string, len(outcome.Report.Records))
		for i, rec := range outcome.Report.Records {
			labels[i] = dir.Name(m.ctx, rec.AppID)
		}
		return usageLoadedMsg{days: days, outcome: outcome, labels: labels}
	}
}

// Update handles messages for the browser.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.refreshContent()
		return m, nil

	case usageLoadedMsg:
		if msg.days != m.days {
			// A newer request is in flight.
			return m, nil
		}
		m.loading = false
		m.loaded = true
		m.outcome = msg.outcome
		m.labels = msg.labels
		m.lastRefresh = time.Now()
		m.refreshContent()
		m.viewport.GotoTop()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleRange):
		if m.custom {
			m.custom = false
			m.timeRange = models.TimeRange24Hours
		} else {
			m.timeRange = m.timeRange.Next()
		}
		m.days = m.timeRange.Days()
		return m, m.reload()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.reload()

	case key.Matches(msg, m.keys.ToggleView):
		m.bars = !m.bars
		m.refreshContent()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) reload() tea.Cmd {
	if m.loading {
		// Still show the spinner, but do not start a second ticker.
		return m.loadCmd()
	}
	m.loading = true
	m.spinner.SetLabel(fmt.Sprintf("Reading %s...", m.windowName()))
	return tea.Batch(m.loadCmd(), m.spinner.Tick())
}

// Days returns the window currently shown.
func (m *Model) Days() int {
	return m.days
}

// Run starts the browser and blocks until the user quits or ctx ends.
func Run(ctx context.Context, loader Loader, days int) error {
	p := tea.NewProgram(New(ctx, loader, days), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}
