package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/screentime/internal/format"
	"github.com/j-veylop/screentime/internal/models"
	"github.com/j-veylop/screentime/internal/render"
	"github.com/j-veylop/screentime/internal/report"
	"github.com/j-veylop/screentime/internal/ui/components"
	"github.com/j-veylop/screentime/internal/ui/styles"
)

// listNameWidth is the name column of the list view.
const listNameWidth = 25

// View renders the browser.
func (m *Model) View() string {
	if m.loading && !m.loaded {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m *Model) windowName() string {
	return format.WindowLabel(m.days)
}

func (m *Model) renderHeader() string {
	var tabs []string
	for _, tr := range []models.TimeRange{models.TimeRange24Hours, models.TimeRange7Days, models.TimeRange30Days} {
		style := styles.InactiveTabStyle
		if !m.custom && tr == m.timeRange {
			style = styles.ActiveTabStyle
		}
		tabs = append(tabs, style.Render(tr.String()))
	}
	if m.custom {
		tabs = append(tabs, styles.ActiveTabStyle.Render(fmt.Sprintf("%d Days", m.days)))
	}

	status := styles.HelpStyle.Render(m.windowName())
	if m.loading {
		status = m.spinner.View()
	} else if m.outcome.Status == report.StatusOK {
		status = fmt.Sprintf("%s %s",
			styles.SubTitleStyle.Render("Total"),
			styles.TotalStyle.Render(format.Duration(m.outcome.Report.TotalSeconds)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Screen Time"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		status,
		"",
	)
}

func (m *Model) renderFooter() string {
	bindings := []struct{ key, desc string }{
		{m.keys.ToggleRange.Help().Key, m.keys.ToggleRange.Help().Desc},
		{m.keys.ToggleView.Help().Key, m.keys.ToggleView.Help().Desc},
		{m.keys.Refresh.Help().Key, m.keys.Refresh.Help().Desc},
		{"↑/↓", "scroll"},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	}

	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = styles.HelpKeyStyle.Render(b.key) + " " + styles.HelpDescStyle.Render(b.desc)
	}

	help := strings.Join(parts, styles.HelpStyle.Render(" • "))
	if !m.lastRefresh.IsZero() {
		help += styles.HelpStyle.Render("  updated " + m.lastRefresh.Format("15:04:05"))
	}
	return "\n" + help
}

// refreshContent rebuilds the scrolling body from the loaded outcome.
func (m *Model) refreshContent() {
	if !m.loaded {
		return
	}

	var body string
	switch m.outcome.Status {
	case report.StatusFailed:
		body = styles.ErrorTextStyle.Render(m.loader.Message(m.outcome))
	case report.StatusNoData:
		body = styles.HelpStyle.Render(render.NoDataMessage)
	default:
		if m.bars {
			body = strings.Join(components.RenderBarChart(m.outcome.Report, m.labels, components.DefaultBarWidth), "\n")
		} else {
			body = m.renderList()
		}
	}
	m.viewport.SetContent(body)
}

func (m *Model) renderList() string {
	r := m.outcome.Report
	shares := components.Shares(r)
	lines := make([]string, len(r.Records))
	for i, rec := range r.Records {
		percent := shares[i]
		lines[i] = fmt.Sprintf("%3d. %s %s %s",
			i+1,
			format.PadRight(m.label(i), listNameWidth),
			format.PadLeft(format.Duration(rec.Seconds), 8),
			styles.GetShareStyle(percent).Render(format.Percent(percent)),
		)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) label(i int) string {
	if i < len(m.labels) && m.labels[i] != "" {
		return m.labels[i]
	}
	return m.outcome.Report.Records[i].AppID
}
