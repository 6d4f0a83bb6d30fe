package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harmonialabs/harmonia/internal/cli/formatter"
	"github.com/harmonialabs/harmonia/internal/contract"
)

type dashboardTab int

const (
	tabScore dashboardTab = iota
	tabForecast
	tabCritical
	tabRecovery
	tabCount
)

var tabTitles = [tabCount]string{"Score", "Forecast", "Critical", "Recovery"}

// dashboardData holds everything the dashboard renders, loaded in one pass.
type dashboardData struct {
	score    *contract.WeeklyScoreResult
	forecast *contract.OverloadForecast
	critical []contract.CriticalDay
	recovery *contract.RecoveryRecommendation
}

type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

type dashboardModel struct {
	app      *App
	tab      dashboardTab
	viewport viewport.Model
	data     *dashboardData
	loading  bool
	err      error
	width    int
	height   int
}

type dashboardKeys struct {
	NextTab key.Binding
	PrevTab key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

var dashKeys = dashboardKeys{
	NextTab: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next")),
	PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func newDashboardModel(app *App) dashboardModel {
	return dashboardModel{
		app:      app,
		viewport: viewport.New(80, 24),
		loading:  true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return loadDashboard(m.app)
}

func loadDashboard(app *App) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		score, err := app.Analytics.WeeklyScore(ctx, contract.WeeklyScoreRequest{Now: &now})
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		forecast, err := app.Analytics.PredictOverload(ctx, app.HorizonDays)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		critical, err := app.Analytics.CriticalDays(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		recovery, err := app.Analytics.RecoveryRecommendation(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{data: dashboardData{
			score:    score,
			forecast: forecast,
			critical: critical,
			recovery: recovery,
		}}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		m.refreshContent()
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.data = &msg.data
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, dashKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, dashKeys.NextTab):
			m.tab = (m.tab + 1) % tabCount
			m.refreshContent()
			return m, nil
		case key.Matches(msg, dashKeys.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.refreshContent()
			return m, nil
		case key.Matches(msg, dashKeys.Refresh):
			m.loading = true
			return m, loadDashboard(m.app)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *dashboardModel) refreshContent() {
	m.viewport.SetContent(m.tabContent())
	m.viewport.GotoTop()
}

func (m *dashboardModel) tabContent() string {
	if m.loading {
		return formatter.Dim("Loading schedule…")
	}
	if m.err != nil {
		return formatter.StyleRed.Render("Error: " + m.err.Error())
	}
	if m.data == nil {
		return ""
	}

	switch m.tab {
	case tabScore:
		return formatter.FormatWeeklyScore(m.data.score)
	case tabForecast:
		return formatter.FormatForecast(m.data.forecast)
	case tabCritical:
		return formatter.FormatCriticalDays(m.data.critical)
	case tabRecovery:
		return formatter.FormatRecovery(m.data.recovery)
	}
	return ""
}

func (m dashboardModel) View() string {
	var tabs []string
	for i, title := range tabTitles {
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(formatter.ColorDim)
		if dashboardTab(i) == m.tab {
			style = style.Foreground(formatter.ColorHeader).Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(title))
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	help := formatter.Dim("tab: switch   r: refresh   q: quit")

	return strings.Join([]string{tabBar, m.viewport.View(), help}, "\n")
}
