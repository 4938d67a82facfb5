package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/corgi-arcade/internal/registry"
	"github.com/vovakirdan/corgi-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	maxRuns      = 100 // Max runs to load
	tableMargins = 4
	chromeRows   = 9 // Title, stats, tabs and help around the table
)

// ScoreboardView selects which runs the table lists.
type ScoreboardView int

const (
	ViewTop    ScoreboardView = iota // Best scores first
	ViewRecent                       // Newest runs first
)

func (v ScoreboardView) String() string {
	if v == ViewRecent {
		return "RECENT RUNS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Toggle   key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.NextGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Toggle, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "top/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	view       ScoreboardView
	runs       []storage.ScoreEntry
	stats      *storage.GameStats
	loadErr    error
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
}

// NewScoreboardModel creates a scoreboard starting on gameID.
// Unknown IDs start on the first registered game.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == gameID {
			m.gameCursor = i
		}
	}

	m.table = m.createTable()
	m.reload()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Result", Width: 7},
		{Title: "Lives", Width: 5},
		{Title: "Time", Width: 7},
		{Title: "Date", Width: 12},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - tableMargins - used; spare > 0 {
		columns[1].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-chromeRows, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m *ScoreboardModel) currentGame() (registry.GameInfo, bool) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, false
	}
	return m.games[m.gameCursor], true
}

// reload loads runs and stats for the current game and view.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.loadErr = nil, nil, nil

	g, ok := m.currentGame()
	if ok && m.store != nil {
		if m.view == ViewRecent {
			m.runs, m.loadErr = m.store.RecentRuns(g.ID, maxRuns)
		} else {
			m.runs, m.loadErr = m.store.TopScores(g.ID, maxRuns)
		}
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(g.ID)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(RunRows(m.runs))
	m.table.GotoTop()
}

// RunRows formats runs as table rows.
func RunRows(runs []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			result,
			fmt.Sprintf("%d", r.LivesLeft),
			formatDuration(r.Duration.Seconds()),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func formatDuration(secs float64) string {
	total := int(secs + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			if m.view == ViewTop {
				m.view = ViewRecent
			} else {
				m.view = ViewTop
			}
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	title := m.view.String()
	if g, ok := m.currentGame(); ok {
		title = fmt.Sprintf("%s - %s", title, g.Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")

	if len(m.games) > 1 {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarises the current game's stats.
func (m ScoreboardModel) statsLine() string {
	switch {
	case m.loadErr != nil:
		return "could not load scores: " + m.loadErr.Error()
	case m.store == nil:
		return "scores are not being recorded"
	case m.stats == nil || m.stats.GamesCount == 0:
		return "no games played"
	}
	s := m.stats
	return fmt.Sprintf("games %d  wins %d  best %d  avg %.1f  last %s",
		s.GamesCount, s.Wins, s.HighScore, s.AvgScore, s.LastPlayed.Format("Jan 02 15:04"))
}

// renderTabs renders the game list as a horizontal tab row.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = activeTabStyle.Render(g.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + g.Title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nFetch some bones to set a high score!")
	}

	return m.table.View()
}

// Runs returns the runs currently listed.
func (m ScoreboardModel) Runs() []storage.ScoreEntry {
	return m.runs
}

// CurrentView returns the active listing.
func (m ScoreboardModel) CurrentView() ScoreboardView {
	return m.view
}

func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunScoreboard runs the interactive scoreboard for gameID.
func RunScoreboard(store *storage.Store, gameID string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, gameID, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
