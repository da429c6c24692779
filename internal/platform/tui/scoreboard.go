package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lanejump/internal/storage"
)

// Board layout constants
const (
	maxRounds    = 100 // Max rounds to load
	boardChrome  = 9   // Rows used by title, stats, borders and help
	minTableRows = 3
)

// BoardView selects which rounds the board lists.
type BoardView int

const (
	BoardTop    BoardView = iota // Most steps first
	BoardRecent                  // Newest first
)

func (v BoardView) String() string {
	if v == BoardRecent {
		return "RECENT ROUNDS"
	}
	return "BEST ROUNDS"
}

// BoardKeyMap defines the key bindings for the round board.
type BoardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Quit}}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("tab", "left", "right"),
			key.WithHelp("tab", "best/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// BoardModel is the Bubble Tea model for the round history screen.
type BoardModel struct {
	store    *storage.Store
	gameID   string
	title    string
	view     BoardView
	rounds   []storage.RoundRecord
	stats    *storage.Stats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     BoardKeyMap
	width    int
	height   int
	quitting bool
}

// NewBoardModel creates a board for one game's rounds.
func NewBoardModel(store *storage.Store, gameID, title string, width, height int) BoardModel {
	m := BoardModel{
		store:  store,
		gameID: gameID,
		title:  title,
		keys:   DefaultBoardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *BoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Steps", Width: 6},
		{Title: "Reason", Width: 9},
		{Title: "Seed", Width: 20},
		{Title: "Player", Width: 10},
		{Title: "Date", Width: 12},
	}

	// Narrow terminals drop the seed column
	if m.width > 0 && m.width < 76 {
		columns = append(columns[:3], columns[4:]...)
	}

	height := m.height - boardChrome
	if height < minTableRows {
		height = minTableRows
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// load reads the rounds for the current view.
func (m *BoardModel) load() {
	m.rounds, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil {
		if m.view == BoardRecent {
			m.rounds, m.loadErr = m.store.RecentRounds(m.gameID, maxRounds)
		} else {
			m.rounds, m.loadErr = m.store.TopRounds(m.gameID, maxRounds)
		}
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GameStats(m.gameID)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rounds.
func (m *BoardModel) updateTableRows() {
	withSeed := len(m.table.Columns()) == 6

	rows := make([]table.Row, len(m.rounds))
	for i, r := range m.rounds {
		row := table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Steps),
			r.Reason,
		}
		if withSeed {
			row = append(row, strconv.FormatInt(r.Seed, 10))
		}
		row = append(row, r.Player, r.CreatedAt.Format("Jan 02 15:04"))
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the board model.
func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the board.
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.view = 1 - m.view
			m.load()
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

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the board.
func (m BoardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("%s - %s", m.view, m.title), m.width)))
	b.WriteString("\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(statsStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m BoardModel) statsLine() string {
	if m.stats == nil || m.stats.Rounds == 0 {
		return "no rounds yet"
	}
	return fmt.Sprintf("rounds %d  best %d  avg %.1f  gap %d  off road %d  timeout %d",
		m.stats.Rounds, m.stats.BestSteps, m.stats.AvgSteps,
		m.stats.Reasons["gap"], m.stats.Reasons["off_road"], m.stats.Reasons["timeout"])
}

// renderTableContent renders the table or an empty message.
func (m BoardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load rounds:\n" + m.loadErr.Error())
	case len(m.rounds) == 0:
		return emptyStyle.Render("No rounds recorded yet.\nPlay a round to fill the board!")
	}
	return m.table.View()
}

// Rows returns the rows currently shown in the table.
func (m BoardModel) Rows() []table.Row {
	return m.table.Rows()
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunBoard runs the round history screen.
func RunBoard(store *storage.Store, gameID, title string, width, height int) error {
	p := tea.NewProgram(
		NewBoardModel(store, gameID, title, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
