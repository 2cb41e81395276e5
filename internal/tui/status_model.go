package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/parththirwani/tally/internal/models"
	"github.com/parththirwani/tally/internal/timeutil"
)

// keyMap defines the live status view key bindings
type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

var statusKeys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "exit (keeps tracking)"),
	),
}

// StatusModel is the TUI model for the live session status view. It is
// read-only: every tick recomputes elapsed time from the session record
// and the wall clock, and quitting persists nothing.
type StatusModel struct {
	width  int
	height int

	session      *models.Session
	todaySeconds int64
	now          time.Time

	keys keyMap
	help help.Model
}

// tickMsg is sent every second to refresh the clock
type tickMsg struct{}

// NewStatusModel creates a live status model for an active session.
func NewStatusModel(session *models.Session, todaySeconds int64) StatusModel {
	return StatusModel{
		session:      session,
		todaySeconds: todaySeconds,
		now:          time.Now(),
		keys:         statusKeys,
		help:         help.New(),
	}
}

// Init starts the one-second refresh ticker
func (m StatusModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{}
	})
}

// Update handles messages
func (m StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.now = time.Now()
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the live status panel
func (m StatusModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	elapsed := m.session.ElapsedSeconds(m.now)

	var components []string

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, headerStyle.Render("⏱  TRACKING TIME  ⏱"))

	clock := renderBigClock(elapsed)
	clockStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	var clockLines []string
	for _, line := range strings.Split(clock, "\n") {
		clockLines = append(clockLines, lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(m.width).
			Render(clockStyle.Render(line)))
	}
	components = append(components, strings.Join(clockLines, "\n"))

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Align(lipgloss.Center).
		Width(m.width)

	if m.session.Project != "" {
		components = append(components, infoStyle.Render("Project: "+m.session.Project))
	}
	if m.session.Tag != "" {
		components = append(components, infoStyle.Render("Tag: "+m.session.Tag))
	}
	if m.session.Note != "" {
		components = append(components, infoStyle.Render("Note: "+m.session.Note))
	}

	startedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, startedStyle.Render(
		"Started at "+m.session.StartedAt.Format("15:04:05")))

	todayStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(m.width)
	components = append(components, todayStyle.Render(
		"Today: "+timeutil.FormatDuration(m.todaySeconds+elapsed)+" total"))

	helpBar := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(m.width).
		Render(m.help.View(m.keys))

	content := strings.Join(components, "\n\n")

	panel := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, panel, helpBar)
}

// ASCII art for clock digits, 5 rows each
var clockDigits = map[rune][]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock renders elapsed seconds as a large hh:mm:ss display,
// dropping the hour block until the first hour is reached.
func renderBigClock(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	var timeStr string
	if hours > 0 {
		timeStr = fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	} else {
		timeStr = fmt.Sprintf("%02d:%02d", minutes, secs)
	}

	var lines [5]strings.Builder
	for _, char := range timeStr {
		digit, ok := clockDigits[char]
		if !ok {
			continue
		}
		for i := 0; i < 5; i++ {
			lines[i].WriteString(digit[i])
			lines[i].WriteString(" ")
		}
	}

	rows := make([]string, 5)
	for i := range lines {
		rows[i] = lines[i].String()
	}
	return strings.Join(rows, "\n")
}

// RunStatusTUI runs the live status view until the user exits. It never
// mutates the session.
func RunStatusTUI(session *models.Session, todaySeconds int64) error {
	model := NewStatusModel(session, todaySeconds)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	fmt.Println("Session is still being tracked. Use 'tally stop' to finish it.")
	return nil
}
