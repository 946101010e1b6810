package timeline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eherrera/bevia/internal/constants"
	"github.com/eherrera/bevia/internal/models"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(18)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Width(9)

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

// Model renders a baby's daily logs and growth records, newest first.
type Model struct {
	viewport viewport.Model
	Baby     *models.Baby
	Logs     []models.DailyLog
	Records  []models.GrowthRecord
	width    int
	height   int
}

func New(width, height int) Model {
	vp := viewport.New(width, height)
	return Model{viewport: vp}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Baby == nil {
		return "Select a baby on the Babies tab to see their timeline."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetBaby(baby models.Baby, logs []models.DailyLog, records []models.GrowthRecord) {
	m.Baby = &baby
	m.Logs = logs
	m.Records = records
	m.Render()
}

func (m *Model) Render() {
	if m.Baby == nil {
		m.viewport.SetContent("No baby selected.")
		return
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("Growth"))
	b.WriteString("\n")
	if len(m.Records) == 0 {
		b.WriteString(detailStyle.Render("  no measurements recorded"))
		b.WriteString("\n")
	}
	for _, r := range m.Records {
		var parts []string
		if r.Weight != nil {
			parts = append(parts, fmt.Sprintf("%.2f kg", *r.Weight))
		}
		if r.Height != nil {
			parts = append(parts, fmt.Sprintf("%.1f cm", *r.Height))
		}
		if r.Head != nil {
			parts = append(parts, fmt.Sprintf("head %.1f cm", *r.Head))
		}
		line := fmt.Sprintf("%s %s\n",
			timeStyle.Render(r.Date.Format(constants.DateFormat)),
			detailStyle.Render(strings.Join(parts, "  ")),
		)
		b.WriteString(line)
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Daily logs"))
	b.WriteString("\n")
	if len(m.Logs) == 0 {
		b.WriteString(detailStyle.Render("  no logs recorded"))
		b.WriteString("\n")
	}
	for _, l := range m.Logs {
		timeStr := fmt.Sprintf("%s %s", l.Date.Format(constants.DateFormat), l.TimeOfDay)
		line := fmt.Sprintf("%s %s %s\n",
			timeStyle.Render(timeStr),
			kindStyle.Render(string(l.Kind)),
			detailStyle.Render(l.Summary()),
		)
		b.WriteString(line)
	}

	m.viewport.SetContent(b.String())
}
