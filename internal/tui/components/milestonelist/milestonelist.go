package milestonelist

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
	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(16)

	achievedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("35"))

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Model renders a baby's milestones, achieved first.
type Model struct {
	viewport   viewport.Model
	Baby       *models.Baby
	Milestones []models.Milestone
	width      int
	height     int
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
		return "Select a baby on the Babies tab to see their milestones."
	}
	if len(m.Milestones) == 0 {
		return "No milestones recorded for " + m.Baby.Name + "."
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

func (m *Model) SetBaby(baby models.Baby, milestones []models.Milestone) {
	m.Baby = &baby
	m.Milestones = milestones
	m.Render()
}

func (m *Model) Render() {
	if m.Baby == nil {
		m.viewport.SetContent("No baby selected.")
		return
	}

	var b strings.Builder
	for _, ms := range m.Milestones {
		status := pendingStyle.Render("not achieved")
		if ms.IsAchieved() {
			text := "achieved " + ms.AchievedDate.Format(constants.DateFormat)
			if onTime, defined := ms.IsOnTime(m.Baby.Birthdate); defined {
				if onTime {
					text += " ✓ on time"
				} else {
					text += " outside expected range"
				}
			}
			status = achievedStyle.Render(text)
		}

		line := fmt.Sprintf("%s %s %s",
			categoryStyle.Render(ms.Category.DisplayName()),
			nameStyle.Render(ms.Name),
			status,
		)
		if ms.ExpectedRange != nil {
			line += pendingStyle.Render("  expected " + ms.ExpectedRange.String())
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
}
