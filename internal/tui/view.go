package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateBabies:
		content = docStyle.Render(m.babyList.View())
	case StateTimeline:
		content = docStyle.Render(m.timeline.View())
	case StateMilestones:
		content = docStyle.Render(m.milestones.View())
	case StateAddBaby:
		content = m.viewAddBaby()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewStatus(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Babies", "Timeline", "Milestones"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.percentileLine == "" {
		return ""
	}
	return statusStyle.Render(" " + m.percentileLine)
}

func (m Model) viewAddBaby() string {
	content := m.form.View()
	if m.formError != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, errorStyle.Render(m.formError), content)
	}
	return content
}

func (m Model) viewConfirmDelete() string {
	name := "this baby"
	if m.babyToDelete != nil {
		name = m.babyToDelete.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Are you sure you want to delete "+name+"?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
