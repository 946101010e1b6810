package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/eherrera/bevia/internal/models"
	"github.com/eherrera/bevia/internal/tui/components/babylist"
	"github.com/eherrera/bevia/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Add Baby State
	if m.state == StateAddBaby {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateBabies
			m.formError = ""
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			birthdate, err := time.Parse("2006-01-02", strings.TrimSpace(m.babyForm.Birthdate))
			if err != nil {
				// Invalid date; keep user in the form to correct the value
				m.formError = fmt.Sprintf("Invalid birthdate: %v", err)
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}

			baby := models.NewBaby(strings.TrimSpace(m.babyForm.Name), birthdate, m.babyForm.Gender, m.babyForm.Notes)

			result := validation.New().ValidateBaby(baby, time.Now())
			if result.HasConflicts() {
				m.formError = result.FormatReport()
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}

			if m.repo.SaveBaby(baby) {
				m.refreshBabies()
				m.formError = ""
				m.state = StateBabies
			} else {
				// Store error; stay in form state to allow retry
				m.formError = "Failed to save baby"
				m.form.State = huh.StateNormal
			}
		case huh.StateAborted:
			m.state = StateBabies
			m.formError = ""
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if m.babyToDelete != nil {
					m.repo.DeleteBaby(m.babyToDelete.ID)
					m.babyToDelete = nil
					m.refreshBabies()
				}
				m.state = StateBabies
			case "n", "N", "esc":
				m.babyToDelete = nil
				m.state = StateBabies
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Reserve rows for the tab bar, status line and help
		contentHeight := msg.Height - 6
		if contentHeight < 1 {
			contentHeight = 1
		}
		m.babyList.SetSize(msg.Width-4, contentHeight)
		m.timeline.SetSize(msg.Width-4, contentHeight)
		m.milestones.SetSize(msg.Width-4, contentHeight)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Right):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Left):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case babylist.AddBabyMsg:
		m.newBabyForm()
		m.state = StateAddBaby
		return m, m.form.Init()

	case babylist.DeleteBabyMsg:
		baby := msg.Baby
		m.babyToDelete = &baby
		m.state = StateConfirmDelete
		return m, nil

	case babylist.SelectBabyMsg:
		m.selectBaby(msg.Baby)
		m.state = StateTimeline
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case StateBabies:
		m.babyList, cmd = m.babyList.Update(msg)
	case StateTimeline:
		m.timeline, cmd = m.timeline.Update(msg)
	case StateMilestones:
		m.milestones, cmd = m.milestones.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}
