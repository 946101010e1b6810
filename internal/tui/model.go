package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/eherrera/bevia/internal/growth"
	"github.com/eherrera/bevia/internal/models"
	"github.com/eherrera/bevia/internal/repository"
	"github.com/eherrera/bevia/internal/tui/components/babylist"
	"github.com/eherrera/bevia/internal/tui/components/milestonelist"
	"github.com/eherrera/bevia/internal/tui/components/timeline"
)

type SessionState int

const (
	StateBabies SessionState = iota
	StateTimeline
	StateMilestones
	StateAddBaby
	StateConfirmDelete
)

// tabCount covers the cycling tabs only; modal states sit outside the cycle.
const tabCount = 3

type BabyFormModel struct {
	Name      string
	Birthdate string
	Gender    string
	Notes     string
}

type Model struct {
	repo           *repository.Repository
	engine         *growth.Engine
	state          SessionState
	keys           KeyMap
	help           help.Model
	babyList       babylist.Model
	timeline       timeline.Model
	milestones     milestonelist.Model
	form           *huh.Form
	babyForm       *BabyFormModel
	formError      string
	selected       *models.Baby
	babyToDelete   *models.Baby
	percentileLine string
	quitting       bool
	width          int
	height         int
}

func NewModel(repo *repository.Repository, engine *growth.Engine) Model {
	babies := repo.Babies()

	m := Model{
		repo:       repo,
		engine:     engine,
		state:      StateBabies,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		babyList:   babylist.New(babies, 0, 0),
		timeline:   timeline.New(0, 0),
		milestones: milestonelist.New(0, 0),
	}

	if len(babies) > 0 {
		m.selectBaby(babies[0])
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateBabies {
		keys = append(keys, m.keys.Add, m.keys.Delete, m.keys.Enter)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	if m.state == StateBabies {
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// selectBaby loads the detail tabs for the given baby.
func (m *Model) selectBaby(baby models.Baby) {
	m.selected = &baby
	m.timeline.SetBaby(baby, m.repo.Logs(baby.ID), m.repo.GrowthRecords(baby.ID))
	m.milestones.SetBaby(baby, m.repo.Milestones(baby.ID))
	m.updatePercentileLine()
}

// updatePercentileLine recomputes the growth status shown under the tabs.
func (m *Model) updatePercentileLine() {
	m.percentileLine = ""
	if m.selected == nil || m.selected.Gender == "" {
		return
	}

	record, ok := m.repo.LatestGrowthRecord(m.selected.ID)
	if !ok || record.Weight == nil {
		return
	}

	ageMonths := m.selected.AgeInMonths(record.Date)
	percentile := m.engine.EstimatePercentile(
		*record.Weight, float64(ageMonths), growth.MeasurementWeight, growth.Sex(m.selected.Gender))
	m.percentileLine = fmt.Sprintf("%s: %.2f kg at %d months (~%dth percentile)",
		m.selected.Name, *record.Weight, ageMonths, percentile)
}

// refreshBabies reloads the baby list and drops stale selection state.
func (m *Model) refreshBabies() {
	babies := m.repo.Babies()
	m.babyList.SetBabies(babies)

	if m.selected == nil {
		return
	}
	if _, ok := m.repo.Baby(m.selected.ID); !ok {
		m.selected = nil
		m.percentileLine = ""
	}
}

// newBabyForm builds the add-baby form bound to a fresh form model.
func (m *Model) newBabyForm() {
	m.babyForm = &BabyFormModel{Birthdate: time.Now().Format("2006-01-02")}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&m.babyForm.Name),
			huh.NewInput().
				Title("Birthdate (YYYY-MM-DD)").
				Value(&m.babyForm.Birthdate),
			huh.NewSelect[string]().
				Title("Sex").
				Options(
					huh.NewOption("unspecified", ""),
					huh.NewOption("female", "female"),
					huh.NewOption("male", "male"),
				).
				Value(&m.babyForm.Gender),
			huh.NewInput().
				Title("Notes").
				Value(&m.babyForm.Notes),
		),
	)
}
