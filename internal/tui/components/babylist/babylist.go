package babylist

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/eherrera/bevia/internal/constants"
	"github.com/eherrera/bevia/internal/models"
)

type AddBabyMsg struct{}

type DeleteBabyMsg struct {
	Baby models.Baby
}

type SelectBabyMsg struct {
	Baby models.Baby
}

type Item struct {
	Baby models.Baby
}

func (i Item) Title() string {
	return fmt.Sprintf("%s (%s)", i.Baby.Name, models.FormatAge(i.Baby.Birthdate, time.Now()))
}
func (i Item) Description() string {
	desc := "born " + i.Baby.Birthdate.Format(constants.DateFormat)
	if i.Baby.Gender != "" {
		desc += " | " + i.Baby.Gender
	}
	return desc
}
func (i Item) FilterValue() string { return i.Baby.Name }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
	Select key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(babies []models.Baby, width, height int) Model {
	items := make([]list.Item, len(babies))
	for i, b := range babies {
		items[i] = Item{Baby: b}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Babies"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete, keys.Select}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete, keys.Select}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetBabies(babies []models.Baby) {
	items := make([]list.Item, len(babies))
	for i, b := range babies {
		items[i] = Item{Baby: b}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddBabyMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteBabyMsg{Baby: i.Baby} }
			}
		case key.Matches(msg, m.keys.Select):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return SelectBabyMsg{Baby: i.Baby} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No babies yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
