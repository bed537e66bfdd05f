package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"cudactl/internal/config"
)

// toolkitItem implements list.Item for one toolkit table entry.
type toolkitItem struct {
	entry     config.Entry
	current   bool
	installed bool
}

func (i toolkitItem) Title() string {
	title := fmt.Sprintf("%s · CUDA %s", i.entry.Index, i.entry.Version)
	if i.current {
		title += " ★"
	}
	return title
}

func (i toolkitItem) Description() string {
	if !i.installed {
		return missingStyle.Render("○ not installed") + "  " + i.entry.Root
	}
	return "● installed  " + i.entry.Root
}

func (i toolkitItem) FilterValue() string {
	return i.entry.Index + " " + i.entry.Version
}

type model struct {
	list   list.Model
	choice *config.Entry
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(toolkitItem); ok {
				entry := item.entry
				m.choice = &entry
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.choice != nil {
		return ""
	}
	return appStyle.Render(m.list.View() + helpStyle.Render("enter: switch · q: quit"))
}

// Pick opens the interactive toolkit picker. The second return is false when
// the user quit without choosing.
func Pick(table config.Table, current string, installed func(config.Entry) bool) (config.Entry, bool, error) {
	items := make([]list.Item, 0, table.Len())
	for _, entry := range table.Entries() {
		items = append(items, toolkitItem{
			entry:     entry,
			current:   entry.Root == current,
			installed: installed(entry),
		})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select CUDA toolkit"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)

	final, err := tea.NewProgram(model{list: l}, tea.WithAltScreen()).Run()
	if err != nil {
		return config.Entry{}, false, err
	}

	m, ok := final.(model)
	if !ok || m.choice == nil {
		return config.Entry{}, false, nil
	}
	return *m.choice, true, nil
}
