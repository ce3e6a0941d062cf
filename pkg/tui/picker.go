package tui

import (
	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// picker chooses one value from a closed set: group names, partner statuses.
type picker struct {
	list list.Model
}

func newPicker(title string, names []string, current string) picker {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(choices(names), delegate, 40, max(len(names)+6, 8))
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	for i, n := range names {
		if n == current {
			l.Select(i)
		}
	}
	return picker{list: l}
}

func (p picker) update(msg tea.Msg) (picker, tea.Cmd) {
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// selected is the highlighted value.
func (p picker) selected() (string, bool) {
	c, ok := p.list.SelectedItem().(choice)
	return c.name, ok
}

func (p picker) view() string {
	return p.list.View()
}

func choices(names []string) []list.Item {
	items := make([]list.Item, 0, len(names))
	for _, name := range names {
		items = append(items, choice{name: name})
	}
	return items
}

type choice struct {
	name string
}

func (c choice) Title() string       { return c.name }
func (choice) Description() string   { return "" }
func (c choice) FilterValue() string { return c.name }
