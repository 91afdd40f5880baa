package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Quit      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	NextField key.Binding
	PrevField key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:       key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:    key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	}
}

// rowKeys are shown in the list help next to the list's own bindings.
func (k keyMap) rowKeys() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel, k.NextField}
}
