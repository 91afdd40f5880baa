package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// row adapts model.ShoppingItem to bubbles/list.Item
type row struct {
	model.ShoppingItem
}

func (r row) FilterValue() string { return r.Name }

func toRows(items []model.ShoppingItem) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, row{it})
	}
	return out
}

// rowDelegate renders one item per line: name, quantity, then the edit and
// delete affordances. Key handling for those lives in App.
type rowDelegate struct {
	st    styles
	theme ui.Theme
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	fmt.Fprintln(w, d.line(r, index == m.Index()))
}

func (d rowDelegate) line(r row, selected bool) string {
	name := r.Name
	if pad := model.MaxNameLength - lipgloss.Width(name); pad > 0 {
		name += strings.Repeat(" ", pad)
	}
	marker := " "
	if r.IsEditing {
		marker = d.st.editing.Render(d.theme.SymEditing)
		name = d.st.editing.Render(name)
	}
	qty := d.st.quantity.Render(fmt.Sprintf("Qty: %d", r.Quantity))
	actions := d.st.muted.Render(d.theme.SymEdit + " " + d.theme.SymDelete)

	prefix := "  "
	if selected {
		prefix = d.st.selected.Render("> ")
		actions = d.st.accent.Render(d.theme.SymEdit + " " + d.theme.SymDelete)
	}
	return fmt.Sprintf("%s%s %s  %s  %s", prefix, marker, name, qty, actions)
}
