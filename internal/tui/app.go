package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/idilsaglam/shoplist/internal/dialog"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store/memstore"
	"github.com/idilsaglam/shoplist/internal/ui"
)

const defaultToastDuration = 2 * time.Second

// ItemStore is what the screen needs from the list state.
// *memstore.Store implements it.
type ItemStore interface {
	dialog.Adder
	Items() []model.ShoppingItem
	Get(id int) (model.ShoppingItem, bool)
	Edit(id int, name string, quantity int) error
	Delete(id int) error
	SetEditing(id int, editing bool) error
}

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

type field int

const (
	fieldName field = iota
	fieldQuantity
)

// toastExpiredMsg clears the toast it was scheduled for; later toasts win.
type toastExpiredMsg struct{ seq int }

type Params struct {
	Store         ItemStore
	Logger        *slog.Logger
	Theme         ui.Theme
	ToastDuration time.Duration
}

// App is the single shopping-list screen.
type App struct {
	store ItemStore
	log   *slog.Logger
	keys  keyMap
	st    styles
	theme ui.Theme

	list list.Model
	mode mode

	// Shared inputs for the add dialog and the inline editor.
	nameIn textinput.Model
	qtyIn  textinput.Model
	focus  field

	dlg    dialog.AddDialog
	editor *dialog.ItemEditor

	toast    dialog.Notice
	toastSeq int
	toastDur time.Duration

	width, height int
	quitting      bool
}

func NewApp(p Params) App {
	if p.Store == nil {
		p.Store = memstore.New()
	}
	if p.Logger == nil {
		p.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if p.ToastDuration <= 0 {
		p.ToastDuration = defaultToastDuration
	}
	if p.Theme.Name == "" {
		p.Theme = ui.Current()
	}
	st := newStyles(p.Theme)
	keys := defaultKeys()

	l := list.New(toRows(p.Store.Items()), rowDelegate{st: st, theme: p.Theme}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = st.title
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	// q and ctrl+c are handled by App so the final list can be read back.
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = keys.rowKeys
	l.AdditionalFullHelpKeys = keys.rowKeys

	nameIn := textinput.New()
	nameIn.Prompt = "> "
	nameIn.Placeholder = "Item name..."
	qtyIn := textinput.New()
	qtyIn.Prompt = "> "
	qtyIn.Placeholder = "Quantity"

	a := App{
		store:    p.Store,
		log:      p.Logger,
		keys:     keys,
		st:       st,
		theme:    p.Theme,
		list:     l,
		nameIn:   nameIn,
		qtyIn:    qtyIn,
		toastDur: p.ToastDuration,
	}
	a.width, a.height = widthHeight()
	a.refresh()
	a.resize()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd { return nil }

// Items returns the current list, in display order.
func (a App) Items() []model.ShoppingItem { return a.store.Items() }

func (a App) DialogOpen() bool { return a.mode == modeAdd }
func (a App) Editing() bool    { return a.mode == modeEdit }
func (a App) Quitting() bool   { return a.quitting }
func (a App) Toast() string    { return string(a.toast) }

// Draft returns the text currently held by the name and quantity fields.
func (a App) Draft() (name, quantity string) { return a.nameIn.Value(), a.qtyIn.Value() }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resize()
		return a, nil
	case toastExpiredMsg:
		if msg.seq == a.toastSeq {
			a.toast = ""
		}
		return a, nil
	}

	switch a.mode {
	case modeAdd:
		return a.updateAdd(msg)
	case modeEdit:
		return a.updateEdit(msg)
	}
	return a.updateBrowse(msg)
}

func (a App) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && a.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(km, a.keys.Quit):
			a.quitting = true
			return a, tea.Quit
		case key.Matches(km, a.keys.Add):
			return a.openAdd()
		case key.Matches(km, a.keys.Edit):
			if r, ok := a.list.SelectedItem().(row); ok {
				return a.openEdit(r.ID)
			}
			return a, nil
		case key.Matches(km, a.keys.Delete):
			if r, ok := a.list.SelectedItem().(row); ok {
				return a.deleteItem(r.ID)
			}
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.list, cmd = a.list.Update(msg)
	return a, cmd
}

// ---------------------------------------------------
// Add dialog
// ---------------------------------------------------

func (a App) openAdd() (tea.Model, tea.Cmd) {
	a.dlg.Open()
	a.mode = modeAdd
	// The dialog reports over-long names itself instead of truncating.
	a.nameIn.CharLimit = 0
	a.nameIn.SetValue(a.dlg.Name())
	a.qtyIn.SetValue(a.dlg.Quantity())
	a.qtyIn.CursorEnd()
	a.resize()
	cmd := a.focusField(fieldName)
	return a, cmd
}

func (a App) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, a.keys.Confirm):
			it, n, err := a.dlg.Confirm(a.store)
			if err != nil {
				a.log.Error("add item failed", "error", err)
				cmd := a.notify(errorNotice(err))
				return a, cmd
			}
			if n == "" {
				// blank name: nothing happens
				return a, nil
			}
			a.log.Info("item added", "id", it.ID, "name", it.Name, "quantity", it.Quantity)
			a.closeForm()
			// the new row may not match an applied filter
			a.list.ResetFilter()
			cmd := a.refresh()
			a.list.Select(len(a.list.Items()) - 1)
			cmd = tea.Batch(cmd, a.notify(n))
			return a, cmd
		case key.Matches(km, a.keys.Cancel):
			n := a.dlg.Cancel()
			a.log.Debug("add cancelled")
			a.closeForm()
			cmd := a.notify(n)
			return a, cmd
		case key.Matches(km, a.keys.NextField, a.keys.PrevField):
			cmd := a.focusField(a.otherField())
			return a, cmd
		}
	}

	in := a.focused()
	before, pos := in.Value(), in.Position()
	next, cmd := in.Update(msg)
	if next.Value() == before {
		*in = next
		return a, cmd
	}
	var n dialog.Notice
	var accepted bool
	if a.focus == fieldName {
		n, accepted = a.dlg.SetName(next.Value())
	} else {
		n, accepted = a.dlg.SetQuantity(next.Value())
	}
	if accepted {
		*in = next
		return a, cmd
	}
	a.log.Debug("input rejected", "field", a.focusLabel(), "value", next.Value(), "notice", string(n))
	in.SetValue(before)
	in.SetCursor(pos)
	cmd = a.notify(n)
	return a, cmd
}

// ---------------------------------------------------
// Inline editor
// ---------------------------------------------------

func (a App) openEdit(id int) (tea.Model, tea.Cmd) {
	it, ok := a.store.Get(id)
	if !ok {
		return a, nil
	}
	if err := a.store.SetEditing(id, true); err != nil {
		a.log.Error("start edit failed", "id", id, "error", err)
		return a, nil
	}
	store := a.store
	a.editor = dialog.NewItemEditor(it, func(name string, quantity int) error {
		return store.Edit(id, name, quantity)
	})
	a.mode = modeEdit
	a.nameIn.CharLimit = model.MaxNameLength
	a.nameIn.SetValue(a.editor.Name())
	a.nameIn.CursorEnd()
	a.qtyIn.SetValue(a.editor.Quantity())
	a.qtyIn.CursorEnd()
	cmd := a.refresh()
	a.resize()
	cmd = tea.Batch(cmd, a.focusField(fieldName))
	return a, cmd
}

func (a App) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, a.keys.Confirm):
			id := a.editor.ItemID()
			err := a.editor.Save()
			if err != nil {
				if !errors.Is(err, memstore.ErrBlankName) {
					a.log.Error("edit item failed", "id", id, "error", err)
				}
				cmd := a.notify(errorNotice(err))
				return a, cmd
			}
			if it, ok := a.store.Get(id); ok {
				a.log.Info("item updated", "id", id, "name", it.Name, "quantity", it.Quantity)
			}
			a.closeForm()
			cmd := tea.Batch(a.refresh(), a.notify(dialog.NoticeItemUpdated))
			return a, cmd
		case key.Matches(km, a.keys.Cancel):
			id := a.editor.ItemID()
			if err := a.store.SetEditing(id, false); err != nil {
				a.log.Error("stop edit failed", "id", id, "error", err)
			}
			a.closeForm()
			cmd := tea.Batch(a.refresh(), a.notify(dialog.NoticeCancelled))
			return a, cmd
		case key.Matches(km, a.keys.NextField, a.keys.PrevField):
			cmd := a.focusField(a.otherField())
			return a, cmd
		}
	}

	in := a.focused()
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	if a.focus == fieldName {
		a.editor.SetName(in.Value())
	} else {
		a.editor.SetQuantity(in.Value())
	}
	return a, cmd
}

// ---------------------------------------------------
// Delete
// ---------------------------------------------------

func (a App) deleteItem(id int) (tea.Model, tea.Cmd) {
	if err := a.store.Delete(id); err != nil {
		a.log.Error("delete item failed", "id", id, "error", err)
		cmd := a.notify(errorNotice(err))
		return a, cmd
	}
	a.log.Info("item deleted", "id", id)
	cmd := tea.Batch(a.refresh(), a.notify(dialog.NoticeItemDeleted))
	return a, cmd
}

// ---------------------------------------------------
// helpers
// ---------------------------------------------------

func (a *App) refresh() tea.Cmd {
	items := a.store.Items()
	units := 0
	for _, it := range items {
		units += it.Quantity
	}
	a.list.Title = fmt.Sprintf("Shopping List   %s %d  %s %d",
		a.st.accent.Render("Items"), len(items),
		a.st.quantity.Render("Units"), units,
	)
	return a.list.SetItems(toRows(items))
}

// errorNotice turns a store error into something fit for a toast.
func errorNotice(err error) dialog.Notice {
	switch {
	case errors.Is(err, memstore.ErrNotFound):
		return dialog.NoticeItemNotFound
	case errors.Is(err, memstore.ErrBlankName):
		return dialog.NoticeNameRequired
	case errors.Is(err, model.ErrQuantityTooLarge):
		return dialog.NoticeQuantityTooBig
	case errors.Is(err, model.ErrQuantityNotDigit):
		return dialog.NoticeQuantityNaN
	case errors.Is(err, model.ErrEmptyQuantity), errors.Is(err, model.ErrQuantityZero):
		return dialog.NoticeQuantityMissing
	}
	return dialog.NoticeActionFailed
}

func (a *App) notify(n dialog.Notice) tea.Cmd {
	if n == "" {
		return nil
	}
	a.toast = n
	a.toastSeq++
	seq := a.toastSeq
	return tea.Tick(a.toastDur, func(time.Time) tea.Msg { return toastExpiredMsg{seq: seq} })
}

func (a *App) focused() *textinput.Model {
	if a.focus == fieldQuantity {
		return &a.qtyIn
	}
	return &a.nameIn
}

func (a *App) focusField(f field) tea.Cmd {
	a.focus = f
	if f == fieldName {
		a.qtyIn.Blur()
		return a.nameIn.Focus()
	}
	a.nameIn.Blur()
	return a.qtyIn.Focus()
}

func (a App) otherField() field {
	if a.focus == fieldName {
		return fieldQuantity
	}
	return fieldName
}

func (a App) focusLabel() string {
	if a.focus == fieldName {
		return "name"
	}
	return "quantity"
}

func (a *App) closeForm() {
	a.mode = modeBrowse
	a.editor = nil
	a.focus = fieldName
	a.nameIn.Blur()
	a.qtyIn.Blur()
	a.nameIn.SetValue("")
	a.qtyIn.SetValue("")
	a.resize()
}

// formHeight is the number of rows the dialog box takes, border included.
const formHeight = 8

func (a *App) resize() {
	w, h := a.width-4, a.height-5 // outer frame + toast line
	if a.mode != modeBrowse {
		h -= formHeight
	}
	if w < 20 {
		w = 20
	}
	if h < 3 {
		h = 3
	}
	a.list.SetSize(w, h)
}

// ---------------------------------------------------
// View
// ---------------------------------------------------

func (a App) View() string {
	if a.quitting {
		return ""
	}
	content := a.list.View()
	if a.mode != modeBrowse {
		content += "\n" + a.formView()
	}
	toast := ""
	if a.toast != "" {
		toast = a.st.toast.Render(string(a.toast))
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.st.box().Render(content), toast)
}

func (a App) formView() string {
	title := a.theme.SymAdd + " Add Item"
	if a.mode == modeEdit {
		title = a.theme.SymEdit + " Edit Item"
	}
	var help []string
	for _, b := range a.keys.formHelp() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	lines := []string{
		a.st.title.Render(title),
		a.st.label.Render("Name"),
		a.nameIn.View(),
		a.st.label.Render("Quantity"),
		a.qtyIn.View(),
		a.st.help.Render(strings.Join(help, " • ")),
	}
	return a.st.box().Render(strings.Join(lines, "\n"))
}
