package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/idilsaglam/shoplist/internal/dialog"
	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store/memstore"
	"github.com/idilsaglam/shoplist/internal/ui"
)

var (
	enter     = tea.KeyMsg{Type: tea.KeyEnter}
	esc       = tea.KeyMsg{Type: tea.KeyEsc}
	tab       = tea.KeyMsg{Type: tea.KeyTab}
	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
	home      = tea.KeyMsg{Type: tea.KeyHome}
	del       = tea.KeyMsg{Type: tea.KeyDelete}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestApp(t *testing.T) (App, *memstore.Store) {
	t.Helper()
	s := memstore.New()
	app := NewApp(Params{Store: s})
	app = send(app, tea.WindowSizeMsg{Width: 100, Height: 30})
	return app, s
}

func send(app App, msgs ...tea.Msg) App {
	for _, msg := range msgs {
		m, _ := app.Update(msg)
		app = m.(App)
	}
	return app
}

// setQuantity replaces the default "1" with q: type q after the 1, then
// remove the leading 1. The field never passes through empty.
func setQuantity(app App, q string) App {
	return send(app, tab, runes(q), home, del)
}

func addItem(app App, name, qty string) App {
	app = send(app, runes("a"), runes(name))
	if qty != "" {
		app = setQuantity(app, qty)
	}
	return send(app, enter)
}

func TestApp_AddScenario(t *testing.T) {
	app, s := newTestApp(t)

	app = send(app, runes("a"))
	if !app.DialogOpen() {
		t.Fatal("expected dialog open after a")
	}
	if name, qty := app.Draft(); name != "" || qty != "1" {
		t.Fatalf("expected draft (\"\", \"1\"), got (%q, %q)", name, qty)
	}

	app = send(app, runes("Milk"))
	app = setQuantity(app, "2")
	if _, qty := app.Draft(); qty != "2" {
		t.Fatalf("expected quantity 2, got %q", qty)
	}
	app = send(app, enter)

	if app.DialogOpen() {
		t.Error("dialog should close after confirm")
	}
	if app.Toast() != string(dialog.NoticeItemAdded) {
		t.Errorf("expected toast %q, got %q", dialog.NoticeItemAdded, app.Toast())
	}

	app = addItem(app, "Bread", "")

	want := []model.ShoppingItem{
		{ID: 1, Name: "Milk", Quantity: 2},
		{ID: 2, Name: "Bread", Quantity: 1},
	}
	got := s.Items()
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
	if len(app.Items()) != 2 {
		t.Errorf("app should read items from the store")
	}
}

func TestApp_ConfirmBlankNameStaysOpen(t *testing.T) {
	app, s := newTestApp(t)
	app = send(app, runes("a"), runes("   "), enter)
	if !app.DialogOpen() {
		t.Fatal("dialog should stay open on blank name")
	}
	if app.Toast() != "" {
		t.Errorf("expected no toast, got %q", app.Toast())
	}
	if s.Len() != 0 {
		t.Errorf("store mutated: %+v", s.Items())
	}
}

func TestApp_CancelResetsDraft(t *testing.T) {
	app, s := newTestApp(t)
	app = send(app, runes("a"), runes("Eggs"))
	app = setQuantity(app, "12")
	app = send(app, esc)
	if app.DialogOpen() {
		t.Fatal("dialog should close on esc")
	}
	if app.Toast() != string(dialog.NoticeCancelled) {
		t.Errorf("expected toast %q, got %q", dialog.NoticeCancelled, app.Toast())
	}
	if s.Len() != 0 {
		t.Fatal("cancel must not commit")
	}
	app = send(app, runes("a"))
	if name, qty := app.Draft(); name != "" || qty != "1" {
		t.Fatalf("expected reset draft, got (%q, %q)", name, qty)
	}
}

func TestApp_NameLimit(t *testing.T) {
	app, _ := newTestApp(t)
	sixteen := strings.Repeat("x", model.MaxNameLength)
	app = send(app, runes("a"), runes(sixteen), runes("y"))
	if name, _ := app.Draft(); name != sixteen {
		t.Fatalf("expected name to stay at 16 chars, got %q", name)
	}
	if app.Toast() != string(dialog.NoticeNameTooLong) {
		t.Errorf("expected toast %q, got %q", dialog.NoticeNameTooLong, app.Toast())
	}
}

func TestApp_QuantityRejections(t *testing.T) {
	cases := []struct {
		name   string
		keys   []tea.Msg
		notice dialog.Notice
	}{
		{"empty", []tea.Msg{backspace}, dialog.NoticeQuantityMissing},
		{"too large", []tea.Msg{runes("99999999999")}, dialog.NoticeQuantityTooBig},
		{"letters", []tea.Msg{runes("b")}, dialog.NoticeQuantityNaN},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			app, _ := newTestApp(t)
			app = send(app, runes("a"), tab)
			app = send(app, c.keys...)
			if _, qty := app.Draft(); qty != "1" {
				t.Fatalf("expected quantity to stay 1, got %q", qty)
			}
			if app.Toast() != string(c.notice) {
				t.Errorf("expected toast %q, got %q", c.notice, app.Toast())
			}
		})
	}
}

func TestApp_EditItem(t *testing.T) {
	app, s := newTestApp(t)
	app = addItem(app, "Milk", "")

	app = send(app, runes("e"))
	if !app.Editing() {
		t.Fatal("expected edit mode after e")
	}
	if it, _ := s.Get(1); !it.IsEditing {
		t.Error("item should be flagged as editing")
	}
	if name, qty := app.Draft(); name != "Milk" || qty != "1" {
		t.Fatalf("editor should be seeded, got (%q, %q)", name, qty)
	}

	app = send(app, backspace, backspace, backspace, backspace, runes("Oat"), tab, runes("5"), enter)
	if app.Editing() {
		t.Fatal("editor should close after save")
	}
	it, _ := s.Get(1)
	if it.Name != "Oat" || it.Quantity != 15 || it.IsEditing {
		t.Fatalf("unexpected item after edit: %+v", it)
	}
	if app.Toast() != string(dialog.NoticeItemUpdated) {
		t.Errorf("expected toast %q, got %q", dialog.NoticeItemUpdated, app.Toast())
	}
}

func TestApp_EditBadQuantityFallsBackToOne(t *testing.T) {
	app, s := newTestApp(t)
	app = addItem(app, "Tea", "4")
	app = send(app, runes("e"), tab, runes("x"), enter)
	if it, _ := s.Get(1); it.Quantity != 1 {
		t.Fatalf("expected fallback quantity 1, got %+v", it)
	}
}

func TestApp_EditBlankNameKeepsEditor(t *testing.T) {
	app, s := newTestApp(t)
	app = addItem(app, "Tea", "")
	app = send(app, runes("e"), backspace, backspace, backspace, enter)
	if !app.Editing() {
		t.Fatal("editor should stay open")
	}
	if app.Toast() != string(dialog.NoticeNameRequired) {
		t.Errorf("expected toast %q, got %q", dialog.NoticeNameRequired, app.Toast())
	}
	app = send(app, esc)
	it, _ := s.Get(1)
	if it.Name != "Tea" || it.IsEditing {
		t.Fatalf("cancel should keep the item untouched, got %+v", it)
	}
}

func TestApp_DeleteSelected(t *testing.T) {
	app, s := newTestApp(t)
	app = addItem(app, "A", "")
	app = addItem(app, "B", "")

	// the newest item is selected after an add
	app = send(app, runes("d"))
	items := s.Items()
	if len(items) != 1 || items[0].Name != "A" {
		t.Fatalf("expected only A left, got %+v", items)
	}
	if app.Toast() != string(dialog.NoticeItemDeleted) {
		t.Errorf("expected toast %q, got %q", dialog.NoticeItemDeleted, app.Toast())
	}

	app = addItem(app, "C", "")
	items = s.Items()
	if items[len(items)-1].ID != 3 {
		t.Fatalf("ids must not be reused, got %+v", items)
	}
}

func TestApp_DeleteOnEmptyListIsNoop(t *testing.T) {
	app, _ := newTestApp(t)
	app = send(app, runes("d"), runes("e"))
	if app.Editing() || app.Toast() != "" {
		t.Fatal("nothing should happen on an empty list")
	}
}

func TestApp_ToastExpiry(t *testing.T) {
	app, _ := newTestApp(t)
	app = send(app, runes("a"), esc)
	stale := app.toastSeq
	app = send(app, runes("a"), esc)
	app = send(app, toastExpiredMsg{seq: stale})
	if app.Toast() == "" {
		t.Fatal("a stale tick must not clear the newer toast")
	}
	app = send(app, toastExpiredMsg{seq: app.toastSeq})
	if app.Toast() != "" {
		t.Fatalf("expected toast cleared, got %q", app.Toast())
	}
}

func TestApp_Quit(t *testing.T) {
	app, _ := newTestApp(t)
	m, cmd := app.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !m.(App).Quitting() {
		t.Fatal("expected quitting state")
	}
}

func TestApp_QInDialogIsText(t *testing.T) {
	app, _ := newTestApp(t)
	app = send(app, runes("a"), runes("q"))
	if app.Quitting() {
		t.Fatal("q inside the dialog must not quit")
	}
	if name, _ := app.Draft(); name != "q" {
		t.Fatalf("expected name q, got %q", name)
	}
}

func TestApp_View(t *testing.T) {
	app, _ := newTestApp(t)
	app = addItem(app, "Milk", "2")
	out := app.View()
	for _, want := range []string{"Milk", "Qty: 2", string(dialog.NoticeItemAdded)} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q:\n%s", want, out)
		}
	}
	app = send(app, runes("a"))
	if out := app.View(); !strings.Contains(out, ui.Current().SymAdd+" Add Item") || !strings.Contains(out, "Quantity") {
		t.Errorf("dialog not rendered:\n%s", out)
	}
}

func TestApp_AddWhileFilteredSelectsNewItem(t *testing.T) {
	app, s := newTestApp(t)
	app = addItem(app, "Apple", "")
	app = addItem(app, "Bread", "")
	app.list.SetFilterText("Apple")

	app = addItem(app, "Cherry", "")
	r, ok := app.list.SelectedItem().(row)
	if !ok || r.Name != "Cherry" {
		t.Fatalf("expected the new item selected, got %+v", app.list.SelectedItem())
	}

	app = send(app, runes("d"))
	if _, ok := s.Get(3); ok {
		t.Fatalf("delete should reach the new item, got %+v", s.Items())
	}
}

// staleStore reports every item as gone on delete.
type staleStore struct{ *memstore.Store }

func (staleStore) Delete(id int) error {
	return fmt.Errorf("delete %d: %w", id, memstore.ErrNotFound)
}

func TestApp_StoreErrorShowsNotice(t *testing.T) {
	app := NewApp(Params{Store: staleStore{memstore.New()}})
	app = send(app, tea.WindowSizeMsg{Width: 100, Height: 30})
	app = addItem(app, "Milk", "")
	app = send(app, runes("d"))
	if app.Toast() != string(dialog.NoticeItemNotFound) {
		t.Fatalf("expected toast %q, got %q", dialog.NoticeItemNotFound, app.Toast())
	}
}

func TestErrorNotice(t *testing.T) {
	cases := []struct {
		err  error
		want dialog.Notice
	}{
		{fmt.Errorf("edit 3: %w", memstore.ErrNotFound), dialog.NoticeItemNotFound},
		{memstore.ErrBlankName, dialog.NoticeNameRequired},
		{fmt.Errorf("%w: %w", memstore.ErrInvalidQuantity, model.ErrQuantityTooLarge), dialog.NoticeQuantityTooBig},
		{fmt.Errorf("%w: %w", memstore.ErrInvalidQuantity, model.ErrQuantityNotDigit), dialog.NoticeQuantityNaN},
		{fmt.Errorf("%w: %w", memstore.ErrInvalidQuantity, model.ErrEmptyQuantity), dialog.NoticeQuantityMissing},
		{errors.New("disk on fire"), dialog.NoticeActionFailed},
	}
	for _, c := range cases {
		if got := errorNotice(c.err); got != c.want {
			t.Errorf("errorNotice(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}
