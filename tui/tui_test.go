package tui

import (
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/user/songdb/catalog"
	"github.com/user/songdb/config"
	"github.com/user/songdb/editor"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type memoryStore struct {
	saved [][]catalog.Song
	err   error
}

func (s *memoryStore) Save(songs []catalog.Song) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, songs)
	return nil
}

func newTestModel(t *testing.T, store editor.Store, songs ...catalog.Song) *Model {
	t.Helper()
	cat := catalog.New()
	cat.Load(songs)
	cfg := config.Default()
	m := NewModel(editor.NewSession(cat, store, nil), cfg, "songs.txt", nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(key(string(r)))
	}
}

var yesterday = catalog.Song{
	Title: "Yesterday", ItemCode: "B001", Description: "Ballad",
	Artist: "The Beatles", Album: "Help!", Price: 1.29,
}

var imagine = catalog.Song{
	Title: "Imagine", ItemCode: "L001", Description: "Anthem",
	Artist: "John Lennon", Album: "Imagine", Price: 0.99,
}

func TestAddSongThroughKeys(t *testing.T) {
	store := &memoryStore{}
	m := newTestModel(t, store, yesterday)

	m.Update(key("a"))
	if got := m.session.State().Mode; got != editor.ModeAdd {
		t.Fatalf("expected Add mode, got %v", got)
	}

	values := []string{"Help", "B002", "Rock", "The Beatles", "Help!", "1.49"}
	for i, v := range values {
		if i > 0 {
			m.Update(key("tab"))
		}
		typeText(m, v)
	}
	if got := m.session.State().Fields[editor.FieldPrice]; got != "1.49" {
		t.Fatalf("price field = %q", got)
	}

	m.Update(key("enter"))
	state := m.session.State()
	if state.Mode != editor.ModeView {
		t.Fatalf("expected View mode after accept, got %v (%s)", state.Mode, state.Message)
	}
	if state.Selected != "B002" {
		t.Fatalf("expected new song selected, got %q", state.Selected)
	}
	if m.session.Catalog().Len() != 2 {
		t.Fatalf("expected 2 songs, got %d", m.session.Catalog().Len())
	}
}

func TestDuplicateCodeBlocksAccept(t *testing.T) {
	m := newTestModel(t, &memoryStore{}, yesterday)

	m.Update(key("a"))
	m.Update(key("tab"))
	typeText(m, "B001")

	state := m.session.State()
	if !state.AcceptBlocked {
		t.Fatal("expected accept to be blocked for a duplicate code")
	}
	if !m.msgErr {
		t.Fatal("duplicate message should render as an error")
	}

	m.Update(key("enter"))
	if m.session.State().Mode != editor.ModeAdd {
		t.Fatal("accept should be rejected while blocked")
	}
	if m.focus != editor.FieldItemCode {
		t.Fatalf("focus should move to item code, got %v", m.focus)
	}
}

func TestValidationFocusesMissingField(t *testing.T) {
	m := newTestModel(t, &memoryStore{})

	m.Update(key("a"))
	typeText(m, "Song")
	m.Update(key("enter"))

	state := m.session.State()
	if state.Message != "You must enter the item code." {
		t.Fatalf("unexpected message %q", state.Message)
	}
	if m.focus != editor.FieldItemCode {
		t.Fatalf("expected focus on item code, got %v", m.focus)
	}
}

func TestValidationMessageStaysErrorWhileTyping(t *testing.T) {
	m := newTestModel(t, &memoryStore{})

	m.Update(key("a"))
	typeText(m, "Song")
	m.Update(key("enter"))
	if !m.msgErr {
		t.Fatal("validation message should render as an error")
	}

	m.Update(key("tab"))
	m.Update(key("tab"))
	typeText(m, "X")
	if m.session.State().Message != "You must enter the item code." {
		t.Fatalf("unexpected message %q", m.session.State().Message)
	}
	if !m.msgErr {
		t.Fatal("validation message lost its error styling after typing")
	}

	// typing the item code replaces the message
	m.Update(key("shift+tab"))
	m.Update(key("shift+tab"))
	if m.focus != editor.FieldItemCode {
		t.Fatalf("expected focus on item code, got %v", m.focus)
	}
	typeText(m, "Z001")
	if m.session.State().Message != "" {
		t.Fatalf("expected message cleared, got %q", m.session.State().Message)
	}
	if m.msgErr {
		t.Fatal("empty message should not be styled as an error")
	}
}

func TestEditSkipsItemCode(t *testing.T) {
	m := newTestModel(t, &memoryStore{}, yesterday)

	m.Update(key("e"))
	if m.session.State().Mode != editor.ModeEdit {
		t.Fatal("expected Edit mode")
	}
	m.Update(key("tab"))
	if m.focus != editor.FieldDescription {
		t.Fatalf("tab should skip the read-only item code, got %v", m.focus)
	}
}

func TestDeleteThroughKeys(t *testing.T) {
	m := newTestModel(t, &memoryStore{}, yesterday, imagine)

	m.Update(key("d"))
	if m.session.State().Mode != editor.ModeDelete {
		t.Fatal("expected Delete mode")
	}
	m.Update(key("y"))
	if m.session.Catalog().Has("B001") {
		t.Fatal("song should have been removed")
	}
	if got := m.session.State().Selected; got != "L001" {
		t.Fatalf("expected first remaining song selected, got %q", got)
	}
}

func TestNavigation(t *testing.T) {
	m := newTestModel(t, &memoryStore{}, yesterday, imagine)

	m.Update(key("j"))
	if got := m.session.State().Selected; got != "L001" {
		t.Fatalf("expected L001 after j, got %q", got)
	}
	m.Update(key("j"))
	if got := m.session.State().Selected; got != "L001" {
		t.Fatalf("selection should stop at the last song, got %q", got)
	}
	m.Update(key("k"))
	if got := m.session.State().Selected; got != "B001" {
		t.Fatalf("expected B001 after k, got %q", got)
	}
}

func TestEscWithChangesOpensConfirm(t *testing.T) {
	m := newTestModel(t, &memoryStore{}, yesterday)

	m.Update(key("a"))
	typeText(m, "x")
	m.Update(key("esc"))
	if m.confirm == nil {
		t.Fatal("expected discard confirmation")
	}
	if m.session.State().Mode != editor.ModeAdd {
		t.Fatal("mode should not change until confirmed")
	}

	// esc closes the dialog and returns to the form
	m.Update(key("esc"))
	if m.confirm != nil {
		t.Fatal("dialog should be closed")
	}
	if m.session.State().Mode != editor.ModeAdd {
		t.Fatal("expected to stay in Add mode")
	}
}

func TestEscWithoutChangesCancels(t *testing.T) {
	m := newTestModel(t, &memoryStore{}, yesterday)

	m.Update(key("e"))
	m.Update(key("esc"))
	if m.confirm != nil {
		t.Fatal("no confirmation expected for an unchanged form")
	}
	if m.session.State().Mode != editor.ModeView {
		t.Fatal("expected View mode after cancel")
	}
}

func TestExitSavesAndQuits(t *testing.T) {
	store := &memoryStore{}
	m := newTestModel(t, store, yesterday)

	_, cmd := m.Update(key("x"))
	if !m.Quitting() {
		t.Fatal("expected model to quit")
	}
	if len(store.saved) != 1 || len(store.saved[0]) != 1 {
		t.Fatalf("expected one save of one song, got %v", store.saved)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestExitSaveFailureKeepsRunning(t *testing.T) {
	store := &memoryStore{err: errors.New("disk full")}
	m := newTestModel(t, store, yesterday)

	m.Update(key("x"))
	if m.Quitting() {
		t.Fatal("should not quit when the save fails")
	}
	if !strings.Contains(m.View(), "Something went wrong") {
		t.Fatal("save failure message not shown")
	}
}

func TestCtrlCQuitsWithoutSaving(t *testing.T) {
	store := &memoryStore{}
	m := newTestModel(t, store, yesterday)

	m.Update(key("ctrl+c"))
	if !m.Quitting() {
		t.Fatal("expected model to quit")
	}
	if len(store.saved) != 0 {
		t.Fatal("ctrl+c must not save")
	}
}

func TestViewShowsSongAndMode(t *testing.T) {
	m := newTestModel(t, &memoryStore{}, yesterday)

	out := m.View()
	for _, want := range []string{"Yesterday", "Current Mode:", "View", "The Beatles"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestViewNarrowTerminal(t *testing.T) {
	m := newTestModel(t, &memoryStore{})
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	if !strings.Contains(m.View(), "Terminal too narrow") {
		t.Fatal("expected narrow terminal warning")
	}
}
