package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/songdb/catalog"
	"github.com/user/songdb/config"
	"github.com/user/songdb/editor"
	"github.com/user/songdb/pkg/pricefmt"
	"github.com/user/songdb/tui/components"
	"github.com/user/songdb/tui/forms"
	"github.com/user/songdb/tui/layout"
	"github.com/user/songdb/tui/styles"
)

const (
	// noticeDuration is how long transient notices (clipboard) stay visible.
	noticeDuration = 3 * time.Second
	// fallbackWidth and fallbackHeight are used until the first WindowSizeMsg.
	fallbackWidth  = 80
	fallbackHeight = 24
	// modeBoxHeight is the rendered height of the mode indicator.
	modeBoxHeight = 3
)

// clearNoticeMsg is sent to clear a transient notice.
type clearNoticeMsg struct{}

// Model is the Bubbletea model for the song database window.
// All catalog changes go through the editor session; the model only owns
// presentation state.
type Model struct {
	// session owns the catalog and the edit-mode state
	session *editor.Session
	// cfg holds display preferences
	cfg config.Config
	// path is the database file being edited
	path string
	// log receives TUI events
	log *slog.Logger
	// inputs holds one text input per song field
	inputs []textinput.Model
	// focus is the field receiving keystrokes in Add/Edit mode
	focus editor.Field
	// baseline is the field content when the current Add/Edit began
	baseline editor.Fields
	// list is the song list view state
	list components.SongListState
	// msgErr reports whether the session message came from a rejected action
	msgErr bool
	// notice is a transient message shown instead of the session message
	notice string
	// confirm is the discard-changes dialog while it is open
	confirm *huh.Form
	// discard is bound to the confirm dialog
	discard bool
	// showHelp indicates if the help overlay is visible
	showHelp bool
	// quitting flag to signal shutdown
	quitting bool
	// terminal width
	width int
	// terminal height
	height int
}

// NewModel creates a TUI model over session for the database at path.
func NewModel(session *editor.Session, cfg config.Config, path string, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Model{
		session: session,
		cfg:     cfg,
		path:    path,
		log:     logger,
		inputs:  make([]textinput.Model, len(editor.AllFields)),
		width:   fallbackWidth,
		height:  fallbackHeight,
	}
	for _, f := range editor.AllFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Placeholder = f.Label()
		ti.TextStyle = styles.PrimaryText
		ti.PlaceholderStyle = styles.DimText
		m.inputs[f] = ti
	}
	m.inputs[editor.FieldPrice].Placeholder = "0.00"
	m.syncInputs(true)
	return m
}

// Init initializes the model. It returns an optional command to run.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeInputs()
		return m, nil

	case clearNoticeMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		// Any key dismisses the help overlay
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if msg.String() == "ctrl+c" {
			m.log.Info("quit without saving")
			m.quitting = true
			return m, tea.Quit
		}

		switch m.session.State().Mode {
		case editor.ModeAdd, editor.ModeEdit:
			return m.handleFormKey(msg)
		case editor.ModeDelete:
			return m.handleDeleteKey(msg)
		default:
			return m.handleViewKey(msg)
		}
	}

	// Forward cursor blinks to the focused input
	if mode := m.session.State().Mode; mode == editor.ModeAdd || mode == editor.ModeEdit {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleViewKey handles browsing keys in View mode.
func (m *Model) handleViewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	idx := m.session.SelectedIndex()
	last := m.session.Catalog().Len() - 1

	switch msg.String() {
	case "?":
		m.showHelp = true
	case "j", "J", "down":
		if idx < last {
			m.selectIndex(idx + 1)
		}
	case "k", "K", "up":
		if idx > 0 {
			m.selectIndex(idx - 1)
		}
	case "g", "home":
		m.selectIndex(0)
	case "G", "end":
		m.selectIndex(last)
	case "a", "A":
		return m, m.dispatch(editor.BeginAdd{})
	case "e", "E":
		return m, m.dispatch(editor.BeginEdit{})
	case "d", "D":
		return m, m.dispatch(editor.BeginDelete{})
	case "s", "S", "ctrl+s":
		return m, m.dispatch(editor.Save{})
	case "x", "X", "q", "Q":
		cmd := m.dispatch(editor.Exit{})
		if m.session.Quitting() {
			m.quitting = true
			return m, tea.Quit
		}
		return m, cmd
	case "y", "Y":
		return m, m.copySelectedCode()
	}
	return m, nil
}

// handleFormKey handles input in Add and Edit mode.
func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.moveFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil
	case "enter":
		return m, m.dispatch(editor.Accept{})
	case "esc":
		if m.cfg.ConfirmDiscard && m.hasPendingInput() {
			return m, m.openConfirm()
		}
		return m, m.dispatch(editor.Cancel{})
	}

	var cmd tea.Cmd
	before := m.inputs[m.focus].Value()
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if value := m.inputs[m.focus].Value(); value != before {
		prevMessage := m.session.State().Message
		if err := m.session.Dispatch(editor.SetField{Field: m.focus, Value: value}); err != nil {
			m.msgErr = true
			m.log.Debug("field rejected", "field", m.focus.Label(), "error", err)
		} else if state := m.session.State(); state.AcceptBlocked {
			m.msgErr = true
		} else if state.Message != prevMessage {
			// an earlier error stays styled as one while it is shown
			m.msgErr = false
		}
		m.notice = ""
	}
	return m, cmd
}

// hasPendingInput reports whether cancelling would lose typed input: any
// text in Add mode, or a change to the stored values in Edit mode.
func (m *Model) hasPendingInput() bool {
	state := m.session.State()
	if state.Mode == editor.ModeAdd {
		return state.Fields.HasData()
	}
	return state.Fields != m.baseline
}

// handleDeleteKey handles the delete confirmation.
func (m *Model) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y", "Y":
		return m, m.dispatch(editor.Accept{})
	case "esc", "n", "N":
		return m, m.dispatch(editor.Cancel{})
	}
	return m, nil
}

// updateConfirm routes messages to the discard dialog until it closes.
func (m *Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.confirm = nil
		return m, m.inputs[m.focus].Focus()
	}

	form, cmd := m.confirm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirm = f
	}

	switch m.confirm.State {
	case huh.StateCompleted:
		m.confirm = nil
		if m.discard {
			return m, m.dispatch(editor.Cancel{})
		}
		return m, m.inputs[m.focus].Focus()
	case huh.StateAborted:
		m.confirm = nil
		return m, m.inputs[m.focus].Focus()
	}
	return m, cmd
}

func (m *Model) openConfirm() tea.Cmd {
	m.discard = false
	m.confirm = forms.NewConfirmDiscardForm(&m.discard)
	m.confirm.WithWidth(50)
	return m.confirm.Init()
}

// dispatch sends action to the session and resynchronises the inputs.
func (m *Model) dispatch(action editor.Action) tea.Cmd {
	prevMode := m.session.State().Mode
	err := m.session.Dispatch(action)
	m.msgErr = err != nil
	m.notice = ""

	state := m.session.State()
	modeChanged := prevMode != state.Mode
	m.syncInputs(modeChanged)
	if modeChanged && (state.Mode == editor.ModeAdd || state.Mode == editor.ModeEdit) {
		m.baseline = state.Fields
	}
	if err != nil {
		m.focusError(err)
	}

	if mode := state.Mode; mode == editor.ModeAdd || mode == editor.ModeEdit {
		return m.inputs[m.focus].Focus()
	}
	return nil
}

func (m *Model) selectIndex(i int) {
	if err := m.session.SelectIndex(i); err != nil {
		return
	}
	m.msgErr = false
	m.syncInputs(false)
}

// syncInputs copies the session fields into the inputs. Add/Edit inputs are
// only reset on a mode change so typing keeps its cursor position.
func (m *Model) syncInputs(modeChanged bool) {
	state := m.session.State()
	editing := state.Mode == editor.ModeAdd || state.Mode == editor.ModeEdit
	if editing && !modeChanged {
		return
	}

	for _, f := range editor.AllFields {
		m.inputs[f].SetValue(state.Fields[f])
		m.inputs[f].Blur()
		m.inputs[f].CursorEnd()
	}
	if editing {
		m.focus = editor.FieldTitle
	}
}

// focusError moves focus to the field a rejected Accept complained about.
func (m *Model) focusError(err error) {
	state := m.session.State()
	var (
		verr *editor.ValidationError
		perr *editor.PriceFormatError
		derr *catalog.DuplicateKeyError
	)
	switch {
	case errors.As(err, &verr):
		m.setFocus(verr.Field)
	case errors.As(err, &perr):
		m.setFocus(editor.FieldPrice)
	case errors.As(err, &derr) && state.Editable(editor.FieldItemCode):
		m.setFocus(editor.FieldItemCode)
	}
}

func (m *Model) setFocus(f editor.Field) {
	if !m.session.State().Editable(f) {
		return
	}
	m.inputs[m.focus].Blur()
	m.focus = f
}

// moveFocus cycles focus over the editable fields.
func (m *Model) moveFocus(delta int) {
	state := m.session.State()
	n := len(editor.AllFields)
	next := int(m.focus)
	for range n {
		next = (next + delta + n) % n
		if state.Editable(editor.Field(next)) {
			break
		}
	}
	m.inputs[m.focus].Blur()
	m.focus = editor.Field(next)
	m.inputs[m.focus].Focus()
}

// copySelectedCode copies the selected item code to the system clipboard.
func (m *Model) copySelectedCode() tea.Cmd {
	code := m.session.State().Selected
	if code == "" {
		return nil
	}
	if err := clipboard.WriteAll(code); err != nil {
		m.log.Warn("clipboard copy failed", "error", err)
		m.notice = "Clipboard unavailable"
	} else {
		m.notice = fmt.Sprintf("Copied %s", code)
	}
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

func (m *Model) resizeInputs() {
	_, detailW := layout.ComputeColumnWidths(m.width)
	w := detailW - 2 - components.LabelWidth - 1
	if w < 8 {
		w = 8
	}
	for i := range m.inputs {
		m.inputs[i].Width = w
	}
}

// Quitting reports whether the model has finished.
func (m *Model) Quitting() bool {
	return m.quitting
}

// View renders the window: status bar, song list and detail panel side by
// side, and the message line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHelp {
		return components.HelpOverlay(m.width, m.height)
	}

	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	// Minimum width warning
	if m.width < layout.MinTerminalWidth {
		warningStyle := lipgloss.NewStyle().
			Foreground(styles.Pink).
			Bold(true)
		hintStyle := lipgloss.NewStyle().
			Foreground(styles.Lavender).
			Italic(true)
		return warningStyle.Render(fmt.Sprintf("Terminal too narrow (%d cols)", m.width)) + "\n" +
			hintStyle.Render(fmt.Sprintf("Minimum width: %d columns", layout.MinTerminalWidth)) + "\n" +
			hintStyle.Render("Please resize your terminal.")
	}

	state := m.session.State()
	statusBar := components.StatusBar(components.StatusBarState{
		Path:  m.path,
		Count: m.session.Catalog().Len(),
	}, m.width)

	// Height left for the columns after the status bar and message line
	colHeight := m.height - 2
	if colHeight < modeBoxHeight+4 {
		colHeight = modeBoxHeight + 4
	}
	listW, detailW := layout.ComputeColumnWidths(m.width)

	m.list.Titles = m.session.Titles()
	m.list.SelectedIndex = m.session.SelectedIndex()
	m.list.Locked = state.Mode != editor.ModeView
	m.list.Scroll(colHeight - 2)
	list := components.SongList(m.list, listW, colHeight)

	detail := components.ModeIndicator(state.Mode.String(), detailW) + "\n" + m.renderFields(state, detailW)
	detail = layout.Container{Width: detailW, Height: colHeight}.Render(detail)

	columns := layout.JoinColumns([]string{list, detail}, []int{listW, detailW}, colHeight)

	message, isErr := state.Message, m.msgErr
	if m.notice != "" {
		message, isErr = m.notice, false
	}
	return statusBar + "\n" + columns + "\n" + components.MessageLine(message, isErr, m.width)
}

func (m *Model) renderFields(state editor.State, width int) string {
	editing := state.Mode == editor.ModeAdd || state.Mode == editor.ModeEdit

	rows := make([]components.FieldRow, 0, len(editor.AllFields))
	for _, f := range editor.AllFields {
		row := components.FieldRow{Label: f.Label()}
		if editing && state.Editable(f) {
			row.Value = m.inputs[f].View()
			row.Editable = true
			row.Focused = f == m.focus
		} else {
			row.Value = layout.Ellipsize(state.Fields[f], width-2-components.LabelWidth-1)
		}
		if f == editor.FieldPrice {
			if v, err := pricefmt.Parse(state.Fields[f]); err == nil && state.Fields[f] != "" {
				row.Hint = pricefmt.Display(v, m.cfg.Currency)
			}
		}
		rows = append(rows, row)
	}

	title := "Song"
	switch state.Mode {
	case editor.ModeAdd:
		title = "New Song"
	case editor.ModeEdit:
		title = "Edit Song"
	case editor.ModeDelete:
		title = "Delete Song"
	}
	return components.SongFields(title, rows, width, state.Mode == editor.ModeDelete)
}

// Run starts the Bubbletea program over session.
// It returns an error if the program fails to start or run.
func Run(session *editor.Session, cfg config.Config, path string, logger *slog.Logger) error {
	model := NewModel(session, cfg, path, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
