package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/prio/internal/list"
	"github.com/faizmokh/prio/internal/priority"
)

// Model owns Bubble Tea state for the priority list screen.
type Model struct {
	ctx   context.Context
	store *list.Store

	table table.Model
	// rows maps each visible table row to its position in the full list.
	rows []int

	inputs     [fieldCount]textinput.Model
	focus      int
	fieldErrs  priority.FieldErrors
	filter     priority.Tag
	filtering  bool
	newTag     priority.Tag
	mode       mode
	pending    string
	busy       bool
	statusLine string
	errorLine  string
}

type mode uint8

const (
	modeNormal mode = iota
	modeAdd
	modeConfirmDelete
	modeConfirmClear
)

const (
	fieldTitle = iota
	fieldDate
	fieldDuration
	fieldCount
)

type addResultMsg struct {
	added bool
	form  priority.Form
	err   error
}

type deleteResultMsg struct {
	title   string
	removed int
	err     error
}

type clearResultMsg struct {
	err error
}

type tagResultMsg struct {
	entry priority.Entry
	err   error
}

// NewModel seeds a Bubble Tea model with required collaborators.
func NewModel(ctx context.Context, store *list.Store) Model {
	m := Model{
		ctx:    ctx,
		store:  store,
		table:  newTable(),
		newTag: priority.NoTag,
		mode:   modeNormal,
	}

	placeholders := [fieldCount]string{"Title", "MM/DD", `45m, 2h or 1h 30m`}
	limits := [fieldCount]int{120, 5, 7}
	for i := range m.inputs {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = placeholders[i]
		input.CharLimit = limits[i]
		m.inputs[i] = input
	}

	m.refresh()
	m.statusLine = fmt.Sprintf("Loaded %d entr%s.", store.Len(), plural(store.Len()))
	return m
}

// Init has nothing to load; the store is read when the model is built.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case addResultMsg:
		return m.handleAddResult(msg)
	case deleteResultMsg:
		return m.handleDeleteResult(msg)
	case clearResultMsg:
		return m.handleClearResult(msg)
	case tagResultMsg:
		return m.handleTagResult(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeAdd:
		return m.handleInputKey(msg)
	case modeConfirmDelete, modeConfirmClear:
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		m.table.MoveDown(1)
		m.errorLine = ""
	case "up", "k":
		m.table.MoveUp(1)
		m.errorLine = ""
	case "n":
		m.newTag = m.newTag.Next()
		m.statusLine = fmt.Sprintf("New entries will be tagged %s.", m.newTag)
		m.errorLine = ""
	}

	// Everything below reads the store, which a pending command may be writing.
	if m.busy {
		return m, nil
	}

	switch msg.String() {
	case "f":
		return m.cycleFilter()
	case "a":
		return m.beginAdd()
	case "d":
		return m.beginDelete()
	case "C":
		return m.beginClear()
	case "t":
		return m.cycleSelectedTag()
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		return m.cancelInput("Cancelled.")
	case tea.KeyTab, tea.KeyDown:
		return m.withFocus((m.focus + 1) % fieldCount)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.withFocus((m.focus + fieldCount - 1) % fieldCount)
	case tea.KeyEnter:
		if m.busy {
			return m, nil
		}
		if m.focus < fieldCount-1 {
			return m.withFocus(m.focus + 1)
		}
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		if m.mode == modeConfirmClear {
			return m.confirmClear()
		}
		return m.confirmDelete()
	case "n", "N", "esc":
		return m.cancelInput("Cancelled.")
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) beginAdd() (tea.Model, tea.Cmd) {
	m.mode = modeAdd
	m.fieldErrs = priority.FieldErrors{}
	m.statusLine = ""
	m.errorLine = ""
	return m.withFocus(fieldTitle)
}

func (m Model) beginDelete() (tea.Model, tea.Cmd) {
	entry, ok := m.selected()
	if !ok {
		return m, nil
	}
	m.mode = modeConfirmDelete
	m.pending = entry.Title
	m.statusLine = ""
	m.errorLine = ""
	return m, nil
}

func (m Model) beginClear() (tea.Model, tea.Cmd) {
	if m.store.Len() == 0 {
		m.statusLine = "Nothing to clear."
		return m, nil
	}
	m.mode = modeConfirmClear
	m.statusLine = ""
	m.errorLine = ""
	return m, nil
}

func (m Model) withFocus(field int) (tea.Model, tea.Cmd) {
	cmd := m.focusField(field)
	return m, cmd
}

func (m *Model) focusField(field int) tea.Cmd {
	m.focus = field
	for i := range m.inputs {
		if i != field {
			m.inputs[i].Blur()
		}
	}
	return m.inputs[field].Focus()
}

func (m Model) submitInput() (tea.Model, tea.Cmd) {
	form := priority.Form{
		Title:    m.inputs[fieldTitle].Value(),
		Date:     m.inputs[fieldDate].Value(),
		Duration: m.inputs[fieldDuration].Value(),
	}
	m.busy = true
	m.statusLine = "Saving entry..."
	m.errorLine = ""
	return m, m.addEntryCmd(form, m.newTag)
}

func (m Model) cancelInput(message string) (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	m.pending = ""
	m.fieldErrs = priority.FieldErrors{}
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = fieldTitle
	m.statusLine = message
	m.errorLine = ""
	return m, nil
}

func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	title := m.pending
	m.mode = modeNormal
	m.pending = ""
	m.busy = true
	m.statusLine = "Deleting..."
	return m, m.deleteEntryCmd(title)
}

func (m Model) confirmClear() (tea.Model, tea.Cmd) {
	m.mode = modeNormal
	m.busy = true
	m.statusLine = "Clearing..."
	return m, m.clearCmd()
}

func (m Model) cycleSelectedTag() (tea.Model, tea.Cmd) {
	if _, ok := m.selected(); !ok {
		return m, nil
	}
	index := m.rows[m.table.Cursor()]
	tag := m.store.Entries()[index].Tag.Next()
	m.busy = true
	m.errorLine = ""
	return m, m.setTagCmd(index, tag)
}

func (m Model) cycleFilter() (tea.Model, tea.Cmd) {
	switch {
	case !m.filtering:
		m.filtering = true
		m.filter = priority.NoTag
	case m.filter == priority.Purple:
		m.filtering = false
		m.filter = ""
	default:
		m.filter = m.filter.Next()
	}
	m.table.SetCursor(0)
	m.refresh()
	if m.filtering {
		m.statusLine = fmt.Sprintf("Showing %s entries.", m.filter)
	} else {
		m.statusLine = "Showing all entries."
	}
	m.errorLine = ""
	return m, nil
}

func (m Model) handleAddResult(msg addResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if !msg.added {
		// Invalid fields come back cleared; keep the valid ones for editing.
		m.fieldErrs = msg.form.Errors
		m.inputs[fieldTitle].SetValue(msg.form.Title)
		m.inputs[fieldDate].SetValue(msg.form.Date)
		m.inputs[fieldDuration].SetValue(msg.form.Duration)
		m.statusLine = ""
		m.errorLine = "Fix the highlighted fields."
		return m.withFocus(firstInvalid(msg.form.Errors))
	}

	m.refresh()
	m.mode = modeNormal
	m.fieldErrs = priority.FieldErrors{}
	for i := range m.inputs {
		m.inputs[i].Reset()
		m.inputs[i].Blur()
	}
	m.focus = fieldTitle
	if msg.err != nil {
		return m.withError("Save failed: %v", msg.err), nil
	}
	m.statusLine = "Entry added."
	m.errorLine = ""
	return m, nil
}

func (m Model) handleDeleteResult(msg deleteResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.refresh()
	if msg.err != nil {
		return m.withError("Delete failed: %v", msg.err), nil
	}
	m.statusLine = fmt.Sprintf("Deleted %d entr%s titled %q.", msg.removed, plural(msg.removed), msg.title)
	m.errorLine = ""
	return m, nil
}

func (m Model) handleClearResult(msg clearResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.refresh()
	if msg.err != nil {
		return m.withError("Clear failed: %v", msg.err), nil
	}
	m.statusLine = "Cleared all entries."
	m.errorLine = ""
	return m, nil
}

func (m Model) handleTagResult(msg tagResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	m.refresh()
	if msg.err != nil {
		return m.withError("Tag failed: %v", msg.err), nil
	}
	m.statusLine = fmt.Sprintf("Tagged %q %s.", msg.entry.Title, msg.entry.Tag)
	m.errorLine = ""
	return m, nil
}

func (m Model) withError(format string, err error) Model {
	m.statusLine = ""
	m.errorLine = fmt.Sprintf(format, err)
	return m
}

// refresh rebuilds the visible rows from the store.
func (m *Model) refresh() {
	entries := m.store.Entries()
	m.rows = make([]int, 0, len(entries))
	rows := make([]table.Row, 0, len(entries))
	for i, entry := range entries {
		if m.filtering && entry.Tag.Normalize() != m.filter {
			continue
		}
		m.rows = append(m.rows, i)
		rows = append(rows, table.Row{entry.Title, entry.Date, entry.Duration, string(entry.Tag.Normalize())})
	}
	m.table.SetRows(rows)
	if len(rows) > 0 {
		m.table.SetCursor(m.table.Cursor())
	}
}

func (m Model) selected() (priority.Entry, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.rows) {
		return priority.Entry{}, false
	}
	entries := m.store.Entries()
	return entries[m.rows[cursor]], true
}

func (m Model) addEntryCmd(form priority.Form, tag priority.Tag) tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		added, err := store.Add(ctx, &form, tag)
		return addResultMsg{added: added, form: form, err: err}
	}
}

func (m Model) deleteEntryCmd(title string) tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		removed, err := store.DeleteByTitle(ctx, title)
		return deleteResultMsg{title: title, removed: removed, err: err}
	}
}

func (m Model) clearCmd() tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		return clearResultMsg{err: store.ClearAll(ctx)}
	}
}

func (m Model) setTagCmd(index int, tag priority.Tag) tea.Cmd {
	store := m.store
	ctx := m.ctx
	return func() tea.Msg {
		entry, err := store.SetTag(ctx, index, tag)
		return tagResultMsg{entry: entry, err: err}
	}
}

func firstInvalid(errs priority.FieldErrors) int {
	switch {
	case errs.Title != nil:
		return fieldTitle
	case errs.Date != nil:
		return fieldDate
	default:
		return fieldDuration
	}
}

func plural(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
