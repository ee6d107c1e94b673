package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/zap"

	"github.com/muurk/headcursor/internal/logging"
	"github.com/muurk/headcursor/internal/tuning"
)

// Page copy
const (
	PageTitle       = "Cursor speed"
	PageDescription = "Mouse cursor moves with your head movement. Use these settings to adjust how fast your mouse moves in each direction."
)

// rowHeight is the number of lines each row occupies: label, controls, gap.
const rowHeight = 3

// ProfileChangedMsg tells the page the store was reloaded from outside,
// e.g. after a profile switch. The page refreshes every row.
type ProfileChangedMsg struct{}

type clipboardMsg struct {
	err error
}

// Store is what the page needs from the configuration store.
type Store interface {
	tuning.Store
	CurrentProfile() string
	ExportProfile() ([]byte, error)
}

// pageState is shared by value copies of PageModel so the row set's
// commit callback can report into it.
type pageState struct {
	status    string
	statusErr bool
}

// PageModel is the cursor settings page: a title, a description and one
// row per tunable parameter.
type PageModel struct {
	store  Store
	kernel tuning.KernelRecomputer
	rows   *tuning.RowSet
	tips   *Tooltips
	inputs []textinput.Model
	state  *pageState

	focus    int
	editing  bool
	dragRow  int // Row being dragged with the mouse, -1 when none
	hoverRow int // Row whose label is under the pointer, -1 when none

	// UI state
	Width  int
	Height int

	help   help.Model
	keys   keyMap
	copyFn func(string) error
}

// NewPageModel builds the page and loads every row from store.
func NewPageModel(store Store, kernel tuning.KernelRecomputer) (PageModel, error) {
	tips := NewTooltips()
	rows, err := tuning.NewRowSet(tuning.CursorParams(), store, kernel, tips)
	if err != nil {
		return PageModel{}, fmt.Errorf("failed to build cursor rows: %w", err)
	}

	inputs := make([]textinput.Model, rows.Len())
	for i := range inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = EntryWidth
		ti.Width = EntryWidth - 1
		inputs[i] = ti
	}

	state := &pageState{}
	rows.OnCommit(func(c tuning.Commit) {
		if c.Err != nil {
			state.status = fmt.Sprintf("%s = %d applied, but saving failed: %v", c.Key, c.Value, c.Err)
			state.statusErr = true
			return
		}
		state.status = fmt.Sprintf("Saved %s = %d (profile %s)", c.Key, c.Value, store.CurrentProfile())
		state.statusErr = false
	})

	m := PageModel{
		store:    store,
		kernel:   kernel,
		rows:     rows,
		tips:     tips,
		inputs:   inputs,
		state:    state,
		dragRow:  -1,
		hoverRow: -1,
		help:     help.New(),
		keys:     newKeyMap(),
		copyFn:   clipboard.WriteAll,
	}
	m.Refresh()
	return m, nil
}

// Init initializes the page
func (m PageModel) Init() tea.Cmd {
	return nil
}

// Refresh reloads every row from the store without rebuilding widgets.
// Any drag or edit in progress is abandoned.
func (m *PageModel) Refresh() {
	m.rows.LoadInitialConfig()
	m.dragRow = -1
	if m.editing {
		m.stopEditing()
	}
	m.syncInputs()
}

// Rows exposes the row set backing the page.
func (m PageModel) Rows() *tuning.RowSet {
	return m.rows
}

// Focus returns the index of the focused row.
func (m PageModel) Focus() int {
	return m.focus
}

// Editing reports whether the focused row's entry has keyboard focus.
func (m PageModel) Editing() bool {
	return m.editing
}

// Status returns the status line text and whether it reports an error.
func (m PageModel) Status() (string, bool) {
	return m.state.status, m.state.statusErr
}

// Update handles all messages
func (m PageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ProfileChangedMsg:
		m.Refresh()
		if m.kernel != nil {
			m.kernel.RecomputeSmoothingKernel()
		}
		m.state.status = fmt.Sprintf("Reloaded profile %s", m.store.CurrentProfile())
		m.state.statusErr = false
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			logging.Warn("Clipboard copy failed", zap.Error(msg.err))
			m.state.status = fmt.Sprintf("Copy failed: %v", msg.err)
			m.state.statusErr = true
		} else {
			m.state.status = "Copied profile to clipboard"
			m.state.statusErr = false
		}
		return m, nil

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}

	// Cursor blink and other input-internal messages
	if m.editing {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateNormal handles keys while the focused row's slider is active
func (m PageModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row := m.rows.Rows()[m.focus]

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)

	case key.Matches(msg, m.keys.Left):
		row.Step(-1)

	case key.Matches(msg, m.keys.Right):
		row.Step(1)

	case key.Matches(msg, m.keys.BigLeft):
		row.Step(-10)

	case key.Matches(msg, m.keys.BigRight):
		row.Step(10)

	case key.Matches(msg, m.keys.Home):
		row.JumpToStep(0)

	case key.Matches(msg, m.keys.End):
		row.JumpToStep(tuning.SliderSteps)

	case key.Matches(msg, m.keys.Edit):
		return m, m.startEditing()

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyCmd()
	}

	m.syncInputs()
	return m, nil
}

// updateEditing handles keys while the focused row's entry is active
func (m PageModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.DoneEdit) {
		m.stopEditing()
		switch msg.String() {
		case "tab", "down":
			m.moveFocus(1)
		case "shift+tab", "up":
			m.moveFocus(-1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	row := m.rows.Rows()[m.focus]
	if v := m.inputs[m.focus].Value(); v != row.EntryText() {
		row.SetEntryText(v)
	}
	m.syncInputs()
	return m, cmd
}

// handleMouse drives slider drags and focus from mouse events
func (m *PageModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	lay := m.layout()
	rows := m.rows.Rows()

	var cmd tea.Cmd
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		i, part := lay.hit(msg.X, msg.Y, len(rows))
		if i < 0 {
			return nil
		}
		m.setFocus(i)
		switch part {
		case partSlider:
			rows[i].Press()
			rows[i].DragTo(fractionAt(msg.X, lay.trackX, lay.trackWidth))
			m.dragRow = i
		case partEntry:
			cmd = m.startEditing()
		}

	case tea.MouseActionMotion:
		if m.dragRow >= 0 {
			rows[m.dragRow].DragTo(fractionAt(msg.X, lay.trackX, lay.trackWidth))
			break
		}
		m.hoverRow = -1
		if i, part := lay.hit(msg.X, msg.Y, len(rows)); i >= 0 && part == partLabel {
			m.hoverRow = i
		}

	case tea.MouseActionRelease:
		if m.dragRow >= 0 {
			rows[m.dragRow].Release()
			m.dragRow = -1
		}
	}

	m.syncInputs()
	return cmd
}

func (m *PageModel) moveFocus(delta int) {
	n := m.rows.Len()
	m.setFocus(((m.focus+delta)%n + n) % n)
}

func (m *PageModel) setFocus(i int) {
	if i != m.focus && m.editing {
		m.stopEditing()
	}
	m.focus = i
}

func (m *PageModel) startEditing() tea.Cmd {
	m.editing = true
	m.inputs[m.focus].CursorEnd()
	return m.inputs[m.focus].Focus()
}

func (m *PageModel) stopEditing() {
	m.editing = false
	m.inputs[m.focus].Blur()
}

// syncInputs copies each row's entry text into its text input when the
// row set changed it (drag, step, reload).
func (m *PageModel) syncInputs() {
	for i, r := range m.rows.Rows() {
		if m.inputs[i].Value() != r.EntryText() {
			m.inputs[i].SetValue(r.EntryText())
		}
	}
}

func (m PageModel) copyCmd() tea.Cmd {
	store, copyFn := m.store, m.copyFn
	return func() tea.Msg {
		data, err := store.ExportProfile()
		if err == nil {
			err = copyFn(string(data))
		}
		return clipboardMsg{err: err}
	}
}

// View renders the page
func (m PageModel) View() string {
	lay := m.layout()
	width := CalculateContentWidth(m.Width)

	var b strings.Builder
	b.WriteString(m.renderTop())

	for i, r := range m.rows.Rows() {
		b.WriteString("\n")
		b.WriteString(m.renderRow(i, r, lay))
	}

	tipRow := m.focus
	if m.hoverRow >= 0 {
		tipRow = m.hoverRow
	}
	if tip := m.tips.Render(m.rows.Rows()[tipRow].Key, width-2*ContentIndent); tip != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().MarginLeft(ContentIndent).Render(tip))
	}

	if m.state.status != "" {
		style := StatusStyle
		if m.state.statusErr {
			style = StatusErrorStyle
		}
		b.WriteString("\n\n")
		b.WriteString(indent(ContentIndent) + style.Render(m.state.status))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().MarginLeft(ContentIndent).Render(HelpStyle.Render(m.help.View(m.keys))))

	return b.String()
}

// renderTop renders everything above the first row. Its height fixes
// where rows land on screen, which mouse hit-testing depends on.
func (m PageModel) renderTop() string {
	width := CalculateContentWidth(m.Width)
	desc := wordwrap.String(PageDescription, width-2*ContentIndent)

	lines := []string{
		BuildHeaderContent(m.store.CurrentProfile(), width),
		RenderDivider(width),
		"",
		indent(ContentIndent) + TitleStyle.Render(PageTitle),
	}
	for _, l := range strings.Split(desc, "\n") {
		lines = append(lines, indent(ContentIndent)+DescriptionStyle.Render(l))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m PageModel) renderRow(i int, r *tuning.Row, lay pageLayout) string {
	focused := i == m.focus

	labelStyle := LabelStyle
	if focused {
		labelStyle = FocusedLabelStyle
	}
	label := indent(ContentIndent) + labelStyle.Render(r.Title)
	if m.tips.Has(r.Key) {
		label += " " + HelpMarkerStyle.Render("(?)")
	}

	slider := renderSlider(r.Slider, lay.trackWidth, i == m.dragRow || (focused && !m.editing))

	entryStyle := EntryStyle
	if r.Errored() {
		entryStyle = ErrorEntryStyle
	}
	entry := entryStyle.Render(m.inputs[i].View())

	controls := indent(ControlIndent) + slider + indent(EntryGap) + entry
	return label + "\n" + controls + "\n"
}

type rowPart int

const (
	partNone rowPart = iota
	partLabel
	partSlider
	partEntry
)

// pageLayout holds screen coordinates of the row area.
type pageLayout struct {
	rowTop     int
	trackX     int
	trackWidth int
	entryX     int
}

func (m PageModel) layout() pageLayout {
	w := SliderWidthFor(m.Width)
	return pageLayout{
		rowTop:     lipgloss.Height(m.renderTop()),
		trackX:     ControlIndent,
		trackWidth: w,
		entryX:     ControlIndent + w + EntryGap,
	}
}

// hit returns the row and part under (x, y), or -1 when outside all rows.
func (l pageLayout) hit(x, y, n int) (int, rowPart) {
	if y < l.rowTop {
		return -1, partNone
	}
	rel := y - l.rowTop
	i := rel / rowHeight
	if i >= n {
		return -1, partNone
	}

	switch rel % rowHeight {
	case 0:
		return i, partLabel
	case 1:
		switch {
		case x >= l.trackX && x < l.trackX+l.trackWidth:
			return i, partSlider
		case x >= l.entryX && x < l.entryX+EntryWidth:
			return i, partEntry
		}
		return i, partNone
	}
	return -1, partNone
}
