package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/headcursor/internal/config"
	"github.com/muurk/headcursor/internal/mouse"
)

func newTestPage(t *testing.T) (PageModel, *config.Store) {
	t.Helper()
	store, err := config.Open(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("config.Open() error = %v", err)
	}
	page, err := NewPageModel(store, mouse.NewController(store))
	if err != nil {
		t.Fatalf("NewPageModel() error = %v", err)
	}
	return send(page, tea.WindowSizeMsg{Width: 80, Height: 40}), store
}

// send delivers msg and returns the updated page, dropping the command.
func send(m PageModel, msg tea.Msg) PageModel {
	next, _ := m.Update(msg)
	return next.(PageModel)
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// controlY returns the screen row of row i's slider and entry.
func controlY(m PageModel, i int) int {
	return m.layout().rowTop + i*rowHeight + 1
}

func TestNewPageModelLoadsStore(t *testing.T) {
	page, _ := newTestPage(t)

	rows := page.Rows().Rows()
	if len(rows) != 7 {
		t.Fatalf("len(rows) = %d, want 7", len(rows))
	}
	for i, r := range rows {
		want := config.DefaultSettings()[r.Key]
		if r.EntryText() != page.inputs[i].Value() {
			t.Errorf("row %s: input %q differs from entry %q", r.Key, page.inputs[i].Value(), r.EntryText())
		}
		if r.Slider.Int() != want {
			t.Errorf("row %s: slider = %d, want %d", r.Key, r.Slider.Int(), want)
		}
	}
}

func TestKeyboardStepCommits(t *testing.T) {
	page, store := newTestPage(t)

	page = send(page, keyType(tea.KeyRight))

	if got := store.Get(config.KeySpeedUp); got != 41 {
		t.Errorf("spd_up = %d, want 41", got)
	}
	if got := page.inputs[0].Value(); got != "41" {
		t.Errorf("input = %q, want %q", got, "41")
	}
	status, isErr := page.Status()
	if isErr || !strings.Contains(status, "spd_up = 41") {
		t.Errorf("status = %q (err %v), want saved spd_up", status, isErr)
	}
}

func TestKeyboardHomeEnd(t *testing.T) {
	page, store := newTestPage(t)

	page = send(page, keyType(tea.KeyHome))
	if got := store.Get(config.KeySpeedUp); got != 0 {
		t.Errorf("after home spd_up = %d, want 0", got)
	}

	page = send(page, keyType(tea.KeyEnd))
	if got := store.Get(config.KeySpeedUp); got != 100 {
		t.Errorf("after end spd_up = %d, want 100", got)
	}
	// The entry rejects its own maximum, but the slider release committed it
	if !page.Rows().Rows()[0].Errored() {
		t.Error("entry should show the invalid state at the slider maximum")
	}
}

func TestFocusMovesAndWraps(t *testing.T) {
	page, _ := newTestPage(t)

	page = send(page, keyType(tea.KeyUp))
	if page.Focus() != 6 {
		t.Errorf("focus after up from top = %d, want 6", page.Focus())
	}

	page = send(page, keyType(tea.KeyTab))
	if page.Focus() != 0 {
		t.Errorf("focus after tab from bottom = %d, want 0", page.Focus())
	}

	page = send(page, runes("j"))
	if page.Focus() != 1 {
		t.Errorf("focus after j = %d, want 1", page.Focus())
	}
}

func TestTypingCommitsValidValues(t *testing.T) {
	page, store := newTestPage(t)

	page = send(page, keyType(tea.KeyEnter))
	if !page.Editing() {
		t.Fatal("enter should start editing")
	}

	// Clear the entry, then type 55
	page = send(page, keyType(tea.KeyCtrlU))
	if !page.Rows().Rows()[0].Errored() {
		t.Error("empty entry should be flagged")
	}
	page = send(page, runes("5"))
	page = send(page, runes("5"))

	if got := store.Get(config.KeySpeedUp); got != 55 {
		t.Errorf("spd_up = %d, want 55", got)
	}

	// q is typed, not quit, while editing
	page = send(page, runes("q"))
	if !page.Rows().Rows()[0].Errored() {
		t.Error("non-numeric entry should be flagged")
	}
	if got := store.Get(config.KeySpeedUp); got != 55 {
		t.Errorf("spd_up after invalid text = %d, want 55", got)
	}

	page = send(page, keyType(tea.KeyEsc))
	if page.Editing() {
		t.Error("esc should stop editing")
	}
}

func TestTypingOutOfRangeIsRejected(t *testing.T) {
	page, store := newTestPage(t)

	page = send(page, keyType(tea.KeyEnter))
	page = send(page, keyType(tea.KeyCtrlU))
	for _, r := range "150" {
		page = send(page, runes(string(r)))
	}

	// "1" and "15" commit on the way; "150" is out of range
	if got := store.Get(config.KeySpeedUp); got != 15 {
		t.Errorf("spd_up = %d, want 15", got)
	}
	if !page.Rows().Rows()[0].Errored() {
		t.Error("150 should be flagged")
	}
}

func TestDoneEditMovesFocus(t *testing.T) {
	page, _ := newTestPage(t)

	page = send(page, keyType(tea.KeyEnter))
	page = send(page, keyType(tea.KeyTab))

	if page.Editing() {
		t.Error("tab should stop editing")
	}
	if page.Focus() != 1 {
		t.Errorf("focus = %d, want 1", page.Focus())
	}
}

func TestMouseDragCommitsOnRelease(t *testing.T) {
	page, store := newTestPage(t)
	lay := page.layout()
	y := controlY(page, 1)

	page = send(page, tea.MouseMsg{X: lay.trackX, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if page.Focus() != 1 {
		t.Errorf("focus = %d, want 1", page.Focus())
	}
	row := page.Rows().Rows()[1]
	if !row.Dragging() {
		t.Fatal("press on track should start a drag")
	}
	if row.EntryText() != "0" {
		t.Errorf("entry during drag = %q, want %q", row.EntryText(), "0")
	}
	if got := store.Get(config.KeySpeedDown); got != 40 {
		t.Errorf("spd_down committed during drag: %d", got)
	}

	// Dragging past the track end clamps to the maximum
	page = send(page, tea.MouseMsg{X: lay.trackX + lay.trackWidth + 10, Y: y + 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	if row.EntryText() != "100" {
		t.Errorf("entry after drag = %q, want %q", row.EntryText(), "100")
	}

	page = send(page, tea.MouseMsg{X: lay.trackX, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if row.Dragging() {
		t.Error("release should end the drag")
	}
	if got := store.Get(config.KeySpeedDown); got != 100 {
		t.Errorf("spd_down = %d, want 100", got)
	}
	if page.inputs[1].Value() != "100" {
		t.Errorf("input = %q, want %q", page.inputs[1].Value(), "100")
	}
}

func TestMousePressOnEntryStartsEditing(t *testing.T) {
	page, _ := newTestPage(t)
	lay := page.layout()

	page = send(page, tea.MouseMsg{X: lay.entryX + 1, Y: controlY(page, 2), Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

	if page.Focus() != 2 {
		t.Errorf("focus = %d, want 2", page.Focus())
	}
	if !page.Editing() {
		t.Error("press on entry should start editing")
	}
}

func TestMouseHoverShowsTooltip(t *testing.T) {
	page, _ := newTestPage(t)

	// Row 4 is the first with help text
	labelY := page.layout().rowTop + 4*rowHeight
	page = send(page, tea.MouseMsg{X: ContentIndent, Y: labelY, Action: tea.MouseActionMotion})

	view := page.View()
	if !strings.Contains(view, "jitteriness") {
		t.Error("hovered label's tooltip missing from view")
	}

	page = send(page, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	if strings.Contains(page.View(), "jitteriness") {
		t.Error("tooltip should hide when hover leaves the label")
	}
}

func TestLayoutHit(t *testing.T) {
	lay := pageLayout{rowTop: 10, trackX: 4, trackWidth: 20, entryX: 26}

	tests := []struct {
		name     string
		x, y     int
		wantRow  int
		wantPart rowPart
	}{
		{"above rows", 5, 9, -1, partNone},
		{"first label", 2, 10, 0, partLabel},
		{"first track start", 4, 11, 0, partSlider},
		{"first track end", 23, 11, 0, partSlider},
		{"gap before entry", 24, 11, 0, partNone},
		{"first entry", 27, 11, 0, partEntry},
		{"blank line", 5, 12, -1, partNone},
		{"second track", 10, 14, 1, partSlider},
		{"below rows", 10, 17, -1, partNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, part := lay.hit(tt.x, tt.y, 2)
			if row != tt.wantRow || part != tt.wantPart {
				t.Errorf("hit(%d, %d) = (%d, %d), want (%d, %d)", tt.x, tt.y, row, part, tt.wantRow, tt.wantPart)
			}
		})
	}
}

func TestViewPlacesRowsAtLayout(t *testing.T) {
	page, _ := newTestPage(t)

	lines := strings.Split(page.View(), "\n")
	top := page.layout().rowTop
	for i, r := range page.Rows().Rows() {
		if !strings.Contains(lines[top+i*rowHeight], r.Title) {
			t.Errorf("line %d = %q, want label %q", top+i*rowHeight, lines[top+i*rowHeight], r.Title)
		}
	}
}

func TestProfileChangedRefreshesRows(t *testing.T) {
	page, store := newTestPage(t)

	if err := store.AddProfile("fast"); err != nil {
		t.Fatalf("AddProfile() error = %v", err)
	}
	if err := store.UseProfile("fast"); err != nil {
		t.Fatalf("UseProfile() error = %v", err)
	}
	store.Stage(config.KeySpeedUp, 90)
	if err := store.Apply(); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	page = send(page, ProfileChangedMsg{})

	if got := page.inputs[0].Value(); got != "90" {
		t.Errorf("input = %q, want %q", got, "90")
	}
	status, _ := page.Status()
	if !strings.Contains(status, "fast") {
		t.Errorf("status = %q, want profile name", status)
	}
}

func TestCopyExportsProfile(t *testing.T) {
	page, _ := newTestPage(t)

	var copied string
	page.copyFn = func(s string) error {
		copied = s
		return nil
	}

	next, cmd := page.Update(runes("y"))
	if cmd == nil {
		t.Fatal("y should return a copy command")
	}
	page = send(next.(PageModel), cmd())

	if !strings.Contains(copied, "spd_up: 40") {
		t.Errorf("copied = %q, want profile YAML", copied)
	}
	if status, isErr := page.Status(); isErr || status != "Copied profile to clipboard" {
		t.Errorf("status = %q (err %v)", status, isErr)
	}
}

func TestCopyFailureShowsError(t *testing.T) {
	page, _ := newTestPage(t)
	page.copyFn = func(string) error { return errors.New("no clipboard") }

	_, cmd := page.Update(runes("y"))
	page = send(page, cmd())

	if status, isErr := page.Status(); !isErr || !strings.Contains(status, "no clipboard") {
		t.Errorf("status = %q (err %v), want copy failure", status, isErr)
	}
}

func TestQuit(t *testing.T) {
	page, _ := newTestPage(t)

	_, cmd := page.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}
