package tuning

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/muurk/headcursor/internal/logging"
)

// Row binds one config key to a slider and a numeric text entry.
//
// Slider drags and entry edits both write the same value. While the row
// is dragging, entry updates move the slider but never commit; the
// release commits once.
type Row struct {
	Param
	Slider Slider

	entry    string
	errored  bool
	dragging bool
	// silent suppresses the entry change handler for programmatic writes.
	silent bool

	set *RowSet
}

// EntryText returns the entry's current text.
func (r *Row) EntryText() string {
	return r.entry
}

// Errored reports whether the entry shows the invalid-input state.
func (r *Row) Errored() bool {
	return r.errored
}

// Dragging reports whether the slider is being dragged.
func (r *Row) Dragging() bool {
	return r.dragging
}

// SetEntryText is the entry's change notification: the user edited the
// text. It validates, mirrors valid values to the slider and commits
// unless a drag is in progress.
func (r *Row) SetEntryText(text string) {
	r.entry = text
	if r.silent {
		return
	}
	r.entryChanged()
}

func (r *Row) setEntrySilently(text string) {
	r.silent = true
	r.SetEntryText(text)
	r.silent = false
}

func (r *Row) entryChanged() {
	v, ok := validEntryEdit(r.entry, r.Min, r.Max)
	if !ok {
		r.errored = true
		logging.Debug("Entry rejected", zap.String("key", r.Key), zap.String("text", r.entry))
		return
	}

	r.errored = false
	r.Slider.Set(v)

	if r.dragging {
		return
	}
	r.set.commit(r.Key, v)
}

// Press starts a slider drag.
func (r *Row) Press() {
	r.dragging = true
}

// DragTo moves the knob to fraction f of the track and writes the new
// integer value into the entry, which runs the normal entry handler.
// A DragTo without a Press still counts as dragging.
func (r *Row) DragTo(f float64) {
	r.dragging = true
	v := r.Slider.SetFraction(f)
	r.SetEntryText(strconv.Itoa(int(v)))
}

// Release ends a drag and commits the entry's value. An entry that is
// not a number commits nothing, and so does a release with no drag in
// progress.
func (r *Row) Release() {
	if !r.dragging {
		logging.Debug("Release without drag", zap.String("key", r.Key))
		return
	}
	r.dragging = false

	v, ok := parseDigits(r.entry)
	if !ok {
		logging.Debug("Release with non-numeric entry", zap.String("key", r.Key), zap.String("text", r.entry))
		return
	}
	r.set.commit(r.Key, v)
}

// Step moves the slider by delta steps as one press, drag and release.
// A step that would leave the value unchanged, such as stepping past
// either end, does nothing.
func (r *Row) Step(delta int) {
	k, ok := r.Slider.NextStep(r.Slider.Int(), delta)
	if !ok {
		return
	}
	r.JumpToStep(k)
}

// JumpToStep moves the slider to step index i as one press, drag and
// release. Indices outside [0, SliderSteps] are clamped.
func (r *Row) JumpToStep(i int) {
	r.Press()
	r.DragTo(r.Slider.FractionForStep(i))
	r.Release()
}
