package tuning

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/muurk/headcursor/internal/logging"
)

// MaxHoldTrigger is the global ceiling applied when loading values from
// the store. It is also the max of the hold-delay row, but it clips every
// row, including ones whose own max is lower.
const MaxHoldTrigger = 2000

// Store is the configuration store a row set reads from and commits to.
type Store interface {
	Get(key string) int
	Stage(key string, value int)
	Apply() error
}

// KernelRecomputer is the mouse-control service hook run after each commit.
type KernelRecomputer interface {
	RecomputeSmoothingKernel()
}

// TooltipRegistry associates help text with a widget id. Registering an
// empty text must be a no-op.
type TooltipRegistry interface {
	Register(id, text string)
}

// Param declares one tunable row.
type Param struct {
	Title string
	Key   string
	Help  string
	Min   int
	Max   int
}

// Commit describes one stage+apply performed by the row set.
type Commit struct {
	Key   string
	Value int
	// Err is the store's Apply error; the value is committed in memory
	// either way.
	Err error
}

// RowSet is an ordered set of parameter rows bound to a Store.
type RowSet struct {
	rows   []*Row
	byKey  map[string]*Row
	store  Store
	kernel KernelRecomputer

	onCommit func(Commit)
}

// NewRowSet builds one row per param, in order. Help text is registered
// with tips (which may be nil) under the param's key. Duplicate keys
// and inverted ranges are programming errors and are rejected.
func NewRowSet(params []Param, store Store, kernel KernelRecomputer, tips TooltipRegistry) (*RowSet, error) {
	s := &RowSet{
		rows:   make([]*Row, 0, len(params)),
		byKey:  make(map[string]*Row, len(params)),
		store:  store,
		kernel: kernel,
	}

	for _, p := range params {
		if p.Key == "" {
			return nil, errors.New("row key must not be empty")
		}
		if _, dup := s.byKey[p.Key]; dup {
			return nil, fmt.Errorf("duplicate row key %q", p.Key)
		}
		if p.Max <= p.Min {
			return nil, fmt.Errorf("row %q: max %d must be greater than min %d", p.Key, p.Max, p.Min)
		}

		r := &Row{
			Param:  p,
			Slider: NewSlider(p.Min, p.Max, SliderSteps),
			set:    s,
		}
		s.rows = append(s.rows, r)
		s.byKey[p.Key] = r

		if tips != nil {
			tips.Register(p.Key, p.Help)
		}
	}

	return s, nil
}

// OnCommit registers fn to observe every commit. Only one observer is kept.
func (s *RowSet) OnCommit(fn func(Commit)) {
	s.onCommit = fn
}

// Rows returns the rows in display order.
func (s *RowSet) Rows() []*Row {
	return s.rows
}

// Row looks a row up by config key.
func (s *RowSet) Row(key string) (*Row, bool) {
	r, ok := s.byKey[key]
	return r, ok
}

// Len returns the number of rows.
func (s *RowSet) Len() int {
	return len(s.rows)
}

// LoadInitialConfig pulls every row's value from the store, clipped to
// [1, MaxHoldTrigger]. Nothing is written back.
func (s *RowSet) LoadInitialConfig() {
	for _, r := range s.rows {
		v := clip(s.store.Get(r.Key), 1, MaxHoldTrigger)
		r.Slider.Set(v)
		r.setEntrySilently(strconv.Itoa(v))
		r.errored = false
		r.dragging = false
	}
}

// commit stages and applies value under key, then has the mouse service
// recompute its kernel. Save failures are logged and reported through
// OnCommit; they never reach the widget.
func (s *RowSet) commit(key string, value int) {
	s.store.Stage(key, value)
	err := s.store.Apply()
	if err != nil {
		logging.Warn("Failed to save setting",
			zap.String("key", key),
			zap.Int("value", value),
			zap.Error(err),
		)
	}
	if s.kernel != nil {
		s.kernel.RecomputeSmoothingKernel()
	}
	if s.onCommit != nil {
		s.onCommit(Commit{Key: key, Value: value, Err: err})
	}
}

func clip(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
