package mouse

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/muurk/headcursor/internal/config"
	"github.com/muurk/headcursor/internal/logging"
)

// Settings is the read side of the configuration store.
type Settings interface {
	Get(key string) int
}

// Controller turns head-motion deltas into cursor deltas. It smooths
// recent motion with a kernel sized by the pointer_smooth setting and
// scales each axis by the per-direction speed settings.
//
// Kernels are not tracked live: call RecomputeSmoothingKernel after the
// smoothing settings change.
type Controller struct {
	mu       sync.Mutex
	settings Settings

	pointerKernel []float64
	shapeKernel   []float64

	// Oldest first; len == len(pointerKernel)
	bufX []float64
	bufY []float64
}

// NewController creates a controller and computes its initial kernels.
func NewController(settings Settings) *Controller {
	c := &Controller{settings: settings}
	c.RecomputeSmoothingKernel()
	return c
}

// RecomputeSmoothingKernel rebuilds the pointer and blendshape kernels
// from the current settings. Buffered motion is kept, newest samples
// first, so the cursor doesn't jump when the kernel grows or shrinks.
func (c *Controller) RecomputeSmoothingKernel() {
	pointerN := c.settings.Get(config.KeyPointerSmooth)
	shapeN := c.settings.Get(config.KeyShapeSmooth)

	pointer := SmoothingKernel(pointerN)
	shape := SmoothingKernel(shapeN)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.pointerKernel = pointer
	c.shapeKernel = shape
	c.bufX = resizeKeepNewest(c.bufX, len(pointer))
	c.bufY = resizeKeepNewest(c.bufY, len(pointer))

	logging.Debug("Smoothing kernel recomputed",
		zap.Int("pointer_len", len(pointer)),
		zap.Int("shape_len", len(shape)),
	)
}

// PointerKernel returns a copy of the current pointer kernel.
func (c *Controller) PointerKernel() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]float64(nil), c.pointerKernel...)
}

// ShapeKernel returns a copy of the current blendshape kernel.
func (c *Controller) ShapeKernel() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]float64(nil), c.shapeKernel...)
}

// Move feeds one head-motion sample and returns the cursor delta.
// Screen coordinates: negative dy is up.
func (c *Controller) Move(dx, dy float64) (float64, float64) {
	c.mu.Lock()
	c.bufX = push(c.bufX, dx)
	c.bufY = push(c.bufY, dy)
	sx := floats.Dot(c.bufX, c.pointerKernel)
	sy := floats.Dot(c.bufY, c.pointerKernel)
	c.mu.Unlock()

	if sx >= 0 {
		sx *= float64(c.settings.Get(config.KeySpeedRight))
	} else {
		sx *= float64(c.settings.Get(config.KeySpeedLeft))
	}
	if sy >= 0 {
		sy *= float64(c.settings.Get(config.KeySpeedDown))
	} else {
		sy *= float64(c.settings.Get(config.KeySpeedUp))
	}
	return sx, sy
}

// SmoothShape smooths a history of blendshape scores (oldest first) with
// the blendshape kernel. Shorter histories use the newest kernel weights
// renormalised.
func (c *Controller) SmoothShape(history []float64) float64 {
	c.mu.Lock()
	kernel := append([]float64(nil), c.shapeKernel...)
	c.mu.Unlock()

	if len(history) == 0 {
		return 0
	}
	if len(history) > len(kernel) {
		history = history[len(history)-len(kernel):]
	}
	weights := kernel[len(kernel)-len(history):]
	return floats.Dot(history, weights) / floats.Sum(weights)
}

// HoldTrigger returns how long a gesture must be held before its action fires.
func (c *Controller) HoldTrigger() time.Duration {
	return time.Duration(c.settings.Get(config.KeyHoldTriggerMs)) * time.Millisecond
}

// Reset clears buffered motion.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.bufX {
		c.bufX[i] = 0
		c.bufY[i] = 0
	}
}

// push shifts buf left by one and stores v in the last slot.
func push(buf []float64, v float64) []float64 {
	copy(buf, buf[1:])
	buf[len(buf)-1] = v
	return buf
}

func resizeKeepNewest(buf []float64, n int) []float64 {
	out := make([]float64, n)
	if len(buf) > n {
		buf = buf[len(buf)-n:]
	}
	copy(out[n-len(buf):], buf)
	return out
}
