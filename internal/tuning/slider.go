package tuning

import "math"

// SliderSteps is the number of discrete steps a slider's range is divided into.
const SliderSteps = 99

// Slider is a stepped numeric slider over the inclusive range [Min, Max].
//
// Programmatic writes (Set) store the value as given; only pointer-driven
// positions (SetFraction) are snapped to the step grid. Rendering clamps
// through Fraction, so a value outside the range draws at the nearest end.
type Slider struct {
	Min   int
	Max   int
	Steps int

	value float64
}

// NewSlider creates a slider positioned at min.
func NewSlider(min, max, steps int) Slider {
	if steps < 1 {
		steps = 1
	}
	return Slider{Min: min, Max: max, Steps: steps, value: float64(min)}
}

// Set positions the slider at v.
func (s *Slider) Set(v int) {
	s.value = float64(v)
}

// Value returns the raw slider value, which may lie between integers
// after a pointer drag.
func (s Slider) Value() float64 {
	return s.value
}

// Int returns the slider value truncated to an integer.
func (s Slider) Int() int {
	return int(s.value)
}

// Fraction returns the knob position in [0, 1].
func (s Slider) Fraction() float64 {
	span := float64(s.Max - s.Min)
	if span <= 0 {
		return 0
	}
	f := (s.value - float64(s.Min)) / span
	return math.Max(0, math.Min(1, f))
}

// NextStep returns the step index delta steps away from the integer value
// v, counting only steps whose truncated value differs from v. Steps that
// truncate to v itself are passed over, so every move changes the value.
// ok is false when no step in that direction does.
func (s Slider) NextStep(v, delta int) (k int, ok bool) {
	switch {
	case delta > 0:
		for k < s.Steps && s.intAt(k+1) <= v {
			k++
		}
		k += delta
		for k <= s.Steps && s.intAt(k) <= v {
			k++
		}
	case delta < 0:
		k = s.Steps
		for k > 0 && s.intAt(k-1) >= v {
			k--
		}
		k += delta
		for k >= 0 && s.intAt(k) >= v {
			k--
		}
	default:
		return 0, false
	}

	k = max(0, min(k, s.Steps))
	return k, s.intAt(k) != v
}

// intAt is the integer an entry shows for step k.
func (s Slider) intAt(k int) int {
	return int(float64(s.Min) + float64(k)*float64(s.Max-s.Min)/float64(s.Steps))
}

// SetFraction moves the knob to the step nearest f (clamped to [0, 1])
// and returns the resulting raw value.
func (s *Slider) SetFraction(f float64) float64 {
	f = math.Max(0, math.Min(1, f))
	step := math.Round(f * float64(s.Steps))
	// Multiply before dividing so whole-number steps stay exact.
	s.value = float64(s.Min) + step*float64(s.Max-s.Min)/float64(s.Steps)
	return s.value
}

// FractionForStep returns the knob fraction of step index i, clamped to
// the valid step range.
func (s Slider) FractionForStep(i int) float64 {
	if i < 0 {
		i = 0
	}
	if i > s.Steps {
		i = s.Steps
	}
	return float64(i) / float64(s.Steps)
}
