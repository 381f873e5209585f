package audio

import (
	"fmt"
	"math"
	"sync"
)

// Slider defaults.
var (
	DefaultSliderMax  = 2.0
	DefaultSliderStep = 0.1
)

// SpeedSlider models the playback speed slider. The slider position ranges
// over [0, max) in fixed steps and maps to a playback factor of value + 1.0,
// so the slider can only speed playback up, never slow it below 1.0x.
type SpeedSlider struct {
	mu       sync.RWMutex
	step     float64
	ticks    int
	position int
}

// NewSpeedSlider creates a slider with the default step size.
func NewSpeedSlider(max float64) *SpeedSlider {
	return NewSpeedSliderWithStep(max, DefaultSliderStep)
}

// NewSpeedSliderWithStep creates a slider over [0, max) with the given step.
func NewSpeedSliderWithStep(max, step float64) *SpeedSlider {
	if step <= 0 {
		step = DefaultSliderStep
	}
	if max < step {
		max = DefaultSliderMax
	}
	return &SpeedSlider{
		step:  step,
		ticks: int(math.Round(max / step)),
	}
}

// Value returns the slider value.
func (s *SpeedSlider) Value() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.valueLocked()
}

func (s *SpeedSlider) valueLocked() float64 {
	return float64(s.position) * s.step
}

// Factor returns the playback speed factor for the current value.
func (s *SpeedSlider) Factor() float64 {
	return s.Value() + 1.0
}

// Max returns the exclusive upper bound of the slider value.
func (s *SpeedSlider) Max() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return float64(s.ticks) * s.step
}

// SetValue moves the slider to the step nearest v.
func (s *SpeedSlider) SetValue(v float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := float64(s.ticks) * s.step
	if v < 0 || v >= limit {
		return fmt.Errorf("slider value %.2f out of range [0, %.2f)", v, limit)
	}
	s.position = int(math.Round(v / s.step))
	if s.position >= s.ticks {
		s.position = s.ticks - 1
	}
	return nil
}

// Increase moves the slider one step up and returns the new factor.
func (s *SpeedSlider) Increase() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.position >= s.ticks-1 {
		return s.valueLocked() + 1.0, fmt.Errorf("already at maximum speed")
	}
	s.position++
	return s.valueLocked() + 1.0, nil
}

// Decrease moves the slider one step down and returns the new factor.
func (s *SpeedSlider) Decrease() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.position <= 0 {
		return s.valueLocked() + 1.0, fmt.Errorf("already at minimum speed")
	}
	s.position--
	return s.valueLocked() + 1.0, nil
}

// Fraction returns the slider position in [0, 1] for rendering.
func (s *SpeedSlider) Fraction() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ticks <= 1 {
		return 0
	}
	return float64(s.position) / float64(s.ticks-1)
}

// FormatFactor returns a compact speed representation such as "1.5x".
func (s *SpeedSlider) FormatFactor() string {
	f := s.Factor()
	if f == math.Trunc(f) {
		return fmt.Sprintf("%.0fx", f)
	}
	return fmt.Sprintf("%.1fx", f)
}
