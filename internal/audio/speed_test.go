package audio

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewSpeedSlider(t *testing.T) {
	s := NewSpeedSlider(DefaultSliderMax)

	if s.Value() != 0 {
		t.Errorf("Expected initial value 0, got %.2f", s.Value())
	}
	if s.Factor() != 1.0 {
		t.Errorf("Expected initial factor 1.0, got %.2f", s.Factor())
	}
	if !approx(s.Max(), 2.0) {
		t.Errorf("Expected max 2.0, got %.2f", s.Max())
	}
	if s.FormatFactor() != "1x" {
		t.Errorf("Expected \"1x\", got %q", s.FormatFactor())
	}
}

func TestSpeedSliderSetValue(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		factor    float64
		wantError bool
	}{
		{"zero", 0, 1.0, false},
		{"half", 0.5, 1.5, false},
		{"snaps to step", 0.74, 1.7, false},
		{"highest step", 1.9, 2.9, false},
		{"max is exclusive", 2.0, 1.0, true},
		{"negative", -0.1, 1.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpeedSlider(DefaultSliderMax)
			err := s.SetValue(tt.value)
			if (err != nil) != tt.wantError {
				t.Fatalf("SetValue(%.2f) error = %v, wantError %v", tt.value, err, tt.wantError)
			}
			if !approx(s.Factor(), tt.factor) {
				t.Errorf("Expected factor %.2f, got %.2f", tt.factor, s.Factor())
			}
		})
	}
}

func TestSpeedSliderNavigation(t *testing.T) {
	s := NewSpeedSlider(DefaultSliderMax)

	// Cannot go below 1.0x
	if _, err := s.Decrease(); err == nil {
		t.Error("Expected error at minimum speed")
	}

	f, err := s.Increase()
	if err != nil {
		t.Fatalf("Increase failed: %v", err)
	}
	if !approx(f, 1.1) {
		t.Errorf("Expected factor 1.1, got %.2f", f)
	}
	if s.FormatFactor() != "1.1x" {
		t.Errorf("Expected \"1.1x\", got %q", s.FormatFactor())
	}

	f, _ = s.Decrease()
	if f != 1.0 {
		t.Errorf("Expected factor 1.0 after decrease, got %.2f", f)
	}

	for i := 0; i < 19; i++ {
		if _, err := s.Increase(); err != nil {
			t.Fatalf("Increase %d failed: %v", i, err)
		}
	}
	if !approx(s.Factor(), 2.9) {
		t.Errorf("Expected factor 2.9 at the top, got %.2f", s.Factor())
	}
	if s.Fraction() != 1.0 {
		t.Errorf("Expected fraction 1.0 at the top, got %.2f", s.Fraction())
	}
	if _, err := s.Increase(); err == nil {
		t.Error("Expected error at maximum speed")
	}
}

func TestSpeedSliderCustomRange(t *testing.T) {
	s := NewSpeedSliderWithStep(1.0, 0.25)

	if !approx(s.Max(), 1.0) {
		t.Errorf("Expected max 1.0, got %.2f", s.Max())
	}
	s.Increase()
	s.Increase()
	if s.FormatFactor() != "1.5x" {
		t.Errorf("Expected \"1.5x\", got %q", s.FormatFactor())
	}

	// Bad parameters fall back to defaults
	d := NewSpeedSliderWithStep(0, -1)
	if !approx(d.Max(), DefaultSliderMax) {
		t.Errorf("Expected default max, got %.2f", d.Max())
	}
}
