package domain

import (
	"fmt"
	"time"
)

// ClockLayout is the HH:MM layout used for start times and fixed slots.
const ClockLayout = "15:04"

// UserProfile describes when the user works best and when the day begins.
type UserProfile struct {
	EnergyPeak EnergyPeak `json:"energy_peak" yaml:"energy_peak"`
	Start      string     `json:"start" yaml:"start"`
}

// DefaultProfile returns the profile every session starts with.
func DefaultProfile() UserProfile {
	return UserProfile{EnergyPeak: EnergyMorning, Start: "09:00"}
}

// Validate checks a profile collected from flags or forms.
func (p UserProfile) Validate() error {
	if !ValidEnergyPeaks[p.EnergyPeak] {
		return fmt.Errorf("%w: energy peak %q", ErrInvalidProfile, p.EnergyPeak)
	}
	if err := ValidateClock(p.Start); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidProfile, err)
	}
	return nil
}

// ValidateClock reports whether s is a 24h HH:MM time of day.
func ValidateClock(s string) error {
	if len(s) != len(ClockLayout) {
		return fmt.Errorf("time %q must be HH:MM", s)
	}
	if _, err := time.Parse(ClockLayout, s); err != nil {
		return fmt.Errorf("time %q must be HH:MM", s)
	}
	return nil
}
