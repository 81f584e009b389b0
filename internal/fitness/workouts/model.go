package workouts

import (
	"errors"
	"strings"
	"time"
)

type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
	IntensityExtreme  Intensity = "extreme"
)

// Multiplier returns the score bump multiplier for the intensity.
// Extreme sessions use the same multiplier as high ones.
func (i Intensity) Multiplier() float64 {
	switch i {
	case IntensityLow:
		return 0.5
	case IntensityModerate:
		return 1.0
	case IntensityHigh, IntensityExtreme:
		return 1.5
	default:
		return 1.0
	}
}

func (i Intensity) Valid() bool {
	switch i {
	case IntensityLow, IntensityModerate, IntensityHigh, IntensityExtreme:
		return true
	}
	return false
}

func IntensityFromString(s string) (Intensity, error) {
	i := Intensity(strings.ToLower(strings.TrimSpace(s)))
	if !i.Valid() {
		return "", errors.New("invalid intensity: " + s)
	}
	return i, nil
}

type Session struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	WorkoutType     string    `json:"workoutType"`
	DurationMinutes int       `json:"durationMinutes"`
	CaloriesBurned  int       `json:"caloriesBurned"`
	Intensity       Intensity `json:"intensity"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (s Session) Validate() error {
	if s.UserID <= 0 {
		return errors.New("user id missing")
	}
	if strings.TrimSpace(s.WorkoutType) == "" {
		return errors.New("workout type missing")
	}
	if s.DurationMinutes <= 0 {
		return errors.New("duration must be greater than 0")
	}
	if s.CaloriesBurned < 0 {
		return errors.New("calories burned must not be negative")
	}
	if !s.Intensity.Valid() {
		return errors.New("invalid intensity")
	}
	return nil
}

// AnalyticsTotals aggregates a user's whole workout history.
type AnalyticsTotals struct {
	TotalSessions  int        `json:"totalSessions"`
	TotalMinutes   int        `json:"totalMinutes"`
	TotalCalories  int        `json:"totalCalories"`
	AvgDuration    float64    `json:"avgDuration"`
	AvgCalories    float64    `json:"avgCalories"`
	DistinctTypes  int        `json:"distinctTypes"`
	FirstSessionAt *time.Time `json:"firstSessionAt,omitempty"`
	LastSessionAt  *time.Time `json:"lastSessionAt,omitempty"`
}
