package metrics

import (
	"math"
	"strings"

	"github.com/fitstride/fitstride/internal/fitness/workouts"
)

// Score bump bases per matched workout category. A session bumps the
// matching component score by base * intensity multiplier, capped at 100.
const (
	cardioIncrement      = 2.0
	enduranceIncrement   = 1.5
	strengthIncrement    = 2.0
	flexibilityIncrement = 2.0

	maxComponentScore = 100.0
)

// ComputeBMI returns weight / height_m^2 rounded to 2 decimals,
// or nil when either input is missing.
func ComputeBMI(weightKg, heightCm float64) *float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return nil
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	bmi = math.Round(bmi*100) / 100
	return &bmi
}

// ComputeBMR returns the basal metabolic rate per the Mifflin-St Jeor
// equation, or nil when any input is missing. Female and other genders
// collapse to the same formula.
func ComputeBMR(weightKg, heightCm float64, age int, gender string) *float64 {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 || gender == "" {
		return nil
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if strings.EqualFold(gender, "male") {
		bmr += 5
	} else {
		bmr -= 161
	}
	return &bmr
}

// ComponentScores holds the four 0-100 running scores. These are
// monotonically-increasing-until-capped heuristics, not a physiological
// measure.
type ComponentScores struct {
	Cardiovascular float64 `json:"cardiovascularScore"`
	Strength       float64 `json:"strengthScore"`
	Flexibility    float64 `json:"flexibilityScore"`
	Endurance      float64 `json:"enduranceScore"`
}

// ApplySession bumps the scores matching the session's workout type
// category by base increment * intensity multiplier.
func (cs ComponentScores) ApplySession(session workouts.Session) ComponentScores {
	m := session.Intensity.Multiplier()
	workoutType := strings.ToLower(session.WorkoutType)

	switch {
	case isCardioWorkout(workoutType):
		cs.Cardiovascular = capScore(cs.Cardiovascular + cardioIncrement*m)
		cs.Endurance = capScore(cs.Endurance + enduranceIncrement*m)
	case isStrengthWorkout(workoutType):
		cs.Strength = capScore(cs.Strength + strengthIncrement*m)
	case isFlexibilityWorkout(workoutType):
		cs.Flexibility = capScore(cs.Flexibility + flexibilityIncrement*m)
	}

	return cs
}

func capScore(score float64) float64 {
	if score > maxComponentScore {
		return maxComponentScore
	}
	return score
}

func isCardioWorkout(workoutType string) bool {
	for _, keyword := range []string{"cardio", "running", "run", "cycling", "swimming", "rowing", "hiit"} {
		if strings.Contains(workoutType, keyword) {
			return true
		}
	}
	return false
}

func isStrengthWorkout(workoutType string) bool {
	for _, keyword := range []string{"strength", "weight", "lifting", "crossfit", "calisthenics"} {
		if strings.Contains(workoutType, keyword) {
			return true
		}
	}
	return false
}

func isFlexibilityWorkout(workoutType string) bool {
	for _, keyword := range []string{"yoga", "flexibility", "stretching", "pilates", "mobility"} {
		if strings.Contains(workoutType, keyword) {
			return true
		}
	}
	return false
}

// CalorieEfficiency returns calories burned per minute, 0 when no minutes.
func CalorieEfficiency(totalCalories, totalMinutes int) float64 {
	if totalMinutes == 0 {
		return 0
	}
	return float64(totalCalories) / float64(totalMinutes)
}

// ConsistencyScore returns distinct workout days in the trailing 7 days
// divided by 7, as a percentage.
func ConsistencyScore(distinctDaysInWeek int) float64 {
	if distinctDaysInWeek <= 0 {
		return 0
	}
	if distinctDaysInWeek > 7 {
		distinctDaysInWeek = 7
	}
	return float64(distinctDaysInWeek) / 7 * 100
}
