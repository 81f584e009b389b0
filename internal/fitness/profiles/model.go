package profiles

import (
	"errors"
	"strings"
	"time"
)

type FitnessLevel string

const (
	LevelBeginner     FitnessLevel = "beginner"
	LevelIntermediate FitnessLevel = "intermediate"
	LevelAdvanced     FitnessLevel = "advanced"
	LevelExpert       FitnessLevel = "expert"
)

func (l FitnessLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	}
	return false
}

// Profile holds a user's body stats. BMI and BMR are pure functions of
// the other fields, recomputed on every save and never set directly.
type Profile struct {
	UserID       int          `json:"userId"`
	Age          int          `json:"age"`
	WeightKg     float64      `json:"weightKg"`
	HeightCm     float64      `json:"heightCm"`
	Gender       string       `json:"gender"`
	FitnessLevel FitnessLevel `json:"fitnessLevel"`
	BMI          *float64     `json:"bmi,omitempty"`
	BMR          *float64     `json:"bmr,omitempty"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (p Profile) Validate() error {
	if p.UserID <= 0 {
		return errors.New("user id missing")
	}
	if p.Age != 0 && (p.Age < 13 || p.Age > 120) {
		return errors.New("age must be between 13 and 120")
	}
	if p.WeightKg < 0 {
		return errors.New("weight must not be negative")
	}
	if p.HeightCm < 0 {
		return errors.New("height must not be negative")
	}
	if strings.TrimSpace(string(p.FitnessLevel)) != "" && !p.FitnessLevel.Valid() {
		return errors.New("invalid fitness level")
	}
	return nil
}
