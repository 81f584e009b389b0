package metrics

import "time"

// PerformanceMetrics is one derived row per user per day.
type PerformanceMetrics struct {
	ID     int       `json:"id"`
	UserID int       `json:"userId"`
	Date   time.Time `json:"date"`

	ComponentScores

	OverallFitnessIndex float64 `json:"overallFitnessIndex"`
	FitnessGrade        string  `json:"fitnessGrade"`

	TotalCaloriesBurned int     `json:"totalCaloriesBurned"`
	TotalWorkoutTime    int     `json:"totalWorkoutTime"`
	WorkoutFrequency    int     `json:"workoutFrequency"`
	CalorieEfficiency   float64 `json:"calorieEfficiency"`
	ConsistencyScore    float64 `json:"consistencyScore"`

	CreatedAt time.Time `json:"createdAt"`
}
