package summary

import "time"

// UserSummary is the rolling per-user summary row, fully recalculated
// from the whole workout history on demand.
type UserSummary struct {
	UserID                int       `json:"userId"`
	PerformanceIndex      float64   `json:"performanceIndex"`
	EfficiencyScore       float64   `json:"efficiencyScore"`
	ConsistencyRating     float64   `json:"consistencyRating"`
	ImprovementTrend      float64   `json:"improvementTrend"`
	TotalSessions         int       `json:"totalSessions"`
	TotalCalories         int       `json:"totalCalories"`
	WeeklyAverageCalories float64   `json:"weeklyAverageCalories"`
	GlobalRank            int       `json:"globalRank"`
	Percentile            float64   `json:"percentile"`
	UpdatedAt             time.Time `json:"updatedAt"`
}
