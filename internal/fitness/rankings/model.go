package rankings

import (
	"errors"
	"strings"
	"time"
)

type RankingType string

const (
	// TypeOverall ranks users by their latest overall fitness index
	// within the period.
	TypeOverall RankingType = "overall"
	// TypeCalories ranks users by total calories burned in the period.
	TypeCalories RankingType = "calories"
)

func (t RankingType) Valid() bool {
	switch t {
	case TypeOverall, TypeCalories:
		return true
	}
	return false
}

func RankingTypeFromString(s string) (RankingType, error) {
	t := RankingType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", errors.New("invalid ranking type: " + s)
	}
	return t, nil
}

type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

func PeriodFromString(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PeriodWeekly, PeriodMonthly:
		return p, nil
	}
	return "", errors.New("invalid period: " + s)
}

// Bounds returns the period's [start, end] day range containing now.
// Weeks start on Monday.
func (p Period) Bounds(now time.Time) (start, end time.Time) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch p {
	case PeriodWeekly:
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start = day.AddDate(0, 0, -(weekday - 1))
		end = start.AddDate(0, 0, 6)
	case PeriodMonthly:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, -1)
	}
	return start, end
}

// PreviousBounds returns the immediately preceding period's range.
func (p Period) PreviousBounds(now time.Time) (start, end time.Time) {
	currentStart, _ := p.Bounds(now)
	return p.Bounds(currentStart.AddDate(0, 0, -1))
}

type UserRanking struct {
	ID                int         `json:"id"`
	UserID            int         `json:"userId"`
	Username          string      `json:"username,omitempty"`
	Type              RankingType `json:"rankingType"`
	PeriodStart       time.Time   `json:"periodStart"`
	PeriodEnd         time.Time   `json:"periodEnd"`
	Rank              int         `json:"rank"`
	Score             float64     `json:"score"`
	Percentile        float64     `json:"percentile"`
	TotalParticipants int         `json:"totalParticipants"`
	PointsEarned      int         `json:"pointsEarned"`
	CreatedAt         time.Time   `json:"createdAt"`
}

type RankingHistory struct {
	ID            int         `json:"id"`
	UserID        int         `json:"userId"`
	Type          RankingType `json:"rankingType"`
	Date          time.Time   `json:"date"`
	PreviousRank  int         `json:"previousRank"`
	CurrentRank   int         `json:"currentRank"`
	RankChange    int         `json:"rankChange"`
	PreviousScore float64     `json:"previousScore"`
	CurrentScore  float64     `json:"currentScore"`
	ScoreChange   float64     `json:"scoreChange"`
}
