package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitstride/fitstride/internal/fitness/metrics"
	"github.com/fitstride/fitstride/internal/fitness/rankings"
	"github.com/fitstride/fitstride/internal/fitness/workouts"
	"github.com/fitstride/fitstride/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=summary_mocks_test.go -package=summary_test

type summaryRepo interface {
	Get(ctx context.Context, userID int) (*UserSummary, error)
	Upsert(ctx context.Context, s UserSummary) error
}

type sessionsSource interface {
	ListAll(ctx context.Context, params workouts.SessionParams) ([]workouts.Session, error)
	AnalyticsTotals(ctx context.Context, userID int) (*workouts.AnalyticsTotals, error)
}

type metricsSource interface {
	GetLatest(ctx context.Context, userID int) (*metrics.PerformanceMetrics, error)
}

type rankingsSource interface {
	LatestForUser(ctx context.Context, userID int, rankingType rankings.RankingType) (*rankings.UserRanking, error)
}

type Service struct {
	repo        summaryRepo
	sessions    sessionsSource
	metricsRepo metricsSource
	rankings    rankingsSource
}

func NewService(
	repo summaryRepo,
	sessions sessionsSource,
	metricsRepo metricsSource,
	rankingsRepo rankingsSource,
) *Service {
	return &Service{
		repo:        repo,
		sessions:    sessions,
		metricsRepo: metricsRepo,
		rankings:    rankingsRepo,
	}
}

// Recalculate rebuilds the user's summary row from the whole workout
// history plus the latest metrics and ranking rows. Nothing is
// maintained incrementally here, a skipped recalculation just leaves
// the previous row in place.
func (s *Service) Recalculate(ctx context.Context, userID int) (_ *UserSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.summary.recalculate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	totals, err := s.sessions.AnalyticsTotals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("analytics totals: %w", err)
	}

	userSummary := UserSummary{
		UserID:        userID,
		TotalSessions: totals.TotalSessions,
		TotalCalories: totals.TotalCalories,
	}

	userSummary.EfficiencyScore = metrics.CalorieEfficiency(totals.TotalCalories, totals.TotalMinutes)
	userSummary.WeeklyAverageCalories = weeklyAverage(totals, time.Now())

	currentWeekCalories, err := s.weekCalories(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("current week calories: %w", err)
	}
	previousWeekCalories, err := s.weekCalories(ctx, userID, 1)
	if err != nil {
		return nil, fmt.Errorf("previous week calories: %w", err)
	}
	userSummary.ImprovementTrend = metrics.TrendDelta(currentWeekCalories, previousWeekCalories)

	latestMetrics, err := s.metricsRepo.GetLatest(ctx, userID)
	if err != nil && !errors.Is(err, metrics.ErrMetricsNotFound) {
		return nil, fmt.Errorf("latest metrics: %w", err)
	}
	if latestMetrics != nil {
		userSummary.ConsistencyRating = latestMetrics.ConsistencyScore
		userSummary.PerformanceIndex = metrics.PerformanceIndexWeights.Compose(
			latestMetrics.ConsistencyScore,
			latestMetrics.OverallFitnessIndex,
			varietyScore(totals.DistinctTypes),
			s.intensityScore(ctx, userID),
		)
	}

	latestRanking, err := s.rankings.LatestForUser(ctx, userID, rankings.TypeOverall)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("latest ranking: %w", err)
	}
	if latestRanking != nil {
		userSummary.GlobalRank = latestRanking.Rank
		userSummary.Percentile = latestRanking.Percentile
	}

	if err := s.repo.Upsert(ctx, userSummary); err != nil {
		return nil, fmt.Errorf("upsert summary: %w", err)
	}

	userSummary.UpdatedAt = time.Now()
	return &userSummary, nil
}

// weekCalories sums calories for the trailing 7 day window, weeksBack
// windows before now.
func (s *Service) weekCalories(ctx context.Context, userID, weeksBack int) (float64, error) {
	to := time.Now().AddDate(0, 0, -7*weeksBack)
	from := to.AddDate(0, 0, -7)
	sessions, err := s.sessions.ListAll(ctx, workouts.SessionParams{
		UserID: userID,
		From:   &from,
		To:     &to,
	})
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, session := range sessions {
		total += float64(session.CaloriesBurned)
	}
	return total, nil
}

func weeklyAverage(totals *workouts.AnalyticsTotals, now time.Time) float64 {
	if totals.TotalSessions == 0 || totals.FirstSessionAt == nil {
		return 0
	}
	weeks := now.Sub(*totals.FirstSessionAt).Hours() / (24 * 7)
	if weeks < 1 {
		weeks = 1
	}
	return float64(totals.TotalCalories) / weeks
}

// varietyScore maps distinct workout types to 0-100, saturating at ten
// different types.
func varietyScore(distinctTypes int) float64 {
	score := float64(distinctTypes) * 10
	if score > 100 {
		return 100
	}
	return score
}

// intensityScore maps the average intensity multiplier of the trailing
// month's sessions to 0-100.
func (s *Service) intensityScore(ctx context.Context, userID int) float64 {
	to := time.Now()
	from := to.AddDate(0, -1, 0)
	sessions, err := s.sessions.ListAll(ctx, workouts.SessionParams{
		UserID: userID,
		From:   &from,
		To:     &to,
	})
	if err != nil || len(sessions) == 0 {
		return 0
	}

	total := 0.0
	for _, session := range sessions {
		total += session.Intensity.Multiplier()
	}
	avg := total / float64(len(sessions))
	return avg / 1.5 * 100
}
