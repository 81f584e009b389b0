package summary

import (
	"context"
	"errors"
	"time"

	"github.com/fitstride/fitstride/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSummaryNotFound = errors.New("user summary not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, userID int) (_ *UserSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summary.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	var s UserSummary
	err = r.db.QueryRow(ctx, `
		SELECT
			user_id, performance_index, efficiency_score, consistency_rating,
			improvement_trend, total_sessions, total_calories,
			weekly_average_calories, global_rank, percentile, updated_at
		FROM user_summary
		WHERE user_id = $1;`,
		userID,
	).Scan(
		&s.UserID, &s.PerformanceIndex, &s.EfficiencyScore, &s.ConsistencyRating,
		&s.ImprovementTrend, &s.TotalSessions, &s.TotalCalories,
		&s.WeeklyAverageCalories, &s.GlobalRank, &s.Percentile, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSummaryNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repo) Upsert(ctx context.Context, s UserSummary) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summary.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", s.UserID))

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_summary
			(user_id, performance_index, efficiency_score, consistency_rating,
			improvement_trend, total_sessions, total_calories,
			weekly_average_calories, global_rank, percentile, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			performance_index = EXCLUDED.performance_index,
			efficiency_score = EXCLUDED.efficiency_score,
			consistency_rating = EXCLUDED.consistency_rating,
			improvement_trend = EXCLUDED.improvement_trend,
			total_sessions = EXCLUDED.total_sessions,
			total_calories = EXCLUDED.total_calories,
			weekly_average_calories = EXCLUDED.weekly_average_calories,
			global_rank = EXCLUDED.global_rank,
			percentile = EXCLUDED.percentile,
			updated_at = EXCLUDED.updated_at;`,
		s.UserID, s.PerformanceIndex, s.EfficiencyScore, s.ConsistencyRating,
		s.ImprovementTrend, s.TotalSessions, s.TotalCalories,
		s.WeeklyAverageCalories, s.GlobalRank, s.Percentile, time.Now(),
	)
	return err
}
