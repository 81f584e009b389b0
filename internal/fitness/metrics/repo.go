package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/fitstride/fitstride/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrMetricsNotFound = errors.New("performance metrics not found")

const metricsColumns = `
	id, user_id, date,
	cardiovascular_score, strength_score, flexibility_score, endurance_score,
	overall_fitness_index,
	total_calories_burned, total_workout_time, workout_frequency,
	calorie_efficiency, consistency_score, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetByDate returns the metrics row for the given user and day.
func (r *Repo) GetByDate(ctx context.Context, userID int, date time.Time) (_ *PerformanceMetrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.metrics.getbydate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+metricsColumns+`
			FROM performance_metrics
			WHERE user_id = $1 AND date = $2::date;`,
		userID, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	metricsRows, err := rows2metrics(rows)
	if err != nil {
		return nil, err
	}
	if len(metricsRows) != 1 {
		return nil, ErrMetricsNotFound
	}
	return &metricsRows[0], nil
}

// GetLatest returns the most recent metrics row for the user.
func (r *Repo) GetLatest(ctx context.Context, userID int) (_ *PerformanceMetrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.metrics.getlatest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+metricsColumns+`
			FROM performance_metrics
			WHERE user_id = $1
			ORDER BY date DESC
			LIMIT 1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	metricsRows, err := rows2metrics(rows)
	if err != nil {
		return nil, err
	}
	if len(metricsRows) != 1 {
		return nil, ErrMetricsNotFound
	}
	return &metricsRows[0], nil
}

// History returns the user's metrics rows in [from, to], newest first.
func (r *Repo) History(ctx context.Context, userID int, from, to time.Time) (_ []PerformanceMetrics, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.metrics.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+metricsColumns+`
			FROM performance_metrics
			WHERE user_id = $1 AND date >= $2::date AND date <= $3::date
			ORDER BY date DESC;`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2metrics(rows)
}

func rows2metrics(rows pgx.Rows) ([]PerformanceMetrics, error) {
	var metricsRows []PerformanceMetrics
	for rows.Next() {
		var m PerformanceMetrics
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Date,
			&m.Cardiovascular, &m.Strength, &m.Flexibility, &m.Endurance,
			&m.OverallFitnessIndex,
			&m.TotalCaloriesBurned, &m.TotalWorkoutTime, &m.WorkoutFrequency,
			&m.CalorieEfficiency, &m.ConsistencyScore, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		m.FitnessGrade = FitnessGrade(m.OverallFitnessIndex)
		metricsRows = append(metricsRows, m)
	}
	if metricsRows == nil {
		return []PerformanceMetrics{}, nil
	}
	return metricsRows, nil
}
