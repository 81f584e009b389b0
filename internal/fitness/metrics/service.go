package metrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitstride/fitstride/internal/fitness/workouts"
	"github.com/fitstride/fitstride/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// Service recomputes the daily performance metrics row for a user.
// The whole read-modify-write runs in a single transaction, so a failed
// recompute leaves no partial state behind.
type Service struct {
	db *pgxpool.Pool
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{
		db: db,
	}
}

// Recompute rebuilds the metrics row for the day the given timestamp
// falls on. The component scores start from the latest row before that
// day and re-apply all of the day's session bumps, which makes a rerun
// for the same day idempotent.
func (s *Service) Recompute(ctx context.Context, userID int, day time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.metrics.recompute")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.String("day", day.Format("2006-01-02")))

	dayStart := day.Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	baseline, err := s.baselineScores(ctx, tx, userID, dayStart)
	if err != nil {
		return fmt.Errorf("baseline scores: %w", err)
	}

	daySessions, err := s.daySessions(ctx, tx, userID, dayStart, dayEnd)
	if err != nil {
		return fmt.Errorf("day sessions: %w", err)
	}

	scores := baseline
	for _, session := range daySessions {
		scores = scores.ApplySession(session)
	}

	var totalCalories, totalMinutes int
	err = tx.QueryRow(ctx, `
		SELECT COALESCE(SUM(calories_burned), 0), COALESCE(SUM(duration_minutes), 0)
			FROM workout_session
			WHERE user_id = $1 AND created_at < $2;`,
		userID, dayEnd,
	).Scan(&totalCalories, &totalMinutes)
	if err != nil {
		return fmt.Errorf("lifetime totals: %w", err)
	}

	weekStart := dayEnd.Add(-7 * 24 * time.Hour)
	var frequency, distinctDays int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(DISTINCT created_at::date)
			FROM workout_session
			WHERE user_id = $1 AND created_at >= $2 AND created_at < $3;`,
		userID, weekStart, dayEnd,
	).Scan(&frequency, &distinctDays)
	if err != nil {
		return fmt.Errorf("trailing week stats: %w", err)
	}

	overallIndex := OverallFitnessIndex(scores)

	_, err = tx.Exec(ctx, `
		INSERT INTO performance_metrics
			(user_id, date,
			cardiovascular_score, strength_score, flexibility_score, endurance_score,
			overall_fitness_index,
			total_calories_burned, total_workout_time, workout_frequency,
			calorie_efficiency, consistency_score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id, date) DO UPDATE SET
			cardiovascular_score = EXCLUDED.cardiovascular_score,
			strength_score = EXCLUDED.strength_score,
			flexibility_score = EXCLUDED.flexibility_score,
			endurance_score = EXCLUDED.endurance_score,
			overall_fitness_index = EXCLUDED.overall_fitness_index,
			total_calories_burned = EXCLUDED.total_calories_burned,
			total_workout_time = EXCLUDED.total_workout_time,
			workout_frequency = EXCLUDED.workout_frequency,
			calorie_efficiency = EXCLUDED.calorie_efficiency,
			consistency_score = EXCLUDED.consistency_score;`,
		userID, dayStart,
		scores.Cardiovascular, scores.Strength, scores.Flexibility, scores.Endurance,
		overallIndex,
		totalCalories, totalMinutes, frequency,
		CalorieEfficiency(totalCalories, totalMinutes), ConsistencyScore(distinctDays),
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upsert metrics row: %w", err)
	}

	span.SetAttributes(attribute.Float64("overall_index", overallIndex))
	return nil
}

func (s *Service) baselineScores(ctx context.Context, tx pgx.Tx, userID int, dayStart time.Time) (ComponentScores, error) {
	var scores ComponentScores
	err := tx.QueryRow(ctx, `
		SELECT cardiovascular_score, strength_score, flexibility_score, endurance_score
			FROM performance_metrics
			WHERE user_id = $1 AND date < $2::date
			ORDER BY date DESC
			LIMIT 1;`,
		userID, dayStart,
	).Scan(&scores.Cardiovascular, &scores.Strength, &scores.Flexibility, &scores.Endurance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// new user, all scores start at zero
			return ComponentScores{}, nil
		}
		return ComponentScores{}, err
	}
	return scores, nil
}

func (s *Service) daySessions(ctx context.Context, tx pgx.Tx, userID int, dayStart, dayEnd time.Time) ([]workouts.Session, error) {
	rows, err := tx.Query(ctx, `
		SELECT workout_type, intensity
			FROM workout_session
			WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
			ORDER BY created_at ASC;`,
		userID, dayStart, dayEnd,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var sessions []workouts.Session
	for rows.Next() {
		var s workouts.Session
		if err := rows.Scan(&s.WorkoutType, &s.Intensity); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
