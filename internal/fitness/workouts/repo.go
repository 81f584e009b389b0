package workouts

import (
	"context"
	"errors"
	"time"

	"github.com/fitstride/fitstride/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrSessionNotFound = errors.New("workout session not found")

type SessionParams struct {
	UserID      int
	WorkoutType string
	From        *time.Time
	To          *time.Time
}

type ListParams struct {
	SessionParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workout_session
				(user_id, workout_type, duration_minutes, calories_burned, intensity, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id;`,
		session.UserID, session.WorkoutType, session.DurationMinutes,
		session.CaloriesBurned, session.Intensity, session.Notes, session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("session.id", id))

	session.ID = id
	return &session, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, workout_type, duration_minutes, calories_burned, intensity, notes, created_at
			FROM workout_session
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, err
	}

	if len(sessions) != 1 {
		return nil, ErrSessionNotFound
	}

	return &sessions[0], nil
}

// ListAll returns all workout sessions matching the given params, newest first.
func (r *Repo) ListAll(ctx context.Context, params SessionParams) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", params.UserID))
	span.SetAttributes(attribute.String("workout_type", params.WorkoutType))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, workout_type, duration_minutes, calories_burned, intensity, notes, created_at
			FROM workout_session
			WHERE user_id = $1
				AND ($2::text = '' OR workout_type = $2)
				AND ($3::timestamptz IS NULL OR created_at >= $3)
				AND ($4::timestamptz IS NULL OR created_at <= $4)
			ORDER BY created_at DESC;`,
		params.UserID, params.WorkoutType, params.From, params.To,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.rows2sessions(rows)
}

// List is like ListAll, but returns the specific page of a user's sessions.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Session, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))
	span.SetAttributes(attribute.Int("user_id", params.UserID))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	countAll, err := r.SessionsCount(ctx, params.SessionParams)
	if err != nil {
		return nil, -1, err
	}

	if countAll <= limit {
		limit = countAll
		offset = 0
	}

	if countAll-offset < limit {
		offset = countAll - limit
	}

	span.SetAttributes(attribute.Int("count_all", countAll))
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.Int("offset", offset))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, workout_type, duration_minutes, calories_burned, intensity, notes, created_at
			FROM workout_session
			WHERE user_id = $1
				AND ($2::text = '' OR workout_type = $2)
				AND ($3::timestamptz IS NULL OR created_at >= $3)
				AND ($4::timestamptz IS NULL OR created_at <= $4)
			ORDER BY created_at DESC
			LIMIT $5
			OFFSET $6;`,
		params.UserID, params.WorkoutType, params.From, params.To,
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	sessions, err := r.rows2sessions(rows)
	if err != nil {
		return nil, -1, err
	}
	return sessions, countAll, nil
}

func (r *Repo) SessionsCount(ctx context.Context, params SessionParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM workout_session
			WHERE user_id = $1
			AND ($2::text = '' OR workout_type = $2)
			AND ($3::timestamptz IS NULL OR created_at >= $3)
			AND ($4::timestamptz IS NULL OR created_at <= $4);`,
		params.UserID, params.WorkoutType, params.From, params.To,
	).Scan(&count)
	if err != nil {
		return -1, err
	}
	return count, nil
}

// DistinctWorkoutDays returns the number of distinct days with at least
// one session for the user in [from, to].
func (r *Repo) DistinctWorkoutDays(ctx context.Context, userID int, from, to time.Time) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.distinctdays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	var count int
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT created_at::date) FROM workout_session
			WHERE user_id = $1 AND created_at >= $2 AND created_at <= $3;`,
		userID, from, to,
	).Scan(&count)
	if err != nil {
		return -1, err
	}
	return count, nil
}

func (r *Repo) AnalyticsTotals(ctx context.Context, userID int) (_ *AnalyticsTotals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.analyticstotals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	var totals AnalyticsTotals
	err = r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(duration_minutes), 0),
			COALESCE(SUM(calories_burned), 0),
			COALESCE(AVG(duration_minutes), 0),
			COALESCE(AVG(calories_burned), 0),
			COUNT(DISTINCT workout_type),
			MIN(created_at),
			MAX(created_at)
		FROM workout_session
		WHERE user_id = $1;`,
		userID,
	).Scan(
		&totals.TotalSessions, &totals.TotalMinutes, &totals.TotalCalories,
		&totals.AvgDuration, &totals.AvgCalories, &totals.DistinctTypes,
		&totals.FirstSessionAt, &totals.LastSessionAt,
	)
	if err != nil {
		return nil, err
	}
	return &totals, nil
}

func (r *Repo) rows2sessions(rows pgx.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.WorkoutType, &s.DurationMinutes,
			&s.CaloriesBurned, &s.Intensity, &s.Notes, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if sessions == nil {
		return []Session{}, nil
	}
	return sessions, nil
}
