package achievements

import (
	"context"
	"errors"

	"github.com/fitstride/fitstride/internal/telemetry/tracing"
	"github.com/fitstride/fitstride/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// ErrAlreadyAwarded signals the (user, title) pair already has a row.
var ErrAlreadyAwarded = errors.New("achievement already awarded")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, achievement Achievement) (_ *Achievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", achievement.UserID))
	span.SetAttributes(attribute.String("title", achievement.Title))

	err = r.db.QueryRow(ctx, `
		INSERT INTO achievement
			(user_id, type, title, description, points, rarity, awarded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;`,
		achievement.UserID, achievement.Type, achievement.Title,
		achievement.Description, achievement.Points, achievement.Rarity, achievement.AwardedAt,
	).Scan(&achievement.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrAlreadyAwarded
		}
		return nil, err
	}
	return &achievement, nil
}

func (r *Repo) ListForUser(ctx context.Context, userID int) (_ []Achievement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.listforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, type, title, description, points, rarity, awarded_at
			FROM achievement
			WHERE user_id = $1
			ORDER BY awarded_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2achievements(rows)
}

// Titles returns the set of achievement titles already awarded to the user.
func (r *Repo) Titles(ctx context.Context, userID int) (_ map[string]bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.titles")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT title FROM achievement WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	titles := map[string]bool{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles[title] = true
	}
	return titles, nil
}

func rows2achievements(rows pgx.Rows) ([]Achievement, error) {
	var achievementsList []Achievement
	for rows.Next() {
		var a Achievement
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Type, &a.Title,
			&a.Description, &a.Points, &a.Rarity, &a.AwardedAt,
		); err != nil {
			return nil, err
		}
		achievementsList = append(achievementsList, a)
	}
	if achievementsList == nil {
		return []Achievement{}, nil
	}
	return achievementsList, nil
}
