package rankings

import (
	"context"
	"time"

	"github.com/fitstride/fitstride/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Leaderboard returns the top limit rankings for the type and period,
// best rank first, with usernames joined in.
func (r *Repo) Leaderboard(ctx context.Context, rankingType RankingType, periodStart time.Time, limit int) (_ []UserRanking, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rankings.leaderboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("ranking_type", string(rankingType)))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(ctx, `
		SELECT
			r.id, r.user_id, u.username, r.ranking_type, r.period_start, r.period_end,
			r.rank, r.score, r.percentile, r.total_participants, r.points_earned, r.created_at
		FROM user_ranking r
		JOIN fitness_user u ON u.id = r.user_id
		WHERE r.ranking_type = $1 AND r.period_start = $2
		ORDER BY r.rank ASC
		LIMIT $3;`,
		rankingType, periodStart, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2rankings(rows, true)
}

// AllScores returns every score of the type and period, for the
// leaderboard distribution stats.
func (r *Repo) AllScores(ctx context.Context, rankingType RankingType, periodStart time.Time) (_ []float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rankings.allscores")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT score FROM user_ranking
			WHERE ranking_type = $1 AND period_start = $2;`,
		rankingType, periodStart,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var scores []float64
	for rows.Next() {
		var score float64
		if err := rows.Scan(&score); err != nil {
			return nil, err
		}
		scores = append(scores, score)
	}
	if scores == nil {
		return []float64{}, nil
	}
	return scores, nil
}

// UserRankings returns all of the user's rankings, newest period first.
func (r *Repo) UserRankings(ctx context.Context, userID int) (_ []UserRanking, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rankings.userrankings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT
			id, user_id, ranking_type, period_start, period_end,
			rank, score, percentile, total_participants, points_earned, created_at
		FROM user_ranking
		WHERE user_id = $1
		ORDER BY period_start DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rows2rankings(rows, false)
}

// LatestForUser returns the user's most recent ranking of the type.
func (r *Repo) LatestForUser(ctx context.Context, userID int, rankingType RankingType) (_ *UserRanking, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rankings.latestforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	var ranking UserRanking
	err = r.db.QueryRow(ctx, `
		SELECT
			id, user_id, ranking_type, period_start, period_end,
			rank, score, percentile, total_participants, points_earned, created_at
		FROM user_ranking
		WHERE user_id = $1 AND ranking_type = $2
		ORDER BY period_start DESC
		LIMIT 1;`,
		userID, rankingType,
	).Scan(
		&ranking.ID, &ranking.UserID, &ranking.Type, &ranking.PeriodStart, &ranking.PeriodEnd,
		&ranking.Rank, &ranking.Score, &ranking.Percentile,
		&ranking.TotalParticipants, &ranking.PointsEarned, &ranking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ranking, nil
}

// UserHistory returns the user's rank movement rows, newest first.
func (r *Repo) UserHistory(ctx context.Context, userID int, rankingType RankingType) (_ []RankingHistory, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.rankings.userhistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT
			id, user_id, ranking_type, date,
			previous_rank, current_rank, rank_change,
			previous_score, current_score, score_change
		FROM ranking_history
		WHERE user_id = $1 AND ($2::text = '' OR ranking_type = $2)
		ORDER BY date DESC;`,
		userID, rankingType,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var history []RankingHistory
	for rows.Next() {
		var h RankingHistory
		if err := rows.Scan(
			&h.ID, &h.UserID, &h.Type, &h.Date,
			&h.PreviousRank, &h.CurrentRank, &h.RankChange,
			&h.PreviousScore, &h.CurrentScore, &h.ScoreChange,
		); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	if history == nil {
		return []RankingHistory{}, nil
	}
	return history, nil
}

func rows2rankings(rows pgx.Rows, withUsername bool) ([]UserRanking, error) {
	var rankingsList []UserRanking
	for rows.Next() {
		var r UserRanking
		var err error
		if withUsername {
			err = rows.Scan(
				&r.ID, &r.UserID, &r.Username, &r.Type, &r.PeriodStart, &r.PeriodEnd,
				&r.Rank, &r.Score, &r.Percentile, &r.TotalParticipants, &r.PointsEarned, &r.CreatedAt,
			)
		} else {
			err = rows.Scan(
				&r.ID, &r.UserID, &r.Type, &r.PeriodStart, &r.PeriodEnd,
				&r.Rank, &r.Score, &r.Percentile, &r.TotalParticipants, &r.PointsEarned, &r.CreatedAt,
			)
		}
		if err != nil {
			return nil, err
		}
		rankingsList = append(rankingsList, r)
	}
	if rankingsList == nil {
		return []UserRanking{}, nil
	}
	return rankingsList, nil
}
