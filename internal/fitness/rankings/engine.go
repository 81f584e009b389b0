package rankings

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/fitstride/fitstride/internal/telemetry/metrics"
	"github.com/fitstride/fitstride/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// Participant is one user's score entering a ranking pass.
type Participant struct {
	UserID           int
	Score            float64
	AccountCreatedAt time.Time
}

// rankParticipants sorts by score descending and assigns dense 1..N
// ranks. Ties go to the earlier created account, so reruns over the
// same input produce the same order.
func rankParticipants(participants []Participant) []UserRanking {
	sorted := make([]Participant, len(participants))
	copy(sorted, participants)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].AccountCreatedAt.Before(sorted[j].AccountCreatedAt)
	})

	total := len(sorted)
	ranked := make([]UserRanking, 0, total)
	for i, p := range sorted {
		rank := i + 1
		ranked = append(ranked, UserRanking{
			UserID:            p.UserID,
			Rank:              rank,
			Score:             p.Score,
			Percentile:        float64(total-rank) / float64(total) * 100,
			TotalParticipants: total,
			PointsEarned:      int(math.Round(p.Score)),
		})
	}
	return ranked
}

// Engine recomputes rankings for one (type, period) at a time. The
// read-sort-write pass itself runs on a point-in-time snapshot, so a
// session added mid-pass shows up only in the next recomputation.
type Engine struct {
	db             *pgxpool.Pool
	metricsManager *metrics.Manager

	mutexesLock sync.Mutex
	mutexes     map[string]*sync.Mutex
}

func NewEngine(db *pgxpool.Pool, metricsManager *metrics.Manager) *Engine {
	return &Engine{
		db:             db,
		metricsManager: metricsManager,
		mutexes:        map[string]*sync.Mutex{},
	}
}

func (e *Engine) recomputeMutex(rankingType RankingType, periodStart time.Time) *sync.Mutex {
	e.mutexesLock.Lock()
	defer e.mutexesLock.Unlock()

	key := fmt.Sprintf("%s|%s", rankingType, periodStart.Format("2006-01-02"))
	m, ok := e.mutexes[key]
	if !ok {
		m = &sync.Mutex{}
		e.mutexes[key] = m
	}
	return m
}

// Recompute rebuilds the ranking rows for the period of the given type
// containing now, and writes a history row for every participant that
// already had a ranking (same period, or the period right before).
func (e *Engine) Recompute(ctx context.Context, rankingType RankingType, period Period, now time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.rankings.recompute")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("ranking_type", string(rankingType)))
	span.SetAttributes(attribute.String("period", string(period)))

	periodStart, periodEnd := period.Bounds(now)

	mutex := e.recomputeMutex(rankingType, periodStart)
	mutex.Lock()
	defer mutex.Unlock()

	defer func(begin time.Time) {
		e.metricsManager.HistRankingRecomputeDuration.Observe(time.Since(begin).Seconds())
	}(time.Now())
	e.metricsManager.CounterRankingRecomputes.Inc()

	tx, err := e.db.Begin(ctx)
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

	participants, err := e.gatherParticipants(ctx, tx, rankingType, periodStart, periodEnd)
	if err != nil {
		return fmt.Errorf("gather participants: %w", err)
	}
	span.SetAttributes(attribute.Int("participants", len(participants)))

	if len(participants) == 0 {
		log.Warnf("ranking recompute [%s %s]: no participants, nothing to rank", rankingType, period)
		return nil
	}

	previous, err := e.previousRankings(ctx, tx, rankingType, period, periodStart, now)
	if err != nil {
		return fmt.Errorf("previous rankings: %w", err)
	}

	ranked := rankParticipants(participants)
	for _, ranking := range ranked {
		_, err = tx.Exec(ctx, `
			INSERT INTO user_ranking
				(user_id, ranking_type, period_start, period_end,
				rank, score, percentile, total_participants, points_earned, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (user_id, ranking_type, period_start) DO UPDATE SET
				period_end = EXCLUDED.period_end,
				rank = EXCLUDED.rank,
				score = EXCLUDED.score,
				percentile = EXCLUDED.percentile,
				total_participants = EXCLUDED.total_participants,
				points_earned = EXCLUDED.points_earned;`,
			ranking.UserID, rankingType, periodStart, periodEnd,
			ranking.Rank, ranking.Score, ranking.Percentile,
			ranking.TotalParticipants, ranking.PointsEarned, time.Now(),
		)
		if err != nil {
			return fmt.Errorf("upsert ranking for user %d: %w", ranking.UserID, err)
		}

		prev, hadPrevious := previous[ranking.UserID]
		if !hadPrevious {
			// first ranking for this user, no movement to record
			continue
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO ranking_history
				(user_id, ranking_type, date,
				previous_rank, current_rank, rank_change,
				previous_score, current_score, score_change)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (user_id, ranking_type, date) DO UPDATE SET
				previous_rank = EXCLUDED.previous_rank,
				current_rank = EXCLUDED.current_rank,
				rank_change = EXCLUDED.rank_change,
				previous_score = EXCLUDED.previous_score,
				current_score = EXCLUDED.current_score,
				score_change = EXCLUDED.score_change;`,
			ranking.UserID, rankingType, now.Truncate(24*time.Hour),
			prev.Rank, ranking.Rank, prev.Rank-ranking.Rank,
			prev.Score, ranking.Score, ranking.Score-prev.Score,
		)
		if err != nil {
			return fmt.Errorf("upsert ranking history for user %d: %w", ranking.UserID, err)
		}
	}

	return nil
}

func (e *Engine) gatherParticipants(
	ctx context.Context, tx pgx.Tx,
	rankingType RankingType,
	periodStart, periodEnd time.Time,
) ([]Participant, error) {
	var rows pgx.Rows
	var err error

	switch rankingType {
	case TypeOverall:
		rows, err = tx.Query(ctx, `
			SELECT DISTINCT ON (pm.user_id)
				pm.user_id, pm.overall_fitness_index, u.created_at
			FROM performance_metrics pm
			JOIN fitness_user u ON u.id = pm.user_id
			WHERE pm.date >= $1::date AND pm.date <= $2::date
			ORDER BY pm.user_id, pm.date DESC;`,
			periodStart, periodEnd,
		)
	case TypeCalories:
		rows, err = tx.Query(ctx, `
			SELECT ws.user_id, SUM(ws.calories_burned)::float8, u.created_at
			FROM workout_session ws
			JOIN fitness_user u ON u.id = ws.user_id
			WHERE ws.created_at >= $1 AND ws.created_at < $2
			GROUP BY ws.user_id, u.created_at;`,
			periodStart, periodEnd.AddDate(0, 0, 1),
		)
	default:
		return nil, fmt.Errorf("unsupported ranking type: %s", rankingType)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	var participants []Participant
	for rows.Next() {
		var p Participant
		if err := rows.Scan(&p.UserID, &p.Score, &p.AccountCreatedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}

// previousRankings returns, per user, the ranking to diff against: the
// already stored row for this same period when one exists (a rerun over
// unchanged data then yields zero deltas), otherwise the row from the
// immediately preceding period.
func (e *Engine) previousRankings(
	ctx context.Context, tx pgx.Tx,
	rankingType RankingType,
	period Period,
	periodStart time.Time,
	now time.Time,
) (map[int]UserRanking, error) {
	previous := map[int]UserRanking{}

	prevPeriodStart, _ := period.PreviousBounds(now)
	rows, err := tx.Query(ctx, `
		SELECT user_id, rank, score, period_start
			FROM user_ranking
			WHERE ranking_type = $1 AND period_start IN ($2, $3)
			ORDER BY period_start ASC;`,
		rankingType, prevPeriodStart, periodStart,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// current-period rows come second and overwrite the preceding
	// period's entries
	for rows.Next() {
		var r UserRanking
		var rowPeriodStart time.Time
		if err := rows.Scan(&r.UserID, &r.Rank, &r.Score, &rowPeriodStart); err != nil {
			return nil, err
		}
		previous[r.UserID] = r
	}
	return previous, nil
}
