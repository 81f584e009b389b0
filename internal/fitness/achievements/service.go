package achievements

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitstride/fitstride/internal/fitness/workouts"
	"github.com/fitstride/fitstride/internal/telemetry/metrics"
	"github.com/fitstride/fitstride/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=achievements_mocks_test.go -package=achievements_test

type achievementsRepo interface {
	Add(ctx context.Context, achievement Achievement) (*Achievement, error)
	ListForUser(ctx context.Context, userID int) ([]Achievement, error)
	Titles(ctx context.Context, userID int) (map[string]bool, error)
}

type sessionsCounter interface {
	SessionsCount(ctx context.Context, params workouts.SessionParams) (int, error)
}

type Service struct {
	repo           achievementsRepo
	sessions       sessionsCounter
	metricsManager *metrics.Manager
}

func NewService(repo achievementsRepo, sessions sessionsCounter, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		sessions:       sessions,
		metricsManager: metricsManager,
	}
}

// CheckAndAward awards every workout-count milestone the user has
// reached and not yet received. The unique constraint on (user, title)
// makes a concurrent double-award a no-op.
func (s *Service) CheckAndAward(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.achievements.checkandaward")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	count, err := s.sessions.SessionsCount(ctx, workouts.SessionParams{UserID: userID})
	if err != nil {
		return fmt.Errorf("sessions count: %w", err)
	}

	awarded, err := s.repo.Titles(ctx, userID)
	if err != nil {
		return fmt.Errorf("awarded titles: %w", err)
	}

	for _, m := range workoutMilestones {
		if count < m.sessions || awarded[m.title] {
			continue
		}

		_, err := s.repo.Add(ctx, Achievement{
			UserID:      userID,
			Type:        "workout_count",
			Title:       m.title,
			Description: m.description,
			Points:      m.points,
			Rarity:      m.rarity,
			AwardedAt:   time.Now(),
		})
		if err != nil {
			if errors.Is(err, ErrAlreadyAwarded) {
				// awarded by a concurrent request in the meantime
				continue
			}
			return fmt.Errorf("award %q: %w", m.title, err)
		}

		log.Debugf("achievement %q awarded to user %d", m.title, userID)
		if s.metricsManager != nil {
			s.metricsManager.CounterAchievementsAwarded.Inc()
		}
	}

	return nil
}
