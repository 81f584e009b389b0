package rankings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	"github.com/montanaflynn/stats"
	log "github.com/sirupsen/logrus"

	"github.com/fitstride/fitstride/internal/telemetry/metrics"
	"github.com/fitstride/fitstride/internal/telemetry/tracing"
	"github.com/fitstride/fitstride/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=rankings_mocks_test.go -package=rankings_test

const defaultLeaderboardSize = 10

type rankingsRepo interface {
	Leaderboard(ctx context.Context, rankingType RankingType, periodStart time.Time, limit int) ([]UserRanking, error)
	AllScores(ctx context.Context, rankingType RankingType, periodStart time.Time) ([]float64, error)
	UserRankings(ctx context.Context, userID int) ([]UserRanking, error)
	UserHistory(ctx context.Context, userID int, rankingType RankingType) ([]RankingHistory, error)
}

type rankingsEngine interface {
	Recompute(ctx context.Context, rankingType RankingType, period Period, now time.Time) error
}

// ScoreDistribution summarizes the spread of all scores in a period.
type ScoreDistribution struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
}

type LeaderboardResponse struct {
	Rankings     []UserRanking      `json:"rankings"`
	Total        int                `json:"total"`
	Distribution *ScoreDistribution `json:"distribution,omitempty"`
}

type RefreshResponse struct {
	Recomputed  bool   `json:"recomputed"`
	RankingType string `json:"rankingType"`
	Period      string `json:"period"`
}

type Handler struct {
	repo           rankingsRepo
	engine         rankingsEngine
	cache          *freecache.Cache
	cacheExpire    int
	metricsManager *metrics.Manager
}

func NewHandler(
	repo rankingsRepo,
	engine rankingsEngine,
	cacheExpireSeconds int,
	metricsManager *metrics.Manager,
) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		repo:           repo,
		engine:         engine,
		cache:          freecache.NewCache(10 * megabyte),
		cacheExpire:    cacheExpireSeconds,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rankings.leaderboard")
	defer span.End()

	vars := mux.Vars(r)
	rankingType, err := RankingTypeFromString(vars["type"])
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	period, err := PeriodFromString(vars["period"])
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	limit := defaultLeaderboardSize
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			http.Error(w, "invalid limit param", http.StatusBadRequest)
			return
		}
	}

	cacheKey := []byte(fmt.Sprintf("leaderboard::%s::%s::%d", rankingType, period, limit))
	if cachedBytes, err := handler.cache.Get(cacheKey); err == nil {
		handler.metricsManager.CounterLeaderboardCacheHit.Inc()
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cachedBytes, http.StatusOK)
		return
	}

	periodStart, _ := period.Bounds(time.Now())

	leaderboard, err := handler.repo.Leaderboard(ctx, rankingType, periodStart, limit)
	if err != nil {
		log.Errorf("failed to get leaderboard [%s %s]: %s", rankingType, period, err)
		http.Error(w, "failed to get leaderboard", http.StatusInternalServerError)
		return
	}

	response := LeaderboardResponse{
		Rankings: leaderboard,
		Total:    len(leaderboard),
	}

	scores, err := handler.repo.AllScores(ctx, rankingType, periodStart)
	if err != nil {
		// leaderboard is still usable without the distribution stats
		log.Errorf("failed to get scores for distribution [%s %s]: %s", rankingType, period, err)
	} else if len(scores) > 0 {
		response.Distribution = scoreDistribution(scores)
	}

	responseJson, err := json.Marshal(response)
	if err != nil {
		log.Errorf("failed to marshal leaderboard: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, responseJson, handler.cacheExpire); err != nil {
		log.Errorf("failed to cache leaderboard [%s %s]: %s", rankingType, period, err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, responseJson, http.StatusOK)
}

func (handler *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rankings.refresh")
	defer span.End()

	vars := mux.Vars(r)
	rankingType, err := RankingTypeFromString(vars["type"])
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}
	period, err := PeriodFromString(vars["period"])
	if err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.engine.Recompute(ctx, rankingType, period, time.Now()); err != nil {
		log.Errorf("failed to recompute rankings [%s %s]: %s", rankingType, period, err)
		http.Error(w, "failed to recompute rankings", http.StatusInternalServerError)
		return
	}

	// ranked data changed, drop the cached leaderboards
	handler.cache.Clear()

	refreshResponseJson, err := json.Marshal(RefreshResponse{
		Recomputed:  true,
		RankingType: string(rankingType),
		Period:      string(period),
	})
	if err != nil {
		log.Errorf("failed to marshal refresh response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, refreshResponseJson, http.StatusOK)
}

func (handler *Handler) HandleUserRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rankings.userrankings")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}

	userRankings, err := handler.repo.UserRankings(ctx, userID)
	if err != nil {
		log.Errorf("failed to get rankings for user %d: %s", userID, err)
		http.Error(w, "failed to get user rankings", http.StatusInternalServerError)
		return
	}

	rankingsJson, err := json.Marshal(userRankings)
	if err != nil {
		log.Errorf("failed to marshal user rankings: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, rankingsJson, http.StatusOK)
}

func (handler *Handler) HandleUserHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.rankings.userhistory")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}

	var rankingType RankingType
	if typeStr := r.URL.Query().Get("type"); typeStr != "" {
		rankingType, err = RankingTypeFromString(typeStr)
		if err != nil {
			http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	history, err := handler.repo.UserHistory(ctx, userID, rankingType)
	if err != nil {
		log.Errorf("failed to get ranking history for user %d: %s", userID, err)
		http.Error(w, "failed to get ranking history", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(history)
	if err != nil {
		log.Errorf("failed to marshal ranking history: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, historyJson, http.StatusOK)
}

func scoreDistribution(scores []float64) *ScoreDistribution {
	mean, err := stats.Mean(scores)
	if err != nil {
		log.Errorf("failed to compute scores mean: %s", err)
		return nil
	}
	median, err := stats.Median(scores)
	if err != nil {
		log.Errorf("failed to compute scores median: %s", err)
		return nil
	}
	p25, err := stats.Percentile(scores, 25)
	if err != nil {
		log.Errorf("failed to compute scores p25: %s", err)
		return nil
	}
	p75, err := stats.Percentile(scores, 75)
	if err != nil {
		log.Errorf("failed to compute scores p75: %s", err)
		return nil
	}
	return &ScoreDistribution{
		Mean:   mean,
		Median: median,
		P25:    p25,
		P75:    p75,
	}
}
