package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitstride/fitstride/internal/telemetry/tracing"
	"github.com/fitstride/fitstride/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=metrics_mocks_test.go -package=metrics_test

type metricsRepo interface {
	GetByDate(ctx context.Context, userID int, date time.Time) (*PerformanceMetrics, error)
	GetLatest(ctx context.Context, userID int) (*PerformanceMetrics, error)
	History(ctx context.Context, userID int, from, to time.Time) ([]PerformanceMetrics, error)
}

type HistoryResponse struct {
	Metrics []PerformanceMetrics `json:"metrics"`
	Total   int                  `json:"total"`
}

type Handler struct {
	repo metricsRepo
}

func NewHandler(repo metricsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleGetLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.metrics.getlatest")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}

	m, err := handler.repo.GetLatest(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrMetricsNotFound) {
			http.Error(w, "performance metrics not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get latest metrics for user %d: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	metricsJson, err := json.Marshal(m)
	if err != nil {
		log.Errorf("failed to marshal metrics: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, metricsJson, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.metrics.history")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}

	to := time.Now()
	from := to.Add(-30 * 24 * time.Hour)
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			http.Error(w, "failed to parse from param", http.StatusBadRequest)
			return
		}
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			http.Error(w, "failed to parse to param", http.StatusBadRequest)
			return
		}
	}

	history, err := handler.repo.History(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to get metrics history for user %d: %s", userID, err)
		http.Error(w, "failed to get metrics history", http.StatusInternalServerError)
		return
	}

	historyJson, err := json.Marshal(HistoryResponse{
		Metrics: history,
		Total:   len(history),
	})
	if err != nil {
		log.Errorf("failed to marshal metrics history: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, historyJson, http.StatusOK)
}
