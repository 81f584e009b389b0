package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitstride/fitstride/internal/telemetry/metrics"
	"github.com/fitstride/fitstride/internal/telemetry/tracing"
	"github.com/fitstride/fitstride/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=summary_test

type recalculator interface {
	Recalculate(ctx context.Context, userID int) (*UserSummary, error)
}

type Handler struct {
	repo           summaryRepo
	service        recalculator
	metricsManager *metrics.Manager
}

func NewHandler(repo summaryRepo, service recalculator, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		service:        service,
		metricsManager: metricsManager,
	}
}

// HandleGet returns the stored summary row. With refresh=true the whole
// summary is recalculated from history first.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summary.get")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}

	var userSummary *UserSummary
	if r.URL.Query().Get("refresh") == "true" {
		userSummary, err = handler.service.Recalculate(ctx, userID)
		if err != nil {
			log.Errorf("failed to recalculate summary for user %d: %s", userID, err)
			http.Error(w, "failed to recalculate summary", http.StatusInternalServerError)
			return
		}
		handler.metricsManager.CounterSummaryRecalcs.Inc()
	} else {
		userSummary, err = handler.repo.Get(ctx, userID)
		if err != nil {
			if errors.Is(err, ErrSummaryNotFound) {
				http.Error(w, "user summary not found", http.StatusNotFound)
				return
			}
			log.Errorf("failed to get summary for user %d: %s", userID, err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	summaryJson, err := json.Marshal(userSummary)
	if err != nil {
		log.Errorf("failed to marshal user summary: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}
