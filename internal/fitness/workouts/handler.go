package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitstride/fitstride/internal/telemetry/metrics"
	"github.com/fitstride/fitstride/internal/telemetry/tracing"
	"github.com/fitstride/fitstride/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type sessionsRepo interface {
	Add(ctx context.Context, session Session) (*Session, error)
	Get(ctx context.Context, id int) (*Session, error)
	List(ctx context.Context, params ListParams) (_ []Session, total int, err error)
	ListAll(ctx context.Context, params SessionParams) ([]Session, error)
	SessionsCount(ctx context.Context, params SessionParams) (int, error)
	AnalyticsTotals(ctx context.Context, userID int) (*AnalyticsTotals, error)
}

// metricsRecomputer recomputes the daily performance metrics for the user
// and day the new session landed on.
type metricsRecomputer interface {
	Recompute(ctx context.Context, userID int, day time.Time) error
}

// achievementsChecker awards any newly reached milestones to the user.
type achievementsChecker interface {
	CheckAndAward(ctx context.Context, userID int) error
}

type AddSessionResponse struct {
	Session
	CountToday int `json:"countToday"`
}

type ListResponse struct {
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"`
}

type Handler struct {
	repo           sessionsRepo
	recomputer     metricsRecomputer
	achievements   achievementsChecker
	metricsManager *metrics.Manager
}

func NewHandler(
	repo sessionsRepo,
	recomputer metricsRecomputer,
	achievements achievementsChecker,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		recomputer:     recomputer,
		achievements:   achievements,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var session Session
	if err := json.NewDecoder(r.Body).Decode(&session); err != nil {
		log.Tracef("new workout session, unmarshal json params: %s", err)
		http.Error(w, "add workout session failed", http.StatusBadRequest)
		return
	}

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	if err := session.Validate(); err != nil {
		http.Error(w, "error, "+err.Error(), http.StatusBadRequest)
		return
	}

	addedSession, err := handler.repo.Add(ctx, session)
	if err != nil {
		log.Errorf("failed to add new workout session [user %d], [%s]: %s", session.UserID, session.WorkoutType, err)
		http.Error(w, "error, failed to add new workout session", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWorkoutsAdded.Inc()

	if err := handler.recomputer.Recompute(ctx, addedSession.UserID, addedSession.CreatedAt); err != nil {
		log.Errorf("failed to recompute metrics for user %d: %s", addedSession.UserID, err)
		http.Error(w, "error, failed to recompute performance metrics", http.StatusInternalServerError)
		return
	}

	if err := handler.achievements.CheckAndAward(ctx, addedSession.UserID); err != nil {
		// just log the error, no need to return error to the client
		log.Errorf("failed to check achievements for user %d: %s", addedSession.UserID, err)
	}

	dayStart := addedSession.CreatedAt.Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)
	sessionsToday, err := handler.repo.ListAll(ctx, SessionParams{
		UserID: addedSession.UserID,
		From:   &dayStart,
		To:     &dayEnd,
	})
	if err != nil {
		// just log the error, no need to return error to the client
		log.Errorf("failed to get sessions today for user %d: %s", addedSession.UserID, err)
	}

	addSessionResponse := AddSessionResponse{
		Session:    *addedSession,
		CountToday: len(sessionsToday),
	}

	addedSessionJson, err := json.Marshal(addSessionResponse)
	if err != nil {
		log.Errorf("failed to marshal new workout session: %s", err)
		http.Error(w, "error, failed to add new workout session", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout session added: %s", addedSessionJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSessionJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	vars := mux.Vars(r)
	idStr := vars["id"]
	if idStr == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	s, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "workout session not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get workout session %d: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	sessionJson, err := json.Marshal(s)
	if err != nil {
		log.Errorf("failed to marshal workout session: %s", err)
		http.Error(w, "failed to marshal workout session", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, sessionJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}
	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Tracef("handle list workout sessions, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Tracef("handle list workout sessions, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}

	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 {
		http.Error(w, "invalid size (has to be non-zero value)", http.StatusBadRequest)
		return
	}

	listParams := ListParams{
		SessionParams: SessionParams{
			UserID:      userID,
			WorkoutType: r.URL.Query().Get("type"),
		},
		Page: page,
		Size: size,
	}

	sessions, total, err := handler.repo.List(ctx, listParams)
	if err != nil {
		log.Errorf("list workout sessions error: %s", err)
		http.Error(w, "failed to get workout sessions", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Sessions: sessions,
		Total:    total,
	})
	if err != nil {
		log.Errorf("marshal workout sessions error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.analytics")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}

	totals, err := handler.repo.AnalyticsTotals(ctx, userID)
	if err != nil {
		log.Errorf("failed to get analytics totals for user %d: %s", userID, err)
		http.Error(w, "failed to get analytics totals", http.StatusInternalServerError)
		return
	}

	totalsJson, err := json.Marshal(totals)
	if err != nil {
		log.Errorf("failed to marshal analytics totals: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, totalsJson, http.StatusOK)
}
