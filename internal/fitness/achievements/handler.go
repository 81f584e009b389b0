package achievements

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/fitstride/fitstride/internal/telemetry/tracing"
	"github.com/fitstride/fitstride/pkg"
)

type ListResponse struct {
	Achievements []Achievement `json:"achievements"`
	TotalPoints  int           `json:"totalPoints"`
}

type Handler struct {
	repo achievementsRepo
}

func NewHandler(repo achievementsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.achievements.list")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}

	achievementsList, err := handler.repo.ListForUser(ctx, userID)
	if err != nil {
		log.Errorf("failed to list achievements for user %d: %s", userID, err)
		http.Error(w, "failed to list achievements", http.StatusInternalServerError)
		return
	}

	totalPoints := 0
	for _, a := range achievementsList {
		totalPoints += a.Points
	}

	listResponseJson, err := json.Marshal(ListResponse{
		Achievements: achievementsList,
		TotalPoints:  totalPoints,
	})
	if err != nil {
		log.Errorf("failed to marshal achievements: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}
