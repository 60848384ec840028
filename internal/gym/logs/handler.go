package logs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ironlog/ironlog/internal/gym/structure"
	"github.com/ironlog/ironlog/internal/telemetry/metrics"
	"github.com/ironlog/ironlog/internal/telemetry/tracing"
	"github.com/ironlog/ironlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=logs_mocks_test.go -package=logs_test

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type workoutLogsRepo interface {
	Add(ctx context.Context, workoutLog WorkoutLog) (*WorkoutLog, error)
	ListForUser(ctx context.Context, userID, limit, offset int) ([]WorkoutLog, int, error)
	Update(ctx context.Context, id int, params UpdateParams) (*WorkoutLog, error)
}

type userChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type AddWorkoutLogResponse struct {
	Item    WorkoutLog `json:"item"`
	Message string     `json:"message"`
}

type ListWorkoutLogsResponse struct {
	Items []WorkoutLog `json:"items"`
	Count int          `json:"count"`
}

type UpdateWorkoutLogResponse struct {
	Item    WorkoutLog `json:"item"`
	Message string     `json:"message"`
}

type updateWorkoutLogRequest struct {
	LogDate       *time.Time        `json:"log_date"`
	ActualWorkout []structure.Entry `json:"actual_workout"`
	Score         *int              `json:"score"`
}

type Handler struct {
	repo    workoutLogsRepo
	users   userChecker
	metrics *metrics.Manager
}

func NewHandler(repo workoutLogsRepo, users userChecker, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:    repo,
		users:   users,
		metrics: metrics,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workoutLog WorkoutLog
	if err := json.NewDecoder(r.Body).Decode(&workoutLog); err != nil {
		log.Tracef("new workout log, unmarshal json params: %s", err)
		http.Error(w, "add workout log failed", http.StatusBadRequest)
		return
	}

	if workoutLog.UserID == 0 {
		http.Error(w, "error, user_id missing", http.StatusBadRequest)
		return
	}
	if workoutLog.PlannedWorkoutID == 0 {
		http.Error(w, "error, planned_workout_id missing", http.StatusBadRequest)
		return
	}

	if err := structure.Validate(workoutLog.ActualWorkout); err != nil {
		log.Tracef("new workout log, invalid actual workout: %s", err)
		http.Error(w, fmt.Sprintf("invalid actual workout: %s", err), http.StatusBadRequest)
		return
	}

	userExists, err := handler.users.Exists(ctx, workoutLog.UserID)
	if err != nil {
		log.Errorf("new workout log, check user %d: %s", workoutLog.UserID, err)
		http.Error(w, "error, failed to add workout log", http.StatusInternalServerError)
		return
	}
	if !userExists {
		http.Error(w, fmt.Sprintf("error, unknown user: %d", workoutLog.UserID), http.StatusBadRequest)
		return
	}

	now := time.Now()
	if workoutLog.LogDate.IsZero() {
		workoutLog.LogDate = now
	}
	if workoutLog.CreatedAt.IsZero() {
		workoutLog.CreatedAt = now
	}

	addedLog, err := handler.repo.Add(ctx, workoutLog)
	if err != nil {
		log.Errorf("failed to add workout log [user %d]: %s", workoutLog.UserID, err)
		http.Error(w, "error, failed to add workout log", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(AddWorkoutLogResponse{
		Item:    *addedLog,
		Message: "workout log added",
	})
	if err != nil {
		log.Errorf("failed to marshal new workout log: %s", err)
		http.Error(w, "error, failed to add workout log", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkoutLogs.Inc()

	log.Debugf("new workout log added: %d [user %d]", addedLog.ID, addedLog.UserID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleListForUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.listforuser")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	limit := defaultListLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		limit, err = strconv.Atoi(limitParam)
		if err != nil || limit <= 0 {
			http.Error(w, "error, limit invalid", http.StatusBadRequest)
			return
		}
		if limit > maxListLimit {
			limit = maxListLimit
		}
	}

	offset := 0
	if offsetParam := r.URL.Query().Get("offset"); offsetParam != "" {
		offset, err = strconv.Atoi(offsetParam)
		if err != nil || offset < 0 {
			http.Error(w, "error, offset invalid", http.StatusBadRequest)
			return
		}
	}

	workoutLogs, total, err := handler.repo.ListForUser(ctx, userID, limit, offset)
	if err != nil {
		log.Errorf("list workout logs [user %d]: %s", userID, err)
		http.Error(w, "failed to get workout logs", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListWorkoutLogsResponse{
		Items: workoutLogs,
		Count: total,
	})
	if err != nil {
		log.Errorf("marshal workout logs [user %d]: %s", userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleUpdate corrects an already-submitted log. History stays immutable
// apart from this.
func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlogs.update")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, workout log id invalid", http.StatusBadRequest)
		return
	}

	var req updateWorkoutLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update workout log, unmarshal json params: %s", err)
		http.Error(w, "update workout log failed", http.StatusBadRequest)
		return
	}

	if req.ActualWorkout != nil {
		if err := structure.Validate(req.ActualWorkout); err != nil {
			log.Tracef("update workout log %d, invalid actual workout: %s", id, err)
			http.Error(w, fmt.Sprintf("invalid actual workout: %s", err), http.StatusBadRequest)
			return
		}
	}

	updatedLog, err := handler.repo.Update(ctx, id, UpdateParams{
		LogDate:       req.LogDate,
		ActualWorkout: req.ActualWorkout,
		Score:         req.Score,
	})
	if err != nil {
		if errors.Is(err, ErrWorkoutLogNotFound) {
			http.Error(w, "workout log not found", http.StatusNotFound)
			return
		}
		log.Errorf("update workout log %d: %s", id, err)
		http.Error(w, "failed to update workout log", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(UpdateWorkoutLogResponse{
		Item:    *updatedLog,
		Message: "workout log updated",
	})
	if err != nil {
		log.Errorf("marshal updated workout log %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout log updated: %d", id)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
