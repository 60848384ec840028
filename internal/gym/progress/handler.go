package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ironlog/ironlog/internal/gym/logs"
	"github.com/ironlog/ironlog/internal/gym/regiments"
	"github.com/ironlog/ironlog/internal/telemetry/tracing"
	"github.com/ironlog/ironlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=progress_mocks_test.go -package=progress_test

type markerRepo interface {
	Set(ctx context.Context, userID, regimentID int) error
	Get(ctx context.Context, userID int) (int, error)
}

type regimentsLister interface {
	Get(ctx context.Context, id int) (*regiments.Regiment, error)
	List(ctx context.Context) ([]regiments.Regiment, error)
}

type logsLister interface {
	ListAllForUser(ctx context.Context, userID int) ([]logs.WorkoutLog, error)
}

type userChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type GetOverviewResponse struct {
	Item Overview `json:"item"`
}

type setCurrentRegimentRequest struct {
	UserID     int `json:"id"`
	RegimentID int `json:"regiment_id"`
}

type Handler struct {
	marker        markerRepo
	regimentsRepo regimentsLister
	logsRepo      logsLister
	users         userChecker
	now           func() time.Time
}

func NewHandler(marker markerRepo, regimentsRepo regimentsLister, logsRepo logsLister, users userChecker) *Handler {
	return &Handler{
		marker:        marker,
		regimentsRepo: regimentsRepo,
		logsRepo:      logsRepo,
		users:         users,
		now:           time.Now,
	}
}

// HandleSetCurrent marks a regiment as the one the user is actively
// pursuing.
func (handler *Handler) HandleSetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.setcurrent")
	defer span.End()

	var req setCurrentRegimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("set current regiment, unmarshal json params: %s", err)
		http.Error(w, "set current regiment failed", http.StatusBadRequest)
		return
	}

	if req.UserID == 0 || req.RegimentID == 0 {
		http.Error(w, "error, id or regiment_id missing", http.StatusBadRequest)
		return
	}

	userExists, err := handler.users.Exists(ctx, req.UserID)
	if err != nil {
		log.Errorf("set current regiment, check user %d: %s", req.UserID, err)
		http.Error(w, "failed to set current regiment", http.StatusInternalServerError)
		return
	}
	if !userExists {
		http.Error(w, fmt.Sprintf("error, unknown user: %d", req.UserID), http.StatusBadRequest)
		return
	}

	if _, err := handler.regimentsRepo.Get(ctx, req.RegimentID); err != nil {
		if errors.Is(err, regiments.ErrRegimentNotFound) {
			http.Error(w, "regiment not found", http.StatusNotFound)
			return
		}
		log.Errorf("set current regiment, get regiment %d: %s", req.RegimentID, err)
		http.Error(w, "failed to set current regiment", http.StatusInternalServerError)
		return
	}

	if err := handler.marker.Set(ctx, req.UserID, req.RegimentID); err != nil {
		log.Errorf("set current regiment [user %d, regiment %d]: %s", req.UserID, req.RegimentID, err)
		http.Error(w, "failed to set current regiment", http.StatusInternalServerError)
		return
	}

	log.Debugf("current regiment set: user %d -> regiment %d", req.UserID, req.RegimentID)
	pkg.WriteTextResponseOK(w, "current regiment updated")
}

// HandleGetOverview computes the user's progress picture: current regiment,
// completion buckets and today's status.
func (handler *Handler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.overview")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id invalid", http.StatusBadRequest)
		return
	}

	markerRegimentID, err := handler.marker.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNoCurrentRegiment) {
			log.Errorf("progress overview, get marker [user %d]: %s", userID, err)
			http.Error(w, "failed to get progress overview", http.StatusInternalServerError)
			return
		}
		markerRegimentID = 0
	}

	regs, err := handler.regimentsRepo.List(ctx)
	if err != nil {
		log.Errorf("progress overview, list regiments [user %d]: %s", userID, err)
		http.Error(w, "failed to get progress overview", http.StatusInternalServerError)
		return
	}

	workoutLogs, err := handler.logsRepo.ListAllForUser(ctx, userID)
	if err != nil {
		log.Errorf("progress overview, list logs [user %d]: %s", userID, err)
		http.Error(w, "failed to get progress overview", http.StatusInternalServerError)
		return
	}

	overview := BuildOverview(userID, regs, workoutLogs, markerRegimentID, handler.now())

	respJson, err := json.Marshal(GetOverviewResponse{
		Item: overview,
	})
	if err != nil {
		log.Errorf("marshal progress overview [user %d]: %s", userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
