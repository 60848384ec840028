package regiments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ironlog/ironlog/internal/gym/workouts"
	"github.com/ironlog/ironlog/internal/telemetry/metrics"
	"github.com/ironlog/ironlog/internal/telemetry/tracing"
	"github.com/ironlog/ironlog/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=regiments_mocks_test.go -package=regiments_test

const (
	listCacheKey        = "regiments-list"
	listCacheExpireSecs = 5 * 60
)

type regimentsRepo interface {
	Add(ctx context.Context, regiment Regiment) (*Regiment, error)
	Get(ctx context.Context, id int) (*Regiment, error)
	List(ctx context.Context) ([]Regiment, error)
	Update(ctx context.Context, id int, params UpdateParams) (*Regiment, error)
	Delete(ctx context.Context, id int) (*Regiment, error)
}

type workoutsGetter interface {
	GetMap(ctx context.Context, ids []int) (map[int]workouts.Workout, error)
}

type AddRegimentResponse struct {
	Item Regiment `json:"item"`
}

type GetRegimentResponse struct {
	Item HydratedRegiment `json:"item"`
}

type ListRegimentsResponse struct {
	Items []Regiment `json:"items"`
	Count int        `json:"count"`
}

type UpdateRegimentResponse struct {
	Item    Regiment `json:"item"`
	Message string   `json:"message"`
}

type DeleteRegimentResponse struct {
	Message string   `json:"message"`
	Item    Regiment `json:"item"`
}

type updateRegimentRequest struct {
	Name             *string    `json:"name"`
	Description      *string    `json:"description"`
	WorkoutStructure []DayEntry `json:"workout_structure"`
	Intensity        *string    `json:"intensity"`
}

type Handler struct {
	repo         regimentsRepo
	workoutsRepo workoutsGetter
	cache        *freecache.Cache
	metrics      *metrics.Manager
}

func NewHandler(repo regimentsRepo, workoutsRepo workoutsGetter, cache *freecache.Cache, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:         repo,
		workoutsRepo: workoutsRepo,
		cache:        cache,
		metrics:      metrics,
	}
}

func (handler *Handler) invalidateListCache() {
	handler.cache.Del([]byte(listCacheKey))
}

// checkWorkoutsExist verifies that every referenced workout id resolves to a
// stored workout, returning the offending id otherwise.
func (handler *Handler) checkWorkoutsExist(ctx context.Context, ids []int) (int, error) {
	workoutsMap, err := handler.workoutsRepo.GetMap(ctx, ids)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		if _, ok := workoutsMap[id]; !ok {
			return id, nil
		}
	}
	return 0, nil
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.regiments.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var regiment Regiment
	if err := json.NewDecoder(r.Body).Decode(&regiment); err != nil {
		log.Tracef("new regiment, unmarshal json params: %s", err)
		http.Error(w, "add regiment failed", http.StatusBadRequest)
		return
	}

	if regiment.Name == "" {
		http.Error(w, "error, regiment name empty", http.StatusBadRequest)
		return
	}

	if err := ValidateWorkoutStructure(regiment.WorkoutStructure); err != nil {
		log.Tracef("new regiment, invalid workout structure: %s", err)
		http.Error(w, fmt.Sprintf("invalid workout structure: %s", err), http.StatusBadRequest)
		return
	}

	missingID, err := handler.checkWorkoutsExist(ctx, WorkoutIDs(regiment.WorkoutStructure))
	if err != nil {
		log.Errorf("new regiment, check workouts: %s", err)
		http.Error(w, "error, failed to add new regiment", http.StatusInternalServerError)
		return
	}
	if missingID != 0 {
		http.Error(w, fmt.Sprintf("error, unknown workout: %d", missingID), http.StatusBadRequest)
		return
	}

	if regiment.CreatedAt.IsZero() {
		regiment.CreatedAt = time.Now()
	}

	addedRegiment, err := handler.repo.Add(ctx, regiment)
	if err != nil {
		log.Errorf("failed to add new regiment [%s]: %s", regiment.Name, err)
		http.Error(w, "error, failed to add new regiment", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(AddRegimentResponse{
		Item: *addedRegiment,
	})
	if err != nil {
		log.Errorf("failed to marshal new regiment: %s", err)
		http.Error(w, "error, failed to add new regiment", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterRegiments.Inc()
	handler.invalidateListCache()

	log.Debugf("new regiment added: %d", addedRegiment.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.regiments.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, regiment id invalid", http.StatusBadRequest)
		return
	}

	regiment, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRegimentNotFound) {
			http.Error(w, "regiment not found", http.StatusNotFound)
			return
		}
		log.Errorf("get regiment %d: %s", id, err)
		http.Error(w, "failed to get regiment", http.StatusInternalServerError)
		return
	}

	workoutsMap, err := handler.workoutsRepo.GetMap(ctx, WorkoutIDs(regiment.WorkoutStructure))
	if err != nil {
		log.Errorf("get regiment %d, get workouts: %s", id, err)
		http.Error(w, "failed to get regiment", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(GetRegimentResponse{
		Item: HydrateRegiment(*regiment, workoutsMap),
	})
	if err != nil {
		log.Errorf("marshal regiment %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.regiments.list")
	defer span.End()

	if cached, err := handler.cache.Get([]byte(listCacheKey)); err == nil {
		span.AddEvent("list served from cache")
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	regimentsList, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list regiments error: %s", err)
		http.Error(w, "failed to get regiments", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListRegimentsResponse{
		Items: regimentsList,
		Count: len(regimentsList),
	})
	if err != nil {
		log.Errorf("marshal regiments error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set([]byte(listCacheKey), respJson, listCacheExpireSecs); err != nil {
		log.Warnf("failed to cache regiments list: %s", err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.regiments.update")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, regiment id invalid", http.StatusBadRequest)
		return
	}

	var req updateRegimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update regiment, unmarshal json params: %s", err)
		http.Error(w, "update regiment failed", http.StatusBadRequest)
		return
	}

	if req.WorkoutStructure != nil {
		if err := ValidateWorkoutStructure(req.WorkoutStructure); err != nil {
			log.Tracef("update regiment %d, invalid workout structure: %s", id, err)
			http.Error(w, fmt.Sprintf("invalid workout structure: %s", err), http.StatusBadRequest)
			return
		}
		missingID, err := handler.checkWorkoutsExist(ctx, WorkoutIDs(req.WorkoutStructure))
		if err != nil {
			log.Errorf("update regiment %d, check workouts: %s", id, err)
			http.Error(w, "error, failed to update regiment", http.StatusInternalServerError)
			return
		}
		if missingID != 0 {
			http.Error(w, fmt.Sprintf("error, unknown workout: %d", missingID), http.StatusBadRequest)
			return
		}
	}

	updatedRegiment, err := handler.repo.Update(ctx, id, UpdateParams{
		Name:             req.Name,
		Description:      req.Description,
		WorkoutStructure: req.WorkoutStructure,
		Intensity:        req.Intensity,
	})
	if err != nil {
		if errors.Is(err, ErrRegimentNotFound) {
			http.Error(w, "regiment not found", http.StatusNotFound)
			return
		}
		log.Errorf("update regiment %d: %s", id, err)
		http.Error(w, "failed to update regiment", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(UpdateRegimentResponse{
		Item:    *updatedRegiment,
		Message: "regiment updated",
	})
	if err != nil {
		log.Errorf("marshal updated regiment %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	handler.invalidateListCache()

	log.Debugf("regiment updated: %d", id)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.regiments.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, regiment id invalid", http.StatusBadRequest)
		return
	}

	deletedRegiment, err := handler.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrRegimentNotFound) {
			http.Error(w, "regiment not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete regiment %d: %s", id, err)
		http.Error(w, "failed to delete regiment", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteRegimentResponse{
		Message: "regiment deleted",
		Item:    *deletedRegiment,
	})
	if err != nil {
		log.Errorf("marshal deleted regiment %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	handler.invalidateListCache()

	log.Debugf("regiment deleted: %d", id)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
