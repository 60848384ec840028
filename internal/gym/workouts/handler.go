package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ironlog/ironlog/internal/gym/exercises"
	"github.com/ironlog/ironlog/internal/gym/structure"
	"github.com/ironlog/ironlog/internal/telemetry/metrics"
	"github.com/ironlog/ironlog/internal/telemetry/tracing"
	"github.com/ironlog/ironlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	Get(ctx context.Context, id int) (*Workout, error)
	List(ctx context.Context) ([]Workout, error)
	Update(ctx context.Context, id int, params UpdateParams) (*Workout, error)
	Delete(ctx context.Context, id int) (*Workout, error)
}

type exercisesGetter interface {
	GetMap(ctx context.Context, ids []int) (map[int]exercises.Exercise, error)
}

type AddWorkoutResponse struct {
	Item        Workout `json:"item"`
	ExerciseIDs []int   `json:"exercise_ids"`
	Message     string  `json:"message"`
}

type GetWorkoutResponse struct {
	Item HydratedWorkout `json:"item"`
}

type ListWorkoutsResponse struct {
	Items []Workout `json:"items"`
	Count int       `json:"count"`
}

type UpdateWorkoutResponse struct {
	Item    Workout `json:"item"`
	Message string  `json:"message"`
}

type DeleteWorkoutResponse struct {
	Message string  `json:"message"`
	Item    Workout `json:"item"`
}

type updateWorkoutRequest struct {
	Name        *string           `json:"name"`
	Description *string           `json:"description"`
	Structure   []structure.Entry `json:"structure"`
	Score       *int              `json:"score"`
	Intensity   *string           `json:"intensity"`
}

type Handler struct {
	repo          workoutsRepo
	exercisesRepo exercisesGetter
	metrics       *metrics.Manager
}

func NewHandler(repo workoutsRepo, exercisesRepo exercisesGetter, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:          repo,
		exercisesRepo: exercisesRepo,
		metrics:       metrics,
	}
}

// checkExercisesExist verifies that every referenced exercise id resolves to
// a stored exercise, returning the offending id otherwise.
func (handler *Handler) checkExercisesExist(ctx context.Context, ids []int) (int, error) {
	exercisesMap, err := handler.exercisesRepo.GetMap(ctx, ids)
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		if _, ok := exercisesMap[id]; !ok {
			return id, nil
		}
	}
	return 0, nil
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.Name == "" {
		http.Error(w, "error, workout name empty", http.StatusBadRequest)
		return
	}

	if err := structure.Validate(workout.Structure); err != nil {
		log.Tracef("new workout, invalid structure: %s", err)
		http.Error(w, fmt.Sprintf("invalid structure: %s", err), http.StatusBadRequest)
		return
	}

	exerciseIDs := structure.ExerciseIDs(workout.Structure)
	missingID, err := handler.checkExercisesExist(ctx, exerciseIDs)
	if err != nil {
		log.Errorf("new workout, check exercises: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}
	if missingID != 0 {
		http.Error(w, fmt.Sprintf("error, unknown exercise: %d", missingID), http.StatusBadRequest)
		return
	}

	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}

	addedWorkout, err := handler.repo.Add(ctx, workout)
	if err != nil {
		log.Errorf("failed to add new workout [%s]: %s", workout.Name, err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(AddWorkoutResponse{
		Item:        *addedWorkout,
		ExerciseIDs: exerciseIDs,
		Message:     "workout added",
	})
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkouts.Inc()

	log.Debugf("new workout added: %d", addedWorkout.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, workout id invalid", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("get workout %d: %s", id, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	exercisesMap, err := handler.exercisesRepo.GetMap(ctx, structure.ExerciseIDs(workout.Structure))
	if err != nil {
		log.Errorf("get workout %d, get exercises: %s", id, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(GetWorkoutResponse{
		Item: HydrateWorkout(*workout, exercisesMap),
	})
	if err != nil {
		log.Errorf("marshal workout %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	workoutsList, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list workouts error: %s", err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListWorkoutsResponse{
		Items: workoutsList,
		Count: len(workoutsList),
	})
	if err != nil {
		log.Errorf("marshal workouts error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, workout id invalid", http.StatusBadRequest)
		return
	}

	var req updateWorkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}

	if req.Structure != nil {
		if err := structure.Validate(req.Structure); err != nil {
			log.Tracef("update workout %d, invalid structure: %s", id, err)
			http.Error(w, fmt.Sprintf("invalid structure: %s", err), http.StatusBadRequest)
			return
		}
		missingID, err := handler.checkExercisesExist(ctx, structure.ExerciseIDs(req.Structure))
		if err != nil {
			log.Errorf("update workout %d, check exercises: %s", id, err)
			http.Error(w, "error, failed to update workout", http.StatusInternalServerError)
			return
		}
		if missingID != 0 {
			http.Error(w, fmt.Sprintf("error, unknown exercise: %d", missingID), http.StatusBadRequest)
			return
		}
	}

	updatedWorkout, err := handler.repo.Update(ctx, id, UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Structure:   req.Structure,
		Score:       req.Score,
		Intensity:   req.Intensity,
	})
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("update workout %d: %s", id, err)
		http.Error(w, "failed to update workout", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(UpdateWorkoutResponse{
		Item:    *updatedWorkout,
		Message: "workout updated",
	})
	if err != nil {
		log.Errorf("marshal updated workout %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout updated: %d", id)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, workout id invalid", http.StatusBadRequest)
		return
	}

	deletedWorkout, err := handler.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout %d: %s", id, err)
		http.Error(w, "failed to delete workout", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(DeleteWorkoutResponse{
		Message: "workout deleted",
		Item:    *deletedWorkout,
	})
	if err != nil {
		log.Errorf("marshal deleted workout %d: %s", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout deleted: %d", id)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
