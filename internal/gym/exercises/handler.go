package exercises

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ironlog/ironlog/internal/gym/structure"
	"github.com/ironlog/ironlog/internal/telemetry/tracing"
	"github.com/ironlog/ironlog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	Add(ctx context.Context, exercise Exercise) (*Exercise, error)
	List(ctx context.Context) ([]Exercise, error)
}

type AddExerciseResponse struct {
	Item    Exercise `json:"item"`
	Message string   `json:"message"`
}

type ListExercisesResponse struct {
	Items []Exercise `json:"items"`
	Count int        `json:"count"`
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.add")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var exercise Exercise
	if err := json.NewDecoder(r.Body).Decode(&exercise); err != nil {
		log.Tracef("new exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	if exercise.Name == "" || exercise.MuscleGroup == "" {
		http.Error(w, "error, exercise name or muscle group empty", http.StatusBadRequest)
		return
	}

	for _, unit := range exercise.Units {
		if !structure.KnownUnit(unit) {
			http.Error(w, "error, unknown measurement unit: "+unit, http.StatusBadRequest)
			return
		}
	}

	if exercise.CreatedAt.IsZero() {
		exercise.CreatedAt = time.Now()
	}

	addedExercise, err := handler.repo.Add(ctx, exercise)
	if err != nil {
		log.Errorf("failed to add new exercise [%s], [%s]: %s", exercise.MuscleGroup, exercise.Name, err)
		http.Error(w, "error, failed to add new exercise", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(AddExerciseResponse{
		Item:    *addedExercise,
		Message: "exercise added",
	})
	if err != nil {
		log.Errorf("failed to marshal new exercise: %s", err)
		http.Error(w, "error, failed to add new exercise", http.StatusInternalServerError)
		return
	}

	log.Debugf("new exercise added: %d", addedExercise.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	exercisesList, err := handler.repo.List(ctx)
	if err != nil {
		log.Errorf("list exercises error: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListExercisesResponse{
		Items: exercisesList,
		Count: len(exercisesList),
	})
	if err != nil {
		log.Errorf("marshal exercises error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
