package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ironlog/ironlog/internal/telemetry/tracing"
	"github.com/ironlog/ironlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=events_mocks_test.go -package=events_test

const defaultListLimit = 50

type eventsRepo interface {
	Add(ctx context.Context, event Event) (*Event, error)
	ListForUser(ctx context.Context, userID, limit int) ([]Event, error)
}

type userChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type AddEventResponse struct {
	Item    Event  `json:"item"`
	Message string `json:"message"`
}

type ListEventsResponse struct {
	Items []Event `json:"items"`
	Count int     `json:"count"`
}

type Handler struct {
	repo  eventsRepo
	users userChecker
}

func NewHandler(repo eventsRepo, users userChecker) *Handler {
	return &Handler{
		repo:  repo,
		users: users,
	}
}

// HandleSessionStart records the start of a live training session.
func (handler *Handler) HandleSessionStart(w http.ResponseWriter, r *http.Request) {
	handler.handleAddSessionEvent(w, r, TypeSessionStart)
}

// HandleSessionFinish records a finished session. The submitted workout log
// id, if any, travels in the data payload.
func (handler *Handler) HandleSessionFinish(w http.ResponseWriter, r *http.Request) {
	handler.handleAddSessionEvent(w, r, TypeSessionFinish)
}

func (handler *Handler) handleAddSessionEvent(w http.ResponseWriter, r *http.Request, eventType string) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.add")
	defer span.End()

	var event Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Tracef("new gym event, unmarshal json params: %s", err)
		http.Error(w, "add event failed", http.StatusBadRequest)
		return
	}

	if event.UserID == 0 {
		http.Error(w, "error, user_id missing", http.StatusBadRequest)
		return
	}

	userExists, err := handler.users.Exists(ctx, event.UserID)
	if err != nil {
		log.Errorf("new gym event, check user %d: %s", event.UserID, err)
		http.Error(w, "error, failed to add event", http.StatusInternalServerError)
		return
	}
	if !userExists {
		http.Error(w, fmt.Sprintf("error, unknown user: %d", event.UserID), http.StatusBadRequest)
		return
	}

	event.Type = eventType
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	addedEvent, err := handler.repo.Add(ctx, event)
	if err != nil {
		log.Errorf("failed to add gym event [user %d, %s]: %s", event.UserID, eventType, err)
		http.Error(w, "error, failed to add event", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(AddEventResponse{
		Item:    *addedEvent,
		Message: "event added",
	})
	if err != nil {
		log.Errorf("failed to marshal gym event: %s", err)
		http.Error(w, "error, failed to add event", http.StatusInternalServerError)
		return
	}

	log.Debugf("new gym event added: %d [%s]", addedEvent.ID, eventType)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleListForUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.events.listforuser")
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
	}

	eventsList, err := handler.repo.ListForUser(ctx, userID, limit)
	if err != nil {
		log.Errorf("list gym events [user %d]: %s", userID, err)
		http.Error(w, "failed to get events", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(ListEventsResponse{
		Items: eventsList,
		Count: len(eventsList),
	})
	if err != nil {
		log.Errorf("marshal gym events [user %d]: %s", userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}
