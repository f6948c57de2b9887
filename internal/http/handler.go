package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"staff-user-service/internal/model"
	"staff-user-service/internal/service"
)

// UserService is the service contract the handlers depend on.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id string) (model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, id string, upd model.UserUpdate) error
	Delete(ctx context.Context, id string) error
}

// EventService is the service contract for the events reader.
type EventService interface {
	List(ctx context.Context) ([]model.Event, error)
}

type Handler struct {
	Users  UserService
	Events EventService
	Log    *slog.Logger
}

func NewHandler(users UserService, events EventService, log *slog.Logger) *Handler {
	return &Handler{
		Users:  users,
		Events: events,
		Log:    log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// The dashboard is served from a different origin; mirror the permissive
	// CORS policy of the original backend.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.handleHealth)
		r.Get("/events", h.handleEventsList)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.handleUsersList)
			r.Post("/", h.handleUserCreate)
			r.Get("/{id}", h.handleUserGet)
			r.Patch("/{id}", h.handleUserUpdate)
			r.Delete("/{id}", h.handleUserDelete)
		})
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: err.Error(),
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	writeJSON(w, appErr.Status, errorResponse{Success: false, Error: appErr.Message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
