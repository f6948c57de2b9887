package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"staff-user-service/internal/model"
	"staff-user-service/internal/service"
)

func (h *Handler) handleUsersList(w http.ResponseWriter, r *http.Request) {
	const handlerName = "users_list"

	users, err := h.Users.List(r.Context())
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, listUsersResponse{
		Success: true,
		Count:   len(users),
		Data:    users,
	})
}

func (h *Handler) handleUserGet(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_get"

	id := chi.URLParam(r, "id")
	user, err := h.Users.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{Success: true, Data: user})
}

func (h *Handler) handleUserCreate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_create"

	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	if err := ValidateCreateUserRequest(req); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	user, err := h.Users.Create(r.Context(), model.User{
		UserID: req.UserID,
		Name:   req.Name,
		Status: req.Status,
		Group:  req.Group,
	})
	if err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{Success: true, Data: user})
}

func (h *Handler) handleUserUpdate(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_update"

	var upd model.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.writeError(w, handlerName, service.ErrBadRequest("invalid JSON"))
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.Users.Update(r.Context(), id, upd); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "User updated successfully",
	})
}

func (h *Handler) handleUserDelete(w http.ResponseWriter, r *http.Request) {
	const handlerName = "user_delete"

	id := chi.URLParam(r, "id")
	if err := h.Users.Delete(r.Context(), id); err != nil {
		h.writeError(w, handlerName, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "User deleted successfully",
	})
}
