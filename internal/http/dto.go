// Package http implements the REST surface of the staff user service: the
// chi router, request validation and the response envelopes the dashboard
// frontend consumes.
package http

import "staff-user-service/internal/model"

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type listUsersResponse struct {
	Success bool         `json:"success"`
	Count   int          `json:"count"`
	Data    []model.User `json:"data"`
}

type userResponse struct {
	Success bool       `json:"success"`
	Data    model.User `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type createUserRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Group  string `json:"group"`
}

type listEventsResponse struct {
	Success     bool          `json:"success"`
	Count       int           `json:"count"`
	Data        []model.Event `json:"data"`
	LastFetched string        `json:"lastFetched"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
