// Package service contains the business logic between the HTTP handlers and
// the SharePoint-backed repositories: presence validation, create defaults
// and the error taxonomy of the REST surface.
package service

import (
	"context"

	"staff-user-service/internal/model"
)

// UserRepository is the repository contract the user service depends on.
type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id string) (model.User, error)
	Create(ctx context.Context, u model.User) (model.User, error)
	Update(ctx context.Context, id string, upd model.UserUpdate) error
	Delete(ctx context.Context, id string) error
}

// UserService implements the staff user operations. It performs presence
// checks and create defaults; everything else is delegated downstream.
type UserService struct {
	repo UserRepository
}

// NewUserService creates a user service over the given repository.
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List returns all staff records.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, ErrUpstream(err)
	}
	return users, nil
}

// Get returns a single staff record by id.
func (s *UserService) Get(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.User{}, ErrUpstream(err)
	}
	return user, nil
}

// Create validates the required fields, applies defaults and stores the
// record. No downstream call is made when validation fails.
func (s *UserService) Create(ctx context.Context, u model.User) (model.User, error) {
	if u.UserID == "" || u.Name == "" {
		return model.User{}, ErrBadRequest("userId and name are required")
	}
	if u.Status == "" {
		u.Status = model.StatusActive
	}
	// Group defaults to the empty string, which it already is when omitted.

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		return model.User{}, ErrUpstream(err)
	}
	return created, nil
}

// Update applies a partial update: only the fields present in upd are sent
// downstream. An empty update is passed through unchanged, as the original
// surface did not reject it.
func (s *UserService) Update(ctx context.Context, id string, upd model.UserUpdate) error {
	if err := s.repo.Update(ctx, id, upd); err != nil {
		return ErrUpstream(err)
	}
	return nil
}

// Delete removes a staff record by id.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return ErrUpstream(err)
	}
	return nil
}
