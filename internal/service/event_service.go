package service

import (
	"context"

	"staff-user-service/internal/model"
)

// EventRepository is the repository contract for the generic events reader.
type EventRepository interface {
	List(ctx context.Context) ([]model.Event, error)
}

// EventService exposes the read-only raw list projection.
type EventService struct {
	repo EventRepository
}

// NewEventService creates an event service over the given repository.
func NewEventService(repo EventRepository) *EventService {
	return &EventService{repo: repo}
}

// List returns every list item as a raw id-plus-fields projection.
func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, ErrUpstream(err)
	}
	return events, nil
}
