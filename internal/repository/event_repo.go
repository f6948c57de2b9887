package repository

import (
	"context"

	"staff-user-service/internal/model"
)

// EventRepo reads list items as raw projections for the generic events
// endpoint: the item id plus every field as returned, untranslated.
type EventRepo struct {
	graph    ItemAPI
	resolver *Resolver
}

// NewEventRepo creates a read-only repository over the same list.
func NewEventRepo(graph ItemAPI, resolver *Resolver) *EventRepo {
	return &EventRepo{graph: graph, resolver: resolver}
}

// List returns every item as an id-plus-fields map.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	siteID, listID, err := r.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	items, err := r.graph.Items(ctx, siteID, listID)
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, len(items))
	for _, it := range items {
		ev := make(model.Event, len(it.Fields)+1)
		for k, v := range it.Fields {
			ev[k] = v
		}
		ev["id"] = it.ID
		events = append(events, ev)
	}
	return events, nil
}
