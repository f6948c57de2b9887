// Package repository implements the SharePoint-backed storage layer: a thin
// adapter over the Microsoft Graph SDK, the site/list resolver and the field
// mapping between REST records and list columns.
package repository

import (
	"context"

	"staff-user-service/internal/model"
)

// ItemAPI is the slice of the Graph adapter the repositories need for item
// operations.
type ItemAPI interface {
	Items(ctx context.Context, siteID, listID string) ([]Item, error)
	Item(ctx context.Context, siteID, listID, itemID string) (Item, error)
	CreateItem(ctx context.Context, siteID, listID string, columns map[string]any) (Item, error)
	UpdateItemFields(ctx context.Context, siteID, listID, itemID string, columns map[string]any) error
	DeleteItem(ctx context.Context, siteID, listID, itemID string) error
}

// UserRepo persists staff user records in the SharePoint list. Every method
// resolves the site and list (cached after first use), performs exactly one
// Graph item operation and maps fields. Nothing is retried.
type UserRepo struct {
	graph    ItemAPI
	resolver *Resolver
}

// NewUserRepo creates a repository on top of the Graph adapter and resolver.
func NewUserRepo(graph ItemAPI, resolver *Resolver) *UserRepo {
	return &UserRepo{graph: graph, resolver: resolver}
}

// List returns every record in the list, including each item's etag.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	siteID, listID, err := r.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	items, err := r.graph.Items(ctx, siteID, listID)
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(items))
	for _, it := range items {
		users = append(users, userFromItem(it, true))
	}
	return users, nil
}

// Get returns a single record by item id, without the etag.
func (r *UserRepo) Get(ctx context.Context, id string) (model.User, error) {
	siteID, listID, err := r.resolver.Resolve(ctx)
	if err != nil {
		return model.User{}, err
	}

	it, err := r.graph.Item(ctx, siteID, listID, id)
	if err != nil {
		return model.User{}, err
	}
	return userFromItem(it, false), nil
}

// Create stores a new record and returns it with the id the list issued.
// The caller is expected to have applied defaults already.
func (r *UserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	siteID, listID, err := r.resolver.Resolve(ctx)
	if err != nil {
		return model.User{}, err
	}

	created, err := r.graph.CreateItem(ctx, siteID, listID, columnsFromUser(u))
	if err != nil {
		return model.User{}, err
	}

	u.ID = created.ID
	return u, nil
}

// Update patches only the fields present in upd, leaving the rest of the
// item untouched downstream. The etag is deliberately not sent: updates are
// last-write-wins.
func (r *UserRepo) Update(ctx context.Context, id string, upd model.UserUpdate) error {
	siteID, listID, err := r.resolver.Resolve(ctx)
	if err != nil {
		return err
	}
	return r.graph.UpdateItemFields(ctx, siteID, listID, id, columnsFromUpdate(upd))
}

// Delete removes a record by item id.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	siteID, listID, err := r.resolver.Resolve(ctx)
	if err != nil {
		return err
	}
	return r.graph.DeleteItem(ctx, siteID, listID, id)
}
