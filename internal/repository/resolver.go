package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// SiteLookup is the slice of the Graph adapter the resolver needs.
type SiteLookup interface {
	SiteIDByPath(ctx context.Context, path string) (string, error)
	ListsByDisplayName(ctx context.Context, siteID, displayName string) ([]ListSummary, error)
}

// Resolver turns the configured site path and list display name into the
// opaque identifiers the Graph API requires, and caches both for the
// lifetime of the process. Resolution is single-flight: the mutex ensures
// concurrent first calls perform at most one external lookup each for site
// and list. Failures are returned but never cached, so a later call retries.
// There is no invalidation; changing the configured site or list requires a
// restart.
type Resolver struct {
	graph    SiteLookup
	sitePath string
	listName string
	log      *slog.Logger

	mu     sync.Mutex
	siteID string
	listID string
}

// NewResolver creates a resolver for the given site path and list display name.
func NewResolver(graph SiteLookup, sitePath, listName string, log *slog.Logger) *Resolver {
	return &Resolver{graph: graph, sitePath: sitePath, listName: listName, log: log}
}

// SiteID returns the cached site identifier, resolving it on first use.
func (r *Resolver) SiteID(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.siteIDLocked(ctx)
}

// ListID returns the cached list identifier, resolving the site first if
// needed. The list lookup is only ever attempted once the site is known.
func (r *Resolver) ListID(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.listIDLocked(ctx)
}

// Resolve returns both identifiers, resolving whichever is not yet cached.
func (r *Resolver) Resolve(ctx context.Context) (siteID, listID string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if siteID, err = r.siteIDLocked(ctx); err != nil {
		return "", "", err
	}
	if listID, err = r.listIDLocked(ctx); err != nil {
		return "", "", err
	}
	return siteID, listID, nil
}

func (r *Resolver) siteIDLocked(ctx context.Context) (string, error) {
	if r.siteID != "" {
		return r.siteID, nil
	}

	id, err := r.graph.SiteIDByPath(ctx, r.sitePath)
	if err != nil {
		return "", err
	}
	r.siteID = id
	r.log.Info("resolved sharepoint site", slog.String("path", r.sitePath), slog.String("site_id", id))
	return id, nil
}

func (r *Resolver) listIDLocked(ctx context.Context) (string, error) {
	if r.listID != "" {
		return r.listID, nil
	}

	siteID, err := r.siteIDLocked(ctx)
	if err != nil {
		return "", err
	}

	lists, err := r.graph.ListsByDisplayName(ctx, siteID, r.listName)
	if err != nil {
		return "", err
	}
	if len(lists) == 0 {
		return "", fmt.Errorf("%w: %q", ErrListNotFound, r.listName)
	}
	if len(lists) > 1 {
		// Display names are not unique in SharePoint; take the first match
		// as returned by the API but leave a trace for the operator.
		r.log.Warn("multiple lists match display name, using first",
			slog.String("list_name", r.listName),
			slog.Int("matches", len(lists)),
			slog.String("list_id", lists[0].ID),
		)
	}

	r.listID = lists[0].ID
	r.log.Info("resolved sharepoint list", slog.String("list_name", r.listName), slog.String("list_id", r.listID))
	return r.listID, nil
}
