package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/microsoftgraph/msgraph-sdk-go/models/odataerrors"
	"github.com/microsoftgraph/msgraph-sdk-go/sites"
)

// Graph wraps the Microsoft Graph SDK client and exposes the handful of
// SharePoint operations the service needs as plain types, so that the
// resolver and repositories stay free of SDK machinery. No operation is
// retried and no timeout is applied beyond the underlying client's defaults.
type Graph struct {
	client *msgraphsdk.GraphServiceClient
}

// NewGraph creates the adapter around an initialized Graph service client.
func NewGraph(client *msgraphsdk.GraphServiceClient) *Graph {
	return &Graph{client: client}
}

// ListSummary identifies a list within a site.
type ListSummary struct {
	ID          string
	DisplayName string
}

// Item is a list item with its expanded field payload. ETag carries the
// item's concurrency token when the field payload includes one; it is
// surfaced to callers but never sent back on writes (last-write-wins).
type Item struct {
	ID     string
	ETag   string
	Fields map[string]any
}

// SiteIDByPath resolves a site lookup path ("host" or "host:/sites/name")
// to the site's opaque identifier.
func (g *Graph) SiteIDByPath(ctx context.Context, path string) (string, error) {
	site, err := g.client.Sites().BySiteId(path).Get(ctx, nil)
	if err != nil {
		return "", graphError(fmt.Sprintf("get site %q", path), err)
	}
	return deref(site.GetId()), nil
}

// ListsByDisplayName returns the site's lists whose display name matches
// exactly, using a server-side filter. Ordering is whatever the API returns.
func (g *Graph) ListsByDisplayName(ctx context.Context, siteID, displayName string) ([]ListSummary, error) {
	// Single quotes in OData string literals are escaped by doubling.
	filter := fmt.Sprintf("displayName eq '%s'", strings.ReplaceAll(displayName, "'", "''"))
	resp, err := g.client.Sites().BySiteId(siteID).Lists().Get(ctx, &sites.ItemListsRequestBuilderGetRequestConfiguration{
		QueryParameters: &sites.ItemListsRequestBuilderGetQueryParameters{
			Filter: &filter,
		},
	})
	if err != nil {
		return nil, graphError(fmt.Sprintf("query lists of site %q", siteID), err)
	}

	var lists []ListSummary
	for _, l := range resp.GetValue() {
		lists = append(lists, ListSummary{
			ID:          deref(l.GetId()),
			DisplayName: deref(l.GetDisplayName()),
		})
	}
	return lists, nil
}

// Items fetches all items of a list with their field payloads expanded.
func (g *Graph) Items(ctx context.Context, siteID, listID string) ([]Item, error) {
	resp, err := g.client.Sites().BySiteId(siteID).Lists().ByListId(listID).Items().Get(ctx, &sites.ItemListsItemItemsRequestBuilderGetRequestConfiguration{
		QueryParameters: &sites.ItemListsItemItemsRequestBuilderGetQueryParameters{
			Expand: []string{"fields"},
		},
	})
	if err != nil {
		return nil, graphError("list items", err)
	}

	items := make([]Item, 0, len(resp.GetValue()))
	for _, it := range resp.GetValue() {
		items = append(items, itemFromModel(it))
	}
	return items, nil
}

// Item fetches a single list item by id with its field payload expanded.
func (g *Graph) Item(ctx context.Context, siteID, listID, itemID string) (Item, error) {
	it, err := g.client.Sites().BySiteId(siteID).Lists().ByListId(listID).Items().ByListItemId(itemID).Get(ctx, &sites.ItemListsItemItemsListItemItemRequestBuilderGetRequestConfiguration{
		QueryParameters: &sites.ItemListsItemItemsListItemItemRequestBuilderGetQueryParameters{
			Expand: []string{"fields"},
		},
	})
	if err != nil {
		return Item{}, graphError(fmt.Sprintf("get item %q", itemID), err)
	}
	return itemFromModel(it), nil
}

// CreateItem creates a new list item with the given column values.
func (g *Graph) CreateItem(ctx context.Context, siteID, listID string, columns map[string]any) (Item, error) {
	fields := models.NewFieldValueSet()
	fields.SetAdditionalData(columns)
	item := models.NewListItem()
	item.SetFields(fields)

	created, err := g.client.Sites().BySiteId(siteID).Lists().ByListId(listID).Items().Post(ctx, item, nil)
	if err != nil {
		return Item{}, graphError("create item", err)
	}
	return itemFromModel(created), nil
}

// UpdateItemFields patches only the given column values on an existing item.
func (g *Graph) UpdateItemFields(ctx context.Context, siteID, listID, itemID string, columns map[string]any) error {
	fields := models.NewFieldValueSet()
	fields.SetAdditionalData(columns)

	_, err := g.client.Sites().BySiteId(siteID).Lists().ByListId(listID).Items().ByListItemId(itemID).Fields().Patch(ctx, fields, nil)
	if err != nil {
		return graphError(fmt.Sprintf("update item %q", itemID), err)
	}
	return nil
}

// DeleteItem removes a list item by id.
func (g *Graph) DeleteItem(ctx context.Context, siteID, listID, itemID string) error {
	err := g.client.Sites().BySiteId(siteID).Lists().ByListId(listID).Items().ByListItemId(itemID).Delete(ctx, nil)
	if err != nil {
		return graphError(fmt.Sprintf("delete item %q", itemID), err)
	}
	return nil
}

func itemFromModel(it models.ListItemable) Item {
	item := Item{ID: deref(it.GetId())}
	if fields := it.GetFields(); fields != nil {
		item.Fields = fields.GetAdditionalData()
		item.ETag = stringField(item.Fields, "@odata.etag")
	}
	return item
}

// graphError flattens SDK OData errors into their embedded message so that
// handlers surface the upstream text, matching the error policy of the REST
// surface. Other errors are wrapped unchanged.
func graphError(op string, err error) error {
	var odataErr *odataerrors.ODataError
	if errors.As(err, &odataErr) && odataErr.GetErrorEscaped() != nil {
		if msg := odataErr.GetErrorEscaped().GetMessage(); msg != nil && *msg != "" {
			return fmt.Errorf("%s: %s", op, *msg)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
