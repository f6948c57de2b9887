package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staff-user-service/internal/model"
)

// fakeItemAPI records the last operation so tests can assert exactly what
// reaches the downstream API.
type fakeItemAPI struct {
	items   []Item
	item    Item
	created Item
	err     error

	createdColumns map[string]any
	updatedColumns map[string]any
	updatedItemID  string
	deletedItemID  string
	gotSiteID      string
	gotListID      string
}

func (f *fakeItemAPI) Items(_ context.Context, siteID, listID string) ([]Item, error) {
	f.gotSiteID, f.gotListID = siteID, listID
	return f.items, f.err
}

func (f *fakeItemAPI) Item(_ context.Context, siteID, listID, itemID string) (Item, error) {
	f.gotSiteID, f.gotListID = siteID, listID
	return f.item, f.err
}

func (f *fakeItemAPI) CreateItem(_ context.Context, siteID, listID string, columns map[string]any) (Item, error) {
	f.gotSiteID, f.gotListID = siteID, listID
	f.createdColumns = columns
	return f.created, f.err
}

func (f *fakeItemAPI) UpdateItemFields(_ context.Context, siteID, listID, itemID string, columns map[string]any) error {
	f.gotSiteID, f.gotListID = siteID, listID
	f.updatedItemID = itemID
	f.updatedColumns = columns
	return f.err
}

func (f *fakeItemAPI) DeleteItem(_ context.Context, siteID, listID, itemID string) error {
	f.gotSiteID, f.gotListID = siteID, listID
	f.deletedItemID = itemID
	return f.err
}

func newTestResolver() *Resolver {
	fake := &fakeSiteLookup{
		siteID: "site-1",
		lists:  []ListSummary{{ID: "list-1", DisplayName: "Staff Users"}},
	}
	return NewResolver(fake, "contoso.sharepoint.com", "Staff Users", testLogger())
}

func TestUserRepo_List(t *testing.T) {
	api := &fakeItemAPI{items: []Item{
		{
			ID:   "1",
			ETag: `"etag-1"`,
			Fields: map[string]any{
				"Title": "301023", "Name": "Ali", "Status": "Active",
				"Group": "Operations", "Modified": "2024-01-01T00:00:00Z", "Created": "2024-01-01T00:00:00Z",
			},
		},
	}}
	repo := NewUserRepo(api, newTestResolver())

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)

	assert.Equal(t, "site-1", api.gotSiteID)
	assert.Equal(t, "list-1", api.gotListID)
	assert.Equal(t, model.User{
		ID:          "1",
		ODataEtag:   `"etag-1"`,
		UserID:      "301023",
		Name:        "Ali",
		Status:      "Active",
		Group:       "Operations",
		UpdatedDate: "2024-01-01T00:00:00Z",
		CreatedDate: "2024-01-01T00:00:00Z",
	}, users[0])
}

func TestUserRepo_Get_OmitsETag(t *testing.T) {
	api := &fakeItemAPI{item: Item{
		ID:     "2",
		ETag:   `"etag-2"`,
		Fields: map[string]any{"Title": "301024", "Name": "Siti"},
	}}
	repo := NewUserRepo(api, newTestResolver())

	user, err := repo.Get(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "301024", user.UserID)
	assert.Empty(t, user.ODataEtag)
}

func TestUserRepo_Create(t *testing.T) {
	api := &fakeItemAPI{created: Item{ID: "9"}}
	repo := NewUserRepo(api, newTestResolver())

	created, err := repo.Create(context.Background(), model.User{
		UserID: "301023", Name: "Ali", Status: "Active", Group: "",
	})
	require.NoError(t, err)

	assert.Equal(t, "9", created.ID)
	assert.Equal(t, map[string]any{
		"Title":  "301023",
		"Name":   "Ali",
		"Status": "Active",
		"Group":  "",
	}, api.createdColumns)
}

func TestUserRepo_Update_SendsOnlyPresentFields(t *testing.T) {
	api := &fakeItemAPI{}
	repo := NewUserRepo(api, newTestResolver())

	err := repo.Update(context.Background(), "3", model.UserUpdate{Status: strptr("Inactive")})
	require.NoError(t, err)

	assert.Equal(t, "3", api.updatedItemID)
	assert.Equal(t, map[string]any{"Status": "Inactive"}, api.updatedColumns)
}

func TestUserRepo_Delete(t *testing.T) {
	api := &fakeItemAPI{}
	repo := NewUserRepo(api, newTestResolver())

	require.NoError(t, repo.Delete(context.Background(), "4"))
	assert.Equal(t, "4", api.deletedItemID)
}

func TestUserRepo_ResolutionFailureShortCircuits(t *testing.T) {
	fake := &fakeSiteLookup{siteID: "site-1", lists: nil}
	resolver := NewResolver(fake, "contoso.sharepoint.com", "Staff Users", testLogger())
	api := &fakeItemAPI{}
	repo := NewUserRepo(api, resolver)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrListNotFound)
	assert.Empty(t, api.gotListID, "no item operation may run when resolution fails")
}

func TestEventRepo_List(t *testing.T) {
	api := &fakeItemAPI{items: []Item{
		{ID: "1", Fields: map[string]any{"Title": "Townhall", "EventDate": "2024-03-01"}},
	}}
	repo := NewEventRepo(api, newTestResolver())

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, model.Event{
		"id":        "1",
		"Title":     "Townhall",
		"EventDate": "2024-03-01",
	}, events[0])
}

func TestEventRepo_ListError(t *testing.T) {
	api := &fakeItemAPI{err: errors.New("boom")}
	repo := NewEventRepo(api, newTestResolver())

	_, err := repo.List(context.Background())
	assert.Error(t, err)
}
