package repository

import "staff-user-service/internal/model"

// Column names of the staff list. This is the single place that knows the
// correspondence between REST field names and list columns; create and
// update both go through columnsFromUpdate so the mapping cannot drift.
const (
	colTitle    = "Title" // REST: userId
	colName     = "Name"
	colStatus   = "Status"
	colGroup    = "Group"
	colModified = "Modified" // REST: updatedDate, read-only
	colCreated  = "Created"  // REST: createdDate, read-only
)

// userFromItem projects a list item onto the REST user shape. Only the known
// columns are read; absent columns come out as zero values, never defaulted.
// The concurrency etag is included only on the list path (withETag), matching
// the original surface, and is informational only: writes never send it back.
func userFromItem(it Item, withETag bool) model.User {
	u := model.User{
		ID:          it.ID,
		UserID:      stringField(it.Fields, colTitle),
		Name:        stringField(it.Fields, colName),
		Status:      stringField(it.Fields, colStatus),
		Group:       stringField(it.Fields, colGroup),
		UpdatedDate: stringField(it.Fields, colModified),
		CreatedDate: stringField(it.Fields, colCreated),
	}
	if withETag {
		u.ODataEtag = it.ETag
	}
	return u
}

// columnsFromUpdate translates a partial update into list columns. Only
// fields present in the payload appear in the result, giving partial-update
// semantics downstream.
func columnsFromUpdate(upd model.UserUpdate) map[string]any {
	columns := map[string]any{}
	if upd.UserID != nil {
		columns[colTitle] = *upd.UserID
	}
	if upd.Name != nil {
		columns[colName] = *upd.Name
	}
	if upd.Status != nil {
		columns[colStatus] = *upd.Status
	}
	if upd.Group != nil {
		columns[colGroup] = *upd.Group
	}
	return columns
}

// columnsFromUser translates a full record for creation. Defaults have
// already been applied by the caller; every writable column is sent.
func columnsFromUser(u model.User) map[string]any {
	return columnsFromUpdate(model.UserUpdate{
		UserID: &u.UserID,
		Name:   &u.Name,
		Status: &u.Status,
		Group:  &u.Group,
	})
}

// stringField reads a column value from the expanded field payload. The SDK
// surfaces additional data values either as strings or as string pointers
// depending on the serializer version, so both are accepted.
func stringField(fields map[string]any, column string) string {
	switch v := fields[column].(type) {
	case string:
		return v
	case *string:
		if v != nil {
			return *v
		}
	}
	return ""
}
