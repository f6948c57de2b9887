// Package model defines the REST-facing record shapes exposed by the service.
package model

// Status values recognised by the dashboard. The list column itself is not
// constrained, so unknown values pass through unchanged on read.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusPending  = "Pending"
)

// User is a staff record as exposed over the REST API. The id is issued by
// the underlying SharePoint list and is immutable after creation. Timestamps
// are owned by the list and passed through as returned, without reformatting.
type User struct {
	ID          string `json:"id"`
	ODataEtag   string `json:"odataEtag,omitempty"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Group       string `json:"group"`
	UpdatedDate string `json:"updatedDate,omitempty"`
	CreatedDate string `json:"createdDate,omitempty"`
}

// UserUpdate carries a partial update. Nil fields were absent from the
// incoming payload and must be omitted from the downstream request.
type UserUpdate struct {
	UserID *string `json:"userId"`
	Name   *string `json:"name"`
	Status *string `json:"status"`
	Group  *string `json:"group"`
}
