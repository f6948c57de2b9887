package http

import "staff-user-service/internal/service"

// ValidateCreateUserRequest checks the presence of the two required fields.
// There is no further validation: status and group are freeform and the list
// accepts whatever the client sends.
func ValidateCreateUserRequest(req createUserRequest) error {
	if req.UserID == "" || req.Name == "" {
		return service.ErrBadRequest("userId and name are required")
	}
	return nil
}
