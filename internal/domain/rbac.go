package domain

// Roles known to the HR desk. A user carries exactly one.
const (
	RoleAdmin  = "ADMIN"
	RoleHR     = "HR"
	RoleViewer = "VIEWER"
)

type EnforceRequest struct {
	Role     string `json:"role" binding:"required"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type RoleResponse struct {
	Name        string   `json:"name"`
	Inherits    []string `json:"inherits"`
	Permissions []string `json:"permissions"`
}

// IsKnownRole reports whether role is one of the fixed roles.
func IsKnownRole(role string) bool {
	switch role {
	case RoleAdmin, RoleHR, RoleViewer:
		return true
	}
	return false
}
