package models

// AdminUser is the identity payload carried in the session token and
// returned by the login and whoami endpoints.
type AdminUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
