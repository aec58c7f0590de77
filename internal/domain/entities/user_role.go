package entities

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// UserRole is a row of the user_roles table.
type UserRole struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}
