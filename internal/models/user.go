package models

// Role is a closed set of user roles
type Role string

// User role values
const (
	RoleUser               Role = "user"
	RoleAdmin              Role = "admin"
	RoleEmergencyResponder Role = "emergency_responder"
)

// Valid reports whether the role is one of the allowed values
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleEmergencyResponder:
		return true
	}
	return false
}

// User represents a user in the system
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never serialize password hash
	Role         Role   `json:"role"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token together with the claim fields
type LoginResponse struct {
	Token   string `json:"token"`
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	Message string `json:"message"`
}
