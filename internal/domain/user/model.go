package user

import "time"

// Role classifies what a user can do on the marketplace. It is assigned at
// registration and never changes afterwards.
type Role string

const (
	RoleAthlete    Role = "athlete"
	RoleBusiness   Role = "business"
	RoleCompliance Role = "compliance"
	RoleAdmin      Role = "admin"
)

func ParseRole(v string) (Role, bool) {
	switch Role(v) {
	case RoleAthlete, RoleBusiness, RoleCompliance, RoleAdmin:
		return Role(v), true
	default:
		return "", false
	}
}

// User is a registered account. PasswordHash and PasswordSalt hold the scrypt
// derivation output and the per-user random salt; neither ever leaves the
// service.
type User struct {
	ID           string
	Email        string
	Username     string
	FullName     string
	Role         Role
	PasswordHash []byte
	PasswordSalt []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal identifies the authenticated caller of a request.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}
