package user

import "time"

const (
	RoleAdmin = "admin"
	RoleNone  = "none"
)

// User maps to the app_user table, keyed by email. Every caller who has
// ever signed in has a row; role defaults to none.
type User struct {
	Email     string    `db:"email" json:"email"`
	Name      string    `db:"name" json:"name"`
	Role      string    `db:"role" json:"role"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
