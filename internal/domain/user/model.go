package user

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role may use the admin console.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Email     string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string     `gorm:"size:255;not null" json:"-"`
	Name      string     `gorm:"size:100;not null" json:"name"`
	Phone     *string    `gorm:"size:30" json:"phone,omitempty"`
	Role      Role       `gorm:"size:20;not null;default:customer;index" json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Profile is the slice of the account that other components read.
type Profile struct {
	UserID uint    `json:"user_id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  *string `json:"phone,omitempty"`
}

func (u User) Profile() Profile {
	return Profile{UserID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}
