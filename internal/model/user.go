package model

import "time"

// Role identifies what a user is allowed to do. Every user has exactly one.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleProvider Role = "provider"
	RoleCustomer Role = "customer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProvider, RoleCustomer:
		return true
	}
	return false
}

// User represents a registered user in the marketplace.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName    string    `json:"first_name" gorm:"size:100;not null"`
	LastName     string    `json:"last_name" gorm:"size:100;not null"`
	PhoneNumber  *string   `json:"phone_number,omitempty" gorm:"uniqueIndex;size:20"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;index"`
	IsActive     bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FullName returns the display name used for defaults such as a
// provider's initial business name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
