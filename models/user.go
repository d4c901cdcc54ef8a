// user.go - Defines the User model for the database

package models

import "time"

// Roles a user can hold. Everything that is not an admin is an operator.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// User represents an account in the system. The password column holds a
// bcrypt hash and is never serialized.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null;default:operator" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
