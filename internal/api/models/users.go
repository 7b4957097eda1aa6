package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// ValidRole reports whether r is one of the three assignable roles.
func ValidRole(r Role) bool {
	return r == RoleUser || r == RoleModerator || r == RoleAdmin
}

type User struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:254;not null" json:"email"`
	FirstName string    `gorm:"size:150" json:"first_name"`
	LastName  string    `gorm:"size:150" json:"last_name"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Role      Role      `gorm:"size:20;default:'user';not null" json:"role"`
	IsStaff   bool      `gorm:"default:false;not null" json:"is_staff"`
	IsActive  bool      `gorm:"default:false;not null" json:"is_active"`
	// Bcrypt hash of the last issued confirmation code, never the code itself.
	ConfirmationCode *string   `gorm:"size:255" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds admin privileges, either through the
// admin role or the staff flag.
func (user *User) IsAdmin() bool {
	return user.Role == RoleAdmin || user.IsStaff
}

func (user *User) IsModerator() bool {
	return user.Role == RoleModerator
}
