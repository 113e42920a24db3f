package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/samlamare/cafechill-api/internal/domain/enum"
)

// User represents a staff or admin account. Identity is established by
// an external provider (Google sign-in) or the local bootstrap admin;
// the ExternalUID is the provider's stable user id.
type User struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ExternalUID string          `gorm:"size:255;unique;not null" json:"external_uid"`
	Email       string          `gorm:"size:255;unique;not null" json:"email"`
	DisplayName *string         `gorm:"size:255" json:"display_name,omitempty"`
	PhoneNumber *string         `gorm:"size:50" json:"phone_number,omitempty"`
	Password    string          `gorm:"size:255" json:"-"` // only set for the local bootstrap admin
	Role        enum.UserRole   `gorm:"size:50;default:'staff'" json:"role"`
	Status      enum.UserStatus `gorm:"size:50;default:'pending';index" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Sales []Sale `gorm:"foreignKey:StaffUserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == enum.UserRoleAdmin
}

// IsApproved reports whether the account may access the staff area
func (u *User) IsApproved() bool {
	return u.Status == enum.UserStatusApproved
}
