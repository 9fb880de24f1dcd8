// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles
const (
	// RoleApplicant is a job seeker that can apply to jobs
	RoleApplicant = "applicant"
	// RoleAdmin is a recruiter that posts and manages jobs
	RoleAdmin = "admin"
)

// User is the identity supplied by the authentication layer
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Fullname    string    `gorm:"type:text" json:"fullname"`
	Email       string    `gorm:"type:text;uniqueIndex;not null" json:"email"`
	PhoneNumber string    `gorm:"type:text" json:"phone_number"`
	Role        string    `gorm:"type:text;not null;check:role IN ('applicant', 'admin')" json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns a fresh id when none was set
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
