package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is the employer a job is posted for. The job core only reads it.
type Company struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:text;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Website     string    `gorm:"type:text" json:"website"`
	Location    string    `gorm:"type:text" json:"location"`
	Logo        *string   `gorm:"type:text" json:"logo,omitempty"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner       *User     `gorm:"foreignKey:OwnerID;references:ID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate assigns a fresh id when none was set
func (c *Company) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
