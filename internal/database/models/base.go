package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for master records. The ID is a UUID string so the
// same value can serve as the Mongo _id and the Postgres primary key.
type BaseModel struct {
	ID        string    `json:"-" bson:"_id,omitempty" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"-" bson:"created_at"`
	UpdatedAt time.Time `json:"-" bson:"updated_at"`
}

// Stamp fills in the ID and timestamps for a record about to be inserted
func (base *BaseModel) Stamp(now time.Time) {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	return nil
}
