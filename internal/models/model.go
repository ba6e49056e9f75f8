package models

import (
	"time"

	"gorm.io/gorm"
)

// Model is the base model for all models of the expense backend.
//
// IDs are assigned by the collection store, increase monotonically and
// are never reused after a record is removed.
type Model struct {
	ID        uint64    `json:"id" gorm:"primaryKey" example:"4"`                // ID of the resource
	CreatedAt time.Time `json:"createdAt" example:"2024-04-02T19:28:44.491514Z"` // Time the resource was created
	UpdatedAt time.Time `json:"updatedAt" example:"2024-04-17T20:14:01.048145Z"` // Last time the resource was updated
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *Model) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}
