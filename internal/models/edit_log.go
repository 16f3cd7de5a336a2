package models

import (
	"fmt"
	"time"
)

// EditLog is one field-level change recorded when a revision is
// edited. Rows are append-only: never updated, never deleted.
type EditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RevisionID uint   `gorm:"not null;index" json:"revision_id"`
	Field      string `gorm:"size:50;not null" json:"field"`

	PreviousValue string `gorm:"type:text" json:"previous_value"`
	NewValue      string `gorm:"type:text" json:"new_value"`

	Editor string `gorm:"size:100;not null" json:"editor"`

	CreatedAt time.Time `json:"created_at"`
}

// LegacyPrevious renders the tag-encoded form older exports used,
// where the owning record was recovered by parsing the prefix.
func (e EditLog) LegacyPrevious() string {
	return fmt.Sprintf("[%d] %s: %s", e.RevisionID, e.Field, e.PreviousValue)
}

// LegacyNew is the tag-encoded rendering of the new value.
func (e EditLog) LegacyNew() string {
	return fmt.Sprintf("[%d] %s: %s", e.RevisionID, e.Field, e.NewValue)
}
