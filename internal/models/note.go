package models

import "time"

// Note is a free-standing comment tied to a casita, independent of
// any particular revision.
type Note struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Fecha   time.Time `json:"fecha"`
	Casita  string    `gorm:"size:10;not null;index" json:"casita"`
	Usuario string    `gorm:"size:100;not null" json:"usuario"`
	Nota    string    `gorm:"type:text;not null" json:"nota"`

	Evidencia string `gorm:"size:500" json:"evidencia"`

	CreatedAt time.Time `json:"created_at"`
}
