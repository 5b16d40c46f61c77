package models

import "time"

// DefaultMovedBy is recorded when a relocation omits the actor.
const DefaultMovedBy = "system"

// Movement is one immutable relocation audit record. ArtworkTitle is a
// snapshot taken at move time; it is not refreshed when the artwork is
// renamed later.
type Movement struct {
	ID           string    `gorm:"column:id;primaryKey"`
	ArtworkID    string    `gorm:"column:artwork_id;not null;index"`
	ArtworkTitle string    `gorm:"column:artwork_title;not null"`
	From         Location  `gorm:"embedded;embeddedPrefix:from_"`
	To           Location  `gorm:"embedded;embeddedPrefix:to_"`
	MovedBy      string    `gorm:"column:moved_by;not null;default:system"`
	Notes        string    `gorm:"column:notes;type:text"`
	Timestamp    time.Time `gorm:"column:timestamp;not null;index;autoCreateTime"`
}

// TableName implements the gorm table naming interface.
func (Movement) TableName() string {
	return "movements"
}
