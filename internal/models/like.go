package models

import "time"

// Like records that a user liked an artwork. The composite primary key is the
// uniqueness constraint that turns concurrent toggles into a deterministic
// outcome: a second insert for the same pair fails instead of duplicating.
type Like struct {
	ArtworkID uint64    `gorm:"primarykey" json:"artwork_id"`
	UserID    uint64    `gorm:"primarykey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Artwork Artwork `gorm:"foreignKey:ArtworkID" json:"artwork,omitempty"`
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
