package models

import "time"

// Favorite has the same at-most-one invariant as Like but an independent
// lifecycle: unliking an artwork does not remove it from favorites.
type Favorite struct {
	UserID    uint64    `gorm:"primarykey" json:"user_id"`
	ArtworkID uint64    `gorm:"primarykey" json:"artwork_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Artwork Artwork `gorm:"foreignKey:ArtworkID" json:"artwork,omitempty"`
}
