package models

import (
	"time"
)

type Artwork struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Title        string    `gorm:"type:varchar(255);not null" json:"title"`
	ArtistName   string    `gorm:"type:varchar(255);not null;index" json:"artist_name"`
	Description  *string   `gorm:"type:text" json:"description"`
	ImageURL     string    `gorm:"type:varchar(512);not null" json:"image_url"`
	CreationYear *int      `json:"creation_year"`
	Style        *string   `gorm:"type:varchar(100);index" json:"style"`
	OwnerID      *uint64   `gorm:"index" json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// LikeCount is computed on read by joining likes; it is never stored.
	LikeCount int64 `gorm:"->;-:migration" json:"like_count"`

	// Relations
	Owner    *User     `gorm:"foreignKey:OwnerID" json:"-"`
	Likes    []Like    `gorm:"foreignKey:ArtworkID" json:"-"`
	Comments []Comment `gorm:"foreignKey:ArtworkID" json:"-"`
}
