package models

import (
	"time"
)

type User struct {
	ID              uint64    `gorm:"primarykey" json:"id"`
	Username        string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash    string    `gorm:"type:varchar(255);not null" json:"-"`
	ProfileImageURL *string   `gorm:"type:varchar(512)" json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relations
	Artworks  []Artwork  `gorm:"foreignKey:OwnerID" json:"-"`
	Likes     []Like     `gorm:"foreignKey:UserID" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:UserID" json:"-"`
	Comments  []Comment  `gorm:"foreignKey:UserID" json:"-"`
}
