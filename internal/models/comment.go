package models

import "time"

type Comment struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	ArtworkID   uint64    `gorm:"not null;index" json:"artwork_id"`
	UserID      uint64    `gorm:"not null" json:"user_id"`
	CommentText string    `gorm:"type:text;not null" json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`

	// Username is filled by joining users; it is not a stored column.
	Username string `gorm:"->;-:migration" json:"username,omitempty"`

	// Relations
	Artwork Artwork `gorm:"foreignKey:ArtworkID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}
