package repository

import (
	"github.com/galeriaviva/gallery-api/internal/models"
	"gorm.io/gorm"
)

// GormCommentRepository is a GORM implementation of CommentRepository
type GormCommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &GormCommentRepository{db: db}
}

// Create creates a new comment
func (r *GormCommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// ListByArtwork lists comments for an artwork with usernames, newest first
func (r *GormCommentRepository) ListByArtwork(artworkID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Model(&models.Comment{}).
		Select("comments.*, users.username AS username").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.artwork_id = ?", artworkID).
		Order("comments.created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
