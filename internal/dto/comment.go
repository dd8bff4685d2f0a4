package dto

import (
	"time"

	"github.com/galeriaviva/gallery-api/internal/models"
)

// CommentDTO represents a comment in API responses
type CommentDTO struct {
	ID          uint64    `json:"id"`
	ArtworkID   uint64    `json:"artwork_id"`
	UserID      uint64    `json:"user_id"`
	Username    string    `json:"username"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToCommentDTO converts a comment to DTO
func ToCommentDTO(comment models.Comment) CommentDTO {
	return CommentDTO{
		ID:          comment.ID,
		ArtworkID:   comment.ArtworkID,
		UserID:      comment.UserID,
		Username:    comment.Username,
		CommentText: comment.CommentText,
		CreatedAt:   comment.CreatedAt,
	}
}

// ToCommentDTOs converts a slice of comments to DTOs
func ToCommentDTOs(comments []models.Comment) []CommentDTO {
	dtos := make([]CommentDTO, len(comments))
	for i, comment := range comments {
		dtos[i] = ToCommentDTO(comment)
	}
	return dtos
}
