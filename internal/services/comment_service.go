package services

import (
	"errors"
	"fmt"

	"github.com/galeriaviva/gallery-api/internal/models"
	"github.com/galeriaviva/gallery-api/internal/repository"
	"github.com/galeriaviva/gallery-api/internal/utils"
	"gorm.io/gorm"
)

var ErrEmptyComment = errors.New("comment text is required")

// CommentService handles artwork comments.
type CommentService struct {
	commentRepo repository.CommentRepository
	artworkRepo repository.ArtworkRepository
	userRepo    repository.UserRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, artworkRepo repository.ArtworkRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		artworkRepo: artworkRepo,
		userRepo:    userRepo,
	}
}

// ListByArtwork returns an artwork's comments, newest first, each carrying
// the author's username.
func (s *CommentService) ListByArtwork(artworkID uint64) ([]models.Comment, error) {
	if _, err := s.artworkRepo.FindByID(artworkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to find artwork: %w", err)
	}

	comments, err := s.commentRepo.ListByArtwork(artworkID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// Create stores a new comment on the artwork and returns it with the
// author's username filled in.
func (s *CommentService) Create(artworkID, userID uint64, text string) (*models.Comment, error) {
	text = utils.SanitizeText(text)
	if text == "" {
		return nil, ErrEmptyComment
	}

	if _, err := s.artworkRepo.FindByID(artworkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtworkNotFound
		}
		return nil, fmt.Errorf("failed to find artwork: %w", err)
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	comment := &models.Comment{
		ArtworkID:   artworkID,
		UserID:      userID,
		CommentText: text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	comment.Username = user.Username

	return comment, nil
}
