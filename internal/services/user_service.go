package services

import (
	"errors"
	"fmt"

	"github.com/galeriaviva/gallery-api/internal/models"
	"github.com/galeriaviva/gallery-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrFavoriteExists   = errors.New("artwork is already in favorites")
	ErrFavoriteNotFound = errors.New("artwork is not in favorites")
)

// UserService handles profiles and favorites.
type UserService struct {
	userRepo    repository.UserRepository
	artworkRepo repository.ArtworkRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, artworkRepo repository.ArtworkRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		artworkRepo: artworkRepo,
	}
}

// GetProfile retrieves a user's public profile.
func (s *UserService) GetProfile(userID uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListFavorites returns a user's favorited artworks, newest-favorited first.
func (s *UserService) ListFavorites(userID uint64) ([]models.Artwork, error) {
	artworks, err := s.userRepo.ListFavoriteArtworks(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return artworks, nil
}

// AddFavorite records an artwork as a favorite; adding an existing favorite
// is a conflict, including the case where a concurrent add won the race.
func (s *UserService) AddFavorite(userID, artworkID uint64) error {
	if _, err := s.artworkRepo.FindByID(artworkID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrArtworkNotFound
		}
		return fmt.Errorf("failed to find artwork: %w", err)
	}

	inserted, err := s.userRepo.AddFavorite(&models.Favorite{UserID: userID, ArtworkID: artworkID})
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	if !inserted {
		return ErrFavoriteExists
	}

	return nil
}

// RemoveFavorite deletes a favorite; removing an absent one is not found.
func (s *UserService) RemoveFavorite(userID, artworkID uint64) error {
	deleted, err := s.userRepo.RemoveFavorite(userID, artworkID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if !deleted {
		return ErrFavoriteNotFound
	}

	return nil
}

// IsFavorite reports whether the artwork is in the user's favorites.
func (s *UserService) IsFavorite(userID, artworkID uint64) (bool, error) {
	isFavorite, err := s.userRepo.IsFavorite(userID, artworkID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return isFavorite, nil
}
