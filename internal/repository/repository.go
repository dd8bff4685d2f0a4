package repository

import (
	"github.com/galeriaviva/gallery-api/internal/models"
)

// ArtworkSort enumerates the supported catalog orderings.
type ArtworkSort string

const (
	// SortNewest orders by creation time, newest first (the default).
	SortNewest ArtworkSort = "newest"
	// SortPopular orders by computed like count, highest first.
	SortPopular ArtworkSort = "popular"
	// SortTitle orders lexicographically by title.
	SortTitle ArtworkSort = "title"
)

// ArtworkFilter holds filtering options for listing artworks
type ArtworkFilter struct {
	Search   string
	Style    string
	Artist   string
	Sort     ArtworkSort
	Page     int
	PageSize int
}

// UserRepository defines the interface for user and favorite data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsernameOrEmail finds a user whose username or email equals identifier
	FindByUsernameOrEmail(identifier string) (*models.User, error)

	// ExistsByUsernameOrEmail reports whether a user with the username or email exists
	ExistsByUsernameOrEmail(username, email string) (bool, error)

	// AddFavorite inserts a favorite pair; returns false if it already existed
	AddFavorite(favorite *models.Favorite) (bool, error)

	// RemoveFavorite deletes a favorite pair; returns false if no row was deleted
	RemoveFavorite(userID, artworkID uint64) (bool, error)

	// IsFavorite reports whether the favorite pair exists
	IsFavorite(userID, artworkID uint64) (bool, error)

	// ListFavoriteArtworks lists a user's favorited artworks, newest-favorited first
	ListFavoriteArtworks(userID uint64) ([]models.Artwork, error)
}

// ArtworkRepository defines the interface for artwork and like data access.
// Every read includes the computed like_count.
type ArtworkRepository interface {
	// Create creates a new artwork
	Create(artwork *models.Artwork) error

	// FindByID finds an artwork by ID with its like count
	FindByID(id uint64) (*models.Artwork, error)

	// List retrieves artworks matching the filter, with total count for pagination
	List(filter ArtworkFilter) ([]models.Artwork, int64, error)

	// ListByOwner lists artworks uploaded by a user, newest first
	ListByOwner(ownerID uint64) ([]models.Artwork, error)

	// Update persists changes to an artwork
	Update(artwork *models.Artwork) error

	// DeleteWithDependents deletes likes, comments and the artwork row in one transaction
	DeleteWithDependents(id uint64) error

	// ListStyles returns distinct, non-empty styles in ascending order
	ListStyles() ([]string, error)

	// ListArtists returns distinct, non-empty artist names in ascending order
	ListArtists() ([]string, error)

	// InsertLike inserts a like pair; returns false if it already existed
	InsertLike(like *models.Like) (bool, error)

	// DeleteLike deletes a like pair; returns false if no row was deleted
	DeleteLike(artworkID, userID uint64) (bool, error)

	// IsLiked reports whether the like pair exists
	IsLiked(artworkID, userID uint64) (bool, error)

	// CountLikes counts likes for an artwork
	CountLikes(artworkID uint64) (int64, error)
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(comment *models.Comment) error

	// ListByArtwork lists comments for an artwork with usernames, newest first
	ListByArtwork(artworkID uint64) ([]models.Comment, error)
}
