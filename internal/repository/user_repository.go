package repository

import (
	"github.com/galeriaviva/gallery-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsernameOrEmail finds a user by exact username or email match
func (r *GormUserRepository) FindByUsernameOrEmail(identifier string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? OR email = ?", identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsernameOrEmail reports whether a user with the username or email exists
func (r *GormUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

// AddFavorite inserts a favorite pair. The composite primary key makes a
// concurrent duplicate insert a no-op rather than an error; the returned
// bool reports whether a row was actually inserted.
func (r *GormUserRepository) AddFavorite(favorite *models.Favorite) (bool, error) {
	result := r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// RemoveFavorite deletes a favorite pair; returns false if no row was deleted
func (r *GormUserRepository) RemoveFavorite(userID, artworkID uint64) (bool, error) {
	result := r.db.
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IsFavorite reports whether the favorite pair exists
func (r *GormUserRepository) IsFavorite(userID, artworkID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND artwork_id = ?", userID, artworkID).
		Count(&count).Error
	return count > 0, err
}

// ListFavoriteArtworks lists a user's favorited artworks, newest-favorited first
func (r *GormUserRepository) ListFavoriteArtworks(userID uint64) ([]models.Artwork, error) {
	var artworks []models.Artwork
	err := r.db.Model(&models.Artwork{}).
		Select("artworks.*, COUNT(likes.artwork_id) AS like_count").
		Joins("JOIN favorites ON favorites.artwork_id = artworks.id AND favorites.user_id = ?", userID).
		Joins("LEFT JOIN likes ON likes.artwork_id = artworks.id").
		Group("artworks.id, favorites.created_at").
		Order("favorites.created_at DESC").
		Find(&artworks).Error
	if err != nil {
		return nil, err
	}
	return artworks, nil
}
