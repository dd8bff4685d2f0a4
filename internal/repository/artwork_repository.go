package repository

import (
	"strings"

	"github.com/galeriaviva/gallery-api/internal/database"
	"github.com/galeriaviva/gallery-api/internal/models"
	"github.com/galeriaviva/gallery-api/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormArtworkRepository is a GORM implementation of ArtworkRepository
type GormArtworkRepository struct {
	db *gorm.DB
}

// NewArtworkRepository creates a new ArtworkRepository
func NewArtworkRepository(db *gorm.DB) ArtworkRepository {
	return &GormArtworkRepository{db: db}
}

// withLikeCount joins likes and exposes the aggregate as like_count.
func (r *GormArtworkRepository) withLikeCount() *gorm.DB {
	return r.db.Model(&models.Artwork{}).
		Select("artworks.*, COUNT(likes.artwork_id) AS like_count").
		Joins("LEFT JOIN likes ON likes.artwork_id = artworks.id").
		Group("artworks.id")
}

// applyFilter adds the search and filter conditions to a query. LOWER() keeps
// substring matching case-insensitive across mysql, postgres and sqlite.
func applyFilter(query *gorm.DB, filter ArtworkFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(artworks.title) LIKE ? OR LOWER(artworks.artist_name) LIKE ? OR LOWER(artworks.description) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if filter.Style != "" {
		query = query.Where("artworks.style = ?", filter.Style)
	}
	if filter.Artist != "" {
		pattern := "%" + strings.ToLower(filter.Artist) + "%"
		query = query.Where("LOWER(artworks.artist_name) LIKE ?", pattern)
	}
	return query
}

// Create creates a new artwork
func (r *GormArtworkRepository) Create(artwork *models.Artwork) error {
	return r.db.Create(artwork).Error
}

// FindByID finds an artwork by ID with its like count
func (r *GormArtworkRepository) FindByID(id uint64) (*models.Artwork, error) {
	var artwork models.Artwork
	if err := r.withLikeCount().
		Where("artworks.id = ?", id).
		First(&artwork).Error; err != nil {
		return nil, err
	}
	return &artwork, nil
}

// List retrieves artworks matching the filter, with the unpaginated total
func (r *GormArtworkRepository) List(filter ArtworkFilter) ([]models.Artwork, int64, error) {
	// Count on the filtered base query; counting the grouped join would
	// count groups per dialect quirks instead of rows.
	var total int64
	countQuery := applyFilter(r.db.Model(&models.Artwork{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := applyFilter(r.withLikeCount(), filter)

	switch filter.Sort {
	case SortPopular:
		listQuery = listQuery.Order("like_count DESC, artworks.created_at DESC")
	case SortTitle:
		listQuery = listQuery.Order("artworks.title ASC")
	default:
		listQuery = listQuery.Order("artworks.created_at DESC")
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Limit:  filter.PageSize,
			Offset: (filter.Page - 1) * filter.PageSize,
		}))
	}

	var artworks []models.Artwork
	if err := listQuery.Find(&artworks).Error; err != nil {
		return nil, 0, err
	}

	return artworks, total, nil
}

// ListByOwner lists artworks uploaded by a user, newest first
func (r *GormArtworkRepository) ListByOwner(ownerID uint64) ([]models.Artwork, error) {
	var artworks []models.Artwork
	err := r.withLikeCount().
		Where("artworks.owner_id = ?", ownerID).
		Order("artworks.created_at DESC").
		Find(&artworks).Error
	if err != nil {
		return nil, err
	}
	return artworks, nil
}

// Update persists changes to an artwork
func (r *GormArtworkRepository) Update(artwork *models.Artwork) error {
	return r.db.Save(artwork).Error
}

// DeleteWithDependents deletes likes, comments and the artwork row atomically.
// The image file is the caller's responsibility, after the commit.
func (r *GormArtworkRepository) DeleteWithDependents(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("artwork_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}

		if err := tx.Where("artwork_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Artwork{}, id).Error
	})
}

// ListStyles returns distinct, non-empty styles in ascending order
func (r *GormArtworkRepository) ListStyles() ([]string, error) {
	var styles []string
	err := r.db.Model(&models.Artwork{}).
		Distinct("style").
		Where("style IS NOT NULL AND style <> ''").
		Order("style ASC").
		Pluck("style", &styles).Error
	if err != nil {
		return nil, err
	}
	return styles, nil
}

// ListArtists returns distinct, non-empty artist names in ascending order
func (r *GormArtworkRepository) ListArtists() ([]string, error) {
	var artists []string
	err := r.db.Model(&models.Artwork{}).
		Distinct("artist_name").
		Where("artist_name IS NOT NULL AND artist_name <> ''").
		Order("artist_name ASC").
		Pluck("artist_name", &artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// InsertLike inserts a like pair. The composite primary key turns a racing
// duplicate insert into a no-op; the bool reports whether a row was inserted.
func (r *GormArtworkRepository) InsertLike(like *models.Like) (bool, error) {
	result := r.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(like)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteLike deletes a like pair; returns false if no row was deleted
func (r *GormArtworkRepository) DeleteLike(artworkID, userID uint64) (bool, error) {
	result := r.db.
		Where("artwork_id = ? AND user_id = ?", artworkID, userID).
		Delete(&models.Like{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// IsLiked reports whether the like pair exists
func (r *GormArtworkRepository) IsLiked(artworkID, userID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("artwork_id = ? AND user_id = ?", artworkID, userID).
		Count(&count).Error
	return count > 0, err
}

// CountLikes counts likes for an artwork
func (r *GormArtworkRepository) CountLikes(artworkID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("artwork_id = ?", artworkID).
		Count(&count).Error
	return count, err
}
