package dto

import (
	"time"

	"github.com/galeriaviva/gallery-api/internal/models"
	"github.com/galeriaviva/gallery-api/internal/utils"
)

// ArtworkDTO represents an artwork in API responses
type ArtworkDTO struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	ArtistName   string    `json:"artist_name"`
	Description  *string   `json:"description"`
	ImageURL     string    `json:"image_url"`
	CreationYear *int      `json:"creation_year"`
	Style        *string   `json:"style"`
	OwnerID      *uint64   `json:"owner_id"`
	LikeCount    int64     `json:"like_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ArtworkListResponse represents a paginated list of artworks
type ArtworkListResponse struct {
	Artworks   []ArtworkDTO             `json:"artworks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// LikeStatusDTO reports a user's like state for an artwork
type LikeStatusDTO struct {
	IsLiked   bool  `json:"is_liked"`
	LikeCount int64 `json:"like_count"`
}

// ToArtworkDTO converts an artwork to DTO
func ToArtworkDTO(artwork models.Artwork) ArtworkDTO {
	return ArtworkDTO{
		ID:           artwork.ID,
		Title:        artwork.Title,
		ArtistName:   artwork.ArtistName,
		Description:  artwork.Description,
		ImageURL:     artwork.ImageURL,
		CreationYear: artwork.CreationYear,
		Style:        artwork.Style,
		OwnerID:      artwork.OwnerID,
		LikeCount:    artwork.LikeCount,
		CreatedAt:    artwork.CreatedAt,
		UpdatedAt:    artwork.UpdatedAt,
	}
}

// ToArtworkDTOs converts a slice of artworks to DTOs
func ToArtworkDTOs(artworks []models.Artwork) []ArtworkDTO {
	dtos := make([]ArtworkDTO, len(artworks))
	for i, artwork := range artworks {
		dtos[i] = ToArtworkDTO(artwork)
	}
	return dtos
}
