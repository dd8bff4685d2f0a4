package dto

import (
	"time"

	"github.com/galeriaviva/gallery-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID              uint64    `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	ProfileImageURL *string   `json:"profile_image_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToUserDTO converts a user to DTO, omitting credentials
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
		CreatedAt:       user.CreatedAt,
	}
}
