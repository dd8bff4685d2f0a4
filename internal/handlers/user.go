package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/galeriaviva/gallery-api/internal/dto"
	apierrors "github.com/galeriaviva/gallery-api/internal/errors"
	"github.com/galeriaviva/gallery-api/internal/middleware"
	"github.com/galeriaviva/gallery-api/internal/services"
)

// UserHandler coordinates user profile and favorites HTTP handlers.
type UserHandler struct {
	userService    *services.UserService
	artworkService *services.ArtworkService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, artworkService *services.ArtworkService) *UserHandler {
	return &UserHandler{
		userService:    userService,
		artworkService: artworkService,
	}
}

// HandleGet dispatches GET /api/users on the query parameters. The acting
// user is always the token subject.
func (h *UserHandler) HandleGet(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	switch c.Query("action") {
	case "favorites":
		h.listFavorites(c, userID)
	case "uploaded_artworks":
		h.listUploaded(c, userID)
	case "check_favorite":
		h.checkFavorite(c, userID)
	case "":
		h.getProfile(c, userID)
	default:
		apierrors.BadRequest(c, "Unknown action")
	}
}

// HandlePost dispatches POST /api/users on the action field. Any
// client-supplied user id is ignored in favor of the token subject.
func (h *UserHandler) HandlePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type FavoriteRequest struct {
		Action    string `json:"action" binding:"required"`
		ArtworkID uint64 `json:"artworkId" binding:"required"`
	}

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	switch req.Action {
	case "add_favorite":
		h.addFavorite(c, userID, req.ArtworkID)
	case "remove_favorite":
		h.removeFavorite(c, userID, req.ArtworkID)
	default:
		apierrors.BadRequest(c, "Unknown action")
	}
}

func (h *UserHandler) getProfile(c *gin.Context, actorID uint64) {
	targetID := actorID
	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user ID")
			return
		}
		targetID = id
	}

	user, err := h.userService.GetProfile(targetID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func (h *UserHandler) listFavorites(c *gin.Context, userID uint64) {
	artworks, err := h.userService.ListFavorites(userID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtworkDTOs(artworks))
}

func (h *UserHandler) listUploaded(c *gin.Context, userID uint64) {
	artworks, err := h.artworkService.ListUploaded(userID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtworkDTOs(artworks))
}

func (h *UserHandler) checkFavorite(c *gin.Context, userID uint64) {
	artworkID, err := strconv.ParseUint(c.Query("artwork_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid artwork ID")
		return
	}

	isFavorite, err := h.userService.IsFavorite(userID, artworkID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_favorite": isFavorite,
	})
}

func (h *UserHandler) addFavorite(c *gin.Context, userID, artworkID uint64) {
	if err := h.userService.AddFavorite(userID, artworkID); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Artwork added to favorites",
	})
}

func (h *UserHandler) removeFavorite(c *gin.Context, userID, artworkID uint64) {
	if err := h.userService.RemoveFavorite(userID, artworkID); err != nil {
		respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Artwork removed from favorites",
	})
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrArtworkNotFound),
		errors.Is(err, services.ErrFavoriteNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFavoriteExists):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
