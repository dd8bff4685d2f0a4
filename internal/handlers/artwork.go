package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/galeriaviva/gallery-api/internal/dto"
	apierrors "github.com/galeriaviva/gallery-api/internal/errors"
	"github.com/galeriaviva/gallery-api/internal/middleware"
	"github.com/galeriaviva/gallery-api/internal/repository"
	"github.com/galeriaviva/gallery-api/internal/services"
	"github.com/galeriaviva/gallery-api/internal/utils"
)

// ArtworkHandler coordinates artwork-related HTTP handlers.
type ArtworkHandler struct {
	artworkService *services.ArtworkService
}

// NewArtworkHandler creates a new ArtworkHandler.
func NewArtworkHandler(artworkService *services.ArtworkService) *ArtworkHandler {
	return &ArtworkHandler{
		artworkService: artworkService,
	}
}

// HandleGet dispatches GET /api/artworks on the query parameters.
func (h *ArtworkHandler) HandleGet(c *gin.Context) {
	switch c.Query("action") {
	case "get_styles":
		h.listStyles(c)
	case "get_artists":
		h.listArtists(c)
	case "get_like_status":
		h.likeStatus(c)
	case "":
		if c.Query("id") != "" {
			h.getArtwork(c)
			return
		}
		h.listArtworks(c)
	default:
		apierrors.BadRequest(c, "Unknown action")
	}
}

// HandlePost dispatches POST /api/artworks on the action field. Upload and
// update actions arrive as multipart forms, the rest as JSON.
func (h *ArtworkHandler) HandlePost(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		switch c.PostForm("action") {
		case "upload_artwork":
			h.upload(c, userID)
		case "update_artwork":
			h.update(c, userID)
		default:
			apierrors.BadRequest(c, "Unknown action")
		}
		return
	}

	type ArtworkActionRequest struct {
		Action    string `json:"action" binding:"required"`
		ArtworkID uint64 `json:"artwork_id" binding:"required"`
	}

	var req ArtworkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	switch req.Action {
	case "toggle_like":
		h.toggleLike(c, req.ArtworkID, userID)
	case "delete_artwork":
		h.deleteArtwork(c, req.ArtworkID, userID)
	default:
		apierrors.BadRequest(c, "Unknown action")
	}
}

func (h *ArtworkHandler) getArtwork(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid artwork ID")
		return
	}

	artwork, err := h.artworkService.GetArtwork(id)
	if err != nil {
		respondArtworkError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToArtworkDTO(*artwork))
}

func (h *ArtworkHandler) listArtworks(c *gin.Context) {
	filter := repository.ArtworkFilter{
		Search: c.Query("search"),
		Style:  c.Query("style"),
		Artist: c.Query("artist"),
	}

	switch c.Query("sort") {
	case "popular":
		filter.Sort = repository.SortPopular
	case "title":
		filter.Sort = repository.SortTitle
	default:
		filter.Sort = repository.SortNewest
	}

	// The envelope only wraps explicitly paginated requests; the frontend's
	// plain listing expects a bare array.
	paginated := c.Query("page") != ""
	var params utils.PaginationParams
	if paginated {
		params = utils.GetPaginationParams(c)
		filter.Page = params.Page
		filter.PageSize = params.Limit
	}

	artworks, total, err := h.artworkService.ListArtworks(filter)
	if err != nil {
		respondArtworkError(c, err)
		return
	}

	if !paginated {
		c.JSON(http.StatusOK, dto.ToArtworkDTOs(artworks))
		return
	}

	c.JSON(http.StatusOK, dto.ArtworkListResponse{
		Artworks:   dto.ToArtworkDTOs(artworks),
		Pagination: utils.NewPaginationResponse(params, total),
	})
}

func (h *ArtworkHandler) listStyles(c *gin.Context) {
	styles, err := h.artworkService.ListStyles()
	if err != nil {
		respondArtworkError(c, err)
		return
	}
	if styles == nil {
		styles = []string{}
	}
	c.JSON(http.StatusOK, styles)
}

func (h *ArtworkHandler) listArtists(c *gin.Context) {
	artists, err := h.artworkService.ListArtists()
	if err != nil {
		respondArtworkError(c, err)
		return
	}
	if artists == nil {
		artists = []string{}
	}
	c.JSON(http.StatusOK, artists)
}

func (h *ArtworkHandler) likeStatus(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	artworkID, err := strconv.ParseUint(c.Query("artwork_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid artwork ID")
		return
	}

	isLiked, likeCount, err := h.artworkService.LikeStatus(artworkID, userID)
	if err != nil {
		respondArtworkError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeStatusDTO{
		IsLiked:   isLiked,
		LikeCount: likeCount,
	})
}

func (h *ArtworkHandler) upload(c *gin.Context, userID uint64) {
	file, err := c.FormFile("artwork_image")
	if err != nil {
		apierrors.BadRequest(c, "Artwork image is required")
		return
	}

	input := services.UploadArtworkInput{
		Title:        c.PostForm("title"),
		ArtistName:   c.PostForm("artist_name"),
		Description:  c.PostForm("description"),
		Style:        c.PostForm("style"),
		CreationYear: parseYear(c.PostForm("creation_year")),
		OwnerID:      userID,
		File:         file,
	}

	artwork, err := h.artworkService.Upload(input)
	if err != nil {
		respondArtworkError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Artwork uploaded successfully",
		"artwork_id": artwork.ID,
		"image_url":  artwork.ImageURL,
	})
}

func (h *ArtworkHandler) update(c *gin.Context, userID uint64) {
	artworkID, err := strconv.ParseUint(c.PostForm("artwork_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid artwork ID")
		return
	}

	input := services.UpdateArtworkInput{
		Title:        c.PostForm("title"),
		ArtistName:   c.PostForm("artist_name"),
		Description:  c.PostForm("description"),
		Style:        c.PostForm("style"),
		CreationYear: parseYear(c.PostForm("creation_year")),
	}
	// The image is optional on update; absence means keep the current file.
	if file, ferr := c.FormFile("artwork_image"); ferr == nil {
		input.File = file
	}

	artwork, err := h.artworkService.Update(artworkID, userID, input)
	if err != nil {
		respondArtworkError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Artwork updated successfully",
		"image_url": artwork.ImageURL,
	})
}

func (h *ArtworkHandler) deleteArtwork(c *gin.Context, artworkID, userID uint64) {
	if err := h.artworkService.Delete(artworkID, userID); err != nil {
		respondArtworkError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Artwork deleted successfully",
	})
}

func (h *ArtworkHandler) toggleLike(c *gin.Context, artworkID, userID uint64) {
	isLiked, likeCount, err := h.artworkService.ToggleLike(artworkID, userID)
	if err != nil {
		respondArtworkError(c, err)
		return
	}

	message := "Like removed"
	if isLiked {
		message = "Artwork liked"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    message,
		"is_liked":   isLiked,
		"like_count": likeCount,
	})
}

func parseYear(value string) *int {
	if value == "" {
		return nil
	}
	year, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}
	return &year
}

func respondArtworkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingArtworkFields),
		errors.Is(err, services.ErrFileTooLarge),
		errors.Is(err, services.ErrUnsupportedFileType):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrArtworkNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotArtworkOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrFailedToStoreImage),
		errors.Is(err, services.ErrFailedToSaveArtwork),
		errors.Is(err, services.ErrFailedToDeleteArtwork):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
