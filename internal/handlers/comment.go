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

// CommentHandler coordinates comment-related HTTP handlers.
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// ListByArtwork returns an artwork's comments, newest first.
func (h *CommentHandler) ListByArtwork(c *gin.Context) {
	artworkID, err := strconv.ParseUint(c.Query("artwork_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid artwork ID")
		return
	}

	comments, err := h.commentService.ListByArtwork(artworkID)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentDTOs(comments))
}

// Create stores a new comment by the authenticated user.
func (h *CommentHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateCommentRequest struct {
		ArtworkID   uint64 `json:"artwork_id" binding:"required"`
		CommentText string `json:"comment_text" binding:"required"`
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.commentService.Create(req.ArtworkID, userID, req.CommentText)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment added successfully",
		"comment": dto.ToCommentDTO(*comment),
	})
}

func respondCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrEmptyComment):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrArtworkNotFound),
		errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
