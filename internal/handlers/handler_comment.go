package handlers

import (
	"net/http"

	"github.com/devlogkr/blog_backend/internal/core/domain"
	portssvc "github.com/devlogkr/blog_backend/internal/core/ports/services"
	"github.com/devlogkr/blog_backend/internal/dto"
	"github.com/devlogkr/blog_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CommentHandler handles comment CRUD and reaction requests.
type CommentHandler struct {
	commentService portssvc.CommentSvcFacade
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(cs portssvc.CommentSvcFacade) *CommentHandler {
	return &CommentHandler{commentService: cs}
}

// ListComments godoc
// @Summary List a post's comments
// @Description Returns the comments of a post, most recent first.
// @Tags comments
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.Envelope{data=dto.ListCommentsResponse}
// @Failure 404 {object} dto.Envelope
// @Router /posts/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentService.ListComments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "comments fetched", dto.ToListCommentsResponse(comments))
}

// CreateComment godoc
// @Summary Comment on a post
// @Description Adds a comment to an existing post.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param comment body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} dto.Envelope{data=dto.CommentResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "comment created", dto.ToCommentResponse(comment))
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Deletes a comment. Only the author may delete.
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "comment deleted", nil)
}

func (h *CommentHandler) toggleReaction(c *gin.Context, kind domain.ReactionKind) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	result, err := h.commentService.ToggleReaction(c.Request.Context(), c.Param("id"), userID, kind)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "reaction toggled", dto.ToggleReactionResponse{
		LikesCount:    result.LikeCount,
		DislikesCount: result.DislikeCount,
		IsActive:      result.Active,
	})
}

// ToggleCommentLike godoc
// @Summary Toggle a like on a comment
// @Description Adds the caller's like if absent, removes it if present. Likes and dislikes toggle independently.
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} dto.Envelope{data=dto.ToggleReactionResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /comments/{id}/like [post]
func (h *CommentHandler) ToggleCommentLike(c *gin.Context) {
	h.toggleReaction(c, domain.ReactionLike)
}

// ToggleCommentDislike godoc
// @Summary Toggle a dislike on a comment
// @Description Adds the caller's dislike if absent, removes it if present. Likes and dislikes toggle independently.
// @Tags comments
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} dto.Envelope{data=dto.ToggleReactionResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /comments/{id}/dislike [post]
func (h *CommentHandler) ToggleCommentDislike(c *gin.Context) {
	h.toggleReaction(c, domain.ReactionDislike)
}
