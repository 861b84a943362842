package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/devlogkr/blog_backend/internal/apperrors"
	portssvc "github.com/devlogkr/blog_backend/internal/core/ports/services"
	"github.com/devlogkr/blog_backend/internal/dto"
	"github.com/devlogkr/blog_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// PostHandler handles post CRUD and like requests.
type PostHandler struct {
	postService portssvc.PostSvcFacade
	uploader    portssvc.UploaderSvcFacade
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(ps portssvc.PostSvcFacade, up portssvc.UploaderSvcFacade) *PostHandler {
	return &PostHandler{postService: ps, uploader: up}
}

// readUploadFiles buffers the "images" parts of a multipart request. A
// plain JSON request yields no files.
func readUploadFiles(c *gin.Context) ([]portssvc.UploadFile, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		// A body that does not parse is the client's fault, not ours.
		return nil, apperrors.NewValidationError("malformed multipart form data")
	}

	headers := form.File["images"]
	files := make([]portssvc.UploadFile, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file %q: %w", header.Filename, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded file %q: %w", header.Filename, err)
		}
		files = append(files, portssvc.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Data:        data,
		})
	}
	return files, nil
}

// storeUploads relays any attached images and returns their URLs.
func (h *PostHandler) storeUploads(c *gin.Context) ([]string, error) {
	files, err := readUploadFiles(c)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	return h.uploader.StoreAll(c.Request.Context(), files)
}

// ListPosts godoc
// @Summary List all posts
// @Description Returns every post, most recent first, with resolved authors and like counts.
// @Tags posts
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.ListPostsResponse}
// @Router /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "posts fetched", dto.ToListPostsResponse(posts))
}

// GetPost godoc
// @Summary Get a single post
// @Description Returns one post with its author, like count and liking users.
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.Envelope{data=dto.PostResponse}
// @Failure 404 {object} dto.Envelope
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postService.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "post fetched", dto.ToPostResponse(post))
}

// CreatePost godoc
// @Summary Create a post
// @Description Creates a post. Send JSON, or multipart form data with an "images" field to attach pictures.
// @Tags posts
// @Accept json
// @Accept mpfd
// @Produce json
// @Param post body dto.CreatePostRequest true "Post fields"
// @Success 201 {object} dto.Envelope{data=dto.PostResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 413 {object} dto.Envelope
// @Failure 415 {object} dto.Envelope
// @Security BearerAuth
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		bindingError(c, err)
		return
	}

	imageURLs, err := h.storeUploads(c)
	if err != nil {
		respondError(c, err)
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), userID, req, imageURLs)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, "post created", dto.ToPostResponse(post))
}

// UpdatePost godoc
// @Summary Update a post
// @Description Partially updates a post. Omitted fields keep their values; attached images are appended.
// @Tags posts
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path string true "Post ID"
// @Param post body dto.UpdatePostRequest true "Fields to change"
// @Success 200 {object} dto.Envelope{data=dto.PostResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		bindingError(c, err)
		return
	}

	imageURLs, err := h.storeUploads(c)
	if err != nil {
		respondError(c, err)
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), c.Param("id"), userID, req, imageURLs)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "post updated", dto.ToPostResponse(post))
}

// DeletePost godoc
// @Summary Delete a post
// @Description Deletes a post and its comments and likes. Only the author may delete.
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "post deleted", nil)
}

// ToggleLike godoc
// @Summary Toggle a like on a post
// @Description Adds the caller's like if absent, removes it if present, and reports the new state.
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.Envelope{data=dto.ToggleLikeResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("authentication required"))
		return
	}

	result, err := h.postService.ToggleLike(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, "like toggled", dto.ToggleLikeResponse{
		LikesCount: result.LikeCount,
		IsLiked:    result.Liked,
	})
}
