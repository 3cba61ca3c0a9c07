package http

import (
	"net/http"
	"strconv"

	"snapblog/internal/usecase"
	"snapblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	logger      *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, logger *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		logger:      logger,
	}
}

type CreatePostRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
	Category    string `form:"category"`
}

type UpdatePostRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// CreatePost godoc
// @Summary      Create a new post
// @Description  Create a post with a title, description, optional category and an image
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title formData string true "Post title"
// @Param        description formData string true "Post description"
// @Param        category formData string false "Post category"
// @Param        image formData file true "Post image (jpg/jpeg/png/gif)"
// @Success      201  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreatePostRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	path, contentType, cleanup, err := saveTempImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	defer cleanup()

	post, err := h.postUseCase.CreatePost(c.Request.Context(), userID, req.Title, req.Description, req.Category, path, contentType)
	if err != nil {
		h.logger.Error("Failed to create post: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// ListPosts godoc
// @Summary      List posts
// @Description  Get posts sorted by newest first, paginated 3 per page, with optional category filter
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        pageNumber query int false "Page number (starts at 1)"
// @Param        category query string false "Filter by category"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	pageNumber := 0
	if pageStr := c.Query("pageNumber"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			pageNumber = p
		}
	}
	category := c.Query("category")

	posts, err := h.postUseCase.ListPosts(pageNumber, category)
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "count": len(posts)})
}

// CountPosts godoc
// @Summary      Count posts
// @Description  Get total number of posts
// @Tags         posts
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Failure      500  {object}  map[string]string
// @Router       /posts/count [get]
func (h *PostHandler) CountPosts(c *gin.Context) {
	count, err := h.postUseCase.CountPosts()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetPost godoc
// @Summary      Get post by ID
// @Description  Get a single post with its author and comments
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	postID := c.Param("id")

	post, err := h.postUseCase.GetPost(postID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost godoc
// @Summary      Update post
// @Description  Update title, description or category. Only the author can update their own posts.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body UpdatePostRequest true "Fields to update"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	postID := c.Param("id")
	callerID := c.GetString("user_id")
	callerIsAdmin := c.GetBool("is_admin")

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var title, description, category *string
	if req.Title != "" {
		title = &req.Title
	}
	if req.Description != "" {
		description = &req.Description
	}
	if req.Category != "" {
		category = &req.Category
	}

	post, err := h.postUseCase.UpdatePost(postID, callerID, callerIsAdmin, title, description, category)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePostImage godoc
// @Summary      Replace post image
// @Description  Upload a new image for the post. The old asset is removed only after the new one is stored.
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        image formData file true "New post image (jpg/jpeg/png/gif)"
// @Success      200  {object}  entity.Post
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/update-image/{id} [put]
func (h *PostHandler) UpdatePostImage(c *gin.Context) {
	postID := c.Param("id")
	callerID := c.GetString("user_id")
	callerIsAdmin := c.GetBool("is_admin")

	path, contentType, cleanup, err := saveTempImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	defer cleanup()

	post, err := h.postUseCase.UpdatePostImage(c.Request.Context(), postID, callerID, callerIsAdmin, path, contentType)
	if err != nil {
		h.logger.Error("Failed to update post image: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost godoc
// @Summary      Delete post
// @Description  Delete a post with its comments and stored image. Author or admin only.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	postID := c.Param("id")
	callerID := c.GetString("user_id")
	callerIsAdmin := c.GetBool("is_admin")

	deletedID, err := h.postUseCase.DeletePost(c.Request.Context(), postID, callerID, callerIsAdmin)
	if err != nil {
		h.logger.Error("Failed to delete post: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully", "post_id": deletedID})
}

// LikePost godoc
// @Summary      Toggle like on a post
// @Description  Like a post, or remove the like if the caller already liked it
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.Post
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /posts/like/{id} [put]
func (h *PostHandler) LikePost(c *gin.Context) {
	postID := c.Param("id")
	callerID := c.GetString("user_id")

	post, err := h.postUseCase.ToggleLike(postID, callerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}
