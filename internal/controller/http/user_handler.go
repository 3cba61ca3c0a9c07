package http

import (
	"net/http"

	"snapblog/internal/usecase"
	"snapblog/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Bio      string `json:"bio"`
}

// ListUsers godoc
// @Summary      List users
// @Description  Get all users with their posts. Admin only.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	callerID := c.GetString("user_id")
	callerIsAdmin := c.GetBool("is_admin")

	users, err := h.userUseCase.ListUsers(callerID, callerIsAdmin)
	if err != nil {
		h.logger.Error("Failed to list users: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// CountUsers godoc
// @Summary      Count users
// @Description  Get total number of registered users. Admin only.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/count [get]
func (h *UserHandler) CountUsers(c *gin.Context) {
	callerID := c.GetString("user_id")
	callerIsAdmin := c.GetBool("is_admin")

	count, err := h.userUseCase.CountUsers(callerID, callerIsAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetUser godoc
// @Summary      Get user by ID
// @Description  Get a user's public profile with their posts
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200  {object}  entity.User
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")

	user, err := h.userUseCase.GetUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary      Update user
// @Description  Update username, password or bio. Users can only update their own account.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body UpdateUserRequest true "Fields to update"
// @Success      200  {object}  entity.User
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	userID := c.Param("id")
	callerID := c.GetString("user_id")
	callerIsAdmin := c.GetBool("is_admin")

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var username, password, bio *string
	if req.Username != "" {
		username = &req.Username
	}
	if req.Password != "" {
		password = &req.Password
	}
	if req.Bio != "" {
		bio = &req.Bio
	}

	user, err := h.userUseCase.UpdateUser(userID, callerID, callerIsAdmin, username, password, bio)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UploadProfilePhoto godoc
// @Summary      Upload profile photo
// @Description  Upload or replace the authenticated user's profile photo
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image formData file true "Profile photo (jpg/jpeg/png/gif)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/profile-photo-upload [post]
func (h *UserHandler) UploadProfilePhoto(c *gin.Context) {
	userID := c.GetString("user_id")

	path, contentType, cleanup, err := saveTempImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	defer cleanup()

	photo, err := h.userUseCase.UploadProfilePhoto(c.Request.Context(), userID, path, contentType)
	if err != nil {
		h.logger.Error("Failed to upload profile photo: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Profile photo updated successfully",
		"profile_photo": photo,
	})
}

// DeleteUser godoc
// @Summary      Delete user
// @Description  Delete an account with all its posts, comments and uploaded images. Owner or admin only.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")
	callerID := c.GetString("user_id")
	callerIsAdmin := c.GetBool("is_admin")

	if err := h.userUseCase.DeleteUser(c.Request.Context(), userID, callerID, callerIsAdmin); err != nil {
		h.logger.Error("Failed to delete user: %v", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
