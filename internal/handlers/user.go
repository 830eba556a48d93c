package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pleone55/CS493-Final/internal/dto"
	apierrors "github.com/pleone55/CS493-Final/internal/errors"
	"github.com/pleone55/CS493-Final/internal/repository"
	"gorm.io/gorm"
)

// UserHandler serves the read/delete routes over users created by the
// OAuth callback. There is no create or update route.
type UserHandler struct {
	users repository.UserRepository
}

func NewUserHandler(users repository.UserRepository) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

// ListUsers returns all users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.FindAll()
	if err != nil {
		apierrors.InternalError(c, "Could not receive users")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserDTOs(users, requestBaseURL(c)))
}

// GetUser returns a single user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c.Param("user_id"))
	if !ok {
		apierrors.NotFound(c, "No user with user_id exists")
		return
	}

	user, err := h.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "No user with user_id exists")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user, requestBaseURL(c)))
}

// DeleteUser removes a user record
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c.Param("user_id"))
	if !ok {
		apierrors.NotFound(c, "User with user_id not found")
		return
	}

	if _, err := h.users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apierrors.NotFound(c, "User with user_id not found")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	if err := h.users.Delete(id); err != nil {
		apierrors.InternalError(c, "Could not delete user")
		return
	}

	c.Status(http.StatusNoContent)
}
