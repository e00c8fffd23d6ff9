package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/monlivredecuisine/backend/internal/models"
	"github.com/monlivredecuisine/backend/internal/service"
)

// AdminHandler serves the privileged endpoints. All routes except
// MakeFirstAdmin sit behind the RequireAdmin middleware, which stores the
// loaded admin under "current_user".
type AdminHandler struct {
	admin *service.AdminService
}

func NewAdminHandler(admin *service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	actor := c.MustGet("current_user").(*models.User)
	if err := h.admin.DeleteUser(c.Request.Context(), actor, uint(userID)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) DeleteRecipe(c *gin.Context) {
	recipeID, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	if err := h.admin.DeleteRecipe(c.Request.Context(), recipeID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ToggleAdmin(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	actor := c.MustGet("current_user").(*models.User)
	user, err := h.admin.ToggleAdmin(c.Request.Context(), actor, uint(userID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// MakeFirstAdmin is the bootstrap path: any authenticated caller may claim
// the admin role while the system has none.
func (h *AdminHandler) MakeFirstAdmin(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := h.admin.PromoteFirstAdmin(c.Request.Context(), userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
