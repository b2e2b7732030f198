package handlers

import (
	"errors"
	"net/http"

	"Loyalty/internal/auth"
	"Loyalty/internal/dto"
	"Loyalty/internal/service"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile updates.
type ProfileHandler struct {
	userSvc *service.UserService
}

// NewProfileHandler returns a new ProfileHandler.
func NewProfileHandler(userSvc *service.UserService) *ProfileHandler {
	return &ProfileHandler{userSvc: userSvc}
}

// Update godoc
// @Summary      Update profile
// @Tags         profile
// @Accept       x-www-form-urlencoded
// @Param        email  formData  string  true   "Email"
// @Param        name   formData  string  false  "Display name"
// @Param        phone  formData  string  false  "Phone"
// @Success      303
// @Router       /profile [post]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.ProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		setFlash(c, "Invalid form")
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}
	if msg := validateProfile(req.Email); msg != "" {
		setFlash(c, msg)
		c.Redirect(http.StatusSeeOther, "/profile")
		return
	}
	userID := auth.UserIDFromContext(c)
	err := h.userSvc.UpdateProfile(c.Request.Context(), userID, req.Email, req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			setFlash(c, "Email taken")
			c.Redirect(http.StatusSeeOther, "/profile")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile update failed"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}
