package handlers

import (
	"errors"
	"net/http"

	"Loyalty/internal/auth"
	"Loyalty/internal/dto"
	"Loyalty/internal/service"

	"github.com/gin-gonic/gin"
)

// PagesHandler renders the view model pages are built from: auth state, the
// full user composite and the pending flash message. Templating itself lives
// on the client side.
type PagesHandler struct {
	sessions auth.Sessions
	userSvc  *service.UserService
}

// NewPagesHandler returns a new PagesHandler.
func NewPagesHandler(sessions auth.Sessions, userSvc *service.UserService) *PagesHandler {
	return &PagesHandler{sessions: sessions, userSvc: userSvc}
}

// Render godoc
// @Summary      Page view model
// @Tags         pages
// @Produce      json
// @Success      200  {object}  dto.PageResponse
// @Router       / [get]
func (h *PagesHandler) Render(c *gin.Context) {
	resp := dto.PageResponse{Flash: takeFlash(c)}

	sessionID, err := c.Cookie(auth.SessionCookieName)
	if err != nil || sessionID == "" {
		c.JSON(http.StatusOK, resp)
		return
	}
	userID, ok := h.sessions.GetUserID(c.Request.Context(), sessionID)
	if !ok {
		c.JSON(http.StatusOK, resp)
		return
	}

	fu, err := h.userSvc.FullUser(c.Request.Context(), userID)
	if err != nil {
		// The session resolved but the rows are gone: data inconsistency,
		// not a recoverable request error.
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "account data missing"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load account"})
		return
	}
	resp.LoggedIn = true
	resp.User, resp.Points = dto.FullUserToResponse(fu)
	c.JSON(http.StatusOK, resp)
}
