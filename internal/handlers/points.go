package handlers

import (
	"errors"
	"net/http"

	"Loyalty/internal/auth"
	"Loyalty/internal/dto"
	"Loyalty/internal/service"

	"github.com/gin-gonic/gin"
)

// PointsHandler handles point accrual and the ledger view.
type PointsHandler struct {
	userSvc *service.UserService
}

// NewPointsHandler returns a new PointsHandler.
func NewPointsHandler(userSvc *service.UserService) *PointsHandler {
	return &PointsHandler{userSvc: userSvc}
}

// Add godoc
// @Summary      Add points for a store
// @Tags         points
// @Accept       x-www-form-urlencoded
// @Param        id      formData  string  true  "Store id"
// @Param        points  formData  int     true  "Point delta"
// @Success      303
// @Router       /points [post]
func (h *PointsHandler) Add(c *gin.Context) {
	var req dto.AddPointsRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid points form"})
		return
	}
	userID := auth.UserIDFromContext(c)
	if _, err := h.userSvc.AddPoints(c.Request.Context(), userID, req.StoreID, req.Points); err != nil {
		// A session that resolves to a user without a ledger row means the
		// data is inconsistent; nothing the visitor can do about it.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add points"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/list")
}

// Get godoc
// @Summary      Current points ledger
// @Tags         points
// @Produce      json
// @Success      200  {object}  dto.PointsResponse
// @Router       /points [get]
func (h *PointsHandler) Get(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	ledger, err := h.userSvc.Points(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "points ledger missing"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load points"})
		return
	}
	c.JSON(http.StatusOK, dto.PointsResponse{CardNumber: ledger.CardNumber, Stores: ledger.Stores})
}
