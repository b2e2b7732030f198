package handlers

import (
	"net/http"

	"Loyalty/internal/dto"
	"Loyalty/internal/service"

	"github.com/gin-gonic/gin"
)

// StoresHandler serves the participating-store directory.
type StoresHandler struct {
	svc *service.StoreService
}

// NewStoresHandler returns a new StoresHandler.
func NewStoresHandler(svc *service.StoreService) *StoresHandler {
	return &StoresHandler{svc: svc}
}

// List godoc
// @Summary      Participating stores
// @Tags         stores
// @Produce      json
// @Success      200  {object}  dto.ListStoresResponse
// @Failure      500  {object}  map[string]string
// @Router       /stores [get]
func (h *StoresHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load store directory"})
		return
	}
	c.JSON(http.StatusOK, dto.ListStoresResponse{Items: list})
}
