package handlers

import (
	"net/http"

	slotRepo "washex/database/repository/slot"
	"washex/utils"

	"github.com/gin-gonic/gin"
)

// SlotHandler exposes pickup/delivery slot lookups.
type SlotHandler struct {
	Repo slotRepo.SlotRepository
}

// NewSlotHandler creates a SlotHandler.
func NewSlotHandler(repo slotRepo.SlotRepository) *SlotHandler {
	return &SlotHandler{Repo: repo}
}

// ListSlotsHandler handles GET /api/slots?kind=pickup|delivery.
func (h *SlotHandler) ListSlotsHandler(c *gin.Context) {
	slots, err := h.Repo.GetAll(c.Request.Context(), c.Query("kind"))
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
