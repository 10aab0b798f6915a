package handlers

import (
	"github.com/gin-gonic/gin"

	"nursing-ward-server/internal/services"
	"nursing-ward-server/internal/utils"
)

// ShiftHandler serves the read-only nurse roster.
type ShiftHandler struct {
	Roster services.RosterProvider
}

// NewShiftHandler creates a new ShiftHandler.
func NewShiftHandler(roster services.RosterProvider) *ShiftHandler {
	return &ShiftHandler{Roster: roster}
}

// GetShifts lists roster entries as provided.
func (h *ShiftHandler) GetShifts(c *gin.Context) {
	assignments, err := h.Roster.Assignments(c.Request.Context())
	if err != nil {
		utils.ServiceError(c, err, "Failed to fetch shifts")
		return
	}
	utils.Success(c, assignments)
}

// GetGroupedShifts lists roster entries grouped by shift label.
func (h *ShiftHandler) GetGroupedShifts(c *gin.Context) {
	groups, err := services.GroupedRoster(c.Request.Context(), h.Roster)
	if err != nil {
		utils.ServiceError(c, err, "Failed to fetch shifts")
		return
	}
	utils.Success(c, groups)
}
