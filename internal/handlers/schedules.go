package handlers

import (
	"github.com/gin-gonic/gin"

	"nursing-ward-server/internal/services"
	"nursing-ward-server/internal/utils"
)

// ScheduleHandler handles therapy schedule requests.
type ScheduleHandler struct {
	Schedules *services.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(schedules *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Schedules: schedules}
}

// CreateSchedule handles booking a therapy session.
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req services.CreateSessionInput
	if !utils.BindJSON(c, &req) {
		return
	}

	schedule, err := h.Schedules.Create(c.Request.Context(), req)
	if err != nil {
		utils.ServiceError(c, err, "Failed to create therapy schedule")
		return
	}
	utils.Created(c, schedule)
}

// GetSchedules lists all sessions with patient names and the derived
// delayed flag, earliest first.
func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	sessions, err := h.Schedules.List(c.Request.Context())
	if err != nil {
		utils.ServiceError(c, err, "Failed to fetch schedules")
		return
	}
	utils.Success(c, sessions)
}

// UpdateScheduleStatus handles moving a session to another status.
func (h *ScheduleHandler) UpdateScheduleStatus(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		return
	}
	var req services.UpdateStatusInput
	if !utils.BindJSON(c, &req) {
		return
	}

	schedule, err := h.Schedules.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		utils.ServiceError(c, err, "Failed to update status")
		return
	}
	utils.Success(c, schedule)
}
