package handlers

import (
	"github.com/gin-gonic/gin"

	"nursing-ward-server/internal/services"
	"nursing-ward-server/internal/utils"
)

// VitalsHandler handles vital sign requests.
type VitalsHandler struct {
	Vitals *services.VitalsService
}

// NewVitalsHandler creates a new VitalsHandler.
func NewVitalsHandler(vitals *services.VitalsService) *VitalsHandler {
	return &VitalsHandler{Vitals: vitals}
}

// RecordVitals stores a reading. Responds 200 rather than 201; existing
// dashboard clients expect it.
func (h *VitalsHandler) RecordVitals(c *gin.Context) {
	var req services.RecordVitalsInput
	if !utils.BindJSON(c, &req) {
		return
	}

	reading, err := h.Vitals.Record(c.Request.Context(), req)
	if err != nil {
		utils.ServiceError(c, err, "Failed to add vital record")
		return
	}
	utils.Success(c, reading)
}

// GetVitals lists a patient's readings newest first.
func (h *VitalsHandler) GetVitals(c *gin.Context) {
	patientID, ok := utils.ParamID(c, "patientId")
	if !ok {
		return
	}

	readings, err := h.Vitals.List(c.Request.Context(), patientID)
	if err != nil {
		utils.ServiceError(c, err, "Failed to fetch vitals")
		return
	}
	utils.Success(c, readings)
}

// GetVitalsTrend returns a patient's readings as an oldest-first chart series.
func (h *VitalsHandler) GetVitalsTrend(c *gin.Context) {
	patientID, ok := utils.ParamID(c, "patientId")
	if !ok {
		return
	}

	trend, err := h.Vitals.Trend(c.Request.Context(), patientID)
	if err != nil {
		utils.ServiceError(c, err, "Failed to fetch vitals")
		return
	}
	utils.Success(c, trend)
}
