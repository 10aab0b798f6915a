package handlers

import (
	"github.com/gin-gonic/gin"

	"nursing-ward-server/internal/services"
	"nursing-ward-server/internal/utils"
)

// PatientHandler handles patient directory requests.
type PatientHandler struct {
	Patients  *services.PatientService
	Schedules *services.ScheduleService
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(patients *services.PatientService, schedules *services.ScheduleService) *PatientHandler {
	return &PatientHandler{Patients: patients, Schedules: schedules}
}

// CreatePatient handles admitting a new patient.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req services.CreatePatientInput
	if !utils.BindJSON(c, &req) {
		return
	}

	patient, err := h.Patients.Create(c.Request.Context(), req)
	if err != nil {
		utils.ServiceError(c, err, "Database insert failed")
		return
	}
	utils.Created(c, patient)
}

// GetPatients lists patients, optionally filtered by ?search=.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	patients, err := h.Patients.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		utils.ServiceError(c, err, "Database read failed")
		return
	}
	utils.Success(c, patients)
}

// GetPatientByID handles fetching a single patient.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		return
	}

	patient, err := h.Patients.Get(c.Request.Context(), id)
	if err != nil {
		utils.ServiceError(c, err, "Database read failed")
		return
	}
	utils.Success(c, patient)
}

// UpdatePatient handles changing a patient's room number and/or care notes.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		return
	}
	var req services.UpdatePatientInput
	if !utils.BindJSON(c, &req) {
		return
	}

	patient, err := h.Patients.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.ServiceError(c, err, "Database update failed")
		return
	}
	utils.Success(c, patient)
}

// DeletePatient handles removing a patient. Unknown ids still get 204.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.Patients.Delete(c.Request.Context(), id); err != nil {
		utils.ServiceError(c, err, "Database delete failed")
		return
	}
	utils.NoContent(c)
}

// GetPatientSchedules lists one patient's therapy sessions, earliest first.
func (h *PatientHandler) GetPatientSchedules(c *gin.Context) {
	id, ok := utils.ParamID(c, "id")
	if !ok {
		return
	}

	sessions, err := h.Schedules.ListForPatient(c.Request.Context(), id)
	if err != nil {
		utils.ServiceError(c, err, "Failed to fetch schedules")
		return
	}
	utils.Success(c, sessions)
}
