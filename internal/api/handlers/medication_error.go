package handlers

import (
	"net/http"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/repository"
	"medcheck-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MedicationErrorHandler handles HTTP requests for medication error reports
type MedicationErrorHandler struct {
	service service.MedicationErrorServiceInterface
}

// NewMedicationErrorHandler creates a new medication error handler
func NewMedicationErrorHandler(service service.MedicationErrorServiceInterface) *MedicationErrorHandler {
	return &MedicationErrorHandler{service: service}
}

// Report handles POST /errors
// @Summary Report a medication error
// @Tags errors
// @Accept json
// @Produce json
// @Param report body service.ReportMedicationErrorRequest true "Error report"
// @Success 201 {object} service.ReportMedicationErrorResponse "Recorded report"
// @Failure 400 {object} map[string]interface{} "Missing error_type, severity or stage"
// @Security BearerAuth
// @Router /errors [post]
func (h *MedicationErrorHandler) Report(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.ReportMedicationErrorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Report(principal, &req)
	if err != nil {
		respondError(c, err, "Error al registrar el evento")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List handles GET /errors
// @Summary List medication errors
// @Description Lists the organization's error reports, newest first, with
// @Description optional severity, type, stage, date and text filters.
// @Tags errors
// @Produce json
// @Param severity query string false "Filter by severity"
// @Param error_type query string false "Filter by error type"
// @Param stage query string false "Filter by process stage"
// @Param search query string false "Search in descriptions"
// @Param start_date query string false "Errors at or after this date"
// @Param end_date query string false "Errors at or before this date"
// @Param limit query int false "Page size (default 100)"
// @Success 200 {object} service.MedicationErrorListResponse "Error reports"
// @Security BearerAuth
// @Router /errors [get]
func (h *MedicationErrorHandler) List(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	filter := repository.MedicationErrorFilter{
		Severity:  c.Query("severity"),
		ErrorType: c.Query("error_type"),
		Stage:     c.Query("stage"),
		Search:    c.Query("search"),
		StartDate: queryDate(c, "start_date"),
		EndDate:   queryDate(c, "end_date"),
		Limit:     queryInt(c, "limit", 100),
	}

	resp, err := h.service.List(principal.OrganizationID, filter)
	if err != nil {
		respondError(c, err, "Error al obtener eventos")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Metrics handles GET /errors/metrics
// @Summary Medication error metrics
// @Description Relates error volume to administration volume for a period,
// @Description with severity and type breakdowns.
// @Tags errors
// @Produce json
// @Param days query int false "Lookback period in days (default 30)"
// @Success 200 {object} service.ErrorMetricsResponse "Metrics"
// @Security BearerAuth
// @Router /errors/metrics [get]
func (h *MedicationErrorHandler) Metrics(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.service.Metrics(principal.OrganizationID, queryInt(c, "days", 30))
	if err != nil {
		respondError(c, err, "Error al generar métricas")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Timeline handles GET /errors/timeline
// @Summary Daily medication error timeline
// @Tags errors
// @Produce json
// @Param days query int false "Lookback period in days (default 30)"
// @Success 200 {object} service.ErrorTimelineResponse "Timeline"
// @Security BearerAuth
// @Router /errors/timeline [get]
func (h *MedicationErrorHandler) Timeline(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.service.Timeline(principal.OrganizationID, queryInt(c, "days", 30))
	if err != nil {
		respondError(c, err, "Error al generar timeline")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Resolve handles POST /errors/:id/resolve
// @Summary Mark a medication error as resolved
// @Tags errors
// @Accept json
// @Produce json
// @Param id path string true "Error ID (UUID)"
// @Param resolution body service.ResolveMedicationErrorRequest false "Resolution notes"
// @Success 200 {object} service.MessageResponse "Marked resolved"
// @Failure 400 {object} map[string]interface{} "Invalid error ID"
// @Failure 404 {object} map[string]interface{} "Error report not found"
// @Security BearerAuth
// @Router /errors/{id}/resolve [post]
func (h *MedicationErrorHandler) Resolve(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid error ID: invalid UUID format"})
		return
	}

	// Empty bodies are fine; resolution notes are optional.
	var req service.ResolveMedicationErrorRequest
	_ = c.ShouldBindJSON(&req)

	resp, err := h.service.Resolve(principal.OrganizationID, id, &req)
	if err != nil {
		respondError(c, err, "Error al marcar resuelto")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GlobalSummary handles GET /errors/global/summary
// @Summary Global error rate across all organizations
// @Description Super admin only.
// @Tags errors
// @Produce json
// @Param days query int false "Lookback period in days (default 30)"
// @Success 200 {object} service.GlobalErrorSummaryResponse "Global summary"
// @Failure 403 {object} map[string]interface{} "Super admin required"
// @Security BearerAuth
// @Router /errors/global/summary [get]
func (h *MedicationErrorHandler) GlobalSummary(c *gin.Context) {
	resp, err := h.service.GlobalSummary(queryInt(c, "days", 30))
	if err != nil {
		respondError(c, err, "Error al generar resumen global")
		return
	}

	c.JSON(http.StatusOK, resp)
}
