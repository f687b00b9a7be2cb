package handlers

import (
	"net/http"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for compliance reports
type ReportHandler struct {
	service service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(service service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: service}
}

// QualityIndicators handles GET /reports/quality-indicators
// @Summary Compliance per safety check
// @Description Breaks compliance down across the ten checks of the protocol,
// @Description plus an overall rate counting entries where all ten passed.
// @Tags reports
// @Produce json
// @Param days query int false "Lookback period in days (default 30)"
// @Success 200 {object} service.QualityIndicatorsResponse "Quality indicators"
// @Security BearerAuth
// @Router /reports/quality-indicators [get]
func (h *ReportHandler) QualityIndicators(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.service.QualityIndicators(principal.OrganizationID, queryInt(c, "days", 30))
	if err != nil {
		respondError(c, err, "Failed to get quality indicators")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ComplianceByArea handles GET /reports/compliance-by-area
// @Summary Compliance grouped by clinical area
// @Tags reports
// @Produce json
// @Param days query int false "Lookback period in days (default 30)"
// @Success 200 {object} service.ComplianceByAreaResponse "Compliance by area"
// @Security BearerAuth
// @Router /reports/compliance-by-area [get]
func (h *ReportHandler) ComplianceByArea(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.service.ComplianceByArea(principal.OrganizationID, queryInt(c, "days", 30))
	if err != nil {
		respondError(c, err, "Failed to get compliance by area")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ComplianceTrend handles GET /reports/compliance-trend
// @Summary Daily compliance trend
// @Tags reports
// @Produce json
// @Param days query int false "Lookback period in days (default 30)"
// @Success 200 {object} service.ComplianceTrendResponse "Compliance trend"
// @Security BearerAuth
// @Router /reports/compliance-trend [get]
func (h *ReportHandler) ComplianceTrend(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.service.ComplianceTrend(principal.OrganizationID, queryInt(c, "days", 30))
	if err != nil {
		respondError(c, err, "Failed to get compliance trend")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Summary handles GET /reports/summary
// @Summary Headline compliance summary
// @Description Totals, compliance rate and shift/area distributions for a period.
// @Tags reports
// @Produce json
// @Param days query int false "Lookback period in days (default 30)"
// @Success 200 {object} service.ReportSummaryResponse "Summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.service.Summary(principal.OrganizationID, queryInt(c, "days", 30))
	if err != nil {
		respondError(c, err, "Failed to get summary")
		return
	}

	c.JSON(http.StatusOK, resp)
}
