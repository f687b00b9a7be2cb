package service

import (
	"fmt"
	"sort"
	"time"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/database/models"
	apperrors "medcheck-backend/internal/errors"
	"medcheck-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MedicationErrorService handles business logic for medication error reports
// and their derived metrics.
type MedicationErrorService struct {
	merrs     repository.MedicationErrorRepositoryInterface
	entries   repository.ChecklistEntryRepositoryInterface
	validator *validator.Validate
}

// NewMedicationErrorService creates a new medication error service
func NewMedicationErrorService(
	merrs repository.MedicationErrorRepositoryInterface,
	entries repository.ChecklistEntryRepositoryInterface,
	validator *validator.Validate,
) *MedicationErrorService {
	return &MedicationErrorService{
		merrs:     merrs,
		entries:   entries,
		validator: validator,
	}
}

// ReportMedicationErrorRequest represents the payload to report an error
type ReportMedicationErrorRequest struct {
	ChecklistEntryID    *uuid.UUID `json:"checklist_entry_id,omitempty"`
	ErrorType           string     `json:"error_type" validate:"required,max=100"`
	Severity            string     `json:"severity" validate:"required"`
	Stage               string     `json:"stage" validate:"required"`
	Description         string     `json:"description,omitempty"`
	ContributingFactors string     `json:"contributing_factors,omitempty"`
	OccurredAt          *time.Time `json:"occurred_at,omitempty"`
	DetectedAt          *time.Time `json:"detected_at,omitempty"`
}

// ReportMedicationErrorResponse represents a successfully recorded report
type ReportMedicationErrorResponse struct {
	Message string                 `json:"message"`
	Report  models.MedicationError `json:"error"`
}

// MedicationErrorListResponse represents a filtered list of error reports
type MedicationErrorListResponse struct {
	Total  int                      `json:"total"`
	Errors []models.MedicationError `json:"errors"`
}

// ResolveMedicationErrorRequest represents the payload to close a report
type ResolveMedicationErrorRequest struct {
	ResolutionNotes string `json:"resolution_notes,omitempty"`
}

// ErrorMetricsResponse relates error volume to administration volume over a period
type ErrorMetricsResponse struct {
	PeriodDays        int            `json:"period_days"`
	Administrations   int            `json:"administrations"`
	Errors            int            `json:"errors"`
	ErrorRate         string         `json:"error_rate"`
	SeverityBreakdown map[string]int `json:"severity_breakdown"`
	TypeBreakdown     map[string]int `json:"type_breakdown"`
}

// TimelinePoint is one day of the error timeline
type TimelinePoint struct {
	Date   string `json:"date"`
	Total  int    `json:"total"`
	Severe int    `json:"severe"`
}

// ErrorTimelineResponse represents daily error counts over a period
type ErrorTimelineResponse struct {
	PeriodDays int             `json:"period_days"`
	Timeline   []TimelinePoint `json:"timeline"`
}

// GlobalErrorSummaryResponse aggregates error rates across all organizations
type GlobalErrorSummaryResponse struct {
	PeriodDays           int    `json:"period_days"`
	TotalErrors          int64  `json:"total_errors"`
	TotalAdministrations int64  `json:"total_administrations"`
	GlobalErrorRate      string `json:"global_error_rate"`
}

// Report records a new medication error for the principal's organization
func (s *MedicationErrorService) Report(principal auth.Principal, req *ReportMedicationErrorRequest) (*ReportMedicationErrorResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("error_type, severity and stage are required")
	}

	severity := models.Severity(req.Severity)
	if !severity.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown severity %q", req.Severity))
	}
	stage := models.Stage(req.Stage)
	if !stage.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown stage %q", req.Stage))
	}

	now := time.Now()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}
	detectedAt := now
	if req.DetectedAt != nil {
		detectedAt = *req.DetectedAt
	}

	merr := &models.MedicationError{
		OrganizationID:      principal.OrganizationID,
		ReportedByUserID:    principal.ID,
		ChecklistEntryID:    req.ChecklistEntryID,
		ErrorType:           req.ErrorType,
		Severity:            severity,
		Stage:               stage,
		Description:         req.Description,
		ContributingFactors: req.ContributingFactors,
		OccurredAt:          occurredAt,
		DetectedAt:          detectedAt,
	}

	if err := s.merrs.Create(merr); err != nil {
		return nil, fmt.Errorf("failed to create medication error: %w", err)
	}

	return &ReportMedicationErrorResponse{
		Message: "Error registrado",
		Report:  *merr,
	}, nil
}

// List retrieves error reports for an organization with filters applied
func (s *MedicationErrorService) List(orgID uuid.UUID, filter repository.MedicationErrorFilter) (*MedicationErrorListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}

	merrs, err := s.merrs.List(orgID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list medication errors: %w", err)
	}

	return &MedicationErrorListResponse{
		Total:  len(merrs),
		Errors: merrs,
	}, nil
}

// Resolve marks an error report as resolved with optional notes
func (s *MedicationErrorService) Resolve(orgID, id uuid.UUID, req *ResolveMedicationErrorRequest) (*MessageResponse, error) {
	merr, err := s.merrs.GetByID(orgID, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrMedicationErrorNotFound
		}
		return nil, fmt.Errorf("failed to get medication error: %w", err)
	}

	merr.Resolved = true
	merr.ResolutionNotes = req.ResolutionNotes
	if err := s.merrs.Update(merr); err != nil {
		return nil, fmt.Errorf("failed to update medication error: %w", err)
	}

	return &MessageResponse{Message: "Evento marcado como resuelto"}, nil
}

// Metrics computes the error rate against administrations plus severity and
// type breakdowns for the period.
func (s *MedicationErrorService) Metrics(orgID uuid.UUID, days int) (*ErrorMetricsResponse, error) {
	since := periodStart(days)

	administrations, err := s.entries.ListSince(orgID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist entries: %w", err)
	}
	merrs, err := s.merrs.ListSince(orgID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list medication errors: %w", err)
	}

	severityBreakdown := make(map[string]int)
	typeBreakdown := make(map[string]int)
	for _, merr := range merrs {
		severityBreakdown[string(merr.Severity)]++
		typeBreakdown[merr.ErrorType]++
	}

	return &ErrorMetricsResponse{
		PeriodDays:        days,
		Administrations:   len(administrations),
		Errors:            len(merrs),
		ErrorRate:         percentage(len(merrs), len(administrations)),
		SeverityBreakdown: severityBreakdown,
		TypeBreakdown:     typeBreakdown,
	}, nil
}

// Timeline computes daily error counts for the period, with a separate count
// of severe incidents (severe and sentinel), in chronological order.
func (s *MedicationErrorService) Timeline(orgID uuid.UUID, days int) (*ErrorTimelineResponse, error) {
	merrs, err := s.merrs.ListSince(orgID, periodStart(days))
	if err != nil {
		return nil, fmt.Errorf("failed to list medication errors: %w", err)
	}

	daily := make(map[string]*TimelinePoint)
	for _, merr := range merrs {
		day := merr.OccurredAt.Format("2006-01-02")
		point, ok := daily[day]
		if !ok {
			point = &TimelinePoint{Date: day}
			daily[day] = point
		}
		point.Total++
		if merr.Severity.IsSevere() {
			point.Severe++
		}
	}

	timeline := make([]TimelinePoint, 0, len(daily))
	for _, point := range daily {
		timeline = append(timeline, *point)
	}
	sort.Slice(timeline, func(i, j int) bool { return timeline[i].Date < timeline[j].Date })

	return &ErrorTimelineResponse{
		PeriodDays: days,
		Timeline:   timeline,
	}, nil
}

// GlobalSummary computes the error rate across every organization. Super
// admin only.
func (s *MedicationErrorService) GlobalSummary(days int) (*GlobalErrorSummaryResponse, error) {
	since := periodStart(days)

	totalErrors, err := s.merrs.CountAllSince(since)
	if err != nil {
		return nil, fmt.Errorf("failed to count medication errors: %w", err)
	}
	totalAdministrations, err := s.entries.CountAllSince(since)
	if err != nil {
		return nil, fmt.Errorf("failed to count checklist entries: %w", err)
	}

	return &GlobalErrorSummaryResponse{
		PeriodDays:           days,
		TotalErrors:          totalErrors,
		TotalAdministrations: totalAdministrations,
		GlobalErrorRate:      percentage(int(totalErrors), int(totalAdministrations)),
	}, nil
}
