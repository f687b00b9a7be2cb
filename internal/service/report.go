package service

import (
	"fmt"
	"sort"
	"time"

	"medcheck-backend/internal/database/models"
	"medcheck-backend/internal/repository"

	"github.com/google/uuid"
)

// ReportService derives the quality indicator and compliance reports from
// recorded checklist entries. All percentages are rendered with two decimals;
// an empty denominator yields "0.00" rather than an error.
type ReportService struct {
	entries repository.ChecklistEntryRepositoryInterface
}

// NewReportService creates a new report service
func NewReportService(entries repository.ChecklistEntryRepositoryInterface) *ReportService {
	return &ReportService{entries: entries}
}

// ComplianceStat is a compliant/total pair with its percentage
type ComplianceStat struct {
	Compliant  int    `json:"compliant"`
	Total      int    `json:"total"`
	Percentage string `json:"percentage"`
}

// QualityIndicatorsResponse breaks compliance down per safety check
type QualityIndicatorsResponse struct {
	PeriodDays        int                       `json:"period_days"`
	TotalEntries      int                       `json:"total_entries"`
	OverallCompliance *ComplianceStat           `json:"overall_compliance,omitempty"`
	Indicators        map[string]ComplianceStat `json:"indicators"`
}

// AreaCompliance is the compliance of one clinical area
type AreaCompliance struct {
	Area       string `json:"area"`
	Total      int    `json:"total"`
	Compliant  int    `json:"compliant"`
	Percentage string `json:"percentage"`
}

// ComplianceByAreaResponse groups compliance by clinical area
type ComplianceByAreaResponse struct {
	PeriodDays int              `json:"period_days"`
	Areas      []AreaCompliance `json:"areas"`
}

// TrendPoint is one day of the compliance trend
type TrendPoint struct {
	Date       string `json:"date"`
	Total      int    `json:"total"`
	Compliant  int    `json:"compliant"`
	Percentage string `json:"percentage"`
}

// ComplianceTrendResponse tracks daily compliance over a period
type ComplianceTrendResponse struct {
	PeriodDays int          `json:"period_days"`
	Trend      []TrendPoint `json:"trend"`
}

// ReportSummaryResponse is the headline compliance summary for a period
type ReportSummaryResponse struct {
	PeriodDays     int            `json:"period_days"`
	TotalEntries   int            `json:"total_entries"`
	Compliant      int            `json:"compliant"`
	NonCompliant   int            `json:"non_compliant"`
	ComplianceRate string         `json:"compliance_rate"`
	ByShift        map[string]int `json:"by_shift"`
	ByArea         map[string]int `json:"by_area"`
}

// The ten safety checks, in protocol order.
var indicatorChecks = []struct {
	name string
	pass func(*models.ChecklistEntry) bool
}{
	{"paciente_correcto", func(e *models.ChecklistEntry) bool { return e.PacienteCorrecto }},
	{"medicamento_correcto", func(e *models.ChecklistEntry) bool { return e.MedicamentoCorrecto }},
	{"dosis_correcta", func(e *models.ChecklistEntry) bool { return e.DosisCorrecta }},
	{"via_correcta", func(e *models.ChecklistEntry) bool { return e.ViaCorrecta }},
	{"hora_correcta", func(e *models.ChecklistEntry) bool { return e.HoraCorrecta }},
	{"fecha_vencimiento_verificada", func(e *models.ChecklistEntry) bool { return e.FechaVencimientoVerificada }},
	{"educacion_paciente", func(e *models.ChecklistEntry) bool { return e.EducacionPaciente }},
	{"registro_correcto", func(e *models.ChecklistEntry) bool { return e.RegistroCorrecto }},
	{"alergias_verificadas", func(e *models.ChecklistEntry) bool { return e.AlergiasVerificadas }},
	{"responsabilidad_personal", func(e *models.ChecklistEntry) bool { return e.ResponsabilidadPersonal }},
}

// QualityIndicators computes per-check and overall compliance for the period.
// Overall compliance counts entries where all ten checks passed.
func (s *ReportService) QualityIndicators(orgID uuid.UUID, days int) (*QualityIndicatorsResponse, error) {
	entries, err := s.entries.ListSince(orgID, periodStart(days))
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist entries: %w", err)
	}

	total := len(entries)
	if total == 0 {
		return &QualityIndicatorsResponse{
			PeriodDays:   days,
			TotalEntries: 0,
			Indicators:   map[string]ComplianceStat{},
		}, nil
	}

	indicators := make(map[string]ComplianceStat, len(indicatorChecks))
	for _, check := range indicatorChecks {
		compliant := 0
		for i := range entries {
			if check.pass(&entries[i]) {
				compliant++
			}
		}
		indicators[check.name] = ComplianceStat{
			Compliant:  compliant,
			Total:      total,
			Percentage: percentage(compliant, total),
		}
	}

	allCorrect := 0
	for i := range entries {
		if entries[i].AllCorrect() {
			allCorrect++
		}
	}

	return &QualityIndicatorsResponse{
		PeriodDays:   days,
		TotalEntries: total,
		OverallCompliance: &ComplianceStat{
			Compliant:  allCorrect,
			Total:      total,
			Percentage: percentage(allCorrect, total),
		},
		Indicators: indicators,
	}, nil
}

// ComplianceByArea groups compliance by clinical area. Entries without an
// area fall under "Sin área". Areas are sorted alphabetically.
func (s *ReportService) ComplianceByArea(orgID uuid.UUID, days int) (*ComplianceByAreaResponse, error) {
	entries, err := s.entries.ListSince(orgID, periodStart(days))
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist entries: %w", err)
	}

	byArea := make(map[string]*AreaCompliance)
	for i := range entries {
		area := entries[i].Area
		if area == "" {
			area = "Sin área"
		}
		stat, ok := byArea[area]
		if !ok {
			stat = &AreaCompliance{Area: area}
			byArea[area] = stat
		}
		stat.Total++
		if entries[i].Cumple {
			stat.Compliant++
		}
	}

	areas := make([]AreaCompliance, 0, len(byArea))
	for _, stat := range byArea {
		stat.Percentage = percentage(stat.Compliant, stat.Total)
		areas = append(areas, *stat)
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i].Area < areas[j].Area })

	return &ComplianceByAreaResponse{
		PeriodDays: days,
		Areas:      areas,
	}, nil
}

// ComplianceTrend computes daily compliance in chronological order
func (s *ReportService) ComplianceTrend(orgID uuid.UUID, days int) (*ComplianceTrendResponse, error) {
	entries, err := s.entries.ListSince(orgID, periodStart(days))
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist entries: %w", err)
	}

	byDate := make(map[string]*TrendPoint)
	for i := range entries {
		date := entries[i].FechaHora.Format("2006-01-02")
		point, ok := byDate[date]
		if !ok {
			point = &TrendPoint{Date: date}
			byDate[date] = point
		}
		point.Total++
		if entries[i].Cumple {
			point.Compliant++
		}
	}

	trend := make([]TrendPoint, 0, len(byDate))
	for _, point := range byDate {
		point.Percentage = percentage(point.Compliant, point.Total)
		trend = append(trend, *point)
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })

	return &ComplianceTrendResponse{
		PeriodDays: days,
		Trend:      trend,
	}, nil
}

// Summary computes headline totals plus shift and area distributions.
// Entries without a shift fall under "Sin turno".
func (s *ReportService) Summary(orgID uuid.UUID, days int) (*ReportSummaryResponse, error) {
	entries, err := s.entries.ListSince(orgID, periodStart(days))
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist entries: %w", err)
	}

	total := len(entries)
	compliant := 0
	byShift := make(map[string]int)
	byArea := make(map[string]int)

	for i := range entries {
		if entries[i].Cumple {
			compliant++
		}

		shift := entries[i].Turno
		if shift == "" {
			shift = "Sin turno"
		}
		byShift[shift]++

		area := entries[i].Area
		if area == "" {
			area = "Sin área"
		}
		byArea[area]++
	}

	return &ReportSummaryResponse{
		PeriodDays:     days,
		TotalEntries:   total,
		Compliant:      compliant,
		NonCompliant:   total - compliant,
		ComplianceRate: percentage(compliant, total),
		ByShift:        byShift,
		ByArea:         byArea,
	}, nil
}

// percentage renders compliant/total as a percentage with two decimals.
// A zero denominator yields "0.00".
func percentage(compliant, total int) string {
	if total == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(compliant)/float64(total)*100)
}

// periodStart returns the start of a lookback window of the given days
func periodStart(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}
