package service

import (
	"fmt"
	"time"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/database/models"
	apperrors "medcheck-backend/internal/errors"
	"medcheck-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ChecklistService handles business logic for checklist entries
type ChecklistService struct {
	entries   repository.ChecklistEntryRepositoryInterface
	validator *validator.Validate
}

// NewChecklistService creates a new checklist service
func NewChecklistService(entries repository.ChecklistEntryRepositoryInterface, validator *validator.Validate) *ChecklistService {
	return &ChecklistService{
		entries:   entries,
		validator: validator,
	}
}

// ChecklistEntryRequest represents the payload to create or update a
// checklist entry. The recording user and organization are never taken from
// the payload; they come from the authenticated principal.
type ChecklistEntryRequest struct {
	FechaHora      *time.Time `json:"fecha_hora,omitempty"`
	Area           string     `json:"area,omitempty" validate:"max=100"`
	Turno          string     `json:"turno,omitempty" validate:"max=50"`
	ProtocoloEtapa string     `json:"protocolo_etapa,omitempty" validate:"max=100"`
	Item           string     `json:"item" validate:"required,max=200"`
	Cumple         bool       `json:"cumple"`
	Observaciones  string     `json:"observaciones,omitempty"`

	PacienteCorrecto           bool `json:"paciente_correcto"`
	MedicamentoCorrecto        bool `json:"medicamento_correcto"`
	DosisCorrecta              bool `json:"dosis_correcta"`
	ViaCorrecta                bool `json:"via_correcta"`
	HoraCorrecta               bool `json:"hora_correcta"`
	FechaVencimientoVerificada bool `json:"fecha_vencimiento_verificada"`
	EducacionPaciente          bool `json:"educacion_paciente"`
	RegistroCorrecto           bool `json:"registro_correcto"`
	AlergiasVerificadas        bool `json:"alergias_verificadas"`
	ResponsabilidadPersonal    bool `json:"responsabilidad_personal"`
}

// ChecklistEntryResponse represents a checklist entry in API responses
type ChecklistEntryResponse struct {
	models.ChecklistEntry
}

// ChecklistListResponse represents a filtered page of checklist entries
type ChecklistListResponse struct {
	Total  int                     `json:"total"`
	Limit  int                     `json:"limit"`
	Offset int                     `json:"offset"`
	Data   []models.ChecklistEntry `json:"data"`
}

// Create records a new checklist entry for the principal's organization.
// The entry is stamped with the principal's username.
func (s *ChecklistService) Create(principal auth.Principal, req *ChecklistEntryRequest) (*ChecklistEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid checklist entry: %v", err))
	}

	fechaHora := time.Now()
	if req.FechaHora != nil {
		fechaHora = *req.FechaHora
	}

	entry := &models.ChecklistEntry{
		FechaHora:      fechaHora,
		Area:           req.Area,
		Turno:          req.Turno,
		ProtocoloEtapa: req.ProtocoloEtapa,
		Item:           req.Item,
		Cumple:         req.Cumple,
		Observaciones:  req.Observaciones,
		Usuario:        principal.Username,
		OrganizationID: principal.OrganizationID,

		PacienteCorrecto:           req.PacienteCorrecto,
		MedicamentoCorrecto:        req.MedicamentoCorrecto,
		DosisCorrecta:              req.DosisCorrecta,
		ViaCorrecta:                req.ViaCorrecta,
		HoraCorrecta:               req.HoraCorrecta,
		FechaVencimientoVerificada: req.FechaVencimientoVerificada,
		EducacionPaciente:          req.EducacionPaciente,
		RegistroCorrecto:           req.RegistroCorrecto,
		AlergiasVerificadas:        req.AlergiasVerificadas,
		ResponsabilidadPersonal:    req.ResponsabilidadPersonal,
	}

	if err := s.entries.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create checklist entry: %w", err)
	}

	return &ChecklistEntryResponse{ChecklistEntry: *entry}, nil
}

// List retrieves checklist entries for an organization with filters applied
func (s *ChecklistService) List(orgID uuid.UUID, filter repository.ChecklistFilter) (*ChecklistListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	entries, err := s.entries.List(orgID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist entries: %w", err)
	}

	return &ChecklistListResponse{
		Total:  len(entries),
		Limit:  filter.Limit,
		Offset: filter.Offset,
		Data:   entries,
	}, nil
}

// GetByID retrieves a single checklist entry within an organization
func (s *ChecklistService) GetByID(orgID, id uuid.UUID) (*ChecklistEntryResponse, error) {
	entry, err := s.entries.GetByID(orgID, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrChecklistEntryNotFound
		}
		return nil, fmt.Errorf("failed to get checklist entry: %w", err)
	}
	return &ChecklistEntryResponse{ChecklistEntry: *entry}, nil
}

// Update replaces the editable fields of an existing entry. The recording
// user and timestamp keep their original values.
func (s *ChecklistService) Update(orgID, id uuid.UUID, req *ChecklistEntryRequest) (*ChecklistEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid checklist entry: %v", err))
	}

	entry, err := s.entries.GetByID(orgID, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrChecklistEntryNotFound
		}
		return nil, fmt.Errorf("failed to get checklist entry: %w", err)
	}

	entry.Area = req.Area
	entry.Turno = req.Turno
	entry.ProtocoloEtapa = req.ProtocoloEtapa
	entry.Item = req.Item
	entry.Cumple = req.Cumple
	entry.Observaciones = req.Observaciones
	entry.PacienteCorrecto = req.PacienteCorrecto
	entry.MedicamentoCorrecto = req.MedicamentoCorrecto
	entry.DosisCorrecta = req.DosisCorrecta
	entry.ViaCorrecta = req.ViaCorrecta
	entry.HoraCorrecta = req.HoraCorrecta
	entry.FechaVencimientoVerificada = req.FechaVencimientoVerificada
	entry.EducacionPaciente = req.EducacionPaciente
	entry.RegistroCorrecto = req.RegistroCorrecto
	entry.AlergiasVerificadas = req.AlergiasVerificadas
	entry.ResponsabilidadPersonal = req.ResponsabilidadPersonal

	if err := s.entries.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update checklist entry: %w", err)
	}

	return &ChecklistEntryResponse{ChecklistEntry: *entry}, nil
}

// Delete removes a checklist entry within an organization
func (s *ChecklistService) Delete(orgID, id uuid.UUID) error {
	if err := s.entries.Delete(orgID, id); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.ErrChecklistEntryNotFound
		}
		return fmt.Errorf("failed to delete checklist entry: %w", err)
	}
	return nil
}
