package models

import (
	"time"

	"github.com/google/uuid"
)

// ChecklistEntry records one medication-administration safety check against
// the ten-point "Los 10 Correctos" protocol. The ten booleans are
// independent; overall compliance in reporting is their logical AND, while
// the stored Cumple flag is the nurse's own overall judgement and may
// diverge from it.
type ChecklistEntry struct {
	BaseModel
	FechaHora      time.Time `json:"fecha_hora" gorm:"not null;index"`
	Area           string    `json:"area" gorm:"size:100"`
	Turno          string    `json:"turno" gorm:"size:50"`
	ProtocoloEtapa string    `json:"protocolo_etapa" gorm:"size:100"`
	Item           string    `json:"item" gorm:"size:200"`
	Cumple         bool      `json:"cumple"`
	Observaciones  string    `json:"observaciones" gorm:"type:text"`
	Usuario        string    `json:"usuario" gorm:"size:100"`

	// Los 10 Correctos
	PacienteCorrecto           bool `json:"paciente_correcto" gorm:"not null;default:false"`
	MedicamentoCorrecto        bool `json:"medicamento_correcto" gorm:"not null;default:false"`
	DosisCorrecta              bool `json:"dosis_correcta" gorm:"not null;default:false"`
	ViaCorrecta                bool `json:"via_correcta" gorm:"not null;default:false"`
	HoraCorrecta               bool `json:"hora_correcta" gorm:"not null;default:false"`
	FechaVencimientoVerificada bool `json:"fecha_vencimiento_verificada" gorm:"not null;default:false"`
	EducacionPaciente          bool `json:"educacion_paciente" gorm:"not null;default:false"`
	RegistroCorrecto           bool `json:"registro_correcto" gorm:"not null;default:false"`
	AlergiasVerificadas        bool `json:"alergias_verificadas" gorm:"not null;default:false"`
	ResponsabilidadPersonal    bool `json:"responsabilidad_personal" gorm:"not null;default:false"`

	// Multi-tenancy
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index" validate:"required"`
}

// TableName returns the table name for ChecklistEntry
func (ChecklistEntry) TableName() string {
	return "checklist_entries"
}

// AllCorrect reports whether all ten safety checks passed
func (e *ChecklistEntry) AllCorrect() bool {
	return e.PacienteCorrecto &&
		e.MedicamentoCorrecto &&
		e.DosisCorrecta &&
		e.ViaCorrecta &&
		e.HoraCorrecta &&
		e.FechaVencimientoVerificada &&
		e.EducacionPaciente &&
		e.RegistroCorrecto &&
		e.AlergiasVerificadas &&
		e.ResponsabilidadPersonal
}
