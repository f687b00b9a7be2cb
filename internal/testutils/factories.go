package testutils

import (
	"time"

	"medcheck-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	id := uuid.New()
	trialEnd := time.Now().AddDate(0, 0, 30)
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Hospital de Prueba",
		Slug:         "hospital-" + id.String()[:8],
		ContactEmail: "contacto@hospital.test",
		IsActive:     true,
		Plan:         models.PlanFree,
		MaxUsers:     5,
		TrialEndsAt:  &trialEnd,
	}
}

// WithSlug sets a custom slug for the organization
func (f *OrganizationFactory) WithSlug(slug string) *models.Organization {
	org := f.Create()
	org.Slug = slug
	return org
}

// WithPlan sets a custom plan for the organization
func (f *OrganizationFactory) WithPlan(plan models.Plan) *models.Organization {
	org := f.Create()
	org.Plan = plan
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The password is "password123".
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:          "user-" + id.String()[:8] + "@hospital.test",
		Username:       "user-" + id.String()[:8],
		HashedPassword: string(hash),
		FullName:       "Enfermera de Prueba",
		IsActive:       true,
		OrganizationID: uuid.New(),
	}
}

// WithOrganization sets the organization ID for the user
func (f *UserFactory) WithOrganization(orgID uuid.UUID) *models.User {
	user := f.Create()
	user.OrganizationID = orgID
	return user
}

// WithUsername sets a custom username for the user
func (f *UserFactory) WithUsername(username string) *models.User {
	user := f.Create()
	user.Username = username
	user.Email = username + "@hospital.test"
	return user
}

// Admin creates a test user with the admin flag set
func (f *UserFactory) Admin(orgID uuid.UUID) *models.User {
	user := f.WithOrganization(orgID)
	user.IsAdmin = true
	return user
}

// SuperAdmin creates a test user with the super admin flag set
func (f *UserFactory) SuperAdmin(orgID uuid.UUID) *models.User {
	user := f.WithOrganization(orgID)
	user.IsSuperAdmin = true
	return user
}

// ChecklistEntryFactory provides methods to create test ChecklistEntry data
type ChecklistEntryFactory struct{}

// NewChecklistEntryFactory creates a new ChecklistEntryFactory
func NewChecklistEntryFactory() *ChecklistEntryFactory {
	return &ChecklistEntryFactory{}
}

// Create creates a test ChecklistEntry with all ten checks passing
func (f *ChecklistEntryFactory) Create() *models.ChecklistEntry {
	return &models.ChecklistEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FechaHora:      time.Now(),
		Area:           "UCI",
		Turno:          "Mañana",
		Item:           "Administración de antibiótico",
		Cumple:         true,
		Usuario:        "enfermera.prueba",
		OrganizationID: uuid.New(),

		PacienteCorrecto:           true,
		MedicamentoCorrecto:        true,
		DosisCorrecta:              true,
		ViaCorrecta:                true,
		HoraCorrecta:               true,
		FechaVencimientoVerificada: true,
		EducacionPaciente:          true,
		RegistroCorrecto:           true,
		AlergiasVerificadas:        true,
		ResponsabilidadPersonal:    true,
	}
}

// WithOrganization sets the organization ID for the entry
func (f *ChecklistEntryFactory) WithOrganization(orgID uuid.UUID) *models.ChecklistEntry {
	entry := f.Create()
	entry.OrganizationID = orgID
	return entry
}

// WithArea sets a custom area for the entry
func (f *ChecklistEntryFactory) WithArea(area string) *models.ChecklistEntry {
	entry := f.Create()
	entry.Area = area
	return entry
}

// WithFechaHora sets a custom administration time for the entry
func (f *ChecklistEntryFactory) WithFechaHora(t time.Time) *models.ChecklistEntry {
	entry := f.Create()
	entry.FechaHora = t
	return entry
}

// NonCompliant creates an entry with a failed check and Cumple unset
func (f *ChecklistEntryFactory) NonCompliant() *models.ChecklistEntry {
	entry := f.Create()
	entry.Cumple = false
	entry.DosisCorrecta = false
	return entry
}

// ReminderFactory provides methods to create test Reminder data
type ReminderFactory struct{}

// NewReminderFactory creates a new ReminderFactory
func NewReminderFactory() *ReminderFactory {
	return &ReminderFactory{}
}

// Create creates a test Reminder scheduled in the past, so it is pending
func (f *ReminderFactory) Create() *models.Reminder {
	return &models.Reminder{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         uuid.New(),
		Title:          "Revisar carro de medicación",
		ScheduledAt:    time.Now().Add(-time.Hour),
		Active:         true,
		OrganizationID: uuid.New(),
	}
}

// WithOwner sets the organization and user for the reminder
func (f *ReminderFactory) WithOwner(orgID, userID uuid.UUID) *models.Reminder {
	reminder := f.Create()
	reminder.OrganizationID = orgID
	reminder.UserID = userID
	return reminder
}

// WithScheduledAt sets a custom schedule time for the reminder
func (f *ReminderFactory) WithScheduledAt(t time.Time) *models.Reminder {
	reminder := f.Create()
	reminder.ScheduledAt = t
	return reminder
}

// Sent creates a reminder that has already been delivered
func (f *ReminderFactory) Sent() *models.Reminder {
	reminder := f.Create()
	now := time.Now()
	reminder.SentAt = &now
	return reminder
}

// MedicationErrorFactory provides methods to create test MedicationError data
type MedicationErrorFactory struct{}

// NewMedicationErrorFactory creates a new MedicationErrorFactory
func NewMedicationErrorFactory() *MedicationErrorFactory {
	return &MedicationErrorFactory{}
}

// Create creates a test MedicationError with default values
func (f *MedicationErrorFactory) Create() *models.MedicationError {
	now := time.Now()
	return &models.MedicationError{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OrganizationID:   uuid.New(),
		ReportedByUserID: uuid.New(),
		ErrorType:        "dosis incorrecta",
		Severity:         models.SeverityMinor,
		Stage:            models.StageAdministration,
		Description:      "Dosis administrada por debajo de lo prescrito",
		OccurredAt:       now,
		DetectedAt:       now,
	}
}

// WithOrganization sets the organization ID for the error
func (f *MedicationErrorFactory) WithOrganization(orgID uuid.UUID) *models.MedicationError {
	me := f.Create()
	me.OrganizationID = orgID
	return me
}

// WithSeverity sets a custom severity for the error
func (f *MedicationErrorFactory) WithSeverity(severity models.Severity) *models.MedicationError {
	me := f.Create()
	me.Severity = severity
	return me
}

// WithOccurredAt sets a custom occurrence time for the error
func (f *MedicationErrorFactory) WithOccurredAt(t time.Time) *models.MedicationError {
	me := f.Create()
	me.OccurredAt = t
	return me
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization    *OrganizationFactory
	User            *UserFactory
	ChecklistEntry  *ChecklistEntryFactory
	Reminder        *ReminderFactory
	MedicationError *MedicationErrorFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:    NewOrganizationFactory(),
		User:            NewUserFactory(),
		ChecklistEntry:  NewChecklistEntryFactory(),
		Reminder:        NewReminderFactory(),
		MedicationError: NewMedicationErrorFactory(),
	}
}
