package models

// Plan represents the subscription tier of an organization
type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

// Severity classifies a medication error on the standard incident ladder
// (near_miss < minor < moderate < severe < sentinel)
type Severity string

const (
	SeverityNearMiss Severity = "near_miss"
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeveritySentinel Severity = "sentinel"
)

// IsValid reports whether the severity is one of the known levels
func (s Severity) IsValid() bool {
	switch s {
	case SeverityNearMiss, SeverityMinor, SeverityModerate, SeveritySevere, SeveritySentinel:
		return true
	}
	return false
}

// IsSevere reports whether the severity falls in the "severe" bucket
// used by the error timeline (severe and sentinel)
func (s Severity) IsSevere() bool {
	return s == SeveritySevere || s == SeveritySentinel
}

// Stage identifies the medication-use process stage where an error occurred
type Stage string

const (
	StagePrescription   Stage = "prescription"
	StageTranscription  Stage = "transcription"
	StageDispensing     Stage = "dispensing"
	StageAdministration Stage = "administration"
	StageMonitoring     Stage = "monitoring"
)

// IsValid reports whether the stage is one of the known process stages
func (s Stage) IsValid() bool {
	switch s {
	case StagePrescription, StageTranscription, StageDispensing, StageAdministration, StageMonitoring:
		return true
	}
	return false
}
