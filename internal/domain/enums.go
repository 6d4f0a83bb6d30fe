package domain

type AppointmentType string

const (
	TypeAppointment  AppointmentType = "appointment"
	TypeBreak        AppointmentType = "break"
	TypeBlocked      AppointmentType = "blocked"
	TypeAvailability AppointmentType = "availability"
	TypeRecovery     AppointmentType = "recovery"
)

type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusPending   AppointmentStatus = "pending"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
)

// ValidAppointmentTypes is the canonical set of accepted type strings.
var ValidAppointmentTypes = map[string]bool{
	"appointment": true, "break": true, "blocked": true,
	"availability": true, "recovery": true,
}

// ValidAppointmentStatuses is the canonical set of accepted status strings.
var ValidAppointmentStatuses = map[string]bool{
	"confirmed": true, "pending": true, "cancelled": true,
	"completed": true, "no_show": true,
}

type ScoreLevel string

const (
	LevelExcellent ScoreLevel = "excellent"
	LevelGood      ScoreLevel = "good"
	LevelModerate  ScoreLevel = "moderate"
	LevelWarning   ScoreLevel = "warning"
	LevelCritical  ScoreLevel = "critical"
)

// Intensity classifies a day or week load band.
type Intensity string

const (
	IntensityOptimal  Intensity = "optimal"
	IntensityGood     Intensity = "good"
	IntensityWarning  Intensity = "warning"
	IntensityDanger   Intensity = "danger"
	IntensityCritical Intensity = "critical"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type Severity string

const (
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityPriority returns a sort priority (lower = more severe).
func SeverityPriority(s Severity) int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	default:
		return 2
	}
}

type RecoveryType string

const (
	RecoveryNone        RecoveryType = "none"
	RecoveryLight       RecoveryType = "light"
	RecoveryModerate    RecoveryType = "moderate"
	RecoverySignificant RecoveryType = "significant"
	RecoveryExtended    RecoveryType = "extended"
)

type Urgency string

const (
	UrgencyImmediate  Urgency = "immediate"
	UrgencyPlanned    Urgency = "planned"
	UrgencyPreventive Urgency = "preventive"
	UrgencyRecovery   Urgency = "recovery"
)
