package model

// RiskLevel is the caller-supplied urgency classification. It only affects
// follow-up scheduling, never clinical content.
type RiskLevel string

const (
	RiskRoutine RiskLevel = "routine"
	RiskHigh    RiskLevel = "high"
	RiskUrgent  RiskLevel = "urgent"
)

// Valid reports whether r is one of the known risk levels.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskRoutine, RiskHigh, RiskUrgent:
		return true
	}
	return false
}

// WindowOffsetDays is the adjustment applied to a clinic's default follow-up
// window. Higher risk pulls the appointment earlier.
func (r RiskLevel) WindowOffsetDays() int {
	switch r {
	case RiskHigh:
		return -7
	case RiskUrgent:
		return -3
	default:
		return 0
	}
}

// FollowupPlan is a derived, per-request snapshot of a clinic's follow-up
// recommendations. Its list fields are copies; mutating a plan never touches
// the catalog.
type FollowupPlan struct {
	ClinicKey         string    `json:"clinic_key"`
	ClinicName        string    `json:"clinic_name"`
	RiskLevel         RiskLevel `json:"risk_level"`
	WindowDays        int       `json:"follow_up_window_days"`
	ContextBrief      string    `json:"context_brief"`
	TestsToOrder      []string  `json:"tests_to_order"`
	ImagingProcedures []string  `json:"imaging_or_procedures"`
	MedicationActions []string  `json:"medication_actions"`
	CounselingPoints  []string  `json:"counseling_points"`
	MonitoringParams  []string  `json:"monitoring_params"`
	RedFlags          []string  `json:"red_flags_for_early_return"`
	ReferralTargets   []string  `json:"referral_or_multidisciplinary"`
	TelemedOK         bool      `json:"telemed_ok"`
}

// FollowupResult pairs the structured plan with its rendered report.
type FollowupResult struct {
	Structured FollowupPlan `json:"structured"`
	Markdown   string       `json:"markdown"`
}
