package model

// FollowupDefaults is the per-clinic recommendation bundle used to seed
// follow-up plans. All lists are free-text recommendation lines.
type FollowupDefaults struct {
	WindowDays   int      `json:"default_window_days" mapstructure:"default_window_days"`
	Tests        []string `json:"tests" mapstructure:"tests"`
	Imaging      []string `json:"imaging" mapstructure:"imaging"`
	Medications  []string `json:"medications" mapstructure:"medications"`
	Counseling   []string `json:"counseling" mapstructure:"counseling"`
	Monitoring   []string `json:"monitoring" mapstructure:"monitoring"`
	RedFlags     []string `json:"red_flags" mapstructure:"red_flags"`
	Referrals    []string `json:"referrals" mapstructure:"referrals"`
	Telemedicine bool     `json:"telemedicine" mapstructure:"telemedicine"`
}

// ClinicProfile is the static configuration for one clinic. Profiles are
// loaded once at startup and never mutated afterwards.
type ClinicProfile struct {
	Key        string           `json:"key" mapstructure:"key"`
	Name       string           `json:"name" mapstructure:"name"`
	PromptHint string           `json:"prompt_hint" mapstructure:"prompt_hint"`
	Followup   FollowupDefaults `json:"followup" mapstructure:"followup"`
}

// ClinicSummary is the compact listing shape returned by the catalog endpoint.
type ClinicSummary struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	WindowDays int    `json:"default_window_days"`
	TelemedOK  bool   `json:"telemed_ok"`
}

// Summary returns the listing shape for a profile.
func (p ClinicProfile) Summary() ClinicSummary {
	return ClinicSummary{
		Key:        p.Key,
		Name:       p.Name,
		WindowDays: p.Followup.WindowDays,
		TelemedOK:  p.Followup.Telemedicine,
	}
}
