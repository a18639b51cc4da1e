// Package followup derives structured post-visit plans from clinic presets
// and renders them as Thai markdown reports.
package followup

import (
	"strings"

	"github.com/techtool/opd-api/internal/catalog"
	"github.com/techtool/opd-api/internal/model"
)

// minWindowDays is the floor on any follow-up window, regardless of how far
// the risk offset pulls it in.
const minWindowDays = 3

// maxContextRunes caps the stored context brief. Truncation is by rune: the
// catalog and inputs are Thai and byte truncation would split UTF-8 sequences.
const maxContextRunes = 600

// Builder constructs follow-up plans against an injected clinic catalog.
type Builder struct {
	catalog *catalog.Catalog
}

// NewBuilder returns a Builder backed by the given catalog.
func NewBuilder(c *catalog.Catalog) *Builder {
	return &Builder{catalog: c}
}

// Build computes a plan for the clinic, context and risk level. Unknown
// clinic keys resolve to the default clinic. An unrecognized risk level is
// treated as routine; callers validate earlier when they care. All list
// fields are copies of the catalog's lists.
func (b *Builder) Build(clinicKey, contextText string, risk model.RiskLevel) model.FollowupPlan {
	profile := b.catalog.Resolve(clinicKey)
	if !risk.Valid() {
		risk = model.RiskRoutine
	}

	days := profile.Followup.WindowDays + risk.WindowOffsetDays()
	if days < minWindowDays {
		days = minWindowDays
	}

	return model.FollowupPlan{
		ClinicKey:         clinicKey,
		ClinicName:        profile.Name,
		RiskLevel:         risk,
		WindowDays:        days,
		ContextBrief:      truncateRunes(strings.TrimSpace(contextText), maxContextRunes),
		TestsToOrder:      copyStrings(profile.Followup.Tests),
		ImagingProcedures: copyStrings(profile.Followup.Imaging),
		MedicationActions: copyStrings(profile.Followup.Medications),
		CounselingPoints:  copyStrings(profile.Followup.Counseling),
		MonitoringParams:  copyStrings(profile.Followup.Monitoring),
		RedFlags:          copyStrings(profile.Followup.RedFlags),
		ReferralTargets:   copyStrings(profile.Followup.Referrals),
		TelemedOK:         profile.Followup.Telemedicine,
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func copyStrings(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}
