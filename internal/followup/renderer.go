package followup

import (
	"fmt"
	"strings"

	"github.com/techtool/opd-api/internal/model"
)

// Render serializes a plan into the Thai markdown report handed to clinic
// staff. Pure and order-preserving: entries are never reordered or
// deduplicated, and empty categories are omitted entirely.
func Render(plan model.FollowupPlan) string {
	var out []string

	out = append(out, fmt.Sprintf("**แผนติดตาม (%s)**", plan.ClinicName))
	out = append(out, fmt.Sprintf("- ระดับความเสี่ยง: **%s**", strings.ToUpper(string(plan.RiskLevel))))
	out = append(out, fmt.Sprintf("- นัดติดตามใน: **%d วัน**", plan.WindowDays))
	if plan.ContextBrief != "" {
		out = append(out, fmt.Sprintf("- บริบท: %s", plan.ContextBrief))
	}

	out = appendSection(out, "Tests/Labs:", plan.TestsToOrder)
	out = appendSection(out, "Imaging/Procedures:", plan.ImagingProcedures)
	out = appendSection(out, "การจัดการยา:", plan.MedicationActions)
	out = appendSection(out, "ประเด็นให้คำแนะนำผู้ป่วย:", plan.CounselingPoints)
	out = appendSection(out, "ตัวแปรที่ต้องติดตาม:", plan.MonitoringParams)
	out = appendSection(out, "Red flags กลับมาพบแพทย์ก่อนนัด:", plan.RedFlags)
	out = appendSection(out, "ทีมสหสาขา/ส่งต่อ:", plan.ReferralTargets)

	if plan.TelemedOK {
		out = append(out, "\n**Telemedicine:** เหมาะสม (OK)")
	} else {
		out = append(out, "\n**Telemedicine:** ไม่เหมาะสม")
	}
	return strings.Join(out, "\n")
}

func appendSection(out []string, label string, items []string) []string {
	var kept []string
	for _, v := range items {
		if v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return out
	}
	out = append(out, fmt.Sprintf("\n**%s**", label))
	for _, v := range kept {
		out = append(out, fmt.Sprintf("- %s", v))
	}
	return out
}
