// Package prompt builds the Thai OPD-card instruction sent to the generation
// provider. The template lives here so clinical staff edits don't touch the
// rest of the code.
package prompt

import (
	"fmt"
	"strings"

	"github.com/techtool/opd-api/internal/catalog"
)

// header is the fixed framing and required output sections of an OPD card.
// Section order is part of the product contract with the clinics.
const header = `คุณเป็นแพทย์เวชปฏิบัติในคลินิก %s
สรุป "OPD Card ภาษาไทย" จากข้อความต่อไปนี้ให้เป็นระเบียบ อ่านง่าย กระชับ เป็นมืออาชีพ
ให้จัดหัวข้อ:
- Chief Complaint
- Present Illness (+ ROS ถ้ามี)
- Past History / Meds / Allergy / Risk (ถ้ามี)
- Physical Examination (โฟกัสตามคลินิก)
- Assessment: Working Dx / DDX / เหตุผลสั้น ๆ
- Plan: Investigation / Treatment (Rx) / Advice & Follow-up`

const rawTextDelimiter = "--- ข้อความดิบ ---"

// Composer renders prompts against an injected clinic catalog.
type Composer struct {
	catalog *catalog.Catalog
}

// NewComposer returns a Composer backed by the given catalog.
func NewComposer(c *catalog.Catalog) *Composer {
	return &Composer{catalog: c}
}

// Compose builds the full prompt for one request. Unknown clinic keys resolve
// to the default clinic. Pure: no size cap is applied here.
func (p *Composer) Compose(clinicKey, rawText string) string {
	clinic := p.catalog.Resolve(clinicKey)

	var b strings.Builder
	fmt.Fprintf(&b, header, clinic.Name)
	b.WriteString("\n\nแนวทางเพิ่มเติมเฉพาะคลินิก:\n")
	b.WriteString(clinic.PromptHint)
	b.WriteString("\n\n")
	b.WriteString(rawTextDelimiter)
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(rawText))
	return strings.TrimSpace(b.String())
}
