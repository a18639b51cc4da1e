package followup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techtool/opd-api/internal/catalog"
	"github.com/techtool/opd-api/internal/model"
)

func TestRenderSectionsMatchNonEmptyLists(t *testing.T) {
	b := NewBuilder(catalog.Default())

	// rehab has no imaging entries
	md := Render(b.Build("rehab", "", model.RiskRoutine))
	assert.NotContains(t, md, "Imaging/Procedures:")
	assert.Contains(t, md, "Tests/Labs:")
	assert.Contains(t, md, "Red flags กลับมาพบแพทย์ก่อนนัด:")

	// neuromed has imaging entries
	md = Render(b.Build("neuromed", "", model.RiskRoutine))
	assert.Contains(t, md, "Imaging/Procedures:")
}

func TestRenderHeaderAndTelemedicine(t *testing.T) {
	b := NewBuilder(catalog.Default())

	md := Render(b.Build("rehab", "เดินได้ดีขึ้น", model.RiskUrgent))
	assert.Contains(t, md, "**แผนติดตาม (Physical Medicine & Rehabilitation)**")
	assert.Contains(t, md, "**URGENT**")
	assert.Contains(t, md, "**18 วัน**")
	assert.Contains(t, md, "- บริบท: เดินได้ดีขึ้น")
	assert.Contains(t, md, "**Telemedicine:** เหมาะสม (OK)")

	md = Render(b.Build("neurosx", "", model.RiskRoutine))
	assert.Contains(t, md, "**Telemedicine:** ไม่เหมาะสม")
	assert.NotContains(t, md, "- บริบท:")
}

func TestRenderPreservesOrderAndDuplicates(t *testing.T) {
	plan := model.FollowupPlan{
		ClinicName:   "Test",
		RiskLevel:    model.RiskRoutine,
		WindowDays:   7,
		TestsToOrder: []string{"b", "a", "a"},
	}
	md := Render(plan)

	lines := strings.Split(md, "\n")
	var bullets []string
	for _, l := range lines {
		if strings.HasPrefix(l, "- ") && len(l) == 3 {
			bullets = append(bullets, l)
		}
	}
	assert.Equal(t, []string{"- b", "- a", "- a"}, bullets)
}

func TestRenderSkipsBlankEntriesWithinSection(t *testing.T) {
	plan := model.FollowupPlan{
		ClinicName:       "Test",
		RiskLevel:        model.RiskHigh,
		WindowDays:       7,
		MonitoringParams: []string{"", ""},
	}
	md := Render(plan)
	assert.NotContains(t, md, "ตัวแปรที่ต้องติดตาม:")
}
