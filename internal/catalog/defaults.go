package catalog

import "github.com/techtool/opd-api/internal/model"

// DefaultClinicKey is the clinic unknown keys resolve to.
const DefaultClinicKey = "neuromed"

// Default returns the built-in catalog for the current deployment: five
// clinics with Thai recommendation text. Content mirrors the clinic
// committee's follow-up presets.
func Default() *Catalog {
	c, err := New(defaultProfiles(), DefaultClinicKey)
	if err != nil {
		// defaultProfiles is a compile-time constant set; New can only fail
		// on a bad edit to this file.
		panic(err)
	}
	return c
}

func defaultProfiles() []model.ClinicProfile {
	return []model.ClinicProfile{
		{
			Key:        "neuromed",
			Name:       "Neurology Medicine",
			PromptHint: "เน้นสรุปอาการทางระบบประสาท ตรวจร่างกายโฟกัส CN/มอเตอร์/เซนซอรี/การเดิน และแผนตรวจติดตามที่จำเป็น",
			Followup: model.FollowupDefaults{
				WindowDays: 28,
				Tests: []string{
					"CBC/CMP (ถ้าปรับยาใหม่)",
					"Fasting glucose/HbA1c (ถ้ามี DM ร่วม)",
					"Lipid profile (ตามจำเป็น)",
				},
				Imaging: []string{"MRI/CT ตามอาการและข้อบ่งชี้"},
				Medications: []string{
					"ทบทวน adherence/AE ของยา neuro-immunology/antiepileptics/anti-parkinsonism ตามบริบท",
				},
				Counseling: []string{
					"สังเกต red flags ทางระบบประสาท",
					"การป้องกันหกล้ม",
					"การนอน/โภชนาการ/การออกกำลังกาย",
				},
				Monitoring: []string{
					"Neuro exam คร่าว ๆ ที่บ้าน (กำลังกล้ามเนื้อ/การเดิน/การพูด)",
					"บันทึกอาการเด่น",
				},
				RedFlags: []string{
					"อ่อนแรง/ชาฉับพลัน",
					"พูดลำบาก/ตามัวเฉียบพลัน",
					"ชักต่อเนื่อง",
				},
				Referrals:    []string{"Rehab/PT/OT ตามความจำเป็น"},
				Telemedicine: true,
			},
		},
		{
			Key:        "neurosx",
			Name:       "Neurosurgery",
			PromptHint: "เพิ่มหัวข้อภาวะหลังผ่าตัด/การดูแลแผล การให้คำแนะนำก่อนกลับบ้าน และ red flags หลังผ่าตัด",
			Followup: model.FollowupDefaults{
				WindowDays: 14,
				Tests: []string{
					"CBC (post-op ถ้าจำเป็น)",
					"Electrolytes (ถ้ามี SIADH/DI concern)",
				},
				Imaging: []string{"CT/MRI follow-up ตามชนิดผ่าตัด/ภาวะเลือดออก/มวลก้อน"},
				Medications: []string{
					"Pain control/antibiotics ตามแผลผ่าตัด",
					"DVT prophylaxis ตามข้อบ่งชี้",
				},
				Counseling: []string{
					"การดูแลแผลผ่าตัดและสังเกตการติดเชื้อ",
					"ข้อควรระวังการยกของ/กิจกรรม",
				},
				Monitoring: []string{
					"ไข้/ปวดแผล/แผลบวมแดง",
					"Neurologic status baseline เทียบเดิม",
				},
				RedFlags: []string{
					"แผลมีหนอง/บวมแดงมาก",
					"ปวดศีรษะรุนแรงผิดปกติ",
					"ซึมลง/ชัก",
				},
				Referrals:    []string{"Neuro ICU/Functional team ตามเคส"},
				Telemedicine: false,
			},
		},
		{
			Key:        "rehab",
			Name:       "Physical Medicine & Rehabilitation",
			PromptHint: "เน้นเป้าหมายฟังก์ชัน, โปรแกรม PT/OT/SLT, อุปกรณ์ช่วยเดิน/ADL และตัวชี้วัดความก้าวหน้า",
			Followup: model.FollowupDefaults{
				WindowDays: 21,
				Tests: []string{
					"Bone profile/Vit D (ถ้าจำเป็น)",
					"Spasticity assessment scale",
				},
				Imaging: nil,
				Medications: []string{
					"ปรับ antispastic agents/analgesics ตามเป้าหมายฟื้นฟู",
				},
				Counseling: []string{
					"โปรแกรมกายภาพ/อาชีวบำบัดที่บ้าน",
					"ป้องกันหกล้ม/ภาวะแทรกซ้อนจากการนอนนาน",
				},
				Monitoring: []string{
					"Goal-attainment diary",
					"Pain/fatigue scale",
				},
				RedFlags: []string{
					"ปวดมากขึ้นผิดปกติ",
					"เกิดแผลกดทับ",
					"ล้มถี่ขึ้น",
				},
				Referrals:    []string{"PT/OT/SLT/Nutrition"},
				Telemedicine: true,
			},
		},
		{
			Key:        "psych",
			Name:       "Psychiatry",
			PromptHint: "เพิ่มสรุปสภาวะอารมณ์/ความคิด/พฤติกรรม ความปลอดภัย และแผนติดตามยาง่ายต่อการปฏิบัติ",
			Followup: model.FollowupDefaults{
				WindowDays: 28,
				Tests: []string{
					"CBC/CMP (ถ้าปรับยา psychotropic ที่มีผลเมตาบอลิก)",
					"Lipids/Glucose (SGA)",
				},
				Imaging: nil,
				Medications: []string{
					"ปรับ SSRIs/SNRIs/SGA ตามอาการและผลข้างเคียง",
					"ตรวจสอบเรื่อง drug-interaction",
				},
				Counseling: []string{
					"สัญญาณเตือนซึมเศร้ารุนแรง/คิดทำร้ายตนเอง",
					"การนอน/การจัดการความเครียด",
				},
				Monitoring: []string{
					"PHQ-9/GAD-7/อื่น ๆ ตามความเหมาะสม",
					"Side-effect checklist",
				},
				RedFlags: []string{
					"มีความคิดทำร้ายตนเอง/ผู้อื่น",
					"สับสนกะทันหัน",
					"EPS รุนแรง",
				},
				Referrals:    []string{"Psychology/SW/Family meeting"},
				Telemedicine: true,
			},
		},
		{
			Key:        "oph",
			Name:       "Ophthalmology",
			PromptHint: "เพิ่มผลการตรวจตาพื้นฐาน (VA/IOP/สี/field ถ้ามี) และคำแนะนำการใช้ยาหยอดตาอย่างถูกต้อง",
			Followup: model.FollowupDefaults{
				WindowDays: 14,
				Tests: []string{
					"Visual acuity",
					"Color vision",
					"IOP",
					"OCT/Visual field ตามจำเป็น",
				},
				Imaging: nil,
				Medications: []string{
					"ปรับตารางหยอดตา/สเตียรอยด์ตา/ยาลดความดันตาตามข้อบ่งชี้",
				},
				Counseling: []string{
					"การใช้ยาหยอดตาที่ถูกต้อง",
					"หลีกเลี่ยงการขยี้ตา/สิ่งระคายเคือง",
				},
				Monitoring: []string{
					"อาการปวดตา/ตามัว/เห็นแสงแฟลช",
				},
				RedFlags: []string{
					"ปวดตารุนแรง",
					"สายตาลดลงเฉียบพลัน",
					"ตาแดงมาก/ขี้ตาเยอะผิดปกติ",
				},
				Referrals:    []string{"Neuro-ophthalmology (ถ้าสงสัยเกี่ยวข้องระบบประสาท)"},
				Telemedicine: true,
			},
		},
	}
}
