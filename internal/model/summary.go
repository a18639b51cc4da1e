package model

// TextSummary is the outcome of summarizing raw clinical text.
type TextSummary struct {
	ClinicKey string `json:"clinic_key"`
	ModelUsed string `json:"model_used"`
	Summary   string `json:"summary"`
}

// AudioSummary is the outcome of transcribing an audio note and summarizing
// the transcript.
type AudioSummary struct {
	ClinicKey  string `json:"clinic_key"`
	Transcript string `json:"transcript"`
	ModelUsed  string `json:"model_used"`
	Summary    string `json:"summary"`
}
