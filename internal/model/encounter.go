package model

import (
	"time"

	"github.com/google/uuid"
)

// Encounter source values.
const (
	EncounterSourceText  = "text"
	EncounterSourceAudio = "audio"
)

// Encounter is an archived summarization request. Only written when the
// archive is enabled; transcript is empty for text-sourced encounters.
type Encounter struct {
	ID         uuid.UUID `db:"id" json:"id"`
	ClinicKey  string    `db:"clinic_key" json:"clinic_key"`
	Source     string    `db:"source" json:"source"`
	Transcript string    `db:"transcript" json:"transcript,omitempty"`
	Summary    string    `db:"summary" json:"summary"`
	ModelUsed  string    `db:"model_used" json:"model_used"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
