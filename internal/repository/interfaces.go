package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/techtool/opd-api/internal/model"
)

// EncounterRepository archives summarization encounters.
type EncounterRepository interface {
	Create(ctx context.Context, encounter *model.Encounter) error
	Get(ctx context.Context, id uuid.UUID) (*model.Encounter, error)
	List(ctx context.Context, clinicKey string, limit int) ([]*model.Encounter, error)
}
