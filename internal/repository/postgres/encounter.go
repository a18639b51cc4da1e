package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/techtool/opd-api/internal/model"
	"github.com/techtool/opd-api/internal/repository"
	apperrors "github.com/techtool/opd-api/pkg/errors"
)

type encounterRepository struct {
	db *sqlx.DB
}

func NewEncounterRepository(db *sqlx.DB) repository.EncounterRepository {
	return &encounterRepository{db: db}
}

func (r *encounterRepository) Create(ctx context.Context, encounter *model.Encounter) error {
	query := `
		INSERT INTO encounters (
			id, clinic_key, source, transcript, summary, model_used, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`
	if encounter.ID == uuid.Nil {
		encounter.ID = uuid.New()
	}
	if encounter.CreatedAt.IsZero() {
		encounter.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query,
		encounter.ID,
		encounter.ClinicKey,
		encounter.Source,
		encounter.Transcript,
		encounter.Summary,
		encounter.ModelUsed,
		encounter.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create encounter: %w", err)
	}
	return nil
}

func (r *encounterRepository) Get(ctx context.Context, id uuid.UUID) (*model.Encounter, error) {
	query := `
		SELECT id, clinic_key, source, transcript, summary, model_used, created_at
		FROM encounters
		WHERE id = $1
	`
	var encounter model.Encounter
	if err := r.db.GetContext(ctx, &encounter, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("encounter")
		}
		return nil, fmt.Errorf("failed to get encounter: %w", err)
	}
	return &encounter, nil
}

func (r *encounterRepository) List(ctx context.Context, clinicKey string, limit int) ([]*model.Encounter, error) {
	if limit <= 0 {
		limit = 20
	}

	var encounters []*model.Encounter
	var err error
	if clinicKey != "" {
		query := `
			SELECT id, clinic_key, source, transcript, summary, model_used, created_at
			FROM encounters
			WHERE clinic_key = $1
			ORDER BY created_at DESC
			LIMIT $2
		`
		err = r.db.SelectContext(ctx, &encounters, query, clinicKey, limit)
	} else {
		query := `
			SELECT id, clinic_key, source, transcript, summary, model_used, created_at
			FROM encounters
			ORDER BY created_at DESC
			LIMIT $1
		`
		err = r.db.SelectContext(ctx, &encounters, query, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list encounters: %w", err)
	}
	return encounters, nil
}
