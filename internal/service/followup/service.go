package followup

import (
	"context"

	"github.com/techtool/opd-api/internal/followup"
	"github.com/techtool/opd-api/internal/model"
	apperrors "github.com/techtool/opd-api/pkg/errors"
)

// FollowupServicer produces follow-up plans with their rendered reports.
type FollowupServicer interface {
	Plan(ctx context.Context, clinicKey, contextText string, risk model.RiskLevel) (*model.FollowupResult, error)
}

type Service struct {
	builder *followup.Builder
}

func NewService(builder *followup.Builder) *Service {
	return &Service{builder: builder}
}

// Plan builds and renders one follow-up plan. Empty risk defaults to
// routine; anything else unknown is rejected.
func (s *Service) Plan(_ context.Context, clinicKey, contextText string, risk model.RiskLevel) (*model.FollowupResult, error) {
	if risk == "" {
		risk = model.RiskRoutine
	}
	if !risk.Valid() {
		return nil, apperrors.Validation("risk_level must be one of routine, high, urgent")
	}

	plan := s.builder.Build(clinicKey, contextText, risk)
	return &model.FollowupResult{
		Structured: plan,
		Markdown:   followup.Render(plan),
	}, nil
}
