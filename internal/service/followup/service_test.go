package followup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techtool/opd-api/internal/catalog"
	"github.com/techtool/opd-api/internal/followup"
	"github.com/techtool/opd-api/internal/model"
	apperrors "github.com/techtool/opd-api/pkg/errors"
)

func newService() *Service {
	return NewService(followup.NewBuilder(catalog.Default()))
}

func TestPlanDefaultsToRoutine(t *testing.T) {
	res, err := newService().Plan(context.Background(), "rehab", "", "")
	require.NoError(t, err)
	assert.Equal(t, model.RiskRoutine, res.Structured.RiskLevel)
	assert.Equal(t, 21, res.Structured.WindowDays)
	assert.Contains(t, res.Markdown, "**ROUTINE**")
}

func TestPlanRejectsUnknownRisk(t *testing.T) {
	_, err := newService().Plan(context.Background(), "rehab", "", "critical")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidation, appErr.Code)
}

func TestPlanStructuredMatchesMarkdown(t *testing.T) {
	res, err := newService().Plan(context.Background(), "rehab", "ผู้ป่วยฟื้นตัวดี", model.RiskUrgent)
	require.NoError(t, err)
	assert.Equal(t, 18, res.Structured.WindowDays)
	assert.Contains(t, res.Markdown, "**18 วัน**")
	assert.Contains(t, res.Markdown, "ผู้ป่วยฟื้นตัวดี")
}
