package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/techtool/opd-api/pkg/errors"
)

type fakeGenerator struct {
	calls     []GenerationCall
	responses map[string]string
	errs      map[string]error
}

func (f *fakeGenerator) Generate(_ context.Context, call GenerationCall) (string, error) {
	f.calls = append(f.calls, call)
	if err, ok := f.errs[call.Model]; ok {
		return "", err
	}
	return f.responses[call.Model], nil
}

func specs(names ...string) []ModelSpec {
	out := make([]ModelSpec, len(names))
	for i, n := range names {
		out[i] = ModelSpec{Name: n}
	}
	return out
}

func TestInvokeFirstSuccessStopsIteration(t *testing.T) {
	gen := &fakeGenerator{
		responses: map[string]string{"model-b": "summary text", "model-c": "never used"},
		errs:      map[string]error{"model-a": errors.New("rate limited")},
	}
	o := NewOrchestrator(gen, specs("model-a", "model-b", "model-c"), time.Second, nil)

	res, err := o.Invoke(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "model-b", res.ModelUsed)
	assert.Equal(t, "summary text", res.Text)

	// model-c was never attempted
	require.Len(t, gen.calls, 2)
	assert.Equal(t, "model-a", gen.calls[0].Model)
	assert.Equal(t, "model-b", gen.calls[1].Model)
}

func TestInvokeExhaustionCarriesLastError(t *testing.T) {
	errC := errors.New("model-c exploded")
	gen := &fakeGenerator{errs: map[string]error{
		"model-a": errors.New("a failed"),
		"model-b": errors.New("b failed"),
		"model-c": errC,
	}}
	o := NewOrchestrator(gen, specs("model-a", "model-b", "model-c"), time.Second, nil)

	_, err := o.Invoke(context.Background(), "prompt")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeGenerationFailed, appErr.Code)
	assert.ErrorIs(t, err, errC)
	assert.Len(t, gen.calls, 3)
}

func TestInvokeEmptyOutputContinuesToNextCandidate(t *testing.T) {
	gen := &fakeGenerator{responses: map[string]string{
		"model-a": "",
		"model-b": "text",
	}}
	o := NewOrchestrator(gen, specs("model-a", "model-b"), time.Second, nil)

	res, err := o.Invoke(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "model-b", res.ModelUsed)
}

func TestInvokeAllEmptyIsGenerationFailed(t *testing.T) {
	gen := &fakeGenerator{responses: map[string]string{"model-a": "", "model-b": ""}}
	o := NewOrchestrator(gen, specs("model-a", "model-b"), time.Second, nil)

	_, err := o.Invoke(context.Background(), "prompt")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestInvokeNoCandidates(t *testing.T) {
	o := NewOrchestrator(&fakeGenerator{}, nil, time.Second, nil)
	_, err := o.Invoke(context.Background(), "prompt")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeGenerationFailed, appErr.Code)
}

func TestInvokeTemperatureHandling(t *testing.T) {
	gen := &fakeGenerator{responses: map[string]string{"o1-mini": "text"}}
	o := NewOrchestrator(gen, specs("o1-mini"), time.Second, nil)

	_, err := o.Invoke(context.Background(), "prompt")
	require.NoError(t, err)
	require.Len(t, gen.calls, 1)
	assert.True(t, gen.calls[0].OmitTemperature)

	gen = &fakeGenerator{responses: map[string]string{"gpt-4o-mini": "text"}}
	o = NewOrchestrator(gen, specs("gpt-4o-mini"), time.Second, nil)
	_, err = o.Invoke(context.Background(), "prompt")
	require.NoError(t, err)
	assert.False(t, gen.calls[0].OmitTemperature)
	assert.InDelta(t, 0.2, gen.calls[0].Temperature, 1e-6)
}

func TestModelSpecReasoningFlagOverridesHeuristic(t *testing.T) {
	assert.True(t, ModelSpec{Name: "o1-mini"}.IsReasoning())
	assert.True(t, ModelSpec{Name: "o3"}.IsReasoning())
	assert.False(t, ModelSpec{Name: "gpt-4o-mini"}.IsReasoning())
	// explicit flag wins for identifiers the prefix heuristic misses
	assert.True(t, ModelSpec{Name: "future-reasoner", Reasoning: true}.IsReasoning())
}
