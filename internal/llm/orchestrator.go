package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/techtool/opd-api/pkg/errors"
	"github.com/techtool/opd-api/pkg/metrics"
)

// ErrEmptyCompletion marks a successful provider call that produced no text.
// The orchestrator treats it like any other attempt failure.
var ErrEmptyCompletion = errors.New("empty completion")

// defaultTemperature favors deterministic output for clinical summaries.
const defaultTemperature = 0.2

// reasoningPrefixes matches model families that reject the temperature
// parameter. A ModelSpec with Reasoning set explicitly always wins over this
// heuristic.
var reasoningPrefixes = []string{"o1", "o3", "o4"}

// ModelSpec names one candidate model. Reasoning forces reasoning-model
// invocation (no temperature) regardless of the identifier.
type ModelSpec struct {
	Name      string `mapstructure:"name"`
	Reasoning bool   `mapstructure:"reasoning"`
}

// IsReasoning reports whether the model must be called without temperature.
func (s ModelSpec) IsReasoning() bool {
	if s.Reasoning {
		return true
	}
	for _, prefix := range reasoningPrefixes {
		if strings.HasPrefix(s.Name, prefix) {
			return true
		}
	}
	return false
}

// Result is a successful orchestration outcome.
type Result struct {
	ModelUsed string
	Text      string
}

// Orchestrator tries candidate models in preference order until one returns
// non-empty text. Candidates are tried strictly sequentially: a success on an
// earlier, preferred model preempts paying for a later one. Each candidate
// gets exactly one attempt.
type Orchestrator struct {
	gen            Generator
	models         []ModelSpec
	attemptTimeout time.Duration
	metrics        *metrics.Metrics
}

// NewOrchestrator builds an orchestrator over the ordered candidate list.
// attemptTimeout bounds every individual provider call; zero means 30s.
func NewOrchestrator(gen Generator, models []ModelSpec, attemptTimeout time.Duration, m *metrics.Metrics) *Orchestrator {
	if attemptTimeout <= 0 {
		attemptTimeout = 30 * time.Second
	}
	return &Orchestrator{
		gen:            gen,
		models:         models,
		attemptTimeout: attemptTimeout,
		metrics:        m,
	}
}

// Invoke runs the fallback loop for one prompt. It fails only after every
// candidate has been tried; the returned error wraps the last underlying
// attempt error. A timeout counts as a transport error.
func (o *Orchestrator) Invoke(ctx context.Context, promptText string) (*Result, error) {
	if len(o.models) == 0 {
		return nil, apperrors.GenerationFailed(errors.New("no candidate models configured"))
	}

	var lastErr error
	for _, spec := range o.models {
		attemptCtx, cancel := context.WithTimeout(ctx, o.attemptTimeout)
		start := time.Now()
		text, err := o.gen.Generate(attemptCtx, GenerationCall{
			Model:           spec.Name,
			Prompt:          promptText,
			Temperature:     defaultTemperature,
			OmitTemperature: spec.IsReasoning(),
		})
		cancel()
		elapsed := time.Since(start)

		if err != nil {
			lastErr = err
			o.metrics.ObserveGeneration(spec.Name, metrics.OutcomeError, elapsed)
			log.Warn().
				Str("model", spec.Name).
				Dur("elapsed", elapsed).
				Err(err).
				Msg("generation attempt failed, trying next candidate")
			continue
		}
		if text == "" {
			lastErr = fmt.Errorf("model %s: %w", spec.Name, ErrEmptyCompletion)
			o.metrics.ObserveGeneration(spec.Name, metrics.OutcomeEmpty, elapsed)
			log.Warn().
				Str("model", spec.Name).
				Dur("elapsed", elapsed).
				Msg("generation attempt returned empty output, trying next candidate")
			continue
		}

		o.metrics.ObserveGeneration(spec.Name, metrics.OutcomeOK, elapsed)
		return &Result{ModelUsed: spec.Name, Text: text}, nil
	}

	return nil, apperrors.GenerationFailed(lastErr)
}
