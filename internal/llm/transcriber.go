package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/techtool/opd-api/pkg/errors"
	"github.com/techtool/opd-api/pkg/metrics"
)

// FallbackTranscriber attempts a primary speech-to-text model and falls back
// to exactly one secondary model. An empty-but-successful primary result
// triggers the fallback the same as an error: an empty transcript is
// indistinguishable from a failed call for the caller.
type FallbackTranscriber struct {
	tr             Transcriber
	primary        string
	secondary      string
	language       string
	attemptTimeout time.Duration
	metrics        *metrics.Metrics
}

// NewFallbackTranscriber builds the two-attempt transcription chain. The
// language hint is fixed for the deployment and applied to both attempts.
func NewFallbackTranscriber(tr Transcriber, primary, secondary, language string, attemptTimeout time.Duration, m *metrics.Metrics) *FallbackTranscriber {
	if attemptTimeout <= 0 {
		attemptTimeout = 30 * time.Second
	}
	return &FallbackTranscriber{
		tr:             tr,
		primary:        primary,
		secondary:      secondary,
		language:       language,
		attemptTimeout: attemptTimeout,
		metrics:        m,
	}
}

// Transcribe returns the transcript from the first attempt that yields
// non-empty text, or TranscriptionFailed after both attempts.
func (t *FallbackTranscriber) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	var lastErr error
	for _, model := range []string{t.primary, t.secondary} {
		if model == "" {
			continue
		}
		attemptCtx, cancel := context.WithTimeout(ctx, t.attemptTimeout)
		text, err := t.tr.Transcribe(attemptCtx, TranscriptionCall{
			Audio:    audio,
			Filename: filename,
			Model:    model,
			Language: t.language,
		})
		cancel()

		if err != nil {
			lastErr = err
			t.metrics.ObserveTranscription(model, metrics.OutcomeError)
			log.Warn().
				Str("model", model).
				Err(err).
				Msg("transcription attempt failed")
			continue
		}
		if text == "" {
			lastErr = fmt.Errorf("model %s: %w", model, ErrEmptyCompletion)
			t.metrics.ObserveTranscription(model, metrics.OutcomeEmpty)
			log.Warn().
				Str("model", model).
				Msg("transcription attempt returned empty text")
			continue
		}

		t.metrics.ObserveTranscription(model, metrics.OutcomeOK)
		return text, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no transcription models configured")
	}
	return "", apperrors.TranscriptionFailed(lastErr)
}
