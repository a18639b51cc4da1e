package opd

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/techtool/opd-api/internal/catalog"
	"github.com/techtool/opd-api/internal/llm"
	"github.com/techtool/opd-api/internal/model"
	"github.com/techtool/opd-api/internal/prompt"
	"github.com/techtool/opd-api/internal/repository"
	apperrors "github.com/techtool/opd-api/pkg/errors"
	"github.com/techtool/opd-api/pkg/metrics"
)

// OPDServicer produces OPD-card summaries from clinical text or audio.
type OPDServicer interface {
	SummarizeText(ctx context.Context, clinicKey, rawText string) (*model.TextSummary, error)
	SummarizeAudio(ctx context.Context, clinicKey string, audio []byte, filename string) (*model.AudioSummary, error)
}

// Invoker runs the model fallback chain for one prompt.
type Invoker interface {
	Invoke(ctx context.Context, promptText string) (*llm.Result, error)
}

// AudioTranscriber runs the transcription fallback chain for one upload.
type AudioTranscriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// Service wires the composer, orchestrator and transcription chain. The
// archive repository and cache are optional; nil disables them.
type Service struct {
	catalog      *catalog.Catalog
	composer     *prompt.Composer
	orchestrator Invoker
	transcriber  AudioTranscriber
	archive      repository.EncounterRepository
	cache        *gocache.Cache
	metrics      *metrics.Metrics
}

func NewService(
	cat *catalog.Catalog,
	composer *prompt.Composer,
	orchestrator Invoker,
	transcriber AudioTranscriber,
	archive repository.EncounterRepository,
	cache *gocache.Cache,
	m *metrics.Metrics,
) *Service {
	return &Service{
		catalog:      cat,
		composer:     composer,
		orchestrator: orchestrator,
		transcriber:  transcriber,
		archive:      archive,
		cache:        cache,
		metrics:      m,
	}
}

// SummarizeText validates the input and runs the generation fallback chain.
// Validation happens before any provider call.
func (s *Service) SummarizeText(ctx context.Context, clinicKey, rawText string) (*model.TextSummary, error) {
	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" {
		return nil, apperrors.Validation("raw_text is required")
	}

	summary, modelUsed, err := s.summarize(ctx, clinicKey, trimmed)
	if err != nil {
		return nil, err
	}

	s.archiveEncounter(ctx, &model.Encounter{
		ClinicKey: clinicKey,
		Source:    model.EncounterSourceText,
		Summary:   summary,
		ModelUsed: modelUsed,
	})

	return &model.TextSummary{
		ClinicKey: clinicKey,
		ModelUsed: modelUsed,
		Summary:   summary,
	}, nil
}

// SummarizeAudio transcribes the audio with fallback, then summarizes the
// transcript the same way as text input.
func (s *Service) SummarizeAudio(ctx context.Context, clinicKey string, audio []byte, filename string) (*model.AudioSummary, error) {
	if len(audio) == 0 {
		return nil, apperrors.Validation("audio file is required")
	}

	transcript, err := s.transcriber.Transcribe(ctx, audio, filename)
	if err != nil {
		return nil, err
	}

	summary, modelUsed, err := s.summarize(ctx, clinicKey, transcript)
	if err != nil {
		return nil, err
	}

	s.archiveEncounter(ctx, &model.Encounter{
		ClinicKey:  clinicKey,
		Source:     model.EncounterSourceAudio,
		Transcript: transcript,
		Summary:    summary,
		ModelUsed:  modelUsed,
	})

	return &model.AudioSummary{
		ClinicKey:  clinicKey,
		Transcript: transcript,
		ModelUsed:  modelUsed,
		Summary:    summary,
	}, nil
}

type cachedSummary struct {
	Summary   string
	ModelUsed string
}

func (s *Service) summarize(ctx context.Context, clinicKey, text string) (string, string, error) {
	key := cacheKey(clinicKey, text)
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			cached := v.(cachedSummary)
			s.metrics.IncCacheHit()
			return cached.Summary, cached.ModelUsed, nil
		}
	}

	promptText := s.composer.Compose(clinicKey, text)
	result, err := s.orchestrator.Invoke(ctx, promptText)
	if err != nil {
		return "", "", err
	}

	if s.cache != nil {
		s.cache.Set(key, cachedSummary{Summary: result.Text, ModelUsed: result.ModelUsed}, gocache.DefaultExpiration)
	}
	return result.Text, result.ModelUsed, nil
}

// archiveEncounter is best effort: a failed write is logged, never surfaced.
func (s *Service) archiveEncounter(ctx context.Context, encounter *model.Encounter) {
	if s.archive == nil {
		return
	}
	encounter.CreatedAt = time.Now()
	if err := s.archive.Create(ctx, encounter); err != nil {
		s.metrics.IncArchiveWrite(metrics.OutcomeError)
		log.Error().Err(err).Str("clinic", encounter.ClinicKey).Msg("failed to archive encounter")
		return
	}
	s.metrics.IncArchiveWrite(metrics.OutcomeOK)
}

func cacheKey(clinicKey, text string) string {
	h := sha256.Sum256([]byte(clinicKey + "\n" + text))
	return hex.EncodeToString(h[:])
}
