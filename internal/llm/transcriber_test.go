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

type fakeTranscriber struct {
	calls     []TranscriptionCall
	responses map[string]string
	errs      map[string]error
}

func (f *fakeTranscriber) Transcribe(_ context.Context, call TranscriptionCall) (string, error) {
	f.calls = append(f.calls, call)
	if err, ok := f.errs[call.Model]; ok {
		return "", err
	}
	return f.responses[call.Model], nil
}

func TestTranscribePrimarySuccess(t *testing.T) {
	tr := &fakeTranscriber{responses: map[string]string{"primary-model": "สวัสดีครับ"}}
	ft := NewFallbackTranscriber(tr, "primary-model", "whisper-1", "th", time.Second, nil)

	text, err := ft.Transcribe(context.Background(), []byte("wav"), "note.wav")
	require.NoError(t, err)
	assert.Equal(t, "สวัสดีครับ", text)
	require.Len(t, tr.calls, 1)
	assert.Equal(t, "th", tr.calls[0].Language)
	assert.Equal(t, "note.wav", tr.calls[0].Filename)
}

func TestTranscribePrimaryErrorFallsBack(t *testing.T) {
	tr := &fakeTranscriber{
		responses: map[string]string{"whisper-1": "transcript"},
		errs:      map[string]error{"primary-model": errors.New("boom")},
	}
	ft := NewFallbackTranscriber(tr, "primary-model", "whisper-1", "th", time.Second, nil)

	text, err := ft.Transcribe(context.Background(), []byte("wav"), "note.wav")
	require.NoError(t, err)
	assert.Equal(t, "transcript", text)
	require.Len(t, tr.calls, 2)
	assert.Equal(t, "whisper-1", tr.calls[1].Model)
}

func TestTranscribeEmptyPrimaryFallsBack(t *testing.T) {
	tr := &fakeTranscriber{responses: map[string]string{
		"primary-model": "",
		"whisper-1":     "transcript",
	}}
	ft := NewFallbackTranscriber(tr, "primary-model", "whisper-1", "th", time.Second, nil)

	text, err := ft.Transcribe(context.Background(), []byte("wav"), "note.wav")
	require.NoError(t, err)
	assert.Equal(t, "transcript", text)
	assert.Len(t, tr.calls, 2)
}

func TestTranscribeBothAttemptsFail(t *testing.T) {
	secondaryErr := errors.New("secondary down")
	tr := &fakeTranscriber{errs: map[string]error{
		"primary-model": errors.New("primary down"),
		"whisper-1":     secondaryErr,
	}}
	ft := NewFallbackTranscriber(tr, "primary-model", "whisper-1", "th", time.Second, nil)

	_, err := ft.Transcribe(context.Background(), []byte("wav"), "note.wav")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeTranscriptionFailed, appErr.Code)
	assert.ErrorIs(t, err, secondaryErr)
	// never more than two attempts
	assert.Len(t, tr.calls, 2)
}

func TestTranscribeNoThirdFallback(t *testing.T) {
	tr := &fakeTranscriber{responses: map[string]string{}}
	ft := NewFallbackTranscriber(tr, "primary-model", "whisper-1", "th", time.Second, nil)

	_, err := ft.Transcribe(context.Background(), []byte("wav"), "note.wav")
	require.Error(t, err)
	assert.Len(t, tr.calls, 2)
}
