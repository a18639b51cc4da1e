package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the short machine-readable error code surfaced to callers.
type Code string

const (
	CodeValidation          Code = "validation_error"
	CodeUnsupportedMedia    Code = "unsupported_media"
	CodeGenerationFailed    Code = "generation_failed"
	CodeTranscriptionFailed Code = "transcription_failed"
	CodeNotFound            Code = "not_found"
	CodeRateLimited         Code = "rate_limited"
	CodeInternal            Code = "internal_error"
)

// AppError is the application error carried across service and handler
// layers. Err holds the underlying cause and is never serialized.
type AppError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error code to a response status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeUnsupportedMedia:
		return http.StatusUnsupportedMediaType
	case CodeNotFound:
		return http.StatusNotFound
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeGenerationFailed, CodeTranscriptionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// AsAppError unwraps err to an *AppError if one is in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func UnsupportedMedia(message string) *AppError {
	return &AppError{Code: CodeUnsupportedMedia, Message: message}
}

// GenerationFailed wraps the last underlying error after every candidate
// model has been exhausted.
func GenerationFailed(err error) *AppError {
	msg := "summarization failed"
	if err != nil {
		msg = fmt.Sprintf("summarization failed: %v", err)
	}
	return &AppError{Code: CodeGenerationFailed, Message: msg, Err: err}
}

// TranscriptionFailed wraps the error after both transcription attempts
// failed or came back empty.
func TranscriptionFailed(err error) *AppError {
	msg := "transcription failed"
	if err != nil {
		msg = fmt.Sprintf("transcription failed: %v", err)
	}
	return &AppError{Code: CodeTranscriptionFailed, Message: msg, Err: err}
}

func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Internal(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "internal server error", Err: err}
}
