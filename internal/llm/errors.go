package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrorKind classifies a failed assistant call.
type ErrorKind string

// Error kinds.
const (
	ErrorKindMissingCredential ErrorKind = "missing_credential"
	ErrorKindQuotaExceeded     ErrorKind = "quota_exceeded"
	ErrorKindContentSafety     ErrorKind = "content_safety"
	ErrorKindTransient         ErrorKind = "transient"
	ErrorKindUnknown           ErrorKind = "unknown"
)

// User-facing replies shown in the transcript in place of an answer.
const (
	MessageNotConfigured = "Bot is not properly configured. Please contact the administrator."
	MessageUnavailable   = "Service is temporarily unavailable. Please try again later."
	MessageGenericError  = "Sorry, I encountered an error. Please try again."
)

// LLMError represents a normalized failure from the assistant client.
type LLMError struct {
	// Kind categorizes the error
	Kind ErrorKind

	// Message is a human-readable error message
	Message string

	// Err is the underlying error
	Err error
}

// Error implements the error interface.
func (e *LLMError) Error() string {
	return fmt.Sprintf("LLM %s error: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *LLMError) Unwrap() error {
	return e.Err
}

// NewMissingCredentialError is returned before any network call when no API key is configured.
func NewMissingCredentialError() *LLMError {
	return &LLMError{
		Kind:    ErrorKindMissingCredential,
		Message: "API key configuration error",
	}
}

// NewAssistantError wraps a raw backend failure with its classification.
func NewAssistantError(err error) *LLMError {
	kind := ClassifyError(err)

	var message string
	switch kind {
	case ErrorKindMissingCredential:
		message = "API key configuration error"
	case ErrorKindQuotaExceeded:
		message = "API quota exceeded"
	case ErrorKindContentSafety:
		message = "Content safety error"
	case ErrorKindTransient:
		message = "Request did not complete, try again"
	default:
		message = "Failed to get response from Gemini API"
	}

	return &LLMError{Kind: kind, Message: message, Err: err}
}

// Classify maps raw error text to an ErrorKind. Matching is an exact-case
// substring test, checked in the order credential, safety, quota.
func Classify(raw string) ErrorKind {
	switch {
	case strings.Contains(raw, "API key"):
		return ErrorKindMissingCredential
	case strings.Contains(raw, "SAFETY"):
		return ErrorKindContentSafety
	case strings.Contains(raw, "quota"):
		return ErrorKindQuotaExceeded
	default:
		return ErrorKindUnknown
	}
}

// ClassifyError classifies an error value. Already-classified errors keep
// their kind; cancellations and network timeouts are transient; everything
// else falls back to Classify on the error text.
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return ErrorKindUnknown
	}

	var llmErr *LLMError
	if errors.As(err, &llmErr) {
		return llmErr.Kind
	}

	if kind := Classify(err.Error()); kind != ErrorKindUnknown {
		return kind
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrorKindTransient
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrorKindTransient
	}

	return ErrorKindUnknown
}

// UserMessage returns the transcript text for a failure of the given kind.
func UserMessage(kind ErrorKind) string {
	switch kind {
	case ErrorKindMissingCredential:
		return MessageNotConfigured
	case ErrorKindQuotaExceeded:
		return MessageUnavailable
	default:
		return MessageGenericError
	}
}
