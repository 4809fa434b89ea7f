package entity

import (
	"context"
	"errors"
	"fmt"
)

// NotFoundError: the business id is unknown upstream. Fatal, never retried.
type NotFoundError struct {
	BusinessID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("business %q not found", e.BusinessID)
}

// InsufficientEvidenceError: neither enough real reviews nor a valid
// synthetic summary could be obtained. Fatal for the run.
type InsufficientEvidenceError struct {
	BusinessID string
	Reason     string
	Err        error
}

func (e *InsufficientEvidenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("insufficient evidence for %q: %s: %v", e.BusinessID, e.Reason, e.Err)
	}
	return fmt.Sprintf("insufficient evidence for %q: %s", e.BusinessID, e.Reason)
}

func (e *InsufficientEvidenceError) Unwrap() error {
	return e.Err
}

// SummaryUnavailableError: the summarization capability failed or returned
// a malformed summary.
type SummaryUnavailableError struct {
	Reason string
	Err    error
}

func (e *SummaryUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("summary unavailable: %s: %v", e.Reason, e.Err)
	}
	return "summary unavailable: " + e.Reason
}

func (e *SummaryUnavailableError) Unwrap() error {
	return e.Err
}

// GenerationError: an external generation call failed. Transient; subject
// to bounded retry with backoff. A timed-out call is wrapped the same way.
type GenerationError struct {
	Stage AgentRole
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed at %s pass: %v", e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ValidationError: the judge output broke the verdict shape rules.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid verdict: " + e.Reason
}

// IsTransient reports whether err is worth retrying: generation failures
// and deadline expiries are, everything else in the taxonomy is fatal.
func IsTransient(err error) bool {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
