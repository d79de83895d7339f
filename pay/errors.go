/*
errors.go - Centralized error types for the award engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The calculation core itself never fails: anomalies inside a shift become
  warnings attached to the returned breakdown. These errors exist for the
  surrounding layers - catalog lookups, JSON parsing, reference stores.

ERROR CATEGORIES:
  1. Reference-data errors - Unknown award or classification
  2. Input errors - Malformed dates, clock times, windows
  3. Store errors - Database-level failures (wrapped by store packages)

USAGE:
  Downstream packages wrap these errors with additional context:

    if errors.Is(err, pay.ErrAwardNotFound) {
        respondNotFound(w, err)
    }
*/
package pay

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrAwardNotFound is returned when a referenced award id is not in the catalog.
	ErrAwardNotFound = errors.New("award not found")

	// ErrClassificationNotFound is returned when a classification id does not
	// exist within the award being applied.
	ErrClassificationNotFound = errors.New("classification not found")

	// ErrNoDefaultClassification is returned when an award defines no default
	// classification and the caller supplied no override.
	ErrNoDefaultClassification = errors.New("award has no default classification")

	// ErrInvalidWindow is returned when a reference window is malformed
	// (end before start).
	ErrInvalidWindow = errors.New("invalid window: end before start")

	// ErrInvalidDateRange is returned when a date range has end before start.
	ErrInvalidDateRange = errors.New("invalid date range: end before start")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// AwardNotFoundError identifies which award id failed to resolve.
type AwardNotFoundError struct {
	AwardID string
}

func (e *AwardNotFoundError) Error() string {
	return fmt.Sprintf("award not found: %s", e.AwardID)
}

func (e *AwardNotFoundError) Unwrap() error { return ErrAwardNotFound }

// ClassificationNotFoundError identifies a missing classification within an award.
type ClassificationNotFoundError struct {
	AwardID          string
	ClassificationID string
}

func (e *ClassificationNotFoundError) Error() string {
	return fmt.Sprintf("classification not found: %s in award %s", e.ClassificationID, e.AwardID)
}

func (e *ClassificationNotFoundError) Unwrap() error { return ErrClassificationNotFound }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsNotFound returns true if the error indicates missing reference data.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrAwardNotFound) ||
		errors.Is(err, ErrClassificationNotFound) ||
		errors.Is(err, ErrNoDefaultClassification)
}

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidWindow) ||
		errors.Is(err, ErrInvalidDateRange) ||
		IsNotFound(err)
}
