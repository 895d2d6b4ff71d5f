package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup or toggle against a nonexistent card id.
var ErrNotFound = errors.New("card not found")

// ValidationError rejects a submission before any storage side effect.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IngestionError reports a storage-layer failure after validation passed.
// Images staged for the failed submission are discarded by the pipeline.
type IngestionError struct {
	Stage string // "image" | "record"
	Err   error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion failed at %s: %v", e.Stage, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }
