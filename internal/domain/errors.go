package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain errors surfaced by the repositories. The storage layer translates
// driver-level failures into these before returning; callers match with
// errors.Is / errors.As and never see raw driver errors.
var (
	ErrNotFound            = errors.New("not_found")
	ErrDuplicateKey        = errors.New("duplicate_key")
	ErrForeignKeyViolation = errors.New("foreign_key_violation")
	ErrDeleteConflict      = errors.New("delete_conflict")
	ErrConnectivity        = errors.New("connectivity")
)

// ValidationError reports malformed input rejected before any write.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
