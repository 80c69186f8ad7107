package learning

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors returned by the engine. Controllers map these to HTTP
// statuses; the engine itself never logs and swallows them.
var (
	ErrAttemptLimitExceeded = errors.New("attempt limit exceeded")
	ErrNotEligible          = errors.New("course not fully completed")
	ErrNotFound             = errors.New("record not found")
	ErrLessonLocked         = errors.New("lesson video not watched yet")
)

// ValidationError reports a malformed quiz definition or submission.
// Nothing is persisted when one is returned.
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
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
