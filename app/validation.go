package app

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps input field names to validation messages. Handlers
// surface it as the per-field errors object in the admin API envelope.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s: %s", f, e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsFieldErrors extracts FieldErrors from an error chain, if present.
func AsFieldErrors(err error) (FieldErrors, bool) {
	fe, ok := err.(FieldErrors)
	return fe, ok
}
