// Package model defines the camp-service domain entities and the pure
// calculations that derive their computed fields.
package model

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Money is exchanged as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// HardCopyRatePerCase is the surcharge per case for hard copy reports.
var HardCopyRatePerCase = decimal.NewFromInt(25)

// ValidationErrors maps a field name to the reason it was rejected.
type ValidationErrors map[string]string

// Error implements error.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return strings.Join(parts, "; ")
}

// FieldError builds a ValidationErrors with a single entry.
func FieldError(field, message string) ValidationErrors {
	return ValidationErrors{field: message}
}

func (v ValidationErrors) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Timestamped is implemented by entities that record their creation time.
type Timestamped interface {
	GetCreatedAt() time.Time
	SetCreatedAt(time.Time)
}
