// Package domain errors.go contains sentinel errors
package domain

import "errors"

// Sentinel domain-level errors reused by higher layers. Verification has no
// error channel at all; malformed input is an ordinary Invalid result.
var ErrYearRangeInvalid = errors.New("year range invalid")
