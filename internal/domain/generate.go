// Package domain generate.go contains the generator producing random but
// well-formed personal identity codes, and the year-range helpers bounding it.
package domain

import (
	"fmt"
	"time"
)

// Supported generation window. Years at or beyond 2100 have no century
// character, years before 1800 likewise.
const (
	MinGeneratorYear = 1800
	MaxGeneratorYear = 2099
)

// Rand is the source of uniform random integers used by Generate.
// IntN must return a uniform value in [0, n) and n must be positive.
// Implementations must be safe for concurrent use if Generate is called
// from multiple goroutines.
type Rand interface {
	IntN(n int) int
}

// GeneratorConfig bounds one generation call. Both years are inclusive.
// Target selects the sequence-number band: Valid draws from [2, 899] and
// Test from [900, 999]. Invalid is never a generation target.
type GeneratorConfig struct {
	MinYear int
	MaxYear int
	Target  Validity
}

// ValidateYearRange checks that [minYear, maxYear] is non-empty and inside
// the supported generation window. Returns ErrYearRangeInvalid on violation.
func ValidateYearRange(minYear, maxYear int) error {
	if minYear < MinGeneratorYear {
		return ErrYearRangeInvalid
	}
	if maxYear > MaxGeneratorYear {
		return ErrYearRangeInvalid
	}
	if minYear > maxYear {
		return ErrYearRangeInvalid
	}
	return nil
}

// ClampYearRange constrains [minYear, maxYear] to the inclusive window
// [lo, hi]. The result may be empty (min > max) when the input range lies
// entirely outside the window on both sides.
func ClampYearRange(minYear, maxYear, lo, hi int) (int, int) {
	if minYear < lo {
		minYear = lo
	}
	if minYear > hi {
		minYear = hi
	}
	if maxYear > hi {
		maxYear = hi
	}
	if maxYear < lo {
		maxYear = lo
	}
	return minYear, maxYear
}

// IsYearRangeValid is a convenience wrapper returning true if
// ValidateYearRange reports no error.
func IsYearRangeValid(minYear, maxYear int) bool {
	return ValidateYearRange(minYear, maxYear) == nil
}

// Generate produces one random well-formed PID within cfg, or false when the
// configuration is out of the supported window or the target is not a
// generatable class. The returned code always passes Verify with the
// requested classification. Generated codes are not globally unique;
// duplicates across calls are possible and acceptable.
func Generate(r Rand, cfg GeneratorConfig) (PID, bool) {
	if ValidateYearRange(cfg.MinYear, cfg.MaxYear) != nil {
		return "", false
	}
	if cfg.Target != Valid && cfg.Target != Test {
		return "", false
	}

	year := cfg.MinYear + r.IntN(cfg.MaxYear-cfg.MinYear+1)
	month := 1 + r.IntN(12)
	day := 1 + r.IntN(28)
	// Re-draw the day now that year and month are fixed so that the 29th
	// through 31st, including leap-day Feb 29, are reachable with correct
	// per-month probability.
	day = 1 + r.IntN(daysInMonth(year, month))

	markers := markersForBase((year / 100) * 100)
	if len(markers) == 0 {
		return "", false
	}
	century := markers[r.IntN(len(markers))]

	var seq int
	if cfg.Target == Test {
		seq = 900 + r.IntN(100)
	} else {
		seq = 2 + r.IntN(898)
	}

	digits := fmt.Sprintf("%02d%02d%02d%03d", day, month, year%100, seq)
	check, ok := controlChar([]rune(digits))
	if !ok {
		return "", false
	}
	return PID(digits[0:6] + string(century) + digits[6:9] + string(check)), true
}

// GenerateMany produces up to count codes, silently skipping individual
// failures. Callers that need exactly count results must compare the
// returned length against count.
func GenerateMany(r Rand, cfg GeneratorConfig, count int) []PID {
	out := make([]PID, 0, count)
	for i := 0; i < count; i++ {
		if pid, ok := Generate(r, cfg); ok {
			out = append(out, pid)
		}
	}
	return out
}

// daysInMonth returns the number of days in the given month of the given
// year under the proleptic Gregorian calendar. Day 0 of the following month
// normalizes to the last day of this one.
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
