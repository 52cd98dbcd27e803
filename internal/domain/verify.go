// Package domain verify.go contains the verification pipeline turning an
// arbitrary input string into a classified VerificationResult.
package domain

import (
	"fmt"
	"sort"
	"time"
)

// Validity classifies a verified code. Invalid is the zero value so a fresh
// result starts out rejected until every check has passed.
type Validity int

const (
	Invalid Validity = iota
	Valid
	Test
)

// String returns the lowercase enum name, used for structured output. It is
// not localized; human-facing words belong to the render layer.
func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case Test:
		return "test"
	default:
		return "invalid"
	}
}

// Gender is derived from the parity of the individual number. Undefined is
// the zero value and accompanies every Invalid classification.
type Gender int

const (
	Undefined Gender = iota
	Female
	Male
)

// String returns the lowercase enum name.
func (g Gender) String() string {
	switch g {
	case Female:
		return "female"
	case Male:
		return "male"
	default:
		return "undefined"
	}
}

// VerificationResult is the immutable outcome of verifying one input string.
// BirthDate and Gender are jointly present (Valid/Test) or jointly absent
// (Invalid). The individual number is reported whenever the three sequence
// characters parse as digits, even when the overall result is Invalid.
type VerificationResult struct {
	validity      Validity
	gender        Gender
	birthDate     time.Time
	hasBirthDate  bool
	individual    int
	hasIndividual bool
	source        string
}

// Verify parses and classifies input. It is total: any string, including
// empty, over-long or non-ASCII input, yields a result classified at worst
// as Invalid. It never panics and never returns an error.
func Verify(input string) VerificationResult {
	res := VerificationResult{source: input}
	rs := []rune(input)
	if len(rs) != pidLength {
		return res
	}
	// The sequence number is surfaced independently of overall validity.
	if n, ok := parseDigits(rs[7:10]); ok {
		res.individual = n
		res.hasIndividual = true
	}
	base, ok := centuryBase(rs[6])
	if !ok {
		return res
	}
	date, ok := parseBirthDate(rs[0:6], base)
	if !ok {
		return res
	}
	payload := make([]rune, 0, 9)
	payload = append(payload, rs[0:6]...)
	payload = append(payload, rs[7:10]...)
	want, ok := controlChar(payload)
	if !ok || rs[10] != want {
		return res
	}
	switch {
	case res.individual >= 2 && res.individual <= 899:
		res.validity = Valid
	case res.individual >= 900:
		res.validity = Test
	default:
		// Sequence numbers 0 and 1 are never issued.
		return res
	}
	res.birthDate = date
	res.hasBirthDate = true
	if res.individual%2 == 0 {
		res.gender = Female
	} else {
		res.gender = Male
	}
	return res
}

// parseBirthDate interprets the six leading digits as DDMMYY under the given
// century base and rejects triples that do not name a real calendar date.
// time.Date normalizes out-of-range components (Feb 30 becomes Mar 1/2), so
// a round-trip comparison catches them.
func parseBirthDate(rs []rune, base int) (time.Time, bool) {
	day, ok := parseDigits(rs[0:2])
	if !ok {
		return time.Time{}, false
	}
	month, ok := parseDigits(rs[2:4])
	if !ok {
		return time.Time{}, false
	}
	yy, ok := parseDigits(rs[4:6])
	if !ok {
		return time.Time{}, false
	}
	year := base + yy
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// Source returns the original input string verbatim.
func (r VerificationResult) Source() string { return r.source }

// Validity returns the classification.
func (r VerificationResult) Validity() Validity { return r.validity }

// Gender returns the derived gender; Undefined whenever the result is Invalid.
func (r VerificationResult) Gender() Gender { return r.gender }

// IsValid reports whether the result classified as an ordinary valid code.
func (r VerificationResult) IsValid() bool { return r.validity == Valid }

// BirthDate returns the decoded birth date and whether one is present.
func (r VerificationResult) BirthDate() (time.Time, bool) {
	return r.birthDate, r.hasBirthDate
}

// IndividualNumber returns the parsed sequence number and whether the three
// sequence characters parsed as digits.
func (r VerificationResult) IndividualNumber() (int, bool) {
	return r.individual, r.hasIndividual
}

// DateString formats the birth date as day.month.year without zero padding,
// e.g. "5.3.1901". The second return is false when no birth date is present.
func (r VerificationResult) DateString() (string, bool) {
	if !r.hasBirthDate {
		return "", false
	}
	return fmt.Sprintf("%d.%d.%d", r.birthDate.Day(), int(r.birthDate.Month()), r.birthDate.Year()), true
}

// Year returns the birth year, or 0 when no birth date is present.
func (r VerificationResult) Year() int {
	if !r.hasBirthDate {
		return 0
	}
	return r.birthDate.Year()
}

// Month returns the birth month, or 0 when no birth date is present.
func (r VerificationResult) Month() time.Month {
	if !r.hasBirthDate {
		return 0
	}
	return r.birthDate.Month()
}

// Day returns the birth day of month, or 0 when no birth date is present.
func (r VerificationResult) Day() int {
	if !r.hasBirthDate {
		return 0
	}
	return r.birthDate.Day()
}

// Equal reports whether two results stem from the identical source string.
func (r VerificationResult) Equal(o VerificationResult) bool {
	return r.source == o.source
}

// Less orders results for sorting. Only Valid results are meaningfully
// ordered: if either operand is not Valid, Less is false, so a stable sort
// leaves non-Valid entries in their original relative position. Among Valid
// results the earlier birth date sorts first, then the smaller individual
// number.
func (r VerificationResult) Less(o VerificationResult) bool {
	if r.validity != Valid || o.validity != Valid {
		return false
	}
	if !r.birthDate.Equal(o.birthDate) {
		return r.birthDate.Before(o.birthDate)
	}
	return r.individual < o.individual
}

// SortResults stable-sorts results in place using Less.
func SortResults(rs []VerificationResult) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Less(rs[j]) })
}
