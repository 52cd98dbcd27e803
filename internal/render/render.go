// Package render formats verification results as human-readable text. It is
// the presentation adapter: every user-facing word lives here so the domain
// exposes only enumerated values.
package render

import (
	"fmt"

	"github.com/jkorri/hetu/internal/domain"
)

// Locale selects the output language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleFI Locale = "fi"
	LocaleSV Locale = "sv"
)

// labels holds the per-locale word table.
type labels struct {
	valid      string
	invalid    string
	test       string
	male       string
	female     string
	born       string
	individual string
}

var tables = map[Locale]labels{
	LocaleEN: {
		valid:      "valid",
		invalid:    "invalid",
		test:       "test code",
		male:       "male",
		female:     "female",
		born:       "born",
		individual: "individual number",
	},
	LocaleFI: {
		valid:      "kelvollinen",
		invalid:    "virheellinen",
		test:       "testitunnus",
		male:       "mies",
		female:     "nainen",
		born:       "syntynyt",
		individual: "yksilönumero",
	},
	LocaleSV: {
		valid:      "giltig",
		invalid:    "ogiltig",
		test:       "testbeteckning",
		male:       "man",
		female:     "kvinna",
		born:       "född",
		individual: "individnummer",
	},
}

// Renderer formats results for one locale.
type Renderer struct {
	locale Locale
}

// New returns a Renderer for the named locale, falling back to English when
// the locale is unknown.
func New(locale string) Renderer {
	l := Locale(locale)
	if _, ok := tables[l]; !ok {
		l = LocaleEN
	}
	return Renderer{locale: l}
}

// Locale returns the effective locale after fallback.
func (r Renderer) Locale() Locale { return r.locale }

// Describe renders one result as a single line, e.g.
//
//	050301-679T: valid, male, born 5.3.1901, individual number 679
//
// Invalid results carry only the validity word.
func (r Renderer) Describe(res domain.VerificationResult) string {
	lb := tables[r.locale]
	if res.Validity() == domain.Invalid {
		return fmt.Sprintf("%s: %s", res.Source(), lb.invalid)
	}

	validity := lb.valid
	if res.Validity() == domain.Test {
		validity = lb.test
	}
	gender := lb.female
	if res.Gender() == domain.Male {
		gender = lb.male
	}
	date, _ := res.DateString()
	n, _ := res.IndividualNumber()
	return fmt.Sprintf("%s: %s, %s, %s %s, %s %d",
		res.Source(), validity, gender, lb.born, date, lb.individual, n)
}
