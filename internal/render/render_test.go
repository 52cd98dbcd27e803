package render

import (
	"testing"

	"github.com/jkorri/hetu/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDescribeLocales(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		input  string
		want   string
	}{
		{
			name:   "en_valid_male",
			locale: "en",
			input:  "050301-679T",
			want:   "050301-679T: valid, male, born 5.3.1901, individual number 679",
		},
		{
			name:   "fi_valid_female",
			locale: "fi",
			input:  "210911+0785",
			want:   "210911+0785: kelvollinen, nainen, syntynyt 21.9.1811, yksilönumero 78",
		},
		{
			name:   "sv_test_male",
			locale: "sv",
			input:  "211123A965F",
			want:   "211123A965F: testbeteckning, man, född 21.11.2023, individnummer 965",
		},
		{
			name:   "en_invalid",
			locale: "en",
			input:  "12345678901",
			want:   "12345678901: invalid",
		},
		{
			name:   "fi_invalid",
			locale: "fi",
			input:  "",
			want:   ": virheellinen",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New(tc.locale)
			got := r.Describe(domain.Verify(tc.input))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnknownLocaleFallsBack(t *testing.T) {
	r := New("klingon")
	assert.Equal(t, LocaleEN, r.Locale())
	got := r.Describe(domain.Verify("260503-998S"))
	assert.Equal(t, "260503-998S: test code, female, born 26.5.1903, individual number 998", got)
}
