// Package domain pid.go contains the PID value type and the fixed encoding
// tables shared by verification and generation.
package domain

// checksumAlphabet is the 31-character alphabet used to derive the control
// character. The letters G, I, O and Q are omitted to avoid visual ambiguity.
const checksumAlphabet = "0123456789ABCDEFHJKLMNPRSTUVWXY"

// pidLength is the fixed length of a personal identity code in code points.
const pidLength = 11

// centuryMarker pairs a century character with the century base it encodes.
type centuryMarker struct {
	char rune
	base int
}

// centuryMarkers maps the character at position 6 of a PID to a century base.
// The table is ordered so generation can pick deterministically under a
// seeded random source. Several markers share a base: '-' through 'U' all
// encode 1900 and 'A' through 'F' all encode 2000.
var centuryMarkers = []centuryMarker{
	{'+', 1800},
	{'-', 1900}, {'Y', 1900}, {'X', 1900}, {'W', 1900}, {'V', 1900}, {'U', 1900},
	{'A', 2000}, {'B', 2000}, {'C', 2000}, {'D', 2000}, {'E', 2000}, {'F', 2000},
}

// PID is a Finnish personal identity code in its 11-character string form.
type PID string

// String returns the string form of the PID.
func (p PID) String() string { return string(p) }

// Valid reports whether the PID verifies as an ordinary (non-test) code.
func (p PID) Valid() bool { return Verify(string(p)).IsValid() }

// centuryBase returns the century base encoded by c, or false when c is not
// a known century character.
func centuryBase(c rune) (int, bool) {
	for _, m := range centuryMarkers {
		if m.char == c {
			return m.base, true
		}
	}
	return 0, false
}

// markersForBase returns every century character encoding base, in table order.
func markersForBase(base int) []rune {
	var out []rune
	for _, m := range centuryMarkers {
		if m.base == base {
			out = append(out, m.char)
		}
	}
	return out
}

// parseDigits interprets rs as an ASCII decimal numeral. It returns false
// if any rune falls outside '0'..'9'.
func parseDigits(rs []rune) (int, bool) {
	n := 0
	for _, c := range rs {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// controlChar computes the control character for the nine payload digits of
// a PID (six date digits followed by the three sequence digits). It returns
// false if any rune is not an ASCII digit.
func controlChar(digits []rune) (rune, bool) {
	n, ok := parseDigits(digits)
	if !ok {
		return 0, false
	}
	return rune(checksumAlphabet[n%31]), true
}
