// Package detect implements the spoofing detectors that run on a
// registrable domain: homoglyph substitution and typosquatting.
package detect

import "strings"

// Homoglyph pairs a canonical ASCII letter with characters that render like it
type Homoglyph struct {
	Canonical   rune
	Confusables []rune
}

// DefaultHomoglyphs is the fixed confusable table. Entries are checked in order.
// Widening it changes detection recall and needs matching test updates.
var DefaultHomoglyphs = HomoglyphTable{
	{'a', []rune{'а'}},           // Cyrillic a
	{'e', []rune{'е'}},           // Cyrillic ie
	{'i', []rune{'і', 'ı', '1'}}, // Cyrillic i, Turkish dotless i, digit one
	{'l', []rune{'I', 'ӏ'}},      // Latin capital I, Cyrillic palochka
	{'o', []rune{'о', '0'}},      // Cyrillic o, digit zero
	{'p', []rune{'р'}},           // Cyrillic er
	{'c', []rune{'с'}},           // Cyrillic es
	{'y', []rune{'у'}},           // Cyrillic u
	{'x', []rune{'х'}},           // Cyrillic ha
	{'v', []rune{'ν'}},           // Greek nu
	{'w', []rune{'ѡ'}},           // Cyrillic omega
}

// SubstitutionKind tells how a confusable was used
type SubstitutionKind string

const (
	// SubstitutionPartial: the confusable appears next to the real letter.
	SubstitutionPartial SubstitutionKind = "partial"
	// SubstitutionFull: the confusable replaces every occurrence of the letter.
	SubstitutionFull SubstitutionKind = "full"
)

// HomoglyphMatch describes the first confusable found in a domain
type HomoglyphMatch struct {
	Canonical  rune
	Confusable rune
	Kind       SubstitutionKind
}

// HomoglyphTable is an ordered confusable table
type HomoglyphTable []Homoglyph

// Find returns the first confusable present in domain. Matching is
// case-sensitive so a capital I standing in for l is caught.
func (t HomoglyphTable) Find(domain string) (HomoglyphMatch, bool) {
	for _, h := range t {
		canonicalPresent := strings.ContainsRune(domain, h.Canonical)
		for _, c := range h.Confusables {
			if c == h.Canonical || !strings.ContainsRune(domain, c) {
				continue
			}
			kind := SubstitutionFull
			if canonicalPresent {
				kind = SubstitutionPartial
			}
			return HomoglyphMatch{Canonical: h.Canonical, Confusable: c, Kind: kind}, true
		}
	}
	return HomoglyphMatch{}, false
}

// HasHomoglyphConfusion reports whether domain contains a confusable
// character from DefaultHomoglyphs.
func HasHomoglyphConfusion(domain string) bool {
	_, found := DefaultHomoglyphs.Find(domain)
	return found
}
