package domains

import (
	"strings"
	"time"

	"go.structs.dev/gen"
)

// TLDType is the IANA classification of a top level domain.
type TLDType uint8

const (
	GENERIC TLDType = iota
	SPONSORED
	COUNTRY_CODE
	INFRASTRUCTURE
	GENERIC_RESTRICTED
	TEST
)

var tldTypeStrings = gen.FMap[TLDType, string]{
	GENERIC:            "generic",
	SPONSORED:          "sponsored",
	COUNTRY_CODE:       "country-code",
	INFRASTRUCTURE:     "infrastructure",
	GENERIC_RESTRICTED: "generic-restricted",
	TEST:               "test",
}

var tldTypeStringsR = tldTypeStrings.Flip()

func StringToTLDType(str string) TLDType {
	return tldTypeStringsR[str]
}

func (t TLDType) String() string {
	return tldTypeStrings[t]
}

// TLDEntry describes a top level domain as registered with IANA.
// Entries are built once at load time from the embedded table and
// never mutated afterwards.
type TLDEntry struct {
	Code          string
	Type          TLDType
	Provider      string
	RegisteredOn  time.Time
	LastUpdatedOn time.Time
}

func (e *TLDEntry) String() string {
	return strings.ToLower(e.Code)
}

// tldRejected holds the characters the TLD syntax check refuses
// outright, beyond the length bounds.
const tldRejected = "_@#'\"\\$%0123456789"

// ValidTLDSyntax reports whether s is syntactically TLD-shaped:
// length within [2,63] and none of the rejected characters. Pure
// check, no table lookup.
func ValidTLDSyntax(s string) bool {
	if len(s) < 2 || len(s) > 63 {
		return false
	}

	return !strings.ContainsAny(s, tldRejected)
}

// tldKey normalizes a TLD-shaped string into its table key:
// lowercased with hyphens folded to underscores.
func tldKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "-", "_"))
}

// KnownTLD reports whether s passes the syntax check and matches
// a registered code.
func KnownTLD(s string) bool {
	if !ValidTLDSyntax(s) {
		return false
	}

	_, ok := tldTable[tldKey(s)]

	return ok
}

// LookupTLD normalizes s and resolves it against the embedded
// table. The match is exact after normalization; there is no
// fuzzy fallback.
func LookupTLD(s string) (*TLDEntry, error) {
	entry, ok := tldTable[tldKey(s)]
	if !ok {
		return nil, NewErr(
			NOTFOUND, s, nil,
			"top level domain is not registered",
		)
	}

	return entry, nil
}

// TLDs returns the registered codes in table order. The slice is
// freshly allocated; the table itself is never exposed.
func TLDs() []string {
	codes := make([]string, 0, len(tldTable))
	for _, e := range tldTable {
		codes = append(codes, e.String())
	}

	return codes
}
