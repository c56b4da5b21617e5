package domains

import (
	"regexp"
	"strings"
)

// Wildcard is the sole subdomain label allowed to escape the
// normal label grammar.
const Wildcard = "*"

// labelExp is the DNS label grammar: 1-63 alphanumeric or hyphen
// characters, no leading or trailing hyphen. Case is preserved on
// parse; comparisons elsewhere are case-insensitive.
var labelExp = regexp.MustCompile(
	`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`,
)

// ValidLabel reports whether s satisfies the label grammar.
func ValidLabel(s string) bool {
	return labelExp.MatchString(s)
}

// SLD (Second Level Domain) is the label immediately left of the
// TLD, e.g. www.example.com -> example
type SLD string

// ParseSLD validates s against the label grammar and wraps it.
func ParseSLD(s string) (SLD, error) {
	if !ValidLabel(s) {
		return "", NewErr(
			MALFORMEDLABEL, s, nil,
			"second-level label violates label grammar",
		)
	}

	return SLD(s), nil
}

func (s SLD) String() string {
	return string(s)
}

// IsKnownTLD reports whether the SLD's own text is a registered
// TLD code. This powers the boundary disambiguation during parse
// and nothing else.
func (s SLD) IsKnownTLD() bool {
	return KnownTLD(string(s))
}

// Equal compares case-insensitively.
func (s SLD) Equal(other SLD) bool {
	return strings.EqualFold(string(s), string(other))
}

// Subdomain is any label left of the SLD, e.g.
// www.example.com -> www
type Subdomain string

// ParseSubdomain validates s against the label grammar, or the
// literal wildcard, and wraps it.
func ParseSubdomain(s string) (Subdomain, error) {
	if s == Wildcard {
		return Subdomain(s), nil
	}

	if !ValidLabel(s) {
		return "", NewErr(
			MALFORMEDLABEL, s, nil,
			"subdomain label violates label grammar",
		)
	}

	return Subdomain(s), nil
}

func (s Subdomain) String() string {
	return string(s)
}

// IsWildcard reports whether the subdomain is the wildcard label.
func (s Subdomain) IsWildcard() bool {
	return string(s) == Wildcard
}

// Equal compares case-insensitively.
func (s Subdomain) Equal(other Subdomain) bool {
	return strings.EqualFold(string(s), string(other))
}
