package domains

import (
	"hash/fnv"
	"strings"
)

// localhost is the only second-level label that produces a
// TLD-less Domain, and only from the rightmost position.
const localhost = "localhost"

// Domain is an immutable host name broken into its ordered
// subdomains, second-level domain, and optional registered top
// level domain. Values are created only through Parse or New and
// never mutated, so they are safe to share across goroutines.
type Domain struct {
	subdomains []Subdomain
	sld        SLD
	tld        *TLDEntry
}

// Parse converts a raw `host[:port]` string into a Domain. The
// phases run in order and fail fast: port segment, dot split,
// localhost branch, TLD resolution, SLD selection, remaining
// subdomains. Any violation aborts the whole parse with an error
// carrying the original input; no partial Domain is ever produced.
func Parse(s string) (*Domain, error) {
	host := s
	if i := strings.IndexByte(s, ':'); i != -1 {
		if strings.IndexByte(s[i+1:], ':') != -1 {
			return nil, NewErr(
				MALFORMEDPORT, s, nil,
				"at most one port separator is allowed",
			)
		}

		host = s[:i]

		// The port segment is vetted before any label work
		// begins.
		_, err := ParsePort(s[i+1:])
		if err != nil {
			return nil, NewErr(
				MALFORMEDPORT, s, err,
				"invalid port segment",
			)
		}
	}

	if host == "" {
		return nil, NewErr(
			MALFORMEDLABEL, s, nil,
			"host must not be empty",
		)
	}

	labels := strings.Split(host, ".")
	last := labels[len(labels)-1]

	// Localhost branch: the rightmost label becomes the SLD and
	// the TLD is absent. Every other label must hold up as a
	// subdomain on its own.
	if strings.EqualFold(last, localhost) {
		subs, err := parseSubdomains(labels[:len(labels)-1], s)
		if err != nil {
			return nil, err
		}

		return compose(subs, SLD(last), nil, s)
	}

	// Normal branch: the rightmost label must be TLD-shaped and
	// registered. A plausible but unknown TLD is rejected here,
	// never folded into the SLD.
	if !ValidTLDSyntax(last) {
		return nil, NewErr(
			MALFORMEDLABEL, s, nil,
			"top level label violates tld syntax",
		)
	}

	entry, err := LookupTLD(last)
	if err != nil {
		return nil, NewErr(
			UNKNOWNTLD, s, err,
			"unrecognized top level domain",
		)
	}

	if len(labels) < 2 {
		return nil, NewErr(
			MALFORMEDLABEL, s, nil,
			"missing second-level label",
		)
	}

	sld, err := ParseSLD(labels[len(labels)-2])
	if err != nil {
		return nil, NewErr(
			MALFORMEDLABEL, s, err,
			"invalid second-level label",
		)
	}

	rest := labels[:len(labels)-2]

	// Disambiguation: an SLD that reads as a registered TLD code
	// signals one extra label of context. The label to its left
	// is promoted into the name position and held to the stricter
	// SLD grammar; the wildcard never survives there.
	var promoted []Subdomain
	if len(rest) > 0 && sld.IsKnownTLD() {
		name, err := ParseSLD(rest[len(rest)-1])
		if err != nil {
			return nil, NewErr(
				MALFORMEDLABEL, s, err,
				"invalid name label left of a tld-shaped sld",
			)
		}

		promoted = []Subdomain{Subdomain(name)}
		rest = rest[:len(rest)-1]
	}

	subs, err := parseSubdomains(rest, s)
	if err != nil {
		return nil, err
	}

	return compose(append(subs, promoted...), sld, entry, s)
}

// MustParse is Parse for literals; it panics on error.
func MustParse(s string) *Domain {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// Valid runs the full parse and collapses every failure kind into
// false. It never panics.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// New assembles a Domain directly. Only the wildcard exclusivity
// invariant is re-checked on this path; directly assembled values
// are otherwise taken as given.
func New(subdomains []Subdomain, sld SLD, tld *TLDEntry) (*Domain, error) {
	subs := make([]Subdomain, len(subdomains))
	copy(subs, subdomains)

	return compose(subs, sld, tld, render(subs, sld, tld))
}

func parseSubdomains(labels []string, raw string) ([]Subdomain, error) {
	subs := make([]Subdomain, 0, len(labels))
	for _, label := range labels {
		sub, err := ParseSubdomain(label)
		if err != nil {
			return nil, NewErr(
				MALFORMEDLABEL, raw, err,
				"invalid subdomain label",
			)
		}

		subs = append(subs, sub)
	}

	return subs, nil
}

// compose enforces the construction-time invariant shared by every
// path: the wildcard subdomain is legal only on its own.
func compose(
	subs []Subdomain,
	sld SLD,
	tld *TLDEntry,
	raw string,
) (*Domain, error) {
	if len(subs) > 1 {
		for _, sub := range subs {
			if sub.IsWildcard() {
				return nil, NewErr(
					INVALIDCOMPOSITION, raw, nil,
					"wildcard must be the sole subdomain",
				)
			}
		}
	}

	return &Domain{
		subdomains: subs,
		sld:        sld,
		tld:        tld,
	}, nil
}

func render(subs []Subdomain, sld SLD, tld *TLDEntry) string {
	var b strings.Builder
	for _, sub := range subs {
		b.WriteString(string(sub))
		b.WriteByte('.')
	}

	b.WriteString(string(sld))

	if tld != nil {
		b.WriteByte('.')
		b.WriteString(tld.String())
	}

	return b.String()
}

// Subdomains returns the ordered subdomain labels. The slice is a
// copy; the Domain itself never changes.
func (d *Domain) Subdomains() []Subdomain {
	subs := make([]Subdomain, len(d.subdomains))
	copy(subs, d.subdomains)

	return subs
}

func (d *Domain) SLD() SLD {
	return d.sld
}

// TLD returns the registry entry, or nil for localhost domains.
func (d *Domain) TLD() *TLDEntry {
	return d.tld
}

// IsLocal reports whether the Domain is the TLD-less localhost
// form.
func (d *Domain) IsLocal() bool {
	return d.tld == nil && strings.EqualFold(string(d.sld), localhost)
}

// String renders the Domain back into its host form: each
// subdomain in order, the SLD, then the TLD when present. It is
// the left inverse of Parse for every producible value.
func (d *Domain) String() string {
	return render(d.subdomains, d.sld, d.tld)
}

// StringWithPort renders the host form with the port appended.
func (d *Domain) StringWithPort(port Port) string {
	return d.String() + ":" + port.String()
}

// Name returns the host name without any port, satisfying the
// address contract.
func (d *Domain) Name() string {
	return d.String()
}

// Bytes returns the encoding of the rendered host form.
func (d *Domain) Bytes() []byte {
	return []byte(d.String())
}

// Equal compares structurally: order-sensitive on subdomains,
// case-insensitive on every label and on the TLD code.
func (d *Domain) Equal(other *Domain) bool {
	if other == nil {
		return false
	}

	if len(d.subdomains) != len(other.subdomains) {
		return false
	}

	for i, sub := range d.subdomains {
		if !sub.Equal(other.subdomains[i]) {
			return false
		}
	}

	if !d.sld.Equal(other.sld) {
		return false
	}

	if d.tld == nil || other.tld == nil {
		return d.tld == other.tld
	}

	return strings.EqualFold(d.tld.Code, other.tld.Code)
}

// Hash folds the case-normalized rendering through FNV-1a so that
// equal Domains hash equal.
func (d *Domain) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToLower(d.String())))

	return h.Sum64()
}

// Clone returns an independent, structurally equal copy. All
// fields are immutable, so a shallow copy of the label slice
// suffices.
func (d *Domain) Clone() *Domain {
	subs := make([]Subdomain, len(d.subdomains))
	copy(subs, d.subdomains)

	return &Domain{
		subdomains: subs,
		sld:        d.sld,
		tld:        d.tld,
	}
}
