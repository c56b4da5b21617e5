package domains

import (
	"errors"
	"testing"
)

func Test_Parse(t *testing.T) {
	tests := map[string]struct {
		raw  string
		subs []Subdomain
		sld  SLD
		tld  string
		kind Kind
	}{
		"bare": {
			raw: "example.com",
			sld: "example",
			tld: "com",
		},
		"www": {
			raw:  "www.example.com",
			subs: []Subdomain{"www"},
			sld:  "example",
			tld:  "com",
		},
		"deep": {
			raw:  "a.b.c.example.com",
			subs: []Subdomain{"a", "b", "c"},
			sld:  "example",
			tld:  "com",
		},
		"with-port": {
			raw: "example.com:8080",
			sld: "example",
			tld: "com",
		},
		"localhost": {
			raw: "localhost",
			sld: "localhost",
		},
		"localhost-port": {
			raw: "localhost:8080",
			sld: "localhost",
		},
		"localhost-sub": {
			raw:  "api.localhost",
			subs: []Subdomain{"api"},
			sld:  "localhost",
		},
		"localhost-deep": {
			raw:  "a.b.localhost",
			subs: []Subdomain{"a", "b"},
			sld:  "localhost",
		},
		"localhost-upper": {
			raw: "LOCALHOST",
			sld: "LOCALHOST",
		},
		// The special case only triggers from the rightmost
		// position; here com is a real TLD and localhost an
		// ordinary SLD.
		"localhost-dot-com": {
			raw: "localhost.com",
			sld: "localhost",
			tld: "com",
		},
		"wildcard": {
			raw:  "*.example.com",
			subs: []Subdomain{"*"},
			sld:  "example",
			tld:  "com",
		},
		"wildcard-localhost": {
			raw:  "*.localhost",
			subs: []Subdomain{"*"},
			sld:  "localhost",
		},
		// Disambiguation: a tld-shaped sld pulls the label to
		// its left into the name position.
		"collision": {
			raw:  "a.com.org",
			subs: []Subdomain{"a"},
			sld:  "com",
			tld:  "org",
		},
		"collision-deep": {
			raw:  "a.b.com.org",
			subs: []Subdomain{"a", "b"},
			sld:  "com",
			tld:  "org",
		},
		"collision-bare": {
			raw: "com.org",
			sld: "com",
			tld: "org",
		},
		// The promoted name position is held to sld grammar, so
		// the wildcard does not survive there.
		"collision-wildcard": {
			raw:  "*.com.org",
			kind: MALFORMEDLABEL,
		},
		"wildcard-no-collision": {
			raw:  "*.example.org",
			subs: []Subdomain{"*"},
			sld:  "example",
			tld:  "org",
		},
		"unknown-tld": {
			raw:  "example.notarealtld",
			kind: UNKNOWNTLD,
		},
		"bad-tld-syntax": {
			raw:  "example.c$m",
			kind: MALFORMEDLABEL,
		},
		"leading-hyphen": {
			raw:  "-bad.com",
			kind: MALFORMEDLABEL,
		},
		"bad-subdomain": {
			raw:  "ba_d.example.com",
			kind: MALFORMEDLABEL,
		},
		"missing-sld": {
			raw:  "com",
			kind: MALFORMEDLABEL,
		},
		"empty": {
			raw:  "",
			kind: MALFORMEDLABEL,
		},
		"empty-host-with-port": {
			raw:  ":80",
			kind: MALFORMEDLABEL,
		},
		"port-overflow": {
			raw:  "example.com:99999",
			kind: MALFORMEDPORT,
		},
		"port-alpha": {
			raw:  "example.com:http",
			kind: MALFORMEDPORT,
		},
		"port-empty": {
			raw:  "example.com:",
			kind: MALFORMEDPORT,
		},
		"two-colons": {
			raw:  "example.com:80:90",
			kind: MALFORMEDPORT,
		},
		"wildcard-mixed": {
			raw:  "*.a.example.com",
			kind: INVALIDCOMPOSITION,
		},
		"empty-label": {
			raw:  "a..com",
			kind: MALFORMEDLABEL,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := Parse(test.raw)
			if test.kind != "" {
				if err == nil {
					t.Fatalf("expected %s failure", test.kind)
				}

				if !errors.Is(err, &Error{Kind: test.kind}) {
					t.Fatalf(
						"expected kind %s; got %v",
						test.kind, err,
					)
				}

				if d != nil {
					t.Fatal("no partial Domain on failure")
				}

				if Valid(test.raw) {
					t.Fatal("Valid must agree with Parse")
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !Valid(test.raw) {
				t.Fatal("Valid must agree with Parse")
			}

			subs := d.Subdomains()
			if len(subs) != len(test.subs) {
				t.Fatalf(
					"expected subdomains %v; got %v",
					test.subs, subs,
				)
			}

			for i, sub := range subs {
				if !sub.Equal(test.subs[i]) {
					t.Fatalf(
						"expected subdomains %v; got %v",
						test.subs, subs,
					)
				}
			}

			if !d.SLD().Equal(test.sld) {
				t.Fatalf("expected sld %q; got %q", test.sld, d.SLD())
			}

			if test.tld == "" {
				if d.TLD() != nil {
					t.Fatalf("expected absent tld; got %v", d.TLD())
				}

				return
			}

			if d.TLD() == nil || d.TLD().String() != test.tld {
				t.Fatalf("expected tld %q; got %v", test.tld, d.TLD())
			}
		})
	}
}

func Test_Parse_stability(t *testing.T) {
	// Repeated parses of a collision-bearing input always select
	// the same name/sld boundary.
	first := MustParse("a.com.org")
	for i := 0; i < 100; i++ {
		if !first.Equal(MustParse("a.com.org")) {
			t.Fatal("boundary selection is not stable")
		}
	}
}

func Test_Domain_String(t *testing.T) {
	tests := map[string]struct {
		raw      string
		rendered string
	}{
		"bare":       {raw: "example.com", rendered: "example.com"},
		"www":        {raw: "www.example.com", rendered: "www.example.com"},
		"localhost":  {raw: "a.b.localhost", rendered: "a.b.localhost"},
		"wildcard":   {raw: "*.example.com", rendered: "*.example.com"},
		"collision":  {raw: "a.com.org", rendered: "a.com.org"},
		"upper-tld":  {raw: "example.COM", rendered: "example.com"},
		"upper-sld":  {raw: "EXAMPLE.com", rendered: "EXAMPLE.com"},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			d := MustParse(test.raw)
			if d.String() != test.rendered {
				t.Fatalf(
					"expected %q; got %q",
					test.rendered, d.String(),
				)
			}
		})
	}
}

func Test_Domain_roundtrip(t *testing.T) {
	inputs := []string{
		"example.com",
		"www.example.com",
		"a.b.c.example.com",
		"localhost",
		"api.localhost",
		"*.example.com",
		"a.com.org",
		"a.b.com.org",
		"Example.COM",
		"localhost.com",
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			d := MustParse(raw)

			rendered := d.String()
			if !Valid(rendered) {
				t.Fatalf("rendering %q does not re-parse", rendered)
			}

			if !d.Equal(MustParse(rendered)) {
				t.Fatalf(
					"parse∘render∘parse not idempotent for %q",
					raw,
				)
			}
		})
	}
}

func Test_Domain_StringWithPort(t *testing.T) {
	d := MustParse("example.com:443")

	port, err := ParsePort("443")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.StringWithPort(port) != "example.com:443" {
		t.Fatalf("unexpected rendering: %q", d.StringWithPort(port))
	}
}

func Test_Domain_IsLocal(t *testing.T) {
	if !MustParse("localhost").IsLocal() {
		t.Fatal("expected localhost to be local")
	}

	if !MustParse("a.b.localhost").IsLocal() {
		t.Fatal("expected a.b.localhost to be local")
	}

	if MustParse("localhost.com").IsLocal() {
		t.Fatal("expected localhost.com to not be local")
	}

	if MustParse("example.com").IsLocal() {
		t.Fatal("expected example.com to not be local")
	}
}

func Test_Domain_Equal(t *testing.T) {
	tests := map[string]struct {
		a     string
		b     string
		equal bool
	}{
		"identical": {
			a:     "example.com",
			b:     "example.com",
			equal: true,
		},
		"case-insensitive": {
			a:     "Example.COM",
			b:     "example.com",
			equal: true,
		},
		"subdomain-case": {
			a:     "WWW.example.com",
			b:     "www.example.com",
			equal: true,
		},
		"different-sld": {
			a:     "example.com",
			b:     "sample.com",
			equal: false,
		},
		"different-tld": {
			a:     "example.com",
			b:     "example.org",
			equal: false,
		},
		"subdomain-order": {
			a:     "a.b.example.com",
			b:     "b.a.example.com",
			equal: false,
		},
		"missing-subdomain": {
			a:     "www.example.com",
			b:     "example.com",
			equal: false,
		},
		"localhost-vs-domain": {
			a:     "localhost",
			b:     "localhost.com",
			equal: false,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			a, b := MustParse(test.a), MustParse(test.b)

			if a.Equal(b) != test.equal {
				t.Fatalf(
					"expected Equal(%q, %q) == %v",
					test.a, test.b, test.equal,
				)
			}

			if test.equal && a.Hash() != b.Hash() {
				t.Fatal("equal domains must hash equal")
			}
		})
	}
}

func Test_Domain_Equal_nil(t *testing.T) {
	if MustParse("example.com").Equal(nil) {
		t.Fatal("expected inequality against nil")
	}
}

func Test_Domain_Clone(t *testing.T) {
	d := MustParse("www.example.com")
	c := d.Clone()

	if c == d {
		t.Fatal("expected an independent copy")
	}

	if !d.Equal(c) {
		t.Fatal("expected a structurally equal copy")
	}

	// The copy owns its own label slice.
	subs := c.Subdomains()
	subs[0] = "hijacked"
	if !d.Equal(c) {
		t.Fatal("mutating an accessor copy must not leak")
	}
}

func Test_Domain_Bytes(t *testing.T) {
	d := MustParse("example.com")
	if string(d.Bytes()) != "example.com" {
		t.Fatalf("unexpected bytes: %q", d.Bytes())
	}

	if d.Name() != "example.com" {
		t.Fatalf("unexpected name: %q", d.Name())
	}
}

func Test_New(t *testing.T) {
	com, err := LookupTLD("com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]struct {
		subs []Subdomain
		sld  SLD
		tld  *TLDEntry
		kind Kind
	}{
		"plain": {
			subs: []Subdomain{"www"},
			sld:  "example",
			tld:  com,
		},
		"sole-wildcard": {
			subs: []Subdomain{"*"},
			sld:  "example",
			tld:  com,
		},
		"wildcard-mixed": {
			subs: []Subdomain{"*", "foo"},
			sld:  "example",
			tld:  com,
			kind: INVALIDCOMPOSITION,
		},
		"wildcard-mixed-reversed": {
			subs: []Subdomain{"foo", "*"},
			sld:  "example",
			tld:  com,
			kind: INVALIDCOMPOSITION,
		},
		// The localhost/tld invariant is not re-checked on the
		// direct path.
		"localhost-with-tld": {
			sld: "localhost",
			tld: com,
		},
		"tld-less": {
			sld: "example",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := New(test.subs, test.sld, test.tld)
			if test.kind != "" {
				if err == nil {
					t.Fatalf("expected %s failure", test.kind)
				}

				if !errors.Is(err, &Error{Kind: test.kind}) {
					t.Fatalf(
						"expected kind %s; got %v",
						test.kind, err,
					)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !d.SLD().Equal(test.sld) {
				t.Fatalf("expected sld %q; got %q", test.sld, d.SLD())
			}
		})
	}
}

func Test_New_isolation(t *testing.T) {
	subs := []Subdomain{"www"}

	d, err := New(subs, "example", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	subs[0] = "hijacked"
	if d.Subdomains()[0] != "www" {
		t.Fatal("constructor must copy its input slice")
	}
}

func Test_MustParse_panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()

	MustParse("example.notarealtld")
}

func Test_Error_raw(t *testing.T) {
	_, err := Parse("www.example.notarealtld")
	if err == nil {
		t.Fatal("expected failure")
	}

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *Error; got %T", err)
	}

	if perr.Raw != "www.example.notarealtld" {
		t.Fatalf("error must carry the original input; got %q", perr.Raw)
	}
}
