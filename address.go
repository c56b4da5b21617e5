package domains

// Address is the capability surface a parsed host must expose:
// raw bytes, the bare name, renderings with and without a port,
// and an independent copy. Clone is parameterized on the concrete
// type so implementations keep returning themselves.
type Address[T any] interface {
	Bytes() []byte
	Name() string
	String() string
	StringWithPort(port Port) string
	Clone() T
}

var _ Address[*Domain] = (*Domain)(nil)
