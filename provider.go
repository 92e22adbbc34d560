package limit

import "context"

// Provider is a strategy interface for computation backends. Submit is called
// at most once per request with validated params; implementations must not
// modify them.
type Provider interface {
	Submit(ctx context.Context, p Params) (Result, error)
}

// Format identifies how Result.Data is encoded.
type Format int

const (
	FormatJSON Format = iota // remote service response body
	FormatText               // executable standard output
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// Result is the opaque outcome of a successful submission. Its contents are
// owned by the provider's backend and are not interpreted here.
type Result struct {
	Format Format
	Data   []byte
}
