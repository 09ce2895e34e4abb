package models

// Origin tells where a payload came from.
type Origin int

const (
	OriginLive Origin = iota
	OriginFallback
)

// SourceMock is the wire tag for fallback payloads.
const SourceMock = "mock"

func (o Origin) String() string {
	if o == OriginFallback {
		return "fallback"
	}
	return "live"
}

// Result is either live provider data or synthetic fallback data. Cause
// carries the provider failure that triggered a fallback.
type Result[T any] struct {
	Data   T
	Origin Origin
	Cause  error
}

// Live wraps provider data.
func Live[T any](data T) Result[T] {
	return Result[T]{Data: data, Origin: OriginLive}
}

// Fallback wraps synthetic data produced because of cause.
func Fallback[T any](data T, cause error) Result[T] {
	return Result[T]{Data: data, Origin: OriginFallback, Cause: cause}
}

// IsFallback reports whether the data is synthetic.
func (r Result[T]) IsFallback() bool { return r.Origin == OriginFallback }

// Source returns the wire source tag: "mock" for fallback data, "" otherwise.
func (r Result[T]) Source() string {
	if r.IsFallback() {
		return SourceMock
	}
	return ""
}
