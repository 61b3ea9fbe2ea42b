// Package query defines the common result shape every external lookup
// resolves to. A backend call never surfaces a raw fault to its caller: it
// ends up as exactly one of success-with-records, empty, or a typed failure.
package query

import "fmt"

// Kind is the closed set of failure categories a backend call can produce.
type Kind uint8

const (
	// APIError: the service answered 2xx but reported an error of its own.
	APIError Kind = iota
	// AuthError: the service rejected our credentials (HTTP 401).
	AuthError
	// RateLimited: the service throttled us (HTTP 429).
	RateLimited
	// HTTPError: any other non-2xx status.
	HTTPError
	// Unreachable: no response at all (connection failure or timeout).
	Unreachable
	// ProcessError: a local tool exited non-zero or wrote to stderr.
	ProcessError
	// Unknown: anything that slipped past the cases above.
	Unknown
)

func (k Kind) String() string {
	switch k {
	case APIError:
		return "api_error"
	case AuthError:
		return "auth_error"
	case RateLimited:
		return "rate_limited"
	case HTTPError:
		return "http_error"
	case Unreachable:
		return "unreachable"
	case ProcessError:
		return "process_error"
	case Unknown:
		return "unknown"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// UserMessage resolves the user-facing text for a failure kind. All wording
// lives here so every new kind gets a message in exactly one place.
func (k Kind) UserMessage() string {
	switch k {
	case APIError:
		return "The flight data service rejected the request."
	case AuthError:
		return "The flight data service did not accept our credentials. The bot operator needs to check the API key."
	case RateLimited:
		return "The flight data service is rate limiting us. Please try again later."
	case HTTPError:
		return "The flight data service answered with an unexpected error."
	case Unreachable:
		return "Could not reach the flight data service. It may be down or very slow."
	case ProcessError:
		return "The recon tool reported an error."
	case Unknown:
		return "Something unexpected went wrong while fetching data."
	}
	return "Something unexpected went wrong while fetching data."
}

// Failure is the error arm of a Result.
type Failure struct {
	Kind    Kind
	Message string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Result is the outcome of one backend call: records, nothing, or a failure.
// The zero value is an empty result.
type Result[T any] struct {
	Records []T
	Failure *Failure
}

// Ok returns a successful result carrying records.
func Ok[T any](records []T) Result[T] {
	return Result[T]{Records: records}
}

// Empty returns a result with no records and no failure.
func Empty[T any]() Result[T] {
	return Result[T]{}
}

// Fail returns a failed result of the given kind.
func Fail[T any](kind Kind, format string, args ...any) Result[T] {
	return Result[T]{Failure: &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}}
}

// OK reports whether the result carries at least one record.
func (r Result[T]) OK() bool { return r.Failure == nil && len(r.Records) > 0 }

// IsEmpty reports whether the call succeeded but matched nothing.
func (r Result[T]) IsEmpty() bool { return r.Failure == nil && len(r.Records) == 0 }

// Failed reports whether the call ended in a failure.
func (r Result[T]) Failed() bool { return r.Failure != nil }
