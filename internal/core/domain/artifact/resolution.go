// Package artifact defines resolution and install result types shared by
// the resolvers, the fetcher and the assembler.
package artifact

import "fmt"

// Status classifies the outcome of resolving a descriptor to a download.
type Status int

const (
	// StatusResolved means a concrete filename and URL were found.
	StatusResolved Status = iota
	// StatusRateLimited means the upstream API refused the request for
	// quota reasons; retrying later (or supplying a token) may succeed.
	StatusRateLimited
	// StatusUnresolvable means no matching asset or version exists; a
	// retry will not help.
	StatusUnresolvable
)

func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusRateLimited:
		return "rate-limited"
	case StatusUnresolvable:
		return "unresolvable"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Resolution is the tagged result of a resolver call. Exactly one of the
// two halves is meaningful: Filename/DownloadURL when Status is
// StatusResolved, Reason otherwise.
type Resolution struct {
	Status      Status
	Filename    string
	DownloadURL string
	// Reason is a human-readable explanation carrying enough context to be
	// actionable (the missing pattern, version, or remediation guidance).
	Reason string
}

// Resolved builds a successful resolution.
func Resolved(filename, url string) Resolution {
	return Resolution{Status: StatusResolved, Filename: filename, DownloadURL: url}
}

// RateLimited builds a retryable failure.
func RateLimited(reason string) Resolution {
	return Resolution{Status: StatusRateLimited, Reason: reason}
}

// Unresolvable builds a terminal failure.
func Unresolvable(reason string) Resolution {
	return Resolution{Status: StatusUnresolvable, Reason: reason}
}

// OK reports whether the resolution carries a usable download.
func (r Resolution) OK() bool { return r.Status == StatusResolved }

// FetchError reports a failed download or extraction for one artifact.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
