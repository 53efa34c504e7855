// Package apperr classifies the failures a profile lookup can end in.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is the class of a failure as seen by API callers.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidURL
	KindTooManyRedirects
	KindInvalidOrPrivateProfile
	KindProfilePrivate
	KindUpstreamHTTP
	KindFetchFailed
)

func (k Kind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid_url"
	case KindTooManyRedirects:
		return "too_many_redirects"
	case KindInvalidOrPrivateProfile:
		return "invalid_or_private_profile"
	case KindProfilePrivate:
		return "profile_private"
	case KindUpstreamHTTP:
		return "upstream_http_error"
	case KindFetchFailed:
		return "fetch_failed"
	default:
		return "internal"
	}
}

// Expected reports whether failures of this kind are user-facing (HTTP 400)
// rather than faults of the service.
func (k Kind) Expected() bool {
	return k != KindInternal
}

// Error is a classified failure. Msg is safe to show to end users.
type Error struct {
	Kind   Kind
	Status int // upstream HTTP status, only for KindUpstreamHTTP
	Msg    string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same kind, so sentinel-style checks like
// errors.Is(err, apperr.ErrTooManyRedirects) work on wrapped copies.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

const exampleURL = "https://www.cloudskillsboost.google/public_profiles/YOUR-ID"

var (
	ErrURLRequired = &Error{Kind: KindInvalidURL, Msg: "URL is required"}
	ErrInvalidURL  = &Error{
		Kind: KindInvalidURL,
		Msg:  "Please enter a valid Google Cloud Skills Boost public profile URL.\nExample: " + exampleURL,
	}
	ErrTooManyRedirects = &Error{
		Kind: KindTooManyRedirects,
		Msg:  "Too many redirects. The profile could not be loaded.",
	}
	ErrInvalidOrPrivateProfile = &Error{
		Kind: KindInvalidOrPrivateProfile,
		Msg:  "Profile not found or is private. Please make sure your profile URL is correct and your profile is set to public.",
	}
	ErrProfilePrivate = &Error{
		Kind: KindProfilePrivate,
		Msg:  "This profile is set to private. Go to your profile settings and set it to public.",
	}
)

// InternalMessage is what callers see for KindInternal; details stay in logs.
const InternalMessage = "Failed to fetch profile. The profile might be private or unavailable."

// Upstream builds the error for a terminal non-2xx, non-3xx response.
func Upstream(status int) *Error {
	return &Error{
		Kind:   KindUpstreamHTTP,
		Status: status,
		Msg:    fmt.Sprintf("Failed to load profile (HTTP %d). Make sure the profile is public.", status),
	}
}

// FetchFailed wraps a transport failure or timeout.
func FetchFailed(err error) *Error {
	return &Error{
		Kind: KindFetchFailed,
		Msg:  "Failed to fetch profile. The profile host did not respond.",
		Err:  err,
	}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the user-facing message for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind.Expected() {
		return e.Msg
	}
	return InternalMessage
}
