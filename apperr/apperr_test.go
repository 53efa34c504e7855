package apperr

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestIsMatchesByKind(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"same sentinel", ErrTooManyRedirects, ErrTooManyRedirects, true},
		{"wrapped copy", errors.Wrap(&Error{Kind: KindTooManyRedirects, Msg: "other"}, "fetch"), ErrTooManyRedirects, true},
		{"same kind different sentinel", ErrURLRequired, ErrInvalidURL, true},
		{"different kind", ErrProfilePrivate, ErrInvalidOrPrivateProfile, false},
		{"plain error", errors.New("boom"), ErrInvalidURL, false},
		{"upstream status ignored", Upstream(404), Upstream(502), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, errors.Is(tt.err, tt.target))
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"direct", ErrProfilePrivate, KindProfilePrivate},
		{"wrapped once", errors.Wrap(Upstream(500), "scrape"), KindUpstreamHTTP},
		{"wrapped twice", errors.WithMessage(errors.Wrap(FetchFailed(errors.New("dial")), "get"), "scrape"), KindFetchFailed},
		{"plain error", errors.New("boom"), KindInternal},
		{"nil", nil, KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"expected kind", ErrURLRequired, "URL is required"},
		{"wrapped expected kind", errors.Wrap(ErrProfilePrivate, "parse"), ErrProfilePrivate.Msg},
		{"upstream", Upstream(http.StatusNotFound), "Failed to load profile (HTTP 404). Make sure the profile is public."},
		{"internal detail hidden", errors.New("database password leaked"), InternalMessage},
		{"explicit internal kind", &Error{Kind: KindInternal, Msg: "stack trace"}, InternalMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestErrorString(t *testing.T) {
	err := FetchFailed(errors.New("connection reset"))
	require.Contains(t, err.Error(), "fetch_failed")
	require.Contains(t, err.Error(), "connection reset")
	require.Equal(t, "invalid_url: URL is required", ErrURLRequired.Error())
	require.True(t, KindFetchFailed.Expected())
	require.False(t, KindInternal.Expected())
}
