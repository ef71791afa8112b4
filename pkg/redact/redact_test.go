package redact

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAPIKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want string
	}{
		{"Q6vHoaVm5L1u2ZAW", "Q6vH***"},
		{"abcd", "***"},
		{"ab", "***"},
		{"", ""},
	}

	for _, c := range cases {
		require.Equal(t, c.want, APIKey(c.in), c.in)
	}
}

func TestURL_MasksSecretParams(t *testing.T) {
	t.Parallel()

	got := URL("https://api.tumblr.com/v2/blog/x/posts/photo?api_key=secret&offset=20")
	require.Equal(t, "https://api.tumblr.com/v2/blog/x/posts/photo?api_key=REDACTED&offset=20", got)
	require.NotContains(t, got, "secret")
}

func TestURL_WithoutSecrets_Unchanged(t *testing.T) {
	t.Parallel()

	raw := "https://example.org/a?offset=20"
	require.Equal(t, raw, URL(raw))
}

func TestURL_Unparsable(t *testing.T) {
	t.Parallel()

	require.Equal(t, Placeholder, URL("http://[::1"))
}

func TestError_RemovesSecrets(t *testing.T) {
	t.Parallel()

	err := errors.New(`Get "https://api.example/posts?api_key=k3y%2Fx": dial tcp: refused`)
	msg := Error(err, "k3y/x")

	require.NotContains(t, msg, "k3y")
	require.Contains(t, msg, "dial tcp: refused")
	require.Equal(t, "", Error(nil, "x"))
}
