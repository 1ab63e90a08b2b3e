package interop

import (
	"testing"

	"httpwire/sink"
	"httpwire/status"
	"httpwire/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Encoding then parsing with an independent parser yields back the same
// method, target, and version.
func TestRequestRoundTrip(t *testing.T) {
	testcases := []struct {
		desc    string
		method  wire.Method
		target  string
		version wire.Version
	}{
		{desc: "GET 1.1", method: wire.MethodGet, target: "/index.html", version: wire.Version11},
		{desc: "POST 1.0", method: wire.MethodPost, target: "/submit?a=b", version: wire.Version10},
		{desc: "DELETE deep path", method: wire.MethodDelete, target: "/v1/things/42", version: wire.Version11},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			tgt, err := wire.NewTargetString(tc.target)
			require.NoError(t, err)

			out := sink.NewGrowable(0)
			w, err := wire.Request(out, tc.method, tgt, tc.version)
			require.NoError(t, err)
			require.NoError(t, w.Add("Host", "example.com"))
			require.NoError(t, w.Finish())

			parsed, err := ParseRequest(out.Bytes())
			require.NoError(t, err)

			assert.Equal(t, tc.method.String(), parsed.Method)
			assert.Equal(t, tc.target, parsed.Target)
			assert.Equal(t, tc.version.String(), parsed.Proto)
			assert.Equal(t, "example.com", parsed.Headers["Host"])
		})
	}
}

func TestExtensionMethodRoundTrip(t *testing.T) {
	m, err := wire.NewMethod("M-SEARCH")
	require.NoError(t, err)
	tgt, err := wire.NewTargetString("*")
	require.NoError(t, err)

	out := sink.NewGrowable(0)
	w, err := wire.Request(out, m, tgt, wire.Version11)
	require.NoError(t, err)
	require.NoError(t, w.Finish())

	parsed, err := ParseRequest(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "M-SEARCH", parsed.Method)
	assert.Equal(t, "*", parsed.Target)
}

// Header names come back with the caller's casing verbatim, values
// byte-for-byte.
func TestHeaderRoundTripPreservesCase(t *testing.T) {
	tgt, err := wire.NewTargetString("/")
	require.NoError(t, err)

	out := sink.NewGrowable(0)
	w, err := wire.Request(out, wire.MethodGet, tgt, wire.Version11)
	require.NoError(t, err)

	headers := map[string]string{
		"Host":             "www.example.com",
		"x-CuStOm-hEaDeR":  "miXed CaSe vAlUe",
		"Accept":           "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8",
		"ACCEPT-ENCODING":  "gzip,deflate",
		"keep-alive":       "115",
		"X-Empty-Is-Legal": "",
	}
	for name, value := range headers {
		require.NoError(t, w.Add(name, value))
	}
	require.NoError(t, w.Finish())

	parsed, err := ParseRequest(out.Bytes())
	require.NoError(t, err)

	for name, value := range headers {
		got, ok := parsed.Headers[name]
		require.True(t, ok, "header %q missing (case mangled?)", name)
		assert.Equal(t, value, got, "header %q", name)
	}
}

func TestResponseRoundTrip(t *testing.T) {
	st, err := status.WithReason(503, "Service Unavailable")
	require.NoError(t, err)

	out := sink.NewGrowable(0)
	w, err := wire.Response(out, wire.Version11, st)
	require.NoError(t, err)
	require.NoError(t, w.ContentLength(0))
	require.NoError(t, w.Add("Retry-After", "120"))
	require.NoError(t, w.Finish())

	parsed, err := ParseResponse(out.Bytes())
	require.NoError(t, err)

	assert.Equal(t, "HTTP/1.1", parsed.Proto)
	assert.Equal(t, 503, parsed.Code)
	assert.Equal(t, "Service Unavailable", parsed.Reason)
	assert.Equal(t, "120", parsed.Headers["Retry-After"])
}
