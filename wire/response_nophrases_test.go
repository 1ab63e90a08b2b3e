//go:build noreasonphrase

package wire

import (
	"testing"

	"httpwire/sink"
	"httpwire/status"

	"github.com/stretchr/testify/require"
)

// With the phrase table compiled out the status line keeps its
// trailing space but no phrase.
func TestResponseNoPhrase(t *testing.T) {
	st, err := status.New(404)
	require.NoError(t, err)

	out := sink.NewGrowable(0)
	w, err := Response(out, Version11, st)
	require.NoError(t, err)
	require.NoError(t, w.Finish())

	require.Equal(t, "HTTP/1.1 404 \r\n\r\n", string(w.Bytes()))
}
