//go:build !noreasonphrase

package status

import (
	"testing"

	"httpwire/rule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardPhrases(t *testing.T) {
	testcases := []struct {
		code   uint
		reason string
	}{
		{100, "Continue"},
		{200, "OK"},
		{204, "No Content"},
		{301, "Moved Permanently"},
		{404, "Not Found"},
		{418, "I'm a Teapot"},
		{451, "Unavailable for Legal Reasons"},
		{500, "Internal Server Error"},
		{511, "Network Authentication Required"},
	}

	for _, tc := range testcases {
		s, err := New(tc.code)
		require.NoError(t, err)
		assert.Equal(t, tc.reason, s.Reason(), "code %d", tc.code)
	}
}

// Unknown codes fall back to the empty phrase, never an error.
func TestUnknownCodeFallback(t *testing.T) {
	for _, code := range []uint{306, 599, 719, 999} {
		s, err := New(code)
		require.NoError(t, err)
		assert.Equal(t, "", s.Reason(), "code %d", code)
	}
}

// Table content has to satisfy the same grammar as custom phrases.
func TestTablePhrasesObeyGrammar(t *testing.T) {
	for i, phrase := range reasonPhrases {
		assert.NoError(t, rule.CheckReason(phrase), "code %d", i+100)
	}
}

func TestWellKnownPhrases(t *testing.T) {
	assert.Equal(t, "OK", OK.Reason())
	assert.Equal(t, "Not Found", NotFound.Reason())
	assert.Equal(t, "I'm a Teapot", ImATeapot.Reason())
}
