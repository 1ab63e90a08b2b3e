//go:build noreasonphrase

package status

// The phrase table is compiled out; every status line carries an empty
// reason phrase.
func reasonPhrase(uint) string { return "" }
