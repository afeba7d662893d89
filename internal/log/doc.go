// Package log provides privacy-preserving logging built on top of the
// standard slog package.
//
// Browsing history is personal data, and URLs in it routinely carry session
// identifiers and search terms in their query strings. The PrivacyHandler
// rewrites log attributes before they reach the output:
//   - URL values lose their query string, fragment and password
//   - values under sensitive keys (cookie, token, password, ...) are masked
//   - values that look like credentials (bearer tokens, JWTs, private keys)
//     are masked regardless of key
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("skipped record", "url", "https://example.com/search?q=private")
//	// url=https://example.com/search
package log
