// Package token issues and inspects short-lived opaque session tokens.
//
// # Token shape
//
// A token is a hyphenated UUID-v4 string (36 characters) stored verbatim at
// tokens:<identity> with a store-enforced TTL. The token itself is the
// record; nothing else is retained server-side.
//
// # Single live token
//
// Each identity has at most one outstanding token: issuing writes the same
// key, so the new token's value and expiry fully replace the old one. Two
// concurrent logins both succeed and the most recent write wins; earlier
// tokens are silently invalidated. This is an accepted trade-off, not a bug.
//
// # What this package must NOT do
//
//   - Refresh or extend a TTL on inspection.
//   - Keep token lists or per-session state.
//   - Log full token values.
package token
