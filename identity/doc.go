// Package identity resolves opaque external-provider tokens to stable
// external identity strings.
//
// # Contract
//
// The service depends on a single operation: resolve a token to an identity,
// or report that the provider does not recognize it. "Not recognized" is an
// ordinary outcome; only transport failures are errors.
//
// # Namespace caution
//
// Resolved identities share one account namespace with locally registered
// logins. A deployment must guarantee the provider's identity strings cannot
// be forged by local registration; the optional prefix on [GraphResolver]
// exists for that, but nothing in the core enforces a format. The choice is
// deliberately left to the operator.
//
// # What this package must NOT do
//
//   - Touch the key-value store.
//   - Retry provider calls.
//   - Log external tokens.
package identity
