// Package authsrv provides the account and token store core of a
// credential-issuance service: atomic account registration, salted-secret
// verification, and short-lived opaque session tokens backed by a single
// key-value store.
//
// The package is designed for concurrent server workloads: Service methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build]. All cross-request coordination is delegated to the store's
// atomicity guarantee; the service holds no in-process locks.
//
// # Architecture boundaries
//
// authsrv is the public surface. It exposes [Service], [Builder], [Config],
// and the result value types ([RegisterResult], [AuthResult],
// MetricsSnapshot). Key layout, record codecs, and store access live in the
// account, token, and kvstore sub-packages; the HTTP surface and settings
// loading live under internal/ and cmd/.
//
// # Outcomes versus errors
//
// "User already exists", "invalid credentials", and "external identity not
// resolvable" are frequent, expected outcomes the caller must branch on; they
// are returned as result values, never as errors. Errors are reserved for
// store transport failures, corrupt records, and resolver transport failures,
// and surface to the HTTP layer as opaque internal errors.
//
// # What this package must NOT do
//
//   - Log or store plaintext secrets, or log full token values.
//   - Retry store operations.
//   - Expose Redis clients or store key layout in its public API.
package authsrv
