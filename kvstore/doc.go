// Package kvstore adapts the key-value store's primitive operations behind a
// small client with closed result types.
//
// # Result normalization
//
// Every store reply is decoded exactly once, at this boundary, into a fixed
// set of outcomes: [Inserted] or [AlreadyExists] for insert-if-absent, a
// present/absent pair for fetches, and an error for anything else. Transport
// and protocol failures always surface as errors wrapping [ErrUnavailable];
// they are never coerced to "absent" or "already exists".
//
// # Architecture boundaries
//
// The client owns no business logic: no key layout, no serialization, no
// retries. Retry policy belongs to the caller; timeouts belong to the
// configured per-operation deadline and the underlying Redis client.
//
// # What this package must NOT do
//
//   - Interpret stored values.
//   - Retry failed operations.
//   - Import any other authsrv package.
package kvstore
