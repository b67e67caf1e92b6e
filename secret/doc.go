// Package secret implements the salted-hash credential codec used by account records.
//
// # Stored format
//
// A [Secret] is a pair of byte sequences:
//
//	hash = SHA-256(plaintext ++ salt)
//	salt = 32 bytes drawn from the caller-supplied entropy source
//
// The construction is fixed by the account record layout in the key-value store;
// changing the primitive or the salt length would invalidate every stored record.
//
// # Architecture boundaries
//
// This package owns encoding and verification only. It never touches the store,
// and it never chooses its own entropy; callers thread an explicit random
// source into [Encode]. A predictable source is a correctness defect, not a
// quality concern.
//
// # What this package must NOT do
//
//   - Store, retrieve, or log plaintext secrets.
//   - Fall back to an ambient or global random generator.
//   - Import any other authsrv package.
package secret
