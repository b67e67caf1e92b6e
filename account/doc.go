// Package account persists account records and enforces create-iff-absent
// registration semantics.
//
// # Record layout
//
// Records live at accounts:<identity> as JSON:
//
//	{"identity":"alice","secret":{"hash":"...","salt":"..."}}
//
// hash and salt are base64 per encoding/json []byte handling. The key prefix
// and field names are an interoperability contract with existing deployments.
//
// # Architecture boundaries
//
// This package owns the key layout, the record codec, and the repository over
// the store client. Secret verification and all orchestration belong to the
// service; the repository never inspects plaintext.
//
// # What this package must NOT do
//
//   - Overwrite or merge an existing record on a duplicate create.
//   - Coerce a corrupt stored record into "absent".
//   - Log record contents.
package account
