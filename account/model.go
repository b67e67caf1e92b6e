package account

import "authsrv/secret"

// Account is a stored account record. Identity is unique, case-sensitive and
// non-empty; it is either a user-chosen login or an external-provider
// identity string; both live in the same key namespace.
//
// Accounts are created once and immutable thereafter.
type Account struct {
	Identity string        `json:"identity"`
	Secret   secret.Secret `json:"secret"`
}
