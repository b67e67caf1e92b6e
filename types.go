package authsrv

// RegisterStatus is the closed outcome set of registration.
type RegisterStatus int

const (
	// RegisterOK means this call created the account.
	RegisterOK RegisterStatus = iota
	// RegisterUserExists means an account already existed; nothing was written.
	RegisterUserExists
	// RegisterUnresolved means the external provider did not recognize the
	// supplied token; the store was not touched.
	RegisterUnresolved
)

// RegisterResult is the value outcome of [Service.Register] and
// [Service.RegisterExternal]. Duplicate registration is an expected outcome,
// not an error.
type RegisterResult struct {
	Status   RegisterStatus
	Identity string
}

// AuthStatus is the closed outcome set of authentication.
type AuthStatus int

const (
	// AuthToken means verification succeeded and a token was issued.
	AuthToken AuthStatus = iota
	// AuthInvalidCredentials covers both an unknown identity and a wrong
	// secret; the two are deliberately indistinguishable to the caller.
	AuthInvalidCredentials
	// AuthUnresolved means the external provider did not recognize the
	// supplied token; the store was not touched.
	AuthUnresolved
)

// AuthResult is the value outcome of [Service.Authenticate] and
// [Service.AuthenticateExternal]. Token is set only when Status is
// [AuthToken].
type AuthResult struct {
	Status   AuthStatus
	Identity string
	Token    string
}
