package domain

// Error is the closed domain error type. Every failure the API can surface
// carries a stable machine-readable code; handlers and the central error
// handler match against the sentinel values below with errors.Is.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches by code so wrapped sentinels still compare equal.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Authentication and authorization failures. InvalidCredentials is shared by
// unknown-email and wrong-password so the response does not reveal which
// factor failed.
var (
	ErrEmailExists        = &Error{Code: "AUTH_001", Message: "email already registered"}
	ErrInvalidCredentials = &Error{Code: "AUTH_002", Message: "invalid email or password"}
	ErrInvalidToken       = &Error{Code: "AUTH_003", Message: "invalid token"}
	ErrExpiredToken       = &Error{Code: "AUTH_004", Message: "token has expired"}
	ErrAdminAccessDenied  = &Error{Code: "AUTH_005", Message: "admin access required"}
	ErrUserInactive       = &Error{Code: "AUTH_006", Message: "account is deactivated"}
	ErrUnauthenticated    = &Error{Code: "AUTH_007", Message: "no token supplied"}
	ErrForbidden          = &Error{Code: "AUTH_008", Message: "insufficient role"}
	ErrTooManyAttempts    = &Error{Code: "AUTH_009", Message: "too many login attempts, try again later"}
)

// Directory and validation failures.
var (
	ErrUserNotFound  = &Error{Code: "USR_001", Message: "user not found"}
	ErrInvalidWallet = &Error{Code: "USR_002", Message: "invalid wallet address"}
)

// ErrHashing covers credential-hashing library failures. These indicate a
// malformed stored digest or an entropy/system fault, never a plain mismatch.
var ErrHashing = &Error{Code: "SRV_001", Message: "credential hashing failed"}
