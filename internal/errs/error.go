package errs

import (
	"errors"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrNoCopies       = errors.New("no copies available")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrBadCredentials = errors.New("invalid credentials")
	ErrRoleMismatch   = errors.New("access denied for this portal")
	ErrHasIssues      = errors.New("book has issuance history")
)
