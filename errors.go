package balance

import "errors"

// Error kinds surfaced by the ledger engine, the amount parser and the codec.
// They are wrapped with context (offending input, account name) and checked
// with errors.Is.
var (
	// ErrInvalidAmount reports text that is not a valid decimal literal.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNoAmount reports annotated text containing no extractable amount.
	ErrNoAmount = errors.New("no amount found")
	// ErrUnknownAccount reports an account name absent from the document.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrDuplicateAccount reports an account name already taken, or reserved.
	ErrDuplicateAccount = errors.New("duplicate account")
	// ErrMalformedDocument reports a persisted document that cannot be decoded.
	ErrMalformedDocument = errors.New("malformed document")
)
