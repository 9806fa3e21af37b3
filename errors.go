package cbeverifier

import "errors"

// Verification failures are flat sentinel errors so callers can branch with
// errors.Is and give users actionable feedback (e.g. "transaction too old"
// vs "reference not found"). Fetcher errors are not in this list: they pass
// through Verify untouched so transport problems stay distinguishable from
// document problems.
var (
	// ErrEmptyInput is returned before any network access happens.
	ErrEmptyInput = errors.New("no transaction reference or receipt URL provided")

	// ErrInvalidInputFormat means the input matched neither the reference
	// code shape nor the receipt URL shape.
	ErrInvalidInputFormat = errors.New("input is not a valid transaction reference or receipt URL")

	// ErrMissingAccountNumber means the caller's own account number was not
	// supplied; it is required to build the receipt URL.
	ErrMissingAccountNumber = errors.New("account number is required")

	// ErrMissingReferenceNumber means the receipt text contained no
	// reference number field.
	ErrMissingReferenceNumber = errors.New("receipt does not contain a reference number")

	// ErrMissingPaymentTimestamp means the receipt text contained no
	// parseable payment date.
	ErrMissingPaymentTimestamp = errors.New("receipt does not contain a payment date")

	// ErrTransactionTooOld means the payment happened longer ago than the
	// configured age window permits.
	ErrTransactionTooOld = errors.New("transaction is older than the allowed age window")
)
