package cbeverifier

import (
	"fmt"
	"time"
)

// ValidateRecord gates an extracted record: the reference number and payment
// timestamp must be present, and the payment must be recent enough. Age is
// measured in whole hours (partial hours truncate) and compared strictly,
// so a transaction exactly maxAgeHours old still passes. On success the
// record is accepted as-is; validation never modifies it.
func ValidateRecord(rec TransactionRecord, maxAgeHours int) error {
	if rec.ReferenceNumber == "" {
		return ErrMissingReferenceNumber
	}
	if rec.PaymentTime.IsZero() {
		return ErrMissingPaymentTimestamp
	}

	age := int(time.Since(rec.PaymentTime).Hours())
	if age > maxAgeHours {
		return fmt.Errorf("%w: paid %dh ago, limit is %dh", ErrTransactionTooOld, age, maxAgeHours)
	}
	return nil
}

// IsValidAccountNumber reports whether s looks like a bank account number:
// decimal digits only, at least 8 of them. It is a predicate and never
// errors.
func IsValidAccountNumber(s string) bool {
	if len(s) < 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
