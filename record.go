package cbeverifier

import "time"

// TransactionRecord holds the fields extracted from a receipt PDF.
//
// ReferenceNumber and PaymentTime are guaranteed present on any record
// returned by a successful verification. The remaining fields are
// best-effort: receipts occasionally omit them and their absence is not
// an error. Zero values mean "not found in the document".
type TransactionRecord struct {
	// ReferenceNumber is the bank-issued transaction identifier,
	// e.g. "FT25235TCRJ0".
	ReferenceNumber string `json:"referenceNumber"`

	// PaymentTime is when the debit occurred, in the receipt's local time.
	PaymentTime time.Time `json:"paymentTime"`

	// DebitedAmount is the amount-plus-currency exactly as printed on the
	// receipt, e.g. "1,000.00 ETB". Currency formats vary between receipt
	// revisions, so this is kept as display text rather than parsed.
	DebitedAmount string `json:"debitedAmount,omitempty"`

	Receiver string `json:"receiver,omitempty"`
	Payer    string `json:"payer,omitempty"`
}
