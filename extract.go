package cbeverifier

import (
	"regexp"
	"strings"
	"time"
)

// paymentTimeLayout matches the timestamp printed on receipts,
// e.g. "7/23/2025, 10:03:00 AM".
const paymentTimeLayout = "1/2/2006, 3:04:05 PM"

// Field patterns for the receipt text. The receipt layout is fixed and
// line-oriented: each field sits on its own labeled line, so every pattern
// captures the remainder of the line after its label. Missing labels simply
// produce no match.
var (
	refPattern      = regexp.MustCompile(`(?i)Reference No\. \(VAT Invoice No\)\s*:?\s*(.+)`)
	dateTimePattern = regexp.MustCompile(`(?i)Payment Date & Time\s*:?\s*(.+)`)
	amountPattern   = regexp.MustCompile(`(?i)Total amount debited from customers account\s*:?\s*(.+)`)
	receiverPattern = regexp.MustCompile(`(?i)Receiver\s*:?\s*(.+)`)
	payerPattern    = regexp.MustCompile(`(?i)Payer\s*:?\s*(.+)`)
)

// ExtractFields pulls the transaction fields out of raw receipt text. Each
// field is searched independently; a field whose label is missing, or whose
// timestamp does not parse, is left at its zero value. ExtractFields itself
// never fails — deciding whether the result is usable is ValidateRecord's
// job.
func ExtractFields(text string) TransactionRecord {
	rec := TransactionRecord{
		ReferenceNumber: captureField(text, refPattern),
		DebitedAmount:   captureField(text, amountPattern),
		Receiver:        captureField(text, receiverPattern),
		Payer:           captureField(text, payerPattern),
	}

	if raw := captureField(text, dateTimePattern); raw != "" {
		if ts, err := time.Parse(paymentTimeLayout, raw); err == nil {
			rec.PaymentTime = ts
		}
	}

	return rec
}

// captureField returns the first capture group of re in text, trimmed, or
// "" when the pattern does not match. Patterns never cross line boundaries
// because Go's "." excludes newlines.
func captureField(text string, re *regexp.Regexp) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
