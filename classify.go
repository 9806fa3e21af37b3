package cbeverifier

import "regexp"

// ReceiptBaseURL is the bank's receipt download endpoint. Receipts are
// served over HTTPS on a non-standard port, keyed by a single query
// parameter.
const ReceiptBaseURL = "https://apps.cbe.com.et:100"

// receiptQueryKey is the literal path-plus-query prefix the receipt host
// expects in front of the document id.
const receiptQueryKey = "/?id="

// InputKind classifies what the caller handed us.
type InputKind string

const (
	// InputReference is a bare transaction reference code, e.g.
	// "FT25235TCRJ0".
	InputReference InputKind = "reference"

	// InputReceiptURL is a full receipt download URL as found in the
	// bank's SMS confirmation. Its id parameter is the reference code
	// followed by an 8-character account suffix.
	InputReceiptURL InputKind = "url"
)

// Classification patterns. Reference codes are "FT" plus exactly 10
// alphanumerics; receipt URL ids carry the same prefix plus 18
// alphanumerics (reference plus account suffix). The reference pattern is
// anchored: a reference buried inside a longer string is not accepted.
var (
	ReferencePattern = regexp.MustCompile(`^(?i)FT[0-9A-Z]{10}$`)

	ReceiptURLPattern = regexp.MustCompile(
		`^(?i)` + regexp.QuoteMeta(ReceiptBaseURL+receiptQueryKey) + `FT[0-9A-Z]{18}$`,
	)
)

// ClassifyInput decides whether input is a bare reference code or a full
// receipt URL. A string matching the URL shape is always treated as a URL,
// even though its id parameter embeds a reference-shaped prefix. Anything
// matching neither shape fails with ErrInvalidInputFormat.
func ClassifyInput(input string) (InputKind, error) {
	if ReceiptURLPattern.MatchString(input) {
		return InputReceiptURL, nil
	}
	if ReferencePattern.MatchString(input) {
		return InputReference, nil
	}
	return "", ErrInvalidInputFormat
}

// BuildReceiptURL produces the canonical fetch URL for an already-classified
// input. The receipt host addresses documents by reference code plus the
// last 8 digits of the receiving account, so:
//
//   - for a full receipt URL, the trailing 8 characters (another account's
//     suffix) are replaced with the caller's own suffix, re-targeting the
//     document without knowing the URL's internal structure;
//   - for a bare reference, the URL is assembled from the base endpoint,
//     the query key, the reference, and the caller's suffix.
//
// Classification is a precondition; inputs are not re-validated here.
func BuildReceiptURL(input string, kind InputKind, accountNumber string) string {
	suffix := lastN(accountNumber, 8)
	if kind == InputReceiptURL {
		return input[:len(input)-8] + suffix
	}
	return ReceiptBaseURL + receiptQueryKey + input + suffix
}

// lastN returns the last n characters of s, or all of s when shorter.
// Short account numbers degrade to the whole string, never zero-padding.
func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
