// Package cbeverifier verifies Commercial Bank of Ethiopia direct-deposit
// transactions by downloading the bank's PDF receipt and extracting
// structured fields from its text.
//
// A caller supplies either a bare transaction reference code or the full
// receipt URL from the bank's confirmation SMS, plus their own account
// number. The verifier classifies the input, builds the canonical receipt
// URL, fetches and decodes the document through a Fetcher, extracts the
// transaction fields, and validates that the mandatory fields are present
// and the payment is recent enough.
//
// The package performs no caching and no retries; every failure is terminal
// and surfaces to the caller as a distinguishable error.
package cbeverifier

import "context"

// DefaultMaxAgeHours is the age window applied when a config does not set
// one: a transaction older than 24 whole hours is rejected.
const DefaultMaxAgeHours = 24

// Fetcher downloads a receipt document and decodes it to text. It is
// expected to fail with a descriptive error on network, HTTP, or decode
// problems. Transport details (client, timeouts, TLS policy) belong to the
// implementation; the verifier only passes the trust flag through.
type Fetcher interface {
	FetchDocumentText(ctx context.Context, url string, allowInsecure bool) (string, error)
}

// Config carries the caller-side parameters for one verification. It is
// constructed once per call and never mutated by the verifier.
type Config struct {
	// AccountNumber is the caller's own account number, digits only. Its
	// last 8 digits become the receipt URL suffix.
	AccountNumber string

	// MaxAgeHours bounds the transaction age at verification time. Zero or
	// negative means DefaultMaxAgeHours.
	MaxAgeHours int

	// AllowInsecureTransport controls whether the Fetcher may skip TLS
	// certificate verification. The bank's receipt host serves an
	// incomplete certificate chain, so nil defaults to true. The verifier
	// passes the resolved value through unchanged.
	AllowInsecureTransport *bool
}

func (c Config) maxAge() int {
	if c.MaxAgeHours <= 0 {
		return DefaultMaxAgeHours
	}
	return c.MaxAgeHours
}

func (c Config) allowInsecure() bool {
	return c.AllowInsecureTransport == nil || *c.AllowInsecureTransport
}

// Option overrides a default in the config synthesized by VerifyQuick.
type Option func(*Config)

// WithMaxAgeHours overrides the default 24-hour age window.
func WithMaxAgeHours(hours int) Option {
	return func(c *Config) { c.MaxAgeHours = hours }
}

// WithSecureTransport makes the Fetcher verify the receipt host's
// certificate instead of the permissive default.
func WithSecureTransport() Option {
	return func(c *Config) {
		secure := false
		c.AllowInsecureTransport = &secure
	}
}

// Verifier runs the verification pipeline. It holds no per-call state, so
// a single Verifier is safe for concurrent use.
type Verifier struct {
	fetcher Fetcher
}

// New returns a Verifier that retrieves documents through f.
func New(f Fetcher) *Verifier {
	return &Verifier{fetcher: f}
}

// Verify turns a reference code or receipt URL into a validated transaction
// record. Every step is a hard gate; on any failure no partial record is
// returned. Fetcher errors propagate unchanged so callers can tell a
// transport problem from a document that did not contain what we expected.
func (v *Verifier) Verify(ctx context.Context, input string, cfg Config) (*TransactionRecord, error) {
	if input == "" {
		return nil, ErrEmptyInput
	}

	kind, err := ClassifyInput(input)
	if err != nil {
		return nil, err
	}

	if cfg.AccountNumber == "" {
		return nil, ErrMissingAccountNumber
	}

	url := BuildReceiptURL(input, kind, cfg.AccountNumber)

	text, err := v.fetcher.FetchDocumentText(ctx, url, cfg.allowInsecure())
	if err != nil {
		return nil, err
	}

	rec := ExtractFields(text)
	if err := ValidateRecord(rec, cfg.maxAge()); err != nil {
		return nil, err
	}
	return &rec, nil
}

// VerifyQuick is the convenience entry point: it synthesizes a Config from
// the account number and the given options (24-hour window, permissive
// transport unless overridden) and delegates to Verify. It adds no logic of
// its own.
func (v *Verifier) VerifyQuick(ctx context.Context, input, accountNumber string, opts ...Option) (*TransactionRecord, error) {
	cfg := Config{
		AccountNumber: accountNumber,
		MaxAgeHours:   DefaultMaxAgeHours,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return v.Verify(ctx, input, cfg)
}
