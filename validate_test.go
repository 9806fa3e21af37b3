package cbeverifier

import (
	"errors"
	"testing"
	"time"
)

func TestValidateRecordMandatoryFields(t *testing.T) {
	tests := []struct {
		name    string
		rec     TransactionRecord
		wantErr error
	}{
		{
			name:    "missing reference number",
			rec:     TransactionRecord{PaymentTime: time.Now()},
			wantErr: ErrMissingReferenceNumber,
		},
		{
			name:    "missing payment timestamp",
			rec:     TransactionRecord{ReferenceNumber: "FT25204TCRJ0"},
			wantErr: ErrMissingPaymentTimestamp,
		},
		{
			name: "reference and timestamp suffice",
			rec: TransactionRecord{
				ReferenceNumber: "FT25204TCRJ0",
				PaymentTime:     time.Now().Add(-2 * time.Hour),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecord(tt.rec, DefaultMaxAgeHours)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateRecordAgeWindow(t *testing.T) {
	tests := []struct {
		name   string
		age    time.Duration
		maxAge int
		tooOld bool
	}{
		{name: "fresh transaction", age: time.Hour, maxAge: 24},
		{name: "exactly at the threshold", age: 24 * time.Hour, maxAge: 24},
		{name: "one hour past the threshold", age: 25 * time.Hour, maxAge: 24, tooOld: true},
		{name: "partial hours truncate", age: 24*time.Hour + 30*time.Minute, maxAge: 24},
		{name: "custom window", age: 3 * time.Hour, maxAge: 2, tooOld: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := TransactionRecord{
				ReferenceNumber: "FT25204TCRJ0",
				PaymentTime:     time.Now().Add(-tt.age),
			}
			err := ValidateRecord(rec, tt.maxAge)
			if tt.tooOld {
				if !errors.Is(err, ErrTransactionTooOld) {
					t.Errorf("got %v, want ErrTransactionTooOld", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestIsValidAccountNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"12345678", true},
		{"1000234567890", true},
		{"00012345", true},
		{"", false},
		{"1234567", false},
		{"abc12345", false},
		{"12345678a", false},
		{"1234 5678", false},
		{"-12345678", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsValidAccountNumber(tt.input); got != tt.want {
				t.Errorf("IsValidAccountNumber(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
