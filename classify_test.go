package cbeverifier

import (
	"errors"
	"testing"
)

func TestClassifyInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    InputKind
		wantErr bool
	}{
		{
			name:  "bare reference code",
			input: "FT0123456789",
			want:  InputReference,
		},
		{
			name:  "lowercase reference code",
			input: "ft25204tcrj0",
			want:  InputReference,
		},
		{
			name:  "full receipt URL",
			input: "https://apps.cbe.com.et:100/?id=FT012345678901234567",
			want:  InputReceiptURL,
		},
		{
			name:    "reference too short",
			input:   "FT01234",
			wantErr: true,
		},
		{
			name:    "reference too long",
			input:   "FT01234567890",
			wantErr: true,
		},
		{
			name:    "reference embedded in longer string",
			input:   "receipt FT0123456789",
			wantErr: true,
		},
		{
			name:    "wrong prefix",
			input:   "TX0123456789",
			wantErr: true,
		},
		{
			name:    "URL with short id",
			input:   "https://apps.cbe.com.et:100/?id=FT0123456789",
			wantErr: true,
		},
		{
			name:    "URL on wrong host",
			input:   "https://example.com:100/?id=FT012345678901234567",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyInput(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInputFormat) {
					t.Errorf("expected ErrInvalidInputFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildReceiptURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    InputKind
		account string
		want    string
	}{
		{
			name:    "reference plus account suffix",
			input:   "FT0123456789",
			kind:    InputReference,
			account: "12345678",
			want:    "https://apps.cbe.com.et:100/?id=FT012345678912345678",
		},
		{
			name:    "URL gets its trailing suffix replaced",
			input:   "https://apps.cbe.com.et:100/?id=FT012345678901234567",
			kind:    InputReceiptURL,
			account: "00012345678",
			want:    "https://apps.cbe.com.et:100/?id=FT012345678912345678",
		},
		{
			name:    "long account contributes only its last 8 digits",
			input:   "FT0123456789",
			kind:    InputReference,
			account: "100023456712345678",
			want:    "https://apps.cbe.com.et:100/?id=FT012345678912345678",
		},
		{
			name:    "short account degrades to the whole string",
			input:   "FT0123456789",
			kind:    InputReference,
			account: "1234",
			want:    "https://apps.cbe.com.et:100/?id=FT01234567891234",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildReceiptURL(tt.input, tt.kind, tt.account)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// A URL built from URL-shaped input must itself classify as URL-shaped, so
// the output of one verification can be fed back in as input.
func TestBuildReceiptURLRoundTrip(t *testing.T) {
	input := "https://apps.cbe.com.et:100/?id=FT012345678901234567"

	kind, err := ClassifyInput(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != InputReceiptURL {
		t.Fatalf("got %q, want %q", kind, InputReceiptURL)
	}

	rebuilt := BuildReceiptURL(input, kind, "87654321")
	kind, err = ClassifyInput(rebuilt)
	if err != nil {
		t.Fatalf("rebuilt URL %q failed classification: %v", rebuilt, err)
	}
	if kind != InputReceiptURL {
		t.Errorf("rebuilt URL classified as %q, want %q", kind, InputReceiptURL)
	}
}
