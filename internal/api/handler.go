// Package api exposes the verification pipeline over HTTP as a small JSON
// API.
package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	cbeverifier "github.com/addispay/cbe-receipt-verifier"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Verifier is the slice of the core pipeline the handlers need. Narrowing
// it to an interface keeps the handlers testable without network access.
type Verifier interface {
	Verify(ctx context.Context, input string, cfg cbeverifier.Config) (*cbeverifier.TransactionRecord, error)
}

// VerifyRequest is the JSON body of POST /api/verify.
type VerifyRequest struct {
	// ID is a transaction reference code or a full receipt URL.
	ID string `json:"id"`
	// Account is the caller's own account number.
	Account string `json:"account"`
	// MaxAgeHours overrides the 24-hour age window when positive.
	MaxAgeHours int `json:"maxAgeHours,omitempty"`
	// Insecure overrides the transport-trust default (true) when set.
	Insecure *bool `json:"insecure,omitempty"`
}

// VerifyResponse is the JSON response from the verify endpoint.
type VerifyResponse struct {
	Success     bool               `json:"success"`
	Error       string             `json:"error,omitempty"`
	ErrorKind   string             `json:"errorKind,omitempty"`
	RequestID   string             `json:"requestId,omitempty"`
	Transaction *TransactionDetail `json:"transaction,omitempty"`
}

// TransactionDetail is the wire form of a verified transaction record.
type TransactionDetail struct {
	ReferenceNumber string `json:"referenceNumber"`
	PaymentTime     string `json:"paymentTime"`
	DebitedAmount   string `json:"debitedAmount,omitempty"`
	Receiver        string `json:"receiver,omitempty"`
	Payer           string `json:"payer,omitempty"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	Verifier Verifier
	Log      zerolog.Logger
}

// Register sets up the API routes on the fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/api/health", h.handleHealth)
	app.Post("/api/verify", h.handleVerify)
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
	})
}

func (h *Handler) handleVerify(c *fiber.Ctx) error {
	reqID := uuid.NewString()
	log := h.Log.With().Str("requestId", reqID).Logger()

	var req VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, reqID, "MALFORMED_REQUEST", "request body must be JSON with id and account fields")
	}

	cfg := cbeverifier.Config{
		AccountNumber:          req.Account,
		MaxAgeHours:            req.MaxAgeHours,
		AllowInsecureTransport: req.Insecure,
	}

	start := time.Now()
	rec, err := h.Verifier.Verify(c.Context(), req.ID, cfg)
	if err != nil {
		kind, status := classifyError(err)
		log.Warn().Err(err).Str("kind", kind).Dur("elapsed", time.Since(start)).Msg("verification failed")
		return writeError(c, status, reqID, kind, err.Error())
	}

	log.Info().Str("reference", rec.ReferenceNumber).Dur("elapsed", time.Since(start)).Msg("verification succeeded")

	return c.JSON(VerifyResponse{
		Success:   true,
		RequestID: reqID,
		Transaction: &TransactionDetail{
			ReferenceNumber: rec.ReferenceNumber,
			PaymentTime:     rec.PaymentTime.Format(time.RFC3339),
			DebitedAmount:   rec.DebitedAmount,
			Receiver:        rec.Receiver,
			Payer:           rec.Payer,
		},
	})
}

// classifyError maps the error taxonomy to a machine-readable kind and an
// HTTP status: caller mistakes are 400, receipts that exist but fail
// verification are 422, and transport failures are 502.
func classifyError(err error) (kind string, status int) {
	switch {
	case errors.Is(err, cbeverifier.ErrEmptyInput):
		return "EMPTY_INPUT", fiber.StatusBadRequest
	case errors.Is(err, cbeverifier.ErrInvalidInputFormat):
		return "INVALID_INPUT_FORMAT", fiber.StatusBadRequest
	case errors.Is(err, cbeverifier.ErrMissingAccountNumber):
		return "MISSING_ACCOUNT_NUMBER", fiber.StatusBadRequest
	case errors.Is(err, cbeverifier.ErrMissingReferenceNumber):
		return "MISSING_REFERENCE_NUMBER", fiber.StatusUnprocessableEntity
	case errors.Is(err, cbeverifier.ErrMissingPaymentTimestamp):
		return "MISSING_PAYMENT_TIMESTAMP", fiber.StatusUnprocessableEntity
	case errors.Is(err, cbeverifier.ErrTransactionTooOld):
		return "TRANSACTION_TOO_OLD", fiber.StatusUnprocessableEntity
	default:
		return "DOCUMENT_RETRIEVAL_FAILED", fiber.StatusBadGateway
	}
}

func writeError(c *fiber.Ctx, status int, reqID, kind, msg string) error {
	return c.Status(status).JSON(VerifyResponse{
		Success:   false,
		Error:     msg,
		ErrorKind: kind,
		RequestID: reqID,
	})
}
