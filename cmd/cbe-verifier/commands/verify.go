package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	cbeverifier "github.com/addispay/cbe-receipt-verifier"
)

func verifyCmd() *cobra.Command {
	var (
		account string
		maxAge  int
		secure  bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "verify <reference|receipt-url>",
		Short: "Verify a single transaction by reference code or receipt URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if account != "" && !cbeverifier.IsValidAccountNumber(account) {
				log.Warn().Str("account", account).Msg("account number is not digits-only with length >= 8")
			}

			opts := []cbeverifier.Option{cbeverifier.WithMaxAgeHours(maxAge)}
			if secure {
				opts = append(opts, cbeverifier.WithSecureTransport())
			}

			rec, err := verifier.VerifyQuick(cmd.Context(), args[0], account, opts...)
			if err != nil {
				return err
			}

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(rec)
			}

			fmt.Printf("Reference:  %s\n", rec.ReferenceNumber)
			fmt.Printf("Paid at:    %s\n", rec.PaymentTime.Format(time.RFC1123))
			if rec.DebitedAmount != "" {
				fmt.Printf("Amount:     %s\n", rec.DebitedAmount)
			}
			if rec.Payer != "" {
				fmt.Printf("Payer:      %s\n", rec.Payer)
			}
			if rec.Receiver != "" {
				fmt.Printf("Receiver:   %s\n", rec.Receiver)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&account, "account", "a", "", "your account number (last 8 digits address the receipt)")
	cmd.Flags().IntVar(&maxAge, "max-age", cbeverifier.DefaultMaxAgeHours, "maximum transaction age in hours")
	cmd.Flags().BoolVar(&secure, "secure", false, "verify the receipt host's TLS certificate")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the record as JSON")
	cmd.MarkFlagRequired("account")

	return cmd
}
