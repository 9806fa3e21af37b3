// Package commands wires the verification pipeline into a CLI.
package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cbeverifier "github.com/addispay/cbe-receipt-verifier"
	"github.com/addispay/cbe-receipt-verifier/internal/fetcher"
	"github.com/addispay/cbe-receipt-verifier/internal/logger"
)

var (
	verbose bool

	log      zerolog.Logger
	verifier *cbeverifier.Verifier
)

func Execute() error {
	root := &cobra.Command{
		Use:          "cbe-verifier",
		Short:        "Verify CBE direct-deposit transactions from bank receipts",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logger.New(verbose)
			verifier = cbeverifier.New(fetcher.New(log))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(verifyCmd(), serveCmd())
	return root.Execute()
}
