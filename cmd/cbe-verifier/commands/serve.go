package commands

import (
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/addispay/cbe-receipt-verifier/internal/api"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the verification HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fiber.New(fiber.Config{
				AppName:               "cbe-receipt-verifier",
				DisableStartupMessage: true,
			})

			h := &api.Handler{Verifier: verifier, Log: log}
			h.Register(app)

			log.Info().Str("addr", addr).Msg("verification API listening")
			return app.Listen(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return cmd
}
