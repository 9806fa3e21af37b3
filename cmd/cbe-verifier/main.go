package main

import (
	"os"

	"github.com/addispay/cbe-receipt-verifier/cmd/cbe-verifier/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
