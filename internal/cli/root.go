// Package cli defines the cobra command tree for the signin client.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/avvvet/signin-register/internal/client"
)

const defaultServerURL = "http://localhost:5000"

var (
	flagFormat string
	flagServer string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "signin",
		Short:         "Visitor and contractor sign-in register",
		Long:          "Record visitor and contractor sign-ins, browse them by date, search, edit contractor entries and export PDF or XLSX reports.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "register API URL (default: $SIGNIN_SERVER or "+defaultServerURL+")")

	root.AddCommand(
		newVisitorsCmd(),
		newContractorsCmd(),
	)

	return root
}

// getServerURL returns the server URL from the flag, env var, or default.
func getServerURL() string {
	if flagServer != "" {
		return flagServer
	}
	if v := os.Getenv("SIGNIN_SERVER"); v != "" {
		return v
	}
	return defaultServerURL
}

func newAPIClient() *client.Client {
	return client.New(getServerURL())
}

func isJSON() bool {
	return flagFormat == "json"
}
