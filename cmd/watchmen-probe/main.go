// Command watchmen-probe exercises a watchmen deployment: it sends one-off
// test reports to a collection endpoint and replays error-storm scenarios
// through a locally wired Guardian.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "watchmen-probe",
		Short:         "Exercise a watchmen error-reporting deployment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSendCmd())
	root.AddCommand(newStormCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of watchmen-probe",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "watchmen-probe version %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "watchmen-probe:", err)
		os.Exit(1)
	}
}
