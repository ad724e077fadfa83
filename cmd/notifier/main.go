package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vrodriguezbernal95/stickywork.github.io-sub002/internal/version"
)

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		osExit(exitFailure)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "notifier",
		Short: "Booking reminder and feedback notification pipeline",
		Long: `notifier sends day-before booking reminders and post-visit feedback requests.
Run "notifier serve" for the ops server with the built-in scheduler, or
"notifier run reminders|feedback" from an external cron.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newServeCmd(),
		newRunCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newSettingsCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print the build version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
			},
		},
	)
	return root
}
