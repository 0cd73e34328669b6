package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the checkin CLI.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "checkin",
		Short:         "Event attendee check-in service",
		Long:          "Serves event listings, attendee search and attendee check-in over an in-memory data set.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewSeedCommand())

	return cmd
}
