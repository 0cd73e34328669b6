package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"eventcheckin/internal/repository/memory"
)

// NewSeedCommand groups seed data tooling.
func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed data tools",
	}
	cmd.AddCommand(newSeedValidateCommand())
	return cmd
}

func newSeedValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a YAML seed file without starting the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := memory.LoadSeedFile(args[0])
			if err != nil {
				return err
			}
			attendees := 0
			for _, e := range events {
				attendees += len(e.Attendees)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d events, %d attendees\n", args[0], len(events), attendees)
			return nil
		},
	}
}
