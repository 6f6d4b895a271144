package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/sango/internal/catalog"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed <file>",
		Short: "Import catalog metadata from a JSON seed file",
		Long: `Import character, weapon and artifact set metadata from a JSON seed
file. The file is validated against the seed schema before any row is
written. Imports are first-write-wins: re-running a seed never rewrites
existing metadata.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := catalog.LoadSeed(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "load seed", err)
			}

			rt, err := newRuntime(rootOpts, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			stats, err := catalog.New(rt.st, rt.log).Import(cmd.Context(), seed)
			if err != nil {
				return WrapExitError(ExitFailure, "import seed", err)
			}

			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}
			return out.Successf(stats, "imported %d characters, %d weapons, %d artifact sets",
				stats.Characters, stats.Weapons, stats.Sets)
		},
	}

	return cmd
}
