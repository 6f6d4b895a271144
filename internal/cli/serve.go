package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/roach88/sango/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var listenAddr string

	cmd := &cobra.Command{
		Use:           "serve",
		Short:         "Run the HTTP server",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(rootOpts, true)
			if err != nil {
				return err
			}
			defer rt.Close()

			addr := rt.cfg.ListenAddr
			if listenAddr != "" {
				addr = listenAddr
			}

			srv := server.New(rt.svc, rt.log)
			rt.log.Info("listening", "addr", addr, "db", rt.cfg.DBPath)
			if err := http.ListenAndServe(addr, srv); err != nil {
				return WrapExitError(ExitCommandError, "serve", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", "", "listen address (overrides config)")

	return cmd
}
