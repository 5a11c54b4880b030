package cli

import (
	"context"
	"net"

	"github.com/spf13/cobra"

	"github.com/matzehuels/periodix/internal/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve scenes over an HTTP API",
		Long: `Serve scenes over an HTTP API.

Every scene created with POST /scenes runs its own frame loop at the
configured rate. Transitions are requested with
POST /scenes/{id}/transition and live transforms read from
GET /scenes/{id}/elements. Prometheus metrics are served at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config: :8080)")

	return cmd
}

// runServe serves until ctx is cancelled, then shuts down gracefully.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	if addr != "" {
		c.Config.Server.Addr = addr
	}
	srv, err := server.New(c.Config, c.Logger)
	if err != nil {
		return err
	}
	printInfo("Serving on %s", StyleHighlight.Render(c.Config.Server.Addr))
	printNextStep("Create a scene", "curl -X POST http://"+dialAddr(c.Config.Server.Addr)+"/scenes")
	return srv.Run(ctx)
}

// dialAddr turns a listen address into one a local client can reach.
func dialAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return net.JoinHostPort(host, port)
}
