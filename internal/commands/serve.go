package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.lsp.dev/jsonrpc2"

	"github.com/juev/hledger-viewer/internal/server"
)

func newServeCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve reports to the viewer shell over stdio JSON-RPC",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := buildEnv(flags)
			if err != nil {
				return err
			}

			srv := server.New(e.svc, e.journal, e.logger)

			stream := jsonrpc2.NewStream(stdrwc{})
			conn := jsonrpc2.NewConn(stream)
			conn.Go(cmd.Context(), srv.Handler())
			<-conn.Done()
			return conn.Err()
		},
	}
}

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	return nil
}
