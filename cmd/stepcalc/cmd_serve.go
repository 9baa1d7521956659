package main

import (
	"fmt"
	"net/http"

	"github.com/apexpr/stepcalc/web"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		verbosity int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP solver API",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Initialize(verbosity, "")
			server := web.NewServer()
			fmt.Printf("Starting server at http://%s\n", addr)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")
	cmd.Flags().CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	return cmd
}
