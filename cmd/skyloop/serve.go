package main

import (
	"log/slog"
	"net/http"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var (
		dir  string
		addr string
	)

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve result files over HTTP for local inspection",
		RunE: func(_ *cobra.Command, _ []string) error {
			handler := cors.Default().Handler(http.FileServer(http.Dir(dir)))

			slog.Info("serving results", "dir", dir, "addr", addr)

			return http.ListenAndServe(addr, handler)
		},
	}

	c.Flags().StringVar(&dir, "dir", ".", "directory of result files to serve")
	c.Flags().StringVar(&addr, "addr", ":8080", "listen address")

	return c
}
