package main

import (
	"fmt"

	"github.com/averycrespi/exprlab/internal/server"
	"github.com/averycrespi/exprlab/pkg/types"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the evaluators as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := types.Config{
				LogFile:  logFile,
				LogLevel: logLevel,
			}

			mcpServer := server.NewExprServer(config)
			if err := mcpServer.Start(cmd.Context()); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Append every evaluated record to this file")
	return cmd
}
