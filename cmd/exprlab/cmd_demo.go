package main

import (
	"fmt"

	"github.com/averycrespi/exprlab/internal/config"
	"github.com/averycrespi/exprlab/internal/driver"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var (
		configPath string
		logFile    string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the evaluator demo and write records to the screen and a log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = logFile
			}

			return driver.NewDriver(cfg).WithScreen(cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&logFile, "log-file", config.DefaultLogFile, "Log file to truncate and append records to")
	return cmd
}
