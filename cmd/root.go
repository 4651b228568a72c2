package cmd

import "github.com/spf13/cobra"

type rootOptions struct {
	configPath string
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "scouts",
		Short:         "Scout shift and break tracker",
		Long:          "scouts tracks work shifts and breaks for a roster of scouts and routes early shift-end requests to the senior scout for approval.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $HOME/.scouts/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(opts),
		newRosterCmd(opts),
	)

	return rootCmd
}
