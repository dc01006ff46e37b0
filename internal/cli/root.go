package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type VersionInfo struct {
	Version string
	Commit  string
}

func NewRootCommand(info VersionInfo) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "aramalyze",
		Short:         "ARAM champion data loader",
		Long:          "Loads canonical per-patch champion documents into a relational store and serves them over HTTP.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is ./aramalyze.yaml)")
	cmd.Version = fmt.Sprintf("%s.%s", info.Version, info.Commit)

	rt := func() (*runtime, error) {
		return newRuntime(configPath)
	}

	cmd.AddCommand(
		newLoadCommand(rt),
		newServeCommand(rt),
		newSyncAssetsCommand(rt),
		newWatchCommand(rt),
		newTokenCommand(rt),
		newConfigCommand(),
		newVersionCommand(info),
	)

	return cmd
}

func newVersionCommand(info VersionInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "aramalyze %s (%s)\n", info.Version, info.Commit)
		},
	}
}
