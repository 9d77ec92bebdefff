// Package cmd implements the code-explorer command line.
package cmd

import (
	"github.com/CodMac/go-code-explorer/config"
	"github.com/CodMac/go-code-explorer/ui"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "code-explorer",
		Short: "code-explorer — browse the dependencies of a Java code base",
		Long: ui.Brand.Sprint("code-explorer") + " — analyze Java sources into a package/class map\n" +
			ui.Subtle.Sprint("and show which dependencies connect the parts you select"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("code-explorer {{ .Version }}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/code-explorer/config.toml)")

	root.AddCommand(
		analyzeCmd(),
		depsCmd(),
		mapCmd(),
		configsCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

func loadConfig() (*config.Config, error) {
	return config.Load(resolvedConfigPath())
}
