package cmd

import (
	"fmt"
	"strings"

	"github.com/CodMac/go-code-explorer/config"
	"github.com/CodMac/go-code-explorer/ui"
	"github.com/spf13/cobra"
)

func configsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "configs",
		Aliases: []string{"cfg"},
		Short:   "Manage saved explorer configurations",
	}

	cmd.AddCommand(
		configsListCmd(),
		configsAddCmd(),
		configsRemoveCmd(),
		configsRenameCmd(),
		configsAddLocationCmd(),
		configsRemoveLocationCmd(),
	)
	return cmd
}

// updateConfig loads the config, applies fn and saves the result.
func updateConfig(fn func(cfg *config.Config) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := fn(cfg); err != nil {
		return err
	}
	return config.Save(resolvedConfigPath(), cfg)
}

func configsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(cfg.Configurations) == 0 {
				ui.Subtle.Fprintln(w, "  no configurations; add one with `code-explorer configs add NAME`")
				return nil
			}
			rows := make([][]string, 0, len(cfg.Configurations))
			for _, ec := range cfg.Configurations {
				rows = append(rows, []string{ec.ProjectName, strings.Join(ec.Locations, ", ")})
			}
			ui.Table(w, []string{"NAME", "LOCATIONS"}, rows)
			return nil
		},
	}
}

func configsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME [path...]",
		Short: "Add a configuration",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfig(func(cfg *config.Config) error {
				ec, err := cfg.AddConfiguration(args[0])
				if err != nil {
					return err
				}
				for _, path := range args[1:] {
					if err := cfg.AddLocation(ec.ProjectName, path); err != nil {
						return err
					}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s Added %q\n", ui.StatusIcon(true), ec.ProjectName)
				return nil
			})
		},
	}
}

func configsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfig(func(cfg *config.Config) error {
				return cfg.RemoveConfiguration(args[0])
			})
		},
	}
}

func configsRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename OLD NEW",
		Short: "Rename a configuration",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfig(func(cfg *config.Config) error {
				return cfg.RenameConfiguration(args[0], args[1])
			})
		},
	}
}

func configsAddLocationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-location NAME PATH...",
		Short: "Add source locations to a configuration",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfig(func(cfg *config.Config) error {
				for _, path := range args[1:] {
					if err := cfg.AddLocation(args[0], path); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func configsRemoveLocationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-location NAME PATH...",
		Short: "Remove source locations from a configuration",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfig(func(cfg *config.Config) error {
				for _, path := range args[1:] {
					if err := cfg.RemoveLocation(args[0], path); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
