// Copyright (c) 2026 Termfolio Team
// Termfolio - terminal portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/spf13/cobra"
	"github.com/termfolio/termfolio/internal/config"
	"github.com/termfolio/termfolio/internal/i18n"
	"github.com/termfolio/termfolio/ui/tui/models/components/keyhelp"
	"github.com/termfolio/termfolio/ui/tui/models/views/root"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("cli.version_short"),
		Args:  cobra.NoArgs,
		// no config needed to print the version
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), compositeVersion())
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: i18n.T("cli.config_short"),
	}

	var system bool
	write := &cobra.Command{
		Use:   "write",
		Short: i18n.T("cli.config_write_short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.WriteConfigFile(&appConfig, system)
			if err != nil {
				return fmt.Errorf("could not write config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", path))
			return nil
		},
	}
	write.Flags().BoolVar(&system, "system", false, "Write the system wide config instead of the user config")

	show := &cobra.Command{
		Use:   "show",
		Short: i18n.T("cli.config_show_short"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := config.Marshal(&appConfig)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.AddCommand(write, show)
	return cmd
}

func newKeysCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "keys",
		Short: i18n.T("cli.keys_short"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			h := help.New()
			h.Width = width
			fmt.Fprintln(cmd.OutOrStdout(), keyhelp.Full(h, root.NewKeyMap().FullHelp()))
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "Maximum width of the key help")
	return cmd
}
