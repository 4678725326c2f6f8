package cmd

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/toshiksharma271/collab-insight-engine/internal/config"
	"github.com/toshiksharma271/collab-insight-engine/internal/ui"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the config file",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Run: func(cmd *cobra.Command, args []string) {
				showConfig()
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a default config file if none exists",
			Run: func(cmd *cobra.Command, args []string) {
				if _, err := os.Stat(config.Path()); err == nil {
					fmt.Printf("  %s already exists\n", ui.Brand.Sprint(config.Path()))
					return
				}
				if err := config.EnsureExists(); err != nil {
					fail("Failed to write config", err)
				}
				ui.Good.Printf("  %s Wrote %s\n", ui.StatusIcon(true), config.Path())
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(config.Path())
			},
		},
	)
	return cmd
}

func showConfig() {
	cfg := config.Load()
	if _, err := os.Stat(config.Path()); err != nil {
		fmt.Println(ui.Subtle.Sprintf("# %s not found, showing defaults", config.Path()))
	} else {
		fmt.Println(ui.Subtle.Sprintf("# %s", config.Path()))
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		fail("Failed to encode config", err)
	}
}
