package cli

import (
	"fmt"
	"strings"

	"projectboard/internal/config"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change saved preferences",
	}
	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigSetCmd(app))
	return cmd
}

func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": app.cfg,
				"meta": map[string]any{"path": path},
			})
		},
	}
}

func newConfigSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Save a preference (journal|logFile|logLevel|format|tui.theme|tui.glyphs)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only the file is edited; env overrides are not persisted.
			cfg, err := config.LoadFile()
			if err != nil {
				return writeErr(cmd, err)
			}
			key, value := strings.TrimSpace(args[0]), strings.TrimSpace(args[1])
			switch key {
			case "journal":
				cfg.Journal = value
			case "logFile":
				cfg.LogFile = value
			case "logLevel":
				cfg.LogLevel = value
			case "format":
				cfg.Format = value
			case "tui.theme":
				cfg.TUI.Theme = value
			case "tui.glyphs":
				cfg.TUI.Glyphs = value
			default:
				return writeErr(cmd, fmt.Errorf("unknown config key: %s", key))
			}
			if err := cfg.Validate(); err != nil {
				return writeErr(cmd, err)
			}
			if err := config.SaveFile(cfg); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{"key": key, "value": value},
			})
		},
	}
}
