package cli

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"projectboard/internal/journal"

	"github.com/spf13/cobra"
)

func newJournalCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Print the recorded mutation journal (oldest-first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(file)
			if path == "" {
				path = strings.TrimSpace(app.Journal)
			}
			if path == "" {
				return writeErr(cmd, journal.ErrNoPath)
			}
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				return writeOut(cmd, app, map[string]any{"data": []journal.Event{}})
			}

			backend, err := journal.Open(cmd.Context(), path)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer backend.Close()

			evs, err := backend.ReadAll(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if evs == nil {
				evs = []journal.Event{}
			}
			return writeOut(cmd, app, map[string]any{"data": evs})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Journal path (default: --journal / config)")
	return cmd
}
