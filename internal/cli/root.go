package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"projectboard/internal/board"
	"projectboard/internal/config"
	"projectboard/internal/format"
	"projectboard/internal/journal"
	"projectboard/internal/logging"
	"projectboard/internal/state"
	"projectboard/internal/tui"

	"github.com/spf13/cobra"
)

// App is the composition root: it owns the single project store of the
// process and hands it to whichever host the command runs.
type App struct {
	Journal    string
	LogFile    string
	LogLevel   string
	PrettyJSON bool
	Format     string

	cfg      *config.Config
	handle   state.Handle
	closeLog func() error
}

// Store returns the process-wide project store.
func (app *App) Store() *state.ProjectState {
	return app.handle.GetInstance()
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "projectboard",
		Short:        "Project task board (terminal UI + scripted sessions)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  projectboard

  # Run a scripted session and print the final board
  projectboard script session.txt

  # Same, reading the script from stdin, recording a journal
  projectboard --journal ./board.sqlite script - < session.txt

  # Inspect the journal
  projectboard journal --file ./board.sqlite
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive board.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd.Context(), app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return writeErr(cmd, err)
		}
		app.cfg = cfg
		fill(&app.Journal, cfg.Journal)
		fill(&app.LogFile, cfg.LogFile)
		fill(&app.LogLevel, cfg.LogLevel)
		fill(&app.Format, cfg.Format)

		// The board owns the terminal; everything else may log to stderr.
		fallback := cmd.ErrOrStderr()
		if !cmd.HasParent() {
			fallback = nil
		}
		closeLog, err := logging.Setup(logging.Options{File: app.LogFile, Level: app.LogLevel, Fallback: fallback})
		if err != nil {
			return writeErr(cmd, err)
		}
		app.closeLog = closeLog
		return nil
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeLog == nil {
			return nil
		}
		return app.closeLog()
	}

	cmd.PersistentFlags().StringVar(&app.Journal, "journal", envOr(config.EnvJournal, ""), "Record mutations to this journal (.jsonl, or .sqlite/.db)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr(config.EnvLogFile, ""), "Write JSON logs to this file")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr(config.EnvLogLevel, ""), "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr(config.EnvFormat, ""), "Output format (json|edn)")

	cmd.AddCommand(newScriptCmd(app))
	cmd.AddCommand(newJournalCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(ctx context.Context, app *App) error {
	b := board.New(app.Store())
	_, detach, err := attachJournal(ctx, app, b)
	if err != nil {
		return err
	}
	defer detach()
	return tui.Run(b, tui.Options{Theme: app.cfg.TUI.Theme, Glyphs: app.cfg.TUI.Glyphs})
}

// attachJournal registers a journal recorder on the board's store when a
// journal path is configured. It runs after board.New so the lists always
// re-render before the recorder sees a change. detach unregisters the
// recorder and closes its backend; it is never nil.
func attachJournal(ctx context.Context, app *App, b *board.Board) (rec *journal.Recorder, detach func(), err error) {
	if strings.TrimSpace(app.Journal) == "" {
		return nil, func() {}, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	backend, err := journal.Open(ctx, app.Journal)
	if err != nil {
		return nil, func() {}, fmt.Errorf("open journal: %w", err)
	}
	rec = journal.NewRecorder(backend)
	id := b.Store.AddListener(rec.Listen)
	slog.Info("journal attached", "path", app.Journal, "backend", journal.DetectBackend(app.Journal), "session", rec.SessionID())
	detach = func() {
		b.Store.RemoveListener(id)
		if err := rec.Close(); err != nil {
			slog.Warn("journal close failed", "path", app.Journal, "err", err)
		}
	}
	return rec, detach, nil
}

func fill(dst *string, fallback string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = fallback
	}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
