package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"projectboard/internal/board"
	"projectboard/internal/model"

	"github.com/spf13/cobra"
)

// ScriptError reports the script line that failed.
type ScriptError struct {
	Line int
	Err  error
}

func (e *ScriptError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e *ScriptError) Unwrap() error { return e.Err }

var errUnknownProject = errors.New("unknown project")

func newScriptCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script [file|-]",
		Short: "Run a headless board session and print the final board",
		Long: strings.TrimSpace(`
Each line is one action on the board:

  add <title> | <description> | <people>
  move <ref> <active|finished>     move through the store directly
  drag <ref> <active|finished>     full drag gesture onto a list
  cancel <ref> <active|finished>   drag over a list, then cancel

<ref> is a project id, #N (Nth project added) or an exact title.
Blank lines and lines starting with # are ignored.
`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return writeErr(cmd, err)
				}
				defer f.Close()
				r = f
			}

			b := board.New(app.Store())
			rec, detach, err := attachJournal(cmd.Context(), app, b)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer detach()

			if err := runScript(cmd.Context(), b, r); err != nil {
				return writeErr(cmd, err)
			}
			if rec != nil && rec.Err() != nil {
				return writeErr(cmd, fmt.Errorf("journal: %w", rec.Err()))
			}
			return writeOut(cmd, app, b.View())
		},
	}
	return cmd
}

// runScript executes script lines against b until the first failing line.
func runScript(ctx context.Context, b *board.Board, r io.Reader) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runScriptLine(b, line); err != nil {
			return &ScriptError{Line: n, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	slog.Debug("script finished", "lines", n, "active", b.Active.Len(), "finished", b.Finished.Len())
	return nil
}

func runScriptLine(b *board.Board, line string) error {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "add":
		parts := strings.Split(rest, "|")
		if len(parts) != 3 {
			return errors.New("add: want <title> | <description> | <people>")
		}
		b.Form.Title = parts[0]
		b.Form.Description = parts[1]
		b.Form.People = parts[2]
		p, err := b.Form.Submit()
		if err != nil {
			return err
		}
		slog.Debug("script add", "id", p.ID, "title", p.Title)
		return nil

	case "move", "drag", "cancel":
		ref, status, err := parseRefStatus(rest)
		if err != nil {
			return fmt.Errorf("%s: %w", verb, err)
		}
		id, err := resolveRef(b, ref)
		if err != nil {
			return fmt.Errorf("%s: %w", verb, err)
		}
		switch strings.ToLower(verb) {
		case "move":
			b.Store.MoveProject(id, status)
			return nil
		case "drag":
			return dragTo(b, id, status, false)
		default:
			return dragTo(b, id, status, true)
		}

	default:
		return fmt.Errorf("unknown action: %s", verb)
	}
}

// parseRefStatus splits "<ref> <status>"; the ref may contain spaces.
func parseRefStatus(s string) (string, model.ProjectStatus, error) {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return "", 0, errors.New("want <ref> <active|finished>")
	}
	status, err := model.ParseStatus(s[i+1:])
	if err != nil {
		return "", 0, err
	}
	ref := strings.TrimSpace(s[:i])
	if ref == "" {
		return "", 0, errors.New("missing project ref")
	}
	return ref, status, nil
}

// resolveRef maps a ref to a project id: exact id, #N (1-based insertion
// order) or exact title. Unmatched prj- ids pass through so a move on them is
// a silent no-op, as in the store.
func resolveRef(b *board.Board, ref string) (string, error) {
	projects := b.Store.Projects()
	for _, p := range projects {
		if p.ID == ref {
			return p.ID, nil
		}
	}
	if strings.HasPrefix(ref, "#") {
		n, err := strconv.Atoi(ref[1:])
		if err != nil || n < 1 || n > len(projects) {
			return "", fmt.Errorf("%w: %s", errUnknownProject, ref)
		}
		return projects[n-1].ID, nil
	}
	for _, p := range projects {
		if p.Title == ref {
			return p.ID, nil
		}
	}
	if strings.HasPrefix(ref, "prj-") {
		return ref, nil
	}
	return "", fmt.Errorf("%w: %s", errUnknownProject, ref)
}

// dragTo runs a whole gesture from the project's card onto the status list.
func dragTo(b *board.Board, id string, status model.ProjectStatus, cancel bool) error {
	item, _, ok := b.FindItem(id)
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownProject, id)
	}
	if err := b.Drag.Start(item); err != nil {
		return err
	}
	target := b.List(status)
	b.Drag.Over(target)
	if cancel {
		b.Drag.Cancel()
		return nil
	}
	b.Drag.Drop(target)
	return nil
}
