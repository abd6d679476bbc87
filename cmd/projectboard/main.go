package main

import (
	"os"
	"strings"

	"projectboard/internal/cli"
)

func isScriptPath(s string) bool {
	s = strings.TrimSpace(s)
	if s == "-" {
		return true
	}
	fi, err := os.Stat(s)
	return err == nil && fi.Mode().IsRegular()
}

// rewriteScriptArgs makes `projectboard <file>` work like
// `projectboard script <file>`. Cobra treats the first non-flag token as a
// subcommand, so argv is rewritten before parsing.
func rewriteScriptArgs(argv []string, isScript func(string) bool) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--journal":   true,
		"--log-file":  true,
		"--log-level": true,
		"--format":    true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			if i+1 < len(argv) && isScript(argv[i+1]) {
				return insertAt(argv, i+1, "script")
			}
			return argv
		}
		if a != "-" && strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}

		// First positional token. Subcommand names win over same-named files.
		switch a {
		case "script", "journal", "config", "docs", "help", "completion":
			return argv
		}
		if isScript(a) {
			return insertAt(argv, i, "script")
		}
		return argv
	}
	return argv
}

func insertAt(argv []string, i int, tok string) []string {
	out := make([]string, 0, len(argv)+1)
	out = append(out, argv[:i]...)
	out = append(out, tok)
	out = append(out, argv[i:]...)
	return out
}

func main() {
	os.Args = rewriteScriptArgs(os.Args, isScriptPath)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
