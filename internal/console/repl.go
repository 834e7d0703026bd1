package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/clinicbox/patreg/internal/store"
)

// sqlKeywords feed tab completion. Upper-case prefixes complete upper-case.
var sqlKeywords = []string{
	"select", "insert", "update", "delete", "from", "where", "order by",
	"group by", "limit", "values", "into", "patients",
	"first_name", "last_name", "date_of_birth", "gender", "email",
	"phone", "address", "height_cm", "weight_kg", "allergies",
	"medical_notes", "created_at",
}

// REPL is the interactive query console.
type REPL struct {
	Handle *store.Handle
	Out    io.Writer
	Format string // "text" | "json"

	// HistoryPath overrides the default ~/.patreg_history (for tests).
	HistoryPath string
}

// historyFile returns the path to the history file.
func (r *REPL) historyFile() string {
	if r.HistoryPath != "" {
		return r.HistoryPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".patreg_history")
}

// Run starts the console loop. Returns when the user quits or input ends.
func (r *REPL) Run(ctx context.Context) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completer)

	if f, err := os.Open(r.historyFile()); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintln(r.Out, "patreg console - statements run directly against the registry database.")
	fmt.Fprintln(r.Out, "Type .help for help, .quit to exit.")
	fmt.Fprintln(r.Out)

	for {
		input, err := line.Prompt("patreg> ")
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue // Ctrl-C abandons the current line only
			}
			if err == io.EOF {
				fmt.Fprintln(r.Out)
				break
			}
			return fmt.Errorf("read input: %w", err)
		}

		stmt := strings.TrimSpace(input)
		if stmt == "" {
			continue
		}
		line.AppendHistory(stmt)

		switch strings.ToLower(stmt) {
		case ".quit", ".exit":
			r.writeHistory(line)
			return nil
		case ".help":
			r.printHelp()
			continue
		}

		r.render(Exec(ctx, r.Handle, stmt, nil))
	}

	r.writeHistory(line)
	return nil
}

func (r *REPL) render(res Result) {
	if r.Format == "json" {
		enc := json.NewEncoder(r.Out)
		enc.SetIndent("", "  ")
		_ = enc.Encode(res)
		return
	}
	res.WriteText(r.Out)
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.Out, "Enter any SQL statement to run it against the registry.")
	fmt.Fprintln(r.Out, "Meta commands:")
	fmt.Fprintln(r.Out, "  .help   show this help")
	fmt.Fprintln(r.Out, "  .quit   exit the console")
}

func (r *REPL) writeHistory(line *liner.State) {
	path := r.historyFile()
	if path == "" {
		return
	}
	if f, err := os.Create(path); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

// completer suggests SQL keywords and patient column names for the last
// word on the line.
func completer(input string) []string {
	idx := strings.LastIndexByte(input, ' ')
	prefix, word := "", input
	if idx >= 0 {
		prefix, word = input[:idx+1], input[idx+1:]
	}
	if word == "" {
		return nil
	}

	upper := word == strings.ToUpper(word) && word != strings.ToLower(word)
	var out []string
	for _, kw := range sqlKeywords {
		candidate := kw
		if upper {
			candidate = strings.ToUpper(kw)
		}
		if strings.HasPrefix(candidate, word) {
			out = append(out, prefix+candidate)
		}
	}
	return out
}
