package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/clinicbox/patreg/internal/store"
)

// Row is one result row. Column sets are unknown until query time, so
// rows are dynamic maps; Result.Columns preserves the engine's column
// order for rendering.
type Row = map[string]any

// Result is the uniform envelope returned for every statement.
type Result struct {
	Success bool     `json:"success"`
	Columns []string `json:"columns,omitempty"`
	Data    []Row    `json:"data"`
	Error   *string  `json:"error"`
}

// Exec runs one parameterized statement and captures the outcome into an
// envelope. It never returns an error: unreachable database, syntax
// errors and constraint violations all land in Result.Error with the
// engine's message intact.
func Exec(ctx context.Context, h *store.Handle, sqlText string, params []any) Result {
	st, err := h.Get()
	if err != nil {
		return failure(err)
	}

	// Query handles every statement type with the sqlite3 driver; a
	// non-SELECT simply produces zero rows.
	rows, err := st.Query(ctx, sqlText, params...)
	if err != nil {
		return failure(err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return failure(err)
	}

	data := []Row{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return failure(err)
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = displayValue(values[i])
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return failure(err)
	}

	return Result{Success: true, Columns: cols, Data: data}
}

// failure builds an error envelope preserving the engine's message.
func failure(err error) Result {
	msg := err.Error()
	return Result{Success: false, Data: []Row{}, Error: &msg}
}

// displayValue coerces driver types into JSON-friendly values.
func displayValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// WriteText renders the envelope as a human-readable table.
func (r Result) WriteText(w io.Writer) {
	if !r.Success {
		msg := ""
		if r.Error != nil {
			msg = *r.Error
		}
		fmt.Fprintf(w, "Error: %s\n", msg)
		return
	}

	if len(r.Data) == 0 {
		fmt.Fprintln(w, "OK (0 rows)")
		return
	}

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(r.Columns, "\t"))
	for _, row := range r.Data {
		cells := make([]string, len(r.Columns))
		for i, col := range r.Columns {
			cells[i] = formatCell(row[col])
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
	fmt.Fprintf(w, "(%d rows)\n", len(r.Data))
}

// formatCell renders one cell, with NULL spelled out.
func formatCell(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}
