// AngelaMos | 2026
// csv.go

// Package report renders collections as downloadable CSV tables.
package report

import (
	"fmt"
	"net/http"
	"strings"
)

// CSV renders a header row plus data rows. Every cell is wrapped in double
// quotes with internal quotes doubled, and rows are joined with "\n". The
// quoting is unconditional so the output is byte-stable regardless of cell
// contents, which the export tests pin down.
func CSV(header []string, rows [][]string) string {
	var b strings.Builder

	writeRow(&b, header)
	for _, row := range rows {
		b.WriteByte('\n')
		writeRow(&b, row)
	}

	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
}

// WriteDownload serves a CSV body as a file attachment.
func WriteDownload(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", filename),
	)
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // response writer errors are not recoverable here
	_, _ = w.Write([]byte(body))
}
