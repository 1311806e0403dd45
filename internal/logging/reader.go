// internal/logging/reader.go
package logging

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadAll reads every entry from the JSON-lines file at path. A missing file
// yields an empty slice. Blank lines are skipped; a malformed line is skipped
// and reported on the primary sink with its 1-based line number, and reading
// continues.
func (l *Logger) LoadAll(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	entries := []Entry{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			l.Emit(Record(TipoError, map[string]any{
				"action":  "load_logs",
				"message": fmt.Sprintf("invalid json on line %d of %s", lineNo, path),
			}))
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log file: %w", err)
	}
	return entries, nil
}

// FilterByTipo returns the entries whose category equals tipo, in their
// original order. Entries without a category never match.
func FilterByTipo(entries []Entry, tipo string) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Tipo != "" && e.Tipo == tipo {
			out = append(out, e)
		}
	}
	return out
}

// CountByTipo tallies entries per category. Entries without a category are
// counted under "UNKNOWN".
func CountByTipo(entries []Entry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		tipo := e.Tipo
		if tipo == "" {
			tipo = "UNKNOWN"
		}
		counts[tipo]++
	}
	return counts
}
