// internal/logging/logger.go
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

const (
	TipoInfo  = "INFO"
	TipoError = "ERROR"
)

// Entry is one diagnostic record. Serialized, it occupies exactly one line:
// {"tipo": <category>, "log_datos": {"timestamp": <RFC3339 UTC>, ...fields}}
type Entry struct {
	Tipo  string         `json:"tipo"`
	Datos map[string]any `json:"log_datos"`
}

// Logger writes entries to a primary stream sink and, best effort, to an
// append-only JSON-lines file. The primary sink is always attempted; a file
// append failure never propagates to the caller.
type Logger struct {
	out  io.Writer
	path string
}

func New(out io.Writer, path string) *Logger {
	if out == nil {
		out = os.Stdout
	}
	return &Logger{out: out, path: path}
}

// Record builds an entry, merging a fresh UTC timestamp into fields. No I/O.
func Record(tipo string, fields map[string]any) Entry {
	datos := make(map[string]any, len(fields)+1)
	datos["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)
	for k, v := range fields {
		datos[k] = v
	}
	return Entry{Tipo: tipo, Datos: datos}
}

// Emit serializes the entry as a single line on the primary sink.
func (l *Logger) Emit(e Entry) {
	line, err := json.Marshal(e)
	if err != nil {
		fmt.Fprintf(l.out, `{"tipo":"ERROR","log_datos":{"action":"emit","message":%q}}`+"\n", err.Error())
		return
	}
	l.out.Write(append(line, '\n'))
}

// Persist appends the entry to the log file, one open-append-close cycle per
// call. On failure a diagnostic entry goes to the primary sink only.
func (l *Logger) Persist(e Entry) {
	if err := appendLine(l.path, e); err != nil {
		l.Emit(Record(TipoError, map[string]any{
			"action":  "append_log_file",
			"message": "failed to append log file",
			"error":   fmt.Sprintf("could not write to %s", l.path),
		}))
	}
}

// Write emits the entry on the primary sink and appends it to the log file.
func (l *Logger) Write(e Entry) {
	l.Emit(e)
	l.Persist(e)
}

func appendLine(path string, e Entry) error {
	line, err := json.Marshal(e)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(append(line, '\n'))
	return err
}
