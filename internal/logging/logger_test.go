package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecordMergesTimestamp(t *testing.T) {
	e := Record(TipoInfo, map[string]any{"action": "create_movie"})

	require.Equal(t, TipoInfo, e.Tipo)
	require.Equal(t, "create_movie", e.Datos["action"])

	ts, ok := e.Datos["timestamp"].(string)
	require.True(t, ok)
	require.NotEmpty(t, ts)
}

func TestEmitWritesSingleLine(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, "")

	l.Emit(Record(TipoInfo, map[string]any{"action": "create_movie"}))

	lines := bytes.Split(bytes.TrimRight(out.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 1)

	var e Entry
	require.NoError(t, json.Unmarshal(lines[0], &e))
	require.Equal(t, TipoInfo, e.Tipo)
}

func TestWriteThenLoadAllRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.logl")
	var out bytes.Buffer
	l := New(&out, path)

	written := Record(TipoInfo, map[string]any{
		"action": "create_movie",
		"status": "success",
	})
	l.Write(written)

	entries, err := l.LoadAll(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, written.Tipo, entries[0].Tipo)
	require.Equal(t, written.Datos, entries[0].Datos)
}

func TestPersistAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.logl")
	l := New(&bytes.Buffer{}, path)

	l.Persist(Record(TipoInfo, map[string]any{"n": "1"}))
	l.Persist(Record(TipoError, map[string]any{"n": "2"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasSuffix(data, []byte("\n")))

	entries, err := l.LoadAll(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, TipoInfo, entries[0].Tipo)
	require.Equal(t, TipoError, entries[1].Tipo)
}

func TestPersistFailureIsContained(t *testing.T) {
	var out bytes.Buffer
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "test.logl")
	l := New(&out, path)

	l.Persist(Record(TipoInfo, map[string]any{"action": "create_movie"}))

	var diag Entry
	require.NoError(t, json.Unmarshal(bytes.TrimRight(out.Bytes(), "\n"), &diag))
	require.Equal(t, TipoError, diag.Tipo)
	require.Equal(t, "append_log_file", diag.Datos["action"])
	require.Contains(t, diag.Datos["error"], path)
}
