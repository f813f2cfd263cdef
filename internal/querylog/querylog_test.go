package querylog

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestFileRecorderAppends(t *testing.T) {
	r := NewFileRecorder(filepath.Join(t.TempDir(), "consultas.log"))
	r.now = func() time.Time {
		return time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	}

	assert.Equal(t, nil, r.Record("melhor celular para fotos"))
	assert.Equal(t, nil, r.Record("celular barato com bateria boa"))

	got, err := r.Dump()
	assert.Equal(t, nil, err)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, "2026-03-01 09:30:00 - melhor celular para fotos", lines[0])
	assert.Equal(t, "2026-03-01 09:30:00 - celular barato com bateria boa", lines[1])
}

func TestFileRecorderFlattensLineBreaks(t *testing.T) {
	r := NewFileRecorder(filepath.Join(t.TempDir(), "consultas.log"))

	assert.Equal(t, nil, r.Record("primeira linha\nsegunda linha"))

	got, err := r.Dump()
	assert.Equal(t, nil, err)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	assert.Equal(t, 1, len(lines))
	assert.Equal(t, true, strings.HasSuffix(lines[0], "primeira linha segunda linha"))
}

func TestFileRecorderDumpWithoutWrites(t *testing.T) {
	r := NewFileRecorder(filepath.Join(t.TempDir(), "consultas.log"))

	got, err := r.Dump()

	assert.Equal(t, nil, err)
	assert.Equal(t, "", got)
}
