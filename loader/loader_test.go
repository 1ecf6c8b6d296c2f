package loader_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/sortlab/loader"
	"github.com/katalvlaran/sortlab/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_SkipsMalformedLines keeps only exactly-three-token lines.
func TestParse_SkipsMalformedLines(t *testing.T) {
	in := "\ufeff30 Ann Lee\n" +
		"\n" +
		"41 Bob\n" +
		"  22\tCid   Moe  \n" +
		"19 Dee Fox extra\n" +
		"55 Eve Ng\r\n"

	got, err := loader.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []record.Record{
		{Age: 30, FirstName: "Ann", LastName: "Lee"},
		{Age: 22, FirstName: "Cid", LastName: "Moe"},
		{Age: 55, FirstName: "Eve", LastName: "Ng"},
	}, got)
}

// TestParse_BadAge aborts with the line number.
func TestParse_BadAge(t *testing.T) {
	_, err := loader.Parse(strings.NewReader("30 Ann Lee\nold Bob Ray\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, loader.ErrBadAge))
	assert.Contains(t, err.Error(), "line 2")

	_, err = loader.Parse(strings.NewReader("-4 Ann Lee\n"))
	assert.ErrorIs(t, err, loader.ErrBadAge)
}

// TestParse_Empty returns no records and no error.
func TestParse_Empty(t *testing.T) {
	got, err := loader.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestParse_SkipsOversizedLine treats a multi-megabyte line like any other
// malformed line and keeps the records around it.
func TestParse_SkipsOversizedLine(t *testing.T) {
	in := "30 Ann Lee\n" + strings.Repeat("x", 2<<20) + "\n22 Cid Moe\n"

	got, err := loader.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []record.Record{
		{Age: 30, FirstName: "Ann", LastName: "Lee"},
		{Age: 22, FirstName: "Cid", LastName: "Moe"},
	}, got)

	long := strings.Repeat("y", 3<<20)
	got, err = loader.Parse(strings.NewReader("41 " + long + " Ray\n19 Dee Fox"))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, long, got[0].FirstName)
	assert.Equal(t, record.Record{Age: 19, FirstName: "Dee", LastName: "Fox"}, got[1])
}

// TestWriteThenLoadFile goes through a real file on disk.
func TestWriteThenLoadFile(t *testing.T) {
	recs := []record.Record{{Age: 18, FirstName: "Name0", LastName: "Last0"}, {Age: 19, FirstName: "Name1", LastName: "Last1"}}
	path := filepath.Join(t.TempDir(), "users.txt")

	require.NoError(t, loader.WriteFile(path, recs))
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "18 Name0 Last0\n19 Name1 Last1\n", string(raw))

	got, err := loader.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, recs, got)
}

// TestLoadFile_Missing wraps the os error.
func TestLoadFile_Missing(t *testing.T) {
	_, err := loader.LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestWrite_Buffer writes nothing for an empty set.
func TestWrite_Buffer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, loader.Write(&buf, nil))
	assert.Zero(t, buf.Len())
}
