package input

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-mut/internal/seq"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadSequencePlain(t *testing.T) {
	path := writeFile(t, "wild.txt", "aacatacg\n")
	got, err := ReadSequence(path)
	require.NoError(t, err)
	assert.Equal(t, "AACATACG", got)
}

func TestReadSequenceFASTA(t *testing.T) {
	path := writeFile(t, "wild.fasta", ">wild type sample\nAACAT\nACG\n")
	got, err := ReadSequence(path)
	require.NoError(t, err)
	assert.Equal(t, "AACATACG", got)
}

func TestReadSequenceGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wild.fasta.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(">wild\nAACATACG\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	got, err := ReadSequence(path)
	require.NoError(t, err)
	assert.Equal(t, "AACATACG", got)
}

func TestReadSequenceMissingFile(t *testing.T) {
	_, err := ReadSequence(filepath.Join(t.TempDir(), "nope.fasta"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestReadSequenceEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", "")
	_, err := ReadSequence(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestReadSequenceHeaderOnly(t *testing.T) {
	path := writeFile(t, "header.fasta", ">wild\n")
	_, err := ReadSequence(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestReadSequenceMultiRecord(t *testing.T) {
	path := writeFile(t, "multi.fasta", ">a\nACGT\n>b\nTGCA\n")
	_, err := ReadSequence(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestReadSequenceInvalidAlphabet(t *testing.T) {
	path := writeFile(t, "bad.txt", "ACGTN\n")
	_, err := ReadSequence(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, seq.ErrInvalidSequence)
	assert.NotErrorIs(t, err, ErrSourceUnavailable)
}
