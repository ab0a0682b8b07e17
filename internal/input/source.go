// Package input reads named nucleotide sequences from files. It is the
// analysis core's input collaborator: it hands over validated,
// uppercased, non-empty sequences or a distinct error, never a default.
package input

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/inodb/vibe-mut/internal/seq"
)

// ErrSourceUnavailable is returned when a named sequence source cannot
// be produced: missing, empty, or unparseable.
var ErrSourceUnavailable = errors.New("sequence source unavailable")

// ReadSequence reads a DNA sequence from a plain-text or single-record
// FASTA file, gzip-aware by extension. Whitespace is stripped, the
// sequence is uppercased, and the DNA alphabet is enforced before the
// sequence is handed to the caller.
func ReadSequence(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("%w: open gzip reader for %s: %v", ErrSourceUnavailable, path, err)
		}
		defer gz.Close()
		reader = gz
	}

	s, err := parse(reader)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}

	s = strings.ToUpper(s)
	if !seq.Validate(s) {
		return "", fmt.Errorf("%s: %w", path, seq.ErrInvalidSequence)
	}
	return s, nil
}

// parse accumulates sequence lines, skipping at most one leading FASTA
// header. A second record or an empty body is unparseable.
func parse(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	var b strings.Builder
	headers := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			headers++
			if headers > 1 {
				return "", errors.New("multiple FASTA records, expected one sequence")
			}
			if b.Len() > 0 {
				return "", errors.New("FASTA header after sequence data")
			}
			continue
		}
		b.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("scan sequence: %w", err)
	}
	if b.Len() == 0 {
		return "", errors.New("no sequence data")
	}
	return b.String(), nil
}
