// Package seq provides nucleotide sequence primitives: alphabet
// validation, base counting, transcription, and open reading frame
// extraction over plain uppercase strings.
package seq

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSequence is returned when a sequence contains a symbol
// outside the DNA alphabet where validity is required.
var ErrInvalidSequence = errors.New("invalid sequence")

// Dist holds occurrence counts for the four DNA bases.
// All four keys are always meaningful; absent bases count zero.
type Dist struct {
	A, T, C, G int
}

// Total returns the number of counted bases.
func (d Dist) Total() int {
	return d.A + d.T + d.C + d.G
}

// Count returns the count for a single base, 0 for anything else.
func (d Dist) Count(base byte) int {
	switch base {
	case 'A':
		return d.A
	case 'T':
		return d.T
	case 'C':
		return d.C
	case 'G':
		return d.G
	}
	return 0
}

// Validate reports whether every character of s is one of A/T/C/G,
// case-insensitively. The empty sequence is valid.
func Validate(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] &^ 0x20 {
		case 'A', 'T', 'C', 'G':
		default:
			return false
		}
	}
	return true
}

// Distribution counts A/T/C/G occurrences in s. Characters outside the
// DNA alphabet are ignored, not counted and not an error.
func Distribution(s string) Dist {
	var d Dist
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A':
			d.A++
		case 'T':
			d.T++
		case 'C':
			d.C++
		case 'G':
			d.G++
		}
	}
	return d
}

// Transcribe maps a DNA sequence to its RNA complement, preserving
// positional order (A→U, T→A, C→G, G→C; not reverse complemented).
// Input is uppercased before mapping.
func Transcribe(dna string) (string, error) {
	var b strings.Builder
	b.Grow(len(dna))
	for i := 0; i < len(dna); i++ {
		switch dna[i] &^ 0x20 {
		case 'A':
			b.WriteByte('U')
		case 'T':
			b.WriteByte('A')
		case 'C':
			b.WriteByte('G')
		case 'G':
			b.WriteByte('C')
		default:
			return "", fmt.Errorf("%w: unexpected symbol %q at position %d", ErrInvalidSequence, dna[i], i)
		}
	}
	return b.String(), nil
}
