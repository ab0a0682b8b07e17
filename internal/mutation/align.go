package mutation

import (
	"fmt"
	"strings"
)

// DefaultMarker surrounds mutated symbols in rendered protein alignments.
const DefaultMarker byte = '#'

// RenderDNAAlignment produces a textual alignment of two nucleotide
// sequences around the mutation site. A window of w symbols is shown on
// each side of the site; w <= 0 shows the full sequences. The renderer
// never classifies; it only displays what it is given, and it returns a
// bounded out-of-range message instead of failing when the index falls
// outside both sequences.
func RenderDNAAlignment(wild, patient string, t DNAType, index, window int) string {
	var b strings.Builder

	if t == DNANone {
		b.WriteString("no nucleotide-level mutation\n")
		fmt.Fprintf(&b, "wild type: %s\n", clip(wild, 0, window))
		fmt.Fprintf(&b, "patient:   %s\n", clip(patient, 0, window))
		return b.String()
	}

	if index < 0 || (index > len(wild) && index > len(patient)) {
		return fmt.Sprintf("%s: position %d out of range (wild type %d nt, patient %d nt)\n",
			t, index, len(wild), len(patient))
	}

	fmt.Fprintf(&b, "%s at nucleotide position %d\n", t, index)
	fmt.Fprintf(&b, "wild type: %s\n", clip(wild, index, window))
	fmt.Fprintf(&b, "patient:   %s\n", clip(patient, index, window))
	return b.String()
}

// RenderProteinAlignment produces a textual alignment of two protein
// sequences with every mutated position surrounded by the marker
// character. The window applies around the first changed position;
// w <= 0 shows the full sequences.
func RenderProteinAlignment(wild, patient string, t AAType, changes []AAChange, window int, marker byte) string {
	var b strings.Builder

	if t == AASilent || len(changes) == 0 {
		b.WriteString("no amino-acid-level mutation\n")
		fmt.Fprintf(&b, "wild type: %s\n", clip(wild, 0, window))
		fmt.Fprintf(&b, "patient:   %s\n", clip(patient, 0, window))
		return b.String()
	}

	if marker == 0 {
		marker = DefaultMarker
	}

	site := changes[0].Pos
	if site > len(wild) && site > len(patient) {
		return fmt.Sprintf("%s: position %d out of range (wild type %d aa, patient %d aa)\n",
			t, site, len(wild), len(patient))
	}

	wildPos := make(map[int]bool, len(changes))
	patientPos := make(map[int]bool, len(changes))
	for _, c := range changes {
		if c.Pos < len(wild) {
			wildPos[c.Pos] = true
		}
		if c.Pos < len(patient) {
			patientPos[c.Pos] = true
		}
	}

	fmt.Fprintf(&b, "%s at protein position %d (%d position(s) affected)\n", t, site, len(changes))
	fmt.Fprintf(&b, "wild type: %s\n", clip(mark(wild, wildPos, marker), markedIndex(site, wildPos, len(wild)), window))
	fmt.Fprintf(&b, "patient:   %s\n", clip(mark(patient, patientPos, marker), markedIndex(site, patientPos, len(patient)), window))
	return b.String()
}

// mark rebuilds s with every byte at a position in pos surrounded by the
// marker character.
func mark(s string, pos map[int]bool, marker byte) string {
	var b strings.Builder
	b.Grow(len(s) + 2*len(pos))
	for i := 0; i < len(s); i++ {
		if pos[i] {
			b.WriteByte(marker)
			b.WriteByte(s[i])
			b.WriteByte(marker)
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// markedIndex maps an original-sequence index to its index in the marked
// string, accounting for marker bytes inserted before it.
func markedIndex(idx int, pos map[int]bool, n int) int {
	if idx > n {
		idx = n
	}
	shifted := idx
	for p := range pos {
		if p < idx {
			shifted += 2
		}
	}
	return shifted
}

// clip returns the sub-sequence of s spanning window symbols on each
// side of center, clamped to the sequence. Truncated edges are shown
// with an ellipsis. window <= 0 means no limit. The center may sit past
// the end of s (an index valid only for the longer sequence of a pair);
// it is clamped so the tail still renders.
func clip(s string, center, window int) string {
	if window <= 0 || len(s) <= 2*window+1 {
		return s
	}
	if center > len(s) {
		center = len(s)
	}
	lo := center - window
	if lo < 0 {
		lo = 0
	}
	hi := center + window + 1
	if hi > len(s) {
		hi = len(s)
	}
	out := s[lo:hi]
	if lo > 0 {
		out = "..." + out
	}
	if hi < len(s) {
		out += "..."
	}
	return out
}
