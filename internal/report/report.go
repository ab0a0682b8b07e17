// Package report assembles the final textual mutation report. It is the
// analysis core's output collaborator: pure formatting and ordering of
// already-computed facts, no classification of its own.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/inodb/vibe-mut/internal/analyze"
	"github.com/inodb/vibe-mut/internal/mutation"
	"github.com/inodb/vibe-mut/internal/seq"
)

// Writer renders analysis results as text reports.
type Writer struct {
	w io.Writer
}

// NewWriter creates a report writer targeting w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write renders one full report for a named pair.
func (rw *Writer) Write(name string, r *analyze.Result) error {
	var b strings.Builder

	fmt.Fprintf(&b, "=== mutation report: %s ===\n\n", name)

	writeDistribution(&b, r.WildDist)

	fmt.Fprintf(&b, "\nDNA mutation\n")
	fmt.Fprintf(&b, "  changed: %v\n", r.DNAChanged())
	fmt.Fprintf(&b, "  type:    %s\n", r.DNAType)
	if r.DNAIndex >= 0 {
		fmt.Fprintf(&b, "  index:   %d\n", r.DNAIndex)
	}
	indent(&b, r.DNAAlignment)

	fmt.Fprintf(&b, "\nprotein mutation\n")
	fmt.Fprintf(&b, "  changed: %v\n", r.ProteinChanged())
	fmt.Fprintf(&b, "  type:    %s\n", r.AAType)

	wildLen := len(r.WildProtein)
	patientLen := len(r.PatientProtein)
	delta := patientLen - wildLen
	fmt.Fprintf(&b, "  protein length: %d aa -> %d aa (delta %+d", wildLen, patientLen, delta)
	if wildLen > 0 {
		fmt.Fprintf(&b, ", %+.1f%%", 100*float64(delta)/float64(wildLen))
		fmt.Fprintf(&b, ", ratio %.2f", float64(patientLen)/float64(wildLen))
	}
	fmt.Fprintf(&b, ")\n")

	fmt.Fprintf(&b, "  detail: %s\n", detail(r))

	if longest := max(wildLen, patientLen); longest > 0 {
		fmt.Fprintf(&b, "  amino acids different: %.1f%%\n",
			100*float64(len(r.AAChanges))/float64(longest))
	}
	indent(&b, r.ProteinAlignment)

	_, err := io.WriteString(rw.w, b.String())
	return err
}

// writeDistribution renders the wild-type base count table.
func writeDistribution(b *strings.Builder, d seq.Dist) {
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "base\tcount")
	for _, base := range [4]byte{'A', 'T', 'C', 'G'} {
		fmt.Fprintf(tw, "%c\t%d\n", base, d.Count(base))
	}
	fmt.Fprintf(tw, "total\t%d\n", d.Total())
	tw.Flush()
}

// detail produces the per-type mutation detail sentence.
func detail(r *analyze.Result) string {
	switch r.AAType {
	case mutation.AASilent:
		return "the mutation does not change the encoded protein"
	case mutation.AAMissense:
		c := r.AAChanges[0]
		return fmt.Sprintf("amino acid %c at position %d is replaced by %c", c.Wild, c.Pos, c.Patient)
	case mutation.AANonsense:
		for _, c := range r.AAChanges {
			if c.Patient == seq.StopAA {
				return fmt.Sprintf("a premature stop truncates the protein at position %d", c.Pos)
			}
		}
		return "a premature stop truncates the protein"
	case mutation.AAFrameshift:
		return fmt.Sprintf("the reading frame is disrupted from position %d onward (%d amino acid(s) affected)",
			r.AAChanges[0].Pos, len(r.AAChanges))
	}
	return "unclassified protein mutation"
}

// indent writes a rendered alignment block indented under its section.
func indent(b *strings.Builder, block string) {
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		fmt.Fprintf(b, "  %s\n", line)
	}
}
