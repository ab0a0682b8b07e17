// Package mutation classifies the single edit separating two nucleotide
// sequences and its effect on the encoded protein, and renders both
// levels as human-readable alignments.
package mutation

// DNAType identifies the kind of nucleotide-level edit between a
// wild-type and a patient sequence.
type DNAType int

const (
	DNANone DNAType = iota
	DNASubstitution
	DNAInsertion
	DNADeletion
	// DNAMulti is part of the taxonomy but is never produced by
	// ClassifyDNA, which models exactly one mutation event. Callers
	// must not assume it is reachable.
	DNAMulti
)

// String returns the lowercase name of the mutation type.
func (t DNAType) String() string {
	switch t {
	case DNANone:
		return "none"
	case DNASubstitution:
		return "substitution"
	case DNAInsertion:
		return "insertion"
	case DNADeletion:
		return "deletion"
	case DNAMulti:
		return "multi"
	}
	return "unknown"
}

// ClassifyDNA compares two nucleotide sequences of possibly unequal
// length and returns the mutation type plus the first differing
// position. Identical sequences yield (DNANone, -1). For an insertion
// or deletion with a fully matching prefix, the index is the length of
// the shorter sequence (the extra bases sit at the end).
//
// Exactly one mutation event is assumed; sequences differing at several
// independent positions still classify as the first mismatch's type.
func ClassifyDNA(wild, patient string) (DNAType, int) {
	switch {
	case len(patient) > len(wild):
		for i := 0; i < len(wild); i++ {
			if wild[i] != patient[i] {
				return DNAInsertion, i
			}
		}
		return DNAInsertion, len(wild)
	case len(patient) < len(wild):
		for i := 0; i < len(patient); i++ {
			if wild[i] != patient[i] {
				return DNADeletion, i
			}
		}
		return DNADeletion, len(patient)
	default:
		for i := 0; i < len(wild); i++ {
			if wild[i] != patient[i] {
				return DNASubstitution, i
			}
		}
		return DNANone, -1
	}
}
