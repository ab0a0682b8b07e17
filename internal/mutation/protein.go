package mutation

import "github.com/inodb/vibe-mut/internal/seq"

// AAType identifies the aggregate effect of a mutation on the encoded
// protein.
type AAType int

const (
	AASilent AAType = iota
	AAMissense
	AANonsense
	AAFrameshift
)

// String returns the lowercase name of the protein mutation type.
func (t AAType) String() string {
	switch t {
	case AASilent:
		return "silent"
	case AAMissense:
		return "missense"
	case AANonsense:
		return "nonsense"
	case AAFrameshift:
		return "frameshift"
	}
	return "unknown"
}

// AAChange records one differing protein position. Wild or Patient is
// the '*' placeholder when the position only exists on the other side
// (a length-mismatch tail).
type AAChange struct {
	Pos     int
	Wild    byte
	Patient byte
}

// ClassifyProtein compares two protein sequences and classifies the
// aggregate effect, informed by the DNA-level classification. The
// returned changes cover every differing position, including the
// length-mismatch tail, ordered by position.
//
// Classification: no changes is silent; a length-changing DNA edit is
// always a frameshift regardless of how many positions changed; a
// single changed position is nonsense when the patient side is the stop
// placeholder, missense otherwise; multiple changes from a substitution
// are nonsense when any patient side is the stop placeholder, frameshift
// otherwise.
func ClassifyProtein(wild, patient string, dna DNAType) ([]AAChange, AAType) {
	var changes []AAChange

	short := len(wild)
	if len(patient) < short {
		short = len(patient)
	}
	for i := 0; i < short; i++ {
		if wild[i] != patient[i] {
			changes = append(changes, AAChange{Pos: i, Wild: wild[i], Patient: patient[i]})
		}
	}
	for i := short; i < len(wild); i++ {
		changes = append(changes, AAChange{Pos: i, Wild: wild[i], Patient: seq.StopAA})
	}
	for i := short; i < len(patient); i++ {
		changes = append(changes, AAChange{Pos: i, Wild: seq.StopAA, Patient: patient[i]})
	}

	switch {
	case len(changes) == 0:
		return nil, AASilent
	case dna == DNAInsertion || dna == DNADeletion:
		return changes, AAFrameshift
	case len(changes) == 1:
		if changes[0].Patient == seq.StopAA {
			return changes, AANonsense
		}
		return changes, AAMissense
	default:
		for _, c := range changes {
			if c.Patient == seq.StopAA {
				return changes, AANonsense
			}
		}
		return changes, AAFrameshift
	}
}
