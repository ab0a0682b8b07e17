package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyProteinSilent(t *testing.T) {
	changes, got := ClassifyProtein("MAL", "MAL", DNASubstitution)
	assert.Empty(t, changes)
	assert.Equal(t, AASilent, got)

	// Identical proteins are silent even for a length-changing DNA edit
	// (the empty-map rule applies first).
	changes, got = ClassifyProtein("MAL", "MAL", DNAInsertion)
	assert.Empty(t, changes)
	assert.Equal(t, AASilent, got)
}

func TestClassifyProteinMissense(t *testing.T) {
	changes, got := ClassifyProtein("ML", "MI", DNASubstitution)
	assert.Equal(t, []AAChange{{Pos: 1, Wild: 'L', Patient: 'I'}}, changes)
	assert.Equal(t, AAMissense, got)
}

func TestClassifyProteinNonsenseSingle(t *testing.T) {
	changes, got := ClassifyProtein("MLK", "ML*", DNASubstitution)
	assert.Equal(t, []AAChange{{Pos: 2, Wild: 'K', Patient: '*'}}, changes)
	assert.Equal(t, AANonsense, got)
}

func TestClassifyProteinNonsenseTruncatedTail(t *testing.T) {
	changes, got := ClassifyProtein("MILIYILI", "MILI", DNASubstitution)
	assert.Equal(t, AANonsense, got)
	assert.Equal(t, []AAChange{
		{Pos: 4, Wild: 'Y', Patient: '*'},
		{Pos: 5, Wild: 'I', Patient: '*'},
		{Pos: 6, Wild: 'L', Patient: '*'},
		{Pos: 7, Wild: 'I', Patient: '*'},
	}, changes)
}

func TestClassifyProteinExtendedTail(t *testing.T) {
	changes, got := ClassifyProtein("MI", "MILI", DNAInsertion)
	assert.Equal(t, AAFrameshift, got)
	assert.Equal(t, []AAChange{
		{Pos: 2, Wild: '*', Patient: 'L'},
		{Pos: 3, Wild: '*', Patient: 'I'},
	}, changes)
}

func TestClassifyProteinIndelAlwaysFrameshift(t *testing.T) {
	// A length-changing DNA edit is a frameshift even when only one
	// amino acid position actually differs.
	changes, got := ClassifyProtein("ML", "MI", DNADeletion)
	assert.Len(t, changes, 1)
	assert.Equal(t, AAFrameshift, got)
}

// Multiple differing positions from a substitution-class DNA mutation:
// nonsense when any patient side is the stop placeholder, frameshift
// otherwise. The no-placeholder branch must still return a definite
// classification.
func TestClassifyProteinMultipleFromSubstitution(t *testing.T) {
	changes, got := ClassifyProtein("MALK", "MGLV", DNASubstitution)
	assert.Len(t, changes, 2)
	assert.Equal(t, AAFrameshift, got)

	changes, got = ClassifyProtein("MALK", "MGL*", DNASubstitution)
	assert.Len(t, changes, 2)
	assert.Equal(t, AANonsense, got)
}

func TestClassifyProteinChangesOrderedByPosition(t *testing.T) {
	changes, _ := ClassifyProtein("MALKY", "MGLVY", DNASubstitution)
	for i := 1; i < len(changes); i++ {
		assert.Less(t, changes[i-1].Pos, changes[i].Pos)
	}
}

func TestAATypeString(t *testing.T) {
	assert.Equal(t, "silent", AASilent.String())
	assert.Equal(t, "missense", AAMissense.String())
	assert.Equal(t, "nonsense", AANonsense.String())
	assert.Equal(t, "frameshift", AAFrameshift.String())
}
