package mutation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDNA(t *testing.T) {
	tests := []struct {
		name      string
		wild      string
		patient   string
		wantType  DNAType
		wantIndex int
	}{
		{"substitution", "AACATACG", "AACCTACG", DNASubstitution, 3},
		{"identical", "AACATACG", "AACATACG", DNANone, -1},
		{"both empty", "", "", DNANone, -1},
		{"insertion mid", "AACG", "AACTG", DNAInsertion, 3},
		{"insertion at end", "AACG", "AACGT", DNAInsertion, 4},
		{"insertion into empty", "", "A", DNAInsertion, 0},
		{"deletion mid", "AACTG", "AACG", DNADeletion, 3},
		{"deletion at end", "AACGT", "AACG", DNADeletion, 4},
		{"deletion of everything", "ACGT", "", DNADeletion, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotIndex := ClassifyDNA(tt.wild, tt.patient)
			assert.Equal(t, tt.wantType, gotType)
			assert.Equal(t, tt.wantIndex, gotIndex)
		})
	}
}

// ClassifyDNA models exactly one mutation event: a pair differing at
// several independent positions still reports the first mismatch's
// single tag. DNAMulti stays declared but unreachable.
func TestClassifyDNAMultiUnreachable(t *testing.T) {
	gotType, gotIndex := ClassifyDNA("AAAA", "TATA")
	assert.Equal(t, DNASubstitution, gotType)
	assert.Equal(t, 0, gotIndex)
	assert.NotEqual(t, DNAMulti, gotType)
}

func TestDNATypeString(t *testing.T) {
	assert.Equal(t, "none", DNANone.String())
	assert.Equal(t, "substitution", DNASubstitution.String())
	assert.Equal(t, "insertion", DNAInsertion.String())
	assert.Equal(t, "deletion", DNADeletion.String())
	assert.Equal(t, "multi", DNAMulti.String())
}
