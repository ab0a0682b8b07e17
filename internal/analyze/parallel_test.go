package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inodb/vibe-mut/internal/mutation"
)

func TestParallelAnalyzeOrderedCollect(t *testing.T) {
	a := newTestAnalyzer()

	const n = 16
	items := make(chan WorkItem, n)
	for i := 0; i < n; i++ {
		items <- WorkItem{Seq: i, Name: "pair", Wild: wildCoding, Patient: patientCoding}
	}
	close(items)

	results := a.ParallelAnalyze(items, 4)

	var seqs []int
	err := OrderedCollect(results, func(r WorkResult) error {
		require.NoError(t, r.Err)
		assert.Equal(t, mutation.AAMissense, r.Result.AAType)
		seqs = append(seqs, r.Seq)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, seqs, n)
	for i, s := range seqs {
		assert.Equal(t, i, s)
	}
}

func TestParallelAnalyzeCarriesErrors(t *testing.T) {
	a := newTestAnalyzer()

	items := make(chan WorkItem, 2)
	items <- WorkItem{Seq: 0, Name: "good", Wild: wildCoding, Patient: patientCoding}
	items <- WorkItem{Seq: 1, Name: "bad", Wild: "AAAAAAAA", Patient: "TTTTTTTT"}
	close(items)

	results := a.ParallelAnalyze(items, 2)

	var errs int
	err := OrderedCollect(results, func(r WorkResult) error {
		if r.Err != nil {
			errs++
			assert.Equal(t, "bad", r.Name)
			assert.ErrorIs(t, r.Err, ErrImplausiblePair)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, errs)
}

func TestParallelAnalyzeDefaultWorkers(t *testing.T) {
	a := newTestAnalyzer()

	items := make(chan WorkItem, 1)
	items <- WorkItem{Seq: 0, Wild: wildCoding, Patient: wildCoding}
	close(items)

	got := 0
	err := OrderedCollect(a.ParallelAnalyze(items, 0), func(r WorkResult) error {
		got++
		return r.Err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}
