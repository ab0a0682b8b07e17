package mutation

import "github.com/inodb/vibe-mut/internal/seq"

// SingleEventPlausible is a coarse gate run before deeper analysis: it
// checks that two sequences are close enough, base-distribution-wise, to
// plausibly differ by a single mutation event. The wild type is
// truncated to the patient's length before counting, and every base's
// signed count difference must lie in [-1, 1].
//
// This is a heuristic, not an edit-distance check. It can pass multi-
// mutation pairs and reject valid single-mutation pairs with unlucky
// base composition.
func SingleEventPlausible(wild, patient string) bool {
	if len(wild) > len(patient) {
		wild = wild[:len(patient)]
	}
	wd := seq.Distribution(wild)
	pd := seq.Distribution(patient)
	for _, base := range [4]byte{'A', 'T', 'C', 'G'} {
		diff := wd.Count(base) - pd.Count(base)
		if diff < -1 || diff > 1 {
			return false
		}
	}
	return true
}
