package seq

// FindLongestORF scans an RNA sequence for the longest open reading
// frame: a start codon followed, stepping three bases at a time, by the
// first in-frame stop codon. The returned ORF includes both the start
// and the stop codon. Ties keep the leftmost start. Returns the empty
// string when no start codon reaches an in-frame stop.
//
// Quadratic in sequence length, which is fine for gene-scale input.
func FindLongestORF(rna string) string {
	var best string
	for i := 0; i+3 <= len(rna); i++ {
		if !IsStartCodon(rna[i : i+3]) {
			continue
		}
		for j := i; j+3 <= len(rna); j += 3 {
			if !IsStopCodon(rna[j : j+3]) {
				continue
			}
			if candidate := rna[i : j+3]; len(candidate) > len(best) {
				best = candidate
			}
			break
		}
	}
	return best
}

// FindCorrespondingORF locates the ORF in a patient sequence to compare
// against the wild type's: it repeats the same global longest-ORF scan
// on the patient sequence, independent of the wild type's reading frame.
// When the patient scan finds nothing (the mutation disrupted the
// original start or stop), the wild type's own longest ORF is returned
// as a fallback.
//
// Known limitation: because the patient scan is not anchored to the
// wild-type frame, a mutation that shifts or destroys the original
// start/stop can pair ORFs from unrelated frames.
func FindCorrespondingORF(wildRNA, patientRNA string) string {
	if orf := FindLongestORF(patientRNA); orf != "" {
		return orf
	}
	return FindLongestORF(wildRNA)
}
