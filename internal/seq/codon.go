package seq

import "strings"

// Standard genetic code: RNA codon to amino acid (single letter).
var codonTable = map[string]byte{
	"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
	"UAU": 'Y', "UAC": 'Y', "UAA": '*', "UAG": '*',
	"UGU": 'C', "UGC": 'C', "UGA": '*', "UGG": 'W',

	"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// StopAA is the translated stop symbol. It doubles as the placeholder
// for length-mismatch tails in protein mutation maps.
const StopAA = '*'

// TranslateCodon translates an RNA codon to its amino acid.
// Returns 0 for codons not in the genetic code table.
func TranslateCodon(codon string) (byte, bool) {
	aa, ok := codonTable[codon]
	return aa, ok
}

// IsStartCodon returns true if the codon is the start codon (AUG).
func IsStartCodon(codon string) bool {
	return codon == startCodon
}

// IsStopCodon returns true if the codon is a stop codon (UAA, UAG, UGA).
func IsStopCodon(codon string) bool {
	return codonTable[codon] == StopAA
}

const startCodon = "AUG"

// TranslateORF translates an open reading frame into a protein sequence.
// Codons are read in non-overlapping steps of three from position 0.
// Translation halts, without emitting the stop symbol, at the first stop
// codon. Codons missing from the table (trailing partials) are skipped.
func TranslateORF(orf string) string {
	var b strings.Builder
	b.Grow(len(orf) / 3)
	for i := 0; i+3 <= len(orf); i += 3 {
		aa, ok := TranslateCodon(orf[i : i+3])
		if !ok {
			continue
		}
		if aa == StopAA {
			break
		}
		b.WriteByte(aa)
	}
	return b.String()
}
