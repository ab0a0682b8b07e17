// Package analyze orchestrates the comparison of a wild-type and a
// patient DNA sequence into a structured mutation report.
package analyze

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/inodb/vibe-mut/internal/mutation"
	"github.com/inodb/vibe-mut/internal/seq"
)

// ErrImplausiblePair is returned when the base-distribution gate decides
// two sequences cannot plausibly differ by a single mutation event.
var ErrImplausiblePair = errors.New("sequences are not a plausible single-mutation pair")

// Options control presentation aspects of an analysis.
type Options struct {
	// Window is the number of symbols shown on each side of the
	// mutation site in rendered alignments. Zero or negative means
	// no limit.
	Window int
	// Marker surrounds mutated amino acids in the protein alignment.
	Marker byte
}

// DefaultOptions returns the options used when none are set.
func DefaultOptions() Options {
	return Options{Window: 5, Marker: mutation.DefaultMarker}
}

// Result holds every fact computed for one wild-type/patient pair.
// All fields are derived, read-only values; nothing is shared.
type Result struct {
	WildDist seq.Dist

	DNAType  mutation.DNAType
	DNAIndex int

	WildORF    string
	PatientORF string

	WildProtein    string
	PatientProtein string

	AAChanges []mutation.AAChange
	AAType    mutation.AAType

	DNAAlignment     string
	ProteinAlignment string
}

// DNAChanged reports whether a nucleotide-level mutation was found.
func (r *Result) DNAChanged() bool {
	return r.DNAType != mutation.DNANone
}

// ProteinChanged reports whether the mutation altered the protein.
func (r *Result) ProteinChanged() bool {
	return r.AAType != mutation.AASilent
}

// Analyzer runs the full analysis pipeline. Safe for concurrent use on
// independent input pairs: it holds no mutable state beyond options and
// the logger.
type Analyzer struct {
	opts   Options
	logger *zap.Logger
}

// NewAnalyzer creates an analyzer with the given options.
func NewAnalyzer(opts Options) *Analyzer {
	if opts.Marker == 0 {
		opts.Marker = mutation.DefaultMarker
	}
	return &Analyzer{
		opts:   opts,
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for progress and warning messages.
func (a *Analyzer) SetLogger(l *zap.Logger) {
	a.logger = l
}

// Analyze compares a wild-type and a patient DNA sequence and returns
// the full mutation report data. Sequences must be non-empty uppercase
// A/T/C/G strings; validation failures and implausible pairs abort the
// analysis with no partial result.
func (a *Analyzer) Analyze(wild, patient string) (*Result, error) {
	if !seq.Validate(wild) {
		return nil, fmt.Errorf("wild-type sequence: %w", seq.ErrInvalidSequence)
	}
	if !seq.Validate(patient) {
		return nil, fmt.Errorf("patient sequence: %w", seq.ErrInvalidSequence)
	}
	if !mutation.SingleEventPlausible(wild, patient) {
		return nil, fmt.Errorf("%w (wild type %d nt, patient %d nt)", ErrImplausiblePair, len(wild), len(patient))
	}

	r := &Result{WildDist: seq.Distribution(wild)}

	wildRNA, err := seq.Transcribe(wild)
	if err != nil {
		return nil, fmt.Errorf("transcribe wild type: %w", err)
	}
	patientRNA, err := seq.Transcribe(patient)
	if err != nil {
		return nil, fmt.Errorf("transcribe patient: %w", err)
	}

	r.WildORF = seq.FindLongestORF(wildRNA)
	r.PatientORF = seq.FindCorrespondingORF(wildRNA, patientRNA)
	if r.WildORF == "" {
		a.logger.Warn("no open reading frame in wild-type sequence",
			zap.Int("length", len(wild)))
	}

	r.WildProtein = seq.TranslateORF(r.WildORF)
	r.PatientProtein = seq.TranslateORF(r.PatientORF)

	r.DNAType, r.DNAIndex = mutation.ClassifyDNA(wild, patient)
	r.AAChanges, r.AAType = mutation.ClassifyProtein(r.WildProtein, r.PatientProtein, r.DNAType)

	r.DNAAlignment = mutation.RenderDNAAlignment(wild, patient, r.DNAType, r.DNAIndex, a.opts.Window)
	r.ProteinAlignment = mutation.RenderProteinAlignment(
		r.WildProtein, r.PatientProtein, r.AAType, r.AAChanges, a.opts.Window, a.opts.Marker)

	a.logger.Debug("analysis complete",
		zap.Stringer("dna", r.DNAType),
		zap.Int("index", r.DNAIndex),
		zap.Stringer("protein", r.AAType),
		zap.Int("aa_changes", len(r.AAChanges)))

	return r, nil
}
