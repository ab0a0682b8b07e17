package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inodb/vibe-mut/internal/analyze"
	"github.com/inodb/vibe-mut/internal/duckdb"
	"github.com/inodb/vibe-mut/internal/input"
	"github.com/inodb/vibe-mut/internal/report"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		window     int
		marker     string
		outputFile string
		dbPath     string
		name       string
	)

	cmd := &cobra.Command{
		Use:   "analyze <wild-type-file> <patient-file>",
		Short: "Analyze one wild-type/patient sequence pair",
		Example: `  vibe-mut analyze wild.fasta patient.fasta
  vibe-mut analyze --window 10 wild.txt patient.txt
  vibe-mut analyze --db results.duckdb wild.fasta patient.fasta`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("window") {
				window = viper.GetInt("output.window")
			}
			if !cmd.Flags().Changed("marker") {
				marker = viper.GetString("output.marker")
			}
			if !cmd.Flags().Changed("db") {
				dbPath = viper.GetString("cache.db")
			}

			wild, err := input.ReadSequence(args[0])
			if err != nil {
				return fmt.Errorf("wild type: %w", err)
			}
			patient, err := input.ReadSequence(args[1])
			if err != nil {
				return fmt.Errorf("patient: %w", err)
			}

			analyzer := analyze.NewAnalyzer(analyze.Options{
				Window: window,
				Marker: markerByte(marker),
			})
			analyzer.SetLogger(newLogger())

			result, err := analyzer.Analyze(wild, patient)
			if err != nil {
				return err
			}

			out := os.Stdout
			if outputFile != "" {
				f, err := os.Create(outputFile)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if name == "" {
				name = pairName(args[0], args[1])
			}
			if err := report.NewWriter(out).Write(name, result); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			if dbPath != "" {
				store, err := duckdb.Open(dbPath)
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.InsertResult(name, result); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&window, "window", 5, "alignment window size on each side of the mutation (0 = full sequence)")
	cmd.Flags().StringVar(&marker, "marker", "#", "marker character for mutated amino acids")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB database to append results to")
	cmd.Flags().StringVar(&name, "name", "", "pair name used in the report (default: derived from file names)")

	return cmd
}

// pairName derives a report name from the two input paths.
func pairName(wildPath, patientPath string) string {
	return strings.TrimSuffix(filepath.Base(wildPath), filepath.Ext(wildPath)) +
		"/" +
		strings.TrimSuffix(filepath.Base(patientPath), filepath.Ext(patientPath))
}
