package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/inodb/vibe-mut/internal/analyze"
	"github.com/inodb/vibe-mut/internal/duckdb"
	"github.com/inodb/vibe-mut/internal/input"
	"github.com/inodb/vibe-mut/internal/report"
)

func newBatchCmd() *cobra.Command {
	var (
		window     int
		marker     string
		outputFile string
		dbPath     string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "batch <manifest.tsv>",
		Short: "Analyze many sequence pairs listed in a manifest",
		Long: `Analyze every pair in a tab-separated manifest with lines of the form

  name<TAB>wild-type-path<TAB>patient-path

Pairs are analyzed in parallel; reports are written in manifest order.
Pairs that fail to read or analyze are logged and skipped.`,
		Args: cobra.ExactArgs(1),
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

			logger := newLogger()

			entries, err := readManifest(args[0])
			if err != nil {
				return err
			}

			analyzer := analyze.NewAnalyzer(analyze.Options{
				Window: window,
				Marker: markerByte(marker),
			})
			analyzer.SetLogger(logger)

			out := os.Stdout
			if outputFile != "" {
				f, err := os.Create(outputFile)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			var store *duckdb.Store
			if dbPath != "" {
				store, err = duckdb.Open(dbPath)
				if err != nil {
					return err
				}
				defer store.Close()
			}

			// Read all pairs up front so skipped entries never occupy a
			// sequence number (OrderedCollect expects them contiguous).
			var work []analyze.WorkItem
			skipped := 0
			for _, e := range entries {
				wild, err := input.ReadSequence(e.wildPath)
				if err != nil {
					logger.Warn("skipping pair: wild type unreadable",
						zap.String("name", e.name), zap.Error(err))
					skipped++
					continue
				}
				patient, err := input.ReadSequence(e.patientPath)
				if err != nil {
					logger.Warn("skipping pair: patient unreadable",
						zap.String("name", e.name), zap.Error(err))
					skipped++
					continue
				}
				work = append(work, analyze.WorkItem{Seq: len(work), Name: e.name, Wild: wild, Patient: patient})
			}

			items := make(chan analyze.WorkItem, len(work))
			go func() {
				defer close(items)
				for _, item := range work {
					items <- item
				}
			}()

			results := analyzer.ParallelAnalyze(items, workers)

			rw := report.NewWriter(out)
			analyzed := 0
			err = analyze.OrderedCollect(results, func(r analyze.WorkResult) error {
				if r.Err != nil {
					skipped++
					logger.Warn("failed to analyze pair",
						zap.String("name", r.Name), zap.Error(r.Err))
					return nil
				}
				analyzed++
				if err := rw.Write(r.Name, r.Result); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
				if store != nil {
					if err := store.InsertResult(r.Name, r.Result); err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "%d pair(s) analyzed, %d skipped\n", analyzed, skipped)
			return nil
		},
	}

	cmd.Flags().IntVar(&window, "window", 5, "alignment window size on each side of the mutation (0 = full sequence)")
	cmd.Flags().StringVar(&marker, "marker", "#", "marker character for mutated amino acids")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&dbPath, "db", "", "DuckDB database to append results to")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of parallel workers (0 = number of CPUs)")

	return cmd
}

type manifestEntry struct {
	name        string
	wildPath    string
	patientPath string
}

// readManifest parses a tab-separated manifest of name/wild/patient
// triples. Blank lines and #-comments are skipped; malformed lines are
// a fatal error, not a skip.
func readManifest(path string) ([]manifestEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	var entries []manifestEntry
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("manifest line %d: expected 3 tab-separated fields, got %d", lineNo, len(fields))
		}
		entries = append(entries, manifestEntry{
			name:        fields[0],
			wildPath:    fields[1],
			patientPath: fields[2],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("manifest %s contains no pairs", path)
	}
	return entries, nil
}
