package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sucreistaken/cv-importer/internal/config"
	"github.com/sucreistaken/cv-importer/internal/db"
	"github.com/sucreistaken/cv-importer/internal/observability"
	"github.com/sucreistaken/cv-importer/internal/pipeline"
	"github.com/sucreistaken/cv-importer/internal/schemas"
	"github.com/sucreistaken/cv-importer/internal/segment"
)

// batchConcurrency bounds how many PDFs a directory import decodes at once.
const batchConcurrency = 4

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a PDF CV into structured JSON",
	Long:  "Import a text-based PDF CV and reconstruct a structured document: contact details, sections, and per-section entries.",
	RunE:  runImport,
}

var (
	importInputFile    string
	importInputDir     string
	importOutputFile   string
	importConfigFile   string
	importDatabaseURL  string
	importPretty       bool
	importValidate     bool
	importVerbose      bool
	importHeadingRatio float64
	importMaxHeading   int
)

func init() {
	importCmd.Flags().StringVarP(&importInputFile, "in", "i", "", "Path to PDF file to import")
	importCmd.Flags().StringVar(&importInputDir, "dir", "", "Import every PDF in a directory (writes one JSON per PDF)")
	importCmd.Flags().StringVarP(&importOutputFile, "out", "o", "", "Path to output JSON file (default: stdout, or <name>.json in --dir mode)")
	importCmd.Flags().StringVar(&importConfigFile, "config", "", "Path to JSON config file")
	importCmd.Flags().StringVar(&importDatabaseURL, "db-url", "", "Persist the import to this database (overrides DATABASE_URL env var)")
	importCmd.Flags().BoolVar(&importPretty, "pretty", false, "Indent JSON output")
	importCmd.Flags().BoolVar(&importValidate, "validate", false, "Validate output against the document schema")
	importCmd.Flags().BoolVarP(&importVerbose, "verbose", "v", false, "Print detailed import information")
	importCmd.Flags().Float64Var(&importHeadingRatio, "heading-font-ratio", 0, "Minimum heading font size as a ratio of body font size")
	importCmd.Flags().IntVar(&importMaxHeading, "max-heading-length", 0, "Maximum character length of a heading line")

	rootCmd.AddCommand(importCmd)
}

func runImport(_ *cobra.Command, _ []string) error {
	if importInputFile == "" && importInputDir == "" {
		return fmt.Errorf("must provide either --in or --dir")
	}
	if importInputFile != "" && importInputDir != "" {
		return fmt.Errorf("cannot use --in with --dir")
	}

	cfg := config.Config{
		DatabaseURL:      importDatabaseURL,
		HeadingFontRatio: importHeadingRatio,
		MaxHeadingLength: importMaxHeading,
		Output:           importOutputFile,
		Pretty:           importPretty,
		Validate:         importValidate,
		Verbose:          importVerbose,
	}

	if importConfigFile != "" {
		fileCfg, err := config.LoadConfig(importConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		// Bool flags always win over the config file
		cfg.Pretty = cfg.Pretty || importPretty
		cfg.Validate = cfg.Validate || importValidate
		cfg.Verbose = cfg.Verbose || importVerbose
	}
	if err := cfg.Check(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	opts := pipeline.Options{
		Segment: segment.Options{
			HeadingFontRatio: cfg.HeadingFontRatio,
			MaxHeadingLength: cfg.MaxHeadingLength,
		},
	}
	importer := pipeline.New(opts)

	ctx := context.Background()

	var database *db.DB
	if cfg.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	if importInputDir != "" {
		return importDirectory(ctx, importer, database, cfg)
	}
	return importOne(ctx, importer, database, cfg, importInputFile, cfg.Output)
}

// importOne imports a single PDF and writes the JSON to outPath or stdout.
func importOne(ctx context.Context, importer *pipeline.Importer, database *db.DB, cfg config.Config, inPath, outPath string) error {
	doc, err := importer.ImportFile(ctx, inPath)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintPersonalInfo(&doc.PersonalInfo)
		printer.PrintExperience(doc.Experience)
		printer.PrintDocumentSummary(doc)
	}

	if doc.IsEmpty() {
		fmt.Fprintf(os.Stderr, "Warning: no recognizable content found in %s (scanned or image-only PDF?)\n", inPath)
	}

	if cfg.Validate {
		if err := schemas.ValidateDocument(doc); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("imported document does not validate against schema: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
		}
	}

	if database != nil {
		id, err := database.SaveImport(ctx, filepath.Base(inPath), doc)
		if err != nil {
			return fmt.Errorf("failed to persist import: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved import %s\n", id)
	}

	var jsonBytes []byte
	if cfg.Pretty {
		jsonBytes, err = json.MarshalIndent(doc, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if outPath == "" {
		_, _ = fmt.Fprintf(os.Stdout, "%s\n", jsonBytes)
		return nil
	}
	if err := os.WriteFile(outPath, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outPath)
	return nil
}

// importDirectory imports every PDF in a directory, writing <name>.json next
// to each PDF (or under --out if it names a directory).
func importDirectory(ctx context.Context, importer *pipeline.Importer, database *db.DB, cfg config.Config) error {
	entries, err := os.ReadDir(importInputDir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	outDir := importInputDir
	if cfg.Output != "" {
		outDir = cfg.Output
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	imported := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		imported++

		name := entry.Name()
		inPath := filepath.Join(importInputDir, name)
		outPath := filepath.Join(outDir, strings.TrimSuffix(name, filepath.Ext(name))+".json")

		g.Go(func() error {
			if err := importOne(ctx, importer, database, cfg, inPath, outPath); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if imported == 0 {
		return fmt.Errorf("no PDF files found in %s", importInputDir)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Imported %d files\n", imported)
	return nil
}
