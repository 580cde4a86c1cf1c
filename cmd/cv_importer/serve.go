package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sucreistaken/cv-importer/internal/pipeline"
	"github.com/sucreistaken/cv-importer/internal/segment"
	"github.com/sucreistaken/cv-importer/internal/server"
)

var (
	servePort         int
	serveDatabaseURL  string
	serveHeadingRatio float64
	serveMaxHeading   int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for importing PDF CVs and browsing import history.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "Database URL for import history (overrides DATABASE_URL env var)")
	serveCmd.Flags().Float64Var(&serveHeadingRatio, "heading-font-ratio", 0, "Minimum heading font size as a ratio of body font size")
	serveCmd.Flags().IntVar(&serveMaxHeading, "max-heading-length", 0, "Maximum character length of a heading line")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	databaseURL := serveDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "Warning: DATABASE_URL not set; import history is disabled")
	}

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		Pipeline: pipeline.Options{
			Segment: segment.Options{
				HeadingFontRatio: serveHeadingRatio,
				MaxHeadingLength: serveMaxHeading,
			},
		},
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
