package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lucasmonteiro/cvmatch/internal/analyzer"
	"github.com/lucasmonteiro/cvmatch/internal/config"
	"github.com/lucasmonteiro/cvmatch/internal/ingestion"
	"github.com/lucasmonteiro/cvmatch/internal/report"
	"github.com/lucasmonteiro/cvmatch/internal/schemas"
	"github.com/lucasmonteiro/cvmatch/internal/types"
)

var (
	analyzeResume     string
	analyzeJobs       []string
	analyzeJobURL     string
	analyzeConfigPath string
	analyzeJSON       bool
	analyzeVerbose    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a résumé against one or more job postings",
	Long: `Analyze a structured résumé (JSON) against job-posting text from local
files or a job board URL, and print a compatibility report per posting.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResume, "resume", "", "Path to résumé JSON file")
	analyzeCmd.Flags().StringArrayVar(&analyzeJobs, "job", nil, "Path to job posting text file (repeatable)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the raw analysis as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeVerbose, "verbose", false, "Print detailed debug information")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:  analyzeResume,
		JobURL:  analyzeJobURL,
		Verbose: analyzeVerbose,
	}
	if len(analyzeJobs) == 1 {
		cfg.Job = analyzeJobs[0]
	}

	if analyzeConfigPath != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	jobs := analyzeJobs
	if len(jobs) == 0 && cfg.Job != "" {
		jobs = []string{cfg.Job}
	}
	if len(jobs) == 0 && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}
	if len(jobs) > 0 && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive")
	}

	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.JobURL != "" {
		jobText, _, err := ingestion.IngestFromURL(ctx, cfg.JobURL, cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to ingest job posting: %w", err)
		}
		return printAnalysis(cfg.JobURL, analyzer.Analyze(resume, jobText))
	}

	// Independent analyses share no state, so multiple job files are scored
	// concurrently.
	results := make([]*types.JobAnalysis, len(jobs))
	g, _ := errgroup.WithContext(ctx)
	for i, jobPath := range jobs {
		i, jobPath := i, jobPath
		g.Go(func() error {
			jobText, _, err := ingestion.IngestFromFile(jobPath)
			if err != nil {
				return fmt.Errorf("failed to ingest %s: %w", jobPath, err)
			}
			results[i] = analyzer.Analyze(resume, jobText)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, jobPath := range jobs {
		if err := printAnalysis(jobPath, results[i]); err != nil {
			return err
		}
	}
	return nil
}

// loadResume validates a résumé JSON file against the schema and decodes it.
func loadResume(path string) (*types.ResumeRecord, error) {
	if schemaPath := schemas.ResolveSchemaPath(schemas.ResumeSchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, fmt.Errorf("resume file is invalid: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}

	var resume types.ResumeRecord
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	if err := resume.Validate(); err != nil {
		return nil, fmt.Errorf("resume is invalid: %w", err)
	}

	return &resume, nil
}

func printAnalysis(source string, analysis *types.JobAnalysis) error {
	if analyzeJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(analysis)
	}

	fmt.Printf("\n%s\n\n", source)
	report.NewPrinter(os.Stdout).PrintAnalysis(analysis)
	return nil
}
