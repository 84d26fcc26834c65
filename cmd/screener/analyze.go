package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/analysis"
	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/scoring"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full screening pipeline on one resume",
	Long:  "Extract text from a resume document, analyze the candidate against job requirements via the completion service, and compute the match score.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeJobFile    string
	analyzeConfigFile string
	analyzeOutputFile string
	analyzeAPIKey     string
	analyzeProvider   string
	analyzeModel      string
	analyzeTimeout    int
	analyzeDegraded   bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume file (.pdf or .docx) (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job requirements JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Completion service API key (overrides environment)")
	analyzeCmd.Flags().StringVar(&analyzeProvider, "provider", "", "Completion provider: groq or gemini (default: groq)")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "Model name override")
	analyzeCmd.Flags().IntVar(&analyzeTimeout, "timeout", 0, "Completion call timeout in seconds")
	analyzeCmd.Flags().BoolVar(&analyzeDegraded, "degraded", false, "Substitute a fallback profile when the completion service is unavailable")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress information")

	_ = analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}
	if cfg.Job == "" {
		return fmt.Errorf("job requirements are required (use --job or the config file)")
	}

	job, err := loadJob(cfg.Job)
	if err != nil {
		return err
	}
	doc, err := loadDocument(analyzeResumeFile)
	if err != nil {
		return err
	}

	apiKey, err := resolveAPIKey(cfg.APIKey, cfg.Provider)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llmConfigFor(cfg.Provider, cfg.Model), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer func() { _ = client.Close() }()

	mode := analysis.FailStrict
	if cfg.Degraded {
		mode = analysis.FailDegraded
	}

	runner := pipeline.NewRunner(
		extraction.New(),
		analysis.New(client, logger, mode),
		scoring.New(logger),
		logger,
	)

	runCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
	defer cancel()

	result, err := runner.Run(runCtx, doc, job)
	if err != nil {
		return err
	}

	// Warn-only schema validation: a nonconforming profile is still written,
	// since availability wins over strictness here.
	if profileJSON, err := json.Marshal(result.Profile); err == nil {
		if err := schemas.ValidateProfile(profileJSON); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: profile failed schema validation: %v\n", err)
		}
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintExtraction(doc.Filename, result.Text)
		printer.PrintProfile(result.Profile)
		printer.PrintBreakdown(result.Breakdown)
	}

	return writeJSON(analyzeOutputFile, result)
}

// effectiveConfig merges CLI flags over the optional config file.
func effectiveConfig() (config.Config, error) {
	flags := config.Config{
		Job:            analyzeJobFile,
		Provider:       analyzeProvider,
		Model:          analyzeModel,
		APIKey:         analyzeAPIKey,
		TimeoutSeconds: analyzeTimeout,
		Degraded:       analyzeDegraded,
		Verbose:        analyzeVerbose,
	}

	if analyzeConfigFile == "" {
		merged := flags.MergeWithDefaults(config.Config{})
		return merged, merged.Validate()
	}

	fileCfg, err := config.Load(analyzeConfigFile)
	if err != nil {
		return config.Config{}, err
	}

	merged := flags.MergeWithDefaults(*fileCfg)
	// Bool flags always win over the file only when set; fall back to the
	// file for the ones left at their zero value.
	merged.Degraded = analyzeDegraded || fileCfg.Degraded
	merged.Verbose = analyzeVerbose || fileCfg.Verbose

	return merged, merged.Validate()
}
