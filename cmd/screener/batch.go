package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/analysis"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/pipeline"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Screen every resume in a directory",
	Long:  "Run the full screening pipeline over all PDF and DOCX files in a directory with bounded concurrency. Each resume is scored independently against the same job requirements.",
	RunE:  runBatch,
}

var (
	batchDir         string
	batchJobFile     string
	batchOutputFile  string
	batchAPIKey      string
	batchProvider    string
	batchModel       string
	batchTimeout     int
	batchConcurrency int
	batchVerbose     bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchDir, "dir", "d", "", "Directory containing resume files (required)")
	batchCmd.Flags().StringVarP(&batchJobFile, "job", "j", "", "Path to job requirements JSON file (required)")
	batchCmd.Flags().StringVarP(&batchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Completion service API key (overrides environment)")
	batchCmd.Flags().StringVar(&batchProvider, "provider", "", "Completion provider: groq or gemini (default: groq)")
	batchCmd.Flags().StringVar(&batchModel, "model", "", "Model name override")
	batchCmd.Flags().IntVar(&batchTimeout, "timeout", 0, "Per-resume completion timeout in seconds")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum number of resumes processed in parallel")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print detailed progress information")

	_ = batchCmd.MarkFlagRequired("dir")
	_ = batchCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(batchCmd)
}

// batchEntry is the per-file outcome. Failed files carry an error message
// instead of aborting the whole batch.
type batchEntry struct {
	File   string           `json:"file"`
	Result *pipeline.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func runBatch(_ *cobra.Command, _ []string) error {
	if batchConcurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	job, err := loadJob(batchJobFile)
	if err != nil {
		return err
	}

	files, err := collectResumeFiles(batchDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no resume files (.pdf or .docx) found in %s", batchDir)
	}

	apiKey, err := resolveAPIKey(batchAPIKey, batchProvider)
	if err != nil {
		return err
	}

	logger, err := newLogger(batchVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	client, err := llm.NewClient(ctx, llmConfigFor(batchProvider, batchModel), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create completion client: %w", err)
	}
	defer func() { _ = client.Close() }()

	timeout := time.Duration(batchTimeout) * time.Second
	if batchTimeout <= 0 {
		timeout = defaultBatchTimeout
	}

	// Batch always degrades on upstream failure so one bad completion
	// does not sink the other files.
	runner := pipeline.NewRunner(
		extraction.New(),
		analysis.New(client, logger, analysis.FailDegraded),
		scoring.New(logger),
		logger,
	)

	entries := make([]batchEntry, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			entries[i] = screenOne(gctx, runner, file, job, timeout)
			return nil
		})
	}
	_ = g.Wait()

	return writeJSON(batchOutputFile, entries)
}

const defaultBatchTimeout = 60 * time.Second

func screenOne(ctx context.Context, runner *pipeline.Runner, file string, job *types.JobRequirements, timeout time.Duration) batchEntry {
	doc, err := loadDocument(file)
	if err != nil {
		return batchEntry{File: file, Error: err.Error()}
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := runner.Run(runCtx, doc, job)
	if err != nil {
		return batchEntry{File: file, Error: err.Error()}
	}
	return batchEntry{File: file, Result: result}
}

// collectResumeFiles returns the supported resume files directly inside dir,
// sorted by name (os.ReadDir order).
func collectResumeFiles(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch types.FormatFromFilename(name) {
		case types.FormatPDF, types.FormatDocx:
			files = append(files, filepath.Join(dir, name))
		}
	}
	return files, nil
}
