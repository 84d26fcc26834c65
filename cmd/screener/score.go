package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/scoring"
	"github.com/jonathan/resume-screener/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a previously extracted candidate profile",
	Long:  "Compute the weighted match score for a candidate profile JSON against job requirements, without re-running extraction or analysis.",
	RunE:  runScore,
}

var (
	scoreProfileFile string
	scoreJobFile     string
	scoreOutputFile  string
	scoreVerbose     bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreProfileFile, "profile", "p", "", "Path to candidate profile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job requirements JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted score breakdown")

	_ = scoreCmd.MarkFlagRequired("profile")
	_ = scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	job, err := loadJob(scoreJobFile)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(scoreProfileFile)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}
	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	logger, err := newLogger(scoreVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	breakdown := scoring.New(logger).Score(&profile, job)

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintBreakdown(breakdown)
	}

	return writeJSON(scoreOutputFile, breakdown)
}
