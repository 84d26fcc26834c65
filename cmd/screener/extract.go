package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract cleaned text from a resume document",
	Long:  "Extract plain text from a PDF or DOCX resume and print the normalized result without calling the completion service.",
	RunE:  runExtract,
}

var (
	extractResumeFile string
	extractOutputFile string
	extractVerbose    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractResumeFile, "resume", "r", "", "Path to resume file (.pdf or .docx) (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output text file (default: stdout)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a formatted extraction summary")

	_ = extractCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	doc, err := loadDocument(extractResumeFile)
	if err != nil {
		return err
	}

	text, err := extraction.New().Extract(doc)
	if err != nil {
		return err
	}

	if extractVerbose {
		observability.NewPrinter(os.Stderr).PrintExtraction(doc.Filename, text)
	}

	if extractOutputFile == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(extractOutputFile, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
