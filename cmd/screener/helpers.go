package main

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/llm"
	"github.com/jonathan/resume-screener/internal/types"
)

// loadJob reads and validates a job requirements JSON file.
func loadJob(path string) (*types.JobRequirements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	var job types.JobRequirements
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job JSON: %w", err)
	}
	if job.Skills == nil {
		job.Skills = []string{}
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

// loadDocument reads a resume file into a RawDocument.
func loadDocument(path string) (types.RawDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.RawDocument{}, fmt.Errorf("failed to read resume file: %w", err)
	}
	return types.RawDocument{Filename: path, Data: data}, nil
}

// newLogger builds a stderr logger; verbose enables debug-level console output.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return cfg.Build()
}

// llmConfigFor resolves the provider/model pair into an llm.Config.
func llmConfigFor(provider, model string) *llm.Config {
	var cfg *llm.Config
	switch provider {
	case "gemini":
		cfg = llm.DefaultGeminiConfig()
	default:
		cfg = llm.DefaultGroqConfig()
	}
	if model != "" {
		cfg = cfg.WithModel(model)
	}
	return cfg
}

// resolveAPIKey prefers the explicit flag value over the provider's
// conventional environment variable.
func resolveAPIKey(flagValue, provider string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if key := config.APIKeyFromEnv(provider); key != "" {
		return key, nil
	}
	return "", fmt.Errorf("API key is required (set GROQ_API_KEY / GEMINI_API_KEY or use --api-key)")
}

// writeJSON writes v as indented JSON to path, or stdout when path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
