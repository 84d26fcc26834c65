// Package pipeline provides the high-level orchestration for one screening
// run: document -> extracted text -> candidate profile -> score breakdown.
// Stages execute strictly in order; runs hold no shared state and are safe
// to execute concurrently across unrelated submissions.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/types"
)

// TextExtractor converts a raw document into cleaned plain text.
type TextExtractor interface {
	Extract(doc types.RawDocument) (string, error)
}

// ProfileAnalyzer produces a candidate profile from resume text.
type ProfileAnalyzer interface {
	Analyze(ctx context.Context, resumeText string, job *types.JobRequirements) (*types.CandidateProfile, error)
}

// Scorer computes the fit breakdown for a profile.
type Scorer interface {
	Score(profile *types.CandidateProfile, job *types.JobRequirements) types.ScoreBreakdown
}

// Result holds everything produced by one pipeline run.
type Result struct {
	RunID     string                  `json:"run_id"`
	Text      string                  `json:"-"`
	Profile   *types.CandidateProfile `json:"profile"`
	Breakdown types.ScoreBreakdown    `json:"score"`
}

// Runner wires the three stages together.
type Runner struct {
	extractor TextExtractor
	analyzer  ProfileAnalyzer
	scorer    Scorer
	logger    *zap.Logger
}

// NewRunner creates a pipeline runner.
func NewRunner(extractor TextExtractor, analyzer ProfileAnalyzer, scorer Scorer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		extractor: extractor,
		analyzer:  analyzer,
		scorer:    scorer,
		logger:    logger,
	}
}

// Run executes one screening run. Extraction failures abort the run;
// analysis failures abort only when the analyzer operates in strict mode;
// scoring never fails. The caller bounds the completion call through ctx.
func (r *Runner) Run(ctx context.Context, doc types.RawDocument, job *types.JobRequirements) (*Result, error) {
	runID := uuid.New().String()
	logger := r.logger.With(zap.String("run_id", runID), zap.String("file", doc.Filename))

	text, err := r.extractor.Extract(doc)
	if err != nil {
		logger.Error("text extraction failed", zap.Error(err))
		return nil, err
	}
	logger.Debug("text extracted", zap.Int("length", len(text)))

	profile, err := r.analyzer.Analyze(ctx, text, job)
	if err != nil {
		logger.Error("resume analysis failed", zap.Error(err))
		return nil, err
	}

	breakdown := r.scorer.Score(profile, job)
	logger.Info("resume analyzed",
		zap.Float64("match_score", breakdown.OverallScore),
		zap.String("category", breakdown.Category),
	)

	return &Result{
		RunID:     runID,
		Text:      text,
		Profile:   profile,
		Breakdown: breakdown,
	}, nil
}
