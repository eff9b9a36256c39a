// Package pipeline wires the analysis stages together: validate, aggregate,
// derive the rule-based insight, generate AI commentary, and seed a
// conversation session.
package pipeline

import (
	"context"

	"github.com/accucheck/accucheck-cli/internal/analysis"
	"github.com/accucheck/accucheck-cli/internal/commentary"
	"github.com/accucheck/accucheck-cli/internal/dataset"
	"github.com/accucheck/accucheck-cli/internal/session"
)

// Result carries everything one dataset run produces.
type Result struct {
	Summary    *analysis.Summary
	Insight    *analysis.Insight
	Commentary string
	Session    *session.Session
}

// Run processes one dataset end to end. Validation failures and empty
// datasets stop the run before any downstream stage executes; callers
// distinguish them with errors.As (*dataset.MissingColumnsError is fatal,
// *analysis.EmptyDatasetError is informational). Commentary failures never
// surface as errors.
func Run(ctx context.Context, d *dataset.Dataset, com *commentary.Commentator) (*Result, error) {
	if err := dataset.Validate(d); err != nil {
		return nil, err
	}
	summary, err := analysis.Aggregate(d)
	if err != nil {
		return nil, err
	}
	insight, err := analysis.DeriveInsight(summary)
	if err != nil {
		return nil, err
	}

	text := com.Summarize(ctx, summary)
	sess := session.New(com)
	if err := sess.Seed(text); err != nil {
		return nil, err
	}
	return &Result{
		Summary:    summary,
		Insight:    insight,
		Commentary: text,
		Session:    sess,
	}, nil
}
