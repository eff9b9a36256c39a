// Package commentary turns an aggregated sales summary into natural-language
// commentary via an AI runtime. Commentary is advisory: every provider
// failure degrades to a sentinel text value instead of an error, so the
// dashboard and rule-based insight stay usable without it.
package commentary

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/accucheck/accucheck-cli/internal/ai"
	"github.com/accucheck/accucheck-cli/internal/analysis"
)

// DisabledSentinel is returned by every call when no credential is
// configured. No network access is attempted in that mode.
const DisabledSentinel = "commentary unavailable — no credential configured"

const summaryInstructions = `You are a business analyst. Based on the sales data above, write a short analysis covering:
1. Which region is the most dominant
2. Which region needs attention
3. A brief strategic insight for management`

// Commentator formats summaries and transcripts into completion requests.
// It is stateless across calls beyond the configuration captured here; a nil
// runtime puts it in disabled mode.
type Commentator struct {
	rt          ai.Runtime
	model       string
	temperature float64
	maxTokens   int
	log         *zap.Logger
}

// Option customizes a Commentator.
type Option func(*Commentator)

// WithMaxTokens caps the completion length.
func WithMaxTokens(n int) Option { return func(c *Commentator) { c.maxTokens = n } }

// WithLogger attaches a logger for provider failures.
func WithLogger(log *zap.Logger) Option { return func(c *Commentator) { c.log = log } }

// New creates a Commentator. Pass a nil runtime for disabled mode.
func New(rt ai.Runtime, model string, temperature float64, opts ...Option) *Commentator {
	c := &Commentator{rt: rt, model: model, temperature: temperature, log: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Enabled reports whether a runtime is configured.
func (c *Commentator) Enabled() bool { return c.rt != nil }

// Summarize produces commentary for an aggregated summary. The return value
// is always displayable text: the completion on success, a sentinel on
// disabled mode or provider failure.
func (c *Commentator) Summarize(ctx context.Context, s *analysis.Summary) string {
	var b strings.Builder
	b.WriteString("Here is the sales data per region:\n")
	b.WriteString(s.Table())
	b.WriteString("\n")
	b.WriteString(summaryInstructions)
	return c.complete(ctx, []ai.Message{{Role: "user", Content: b.String()}})
}

// Continue produces the next assistant reply given the full conversation
// transcript, under the same degradation rules as Summarize.
func (c *Commentator) Continue(ctx context.Context, transcript []ai.Message) string {
	return c.complete(ctx, transcript)
}

func (c *Commentator) complete(ctx context.Context, msgs []ai.Message) string {
	if c.rt == nil {
		return DisabledSentinel
	}
	resp, err := c.rt.Generate(ctx, ai.GenerateRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		c.log.Warn("commentary call failed", zap.Error(err))
		return fmt.Sprintf("commentary failed: %v", err)
	}
	return resp.Text()
}
