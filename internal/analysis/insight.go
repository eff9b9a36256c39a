package analysis

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Insight is the deterministic commentary derived from a Summary: the top
// region, the bottom region, and the gap between their totals. With a single
// region top and bottom coincide and the gap is zero.
type Insight struct {
	TopRegion    string  `json:"top_region"`
	TopValue     float64 `json:"top_value"`
	BottomRegion string  `json:"bottom_region"`
	BottomValue  float64 `json:"bottom_value"`
	Gap          float64 `json:"gap"`
}

// ErrNoRows is returned when an insight is requested for an empty summary.
var ErrNoRows = errors.New("summary has no rows")

// DeriveInsight computes the rule-based insight from an aggregated summary.
// Pure: no side effects, no external calls.
func DeriveInsight(s *Summary) (*Insight, error) {
	if s == nil || len(s.Rows) == 0 {
		return nil, ErrNoRows
	}
	top := s.Rows[0]
	bottom := s.Rows[len(s.Rows)-1]
	return &Insight{
		TopRegion:    top.Region,
		TopValue:     top.Total,
		BottomRegion: bottom.Region,
		BottomValue:  bottom.Total,
		Gap:          top.Total - bottom.Total,
	}, nil
}

// Text formats the insight as a short findings block. Values are rendered
// with thousands separators and no decimals.
func (i *Insight) Text() string {
	var b strings.Builder
	b.WriteString("Key findings:\n")
	fmt.Fprintf(&b, "- Highest sales region is %s with %s.\n", i.TopRegion, FormatAmount(i.TopValue))
	fmt.Fprintf(&b, "- Lowest sales region is %s with %s.\n", i.BottomRegion, FormatAmount(i.BottomValue))
	fmt.Fprintf(&b, "- Gap between highest and lowest is %s.\n", FormatAmount(i.Gap))
	return b.String()
}

// FormatAmount renders v rounded to zero decimals with comma grouping.
func FormatAmount(v float64) string {
	neg := v < 0
	s := strconv.FormatFloat(math.Abs(math.Round(v)), 'f', 0, 64)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for p := lead; p < len(s); p += 3 {
		b.WriteByte(',')
		b.WriteString(s[p : p+3])
	}
	return b.String()
}
