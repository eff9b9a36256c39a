package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/accucheck/accucheck-cli/internal/dataset"
)

// RegionTotal is one aggregated row: a region and its summed sales.
type RegionTotal struct {
	Region string  `json:"region"`
	Total  float64 `json:"total"`
}

// Summary is the aggregated table, sorted by total descending. Regions with
// equal totals keep their first-seen order.
type Summary struct {
	Rows []RegionTotal `json:"rows"`
	// SkippedCells counts sales cells that could not be parsed as numbers
	// and therefore contributed nothing to any total.
	SkippedCells int `json:"skipped_cells,omitempty"`
}

// EmptyDatasetError signals a dataset with zero data rows. Callers decide
// whether that is fatal or merely nothing to show.
type EmptyDatasetError struct {
	Name string
}

func (e *EmptyDatasetError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("dataset %q has no rows", e.Name)
	}
	return "dataset has no rows"
}

// Aggregate groups rows by region and sums sales per group. The input dataset
// is validated again defensively and never mutated. Blank region cells bucket
// under dataset.NoneBucket.
func Aggregate(d *dataset.Dataset) (*Summary, error) {
	if err := dataset.Validate(d); err != nil {
		return nil, err
	}
	if d.Len() == 0 {
		return nil, &EmptyDatasetError{Name: d.Name}
	}

	regionIdx := d.ColumnIndex(dataset.RegionColumn)
	salesIdx := d.ColumnIndex(dataset.SalesColumn)

	totals := map[string]float64{}
	var order []string
	skipped := 0
	for i := 0; i < d.Len(); i++ {
		region := strings.TrimSpace(d.Cell(i, regionIdx))
		if region == "" {
			region = dataset.NoneBucket
		}
		if _, seen := totals[region]; !seen {
			order = append(order, region)
			totals[region] = 0
		}
		v, ok := dataset.ParseNumber(d.Cell(i, salesIdx))
		if !ok {
			skipped++
			continue
		}
		totals[region] += v
	}

	s := &Summary{SkippedCells: skipped}
	for _, region := range order {
		s.Rows = append(s.Rows, RegionTotal{Region: region, Total: totals[region]})
	}
	sort.SliceStable(s.Rows, func(i, j int) bool {
		return s.Rows[i].Total > s.Rows[j].Total
	})
	return s, nil
}

// Total returns the sum of all aggregated totals.
func (s *Summary) Total() float64 {
	var t float64
	for _, r := range s.Rows {
		t += r.Total
	}
	return t
}

// Table renders the summary as plain tabular text, one region per line in
// sort order. This is the exact shape fed to the commentary prompt and to
// chart consumers.
func (s *Summary) Table() string {
	width := len("Region")
	for _, r := range s.Rows {
		if len(r.Region) > width {
			width = len(r.Region)
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %s\n", width, "Region", "Total_Sales")
	for _, r := range s.Rows {
		fmt.Fprintf(&b, "%-*s  %s\n", width, r.Region, strconv.FormatFloat(r.Total, 'f', -1, 64))
	}
	return b.String()
}
