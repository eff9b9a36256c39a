package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/accucheck/accucheck-cli/internal/dataset"
)

func salesDataset(rows [][]string) *dataset.Dataset {
	return &dataset.Dataset{
		Name:   "test.csv",
		Header: []string{"Region", "Sales"},
		Rows:   rows,
	}
}

func TestAggregateGroupsAndSorts(t *testing.T) {
	d := salesDataset([][]string{
		{"A", "100"},
		{"B", "40"},
		{"A", "20"},
	})
	s, err := Aggregate(d)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	want := []RegionTotal{{"A", 120}, {"B", 40}}
	if len(s.Rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(s.Rows), len(want))
	}
	for i, w := range want {
		if s.Rows[i] != w {
			t.Errorf("row %d = %+v, want %+v", i, s.Rows[i], w)
		}
	}
}

func TestAggregateConservesTotal(t *testing.T) {
	d := salesDataset([][]string{
		{"North", "10.5"},
		{"South", "20.25"},
		{"North", "5"},
		{"West", "64.25"},
	})
	s, err := Aggregate(d)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if got := s.Total(); math.Abs(got-100) > 1e-9 {
		t.Fatalf("Total = %v, want 100", got)
	}
}

func TestAggregateTieBreakIsStable(t *testing.T) {
	// Equal totals keep first-appearance order.
	d := salesDataset([][]string{
		{"Zeta", "50"},
		{"Alpha", "50"},
		{"Mid", "75"},
	})
	s, err := Aggregate(d)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	got := []string{s.Rows[0].Region, s.Rows[1].Region, s.Rows[2].Region}
	want := []string{"Mid", "Zeta", "Alpha"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestAggregateEmptyDataset(t *testing.T) {
	s, err := Aggregate(salesDataset(nil))
	if s != nil {
		t.Fatalf("expected nil summary, got %+v", s)
	}
	var empty *EmptyDatasetError
	if !errors.As(err, &empty) {
		t.Fatalf("expected EmptyDatasetError, got %v", err)
	}
	if empty.Name != "test.csv" {
		t.Errorf("Name = %q", empty.Name)
	}
}

func TestAggregateMissingColumns(t *testing.T) {
	d := &dataset.Dataset{
		Name:   "bad.csv",
		Header: []string{"Area", "Revenue"},
		Rows:   [][]string{{"x", "1"}},
	}
	_, err := Aggregate(d)
	var mce *dataset.MissingColumnsError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingColumnsError, got %v", err)
	}
}

func TestAggregateBlankRegionAndBadSales(t *testing.T) {
	d := salesDataset([][]string{
		{"", "30"},
		{"North", "oops"},
		{"North", "10"},
	})
	s, err := Aggregate(d)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if s.SkippedCells != 1 {
		t.Errorf("SkippedCells = %d, want 1", s.SkippedCells)
	}
	if s.Rows[0].Region != dataset.NoneBucket || s.Rows[0].Total != 30 {
		t.Errorf("unexpected first row: %+v", s.Rows[0])
	}
	if s.Rows[1].Region != "North" || s.Rows[1].Total != 10 {
		t.Errorf("unexpected second row: %+v", s.Rows[1])
	}
}

func TestSummaryTable(t *testing.T) {
	s := &Summary{Rows: []RegionTotal{{"North", 120}, {"South", 40.5}}}
	out := s.Table()
	if !strings.Contains(out, "Region") || !strings.Contains(out, "Total_Sales") {
		t.Fatalf("missing header: %q", out)
	}
	if !strings.Contains(out, "North") || !strings.Contains(out, "120") {
		t.Fatalf("missing row: %q", out)
	}
	if !strings.Contains(out, "40.5") {
		t.Fatalf("fractional total dropped: %q", out)
	}
}
