package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTemp(t, "sales.csv", "Region,Sales,Product\nNorth,100,Widget\nSouth,40,Gadget\n")
	d, err := LoadCSV(path, DefaultOptions())
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if d.Name != "sales.csv" {
		t.Errorf("Name = %q", d.Name)
	}
	if len(d.Header) != 3 || d.Header[0] != "Region" {
		t.Errorf("unexpected header: %v", d.Header)
	}
	if d.Len() != 2 {
		t.Fatalf("Len = %d, want 2", d.Len())
	}
	if d.Cell(1, 1) != "40" {
		t.Errorf("Cell(1,1) = %q", d.Cell(1, 1))
	}
}

func TestLoadCSVSniffsTSV(t *testing.T) {
	path := writeTemp(t, "sales.tsv", "Region\tSales\nEast\t7\n")
	d, err := LoadCSV(path, DefaultOptions())
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if d.Cell(0, 0) != "East" || d.Cell(0, 1) != "7" {
		t.Fatalf("unexpected rows: %v", d.Rows)
	}
}

func TestReadCSVPadsShortRows(t *testing.T) {
	d, err := ReadCSV(strings.NewReader("Region,Sales\nNorth\n"), Options{})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(d.Rows[0]) != 2 || d.Rows[0][1] != "" {
		t.Fatalf("row not padded: %v", d.Rows[0])
	}
}

func TestReadCSVEmptyInput(t *testing.T) {
	d, err := ReadCSV(strings.NewReader(""), Options{})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(d.Header) != 0 || d.Len() != 0 {
		t.Fatalf("expected empty dataset, got %+v", d)
	}
}

func TestReadCSVMaxRows(t *testing.T) {
	d, err := ReadCSV(strings.NewReader("Region,Sales\nA,1\nB,2\nC,3\n"), Options{MaxRows: 2})
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len = %d, want 2", d.Len())
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"100", 100, true},
		{"-12.5", -12.5, true},
		{"1,200", 1200, true},
		{"1,200.50", 1200.5, true},
		{"1.200,50", 1200.5, true},
		{"3,5", 3.5, true},
		{"1 200", 1200, true},
		{"", 0, false},
		{"n/a", 0, false},
		{"Widget", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseNumber(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseNumber(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
