package analysis

import (
	"errors"
	"strings"
	"testing"
)

func TestDeriveInsight(t *testing.T) {
	s := &Summary{Rows: []RegionTotal{{"A", 120}, {"B", 40}}}
	ins, err := DeriveInsight(s)
	if err != nil {
		t.Fatalf("DeriveInsight: %v", err)
	}
	if ins.TopRegion != "A" || ins.TopValue != 120 {
		t.Errorf("top = %s/%v", ins.TopRegion, ins.TopValue)
	}
	if ins.BottomRegion != "B" || ins.BottomValue != 40 {
		t.Errorf("bottom = %s/%v", ins.BottomRegion, ins.BottomValue)
	}
	if ins.Gap != 80 {
		t.Errorf("Gap = %v, want 80", ins.Gap)
	}
}

func TestDeriveInsightSingleRegion(t *testing.T) {
	s := &Summary{Rows: []RegionTotal{{"X", 50}}}
	ins, err := DeriveInsight(s)
	if err != nil {
		t.Fatalf("DeriveInsight: %v", err)
	}
	if ins.TopRegion != "X" || ins.BottomRegion != "X" {
		t.Errorf("top/bottom = %s/%s, want X/X", ins.TopRegion, ins.BottomRegion)
	}
	if ins.Gap != 0 {
		t.Errorf("Gap = %v, want 0", ins.Gap)
	}
}

func TestDeriveInsightNoRows(t *testing.T) {
	_, err := DeriveInsight(&Summary{})
	if !errors.Is(err, ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
}

func TestInsightText(t *testing.T) {
	ins := &Insight{TopRegion: "West", TopValue: 1234567, BottomRegion: "East", BottomValue: 890, Gap: 1233677}
	out := ins.Text()
	if !strings.HasPrefix(out, "Key findings:") {
		t.Fatalf("unexpected prefix: %q", out)
	}
	for _, want := range []string{
		"Highest sales region is West with 1,234,567.",
		"Lowest sales region is East with 890.",
		"1,233,677",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{1234567.6, "1,234,568"},
		{-1234.5, "-1,235"},
		{120.4, "120"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
