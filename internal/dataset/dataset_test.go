package dataset

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		header  []string
		missing []string
	}{
		{"both present", []string{"Region", "Sales"}, nil},
		{"extra columns pass through", []string{"Date", "Region", "Product", "Sales"}, nil},
		{"missing sales", []string{"Region", "Revenue"}, []string{"Sales"}},
		{"missing region", []string{"Area", "Sales"}, []string{"Region"}},
		{"missing both", []string{"Area", "Revenue"}, []string{"Region", "Sales"}},
		{"match is case sensitive", []string{"region", "sales"}, []string{"Region", "Sales"}},
		{"header whitespace trimmed", []string{" Region ", "Sales"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(&Dataset{Header: tc.header})
			if tc.missing == nil {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}
			var mce *MissingColumnsError
			if !errors.As(err, &mce) {
				t.Fatalf("expected MissingColumnsError, got %v", err)
			}
			if got := strings.Join(mce.Columns, ","); got != strings.Join(tc.missing, ",") {
				t.Fatalf("missing columns = %q, want %q", got, strings.Join(tc.missing, ","))
			}
		})
	}
}

func TestValidateEmptyDatasetStillChecksColumns(t *testing.T) {
	// Zero rows is not a validation concern; the header decides.
	d := &Dataset{Header: []string{"Region", "Sales"}}
	if err := Validate(d); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestCellShortRow(t *testing.T) {
	d := &Dataset{
		Header: []string{"Region", "Sales"},
		Rows:   [][]string{{"North"}},
	}
	if got := d.Cell(0, 1); got != "" {
		t.Fatalf("Cell = %q, want empty", got)
	}
}
