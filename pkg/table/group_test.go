package table

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestGroupBy(t *testing.T) {
	tbl := mustNew(t,
		Column{Name: "k", Values: []any{"b", "a", "b"}},
		Column{Name: "n", Values: []any{1, 2, 3}},
	)

	groups, err := tbl.GroupBy("k")
	if err != nil {
		t.Fatal(err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	// first-seen key order
	if groups[0].Key[0] != "b" || groups[1].Key[0] != "a" {
		t.Errorf("group keys = %v, %v; want b, a", groups[0].Key, groups[1].Key)
	}
	if groups[0].Table.Len() != 2 {
		t.Errorf("group b has %d rows, want 2", groups[0].Table.Len())
	}

	// group tables are copies
	cells(t, groups[0].Table, "n")[0] = 99
	if v, _ := tbl.Value(0, "n"); v != 1 {
		t.Errorf("mutating a group leaked into the source: n[0] = %v", v)
	}

	if _, err := tbl.GroupBy(); err == nil {
		t.Error("expected error for no key columns")
	}
	if _, err := tbl.GroupBy("missing"); err == nil {
		t.Error("expected error for unknown key column")
	}
}

func TestAggregate(t *testing.T) {
	tbl := mustNew(t,
		Column{Name: "k", Values: []any{"a", "b", "a"}},
		Column{Name: "who", Values: []any{"zoe", "amy", "bob"}},
		Column{Name: "amt", Values: []any{decimal.NewFromInt(1), decimal.NewFromInt(2), decimal.NewFromInt(3)}},
	)

	agg, err := tbl.Aggregate([]string{"k"}, map[string]Agg{
		"who": MinValue,
		"amt": SumDecimal,
	})
	if err != nil {
		t.Fatal(err)
	}

	if agg.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", agg.Len())
	}
	got := agg.Columns()
	want := []string{"k", "who", "amt"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Columns() = %v, want %v", got, want)
		}
	}

	if v, _ := agg.Value(0, "who"); v != "bob" {
		t.Errorf("who[a] = %v, want bob", v)
	}
	if v, _ := agg.Value(0, "amt"); !v.(decimal.Decimal).Equal(decimal.NewFromInt(4)) {
		t.Errorf("amt[a] = %v, want 4", v)
	}
	if v, _ := agg.Value(1, "amt"); !v.(decimal.Decimal).Equal(decimal.NewFromInt(2)) {
		t.Errorf("amt[b] = %v, want 2", v)
	}

	if _, err := tbl.Aggregate([]string{"k"}, map[string]Agg{"missing": MinValue}); err == nil {
		t.Error("expected error for unknown aggregated column")
	}
}

func TestMinValue_SkipsNil(t *testing.T) {
	v, err := MinValue([]any{nil, "beta", "alpha", nil})
	if err != nil {
		t.Fatal(err)
	}
	if v != "alpha" {
		t.Errorf("MinValue = %v, want alpha", v)
	}

	v, err = MinValue([]any{nil, nil})
	if err != nil {
		t.Fatal(err)
	}
	if v != nil {
		t.Errorf("MinValue over nils = %v, want nil", v)
	}
}

func TestFirstValue(t *testing.T) {
	v, err := FirstValue([]any{3, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if v != 3 {
		t.Errorf("FirstValue = %v, want 3", v)
	}
}

func TestSumDecimal(t *testing.T) {
	v, err := SumDecimal([]any{"1.5", nil, decimal.NewFromInt(2), 3})
	if err != nil {
		t.Fatal(err)
	}
	if !v.(decimal.Decimal).Equal(decimal.RequireFromString("6.5")) {
		t.Errorf("SumDecimal = %v, want 6.5", v)
	}

	if _, err := SumDecimal([]any{"not-a-number"}); err == nil {
		t.Error("expected error for unparseable value")
	}
}

func TestAsDecimal(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    string
		wantErr string
	}{
		{"decimal", decimal.RequireFromString("1.25"), "1.25", ""},
		{"string", " 2.5 ", "2.5", ""},
		{"int", 7, "7", ""},
		{"float", 0.5, "0.5", ""},
		{"garbage", "pal", "", "parsing decimal"},
		{"unsupported", struct{}{}, "", "cannot coerce"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := AsDecimal(tt.in)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if d.String() != tt.want {
				t.Errorf("AsDecimal(%v) = %s, want %s", tt.in, d, tt.want)
			}
		})
	}
}
