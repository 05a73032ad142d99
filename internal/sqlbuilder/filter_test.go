package sqlbuilder

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"jobboard/internal/apperrors"
)

func ptr[T any](v T) *T { return &v }

func TestCompanyFilter_MinGreaterThanMax(t *testing.T) {
	f := CompanyFilter{MinEmployees: ptr(10), MaxEmployees: ptr(5)}
	_, err := f.Build()
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("got %v, want validation error", err)
	}
}

func TestCompanyFilter_MinEqualMax(t *testing.T) {
	f := CompanyFilter{MinEmployees: ptr(5), MaxEmployees: ptr(5)}
	clause, err := f.Build()
	if err != nil {
		t.Fatalf("equal bounds must be allowed: %v", err)
	}
	want := "num_employees >= $1 AND num_employees <= $2"
	if clause.Text != want {
		t.Errorf("got %q, want %q", clause.Text, want)
	}
}

func TestCompanyFilter_NameOnly(t *testing.T) {
	clause, err := CompanyFilter{Name: ptr("tech")}.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause.Text != "name ILIKE $1" {
		t.Errorf("got %q, want %q", clause.Text, "name ILIKE $1")
	}
	// Wildcards belong in the bound value, never in the SQL text.
	if !reflect.DeepEqual(clause.Values, []any{"%tech%"}) {
		t.Errorf("got values %v, want [%%tech%%]", clause.Values)
	}
}

func TestCompanyFilter_AllCriteria(t *testing.T) {
	f := CompanyFilter{Name: ptr("net"), MinEmployees: ptr(2), MaxEmployees: ptr(900)}
	clause, err := f.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "name ILIKE $1 AND num_employees >= $2 AND num_employees <= $3"
	if clause.Text != want {
		t.Errorf("got %q, want %q", clause.Text, want)
	}
	if !reflect.DeepEqual(clause.Values, []any{"%net%", 2, 900}) {
		t.Errorf("got values %v", clause.Values)
	}
}

// An explicit zero is present, not absent. The JS original dropped
// falsy values; here presence is structural (pointer set) so
// minEmployees=0 filters.
func TestCompanyFilter_ZeroIsPresent(t *testing.T) {
	clause, err := CompanyFilter{MinEmployees: ptr(0)}.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause.Text != "num_employees >= $1" {
		t.Errorf("got %q", clause.Text)
	}
	if !reflect.DeepEqual(clause.Values, []any{0}) {
		t.Errorf("got values %v, want [0]", clause.Values)
	}
}

func TestCompanyFilter_Empty(t *testing.T) {
	clause, err := CompanyFilter{}.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause.Text != "" || len(clause.Values) != 0 {
		t.Fatalf("empty filter must build an empty clause, got %+v", clause)
	}

	query := "SELECT handle FROM companies" + WhereSQL(clause) + " ORDER BY name"
	if strings.Contains(query, "WHERE") {
		t.Errorf("zero-criteria query must not contain WHERE: %q", query)
	}
}

func TestJobFilter_MinSalaryStrict(t *testing.T) {
	clause, err := JobFilter{MinSalary: ptr(40000)}.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Strict inequality, unlike the inclusive employee bounds.
	if clause.Text != "salary > $1" {
		t.Errorf("got %q, want %q", clause.Text, "salary > $1")
	}
	if !reflect.DeepEqual(clause.Values, []any{40000}) {
		t.Errorf("got values %v", clause.Values)
	}
}

func TestJobFilter_HasEquityTrue(t *testing.T) {
	clause, err := JobFilter{HasEquity: ptr(true)}.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause.Text != "equity > 0" {
		t.Errorf("got %q, want %q", clause.Text, "equity > 0")
	}
	if len(clause.Values) != 0 {
		t.Errorf("equity predicate must not consume a value slot, got %v", clause.Values)
	}
}

func TestJobFilter_HasEquityFalse(t *testing.T) {
	clause, err := JobFilter{HasEquity: ptr(false)}.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause.Text != "" {
		t.Errorf("hasEquity=false must add no predicate, got %q", clause.Text)
	}
}

func TestJobFilter_AllCriteria(t *testing.T) {
	f := JobFilter{Title: ptr("eng"), MinSalary: ptr(50000), HasEquity: ptr(true)}
	clause, err := f.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "title ILIKE $1 AND salary > $2 AND equity > 0"
	if clause.Text != want {
		t.Errorf("got %q, want %q", clause.Text, want)
	}
	if !reflect.DeepEqual(clause.Values, []any{"%eng%", 50000}) {
		t.Errorf("got values %v", clause.Values)
	}
}

func TestFilters_Idempotent(t *testing.T) {
	f := JobFilter{Title: ptr("dev"), HasEquity: ptr(true)}
	first, _ := f.Build()
	second, _ := f.Build()
	if first.Text != second.Text || !reflect.DeepEqual(first.Values, second.Values) {
		t.Errorf("filter build is not a pure function: %+v vs %+v", first, second)
	}
}

func TestWhereSQL(t *testing.T) {
	if got := WhereSQL(Clause{}); got != "" {
		t.Errorf("empty clause: got %q, want empty", got)
	}
	if got := WhereSQL(Clause{Text: "name ILIKE $1"}); got != " WHERE name ILIKE $1" {
		t.Errorf("got %q", got)
	}
}
