package sqlbuilder

import (
	"fmt"
	"strings"

	"jobboard/internal/apperrors"
)

// clauseBuilder accumulates predicate fragments and their bound values
// in lockstep. bind appends the value first, then references the slot
// it just took, so the placeholder index can never drift from the
// values slice.
type clauseBuilder struct {
	frags  []string
	values []any
}

// bind adds a predicate that consumes one value slot. The format must
// contain exactly one %d for the placeholder index.
func (b *clauseBuilder) bind(format string, value any) {
	b.values = append(b.values, value)
	b.frags = append(b.frags, fmt.Sprintf(format, len(b.values)))
}

// literal adds a predicate with no placeholder and no value slot.
func (b *clauseBuilder) literal(frag string) {
	b.frags = append(b.frags, frag)
}

func (b *clauseBuilder) clause() Clause {
	return Clause{Text: strings.Join(b.frags, " AND "), Values: b.values}
}

// CompanyFilter holds the optional search criteria for companies.
// Pointer fields distinguish "absent" from an explicit zero: a supplied
// minEmployees=0 produces a predicate.
type CompanyFilter struct {
	Name         *string
	MinEmployees *int
	MaxEmployees *int
}

// Build composes the WHERE fragment for a company search. With no
// criteria set it returns an empty fragment; compose it with WhereSQL
// so the skeleton query never ends in a dangling WHERE.
func (f CompanyFilter) Build() (Clause, error) {
	if f.MinEmployees != nil && f.MaxEmployees != nil && *f.MinEmployees > *f.MaxEmployees {
		return Clause{}, apperrors.Validationf("minEmployees cannot be greater than maxEmployees")
	}

	var b clauseBuilder
	if f.Name != nil {
		b.bind("name ILIKE $%d", "%"+*f.Name+"%")
	}
	if f.MinEmployees != nil {
		b.bind("num_employees >= $%d", *f.MinEmployees)
	}
	if f.MaxEmployees != nil {
		b.bind("num_employees <= $%d", *f.MaxEmployees)
	}
	return b.clause(), nil
}

// JobFilter holds the optional search criteria for jobs.
type JobFilter struct {
	Title     *string
	MinSalary *int
	HasEquity *bool
}

// Build composes the WHERE fragment for a job search.
//
// minSalary is a strict lower bound (salary > $N), unlike the company
// employee bounds which are inclusive. hasEquity=true adds the literal
// predicate `equity > 0` and consumes no value slot; false or absent
// adds no equity predicate at all.
func (f JobFilter) Build() (Clause, error) {
	var b clauseBuilder
	if f.Title != nil {
		b.bind("title ILIKE $%d", "%"+*f.Title+"%")
	}
	if f.MinSalary != nil {
		b.bind("salary > $%d", *f.MinSalary)
	}
	if f.HasEquity != nil && *f.HasEquity {
		b.literal("equity > 0")
	}
	return b.clause(), nil
}

// WhereSQL renders a filter clause as a WHERE section ready to splice
// into a skeleton SELECT. Zero criteria yield the empty string.
func WhereSQL(c Clause) string {
	if c.Text == "" {
		return ""
	}
	return " WHERE " + c.Text
}
