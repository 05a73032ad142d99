// Package sqlbuilder assembles parameterized SQL fragments for the
// entity services. Every builder keeps one invariant: placeholder $N in
// the fragment text always lines up with Values[N-1], because fragments
// and values are appended in the same step. Values never appear in the
// SQL text itself; they travel only through the positional args slice.
package sqlbuilder

import (
	"fmt"
	"strings"

	"jobboard/internal/apperrors"
)

// Clause is a SQL fragment using positional $N placeholders plus the
// values bound to them, aligned by position (1-based).
type Clause struct {
	Text   string
	Values []any
}

// Field is one column to write in a partial update.
type Field struct {
	Name  string
	Value any
}

// UpdatePayload is the ordered set of fields to write. A slice rather
// than a map: placeholder order follows payload order, and callers
// build it in a fixed order so the generated SQL is deterministic.
type UpdatePayload []Field

// ErrNoUpdateData is returned when a partial update carries no fields.
var ErrNoUpdateData = apperrors.Validationf("no data supplied")

// BuildPartialUpdate turns a payload into a SET clause body plus its
// bound values, e.g.
//
//	{firstName: "Aliya", age: 32}  with  {firstName: "first_name"}
//
// becomes `"first_name"=$1, "age"=$2` and ["Aliya", 32]. Column names
// are resolved through colMap, falling back to the field name verbatim,
// and are always emitted as double-quoted identifiers so a hostile
// field name can never escape the identifier position.
func BuildPartialUpdate(data UpdatePayload, colMap map[string]string) (Clause, error) {
	if len(data) == 0 {
		return Clause{}, ErrNoUpdateData
	}

	cols := make([]string, 0, len(data))
	values := make([]any, 0, len(data))
	for _, f := range data {
		col, ok := colMap[f.Name]
		if !ok {
			col = f.Name
		}
		values = append(values, f.Value)
		cols = append(cols, fmt.Sprintf("%s=$%d", quoteIdent(col), len(values)))
	}

	return Clause{Text: strings.Join(cols, ", "), Values: values}, nil
}

// quoteIdent wraps a column name in double quotes, doubling any
// embedded quote per the SQL identifier escaping rules.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
