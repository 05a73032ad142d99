package sqlbuilder

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"jobboard/internal/apperrors"
)

func TestBuildPartialUpdate_TranslatesColumns(t *testing.T) {
	clause, err := BuildPartialUpdate(
		UpdatePayload{{Name: "firstName", Value: "x"}},
		map[string]string{"firstName": "first_name"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause.Text != `"first_name"=$1` {
		t.Errorf("got %q, want %q", clause.Text, `"first_name"=$1`)
	}
	if !reflect.DeepEqual(clause.Values, []any{"x"}) {
		t.Errorf("got values %v, want [x]", clause.Values)
	}
}

func TestBuildPartialUpdate_UnmappedKeyPassthrough(t *testing.T) {
	clause, err := BuildPartialUpdate(
		UpdatePayload{{Name: "age", Value: 5}},
		map[string]string{"firstName": "first_name"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause.Text != `"age"=$1` {
		t.Errorf("got %q, want %q", clause.Text, `"age"=$1`)
	}
}

func TestBuildPartialUpdate_NilColMap(t *testing.T) {
	clause, err := BuildPartialUpdate(UpdatePayload{{Name: "title", Value: "SRE"}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clause.Text != `"title"=$1` {
		t.Errorf("got %q", clause.Text)
	}
}

func TestBuildPartialUpdate_Empty(t *testing.T) {
	_, err := BuildPartialUpdate(nil, map[string]string{"firstName": "first_name"})
	if !errors.Is(err, ErrNoUpdateData) {
		t.Fatalf("got %v, want ErrNoUpdateData", err)
	}
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("ErrNoUpdateData should be a validation error, got %v", err)
	}
}

func TestBuildPartialUpdate_OrderAndContiguity(t *testing.T) {
	payload := UpdatePayload{
		{Name: "firstName", Value: "Aliya"},
		{Name: "age", Value: 32},
		{Name: "isAdmin", Value: true},
	}
	clause, err := BuildPartialUpdate(payload, map[string]string{
		"firstName": "first_name",
		"isAdmin":   "is_admin",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `"first_name"=$1, "age"=$2, "is_admin"=$3`
	if clause.Text != want {
		t.Errorf("got %q, want %q", clause.Text, want)
	}
	if !reflect.DeepEqual(clause.Values, []any{"Aliya", 32, true}) {
		t.Errorf("values out of order: %v", clause.Values)
	}

	// Every placeholder 1..len appears exactly once.
	for i := 1; i <= len(payload); i++ {
		if got := strings.Count(clause.Text, fmt.Sprintf("$%d", i)); got != 1 {
			t.Errorf("placeholder $%d appears %d times", i, got)
		}
	}
}

func TestBuildPartialUpdate_HostileFieldName(t *testing.T) {
	// An attacker-controlled field name must stay inside the quoted
	// identifier position.
	clause, err := BuildPartialUpdate(
		UpdatePayload{{Name: `name"; DROP TABLE users; --`, Value: 1}},
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `"name""; DROP TABLE users; --"=$1`
	if clause.Text != want {
		t.Errorf("got %q, want %q", clause.Text, want)
	}
}

func TestBuildPartialUpdate_ValueNeverInterpolated(t *testing.T) {
	clause, err := BuildPartialUpdate(
		UpdatePayload{{Name: "bio", Value: "'; DROP TABLE users; --"}},
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(clause.Text, "DROP") {
		t.Errorf("value leaked into SQL text: %q", clause.Text)
	}
}

func TestBuildPartialUpdate_Pure(t *testing.T) {
	payload := UpdatePayload{{Name: "name", Value: "a"}, {Name: "numEmployees", Value: 7}}
	colMap := map[string]string{"numEmployees": "num_employees"}

	first, err1 := BuildPartialUpdate(payload, colMap)
	second, err2 := BuildPartialUpdate(payload, colMap)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first.Text != second.Text || !reflect.DeepEqual(first.Values, second.Values) {
		t.Errorf("builder is not a pure function: %+v vs %+v", first, second)
	}
}
