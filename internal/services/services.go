// Package services is the entity access layer: each service owns the
// SQL for one entity, composing skeleton statements with the fragments
// produced by the sqlbuilder package and executing them as single
// parameterized statements on the shared *sql.DB.
package services

import "jobboard/internal/apperrors"

// emptyAsNotFound is the search-result policy: a filtered list that
// matches nothing is surfaced as a not-found error rather than an empty
// success. Unusual for a list endpoint, but part of the public API
// contract. Swapping to empty-array semantics means changing this one
// function.
func emptyAsNotFound(n int, what string) error {
	if n == 0 {
		return apperrors.NotFoundf("no %s matched the given criteria", what)
	}
	return nil
}
