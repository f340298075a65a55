package request

import "errors"

var (
	// ErrInvalidParameterCombination is returned by builders when the
	// identifying parameters (owner, organization, repository) do not name
	// a single endpoint. No request is issued.
	ErrInvalidParameterCombination = errors.New("invalid combination of owner, organization, and repository parameters")

	// ErrConflictingParameters is returned when two mutually exclusive
	// identifiers are both set.
	ErrConflictingParameters = errors.New("conflicting parameters")

	// ErrMalformedResponseBody is returned when a 200 response body is not
	// valid JSON.
	ErrMalformedResponseBody = errors.New("malformed response body")
)
