package service

import "errors"

// Pipeline error taxonomy. ErrMissingField is the only error surfaced as a
// failing HTTP status; ErrInvalidIngredient travels in a 200 body; every
// upstream problem is swallowed by the fallback generator before it can
// reach a handler.
var (
	// ErrMissingField means the request omitted its core text input.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidIngredient means the input matched the non-food deny-list.
	ErrInvalidIngredient = errors.New("input contains non-food keywords")

	// ErrUpstreamUnavailable covers missing credentials, network failures,
	// non-2xx upstream statuses and empty completions.
	ErrUpstreamUnavailable = errors.New("completion upstream unavailable")
)
