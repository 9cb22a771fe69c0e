package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")

	// UnprocessableEntityError is rendered with the http status code 422
	UnprocessableEntityError = errors.New("unprocessable entity")
)

// Saved view related errors
var (
	ErrViewNotFound         = errors.Wrap(NotFoundError, "saved view not found")
	ErrBuiltInViewImmutable = errors.Wrap(BadParameterError, "built-in views cannot be modified or deleted")
	ErrViewNameRequired     = errors.Wrap(BadParameterError, "saved view requires a non-empty name")
)

// Mutation related errors
var (
	ErrConfirmationRequired = errors.Wrap(BadParameterError,
		"financial-impact actions require explicit confirmation")
	ErrNotActionable = errors.Wrap(BadParameterError,
		"entity is not in an actionable status")
	ErrUpstreamRejected = errors.Wrap(UnprocessableEntityError,
		"upstream record store rejected the mutation")
)
