package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrUnauthenticated will throw if no valid identity is attached to the request
	ErrUnauthenticated = errors.New("authentication credentials were not provided")
	// ErrForbidden will throw if the requester is not allowed to touch the resource
	ErrForbidden = errors.New("you do not have permission to perform this action")
	// ErrInvalidOperation will throw if the action makes no sense for the requester, e.g. following oneself
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInvalidCredentials will throw if login fails
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrCacheMiss is used between the cache and repository layers only
	ErrCacheMiss = errors.New("cache miss")
)

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrBadParamInput) match validation failures.
func (e *ValidationError) Is(target error) bool {
	return target == ErrBadParamInput
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
