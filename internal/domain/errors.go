package domain

import "errors"

// ErrNotFound is returned by repo functions when the requested resource does
// not exist in the database. Handlers map this to HTTP 404.
//
// Note: the in-memory schedule store does NOT return this error — its
// contract is silent no-ops on unknown ids. Only the layers around it
// (persistence, HTTP) deal in ErrNotFound.
var ErrNotFound = errors.New("not found")
