package middleware

import "errors"

// ErrRetryExhausted marks a failure that persisted through every retry
// attempt. The returned error also wraps the last provider error, so callers
// can unwrap either.
var ErrRetryExhausted = errors.New("retry attempts exhausted")
