// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, HTTP response writing,
// and JWT token generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// EmailCtxKey is the key used to store the authenticated user's email in the
// request context. Used together with GetEmailFromContext for type-safe
// retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.EmailCtxKey, "alice@example.com")
var EmailCtxKey = contextKey("email")

// GetEmailFromContext retrieves the authenticated user's email from the
// context.
//
// Returns the email and an ok flag:
//   - ok == true: value is found and has the correct string type
//   - ok == false: value is missing or has an unexpected type
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok
}
