// Package middleware provides HTTP middleware shared by the API server.
package middleware

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// requestIDKey is the context key for storing the request ID.
const requestIDKey ContextKey = "requestID"

// RequestIDHeader carries the request ID on requests and responses
const RequestIDHeader = "X-Request-ID"

// requestIDRule accepts client-supplied IDs of printable ASCII up to 128 bytes
const requestIDRule = "required,printascii,max=128"

var idValidator = validator.New()

// RequestID tags each request with an ID, reusing a client-supplied one that passes
// requestIDRule, and echoes it in the response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if idValidator.Var(id, requestIDRule) != nil {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request ID from the request context, or "" if none was set.
func GetRequestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}
