package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	actorIDKey   contextKey = "actorID"
	roleKey      contextKey = "role"
	requestIDKey contextKey = "requestID"
)

// DemoActor attributes mutations performed without an authenticated
// session, mirroring the dashboard's demo mode.
const DemoActor = "demo"

// ActorFrom retrieves the acting user's ID from the request context,
// falling back to the demo actor when no one is authenticated.
func ActorFrom(r *http.Request) string {
	if v, ok := r.Context().Value(actorIDKey).(string); ok && v != "" {
		return v
	}
	return DemoActor
}

// RoleFrom retrieves the acting user's role from the request context.
func RoleFrom(r *http.Request) string {
	if v, ok := r.Context().Value(roleKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithActor returns a new context carrying the actor ID and role.
func ContextWithActor(ctx context.Context, actorID, role string) context.Context {
	ctx = context.WithValue(ctx, actorIDKey, actorID)
	return context.WithValue(ctx, roleKey, role)
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithRequestID returns a new context carrying the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}
