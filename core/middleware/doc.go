// Package middleware groups the HTTP middleware used by the server:
// rayid for per-request trace IDs and auth for API key protection.
package middleware
