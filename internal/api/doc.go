// Package api implements the low-level HTTP client for the upstream
// disposable-email REST API. It handles request construction, bearer
// authorization, JSON encoding/decoding, bounded retries, and error
// translation. Higher-level semantics live in the root driftmail package.
package api
