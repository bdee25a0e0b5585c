// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query) to protect endpoints.
//   - rayid: Tags every incoming request with a unique Ray ID, stored in the context and
//     echoed in the response headers for tracing.
//
// These middleware components are registered globally in the start command.
package middleware
