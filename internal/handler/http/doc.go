// Package http implements the REST API of the recipe catalog.
//
// It wires the chi router, decodes JSON requests into models, and encodes
// models into the wire representations. Authentication, request tracing
// and access logging are handled by middleware before requests reach the
// service layer.
package http
