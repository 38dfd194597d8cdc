// Package events defines the typed lifecycle events published on the
// eventbus by the HTTP layer and the resolution engine. Subscribers (otel
// tracing, metrics) observe these without the core depending on them.
package events

import "time"

// OperationStart is emitted before resolving a GraphQL operation.
type OperationStart struct {
	Query         string
	OperationName string
	OperationType string
}

// OperationFinish is emitted after resolving a GraphQL operation.
type OperationFinish struct {
	Query         string
	OperationName string
	OperationType string
	Errors        []error
	Duration      time.Duration
}
