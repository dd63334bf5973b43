// Package otel bridges goCell scope metrics to OpenTelemetry observable
// instruments.
package otel
