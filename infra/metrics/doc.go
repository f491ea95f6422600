// Package metrics defines the Prometheus collectors the arcade service
// records into. Collectors register against a caller-supplied registerer so
// each service instance and each test can own an isolated registry.
package metrics
