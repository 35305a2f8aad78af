// Package metrics holds the Prometheus collectors of the task keeper server:
// HTTP traffic, authentication outcomes and password hashing latency.
package metrics
