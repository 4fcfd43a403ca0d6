// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - WorkloadCalculator: committed minutes and remaining capacity per driver
//   - AssignmentMatcher: greedy least-loaded matching of orders to drivers
//   - StatsAggregator: dashboard and per-driver summary statistics
//   - estimate policies: the raw vs traffic-adjusted frozen-estimate split
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
