// Package kernel contains shared value objects used across the domain model.
// These are small immutable types with validation that aggregate roots build on.
package kernel
