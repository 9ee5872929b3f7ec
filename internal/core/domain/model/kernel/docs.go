// Package kernel contains shared value objects used across all domain models.
// These are the building blocks of the domain: identifiers and actor roles
// that carry their own validation rules and are immutable once constructed.
package kernel
