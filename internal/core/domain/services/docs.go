// Package services provides domain services that orchestrate business
// operations across multiple aggregates. It implements workflows that don't
// naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderDispatcher: a domain service that selects a courier for a pending
//     order and executes the assignment on both aggregates.
package services
