// Package order provides domain entities and business logic for order
// management in the dispatch system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, client data,
//     amounts, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - PaymentMethod and VoucherStatus: Payment-related value enums
//   - ExternalRef: A typed reference to an external source system record,
//     replacing free-text dedup markers
//
// Key business rules:
//   - Orders must have a valid identifier, client name, Colombian mobile
//     phone, delivery address, and non-negative amounts
//   - Order status follows pending -> assigned -> in_transit -> delivered,
//     with cancellation possible from any non-terminal status
//   - delivered and cancelled are terminal: no transition leaves them
//   - A courier may be attached only outside the pending status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced.
package order
