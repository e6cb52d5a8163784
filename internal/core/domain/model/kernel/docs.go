// Package kernel provides shared value objects used across the domain model.
//
// The package contains:
//   - UUID: Validated unique identifiers for aggregates
//   - Phone: Normalized Colombian mobile phone numbers (+57 canonical form)
//   - Money: Non-negative peso amounts for order values and cash floats
//   - GeoPoint: Validated geographic coordinates for courier locations
//
// All types in this package are immutable value objects: they are created
// through validating constructors, compared by value, and their zero values
// fail validation. This ensures invalid data cannot leak into aggregates.
package kernel
