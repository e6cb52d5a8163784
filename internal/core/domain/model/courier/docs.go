// Package courier contains the Courier aggregate.
//
// A courier's availability is never stored: it is derived on every read from
// the retired flag, the on-shift flag, the starting cash float, and whether
// an in-transit order exists. What the aggregate does store is the committed
// flag, the claim marker that keeps two concurrent assignments from landing
// on the same courier.
package courier
