// Package kernel provides the value objects shared by the marketplace
// aggregates: UUID identifiers, Money amounts and shipping Address snapshots.
//
// All kernel values are immutable. Their zero values are invalid and fail
// Validate, so aggregates can detect values that bypassed a constructor.
package kernel
