// Package services provides domain services that span the Order and
// DeliveryRequest aggregates.
//
// The package includes:
//   - AssignmentCoordinator: the only place that pairs "accept a delivery
//     request" with "assign the order", and that decides whether a delivery
//     person may bid for an order
//
// The coordinator works on loaded aggregates and never touches storage; the
// command handlers persist both aggregates in one unit of work.
package services
