// Package order implements the Order aggregate: a customer's single-seller
// purchase, the immutable line-item snapshot taken at checkout, and the
// fulfillment state machine.
//
// Key business rules:
//   - Every line item must come from the same seller; that seller is the order's shop
//   - totalAmount = Σ(unitPrice × quantity) + delivery fee, fixed at creation
//   - estimatedDeliveryDate = creation date + 2 days at 21:00
//   - Processing → Accepted only through assignment of a delivery person
//   - Accepted → Shifted → OutForDelivery → Delivered, one step at a time, by the assignee
//   - Any non-terminal order can be cancelled administratively
package order
