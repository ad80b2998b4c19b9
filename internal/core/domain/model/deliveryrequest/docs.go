// Package deliveryrequest implements the DeliveryRequest aggregate: a
// delivery person's bid to fulfil one order. There is at most one request
// record per order; it is reused across resubmissions and never deleted.
package deliveryrequest
