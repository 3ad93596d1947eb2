// Package deliveryrequest contains the DeliveryRequest aggregate, the offer
// of one order's delivery to one courier.
//
// Requests resolve exactly once: the courier accepts or rejects, or an expiry
// sweep times the request out. Concurrent resolutions race through optimistic
// concurrency at the storage layer, so at most one of them commits.
package deliveryrequest
