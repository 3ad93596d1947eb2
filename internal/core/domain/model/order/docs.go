// Package order contains the Order aggregate and its value objects.
//
// An order moves along two independent tracks. The courier track
// (Placed, Assigned, PickedUp, Delivered) advances only through courier
// actions and only forward. The preparation track (NotStarted, Active,
// Completed) is owned by the restaurant and never blocks the courier track.
//
// Orders raise domain events on every state change; the application layer
// publishes them after the enclosing transaction commits.
package order
