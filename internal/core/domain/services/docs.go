// Package services contains domain services: business logic that spans
// aggregates and therefore belongs to none of them. The order dispatcher
// decides which courier an order should be offered to without touching
// persistence or transport concerns.
package services
