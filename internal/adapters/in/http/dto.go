package http

import (
	"time"

	"mealdrop/internal/core/domain/model/kernel"
)

// CreateCourierRequest registers a new courier for a user account.
type CreateCourierRequest struct {
	AccountID string `json:"accountId"`
	FullName  string `json:"fullName"`
}

// CourierCreatedResponse carries the identity of a freshly registered courier.
type CourierCreatedResponse struct {
	ID kernel.UUID `json:"id"`
}

// ReportLocationRequest carries a courier position fix. ObservedAt is optional
// and defaults to the server clock.
type ReportLocationRequest struct {
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	ObservedAt *time.Time `json:"observedAt,omitempty"`
}

// OrderLineRequest is one line of a checkout request.
type OrderLineRequest struct {
	DishID    string `json:"dishId"`
	DishName  string `json:"dishName"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// CheckoutRequest places a new order from a customer's basket.
type CheckoutRequest struct {
	CustomerID      string             `json:"customerId"`
	RestaurantID    string             `json:"restaurantId"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Items           []OrderLineRequest `json:"items"`
}

// OrderPlacedResponse carries the identity of a freshly placed order.
type OrderPlacedResponse struct {
	ID kernel.UUID `json:"id"`
}

// AssignOrderRequest offers an order to a specific courier.
type AssignOrderRequest struct {
	CourierID string `json:"courierId"`
}

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
