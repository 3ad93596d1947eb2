// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"mealdrop/internal/core/domain/model/kernel"
	"mealdrop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in a child table keyed by (order_id, position) so that the
// checkout-time ordering survives round trips.
type OrderDTO struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID      `gorm:"type:uuid;not null;index"`
	RestaurantID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	DeliveryAddress   string         `gorm:"type:varchar(512);not null"`
	Status            int            `gorm:"type:int;not null;index"`
	PreparationStatus int            `gorm:"type:int;not null"`
	CourierID         *uuid.UUID     `gorm:"type:uuid;index"`
	Version           int64          `gorm:"type:bigint;not null"`
	CreatedAt         time.Time      `gorm:"type:timestamptz;not null"`
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders" instead of "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one persisted line of an order.
type OrderItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"type:int;primaryKey"`
	DishID    uuid.UUID `gorm:"type:uuid;not null"`
	DishName  string    `gorm:"type:varchar(255);not null"`
	Quantity  int       `gorm:"type:int;not null"`
	UnitPrice int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for order line items.
// Overrides GORM's default naming convention to use "order_items" instead of "order_item_dtos".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			Position:  position,
			DishID:    item.DishID().Bytes(),
			DishName:  item.DishName(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	var courierID *uuid.UUID
	if aggregate.CourierID() != nil {
		raw := aggregate.CourierID().Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:                orderID,
		CustomerID:        aggregate.CustomerID().Bytes(),
		RestaurantID:      aggregate.RestaurantID().Bytes(),
		DeliveryAddress:   aggregate.DeliveryAddress(),
		Status:            int(aggregate.Status()),
		PreparationStatus: int(aggregate.PreparationStatus()),
		CourierID:         courierID,
		Version:           aggregate.Version(),
		Items:             items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the aggregate with its persisted state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		dto.DeliveryAddress,
		items,
		order.Status(dto.Status),
		order.PreparationStatus(dto.PreparationStatus),
		courierID,
		dto.Version,
	)
}

// itemToDomain converts a line item DTO to its domain value.
func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	dishID, err := kernel.UUIDFromBytes(dto.DishID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(dishID, dto.DishName, dto.Quantity, dto.UnitPrice)
}
