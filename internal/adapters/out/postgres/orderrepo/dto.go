// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and database
// rows.
package orderrepo

import (
	"time"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Statuses are stored as their wire strings, identifiers as
// UUID text. The (external_source, external_id) pair carries a unique index
// so duplicate imports fail at the constraint, not just at the lookup.
type OrderDTO struct {
	ID             string  `gorm:"type:uuid;primaryKey"`
	ClientName     string  `gorm:"not null"`
	ClientPhone    string  `gorm:"not null"`
	Address        string  `gorm:"not null"`
	Neighborhood   string
	Value          int64
	DeliveryFee    int64
	PaymentMethod  string
	TerminalNumber string
	VoucherStatus  string
	Notes          string
	ExternalSource *string `gorm:"index:idx_orders_external_ref,unique"`
	ExternalID     *int64  `gorm:"index:idx_orders_external_ref,unique"`
	CourierID      *string `gorm:"type:uuid;index"`
	Status         string  `gorm:"index"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`
	StartedAt      *time.Time
	DeliveredAt    *time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *string
	if id := aggregate.Courier(); id != nil {
		s := id.String()
		courierID = &s
	}

	var externalSource *string
	var externalID *int64
	if ref := aggregate.ExternalRef(); ref != nil {
		source := ref.Source()
		id := ref.ID()
		externalSource = &source
		externalID = &id
	}

	return OrderDTO{
		ID:             aggregate.ID().String(),
		ClientName:     aggregate.ClientName(),
		ClientPhone:    aggregate.ClientPhone().String(),
		Address:        aggregate.Address(),
		Neighborhood:   aggregate.Neighborhood(),
		Value:          aggregate.Value().Amount(),
		DeliveryFee:    aggregate.DeliveryFee().Amount(),
		PaymentMethod:  aggregate.Payment().String(),
		TerminalNumber: aggregate.TerminalNumber(),
		VoucherStatus:  aggregate.Voucher().String(),
		Notes:          aggregate.Notes(),
		ExternalSource: externalSource,
		ExternalID:     externalID,
		CourierID:      courierID,
		Status:         aggregate.Status().String(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		StartedAt:      aggregate.StartedAt(),
		DeliveredAt:    aggregate.DeliveredAt(),
	}
}

// toDomain converts a database row back into an order aggregate using
// RestoreOrder, so a loaded order obeys the same invariants as a fresh one.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.PhoneFromCanonical(dto.ClientPhone)
	if err != nil {
		return nil, err
	}

	value, err := kernel.NewMoney(dto.Value)
	if err != nil {
		return nil, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return nil, err
	}

	payment, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	voucher, err := order.VoucherStatusFromString(dto.VoucherStatus)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var externalRef *order.ExternalRef
	if dto.ExternalSource != nil && dto.ExternalID != nil {
		ref, refErr := order.NewExternalRef(*dto.ExternalSource, *dto.ExternalID)
		if refErr != nil {
			return nil, refErr
		}
		externalRef = &ref
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cid, cidErr := kernel.UUIDFromString(*dto.CourierID)
		if cidErr != nil {
			return nil, cidErr
		}
		courierID = &cid
	}

	return order.RestoreOrder(id, order.RestoreOrderParams{
		NewOrderParams: order.NewOrderParams{
			ClientName:     dto.ClientName,
			ClientPhone:    phone,
			Address:        dto.Address,
			Neighborhood:   dto.Neighborhood,
			Value:          value,
			DeliveryFee:    deliveryFee,
			Payment:        payment,
			TerminalNumber: dto.TerminalNumber,
			Notes:          dto.Notes,
			ExternalRef:    externalRef,
		},
		Status:      status,
		Voucher:     voucher,
		CourierID:   courierID,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
		StartedAt:   dto.StartedAt,
		DeliveredAt: dto.DeliveredAt,
	})
}
