package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler retrieves all non-terminal orders from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns pending, assigned, and in-transit
// orders, newest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_name,
			client_phone,
			address,
			neighborhood,
			value,
			delivery_fee,
			payment_method,
			status,
			courier_id,
			created_at
		FROM orders
		WHERE status IN (?, ?, ?)
		ORDER BY created_at DESC
	`, order.Pending.String(), order.Assigned.String(), order.InTransit.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

func scanOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			resp      OrderResponse
			id        string
			courierID sql.NullString
		)

		err := rows.Scan(
			&id,
			&resp.ClientName,
			&resp.ClientPhone,
			&resp.Address,
			&resp.Neighborhood,
			&resp.Value,
			&resp.DeliveryFee,
			&resp.Payment,
			&resp.Status,
			&courierID,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if courierID.Valid {
			cid, cidErr := kernel.UUIDFromString(courierID.String)
			if cidErr != nil {
				return nil, cidErr
			}
			resp.CourierID = &cid
		}

		orders = append(orders, resp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
