package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByCourierQueryHandler retrieves one courier's orders from the
// database, newest first.
type GetOrdersByCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCourierQueryHandler creates a handler for courier order
// queries.
func NewGetOrdersByCourierQueryHandler(db *gorm.DB) GetOrdersByCourierQueryHandler {
	return GetOrdersByCourierQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrdersByCourierQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCourierQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery := `
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
		WHERE courier_id = ?
	`
	args := []any{query.CourierID().String()}

	if query.Status() != nil {
		sqlQuery += " AND status = ?"
		args = append(args, query.Status().String())
	}
	sqlQuery += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
