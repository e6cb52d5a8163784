package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersByDateRangeQueryHandler retrieves orders created inside a time
// window, oldest first so day views read chronologically.
type GetOrdersByDateRangeQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByDateRangeQueryHandler creates a handler for date window
// queries.
func NewGetOrdersByDateRangeQueryHandler(db *gorm.DB) GetOrdersByDateRangeQueryHandler {
	return GetOrdersByDateRangeQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrdersByDateRangeQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByDateRangeQuery,
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
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at
	`, query.From(), query.To()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
