package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"fluxi/internal/core/domain/model/courier"
	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/core/domain/model/order"
)

// GetAllCouriersQueryHandler retrieves all couriers with their derived
// availability. The in-transit check is an EXISTS subquery so one round trip
// serves the whole board.
type GetAllCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCouriersQueryHandler creates a handler for courier board queries.
func NewGetAllCouriersQueryHandler(db *gorm.DB) GetAllCouriersQueryHandler {
	return GetAllCouriersQueryHandler{db: db}
}

// Handle executes the query. Returns couriers sorted by name, each with the
// availability computed from its stored inputs.
func (h GetAllCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCouriersQuery,
) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.phone,
			c.starting_float,
			c.active_today,
			c.retired,
			c.loc_latitude,
			c.loc_longitude,
			c.loc_reported_at,
			c.loc_sharing,
			EXISTS (
				SELECT 1 FROM orders o
				WHERE o.courier_id = c.id AND o.status = ?
			) AS has_in_transit
		FROM couriers c
		ORDER BY c.name
	`, order.InTransit.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]CourierResponse, 0)

	for rows.Next() {
		var (
			resp        CourierResponse
			id          string
			activeToday bool
			retired     bool
			latitude    sql.NullFloat64
			longitude   sql.NullFloat64
			reportedAt  sql.NullTime
			sharing     bool
			hasTransit  bool
		)

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Phone,
			&resp.StartingFloat,
			&activeToday,
			&retired,
			&latitude,
			&longitude,
			&reportedAt,
			&sharing,
			&hasTransit,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = courierID

		funded := resp.StartingFloat > 0
		resp.Availability = courier.Compute(retired, activeToday, funded, hasTransit).String()

		if sharing && latitude.Valid && longitude.Valid {
			resp.Latitude = &latitude.Float64
			resp.Longitude = &longitude.Float64
			if reportedAt.Valid {
				resp.ReportedAt = &reportedAt.Time
			}
		}

		couriers = append(couriers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
