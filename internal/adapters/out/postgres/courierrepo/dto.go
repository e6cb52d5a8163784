// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence.
package courierrepo

import (
	"time"

	"fluxi/internal/core/domain/model/courier"
	"fluxi/internal/core/domain/model/kernel"
)

// CourierDTO represents the database structure for persisting courier
// aggregates. The committed column is the claim flag: regular updates omit
// it so it can only move through the conditional Claim and Release writes.
type CourierDTO struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	Name          string `gorm:"not null"`
	Phone         string `gorm:"not null"`
	StartingFloat int64
	ActiveToday   bool
	Retired       bool
	Committed     bool
	LocLatitude   *float64
	LocLongitude  *float64
	LocReportedAt *time.Time
	LocSharing    bool
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

// TableName overrides GORM's default naming convention to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:            aggregate.ID().String(),
		Name:          aggregate.Name(),
		Phone:         aggregate.Phone().String(),
		StartingFloat: aggregate.StartingFloat().Amount(),
		ActiveToday:   aggregate.IsActiveToday(),
		Retired:       aggregate.IsRetired(),
		Committed:     aggregate.IsCommitted(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}

	if loc := aggregate.Location(); loc != nil {
		latitude := loc.Point.Latitude()
		longitude := loc.Point.Longitude()
		reportedAt := loc.ReportedAt
		dto.LocLatitude = &latitude
		dto.LocLongitude = &longitude
		dto.LocReportedAt = &reportedAt
		dto.LocSharing = loc.Sharing
	}

	return dto
}

// toDomain converts a database row back into a courier aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	phone, err := kernel.PhoneFromCanonical(dto.Phone)
	if err != nil {
		return nil, err
	}

	startingFloat, err := kernel.NewMoney(dto.StartingFloat)
	if err != nil {
		return nil, err
	}

	var location *courier.Location
	if dto.LocLatitude != nil && dto.LocLongitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.LocLatitude, *dto.LocLongitude)
		if pointErr != nil {
			return nil, pointErr
		}

		location = &courier.Location{
			Point:   point,
			Sharing: dto.LocSharing,
		}
		if dto.LocReportedAt != nil {
			location.ReportedAt = *dto.LocReportedAt
		}
	}

	restored, err := courier.RestoreCourier(courier.RestoreCourierParams{
		ID:            id,
		Name:          dto.Name,
		Phone:         phone,
		StartingFloat: startingFloat,
		ActiveToday:   dto.ActiveToday,
		Retired:       dto.Retired,
		Committed:     dto.Committed,
		Location:      location,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
	if err != nil {
		return nil, err
	}

	return &restored, nil
}
