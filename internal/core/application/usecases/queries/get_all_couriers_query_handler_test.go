package queries_test

import (
	"context"
	"testing"
	"time"

	"fluxi/internal/core/application/usecases/queries"
	"fluxi/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type GetAllCouriersQueryHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	handler queries.GetAllCouriersQueryHandler
}

func (suite *GetAllCouriersQueryHandlerTestSuite) SetupSuite() {
	suite.db = openQueryTestDB(suite.Require(), "couriersboard")
	suite.handler = queries.NewGetAllCouriersQueryHandler(suite.db)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("DELETE FROM orders").Error)
	suite.Require().NoError(suite.db.Exec("DELETE FROM couriers").Error)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllCouriersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_DerivesAvailabilityPerCourier() {
	r := suite.Require()
	now := time.Now()

	available := newShiftCourier(r, "Alicia", 50000)

	busy := newShiftCourier(r, "Bruno", 50000)
	r.NoError(busy.Commit(now))

	offShift := newShiftCourier(r, "Camila", 50000)
	offShift.EndShift(now)

	unfunded := newShiftCourier(r, "Diego", 0)

	retired := newShiftCourier(r, "Elena", 50000)
	retired.Retire(now)

	seedCouriers(r, suite.db, available, busy, offShift, unfunded, retired)

	// Bruno's delivery is on the road.
	trip := newPendingOrder(r, now)
	r.NoError(trip.Assign(busy.ID(), now))
	r.NoError(trip.StartTransit(now))
	seedOrders(r, suite.db, trip)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAllCouriersQuery())

	r.NoError(err)
	r.Len(result, 5)

	byName := make(map[string]queries.CourierResponse)
	for _, resp := range result {
		byName[resp.Name] = resp
	}

	suite.Equal("available", byName["Alicia"].Availability)
	suite.Equal("busy", byName["Bruno"].Availability)
	suite.Equal("unavailable", byName["Camila"].Availability)
	suite.Equal("unavailable", byName["Diego"].Availability)
	suite.Equal("inactive", byName["Elena"].Availability)
}

// A committed courier whose order has not left yet still shows as available:
// busy is reserved for couriers with an order on the road.
func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_CommittedWithoutTransit_ShowsAvailable() {
	r := suite.Require()
	now := time.Now()

	committed := newShiftCourier(r, "Fabio", 50000)
	r.NoError(committed.Commit(now))
	seedCouriers(r, suite.db, committed)

	waiting := newPendingOrder(r, now)
	r.NoError(waiting.Assign(committed.ID(), now))
	seedOrders(r, suite.db, waiting)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAllCouriersQuery())

	r.NoError(err)
	r.Len(result, 1)
	suite.Equal("available", result[0].Availability)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_SortsByName() {
	r := suite.Require()

	seedCouriers(r, suite.db,
		newShiftCourier(r, "Zaira", 50000),
		newShiftCourier(r, "Andres", 50000),
		newShiftCourier(r, "Mateo", 50000),
	)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAllCouriersQuery())

	r.NoError(err)
	r.Len(result, 3)
	suite.Equal("Andres", result[0].Name)
	suite.Equal("Mateo", result[1].Name)
	suite.Equal("Zaira", result[2].Name)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_ExposesLocationOnlyWhileShared() {
	r := suite.Require()
	now := time.Now()
	point, err := kernel.NewGeoPoint(4.6097, -74.0817)
	r.NoError(err)

	sharing := newShiftCourier(r, "Gloria", 50000)
	r.NoError(sharing.ReportLocation(point, now))

	stopped := newShiftCourier(r, "Hernan", 50000)
	r.NoError(stopped.ReportLocation(point, now))
	stopped.StopSharingLocation(now)

	silent := newShiftCourier(r, "Ines", 50000)

	seedCouriers(r, suite.db, sharing, stopped, silent)

	result, err := suite.handler.Handle(context.Background(), queries.NewGetAllCouriersQuery())

	r.NoError(err)
	r.Len(result, 3)

	byName := make(map[string]queries.CourierResponse)
	for _, resp := range result {
		byName[resp.Name] = resp
	}

	r.NotNil(byName["Gloria"].Latitude)
	r.NotNil(byName["Gloria"].Longitude)
	suite.InDelta(4.6097, *byName["Gloria"].Latitude, 1e-9)
	suite.InDelta(-74.0817, *byName["Gloria"].Longitude, 1e-9)
	suite.NotNil(byName["Gloria"].ReportedAt)

	suite.Nil(byName["Hernan"].Latitude)
	suite.Nil(byName["Hernan"].Longitude)
	suite.Nil(byName["Ines"].Latitude)
	suite.Nil(byName["Ines"].Longitude)
}

func (suite *GetAllCouriersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetAllCouriersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetAllCouriersQuery constructor")
}

func TestGetAllCouriersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllCouriersQueryHandlerTestSuite))
}
