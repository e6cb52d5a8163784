package courierrepo_test

import (
	"context"
	"testing"
	"time"

	"fluxi/internal/adapters/out/postgres/courierrepo"
	"fluxi/internal/core/domain/model/courier"
	"fluxi/internal/core/domain/model/kernel"
	"fluxi/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// CourierRepositoryIntegrationTestSuite provides integration tests for
// CourierRepository using PostgreSQL containers to verify persistence
// behavior, the claim handshake included.
type CourierRepositoryIntegrationTestSuite struct {
	suite.Suite
	container         *postgres.PostgresContainer
	db                *gorm.DB
	courierRepository *courierrepo.GormCourierRepository
	tracker           *MockAggregateTracker
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&courierrepo.CourierDTO{}))
}

func (suite *CourierRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE couriers").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.courierRepository = courierrepo.NewGormCourierRepository(suite.db, suite.tracker)
}

func (suite *CourierRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CourierRepositoryIntegrationTestSuite) createTestCourier(floatAmount int64) *courier.Courier {
	phone, err := kernel.NewPhone("3109876543")
	suite.Require().NoError(err)
	startingFloat, err := kernel.NewMoney(floatAmount)
	suite.Require().NoError(err)

	c, err := courier.NewCourier(kernel.NewUUID(), "Carlos Mejia", phone, startingFloat, time.Now())
	suite.Require().NoError(err)
	return &c
}

func (suite *CourierRepositoryIntegrationTestSuite) createOfferableCourier() *courier.Courier {
	c := suite.createTestCourier(50000)
	suite.Require().NoError(c.StartShift(time.Now()))
	return c
}

func (suite *CourierRepositoryIntegrationTestSuite) addCourier(c *courier.Courier) {
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	suite.Require().NoError(suite.courierRepository.Add(context.Background(), c))
}

func (suite *CourierRepositoryIntegrationTestSuite) assertCourierCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&courierrepo.CourierDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestAdd_ValidCourier_Success() {
	c := suite.createOfferableCourier()

	suite.addCourier(c)

	suite.assertCourierCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_ExistingCourier_RoundTrips() {
	ctx := context.Background()

	original := suite.createOfferableCourier()
	point, err := kernel.NewGeoPoint(4.6097, -74.0817)
	suite.Require().NoError(err)
	suite.Require().NoError(original.ReportLocation(point, time.Now()))

	suite.addCourier(original)

	retrieved, err := suite.courierRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Name(), retrieved.Name())
	suite.True(original.Phone().IsEqual(retrieved.Phone()))
	suite.True(original.StartingFloat().IsEqual(retrieved.StartingFloat()))
	suite.True(retrieved.IsActiveToday())
	suite.False(retrieved.IsRetired())
	suite.False(retrieved.IsCommitted())

	suite.Require().NotNil(retrieved.Location())
	suite.True(point.IsEqual(retrieved.Location().Point))
	suite.True(retrieved.Location().Sharing)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGet_NonExistentCourier_ReturnsNotFoundError() {
	retrieved, err := suite.courierRepository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_PersistsShiftAndFloatChanges() {
	ctx := context.Background()

	c := suite.createOfferableCourier()
	suite.addCourier(c)

	c.EndShift(time.Now())
	newFloat, err := kernel.NewMoney(80000)
	suite.Require().NoError(err)
	suite.Require().NoError(c.SetStartingFloat(newFloat, time.Now()))

	suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	suite.Require().NoError(suite.courierRepository.Update(ctx, c))

	retrieved, err := suite.courierRepository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsActiveToday())
	suite.Equal(int64(80000), retrieved.StartingFloat().Amount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_StopSharingKeepsLastPoint() {
	ctx := context.Background()

	c := suite.createOfferableCourier()
	point, err := kernel.NewGeoPoint(6.2442, -75.5812)
	suite.Require().NoError(err)
	suite.Require().NoError(c.ReportLocation(point, time.Now()))
	suite.addCourier(c)

	c.StopSharingLocation(time.Now())
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	suite.Require().NoError(suite.courierRepository.Update(ctx, c))

	retrieved, err := suite.courierRepository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.Location())
	suite.True(point.IsEqual(retrieved.Location().Point))
	suite.False(retrieved.Location().Sharing)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_NonExistentCourier_ReturnsError() {
	c := suite.createOfferableCourier()

	err := suite.courierRepository.Update(context.Background(), c)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
	suite.tracker.AssertExpectations(suite.T())
}

// A plain update must never lower a commitment raised by another transaction.
func (suite *CourierRepositoryIntegrationTestSuite) TestUpdate_DoesNotTouchCommittedColumn() {
	ctx := context.Background()

	c := suite.createOfferableCourier()
	suite.addCourier(c)

	// Another worker claims the courier in storage.
	suite.Require().NoError(suite.courierRepository.Claim(ctx, c.ID()))

	// The stale aggregate still believes the courier is free; saving it
	// must not release the claim.
	c.EndShift(time.Now())
	suite.tracker.On("TrackAggregate", c.ID(), c).Once()
	suite.Require().NoError(suite.courierRepository.Update(ctx, c))

	retrieved, err := suite.courierRepository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsCommitted())
	suite.False(retrieved.IsActiveToday())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestClaim_FreeCourier_Succeeds() {
	ctx := context.Background()

	c := suite.createOfferableCourier()
	suite.addCourier(c)

	suite.Require().NoError(suite.courierRepository.Claim(ctx, c.ID()))

	retrieved, err := suite.courierRepository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsCommitted())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestClaim_AlreadyClaimed_ReturnsConflict() {
	ctx := context.Background()

	c := suite.createOfferableCourier()
	suite.addCourier(c)

	suite.Require().NoError(suite.courierRepository.Claim(ctx, c.ID()))

	err := suite.courierRepository.Claim(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrConflict)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestClaim_NonExistentCourier_ReturnsConflict() {
	err := suite.courierRepository.Claim(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *CourierRepositoryIntegrationTestSuite) TestRelease_ClaimedCourier_FreesIt() {
	ctx := context.Background()

	c := suite.createOfferableCourier()
	suite.addCourier(c)

	suite.Require().NoError(suite.courierRepository.Claim(ctx, c.ID()))
	suite.Require().NoError(suite.courierRepository.Release(ctx, c.ID()))

	// Free again: a second claim must land.
	suite.Require().NoError(suite.courierRepository.Claim(ctx, c.ID()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestRelease_UnclaimedCourier_IsANoOp() {
	ctx := context.Background()

	c := suite.createOfferableCourier()
	suite.addCourier(c)

	suite.Require().NoError(suite.courierRepository.Release(ctx, c.ID()))

	retrieved, err := suite.courierRepository.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.False(retrieved.IsCommitted())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAllOfferable_FiltersAndOrders() {
	ctx := context.Background()

	offerableA := suite.createOfferableCourier()
	offerableB := suite.createOfferableCourier()

	offShift := suite.createTestCourier(50000)

	unfunded := suite.createTestCourier(0)
	suite.Require().NoError(unfunded.StartShift(time.Now()))

	retired := suite.createOfferableCourier()
	retired.Retire(time.Now())

	claimed := suite.createOfferableCourier()

	for _, c := range []*courier.Courier{offerableA, offerableB, offShift, unfunded, retired, claimed} {
		suite.addCourier(c)
	}
	suite.Require().NoError(suite.courierRepository.Claim(ctx, claimed.ID()))

	offerable, err := suite.courierRepository.GetAllOfferable(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(offerable, 2)
	for i := 1; i < len(offerable); i++ {
		suite.True(offerable[i-1].ID().Less(offerable[i].ID()))
	}

	wantIDs := map[string]bool{offerableA.ID().String(): true, offerableB.ID().String(): true}
	for _, c := range offerable {
		suite.True(wantIDs[c.ID().String()])
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestGetAll_IncludesRetiredCouriers() {
	ctx := context.Background()

	active := suite.createOfferableCourier()
	retired := suite.createTestCourier(30000)
	retired.Retire(time.Now())

	suite.addCourier(active)
	suite.addCourier(retired)

	all, err := suite.courierRepository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestRemove_ExistingCourier_DeletesRow() {
	ctx := context.Background()

	c := suite.createOfferableCourier()
	suite.addCourier(c)

	suite.Require().NoError(suite.courierRepository.Remove(ctx, c.ID()))

	suite.assertCourierCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CourierRepositoryIntegrationTestSuite) TestRemove_NonExistentCourier_ReturnsNotFoundError() {
	err := suite.courierRepository.Remove(context.Background(), kernel.NewUUID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestCourierRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CourierRepositoryIntegrationTestSuite))
}
