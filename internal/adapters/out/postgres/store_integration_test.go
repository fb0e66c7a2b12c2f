package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "courierdispatch/internal/adapters/out/postgres"
	"courierdispatch/internal/adapters/out/postgres/pgtest"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/core/domain/model/rider"
	"courierdispatch/internal/core/domain/model/user"
	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

// StoreIntegrationTestSuite exercises every repository behind one Store against a
// real PostgreSQL database.
type StoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *postgres_adapter.Store
}

func (suite *StoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, db, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db

	suite.store = postgres_adapter.NewStore(db)
	suite.Require().NoError(suite.store.Migrate(ctx))
}

func (suite *StoreIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, riders, payments, trackings, users").Error
	suite.Require().NoError(err)
}

func (suite *StoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StoreIntegrationTestSuite) newParcel() *parcel.Parcel {
	trackingID, err := kernel.GenerateTrackingID()
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(kernel.NewUUID(), trackingID, parcel.Details{
		Name:     "Books",
		Sender:   parcel.Party{Name: "Sam", Email: "sam@example.com"},
		Receiver: parcel.Party{Name: "Rae", District: "Mirpur"},
		Cost:     150,
	}, time.Now())
	suite.Require().NoError(err)
	return p
}

func (suite *StoreIntegrationTestSuite) newRider(email string) *rider.Rider {
	r, err := rider.NewRider(kernel.NewUUID(), rider.Profile{
		Name:      "Rob",
		Email:     email,
		Districts: []string{"Mirpur", "Uttara"},
	}, time.Now())
	suite.Require().NoError(err)
	return r
}

func (suite *StoreIntegrationTestSuite) TestMigrate_IsRepeatable() {
	suite.Require().NoError(suite.store.Migrate(context.Background()))
	suite.True(suite.db.Migrator().HasTable("trackings"))
}

func (suite *StoreIntegrationTestSuite) TestParcel_RoundTripKeepsTrackingID() {
	ctx := context.Background()
	p := suite.newParcel()

	suite.Require().NoError(suite.store.ParcelRepository().Add(ctx, p))

	got, err := suite.store.ParcelRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(got.TrackingID().IsEqual(p.TrackingID()))
	suite.Equal(parcel.Created, got.DeliveryStatus())
	suite.Equal(parcel.Unpaid, got.PaymentStatus())
	suite.Equal("Mirpur", got.Receiver().District)
	suite.Nil(got.Rider())
}

func (suite *StoreIntegrationTestSuite) TestParcel_ColumnTargetedUpdatesDoNotClobber() {
	ctx := context.Background()
	repo := suite.store.ParcelRepository()
	p := suite.newParcel()
	suite.Require().NoError(repo.Add(ctx, p))

	// Two in-memory copies loaded before either write.
	forPayment, err := repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	forAssignment, err := repo.Get(ctx, p.ID())
	suite.Require().NoError(err)

	riderID := kernel.NewUUID()
	suite.Require().NoError(forAssignment.AssignRider(parcel.RiderAssignment{RiderID: riderID, Name: "Rob"}, parcel.Lenient))
	suite.Require().NoError(repo.UpdateRiderAssignment(ctx, forAssignment))

	forPayment.MarkPaid()
	suite.Require().NoError(repo.UpdatePaymentState(ctx, forPayment))

	got, err := repo.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(got.IsPaid(), "payment write landed")
	suite.Require().NotNil(got.Rider(), "rider columns survived the payment write")
	suite.True(got.Rider().RiderID.IsEqual(riderID))
	suite.Equal(parcel.PendingPickup, got.DeliveryStatus(), "last writer of delivery_status wins")
}

func (suite *StoreIntegrationTestSuite) TestParcel_UpdateAndDeleteMissingRow() {
	ctx := context.Background()
	p := suite.newParcel()

	err := suite.store.ParcelRepository().UpdateDeliveryStatus(ctx, p)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.store.ParcelRepository().Delete(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.store.ParcelRepository().Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StoreIntegrationTestSuite) TestParcel_DuplicateTrackingID() {
	ctx := context.Background()
	first := suite.newParcel()
	suite.Require().NoError(suite.store.ParcelRepository().Add(ctx, first))

	clash, err := parcel.NewParcel(kernel.NewUUID(), first.TrackingID(), first.Details(), time.Now())
	suite.Require().NoError(err)

	err = suite.store.ParcelRepository().Add(ctx, clash)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *StoreIntegrationTestSuite) TestRider_WorksStatusAndReview() {
	ctx := context.Background()
	repo := suite.store.RiderRepository()
	r := suite.newRider("rob@example.com")
	suite.Require().NoError(repo.Add(ctx, r))

	suite.Require().NoError(repo.UpdateWorksStatus(ctx, r.ID(), rider.InDelivery))

	got, err := repo.Get(ctx, r.ID())
	suite.Require().NoError(err)
	suite.Equal(rider.InDelivery, got.WorksStatus())
	suite.Equal([]string{"Mirpur", "Uttara"}, got.Profile().Districts)

	suite.Require().NoError(got.Review(rider.Approved))
	suite.Require().NoError(repo.UpdateReview(ctx, got))

	byEmail, err := repo.GetByEmail(ctx, "ROB@example.com")
	suite.Require().NoError(err)
	suite.Equal(rider.Approved, byEmail.Status())
	suite.Equal(rider.Available, byEmail.WorksStatus())
}

func (suite *StoreIntegrationTestSuite) TestRider_UnknownAndDuplicate() {
	ctx := context.Background()
	repo := suite.store.RiderRepository()

	err := repo.UpdateWorksStatus(ctx, kernel.NewUUID(), rider.Available)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().NoError(repo.Add(ctx, suite.newRider("dup@example.com")))
	err = repo.Add(ctx, suite.newRider("dup@example.com"))
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *StoreIntegrationTestSuite) TestUser_RoleLifecycle() {
	ctx := context.Background()
	repo := suite.store.UserRepository()

	u, err := user.NewUser(kernel.NewUUID(), "ann@example.com", "Ann", "", time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Add(ctx, u))

	u.PromoteToRider()
	suite.Require().NoError(repo.UpdateRole(ctx, u))

	got, err := repo.GetByEmail(ctx, "Ann@Example.com")
	suite.Require().NoError(err)
	suite.Equal(user.RoleRider, got.Role())

	dup, err := user.NewUser(kernel.NewUUID(), "ann@example.com", "Ann 2", "", time.Now())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(repo.Add(ctx, dup), errs.ErrObjectAlreadyExists)
}

func TestStoreIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(StoreIntegrationTestSuite))
}
