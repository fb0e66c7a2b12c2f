package commands_test

import (
	"context"
	"testing"
	"time"

	"courierdispatch/internal/core/application/ledger"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/core/domain/model/payment"
	"courierdispatch/internal/core/domain/model/rider"
	"courierdispatch/internal/core/domain/model/user"
	"courierdispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockParcelRepository struct{ mock.Mock }

func (m *MockParcelRepository) Add(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockParcelRepository) UpdateDeliveryStatus(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) UpdateRiderAssignment(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockParcelRepository) UpdatePaymentState(ctx context.Context, p *parcel.Parcel) error {
	return m.Called(ctx, p).Error(0)
}

type MockRiderRepository struct{ mock.Mock }

func (m *MockRiderRepository) Add(ctx context.Context, r *rider.Rider) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) GetByEmail(ctx context.Context, email string) (*rider.Rider, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rider.Rider), args.Error(1)
}

func (m *MockRiderRepository) UpdateWorksStatus(ctx context.Context, id kernel.UUID, s rider.WorksStatus) error {
	return m.Called(ctx, id, s).Error(0)
}

func (m *MockRiderRepository) UpdateReview(ctx context.Context, r *rider.Rider) error {
	return m.Called(ctx, r).Error(0)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

type MockTracker struct{ mock.Mock }

func (m *MockTracker) SetInDelivery(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTracker) SetAvailable(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockLedger struct{ mock.Mock }

func (m *MockLedger) Append(ctx context.Context, id kernel.TrackingID, status string) ledger.AppendResult {
	return m.Called(ctx, id, status).Get(0).(ledger.AppendResult)
}

type MockPaymentProvider struct{ mock.Mock }

func (m *MockPaymentProvider) CreateCheckoutSession(ctx context.Context, req ports.CheckoutRequest) (ports.CheckoutSession, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.CheckoutSession), args.Error(1)
}

func (m *MockPaymentProvider) RetrieveCheckoutSession(ctx context.Context, id string) (ports.CheckoutSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.CheckoutSession), args.Error(1)
}

// stubStore serves the given repositories to handlers.
type stubStore struct {
	parcels  ports.ParcelRepository
	riders   ports.RiderRepository
	payments ports.PaymentRepository
	users    ports.UserRepository
}

func (s stubStore) ParcelRepository() ports.ParcelRepository   { return s.parcels }
func (s stubStore) RiderRepository() ports.RiderRepository     { return s.riders }
func (s stubStore) PaymentRepository() ports.PaymentRepository { return s.payments }
func (s stubStore) UserRepository() ports.UserRepository       { return s.users }

const testTrackingID = "PRCL-20250101-ABC123"

func mustTrackingID(t *testing.T, raw string) kernel.TrackingID {
	t.Helper()
	id, err := kernel.TrackingIDFromString(raw)
	require.NoError(t, err)
	return id
}

func newTestParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(kernel.NewUUID(), mustTrackingID(t, testTrackingID), parcel.Details{
		Name:     "Books",
		Sender:   parcel.Party{Name: "Sam", Email: "sam@example.com"},
		Receiver: parcel.Party{Name: "Rae"},
		Cost:     150,
	}, time.Now())
	require.NoError(t, err)
	return p
}

func assignedTestParcel(t *testing.T, riderID kernel.UUID) *parcel.Parcel {
	t.Helper()
	p := newTestParcel(t)
	require.NoError(t, p.AssignRider(parcel.RiderAssignment{RiderID: riderID, Name: "Rob"}, parcel.Lenient))
	return p
}
