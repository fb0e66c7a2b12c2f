package rider_test

import (
	"testing"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/rider"
	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() rider.Profile {
	return rider.Profile{
		Name:      "Rob Rider",
		Email:     "Rob@Example.com",
		Region:    "Dhaka",
		Districts: []string{"Mirpur", " ", "Uttara "},
		BikeBrand: "Honda",
	}
}

func TestNewRider(t *testing.T) {
	t.Run("should create pending available rider", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), validProfile(), time.Now())

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, rider.Pending, r.Status())
		assert.Equal(t, rider.Available, r.WorksStatus())
		assert.Equal(t, "rob@example.com", r.Email())
		assert.Equal(t, []string{"Mirpur", "Uttara"}, r.Profile().Districts)
	})

	t.Run("should require name and email", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), rider.Profile{}, time.Now())

		require.Error(t, err)
		assert.Nil(t, r)
		assert.ErrorIs(t, err, rider.ErrNameIsRequired)
		assert.ErrorIs(t, err, rider.ErrEmailIsRequired)
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := rider.NewRider(kernel.UUID{}, validProfile(), time.Now())

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRider_Validate(t *testing.T) {
	var zero rider.Rider

	assert.Equal(t, rider.ErrRiderIsNotConstructed, zero.Validate())
}

func TestRider_Review(t *testing.T) {
	t.Run("should reset works status on approval", func(t *testing.T) {
		r, err := rider.RestoreRider(kernel.NewUUID(), validProfile(), rider.Pending, rider.InDelivery, time.Now())
		require.NoError(t, err)

		require.NoError(t, r.Review(rider.Approved))

		assert.Equal(t, rider.Approved, r.Status())
		assert.Equal(t, rider.Available, r.WorksStatus())
	})

	t.Run("should reject unknown decision", func(t *testing.T) {
		r, err := rider.NewRider(kernel.NewUUID(), validProfile(), time.Now())
		require.NoError(t, err)

		err = r.Review("banned")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, rider.Pending, r.Status())
	})
}

func TestRider_ServesDistrict(t *testing.T) {
	r, err := rider.NewRider(kernel.NewUUID(), validProfile(), time.Now())
	require.NoError(t, err)

	assert.True(t, r.ServesDistrict("mirpur"))
	assert.False(t, r.ServesDistrict("Gulshan"))
}

func TestParseStatuses(t *testing.T) {
	s, err := rider.ParseWorksStatus("in_delivery")
	require.NoError(t, err)
	assert.Equal(t, rider.InDelivery, s)

	_, err = rider.ParseWorksStatus("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = rider.ParseApprovalStatus("maybe")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
