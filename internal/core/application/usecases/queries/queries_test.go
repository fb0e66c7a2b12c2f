package queries_test

import (
	"testing"

	"courierdispatch/internal/core/application/usecases/queries"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"get parcel", queries.GetParcelQuery{}.Validate(), queries.ErrGetParcelQueryIsNotConstructed},
		{"list parcels", queries.ListParcelsQuery{}.Validate(), queries.ErrListParcelsQueryIsNotConstructed},
		{"workload", queries.GetRiderWorkloadQuery{}.Validate(), queries.ErrGetRiderWorkloadQueryIsNotConstructed},
		{"stats", queries.GetDeliveryStatusStatsQuery{}.Validate(), queries.ErrGetDeliveryStatusStatsQueryIsNotConstructed},
		{"payments", queries.ListPaymentsQuery{}.Validate(), queries.ErrListPaymentsQueryIsNotConstructed},
		{"riders", queries.ListRidersQuery{}.Validate(), queries.ErrListRidersQueryIsNotConstructed},
		{"users", queries.SearchUsersQuery{}.Validate(), queries.ErrSearchUsersQueryIsNotConstructed},
		{"role", queries.GetUserRoleQuery{}.Validate(), queries.ErrGetUserRoleQueryIsNotConstructed},
		{"per day", queries.GetRiderDeliveriesPerDayQuery{}.Validate(), queries.ErrGetRiderDeliveriesPerDayQueryIsNotConstructed},
		{"divergence", queries.GetWorksStatusDivergenceQuery{}.Validate(), queries.ErrGetWorksStatusDivergenceQueryIsNotConstructed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.ErrorIs(t, tt.err, tt.want)
		})
	}
}

func TestNewGetParcelQuery_RequiresID(t *testing.T) {
	_, err := queries.NewGetParcelQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	query, err := queries.NewGetParcelQuery(kernel.NewUUID())
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestNewListParcelsQuery_RejectsUnknownStatus(t *testing.T) {
	_, err := queries.NewListParcelsQuery("", "lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	query, err := queries.NewListParcelsQuery("Sam@Example.com", "")
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestNewGetRiderWorkloadQuery_RequiresEmail(t *testing.T) {
	_, err := queries.NewGetRiderWorkloadQuery("  ", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewListRidersQuery_ValidatesFilters(t *testing.T) {
	_, err := queries.NewListRidersQuery("sleeping", "resting", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	query, err := queries.NewListRidersQuery("approved", "available", "Mirpur")
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}

func TestNewGetUserRoleQuery_RequiresEmail(t *testing.T) {
	_, err := queries.NewGetUserRoleQuery("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPaymentView_Amount(t *testing.T) {
	assert.InDelta(t, 150.25, queries.PaymentView{AmountTotal: 15025}.Amount(), 0.0001)
}
