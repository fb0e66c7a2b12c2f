package cmd

import (
	"log/slog"

	"courierdispatch/internal/adapters/in/http"
	"courierdispatch/internal/adapters/out/postgres"
	"courierdispatch/internal/core/application/availability"
	"courierdispatch/internal/core/application/ledger"
	"courierdispatch/internal/core/application/usecases/commands"
	"courierdispatch/internal/core/application/usecases/queries"
	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/core/ports"
	"courierdispatch/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot owns the single store handle and builds every handler from it.
type CompositionRoot struct {
	configs  Config
	gormDB   *gorm.DB
	store    *postgres.Store
	ledger   *ledger.Ledger
	tracker  *availability.Tracker
	provider ports.PaymentProvider
	verifier ports.IdentityVerifier
	logger   *slog.Logger

	transitions parcel.TransitionPolicy
	failures    ledger.FailurePolicy
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	provider ports.PaymentProvider,
	verifier ports.IdentityVerifier,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	store := postgres.NewStore(gormDB)

	trackingLedger, err := ledger.New(store.TrackingRepository(), logger)
	if err != nil {
		return nil, err
	}
	tracker, err := availability.NewTracker(store.RiderRepository())
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		configs:     configs,
		gormDB:      gormDB,
		store:       store,
		ledger:      trackingLedger,
		tracker:     tracker,
		provider:    provider,
		verifier:    verifier,
		logger:      logger,
		transitions: parcel.Lenient,
		failures:    ledger.Tolerate,
	}, nil
}

// Store exposes the store for schema migration.
func (c *CompositionRoot) Store() *postgres.Store {
	return c.store
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(c.store, c.ledger, c.failures)
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.store, c.tracker, c.ledger, c.transitions, c.failures)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	return commands.NewUpdateParcelStatusCommandHandler(c.store, c.tracker, c.ledger, c.transitions, c.failures)
}

func (c *CompositionRoot) CreateDeleteParcelCommandHandler() commands.DeleteParcelCommandHandler {
	return commands.NewDeleteParcelCommandHandler(c.store)
}

func (c *CompositionRoot) CreateCreateCheckoutSessionCommandHandler() commands.CreateCheckoutSessionCommandHandler {
	return commands.NewCreateCheckoutSessionCommandHandler(c.store, c.provider, c.configs.SiteDomain)
}

func (c *CompositionRoot) CreateReconcilePaymentCommandHandler() commands.ReconcilePaymentCommandHandler {
	return commands.NewReconcilePaymentCommandHandler(c.store, c.provider, c.ledger, c.failures)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.store)
}

func (c *CompositionRoot) CreateChangeUserRoleCommandHandler() commands.ChangeUserRoleCommandHandler {
	return commands.NewChangeUserRoleCommandHandler(c.store)
}

func (c *CompositionRoot) CreateRegisterRiderCommandHandler() commands.RegisterRiderCommandHandler {
	return commands.NewRegisterRiderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateReviewRiderCommandHandler() commands.ReviewRiderCommandHandler {
	return commands.NewReviewRiderCommandHandler(c.store)
}

func (c *CompositionRoot) CreateGetUserRoleQueryHandler() queries.GetUserRoleQueryHandler {
	return queries.NewGetUserRoleQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorksStatusDivergenceQueryHandler() queries.GetWorksStatusDivergenceQueryHandler {
	return queries.NewGetWorksStatusDivergenceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryStatusStatsQueryHandler() queries.GetDeliveryStatusStatsQueryHandler {
	return queries.NewGetDeliveryStatusStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateParcel:   c.CreateCreateParcelCommandHandler(),
		AssignRider:    c.CreateAssignRiderCommandHandler(),
		UpdateStatus:   c.CreateUpdateParcelStatusCommandHandler(),
		DeleteParcel:   c.CreateDeleteParcelCommandHandler(),
		CreateCheckout: c.CreateCreateCheckoutSessionCommandHandler(),
		ReconcilePay:   c.CreateReconcilePaymentCommandHandler(),
		RegisterUser:   c.CreateRegisterUserCommandHandler(),
		ChangeUserRole: c.CreateChangeUserRoleCommandHandler(),
		RegisterRider:  c.CreateRegisterRiderCommandHandler(),
		ReviewRider:    c.CreateReviewRiderCommandHandler(),

		TrackingLedger: c.ledger,

		GetParcel:        queries.NewGetParcelQueryHandler(c.gormDB),
		ListParcels:      queries.NewListParcelsQueryHandler(c.gormDB),
		RiderWorkload:    queries.NewGetRiderWorkloadQueryHandler(c.gormDB),
		StatusStats:      c.CreateGetDeliveryStatusStatsQueryHandler(),
		ListRiders:       queries.NewListRidersQueryHandler(c.gormDB),
		DeliveriesPerDay: queries.NewGetRiderDeliveriesPerDayQueryHandler(c.gormDB),
		ListPayments:     queries.NewListPaymentsQueryHandler(c.gormDB),
		SearchUsers:      queries.NewSearchUsersQueryHandler(c.gormDB),
		UserRole:         c.CreateGetUserRoleQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateAuthenticator() *http.Authenticator {
	return http.NewAuthenticator(c.verifier, c.CreateGetUserRoleQueryHandler())
}

// CreateRouter mounts the HTTP interface.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return http.NewRouter(c.CreateServer(), c.CreateAuthenticator(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetWorksStatusDivergenceQueryHandler(),
		c.CreateGetDeliveryStatusStatsQueryHandler(),
		c.configs.AuditSchedule,
		c.configs.StatsSchedule,
		c.logger,
	)
}
