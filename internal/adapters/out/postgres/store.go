// Package postgres provides the GORM-backed Store that hands out repositories over a
// single shared *gorm.DB.
//
// There is no unit of work. Each repository call runs as its own statement, so a
// command that touches several collections performs independent writes in a fixed
// order. Column-targeted updates keep concurrent writers of different columns from
// overwriting each other.
//
// Usage:
//
//	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    return err
//	}
//	store := postgres.NewStore(db)
//	if err := store.Migrate(ctx); err != nil {
//	    return err
//	}
//	parcel, err := store.ParcelRepository().Get(ctx, id)
package postgres

import (
	"context"

	"courierdispatch/internal/adapters/out/postgres/parcelrepo"
	"courierdispatch/internal/adapters/out/postgres/paymentrepo"
	"courierdispatch/internal/adapters/out/postgres/riderrepo"
	"courierdispatch/internal/adapters/out/postgres/trackingrepo"
	"courierdispatch/internal/adapters/out/postgres/userrepo"
	"courierdispatch/internal/core/ports"

	"gorm.io/gorm"
)

// Models lists every table the service owns, in migration order.
func Models() []any {
	return []any{
		&parcelrepo.ParcelDTO{},
		&riderrepo.RiderDTO{},
		&paymentrepo.PaymentDTO{},
		&trackingrepo.TrackingDTO{},
		&userrepo.UserDTO{},
	}
}

// Store implements ports.Store.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the handle for read-side queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates the schema.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(Models()...)
}

func (s *Store) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(s.db)
}

func (s *Store) RiderRepository() ports.RiderRepository {
	return riderrepo.NewGormRiderRepository(s.db)
}

func (s *Store) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(s.db)
}

func (s *Store) TrackingRepository() ports.TrackingRepository {
	return trackingrepo.NewGormTrackingRepository(s.db)
}

func (s *Store) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(s.db)
}

var _ ports.Store = (*Store)(nil)
