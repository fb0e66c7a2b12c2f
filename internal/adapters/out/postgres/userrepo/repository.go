package userrepo

import (
	"context"

	"courierdispatch/internal/adapters/out/postgres/dberr"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Create(&dto).Error
	return dberr.Insert(err, "email", dto.Email)
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.Lookup(err, "userId", id)
	}
	return toDomain(dto)
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	email = user.NormalizeEmail(email)

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		return nil, dberr.Lookup(err, "email", email)
	}
	return toDomain(dto)
}

func (r *GormUserRepository) UpdateRole(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("role", aggregate.Role().String())
	return dberr.Affected(result, "userId", aggregate.ID())
}
