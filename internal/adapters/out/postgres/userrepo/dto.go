// Package userrepo persists user accounts.
package userrepo

import (
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email       string    `gorm:"uniqueIndex;not null"`
	DisplayName string
	PhotoURL    string `gorm:"column:photo_url"`
	Role        string `gorm:"not null;default:user"`
	CreatedAt   time.Time `gorm:"index"`
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:          u.ID().Bytes(),
		Email:       u.Email(),
		DisplayName: u.DisplayName(),
		PhotoURL:    u.PhotoURL(),
		Role:        u.Role().String(),
		CreatedAt:   u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, dto.Email, dto.DisplayName, dto.PhotoURL, user.Role(dto.Role), dto.CreatedAt), nil
}
