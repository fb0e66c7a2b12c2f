// Package riderrepo persists rider aggregates in the riders table.
package riderrepo

import (
	"database/sql/driver"
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/rider"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// RiderDTO is one row of the riders table.
type RiderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"not null"`
	Email            string    `gorm:"uniqueIndex;not null"`
	Phone            string
	Region           string
	Districts        Districts
	NID              string         `gorm:"column:nid"`
	BikeBrand        string
	BikeRegistration string
	Status           string    `gorm:"index;not null"`
	WorksStatus      string    `gorm:"index;not null"`
	CreatedAt        time.Time `gorm:"index"`
}

func (RiderDTO) TableName() string {
	return "riders"
}

// Districts is a text[] column on Postgres. Other dialects store the same array
// literal in a text column.
type Districts pq.StringArray

func (d Districts) Value() (driver.Value, error) {
	return pq.StringArray(d).Value()
}

func (d *Districts) Scan(src any) error {
	return (*pq.StringArray)(d).Scan(src)
}

// GormDataType gives the schema parser a type; GormDBDataType refines it per dialect
// when migrating.
func (Districts) GormDataType() string {
	return "text"
}

func (Districts) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

func fromDomain(r *rider.Rider) RiderDTO {
	p := r.Profile()
	return RiderDTO{
		ID:               r.ID().Bytes(),
		Name:             p.Name,
		Email:            p.Email,
		Phone:            p.Phone,
		Region:           p.Region,
		Districts:        Districts(p.Districts),
		NID:              p.NID,
		BikeBrand:        p.BikeBrand,
		BikeRegistration: p.BikeRegistration,
		Status:           r.Status().String(),
		WorksStatus:      r.WorksStatus().String(),
		CreatedAt:        r.CreatedAt(),
	}
}

func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(
		id,
		rider.Profile{
			Name:             dto.Name,
			Email:            dto.Email,
			Phone:            dto.Phone,
			Region:           dto.Region,
			Districts:        []string(dto.Districts),
			NID:              dto.NID,
			BikeBrand:        dto.BikeBrand,
			BikeRegistration: dto.BikeRegistration,
		},
		rider.ApprovalStatus(dto.Status),
		rider.WorksStatus(dto.WorksStatus),
		dto.CreatedAt,
	)
}
