// Package trackingrepo is the append-only tracking ledger table.
package trackingrepo

import (
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/tracking"
)

// TrackingDTO is one ledger row. Seq is assigned by the database and defines order.
type TrackingDTO struct {
	Seq        uint64    `gorm:"primaryKey;autoIncrement"`
	TrackingID string    `gorm:"index;not null"`
	Status     string    `gorm:"not null"`
	Details    string
	CreatedAt  time.Time
}

func (TrackingDTO) TableName() string {
	return "trackings"
}

func fromDomain(e *tracking.Entry) TrackingDTO {
	return TrackingDTO{
		TrackingID: e.TrackingID().String(),
		Status:     e.Status(),
		Details:    e.Details(),
		CreatedAt:  e.CreatedAt(),
	}
}

func toDomain(dto TrackingDTO) (*tracking.Entry, error) {
	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}
	return tracking.RestoreEntry(dto.Seq, trackingID, dto.Status, dto.Details, dto.CreatedAt), nil
}
