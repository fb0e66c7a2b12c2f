// Package parcelrepo persists parcel aggregates in the parcels table.
package parcelrepo

import (
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO is one row of the parcels table.
type ParcelDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID     string    `gorm:"uniqueIndex;not null"`
	ParcelName     string
	ParcelType     string
	Weight         float64
	Sender         PartyDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver       PartyDTO `gorm:"embedded;embeddedPrefix:receiver_"`
	Cost           int64
	DeliveryStatus string     `gorm:"index;not null"`
	PaymentStatus  string     `gorm:"not null"`
	RiderID        *uuid.UUID `gorm:"type:uuid;index"`
	RiderName      string
	RiderEmail     string    `gorm:"index"`
	CreatedAt      time.Time `gorm:"index"`
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

// PartyDTO is embedded twice, as sender_* and receiver_* columns.
type PartyDTO struct {
	Name     string
	Email    string `gorm:"index"`
	Phone    string
	Region   string
	District string
	Address  string
}

func partyFromDomain(p parcel.Party) PartyDTO {
	return PartyDTO(p)
}

func fromDomain(p *parcel.Parcel) ParcelDTO {
	d := p.Details()
	dto := ParcelDTO{
		ID:             p.ID().Bytes(),
		TrackingID:     p.TrackingID().String(),
		ParcelName:     d.Name,
		ParcelType:     d.Type,
		Weight:         d.Weight,
		Sender:         partyFromDomain(d.Sender),
		Receiver:       partyFromDomain(d.Receiver),
		Cost:           d.Cost,
		DeliveryStatus: p.DeliveryStatus().String(),
		PaymentStatus:  p.PaymentStatus().String(),
		CreatedAt:      p.CreatedAt(),
	}
	if r := p.Rider(); r != nil {
		riderID := r.RiderID.Bytes()
		dto.RiderID = &riderID
		dto.RiderName = r.Name
		dto.RiderEmail = r.Email
	}
	return dto
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	var rider *parcel.RiderAssignment
	if dto.RiderID != nil {
		riderID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		rider = &parcel.RiderAssignment{RiderID: riderID, Name: dto.RiderName, Email: dto.RiderEmail}
	}

	return parcel.RestoreParcel(
		id,
		trackingID,
		parcel.Details{
			Name:     dto.ParcelName,
			Type:     dto.ParcelType,
			Weight:   dto.Weight,
			Sender:   parcel.Party(dto.Sender),
			Receiver: parcel.Party(dto.Receiver),
			Cost:     dto.Cost,
		},
		parcel.DeliveryStatus(dto.DeliveryStatus),
		parcel.PaymentStatus(dto.PaymentStatus),
		rider,
		dto.CreatedAt,
	)
}
