package queries

import (
	"time"

	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelView is the read model of one parcels row.
type ParcelView struct {
	ID             kernel.UUID
	TrackingID     string
	ParcelName     string
	ParcelType     string
	Weight         float64
	Sender         parcel.Party
	Receiver       parcel.Party
	Cost           int64
	DeliveryStatus string
	PaymentStatus  string
	RiderID        *kernel.UUID
	RiderName      string
	RiderEmail     string
	CreatedAt      time.Time
}

const parcelColumns = `
	id, tracking_id, parcel_name, parcel_type, weight,
	sender_name, sender_email, sender_phone, sender_region, sender_district, sender_address,
	receiver_name, receiver_email, receiver_phone, receiver_region, receiver_district, receiver_address,
	cost, delivery_status, payment_status, rider_id, rider_name, rider_email, created_at`

type parcelRow struct {
	ID               uuid.UUID
	TrackingID       string
	ParcelName       string
	ParcelType       string
	Weight           float64
	SenderName       string
	SenderEmail      string
	SenderPhone      string
	SenderRegion     string
	SenderDistrict   string
	SenderAddress    string
	ReceiverName     string
	ReceiverEmail    string
	ReceiverPhone    string
	ReceiverRegion   string
	ReceiverDistrict string
	ReceiverAddress  string
	Cost             int64
	DeliveryStatus   string
	PaymentStatus    string
	RiderID          *uuid.UUID
	RiderName        string
	RiderEmail       string
	CreatedAt        time.Time
}

func (r parcelRow) toView() (ParcelView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return ParcelView{}, err
	}

	view := ParcelView{
		ID:         id,
		TrackingID: r.TrackingID,
		ParcelName: r.ParcelName,
		ParcelType: r.ParcelType,
		Weight:     r.Weight,
		Sender: parcel.Party{
			Name:     r.SenderName,
			Email:    r.SenderEmail,
			Phone:    r.SenderPhone,
			Region:   r.SenderRegion,
			District: r.SenderDistrict,
			Address:  r.SenderAddress,
		},
		Receiver: parcel.Party{
			Name:     r.ReceiverName,
			Email:    r.ReceiverEmail,
			Phone:    r.ReceiverPhone,
			Region:   r.ReceiverRegion,
			District: r.ReceiverDistrict,
			Address:  r.ReceiverAddress,
		},
		Cost:           r.Cost,
		DeliveryStatus: r.DeliveryStatus,
		PaymentStatus:  r.PaymentStatus,
		RiderName:      r.RiderName,
		RiderEmail:     r.RiderEmail,
		CreatedAt:      r.CreatedAt,
	}

	if r.RiderID != nil {
		riderID, err := kernel.UUIDFromBytes(r.RiderID[:])
		if err != nil {
			return ParcelView{}, err
		}
		view.RiderID = &riderID
	}

	return view, nil
}

func parcelViews(rows []parcelRow) ([]ParcelView, error) {
	views := make([]ParcelView, 0, len(rows))
	for _, row := range rows {
		view, err := row.toView()
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
