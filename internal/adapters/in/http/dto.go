package http

import (
	"time"

	"courierdispatch/internal/core/application/usecases/commands"
	"courierdispatch/internal/core/application/usecases/queries"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorResponse is the body of every non-2xx reply produced by a handler.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResponse is the body of the auth middleware rejections and of
// informational replies.
type MessageResponse struct {
	Message string `json:"message"`
}

type CreateParcelRequest struct {
	ParcelName       string              `json:"parcelName"`
	ParcelType       string              `json:"parcelType"`
	ParcelWeight     float64             `json:"parcelWeight" validate:"gte=0"`
	SenderName       string              `json:"senderName"`
	SenderEmail      openapi_types.Email `json:"senderEmail" validate:"required"`
	SenderPhone      string              `json:"senderPhone"`
	SenderRegion     string              `json:"senderRegion"`
	SenderDistrict   string              `json:"senderDistrict"`
	SenderAddress    string              `json:"senderAddress"`
	ReceiverName     string              `json:"receiverName" validate:"required"`
	ReceiverEmail    string              `json:"receiverEmail"`
	ReceiverPhone    string              `json:"receiverPhone"`
	ReceiverRegion   string              `json:"receiverRegion"`
	ReceiverDistrict string              `json:"receiverDistrict"`
	ReceiverAddress  string              `json:"receiverAddress"`
	Cost             int64               `json:"cost" validate:"gte=0"`
}

type CreateParcelResponse struct {
	InsertedID string `json:"insertedId"`
	TrackingID string `json:"trackingId"`
}

type AssignRiderRequest struct {
	RiderID    openapi_types.UUID `json:"riderId" validate:"required"`
	RiderEmail string             `json:"riderEmail"`
	RiderName  string             `json:"riderName"`
	TrackingID string             `json:"trackingId"`
}

type UpdateParcelStatusRequest struct {
	DeliveryStatus string              `json:"deliveryStatus" validate:"required"`
	RiderID        *openapi_types.UUID `json:"riderId,omitempty"`
	TrackingID     string              `json:"trackingId"`
}

// TransitionResponse is the step report of a multi-write parcel transition.
type TransitionResponse struct {
	ParcelUpdated   bool   `json:"parcelUpdated"`
	RiderUpdated    bool   `json:"riderUpdated"`
	TrackingEntryID uint64 `json:"trackingEntryId,omitempty"`
	TrackingError   string `json:"trackingError,omitempty"`
}

type ParcelResponse struct {
	ID               string    `json:"id"`
	TrackingID       string    `json:"trackingId"`
	ParcelName       string    `json:"parcelName"`
	ParcelType       string    `json:"parcelType"`
	ParcelWeight     float64   `json:"parcelWeight"`
	SenderName       string    `json:"senderName"`
	SenderEmail      string    `json:"senderEmail"`
	SenderPhone      string    `json:"senderPhone"`
	SenderRegion     string    `json:"senderRegion"`
	SenderDistrict   string    `json:"senderDistrict"`
	SenderAddress    string    `json:"senderAddress"`
	ReceiverName     string    `json:"receiverName"`
	ReceiverEmail    string    `json:"receiverEmail"`
	ReceiverPhone    string    `json:"receiverPhone"`
	ReceiverRegion   string    `json:"receiverRegion"`
	ReceiverDistrict string    `json:"receiverDistrict"`
	ReceiverAddress  string    `json:"receiverAddress"`
	Cost             int64     `json:"cost"`
	DeliveryStatus   string    `json:"deliveryStatus"`
	PaymentStatus    string    `json:"paymentStatus"`
	RiderID          string    `json:"riderId,omitempty"`
	RiderName        string    `json:"riderName,omitempty"`
	RiderEmail       string    `json:"riderEmail,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toParcelResponse(v queries.ParcelView) ParcelResponse {
	resp := ParcelResponse{
		ID:               v.ID.String(),
		TrackingID:       v.TrackingID,
		ParcelName:       v.ParcelName,
		ParcelType:       v.ParcelType,
		ParcelWeight:     v.Weight,
		SenderName:       v.Sender.Name,
		SenderEmail:      v.Sender.Email,
		SenderPhone:      v.Sender.Phone,
		SenderRegion:     v.Sender.Region,
		SenderDistrict:   v.Sender.District,
		SenderAddress:    v.Sender.Address,
		ReceiverName:     v.Receiver.Name,
		ReceiverEmail:    v.Receiver.Email,
		ReceiverPhone:    v.Receiver.Phone,
		ReceiverRegion:   v.Receiver.Region,
		ReceiverDistrict: v.Receiver.District,
		ReceiverAddress:  v.Receiver.Address,
		Cost:             v.Cost,
		DeliveryStatus:   v.DeliveryStatus,
		PaymentStatus:    v.PaymentStatus,
		RiderName:        v.RiderName,
		RiderEmail:       v.RiderEmail,
		CreatedAt:        v.CreatedAt,
	}
	if v.RiderID != nil {
		resp.RiderID = v.RiderID.String()
	}
	return resp
}

func toParcelResponses(views []queries.ParcelView) []ParcelResponse {
	out := make([]ParcelResponse, len(views))
	for i, v := range views {
		out[i] = toParcelResponse(v)
	}
	return out
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type RegisterRiderRequest struct {
	Name             string              `json:"name" validate:"required"`
	Email            openapi_types.Email `json:"email" validate:"required"`
	Phone            string              `json:"phone"`
	Region           string              `json:"region"`
	Districts        []string            `json:"districts"`
	NID              string              `json:"nid"`
	BikeBrand        string              `json:"bikeBrand"`
	BikeRegistration string              `json:"bikeRegistration"`
}

type ReviewRiderRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
	Email  string `json:"email"`
}

type ReviewRiderResponse struct {
	RiderUpdated bool `json:"riderUpdated"`
	UserPromoted bool `json:"userPromoted"`
}

type RiderResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	Region           string    `json:"region"`
	Districts        []string  `json:"districts"`
	NID              string    `json:"nid"`
	BikeBrand        string    `json:"bikeBrand"`
	BikeRegistration string    `json:"bikeRegistration"`
	Status           string    `json:"status"`
	WorksStatus      string    `json:"worksStatus"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toRiderResponse(v queries.RiderView) RiderResponse {
	districts := v.Districts
	if districts == nil {
		districts = []string{}
	}
	return RiderResponse{
		ID:               v.ID.String(),
		Name:             v.Name,
		Email:            v.Email,
		Phone:            v.Phone,
		Region:           v.Region,
		Districts:        districts,
		NID:              v.NID,
		BikeBrand:        v.BikeBrand,
		BikeRegistration: v.BikeRegistration,
		Status:           v.Status,
		WorksStatus:      v.WorksStatus,
		CreatedAt:        v.CreatedAt,
	}
}

type DeliveriesPerDayResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type CheckoutSessionRequest struct {
	ParcelID openapi_types.UUID `json:"parcelId" validate:"required"`
}

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

// ReconcileResponse covers the three outcomes of a payment confirmation. Only the
// fields of the outcome at hand are set.
type ReconcileResponse struct {
	Success       *bool            `json:"success,omitempty"`
	Message       string           `json:"message,omitempty"`
	ModifyParcel  *ParcelPayment   `json:"modifyParcel,omitempty"`
	PaymentInfo   *PaymentResponse `json:"paymentInfo,omitempty"`
	TransactionID string           `json:"transactionId,omitempty"`
	TrackingID    string           `json:"trackingId,omitempty"`
}

type ParcelPayment struct {
	ID             string `json:"id"`
	PaymentStatus  string `json:"paymentStatus"`
	DeliveryStatus string `json:"deliveryStatus"`
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	TransactionID string    `json:"transactionId"`
	ParcelID      string    `json:"parcelId"`
	ParcelName    string    `json:"parcelName"`
	TrackingID    string    `json:"trackingId"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	CustomerEmail string    `json:"customerEmail"`
	PaymentStatus string    `json:"paymentStatus"`
	PaidAt        time.Time `json:"paidAt"`
}

func toPaymentResponse(v queries.PaymentView) PaymentResponse {
	return PaymentResponse{
		ID:            v.ID.String(),
		TransactionID: v.TransactionID,
		ParcelID:      v.ParcelID.String(),
		ParcelName:    v.ParcelName,
		TrackingID:    v.TrackingID,
		Amount:        v.Amount(),
		Currency:      v.Currency,
		CustomerEmail: v.CustomerEmail,
		PaymentStatus: v.PaymentStatus,
		PaidAt:        v.PaidAt,
	}
}

func reconcileResponse(res commands.ReconcilePaymentResult) ReconcileResponse {
	if res.AlreadyExists {
		return ReconcileResponse{
			Message:       "already exists",
			TransactionID: res.TransactionID,
			TrackingID:    res.TrackingID.String(),
		}
	}

	success := res.Success
	if !success {
		return ReconcileResponse{Success: &success}
	}

	out := ReconcileResponse{
		Success:       &success,
		TransactionID: res.TransactionID,
		TrackingID:    res.TrackingID.String(),
	}
	if p := res.Parcel; p != nil {
		out.ModifyParcel = &ParcelPayment{
			ID:             p.ID().String(),
			PaymentStatus:  p.PaymentStatus().String(),
			DeliveryStatus: p.DeliveryStatus().String(),
		}
	}
	if pay := res.Payment; pay != nil {
		out.PaymentInfo = &PaymentResponse{
			ID:            pay.ID().String(),
			TransactionID: pay.TransactionID(),
			ParcelID:      pay.ParcelID().String(),
			ParcelName:    pay.ParcelName(),
			TrackingID:    pay.TrackingID().String(),
			Amount:        pay.Amount(),
			Currency:      pay.Currency(),
			CustomerEmail: pay.CustomerEmail(),
			PaymentStatus: pay.PaymentStatus(),
			PaidAt:        pay.PaidAt(),
		}
	}
	return out
}

type TrackingLogResponse struct {
	TrackingID string    `json:"trackingId"`
	Status     string    `json:"status"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"createdAt"`
}

type RegisterUserRequest struct {
	Email       openapi_types.Email `json:"email" validate:"required"`
	DisplayName string              `json:"displayName"`
	PhotoURL    string              `json:"photoURL"`
}

type InsertedResponse struct {
	InsertedID string `json:"insertedId"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoURL"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user rider admin"`
}
