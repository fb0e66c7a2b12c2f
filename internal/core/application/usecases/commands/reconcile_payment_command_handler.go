package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"courierdispatch/internal/core/application/ledger"
	"courierdispatch/internal/core/domain/model/kernel"
	"courierdispatch/internal/core/domain/model/parcel"
	"courierdispatch/internal/core/domain/model/payment"
	"courierdispatch/internal/core/ports"
	"courierdispatch/internal/pkg/errs"
)

const (
	// SessionPaid is the provider payment status of a captured checkout.
	SessionPaid = "paid"

	MetadataParcelID   = "parcelId"
	MetadataTrackingID = "trackingId"

	paymentProviderName = "payment provider"
)

// ReconcilePaymentResult is the outcome of one confirmation.
//
// Success is false only when the provider reports the session as not paid.
// AlreadyExists is set when the transaction had been recorded before; no write
// happened in that case.
type ReconcilePaymentResult struct {
	Success       bool
	AlreadyExists bool
	TransactionID string
	TrackingID    kernel.TrackingID
	Parcel        *parcel.Parcel
	Payment       *payment.Payment
	Ledger        ledger.AppendResult
}

// ReconcilePaymentCommandHandler records a paid checkout exactly once.
//
// Steps:
//  1. retrieve the session from the provider
//  2. stop with AlreadyExists when a payment with the session's transaction id exists
//  3. stop with Success=false when the session is not paid
//  4. mark the parcel paid and pending-pickup
//  5. insert the payment row
//  6. append parcel_paid under the parcel's existing tracking id
//
// A concurrent duplicate that loses the race at step 5 on the unique transaction id
// is reported as AlreadyExists. The tracking id is never regenerated.
type ReconcilePaymentCommandHandler struct {
	store    ReconcileStore
	provider ports.PaymentProvider
	ledger   TrackingLedger
	failures ledger.FailurePolicy
	now      func() time.Time
}

func NewReconcilePaymentCommandHandler(
	store ReconcileStore,
	provider ports.PaymentProvider,
	trackingLedger TrackingLedger,
	failures ledger.FailurePolicy,
) ReconcilePaymentCommandHandler {
	return ReconcilePaymentCommandHandler{
		store:    store,
		provider: provider,
		ledger:   trackingLedger,
		failures: failures,
		now:      time.Now,
	}
}

func (h ReconcilePaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcilePaymentCommand,
) (ReconcilePaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReconcilePaymentResult{}, err
	}

	session, err := h.provider.RetrieveCheckoutSession(ctx, cmd.SessionID())
	if err != nil {
		if errors.Is(err, errs.ErrUpstreamFailure) || errors.Is(err, errs.ErrObjectNotFound) {
			return ReconcilePaymentResult{}, err
		}
		return ReconcilePaymentResult{}, errs.NewUpstreamFailureErrorWithCause(paymentProviderName, err)
	}

	payments := h.store.PaymentRepository()
	transactionID := strings.TrimSpace(session.PaymentIntentID)

	if transactionID != "" {
		existing, err := payments.GetByTransactionID(ctx, transactionID)
		switch {
		case err == nil:
			return alreadyReconciled(existing), nil
		case !errors.Is(err, errs.ErrObjectNotFound):
			return ReconcilePaymentResult{}, err
		}
	}

	if session.PaymentStatus != SessionPaid {
		return ReconcilePaymentResult{Success: false, TransactionID: transactionID}, nil
	}
	if transactionID == "" {
		return ReconcilePaymentResult{}, payment.ErrTransactionIDIsRequired
	}

	parcelID, err := kernel.UUIDFromString(session.Metadata[MetadataParcelID])
	if err != nil {
		return ReconcilePaymentResult{}, errs.NewValueIsInvalidErrorWithCause(MetadataParcelID, err)
	}

	parcels := h.store.ParcelRepository()
	p, err := parcels.Get(ctx, parcelID)
	if err != nil {
		return ReconcilePaymentResult{}, err
	}

	trackingID := p.TrackingID()
	if raw := strings.TrimSpace(session.Metadata[MetadataTrackingID]); raw != "" {
		if trackingID, err = kernel.TrackingIDFromString(raw); err != nil {
			return ReconcilePaymentResult{}, err
		}
	}

	p.MarkPaid()
	if err = parcels.UpdatePaymentState(ctx, p); err != nil {
		return ReconcilePaymentResult{}, err
	}

	paid, err := payment.NewPayment(kernel.NewUUID(), payment.Receipt{
		TransactionID: transactionID,
		ParcelID:      p.ID(),
		ParcelName:    p.Name(),
		TrackingID:    trackingID,
		AmountTotal:   session.AmountTotal,
		Currency:      session.Currency,
		CustomerEmail: session.CustomerEmail,
		PaymentStatus: session.PaymentStatus,
		PaidAt:        h.now(),
	})
	if err != nil {
		return ReconcilePaymentResult{}, err
	}

	if err = payments.Add(ctx, paid); err != nil {
		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return ReconcilePaymentResult{}, err
		}
		existing, lookupErr := payments.GetByTransactionID(ctx, transactionID)
		if lookupErr != nil {
			return ReconcilePaymentResult{}, errors.Join(err, lookupErr)
		}
		return alreadyReconciled(existing), nil
	}

	res := ReconcilePaymentResult{
		Success:       true,
		TransactionID: transactionID,
		TrackingID:    trackingID,
		Parcel:        p,
		Payment:       paid,
		Ledger:        h.ledger.Append(ctx, trackingID, parcel.MarkerPaid.String()),
	}
	return res, h.failures.Settle(res.Ledger)
}

func alreadyReconciled(existing *payment.Payment) ReconcilePaymentResult {
	return ReconcilePaymentResult{
		Success:       true,
		AlreadyExists: true,
		TransactionID: existing.TransactionID(),
		TrackingID:    existing.TrackingID(),
		Payment:       existing,
	}
}
