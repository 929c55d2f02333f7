package services

import (
	"context"
	"errors"
	"fmt"

	"cerocafe-backend/entity"
	"cerocafe-backend/pkg/payments"

	"gorm.io/gorm"
)

// PaymentFetcher is the slice of the gateway the ingestor needs.
type PaymentFetcher interface {
	GetPayment(ctx context.Context, paymentID string) (*payments.PaymentInfo, error)
}

// WebhookService turns asynchronous gateway events into exactly one order
// per approved payment, however many times the gateway delivers them.
type WebhookService struct {
	Orders  *OrderService
	Gateway PaymentFetcher
}

func NewWebhookService(orders *OrderService, gateway PaymentFetcher) *WebhookService {
	return &WebhookService{Orders: orders, Gateway: gateway}
}

// WebhookEvent is the gateway's notification shape: a type tag and the
// payment it refers to.
type WebhookEvent struct {
	Type      string
	PaymentID string
}

const eventTypePayment = "payment"

// HandleEvent processes one delivery. It returns the order backing the
// payment (freshly created or already stored) or nil when the event is a
// no-op. ErrGatewayUnavailable is the only error the caller should let the
// gateway retry on; everything else must be acknowledged.
func (s *WebhookService) HandleEvent(ctx context.Context, evt WebhookEvent) (*entity.Order, error) {
	if evt.Type != eventTypePayment {
		return nil, nil
	}
	if evt.PaymentID == "" {
		return nil, fmt.Errorf("%w: event carries no payment id", ErrIncompleteMetadata)
	}

	p, err := s.Gateway.GetPayment(ctx, evt.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	if p.Status != payments.StatusApproved {
		// not approved yet; the gateway notifies again on status change
		return nil, nil
	}

	meta := p.Metadata
	if meta == nil || len(meta.Items) == 0 {
		return nil, fmt.Errorf("%w: payment %s has no order metadata", ErrIncompleteMetadata, evt.PaymentID)
	}

	// pre-check saves a doomed insert on redelivery; the unique index on
	// payment_id remains the authoritative guard
	if existing, err := s.Orders.Repo.FindByPaymentID(evt.PaymentID); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	items := make([]OrderItemIn, 0, len(meta.Items))
	for _, it := range meta.Items {
		items = append(items, OrderItemIn{
			DishID:    it.DishID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	req := &CreateOrderReq{
		Items: items,
		Total: meta.Total,
		Customer: CustomerIn{
			AccountID: meta.Customer.AccountID,
			Name:      meta.Customer.Name,
			Phone:     meta.Customer.Phone,
			Email:     meta.Customer.Email,
		},
		// gateway checkouts are delivery orders; the metadata carries no
		// deliveryType to say otherwise
		DeliveryType: entity.DeliveryDelivery,
		Address:      meta.Customer.Address,
	}

	o, err := s.Orders.MaterializeFromPayment(evt.PaymentID, req)
	if err != nil {
		if errors.Is(err, ErrValidationFailed) {
			// malformed metadata is not going to fix itself on redelivery
			return nil, fmt.Errorf("%w: payment %s: %v", ErrIncompleteMetadata, evt.PaymentID, err)
		}
		return nil, err
	}
	return o, nil
}
