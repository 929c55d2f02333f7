package services

import (
	"context"
	"errors"
	"testing"

	"cerocafe-backend/entity"
	"cerocafe-backend/pkg/payments"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway answers payment lookups from a map, like the real gateway
// answers GET /v1/payments/:id.
type fakeGateway struct {
	payments map[string]*payments.PaymentInfo
	down     bool
	calls    int
}

func (f *fakeGateway) GetPayment(ctx context.Context, id string) (*payments.PaymentInfo, error) {
	f.calls++
	if f.down {
		return nil, errors.New("connection refused")
	}
	p, ok := f.payments[id]
	if !ok {
		return nil, errors.New("payment not found")
	}
	return p, nil
}

func approvedPayment(id string) *payments.PaymentInfo {
	return &payments.PaymentInfo{
		ID:     id,
		Status: payments.StatusApproved,
		Metadata: &payments.OrderMetadata{
			Items: []payments.MetadataItem{
				{DishID: 1, Name: "Latte", UnitPrice: 5, Quantity: 2},
			},
			Customer: payments.MetadataCustomer{
				Name:    "Ana",
				Phone:   "111",
				Address: "Av. Siempre Viva 742",
			},
			Total: 10,
		},
	}
}

func newWebhookService(t *testing.T, gw *fakeGateway) (*WebhookService, *OrderService) {
	orders, _ := newOrderService(t)
	return NewWebhookService(orders, gw), orders
}

func TestHandleEvent_MaterializesPaidOrder(t *testing.T) {
	gw := &fakeGateway{payments: map[string]*payments.PaymentInfo{"p1": approvedPayment("p1")}}
	svc, orders := newWebhookService(t, gw)

	o, err := svc.HandleEvent(context.Background(), WebhookEvent{Type: "payment", PaymentID: "p1"})
	require.NoError(t, err)
	require.NotNil(t, o)
	assert.Equal(t, entity.StatusPaidPending, o.Status)
	assert.Equal(t, entity.PaymentApproved, o.PaymentStatus)
	assert.Equal(t, entity.DeliveryDelivery, o.DeliveryType)
	assert.Equal(t, "Av. Siempre Viva 742", o.Address)
	require.NotNil(t, o.PaymentID)
	assert.Equal(t, "p1", *o.PaymentID)

	stored, err := orders.Get(o.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Latte", stored.Items[0].Name)
}

func TestHandleEvent_DuplicateDeliveryIsNoOp(t *testing.T) {
	gw := &fakeGateway{payments: map[string]*payments.PaymentInfo{"p1": approvedPayment("p1")}}
	svc, orders := newWebhookService(t, gw)
	evt := WebhookEvent{Type: "payment", PaymentID: "p1"}

	first, err := svc.HandleEvent(context.Background(), evt)
	require.NoError(t, err)
	second, err := svc.HandleEvent(context.Background(), evt)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := orders.List(nil, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestHandleEvent_IgnoresOtherEventTypes(t *testing.T) {
	gw := &fakeGateway{}
	svc, _ := newWebhookService(t, gw)

	o, err := svc.HandleEvent(context.Background(), WebhookEvent{Type: "merchant_order", PaymentID: "p1"})
	require.NoError(t, err)
	assert.Nil(t, o)
	assert.Zero(t, gw.calls)
}

func TestHandleEvent_UnapprovedPaymentIsNoOp(t *testing.T) {
	p := approvedPayment("p1")
	p.Status = "in_process"
	gw := &fakeGateway{payments: map[string]*payments.PaymentInfo{"p1": p}}
	svc, orders := newWebhookService(t, gw)

	o, err := svc.HandleEvent(context.Background(), WebhookEvent{Type: "payment", PaymentID: "p1"})
	require.NoError(t, err)
	assert.Nil(t, o)

	all, err := orders.List(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestHandleEvent_IncompleteMetadata(t *testing.T) {
	missing := approvedPayment("p1")
	missing.Metadata = nil
	malformed := approvedPayment("p2")
	malformed.Metadata.Customer.Phone = ""
	gw := &fakeGateway{payments: map[string]*payments.PaymentInfo{"p1": missing, "p2": malformed}}
	svc, orders := newWebhookService(t, gw)

	_, err := svc.HandleEvent(context.Background(), WebhookEvent{Type: "payment", PaymentID: "p1"})
	assert.ErrorIs(t, err, ErrIncompleteMetadata)

	_, err = svc.HandleEvent(context.Background(), WebhookEvent{Type: "payment", PaymentID: "p2"})
	assert.ErrorIs(t, err, ErrIncompleteMetadata)

	all, err := orders.List(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestHandleEvent_GatewayDown(t *testing.T) {
	gw := &fakeGateway{down: true}
	svc, _ := newWebhookService(t, gw)

	_, err := svc.HandleEvent(context.Background(), WebhookEvent{Type: "payment", PaymentID: "p1"})
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}
