package services

import (
	"regexp"
	"testing"

	"cerocafe-backend/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder_Pickup(t *testing.T) {
	svc, _ := newOrderService(t)

	o, err := svc.Create(pickupOrderReq())
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{4}$`), o.OrderNumber)
	assert.Equal(t, entity.StatusPending, o.Status)
	assert.Equal(t, entity.PaymentPending, o.PaymentStatus)
	assert.Nil(t, o.PaymentID)
	require.Len(t, o.Items, 1)
	assert.Equal(t, int64(10), o.Items[0].Subtotal)
}

func TestCreateOrder_SequentialNumbers(t *testing.T) {
	svc, _ := newOrderService(t)

	first, err := svc.Create(pickupOrderReq())
	require.NoError(t, err)
	second, err := svc.Create(pickupOrderReq())
	require.NoError(t, err)

	assert.Equal(t, "ORD-0001", first.OrderNumber)
	assert.Equal(t, "ORD-0002", second.OrderNumber)
}

func TestCreateOrder_RegeneratesNumberOnConflict(t *testing.T) {
	svc, db := newOrderService(t)

	// three historical orders with a gap in the numbering: count+1 lands
	// on the taken ORD-0004, so creation must regenerate and move on
	for _, num := range []string{"ORD-0001", "ORD-0003", "ORD-0004"} {
		require.NoError(t, db.Create(&entity.Order{
			OrderNumber:   num,
			Total:         10,
			CustomerName:  "Ana",
			CustomerPhone: "111",
			DeliveryType:  entity.DeliveryPickup,
			Status:        entity.StatusPending,
			PaymentStatus: entity.PaymentPending,
		}).Error)
	}

	o, err := svc.Create(pickupOrderReq())
	require.NoError(t, err)
	assert.Equal(t, "ORD-0005", o.OrderNumber)
}

func TestCreateOrder_Validation(t *testing.T) {
	svc, db := newOrderService(t)

	tests := []struct {
		name   string
		mutate func(*CreateOrderReq)
	}{
		{"empty items", func(r *CreateOrderReq) { r.Items = nil }},
		{"zero total", func(r *CreateOrderReq) { r.Total = 0 }},
		{"total mismatch", func(r *CreateOrderReq) { r.Total = 99 }},
		{"zero quantity", func(r *CreateOrderReq) { r.Items[0].Quantity = 0 }},
		{"missing name", func(r *CreateOrderReq) { r.Customer.Name = "" }},
		{"missing phone", func(r *CreateOrderReq) { r.Customer.Phone = "" }},
		{"bad delivery type", func(r *CreateOrderReq) { r.DeliveryType = "drone" }},
		{"delivery without address", func(r *CreateOrderReq) {
			r.DeliveryType = entity.DeliveryDelivery
			r.Address = ""
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := pickupOrderReq()
			tc.mutate(req)
			_, err := svc.Create(req)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}

	// nothing may have been persisted
	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestMaterializeFromPayment_Idempotent(t *testing.T) {
	svc, db := newOrderService(t)

	req := pickupOrderReq()
	req.DeliveryType = entity.DeliveryDelivery
	req.Address = "Av. Siempre Viva 742"

	first, err := svc.MaterializeFromPayment("pay-123", req)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaidPending, first.Status)
	assert.Equal(t, entity.PaymentApproved, first.PaymentStatus)
	require.NotNil(t, first.PaymentID)
	assert.Equal(t, "pay-123", *first.PaymentID)

	second, err := svc.MaterializeFromPayment("pay-123", req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Where("payment_id = ?", "pay-123").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMaterializeFromPayment_InsertRaceDedup(t *testing.T) {
	svc, db := newOrderService(t)

	req := pickupOrderReq()
	req.DeliveryType = entity.DeliveryDelivery
	req.Address = "Av. Siempre Viva 742"

	first, err := svc.MaterializeFromPayment("pay-9", req)
	require.NoError(t, err)

	// a concurrent ingestor that already passed the pre-check goes
	// straight to the insert; the unique payment_id index rejects it and
	// the stored order comes back instead
	paymentID := "pay-9"
	second, err := svc.insertNumbered(req, entity.StatusPaidPending, entity.PaymentApproved, &paymentID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.Order{}).Where("payment_id = ?", "pay-9").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTransition_Allowed(t *testing.T) {
	svc, _ := newOrderService(t)

	o, err := svc.Create(pickupOrderReq())
	require.NoError(t, err)

	o, err = svc.Transition(o.ID, entity.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, o.Status)

	o, err = svc.Transition(o.ID, entity.StatusReady)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReady, o.Status)

	o, err = svc.Transition(o.ID, entity.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCompleted, o.Status)
}

func TestTransition_Invalid(t *testing.T) {
	svc, _ := newOrderService(t)

	o, err := svc.Create(pickupOrderReq())
	require.NoError(t, err)

	_, err = svc.Transition(o.ID, entity.StatusReady)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := svc.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, got.Status)
}

func TestTransition_TerminalStates(t *testing.T) {
	svc, _ := newOrderService(t)

	o, err := svc.Create(pickupOrderReq())
	require.NoError(t, err)
	_, err = svc.Transition(o.ID, entity.StatusCancelled)
	require.NoError(t, err)

	for _, next := range []entity.OrderStatus{
		entity.StatusConfirmed, entity.StatusReady, entity.StatusCompleted, entity.StatusPending,
	} {
		_, err = svc.Transition(o.ID, next)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}
}

func TestTransition_OrderNotFound(t *testing.T) {
	svc, _ := newOrderService(t)
	_, err := svc.Transition(4242, entity.StatusConfirmed)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestList_StatusFilterNewestFirst(t *testing.T) {
	svc, _ := newOrderService(t)

	first, err := svc.Create(pickupOrderReq())
	require.NoError(t, err)
	second, err := svc.Create(pickupOrderReq())
	require.NoError(t, err)
	_, err = svc.Transition(first.ID, entity.StatusCancelled)
	require.NoError(t, err)

	all, err := svc.List(nil, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	pending := entity.StatusPending
	got, err := svc.List(&pending, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, second.ID, got[0].ID)

	bogus := entity.OrderStatus("shipped")
	_, err = svc.List(&bogus, 0)
	assert.ErrorIs(t, err, ErrValidationFailed)
}
