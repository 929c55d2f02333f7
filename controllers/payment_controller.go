package controllers

import (
	"context"

	"cerocafe-backend/pkg/payments"
	"cerocafe-backend/pkg/resp"
	"cerocafe-backend/services"
	"cerocafe-backend/utils"

	"github.com/gin-gonic/gin"
)

// PreferenceCreator is the checkout-side slice of the payment gateway.
type PreferenceCreator interface {
	CreatePreference(ctx context.Context, meta *payments.OrderMetadata) (*payments.Preference, error)
}

type PaymentController struct {
	Gateway PreferenceCreator
}

func NewPaymentController(gateway PreferenceCreator) *PaymentController {
	return &PaymentController{Gateway: gateway}
}

type checkoutReq struct {
	services.CreateOrderReq
}

// POST /payments/checkout — registers the order snapshot with the gateway
// and returns the redirect URL. The order itself is only materialized when
// the payment webhook confirms approval.
func (pc *PaymentController) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if uid := utils.CurrentUserID(c); uid != 0 && req.Customer.AccountID == nil {
		req.Customer.AccountID = &uid
	}
	if err := req.Validate(); err != nil {
		serviceError(c, err)
		return
	}

	items := make([]payments.MetadataItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, payments.MetadataItem{
			DishID:    it.DishID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
		})
	}
	meta := &payments.OrderMetadata{
		Items: items,
		Customer: payments.MetadataCustomer{
			AccountID: req.Customer.AccountID,
			Name:      req.Customer.Name,
			Phone:     req.Customer.Phone,
			Email:     req.Customer.Email,
			Address:   req.Address,
		},
		Total: req.Total,
	}

	pref, err := pc.Gateway.CreatePreference(c.Request.Context(), meta)
	if err != nil {
		resp.BadGateway(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"preferenceId": pref.ID, "redirectUrl": pref.InitPoint})
}
