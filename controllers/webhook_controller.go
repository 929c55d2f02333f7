package controllers

import (
	"errors"
	"log"
	"net/http"

	"cerocafe-backend/pkg/resp"
	"cerocafe-backend/services"

	"github.com/gin-gonic/gin"
)

type WebhookController struct {
	Ingestor *services.WebhookService
}

func NewWebhookController(ingestor *services.WebhookService) *WebhookController {
	return &WebhookController{Ingestor: ingestor}
}

type webhookEventIn struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// POST /webhooks/payments
//
// Acknowledge everything we can: the gateway redelivers on anything but a
// 2xx, and redelivering malformed or duplicate events helps nobody. Only a
// gateway outage (we could not even look the payment up) is worth a retry.
func (wc *WebhookController) Receive(c *gin.Context) {
	var in webhookEventIn
	if err := c.ShouldBindJSON(&in); err != nil {
		log.Printf("webhook: unparseable event: %v", err)
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	evt := services.WebhookEvent{Type: in.Type, PaymentID: in.Data.ID}
	o, err := wc.Ingestor.HandleEvent(c.Request.Context(), evt)
	if err != nil {
		if errors.Is(err, services.ErrGatewayUnavailable) {
			resp.BadGateway(c, err.Error())
			return
		}
		log.Printf("webhook: payment %s not processed: %v", evt.PaymentID, err)
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	if o != nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "orderNumber": o.OrderNumber})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
