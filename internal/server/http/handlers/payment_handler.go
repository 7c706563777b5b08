package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/innovshop/marketplace/internal/domain/errors"
	pkgAuth "github.com/innovshop/marketplace/internal/pkg/auth"
	"github.com/innovshop/marketplace/internal/server/http/dto"
)

// SignatureHeader carries the payment provider's request signature.
const SignatureHeader = "X-Payment-Signature"

// PaymentHandler processes payment provider webhooks.
type PaymentHandler struct {
	facade PaymentFacade
	secret string
}

// NewPaymentHandler constructs PaymentHandler. An empty secret disables
// signature verification.
func NewPaymentHandler(facade PaymentFacade, secret string) *PaymentHandler {
	return &PaymentHandler{facade: facade, secret: secret}
}

// Webhook handles POST /api/payments/webhook.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if h.secret != "" && !pkgAuth.VerifySignature(h.secret, body, c.GetHeader(SignatureHeader)) {
		c.Status(http.StatusUnauthorized)
		return
	}

	var event dto.PaymentEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if event.OrderReference == "" || event.PaymentIntentID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ConfirmPayment(c.Request.Context(), event.OrderReference, event.PaymentIntentID); err != nil {
		// An unknown reference still answers 200 so the provider stops
		// retrying the event.
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"status": "success", "note": "order not found"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
