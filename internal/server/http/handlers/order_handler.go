package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/innovshop/marketplace/internal/domain/errors"
	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/server/http/dto"
)

// OrderHandler manages checkout and order endpoints.
type OrderHandler struct {
	facade MarketplaceFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade MarketplaceFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	delivery := model.DeliveryAddress{
		FirstName: req.Delivery.FirstName,
		LastName:  req.Delivery.LastName,
		Street:    req.Delivery.Street,
		ZipCode:   req.Delivery.ZipCode,
		City:      req.Delivery.City,
		Country:   req.Delivery.Country,
		Phone:     req.Delivery.Phone,
	}

	orders, err := h.facade.PlaceOrder(c.Request.Context(), userID, req.CartID, delivery, req.PaymentMethod, req.ShippingMethod)
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusCreated, response)
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	orders, err := h.facade.Orders(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Get handles GET /api/orders/:reference.
func (h *OrderHandler) Get(c *gin.Context) {
	userID := CurrentUserID(c)

	order, err := h.facade.OrderByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	if order.UserID != userID {
		actor, err := h.facade.ActorFor(c.Request.Context(), userID)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		if !actor.Admin {
			c.Status(http.StatusForbidden)
			return
		}
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// ChangeStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) ChangeStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	actor, err := h.facade.ActorFor(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	order, err := h.facade.ChangeOrderStatus(c.Request.Context(), actor, orderID, model.OrderStatus(req.Status))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}
