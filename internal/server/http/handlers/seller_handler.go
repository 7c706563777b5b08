package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/server/http/dto"
)

// SellerHandler manages seller onboarding and administration endpoints.
type SellerHandler struct {
	facade MarketplaceFacade
}

// NewSellerHandler constructs SellerHandler.
func NewSellerHandler(facade MarketplaceFacade) *SellerHandler {
	return &SellerHandler{facade: facade}
}

// Apply handles POST /api/seller/apply.
func (h *SellerHandler) Apply(c *gin.Context) {
	var req dto.SellerApplication
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.ShopName == "" || req.Slug == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	seller := &model.Seller{
		ShopName:    req.ShopName,
		Slug:        req.Slug,
		Description: req.Description,
		Country:     req.Country,
		City:        req.City,
		IBAN:        req.IBAN,
	}
	created, err := h.facade.ApplyAsSeller(c.Request.Context(), CurrentUserID(c), seller)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSellerResponse(created))
}

// ChangeStatus handles PATCH /api/admin/sellers/:id/status.
func (h *SellerHandler) ChangeStatus(c *gin.Context) {
	sellerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.SellerStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	actor, err := h.facade.ActorFor(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if !actor.Admin {
		c.Status(http.StatusForbidden)
		return
	}

	seller, err := h.facade.ChangeSellerStatus(c.Request.Context(), sellerID, model.SellerStatus(req.Status))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSellerResponse(seller))
}
