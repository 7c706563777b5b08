package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/server/http/dto"
)

// ReviewHandler manages product review endpoints.
type ReviewHandler struct {
	facade MarketplaceFacade
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(facade MarketplaceFacade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// Create handles POST /api/products/:id/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	review := &model.ProductReview{
		ProductID: productID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	created, err := h.facade.AddReview(c.Request.Context(), CurrentUserID(c), review)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toReviewResponse(created))
}

// Update handles PATCH /api/reviews/:id.
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	actor, err := h.facade.ActorFor(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	updated, err := h.facade.UpdateReview(c.Request.Context(), actor, &model.ProductReview{
		ID:      reviewID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReviewResponse(updated))
}

// Delete handles DELETE /api/reviews/:id.
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	actor, err := h.facade.ActorFor(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	if err := h.facade.DeleteReview(c.Request.Context(), actor, reviewID); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
