package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/innovshop/marketplace/internal/domain/model"
	"github.com/innovshop/marketplace/internal/server/http/dto"
	"github.com/innovshop/marketplace/internal/usecase"
)

// LotHandler manages seller lot endpoints.
type LotHandler struct {
	facade MarketplaceFacade
}

// NewLotHandler constructs LotHandler.
func NewLotHandler(facade MarketplaceFacade) *LotHandler {
	return &LotHandler{facade: facade}
}

// Patch handles PATCH /api/lots/:id.
func (h *LotHandler) Patch(c *gin.Context) {
	lotID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.LotPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	patch := usecase.LotPatch{Fields: req.Fields}
	for _, field := range req.Fields {
		if field == "status" {
			status := model.LotStatus(req.Status)
			patch.Status = &status
			break
		}
	}

	actor, err := h.facade.ActorFor(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	lot, err := h.facade.ChangeLotStatus(c.Request.Context(), actor, lotID, patch)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toLotResponse(*lot))
}
