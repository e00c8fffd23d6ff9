package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monlivredecuisine/backend/internal/service"
	"github.com/monlivredecuisine/backend/internal/types"
)

// FridgeHandler serves the fridge search endpoint.
type FridgeHandler struct {
	fridge *service.FridgeService
}

func NewFridgeHandler(fridge *service.FridgeService) *FridgeHandler {
	return &FridgeHandler{fridge: fridge}
}

// Search ranks recipes by pantry overlap. An empty pantry (after trimming)
// yields an empty list rather than an error.
func (h *FridgeHandler) Search(c *gin.Context) {
	var req types.FridgeSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	results, err := h.fridge.Search(c.Request.Context(), req.Ingredients, req.Strict)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
