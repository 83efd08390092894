package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/simpleshop/internal/server/http/dto"
)

// OrderHandler manages order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	req, ok := bindOrder(c)
	if !ok {
		return
	}
	request, err := req.ToModel()
	if err != nil {
		abortWithError(c, err)
		return
	}

	receipt, err := h.facade.PlaceOrder(c.Request.Context(), request)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReceiptResponse{
		NewCustomer: receipt.NewCustomer,
		CustomerID:  receipt.CustomerID,
		Sum:         receipt.Sum,
	})
}

// Sum handles POST /api/orders/sum.
func (h *OrderHandler) Sum(c *gin.Context) {
	req, ok := bindOrder(c)
	if !ok {
		return
	}
	request, err := req.ToModel()
	if err != nil {
		abortWithError(c, err)
		return
	}

	sum, err := h.facade.QuoteOrder(request)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SumResponse{Sum: sum})
}
