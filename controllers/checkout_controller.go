package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"quickshop/models"
)

type CheckoutController struct{}

func NewCheckoutController() *CheckoutController {
	return &CheckoutController{}
}

// Checkout godoc
// @Summary Checkout
// @Description Place an order from the current cart. Not implemented yet; orders and order_products exist in the schema only.
// @Tags Checkout
// @Security BearerAuth
// @Produce json
// @Failure 501 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, models.ErrorResponse{
		Success: false,
		Message: "Checkout is not implemented yet",
	})
}
