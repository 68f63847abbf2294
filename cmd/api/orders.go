package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ropa-market/internal/auth"
	"github.com/MikeMC777/ropa-market/internal/httpx"
	"github.com/MikeMC777/ropa-market/internal/order"
)

// createOrderHandler godoc
// @Summary  Place an order
// @Description Reserves every referenced product; a product already reserved or sold yields 409. Works for guests without a token.
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body body order.CreateOrderRequest true "order"
// @Success  201 {object} order.Order
// @Failure  400 {object} httpx.HTTPError
// @Failure  409 {object} httpx.HTTPError
// @Router   /api/orders [post]
func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.CreateOrderRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		for _, it := range in.Items {
			if it.ProductID != nil && !httpx.IsUUID(*it.ProductID) {
				httpx.BadRequest(c, "invalid productId")
				return
			}
		}
		var buyer *string
		if id, ok := auth.FromContext(c); ok {
			buyer = &id.UserID
		}
		o, err := svc.Create(c.Request.Context(), buyer, in)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

// myOrdersHandler godoc
// @Summary   Orders placed by the caller, newest first
// @Tags      orders
// @Produce   json
// @Security  BearerAuth
// @Success   200 {array} order.Order
// @Router    /api/orders/mine [get]
func myOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := httpx.Paging(c)
		out, err := svc.ListForBuyer(c.Request.Context(), auth.MustIdentity(c).UserID, limit, offset)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// soldOrdersHandler godoc
// @Summary   Orders containing the caller's products, items narrowed to them
// @Tags      orders
// @Produce   json
// @Security  BearerAuth
// @Success   200 {array} order.Order
// @Router    /api/orders/sold [get]
func soldOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := httpx.Paging(c)
		out, err := svc.ListForSeller(c.Request.Context(), auth.MustIdentity(c).UserID, limit, offset)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// getOrderHandler godoc
// @Summary   Order detail
// @Tags      orders
// @Produce   json
// @Security  BearerAuth
// @Param     id path string true "order id"
// @Success   200 {object} order.Order
// @Failure   404 {object} httpx.HTTPError
// @Router    /api/orders/{id} [get]
func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.UUIDParam(c, "id")
		if !ok {
			return
		}
		o, err := svc.Get(c.Request.Context(), id, auth.MustIdentity(c))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// cancelOrderHandler godoc
// @Summary   Cancel a pending order placed by the caller
// @Tags      orders
// @Produce   json
// @Security  BearerAuth
// @Param     id path string true "order id"
// @Success   200 {object} order.Order
// @Failure   409 {object} httpx.HTTPError
// @Router    /api/orders/{id}/cancel [post]
func cancelOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.UUIDParam(c, "id")
		if !ok {
			return
		}
		o, err := svc.Cancel(c.Request.Context(), id, auth.MustIdentity(c))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// updateOrderHandler godoc
// @Summary   Change order or payment status
// @Description Cancelling returns reserved products to unsold; selling marks them sold.
// @Tags      orders
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id   path string                   true "order id"
// @Param     body body order.UpdateOrderRequest true "changes"
// @Success   200 {object} order.Order
// @Failure   409 {object} httpx.HTTPError
// @Router    /api/orders/{id} [put]
func updateOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.UUIDParam(c, "id")
		if !ok {
			return
		}
		var in order.UpdateOrderRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		o, err := svc.Update(c.Request.Context(), id, in, auth.MustIdentity(c))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
