package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ropa-market/internal/auth"
	"github.com/MikeMC777/ropa-market/internal/httpx"
	"github.com/MikeMC777/ropa-market/internal/wishlist"
)

// listWishlistHandler godoc
// @Summary   Saved products
// @Tags      wishlist
// @Produce   json
// @Security  BearerAuth
// @Success   200 {array} wishlist.Item
// @Router    /api/wishlist [get]
func listWishlistHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.List(c.Request.Context(), auth.MustIdentity(c).UserID)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// addWishlistHandler godoc
// @Summary   Save a product
// @Tags      wishlist
// @Accept    json
// @Security  BearerAuth
// @Param     body body wishlist.AddRequest true "product"
// @Success   204
// @Router    /api/wishlist [post]
func addWishlistHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in wishlist.AddRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		if in.ProductID != "" && !httpx.IsUUID(in.ProductID) {
			httpx.BadRequest(c, "invalid productId")
			return
		}
		if err := svc.Add(c.Request.Context(), auth.MustIdentity(c).UserID, in.ProductID); err != nil {
			httpx.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// removeWishlistHandler godoc
// @Summary   Remove a saved product
// @Tags      wishlist
// @Security  BearerAuth
// @Param     productId path string true "product id"
// @Success   204
// @Router    /api/wishlist/{productId} [delete]
func removeWishlistHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.UUIDParam(c, "productId")
		if !ok {
			return
		}
		if err := svc.Remove(c.Request.Context(), auth.MustIdentity(c).UserID, id); err != nil {
			httpx.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
