package main

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ropa-market/internal/auth"
	"github.com/MikeMC777/ropa-market/internal/httpx"
	"github.com/MikeMC777/ropa-market/internal/product"
)

// listProductsHandler godoc
// @Summary  Browse listings
// @Tags     products
// @Produce  json
// @Param    q        query string false "search in title and brand"
// @Param    category query string false "category"
// @Param    status   query string false "unsold, order_received or sold"
// @Param    verified query bool   false "only verified sellers"
// @Param    limit    query int    false "page size"
// @Param    offset   query int    false "offset"
// @Success  200 {object} product.ListResponse
// @Router   /api/products [get]
func listProductsHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := productQuery(c)
		if !ok {
			return
		}
		items, err := svc.List(c.Request.Context(), q)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, product.ListResponse{Limit: q.Limit, Offset: q.Offset, Items: items})
	}
}

func productQuery(c *gin.Context) (product.Query, bool) {
	limit, offset := httpx.Paging(c)
	q := product.Query{
		Q:        c.Query("q"),
		Category: c.Query("category"),
		Limit:    limit,
		Offset:   offset,
	}
	if s := c.Query("status"); s != "" {
		st, err := product.ParseStatus(s)
		if err != nil {
			httpx.BadRequest(c, "status must be unsold, order_received or sold")
			return q, false
		}
		q.Status = st
	}
	if v := c.Query("verified"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			httpx.BadRequest(c, "verified must be a boolean")
			return q, false
		}
		q.Verified = b
	}
	return q, true
}

// myProductsHandler godoc
// @Summary   Listings of the caller
// @Tags      products
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} product.ListResponse
// @Router    /api/products/mine [get]
func myProductsHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, ok := productQuery(c)
		if !ok {
			return
		}
		q.SellerID = auth.MustIdentity(c).UserID
		items, err := svc.List(c.Request.Context(), q)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, product.ListResponse{Limit: q.Limit, Offset: q.Offset, Items: items})
	}
}

// getProductHandler godoc
// @Summary  Listing detail
// @Tags     products
// @Produce  json
// @Param    id path string true "product id"
// @Success  200 {object} product.Product
// @Failure  404 {object} httpx.HTTPError
// @Router   /api/products/{id} [get]
func getProductHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.UUIDParam(c, "id")
		if !ok {
			return
		}
		p, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
// @Summary   Create a listing with up to 8 images
// @Tags      products
// @Accept    multipart/form-data
// @Produce   json
// @Security  BearerAuth
// @Param     title         formData string true  "title"
// @Param     price         formData string true  "price"
// @Param     originalPrice formData string false "original price"
// @Param     images        formData file   false "images (.jpg .jpeg .png .webp)"
// @Success   201 {object} product.Product
// @Failure   400 {object} httpx.HTTPError
// @Router    /api/products [post]
func createProductHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in product.CreateProductRequest
		if err := c.ShouldBind(&in); err != nil {
			httpx.BadRequest(c, "invalid form")
			return
		}
		var files []*multipart.FileHeader
		form, err := c.MultipartForm()
		switch {
		case err == nil:
			files = form.File["images"]
		case !errors.Is(err, http.ErrNotMultipart):
			httpx.BadRequest(c, "invalid multipart form")
			return
		}
		p, err := svc.Create(c.Request.Context(), auth.MustIdentity(c).UserID, in, files)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// deleteProductHandler godoc
// @Summary   Delete a listing (owner or admin)
// @Tags      products
// @Security  BearerAuth
// @Param     id path string true "product id"
// @Success   204
// @Failure   403 {object} httpx.HTTPError
// @Router    /api/products/{id} [delete]
func deleteProductHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.UUIDParam(c, "id")
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id, auth.MustIdentity(c)); err != nil {
			httpx.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// setProductStatusHandler godoc
// @Summary   Override a product's lifecycle status
// @Tags      admin
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id   path string                      true "product id"
// @Param     body body product.UpdateStatusRequest true "status"
// @Success   200 {object} product.Product
// @Router    /api/admin/products/{id}/status [put]
func setProductStatusHandler(svc *product.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.UUIDParam(c, "id")
		if !ok {
			return
		}
		var in product.UpdateStatusRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		p, err := svc.SetStatus(c.Request.Context(), id, in.Status)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
