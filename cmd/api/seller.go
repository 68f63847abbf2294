package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ropa-market/internal/auth"
	"github.com/MikeMC777/ropa-market/internal/httpx"
	"github.com/MikeMC777/ropa-market/internal/ledger"
	"github.com/MikeMC777/ropa-market/internal/seller"
)

// applyVerificationHandler godoc
// @Summary   Request seller verification
// @Tags      seller
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body body seller.ApplyRequest true "business details"
// @Success   201 {object} seller.Verification
// @Failure   409 {object} httpx.HTTPError
// @Router    /api/seller/verification [post]
func applyVerificationHandler(svc *seller.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in seller.ApplyRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		v, err := svc.Apply(c.Request.Context(), auth.MustIdentity(c).UserID, in)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, v)
	}
}

// listVerificationsHandler godoc
// @Summary   Pending verification requests
// @Tags      admin
// @Produce   json
// @Security  BearerAuth
// @Success   200 {array} seller.Verification
// @Router    /api/admin/seller/verifications [get]
func listVerificationsHandler(svc *seller.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := httpx.Paging(c)
		out, err := svc.ListPending(c.Request.Context(), limit, offset)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// reviewVerificationHandler godoc
// @Summary   Approve or reject a verification request
// @Tags      admin
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     id   path string               true "verification id"
// @Param     body body seller.ReviewRequest true "decision"
// @Success   200 {object} seller.Verification
// @Failure   409 {object} httpx.HTTPError
// @Router    /api/admin/seller/verifications/{id} [put]
func reviewVerificationHandler(svc *seller.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.UUIDParam(c, "id")
		if !ok {
			return
		}
		var in seller.ReviewRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		v, err := svc.Review(c.Request.Context(), id, in, auth.MustIdentity(c).UserID)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, v)
	}
}

// createFeedbackHandler godoc
// @Summary   Rate a seller for an order
// @Tags      seller
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body body seller.FeedbackRequest true "rating"
// @Success   201 {object} seller.Feedback
// @Failure   403 {object} httpx.HTTPError
// @Failure   409 {object} httpx.HTTPError
// @Router    /api/seller/feedback [post]
func createFeedbackHandler(svc *seller.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in seller.FeedbackRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		f, err := svc.CreateFeedback(c.Request.Context(), auth.MustIdentity(c).UserID, in)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, f)
	}
}

// listFeedbackHandler godoc
// @Summary  Feedback received by a seller
// @Tags     seller
// @Produce  json
// @Param    id path string true "seller id"
// @Success  200 {object} seller.Summary
// @Router   /api/seller/{id}/feedback [get]
func listFeedbackHandler(svc *seller.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.UUIDParam(c, "id")
		if !ok {
			return
		}
		limit, offset := httpx.Paging(c)
		out, err := svc.ListFeedback(c.Request.Context(), id, limit, offset)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// listPaymentsHandler godoc
// @Summary   Payment ledger, newest first
// @Tags      admin
// @Produce   json
// @Security  BearerAuth
// @Param     orderId query string false "restrict to one order"
// @Success   200 {array} ledger.Entry
// @Router    /api/admin/payments [get]
func listPaymentsHandler(r ledger.Reader) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := httpx.UUIDQuery(c, "orderId")
		if !ok {
			return
		}
		limit, offset := httpx.Paging(c)
		out, err := r.List(c.Request.Context(), orderID, limit, offset)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
