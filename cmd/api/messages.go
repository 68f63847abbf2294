package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ropa-market/internal/auth"
	"github.com/MikeMC777/ropa-market/internal/httpx"
	"github.com/MikeMC777/ropa-market/internal/message"
)

// sendMessageHandler godoc
// @Summary   Send a direct message
// @Tags      messages
// @Accept    json
// @Produce   json
// @Security  BearerAuth
// @Param     body body message.SendRequest true "message"
// @Success   201 {object} message.Message
// @Router    /api/messages [post]
func sendMessageHandler(svc *message.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in message.SendRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid json")
			return
		}
		m, err := svc.Send(c.Request.Context(), auth.MustIdentity(c).UserID, in)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusCreated, m)
	}
}

// threadsHandler godoc
// @Summary   Conversations of the caller, most recent first
// @Tags      messages
// @Produce   json
// @Security  BearerAuth
// @Success   200 {array} message.Thread
// @Router    /api/messages [get]
func threadsHandler(svc *message.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Threads(c.Request.Context(), auth.MustIdentity(c).UserID)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// conversationHandler godoc
// @Summary   Messages exchanged with one user, oldest first
// @Tags      messages
// @Produce   json
// @Security  BearerAuth
// @Param     userId path string true "counterpart id"
// @Success   200 {array} message.Message
// @Router    /api/messages/{userId} [get]
func conversationHandler(svc *message.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		peer, ok := httpx.UUIDParam(c, "userId")
		if !ok {
			return
		}
		limit := httpx.QueryInt(c, "limit", 100)
		if limit <= 0 || limit > 500 {
			limit = 100
		}
		_, offset := httpx.Paging(c)
		out, err := svc.Conversation(c.Request.Context(), auth.MustIdentity(c).UserID, peer, limit, offset)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
