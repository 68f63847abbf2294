package main

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/ropa-market/internal/auth"
	"github.com/MikeMC777/ropa-market/internal/httpx"
	"github.com/MikeMC777/ropa-market/internal/notify"
)

// streamHandler godoc
// @Summary  Live notification stream (server-sent events)
// @Description Sends a bootstrap event with unread notifications, then one notification event per new row and a ": ping" comment on every heartbeat. Browsers pass the token as a query parameter.
// @Tags     notifications
// @Produce  text/event-stream
// @Param    token query string true "JWT"
// @Success  200
// @Router   /api/notifications/stream [get]
func streamHandler(svc *notify.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := auth.MustIdentity(c)
		hub := svc.Hub()

		// Subscribe before reading the backlog so nothing written in between is lost.
		sub := hub.Subscribe(id.UserID)
		defer hub.Unsubscribe(sub)

		unread, err := svc.List(c.Request.Context(), id.UserID, true, 50)
		if err != nil {
			httpx.Error(c, err)
			return
		}

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Header("X-Accel-Buffering", "no")
		c.SSEvent(notify.EventBootstrap, gin.H{"unread": unread})
		c.Writer.Flush()

		c.Stream(func(w io.Writer) bool {
			select {
			case <-c.Request.Context().Done():
				return false
			case ev, ok := <-sub.Events():
				if !ok {
					return false
				}
				if ev.Comment {
					_, err := io.WriteString(w, ": ping\n\n")
					return err == nil
				}
				c.SSEvent(ev.Name, ev.Data)
				return true
			}
		})
	}
}

// listNotificationsHandler godoc
// @Summary   Recent notifications
// @Tags      notifications
// @Produce   json
// @Security  BearerAuth
// @Param     unread query bool false "only unread"
// @Param     limit  query int  false "max rows"
// @Success   200 {array} notify.Notification
// @Router    /api/notifications [get]
func listNotificationsHandler(svc *notify.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		unread := c.Query("unread") == "true"
		out, err := svc.List(c.Request.Context(), auth.MustIdentity(c).UserID, unread, httpx.QueryInt(c, "limit", 50))
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// markReadHandler godoc
// @Summary   Mark one notification read
// @Tags      notifications
// @Security  BearerAuth
// @Param     id path string true "notification id"
// @Success   204
// @Failure   404 {object} httpx.HTTPError
// @Router    /api/notifications/{id}/read [put]
func markReadHandler(svc *notify.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.UUIDParam(c, "id")
		if !ok {
			return
		}
		if err := svc.MarkRead(c.Request.Context(), id, auth.MustIdentity(c).UserID); err != nil {
			httpx.Error(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// markAllReadHandler godoc
// @Summary   Mark every notification read
// @Tags      notifications
// @Produce   json
// @Security  BearerAuth
// @Success   200 {object} map[string]int64
// @Router    /api/notifications/read-all [put]
func markAllReadHandler(svc *notify.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := svc.MarkAllRead(c.Request.Context(), auth.MustIdentity(c).UserID)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": n})
	}
}
