package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/MikeMC777/ropa-market/docs"
	"github.com/MikeMC777/ropa-market/internal/auth"
	"github.com/MikeMC777/ropa-market/internal/health"
	"github.com/MikeMC777/ropa-market/internal/httpx"
	"github.com/MikeMC777/ropa-market/internal/ledger"
	"github.com/MikeMC777/ropa-market/internal/message"
	"github.com/MikeMC777/ropa-market/internal/notify"
	"github.com/MikeMC777/ropa-market/internal/order"
	"github.com/MikeMC777/ropa-market/internal/product"
	"github.com/MikeMC777/ropa-market/internal/seller"
	"github.com/MikeMC777/ropa-market/internal/user"
	"github.com/MikeMC777/ropa-market/internal/wishlist"
)

// deps are the services the HTTP layer is built on. Tests fill only what
// they exercise.
type deps struct {
	tokens    *auth.Tokens
	users     *user.Service
	products  *product.Service
	orders    *order.Service
	notify    *notify.Service
	messages  *message.Service
	wishlist  *wishlist.Service
	sellers   *seller.Service
	payments  ledger.Reader
	health    *health.Checker
	uploadDir string
}

func newRouter(d *deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", healthzHandler(d.health))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if d.uploadDir != "" {
		r.Static("/uploads", d.uploadDir)
	}

	optional := d.tokens.Middleware(false)
	required := d.tokens.Middleware(true)
	admin := []gin.HandlerFunc{required, auth.RequireAdmin()}

	api := r.Group("/api")

	api.POST("/auth/signup", signupHandler(d.users))
	api.POST("/auth/login", loginHandler(d.users))

	me := api.Group("/users", required)
	me.GET("/me", meHandler(d.users))
	me.PUT("/me", updateMeHandler(d.users))
	me.PUT("/me/password", changePasswordHandler(d.users))

	api.GET("/products", listProductsHandler(d.products))
	api.GET("/products/mine", required, myProductsHandler(d.products))
	api.GET("/products/:id", getProductHandler(d.products))
	api.POST("/products", required, createProductHandler(d.products))
	api.DELETE("/products/:id", required, deleteProductHandler(d.products))

	api.POST("/orders", optional, createOrderHandler(d.orders))
	orders := api.Group("/orders", required)
	orders.GET("/mine", myOrdersHandler(d.orders))
	orders.GET("/sold", soldOrdersHandler(d.orders))
	orders.GET("/:id", getOrderHandler(d.orders))
	orders.POST("/:id/cancel", cancelOrderHandler(d.orders))
	orders.PUT("/:id", auth.RequireAdmin(), updateOrderHandler(d.orders))

	api.GET("/notifications/stream", d.tokens.StreamMiddleware(), streamHandler(d.notify))
	notes := api.Group("/notifications", required)
	notes.GET("", listNotificationsHandler(d.notify))
	notes.PUT("/read-all", markAllReadHandler(d.notify))
	notes.PUT("/:id/read", markReadHandler(d.notify))

	msgs := api.Group("/messages", required)
	msgs.POST("", sendMessageHandler(d.messages))
	msgs.GET("", threadsHandler(d.messages))
	msgs.GET("/:userId", conversationHandler(d.messages))

	wl := api.Group("/wishlist", required)
	wl.GET("", listWishlistHandler(d.wishlist))
	wl.POST("", addWishlistHandler(d.wishlist))
	wl.DELETE("/:productId", removeWishlistHandler(d.wishlist))

	api.POST("/seller/verification", required, applyVerificationHandler(d.sellers))
	api.POST("/seller/feedback", required, createFeedbackHandler(d.sellers))
	api.GET("/seller/:id/feedback", listFeedbackHandler(d.sellers))

	adm := api.Group("/admin", admin...)
	adm.PUT("/users/:id/role", setRoleHandler(d.users))
	adm.PUT("/products/:id/status", setProductStatusHandler(d.products))
	adm.GET("/seller/verifications", listVerificationsHandler(d.sellers))
	adm.PUT("/seller/verifications/:id", reviewVerificationHandler(d.sellers))
	adm.GET("/payments", listPaymentsHandler(d.payments))

	return r
}

// healthzHandler godoc
// @Summary  Liveness and database readiness
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  503 {object} map[string]string
// @Router   /healthz [get]
func healthzHandler(h *health.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if h != nil && !h.Healthy() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
