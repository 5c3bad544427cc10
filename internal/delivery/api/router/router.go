// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/router/handler"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	AccountHandler      *handler.AccountHandler
	ProductHandler      *handler.ProductHandler
	OrderHandler        *handler.OrderHandler
	PromotionHandler    *handler.PromotionHandler
	ReviewHandler       *handler.ReviewHandler
	FeedbackHandler     *handler.FeedbackHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	r.registerAuthRoutes(api.Group("/auth"))
	r.registerPublicRoutes(api)

	authn := r.AuthMiddleware.Authenticate
	r.registerAdminRoutes(api.Group("/admin", authn, r.AuthMiddleware.RequireRole(entity.RoleAdmin)))
	r.registerStoreRoutes(api.Group("/store", authn, r.AuthMiddleware.RequireRole(entity.RoleStore)))
	r.registerCustomerRoutes(api.Group("/customer", authn, r.AuthMiddleware.RequireRole(entity.RoleCustomer)))
}

func (r *router) registerAuthRoutes(g *echo.Group) {
	g.POST("/register", r.AuthHandler.Register)
	g.POST("/login", r.AuthHandler.Login)
	g.POST("/refresh", r.AuthHandler.RefreshToken)
	g.POST("/logout", r.AuthHandler.Logout)
	g.POST("/change-password", r.AuthHandler.ChangePassword, r.AuthMiddleware.Authenticate)
}

// registerPublicRoutes exposes the catalog and the store directory without authentication.
func (r *router) registerPublicRoutes(api *echo.Group) {
	api.GET("/products", r.ProductHandler.ListProducts)
	api.GET("/products/:id", r.ProductHandler.GetProduct)
	api.GET("/products/:id/reviews", r.ReviewHandler.ListProductReviews)

	api.GET("/stores", r.AccountHandler.SearchStores)
	api.GET("/stores/:id", r.AccountHandler.GetStore)
	api.GET("/stores/:id/products", r.ProductHandler.ListStoreProducts)
}

func (r *router) registerAdminRoutes(g *echo.Group) {
	g.GET("/account", r.AccountHandler.GetAccount)
	g.PUT("/account", r.AccountHandler.UpdateAccount)

	// Accounts
	g.GET("/manage-accounts", r.AccountHandler.ListUsers)
	g.PUT("/manage-accounts", r.AccountHandler.ChangeAccess)
	g.GET("/manage-accounts/:id", r.AccountHandler.GetUser)
	g.GET("/search-user-by-name", r.AccountHandler.SearchUserByName)
	g.GET("/search-user-by-email", r.AccountHandler.SearchUserByEmail)
	g.POST("/app-setting/delivery-partners", r.AccountHandler.CreateDeliveryPartner)

	// Catalog moderation
	g.GET("/manage-products", r.ProductHandler.ListProducts)
	g.PUT("/manage-products/:id", r.ProductHandler.UpdateAnyProduct)
	g.DELETE("/delete-product/:id", r.ProductHandler.DeleteAnyProduct)
	g.DELETE("/reviews/:id", r.ReviewHandler.DeleteAnyReview)

	// Feedback
	g.GET("/feedbacks", r.FeedbackHandler.List)
	g.GET("/feedbacks/:id", r.FeedbackHandler.Get)
	g.PUT("/feedbacks/:id/resolve", r.FeedbackHandler.Resolve)
	g.DELETE("/feedbacks/:id", r.FeedbackHandler.Delete)

	// Vouchers
	r.registerPromotionSetRoutes(g.Group("/voucher-sets"))
	g.DELETE("/vouchers/:id", r.PromotionHandler.DeleteItem)

	g.GET("/orders", r.OrderHandler.ListAllOrders)
}

func (r *router) registerStoreRoutes(g *echo.Group) {
	g.GET("/account", r.AccountHandler.GetAccount)
	g.PUT("/account", r.AccountHandler.UpdateAccount)
	g.POST("/feedbacks", r.FeedbackHandler.Submit)

	// Products
	g.GET("/products", r.ProductHandler.ListOwnProducts)
	g.POST("/products", r.ProductHandler.CreateProduct)
	g.PUT("/products/:id", r.ProductHandler.UpdateOwnProduct)
	g.DELETE("/products/:id", r.ProductHandler.DeleteOwnProduct)

	// Orders
	g.GET("/orders", r.OrderHandler.ListStoreOrders)
	g.GET("/orders-count", r.OrderHandler.CountStoreOrders)
	g.GET("/orders/:orderId", r.OrderHandler.GetStoreOrder)
	g.PUT("/update-status-order", r.OrderHandler.UpdateOrderStatus)
	g.GET("/search-order-by-code/:orderCode", r.OrderHandler.SearchOrderByCode)
	g.POST("/scan-order", r.OrderHandler.ScanOrder)
	g.GET("/search-order-by-customer-name/:customerName", r.OrderHandler.SearchOrderByCustomerName)

	// Coupons
	r.registerPromotionSetRoutes(g.Group("/coupon-sets"))
	g.DELETE("/coupons/:id", r.PromotionHandler.DeleteItem)
}

// registerPromotionSetRoutes serves voucher and coupon sets alike; the handler
// derives the scope from the caller's role.
func (r *router) registerPromotionSetRoutes(g *echo.Group) {
	g.GET("", r.PromotionHandler.ListSets)
	g.POST("", r.PromotionHandler.CreateSet)
	g.GET("/:id", r.PromotionHandler.GetSet)
	g.PUT("/:id", r.PromotionHandler.UpdateSet)
	g.DELETE("/:id", r.PromotionHandler.DeleteSet)
	g.POST("/:id/add", r.PromotionHandler.AddItems)
	g.POST("/:id/subtract", r.PromotionHandler.SubtractItems)
	g.GET("/:id/items", r.PromotionHandler.ListItems)
}

func (r *router) registerCustomerRoutes(g *echo.Group) {
	g.GET("/account", r.AccountHandler.GetAccount)
	g.PUT("/account", r.AccountHandler.UpdateAccount)
	g.POST("/feedbacks", r.FeedbackHandler.Submit)

	// Orders
	g.POST("/orders", r.OrderHandler.CreateOrder)
	g.GET("/orders", r.OrderHandler.ListMyOrders)
	g.GET("/orders/:orderCode", r.OrderHandler.GetMyOrderByCode)
	g.GET("/orders/:orderCode/qr", r.OrderHandler.GetMyOrderQR)

	// Promotions
	g.GET("/promotions", r.PromotionHandler.ListClaimableSets)
	g.GET("/promotions/mine", r.PromotionHandler.ListMyPromotions)
	g.POST("/promotions/:id/claim", r.PromotionHandler.Claim)

	// Reviews
	g.GET("/reviews", r.ReviewHandler.ListMyReviews)
	g.POST("/reviews", r.ReviewHandler.CreateReview)
	g.PUT("/reviews/:id", r.ReviewHandler.UpdateReview)
	g.DELETE("/reviews/:id", r.ReviewHandler.DeleteMyReview)

	// Search
	g.GET("/search", r.ProductHandler.SearchProducts)
	g.GET("/search/history", r.ProductHandler.LatestSearches)
	g.DELETE("/search/history/:id", r.ProductHandler.DeleteSearch)

	// Notifications and devices
	g.GET("/notifications", r.NotificationHandler.List)
	g.GET("/notifications/unread-count", r.NotificationHandler.UnreadCount)
	g.PUT("/notifications/read-all", r.NotificationHandler.MarkAllRead)
	g.PUT("/notifications/:id/read", r.NotificationHandler.MarkRead)
	g.GET("/devices", r.DeviceHandler.ListDevices)
	g.POST("/devices", r.DeviceHandler.RegisterDevice)
	g.PUT("/devices/:id/token", r.DeviceHandler.UpdateFCMToken)
	g.DELETE("/devices/:id", r.DeviceHandler.DeactivateDevice)
}
