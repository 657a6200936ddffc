// Package router contains routing setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	OrderHandler        *handler.OrderHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	orderHandler        *handler.OrderHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		orderHandler:        params.OrderHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/api/v1/auth")
	{
		// Public routes
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)

		// Routes for any authenticated user
		authGroup.PUT("/profile", r.authHandler.UpdateProfile, r.authMiddleware.Authenticate)
		authGroup.GET("/orders", r.orderHandler.ListOwn, r.authMiddleware.Authenticate)

		// Admin-only routes
		adminGroup := authGroup.Group("", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
		{
			adminGroup.GET("/all-orders", r.orderHandler.ListAll)
			adminGroup.PUT("/order-status/:orderId", r.orderHandler.SetStatus)
		}
	}
}
