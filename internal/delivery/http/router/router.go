// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tastebook/config"
	"tastebook/internal/delivery/http/middleware"
	"tastebook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	UserHandler    *handler.UserHandler
	RecipeHandler  *handler.RecipeHandler
	ReviewHandler  *handler.ReviewHandler
	DatasetHandler *handler.DatasetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	userHandler    *handler.UserHandler
	recipeHandler  *handler.RecipeHandler
	reviewHandler  *handler.ReviewHandler
	datasetHandler *handler.DatasetHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		userHandler:    params.UserHandler,
		recipeHandler:  params.RecipeHandler,
		reviewHandler:  params.ReviewHandler,
		datasetHandler: params.DatasetHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Public user routes
	e.GET("/users/:id", r.userHandler.GetUser)
	e.GET("/stats/follow-ratio", r.userHandler.FollowRatio)

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.PATCH("/me", r.userHandler.UpdateProfile)
		userGroup.DELETE("/me", r.userHandler.DeleteAccount)
		userGroup.POST("/:id/follow", r.userHandler.Follow)
	}

	// Public recipe routes
	e.GET("/recipes", r.recipeHandler.Search)
	e.GET("/recipes/:id", r.recipeHandler.Get)
	e.GET("/recipes/:id/reviews", r.reviewHandler.List)
	e.GET("/stats/closest-calories", r.recipeHandler.ClosestCaloriePair)
	e.GET("/stats/most-complex", r.recipeHandler.MostComplex)

	// Recipe routes that require authentication
	recipeGroup := e.Group("/recipes")
	recipeGroup.Use(r.authMiddleware.Authenticate)
	{
		recipeGroup.POST("", r.recipeHandler.Create)
		recipeGroup.PATCH("/:id/times", r.recipeHandler.UpdateTimes)
		recipeGroup.DELETE("/:id", r.recipeHandler.Delete)
		recipeGroup.POST("/:id/reviews", r.reviewHandler.Add)
	}

	// Follower feed
	feedGroup := e.Group("/feed")
	feedGroup.Use(r.authMiddleware.Authenticate)
	{
		feedGroup.GET("", r.recipeHandler.Feed)
	}

	// Review routes that require authentication
	reviewGroup := e.Group("/reviews")
	reviewGroup.Use(r.authMiddleware.Authenticate)
	{
		reviewGroup.PATCH("/:id", r.reviewHandler.Edit)
		reviewGroup.DELETE("/:id", r.reviewHandler.Delete)
		reviewGroup.POST("/:id/like", r.reviewHandler.Like)
		reviewGroup.DELETE("/:id/like", r.reviewHandler.Unlike)
	}

	// Bulk loader, only registered when switched on for seeding environments.
	if r.cfg.Dataset != nil && r.cfg.Dataset.ImportEnabled {
		e.POST("/admin/dataset/import", r.datasetHandler.Import)
	}
}
