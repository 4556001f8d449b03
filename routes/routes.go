package routes

import (
	"nivaas/auth"
	"nivaas/builders"
	"nivaas/favorites"
	"nivaas/middleware"
	"nivaas/pages"
	"nivaas/properties"
	"nivaas/ratelim"
	"nivaas/reviews"
	"nivaas/suggestions"
	"nivaas/visitors"

	"github.com/julienschmidt/httprouter"
)

func AddPropertyRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/properties", properties.GetProperty)
	router.GET("/api/properties-filtered", properties.GetPropertiesFiltered)
	router.POST("/api/properties", rateLimiter.Limit(middleware.OptionalAuth(properties.CreateProperty)))
	router.POST("/api/properties/:id/photos", rateLimiter.Limit(middleware.OptionalAuth(properties.UploadPhoto)))
	router.GET("/api/properties/:id/brochure", properties.PrintBrochure)
}

func AddReviewRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/reviews", rateLimiter.Limit(middleware.OptionalAuth(reviews.PostReview)))
	router.POST("/api/properties/:id/reviews", rateLimiter.Limit(middleware.OptionalAuth(reviews.PostPropertyReview)))
	router.GET("/api/properties/:id/reviews", reviews.GetPropertyReviews)
}

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/login", rateLimiter.Limit(auth.Login))
	router.POST("/api/login/otp", rateLimiter.Limit(auth.RequestOTP))
	router.POST("/api/login/verify", rateLimiter.Limit(auth.VerifyOTP))
	router.GET("/api/me", middleware.Authenticate(auth.Me))
}

func AddFavoriteRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/favorites", rateLimiter.Limit(favorites.ToggleFavorite))
	router.GET("/api/favorites/:phone", favorites.GetFavorites)
}

func AddBuilderRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/builders", builders.GetBuilders)
	router.GET("/api/builders/:id", builders.GetBuilder)
	router.POST("/api/builders", rateLimiter.Limit(middleware.OptionalAuth(builders.CreateBuilder)))
	router.PUT("/api/builders/:id", rateLimiter.Limit(middleware.OptionalAuth(builders.UpdateBuilder)))
}

func AddVisitorRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/visitors", rateLimiter.Limit(visitors.LogVisitor))
}

func AddPageRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.GET("/api/pages/:slug", pages.GetPage)
}

func AddSuggestionRoutes(router *httprouter.Router, _ *ratelim.RateLimiter) {
	router.GET("/api/suggestions/cities", suggestions.SuggestCities)
}
