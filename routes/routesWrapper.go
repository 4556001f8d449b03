package routes

import (
	"nivaas/ratelim"

	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	AddPropertyRoutes(router, rateLimiter)
	AddReviewRoutes(router, rateLimiter)
	AddAuthRoutes(router, rateLimiter)
	AddFavoriteRoutes(router, rateLimiter)
	AddBuilderRoutes(router, rateLimiter)
	AddVisitorRoutes(router, rateLimiter)
	AddPageRoutes(router, rateLimiter)
	AddSuggestionRoutes(router, rateLimiter)
}
