package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"nivaas/models"
	"nivaas/mq"
	"nivaas/ratings"
	"nivaas/utils"

	"github.com/julienschmidt/httprouter"
)

type submission struct {
	PropertyID   string `json:"propertyId"`
	PropertyType string `json:"propertyType"`
	User         string `json:"user"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// PostReview handles POST /api/reviews.
func PostReview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var sub submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}
	submit(w, r, sub)
}

// PostPropertyReview handles POST /api/properties/:id/reviews. This is the
// alternate entry point; it runs the exact same aggregation as PostReview.
func PostPropertyReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var sub submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}
	sub.PropertyID = ps.ByName("id")
	if sub.PropertyType == "" {
		sub.PropertyType = r.URL.Query().Get("type")
	}
	submit(w, r, sub)
}

func submit(w http.ResponseWriter, r *http.Request, sub submission) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	review, agg, err := ratings.Submit(ctx, sub.PropertyID, sub.PropertyType, models.Review{
		User:    sub.User,
		Rating:  sub.Rating,
		Comment: sub.Comment,
	})
	switch {
	case errors.Is(err, ratings.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	case errors.Is(err, ratings.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Property not found")
		return
	case err != nil:
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to save review", err)
		return
	}

	go mq.Emit(context.Background(), "review-added", models.Index{
		EntityType: "review",
		EntityId:   review.ReviewID,
		Method:     "POST",
		ItemId:     sub.PropertyID,
		ItemType:   sub.PropertyType,
	})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"review":  review,
		"ratings": agg,
	})
}

// GetPropertyReviews handles GET /api/properties/:id/reviews.
func GetPropertyReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")
	if !utils.IsValidObjectID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	reviewList, agg, err := ratings.Fetch(ctx, id, r.URL.Query().Get("type"))
	switch {
	case errors.Is(err, ratings.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Property not found")
		return
	case err != nil:
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to fetch reviews", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"reviews": reviewList,
		"ratings": agg,
	})
}
