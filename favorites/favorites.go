package favorites

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"nivaas/db"
	"nivaas/models"
	"nivaas/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type toggleRequest struct {
	UserPhoneNumber string `json:"userPhoneNumber"`
	PropertyID      string `json:"propertyId"`
	PropertyType    string `json:"propertyType"`
	Action          string `json:"action"`
}

// ToggleFavorite handles POST /api/favorites. Both actions are idempotent:
// adding an existing favorite or removing a missing one succeeds.
func ToggleFavorite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid favorite data")
		return
	}
	if strings.TrimSpace(req.UserPhoneNumber) == "" || !utils.IsValidObjectID(req.PropertyID) {
		utils.RespondWithError(w, http.StatusBadRequest, "userPhoneNumber and a valid propertyId are required")
		return
	}

	filter := bson.M{
		"userPhoneNumber": req.UserPhoneNumber,
		"propertyId":      req.PropertyID,
	}

	switch strings.ToLower(req.Action) {
	case "add":
		update := bson.M{
			"$set": bson.M{"propertyType": req.PropertyType},
			"$setOnInsert": bson.M{
				"userPhoneNumber": req.UserPhoneNumber,
				"propertyId":      req.PropertyID,
				"createdAt":       time.Now(),
			},
		}
		_, err := db.FavoritesCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to add favorite", err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true, "favorited": true})
	case "remove":
		if _, err := db.FavoritesCollection.DeleteOne(ctx, filter); err != nil {
			utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to remove favorite", err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, map[string]any{"success": true, "favorited": false})
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "action must be add or remove")
	}
}

// GetFavorites handles GET /api/favorites/:phone.
func GetFavorites(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	phone := ps.ByName("phone")
	if strings.TrimSpace(phone) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Phone number is required")
		return
	}

	favs, err := utils.FindAndDecode[models.Favorite](ctx, db.FavoritesCollection,
		bson.M{"userPhoneNumber": phone})
	if err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to fetch favorites", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(favs),
		"data":    favs,
	})
}
