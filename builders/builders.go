package builders

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"nivaas/db"
	"nivaas/models"
	"nivaas/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var builderSortFields = map[string]bool{
	"name":        true,
	"foundedYear": true,
	"createdAt":   true,
}

// GetBuilders returns a paginated list of builders, optionally filtered by
// headquarters city.
func GetBuilders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if city := r.URL.Query().Get("city"); city != "" {
		filter["headquarters"] = bson.M{"$regex": primitive.Regex{Pattern: city, Options: "i"}}
	}

	skip, limit := utils.ParsePagination(r, 20, 100)
	sort := utils.ParseSort(r.URL.Query().Get("sort"), bson.D{{Key: "name", Value: 1}}, builderSortFields)

	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)
	results, err := utils.FindAndDecode[models.Builder](ctx, db.BuildersCollection, filter, opts)
	if err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to fetch builders", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(results),
		"data":    results,
	})
}

// GetBuilder returns one builder by its builderid.
func GetBuilder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if id == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Builder ID is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var builder models.Builder
	err := db.BuildersCollection.FindOne(ctx, bson.M{"builderid": id}).Decode(&builder)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Builder not found")
		return
	}
	if err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to fetch builder", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    builder,
	})
}

// CreateBuilder registers a new builder profile.
func CreateBuilder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	defer r.Body.Close()

	var builder models.Builder
	if err := json.NewDecoder(r.Body).Decode(&builder); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if builder.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Builder name is required")
		return
	}
	builder.BuilderID = "b" + utils.GetUUID()
	builder.CreatedAt = time.Now()
	builder.UpdatedAt = builder.CreatedAt

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := db.BuildersCollection.InsertOne(ctx, builder); err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to create builder", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"data":    builder,
	})
}

// UpdateBuilder applies a partial update to a builder profile.
func UpdateBuilder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if id == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Builder ID is required")
		return
	}

	defer r.Body.Close()
	var updates bson.M
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	delete(updates, "_id")
	delete(updates, "builderid")
	if len(updates) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}
	updates["updatedAt"] = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.BuildersCollection.UpdateOne(ctx, bson.M{"builderid": id}, bson.M{"$set": updates})
	if err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to update builder", err)
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Builder not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Builder updated",
	})
}
