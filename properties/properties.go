package properties

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"nivaas/db"
	"nivaas/models"
	"nivaas/mq"
	"nivaas/normalize"
	"nivaas/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetProperty handles GET /api/properties?id=&type= and returns one
// normalized listing. Malformed ids are rejected before the driver sees them.
func GetProperty(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := r.URL.Query().Get("id")
	if !utils.IsValidObjectID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property id")
		return
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	doc, err := findRawProperty(ctx, oid, r.URL.Query().Get("type"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, "Property not found")
		return
	}
	if err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to fetch property", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, normalize.Property(doc))
}

// findRawProperty checks the hinted collection first, then the other one.
func findRawProperty(ctx context.Context, oid primitive.ObjectID, typeHint string) (bson.M, error) {
	ordered := db.PropertyCollections()
	if strings.EqualFold(typeHint, "residential") {
		ordered = []*mongo.Collection{db.ResidentialCollection, db.CommercialCollection}
	}

	for _, coll := range ordered {
		var doc bson.M
		err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
		if err == nil {
			return doc, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}
	}
	return nil, mongo.ErrNoDocuments
}

// CreateProperty handles POST /api/properties. Only commercial listings are
// created through the API.
func CreateProperty(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var property models.Property
	if err := json.NewDecoder(r.Body).Decode(&property); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property data")
		return
	}
	if strings.TrimSpace(property.PropertyName) == "" && strings.TrimSpace(property.Name) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Property name is required")
		return
	}

	property.ID = primitive.NewObjectID()
	if property.Category == "" {
		property.Category = "commercial"
	}
	if property.Ratings == nil {
		zero := models.ZeroRatings()
		property.Ratings = &zero
	}
	if property.Reviews == nil {
		property.Reviews = []models.Review{}
	}

	if _, err := db.CommercialCollection.InsertOne(ctx, property); err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to create property", err)
		return
	}

	var city string
	if property.Address != nil {
		city = property.Address.City
	}
	// detached from the request context: the emit outlives the response
	go mq.Emit(context.Background(), "property-created", models.Index{
		EntityType: "property",
		EntityId:   property.ID.Hex(),
		Method:     "POST",
		ItemType:   "commercial",
		City:       city,
	})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"data":    property,
	})
}
