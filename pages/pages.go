package pages

import (
	"context"
	"net/http"
	"time"

	"nivaas/db"
	"nivaas/models"
	"nivaas/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetPage serves CMS content (about, privacy, terms) by slug.
func GetPage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	slug := ps.ByName("slug")
	if slug == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Page slug is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var page models.Page
	err := db.PagesCollection.FindOne(ctx, bson.M{"slug": slug}).Decode(&page)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusNotFound, "Page not found")
		return
	}
	if err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to fetch page", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    page,
	})
}
