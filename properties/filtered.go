package properties

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nivaas/db"
	"nivaas/normalize"
	"nivaas/rdx"
	"nivaas/search"
	"nivaas/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const filterCacheTTL = 2 * time.Minute

// GetPropertiesFiltered handles GET /api/properties-filtered. Both collections
// are fetched in full and filtered in process; commercial listings come before
// residential ones, preserving stored order within each.
func GetPropertiesFiltered(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cacheKey := "propfilter:" + r.URL.RawQuery
	if cached, _ := rdx.RdxGet(cacheKey); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	docs := []bson.M{}
	for _, coll := range db.PropertyCollections() {
		batch, err := utils.FindAndDecode[bson.M](ctx, coll, bson.M{})
		if err != nil {
			utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to fetch properties", err)
			return
		}
		docs = append(docs, batch...)
	}

	filtered := search.Filter(docs, search.ParamsFromQuery(r.URL.Query()))

	data := make([]bson.M, 0, len(filtered))
	for _, doc := range filtered {
		data = append(data, normalize.Property(doc))
	}

	payload := map[string]any{
		"success": true,
		"count":   len(data),
		"data":    data,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		utils.RespondWithJSON(w, http.StatusOK, payload)
		return
	}
	if err := rdx.RdxSetWithTTL(cacheKey, string(body), filterCacheTTL); err != nil {
		log.Printf("Failed to cache filtered properties: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
