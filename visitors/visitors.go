package visitors

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nivaas/db"
	"nivaas/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogVisitor handles POST /api/visitors. The payload is device and location
// telemetry with no fixed schema, so it is stored as-is; a known visitorId
// updates the existing record instead of appending a new one.
func LogVisitor(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	defer r.Body.Close()

	var data map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if _, ok := data["ts"]; !ok {
		data["ts"] = time.Now().UnixMilli()
	}
	visitorID, _ := data["visitorId"].(string)
	if visitorID == "" {
		visitorID = utils.GetUUID()
		data["visitorId"] = visitorID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.VisitorsCollection.UpdateOne(ctx,
		bson.M{"visitorId": visitorID},
		bson.M{"$set": bson.M(data)},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Println("Failed to record visitor:", err)
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to record visitor", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"visitorId": visitorID,
	})
}
