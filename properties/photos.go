package properties

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"nivaas/db"
	"nivaas/models"
	"nivaas/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const photoDir = "./static/propertypic"

// UploadPhoto handles POST /api/properties/:id/photos: saves the original and
// a 300px thumbnail, then appends the URL to the listing's interior images.
func UploadPhoto(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id := ps.ByName("id")
	if !utils.IsValidObjectID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property id")
		return
	}
	oid, _ := primitive.ObjectIDFromHex(id)

	file, header, err := r.FormFile("photo")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Photo file is required")
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	img, err := imaging.Decode(file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Unreadable image file")
		return
	}

	if err := utils.EnsureDir(photoDir); err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to prepare upload directory", err)
		return
	}

	name := fmt.Sprintf("%s-%d.jpg", id, time.Now().UnixNano())
	originalPath := filepath.Join(photoDir, name)
	thumbPath := filepath.Join(photoDir, "thumb-"+name)

	if err := imaging.Save(img, originalPath); err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to save photo", err)
		return
	}
	thumb := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to save thumbnail", err)
		return
	}

	url := "/propertypic/" + name
	entry := models.ImageRef{URL: url, Tags: utils.SplitTags(r.FormValue("tags"))}

	updated := false
	for _, coll := range db.PropertyCollections() {
		res, err := coll.UpdateOne(ctx,
			bson.M{"_id": oid},
			bson.M{"$push": bson.M{"interiorImages": entry}},
		)
		if err != nil {
			utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to attach photo", err)
			return
		}
		if res.MatchedCount > 0 {
			updated = true
			break
		}
	}
	if !updated {
		utils.RespondWithError(w, http.StatusNotFound, "Property not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"url":       url,
		"thumbnail": "/propertypic/thumb-" + name,
	})
}
