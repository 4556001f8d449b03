package properties

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"nivaas/normalize"
	"nivaas/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PrintBrochure handles GET /api/properties/:id/brochure and renders a one
// page PDF with the listing summary and a QR code linking back to it.
func PrintBrochure(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")
	if !utils.IsValidObjectID(id) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid property id")
		return
	}
	oid, _ := primitive.ObjectIDFromHex(id)

	raw, err := findRawProperty(ctx, oid, r.URL.Query().Get("type"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		utils.RespondWithError(w, http.StatusNotFound, "Property not found")
		return
	}
	if err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to fetch property", err)
		return
	}
	doc := normalize.Property(raw)

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	listingURL := fmt.Sprintf("%s/property/%s", baseURL, id)

	qrPNG, err := qrcode.Encode(listingURL, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to generate QR code", err)
		return
	}

	name := normalize.FieldString(doc, "propertyName")
	if name == "" {
		name = normalize.FieldString(doc, "name")
	}
	if name == "" {
		name = "Property Listing"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, name)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Type: %s", normalize.FieldString(doc, "propertyType")))
	pdf.Ln(8)
	pdf.MultiCell(130, 8, fmt.Sprintf("Address: %s", normalize.AsString(doc["address"])), "", "L", false)
	pdf.Ln(4)
	if ratings := normalize.AsMap(doc["ratings"]); ratings != nil {
		pdf.Cell(0, 10, fmt.Sprintf("Rating: %.1f (%s reviews)",
			normalize.AsFloat(ratings["overall"]), normalize.AsString(ratings["totalRatings"])))
		pdf.Ln(8)
	}
	pdf.Cell(0, 10, fmt.Sprintf("Listing: %s", listingURL))
	pdf.Ln(8)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to generate PDF", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=brochure-"+id+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
