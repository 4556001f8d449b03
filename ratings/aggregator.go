package ratings

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"nivaas/db"
	"nivaas/models"
	"nivaas/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrInvalidInput = errors.New("invalid review input")
	ErrNotFound     = errors.New("property not found")
)

const dateLayout = "January 2, 2006"

// Submit validates and records a review for the given property, recomputing
// the rating aggregate over the full review list. Both review endpoints go
// through here, so there is exactly one aggregation code path. Updates for the
// same property are serialized by a per-id lock and persisted in a single
// UpdateOne.
func Submit(ctx context.Context, propertyID, propertyType string, review models.Review) (models.Review, models.Ratings, error) {
	if strings.TrimSpace(review.User) == "" || review.Rating < 1 || review.Rating > 5 {
		return models.Review{}, models.Ratings{}, ErrInvalidInput
	}
	if !utils.IsValidObjectID(propertyID) {
		return models.Review{}, models.Ratings{}, ErrInvalidInput
	}
	oid, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		return models.Review{}, models.Ratings{}, ErrInvalidInput
	}

	lock := locks.get(propertyID)
	lock.Lock()
	defer lock.Unlock()

	coll, doc, err := findProperty(ctx, oid, propertyType)
	if err != nil {
		return models.Review{}, models.Ratings{}, err
	}

	review.ReviewID = utils.GetUUID()
	review.Comment = strings.TrimSpace(review.Comment)
	review.Date = time.Now().Format(dateLayout)

	reviews := append([]models.Review{review}, doc.Reviews...)

	agg := Recompute(reviews)
	carryHighlights(&agg, doc.Ratings)
	applyHighlights(&agg, review)

	_, err = coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"reviews": reviews, "ratings": agg}},
	)
	if err != nil {
		return models.Review{}, models.Ratings{}, err
	}
	return review, agg, nil
}

// Fetch returns the stored review list and aggregate for a property.
func Fetch(ctx context.Context, propertyID, propertyType string) ([]models.Review, models.Ratings, error) {
	oid, err := primitive.ObjectIDFromHex(propertyID)
	if err != nil {
		return nil, models.Ratings{}, ErrInvalidInput
	}
	_, doc, err := findProperty(ctx, oid, propertyType)
	if err != nil {
		return nil, models.Ratings{}, err
	}
	if doc.Reviews == nil {
		doc.Reviews = []models.Review{}
	}
	agg := models.ZeroRatings()
	if doc.Ratings != nil {
		agg = *doc.Ratings
	}
	return doc.Reviews, agg, nil
}

// reviewDoc is the slice of a property document the aggregator touches.
type reviewDoc struct {
	Reviews []models.Review `bson:"reviews"`
	Ratings *models.Ratings `bson:"ratings"`
}

// findProperty looks the property up in the hinted collection first, then the
// other one; listings live in separate commercial and residential collections.
func findProperty(ctx context.Context, oid primitive.ObjectID, propertyType string) (*mongo.Collection, reviewDoc, error) {
	ordered := db.PropertyCollections()
	if strings.EqualFold(propertyType, "residential") {
		ordered = []*mongo.Collection{db.ResidentialCollection, db.CommercialCollection}
	}

	for _, coll := range ordered {
		var doc reviewDoc
		err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
		if err == nil {
			return coll, doc, nil
		}
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, reviewDoc{}, err
		}
	}
	return nil, reviewDoc{}, ErrNotFound
}

// Recompute derives the aggregate from the full review list: a star-count
// breakdown and the weighted mean rounded to one decimal.
func Recompute(reviews []models.Review) models.Ratings {
	agg := models.ZeroRatings()
	agg.TotalRatings = len(reviews)
	for _, r := range reviews {
		if r.Rating < 1 || r.Rating > 5 {
			continue
		}
		agg.Breakdown[strconv.Itoa(r.Rating)]++
	}

	var sum, count int
	for star := 1; star <= 5; star++ {
		n := agg.Breakdown[strconv.Itoa(star)]
		sum += star * n
		count += n
	}
	if count > 0 {
		agg.Overall = math.Round(float64(sum)/float64(count)*10) / 10
	}
	return agg
}

var positiveKeywords = []string{
	"great", "good", "excellent", "amazing", "awesome", "spacious",
	"clean", "friendly", "comfortable", "peaceful", "modern",
}

var negativeKeywords = []string{
	"bad", "poor", "dirty", "noisy", "worst", "terrible",
	"awful", "crowded", "cramped", "rude", "overpriced",
}

const excerptLen = 50

// carryHighlights preserves the stored highlight lists across a recount.
// Legacy documents store ratings without the highlight arrays; a nil there
// must not replace the zero-state empty slices.
func carryHighlights(agg *models.Ratings, prev *models.Ratings) {
	if prev == nil {
		return
	}
	if prev.WhatsGood != nil {
		agg.WhatsGood = prev.WhatsGood
	}
	if prev.WhatsBad != nil {
		agg.WhatsBad = prev.WhatsBad
	}
}

// applyHighlights appends a truncated comment excerpt to whatsGood or whatsBad
// when the comment carries a matching keyword, deduplicated by exact match.
func applyHighlights(agg *models.Ratings, review models.Review) {
	if review.Comment == "" {
		return
	}
	comment := strings.ToLower(review.Comment)

	if review.Rating >= 4 && containsAny(comment, positiveKeywords) {
		agg.WhatsGood = appendExcerpt(agg.WhatsGood, review.Comment)
	}
	if review.Rating <= 2 && containsAny(comment, negativeKeywords) {
		agg.WhatsBad = appendExcerpt(agg.WhatsBad, review.Comment)
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func appendExcerpt(list []string, comment string) []string {
	excerpt := comment
	if len(excerpt) > excerptLen {
		excerpt = excerpt[:excerptLen]
	}
	for _, existing := range list {
		if existing == excerpt {
			return list
		}
	}
	return append(list, excerpt)
}
