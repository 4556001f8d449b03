package utils

import (
	"context"
	"net/http"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindAndDecode runs a Find and decodes every document into a slice of T.
// An empty result decodes to an empty (non-nil) slice.
func FindAndDecode[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ParsePagination reads skip/limit from the query string, clamping limit
// between 1 and max.
func ParsePagination(r *http.Request, defaultLimit, max int64) (skip, limit int64) {
	q := r.URL.Query()
	skip, _ = strconv.ParseInt(q.Get("skip"), 10, 64)
	if skip < 0 {
		skip = 0
	}
	limit, _ = strconv.ParseInt(q.Get("limit"), 10, 64)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > max {
		limit = max
	}
	return skip, limit
}

// ParseSort maps a "field" / "-field" query value onto a Mongo sort document,
// falling back to def. allowed restricts sortable fields when non-nil.
func ParseSort(value string, def bson.D, allowed map[string]bool) bson.D {
	if value == "" {
		return def
	}
	dir := 1
	if value[0] == '-' {
		dir = -1
		value = value[1:]
	}
	if value == "" {
		return def
	}
	if allowed != nil && !allowed[value] {
		return def
	}
	return bson.D{{Key: value, Value: dir}}
}
