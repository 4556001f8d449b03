package normalize

import (
	"strings"

	"nivaas/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Property maps one raw listing document to its display shape. The output is
// the union of the input fields plus normalized overrides; the input map is
// never mutated and no case ever errors, since source data quality varies.
func Property(doc bson.M) bson.M {
	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}

	images := resolveImages(doc)
	out["images"] = images

	if lat, lng, ok := resolveCoordinates(doc); ok {
		out["coordinates"] = bson.M{"lat": lat, "lng": lng}
		out["position"] = bson.M{"lat": lat, "lng": lng}
	} else {
		delete(out, "coordinates")
		delete(out, "position")
	}

	out["address"] = resolveAddress(doc)

	logicType, displayType := resolvePropertyType(doc)
	out["propertyType"] = logicType
	if displayType != "" {
		out["displayPropertyType"] = displayType
	}

	out["featuredImageUrl"] = resolveFeaturedImage(doc, images)
	out["is_verified"] = resolveVerified(doc)
	out["facilities"] = FacilityNames(doc["facilities"])

	if plans := resolveFloorPlans(doc); len(plans) > 0 {
		out["floorPlans"] = plans
	}

	if _, ok := doc["ratings"]; !ok {
		out["ratings"] = models.ZeroRatings()
	}
	if _, ok := doc["reviews"]; !ok {
		out["reviews"] = []models.Review{}
	}
	if _, ok := doc["nearbyPlaces"]; !ok {
		out["nearbyPlaces"] = bson.M{
			"school":   []any{},
			"hospital": []any{},
			"hotel":    []any{},
			"business": []any{},
		}
	}

	return out
}

// resolveImages concatenates interior then seat-layout image URLs; legacy
// string arrays are only consulted when both are empty.
func resolveImages(doc bson.M) []string {
	images := []string{}
	for _, key := range []string{"interiorImages", "seatLayoutImages"} {
		for _, entry := range AsSlice(doc[key]) {
			if m := AsMap(entry); m != nil {
				if url := strings.TrimSpace(AsString(m["url"])); url != "" {
					images = append(images, url)
				}
			}
		}
	}
	if len(images) > 0 {
		return images
	}
	for _, entry := range AsSlice(doc["images"]) {
		if url, ok := entry.(string); ok && strings.TrimSpace(url) != "" {
			images = append(images, url)
		}
	}
	return images
}

// resolveCoordinates tries coordinates.latitude/longitude, then
// coordinates.lat/lng, then position.lat/lng. Both values must be truthy.
func resolveCoordinates(doc bson.M) (lat, lng float64, ok bool) {
	coords := AsMap(doc["coordinates"])
	position := AsMap(doc["position"])

	lat = FirstFloat(
		func() float64 { return AsFloat(coords["latitude"]) },
		func() float64 { return AsFloat(coords["lat"]) },
		func() float64 { return AsFloat(position["lat"]) },
	)
	lng = FirstFloat(
		func() float64 { return AsFloat(coords["longitude"]) },
		func() float64 { return AsFloat(coords["lng"]) },
		func() float64 { return AsFloat(position["lng"]) },
	)
	if lat == 0 || lng == 0 {
		return 0, 0, false
	}
	return lat, lng, true
}

var addressFieldOrder = []string{
	"flat", "street", "locality", "city", "district",
	"state", "pincode", "country", "landmark",
}

// resolveAddress joins the structured address parts in display order. A source
// address that is already a string is used verbatim.
func resolveAddress(doc bson.M) string {
	if s, ok := doc["address"].(string); ok {
		return s
	}

	addr := AsMap(doc["address"])
	parts := []string{}
	for _, key := range addressFieldOrder {
		if v := strings.TrimSpace(AsString(addr[key])); v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}

	for _, key := range []string{"locality", "city", "state"} {
		if v := strings.TrimSpace(AsString(addr[key])); v != "" {
			return v
		}
		if v := FieldString(doc, key); v != "" {
			return v
		}
	}
	return "Location not specified"
}

// resolvePropertyType prefers the Category field for the logic value and keeps
// the original propertyType for display when the two disagree.
func resolvePropertyType(doc bson.M) (logic, display string) {
	original := FieldString(doc, "propertyType")
	if cat := FieldString(doc, "Category"); cat != "" {
		logic = strings.ToLower(cat)
	} else {
		logic = strings.ToLower(original)
	}
	if original != "" && original != logic {
		display = original
	} else if d := FieldString(doc, "displayPropertyType"); d != "" {
		display = d
	}
	return logic, display
}

func resolveFeaturedImage(doc bson.M, images []string) string {
	if m := AsMap(doc["featuredImage"]); m != nil {
		if url := strings.TrimSpace(AsString(m["url"])); url != "" {
			return url
		}
	}
	if url := FieldString(doc, "featuredImageUrl"); url != "" {
		return url
	}
	if len(images) > 0 {
		return images[0]
	}
	return ""
}

func resolveVerified(doc bson.M) bool {
	switch strings.ToLower(FieldString(doc, "verificationStatus")) {
	case "confirmed", "verified":
		return true
	}
	v, _ := doc["is_verified"].(bool)
	return v
}

// FacilityNames flattens heterogeneous facility entries (plain strings or
// {name}/{Name} objects) into name strings, dropping unresolvable entries.
func FacilityNames(v any) []string {
	names := []string{}
	for _, entry := range AsSlice(v) {
		switch t := entry.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				names = append(names, s)
			}
		default:
			m := AsMap(entry)
			if m == nil {
				continue
			}
			name := strings.TrimSpace(AsString(m["name"]))
			if name == "" {
				name = strings.TrimSpace(AsString(m["Name"]))
			}
			if name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

// resolveFloorPlans groups seat-layout image URLs under each of their tags.
// The legacy floorPlans field only applies when no image produced a grouping.
func resolveFloorPlans(doc bson.M) bson.M {
	plans := bson.M{}
	for _, entry := range AsSlice(doc["seatLayoutImages"]) {
		m := AsMap(entry)
		if m == nil {
			continue
		}
		url := strings.TrimSpace(AsString(m["url"]))
		if url == "" {
			continue
		}
		for _, tag := range AsSlice(m["tags"]) {
			name := strings.TrimSpace(AsString(tag))
			if name == "" {
				continue
			}
			urls, _ := plans[name].([]string)
			plans[name] = append(urls, url)
		}
	}
	if len(plans) > 0 {
		return plans
	}
	if legacy := AsMap(doc["floorPlans"]); legacy != nil {
		return legacy
	}
	return nil
}
