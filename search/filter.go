package search

import (
	"net/url"
	"strings"

	"nivaas/normalize"
	"nivaas/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// Params holds the raw query parameters of a filtered listing request.
// Empty values, "Any" and "see-all" make the matching predicate vacuous.
type Params struct {
	City          string
	Type          string
	Category      string
	PropertyType  string
	FloorsOffered string
	Facilities    string
	Preferences   string
	PricePerDesk  string
	PricePerSqft  string
	NoOfSeats     string
}

func ParamsFromQuery(q url.Values) Params {
	return Params{
		City:          q.Get("city"),
		Type:          q.Get("type"),
		Category:      q.Get("Category"),
		PropertyType:  q.Get("propertyType"),
		FloorsOffered: q.Get("floorsOffered"),
		Facilities:    q.Get("facilities"),
		Preferences:   q.Get("preferences"),
		PricePerDesk:  q.Get("pricePerDesk"),
		PricePerSqft:  q.Get("pricePerSqft"),
		NoOfSeats:     q.Get("noOfSeats"),
	}
}

func vacuous(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "any", "see-all", "see all":
		return true
	}
	return false
}

// Filter returns the subsequence of docs satisfying every supplied predicate,
// preserving input order (commercial entries come before residential ones in
// the merged input).
func Filter(docs []bson.M, p Params) []bson.M {
	out := []bson.M{}
	for _, doc := range docs {
		if matches(doc, p) {
			out = append(out, doc)
		}
	}
	return out
}

func matches(doc bson.M, p Params) bool {
	if !vacuous(p.Category) && !matchCategory(doc, p.Category) {
		return false
	}
	if !vacuous(p.PropertyType) {
		if !matchPropertyType(doc, p.PropertyType) {
			return false
		}
	} else if !vacuous(p.Type) {
		if !matchType(doc, p) {
			return false
		}
	}
	if !vacuous(p.City) && !matchCity(doc, p.City) {
		return false
	}
	if !vacuous(p.FloorsOffered) && !matchFloors(doc, p.FloorsOffered) {
		return false
	}
	if !vacuous(p.Facilities) && !matchFacility(doc, p.Facilities) {
		return false
	}
	if !vacuous(p.Preferences) && !matchPreferences(doc, p) {
		return false
	}
	return true
}

func isCommercial(doc bson.M) bool {
	return strings.EqualFold(normalize.FieldString(doc, "Category"), "commercial")
}

func matchCategory(doc bson.M, want string) bool {
	return strings.EqualFold(normalize.FieldString(doc, "Category"), strings.TrimSpace(want))
}

// eitherContains is the loose matching rule used throughout: equal, or
// substring in either direction, case-insensitive.
func eitherContains(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}

func isPGQuery(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "pg", "pg/hostel", "pg-hostel":
		return true
	}
	return false
}

func matchPropertyType(doc bson.M, query string) bool {
	propType := normalize.FieldString(doc, "propertyType")
	selType := normalize.FieldString(doc, "selectedType")

	if isPGQuery(query) {
		for _, v := range []string{strings.ToLower(propType), strings.ToLower(selType)} {
			if strings.Contains(v, "pg") || strings.Contains(v, "hostel") {
				return true
			}
		}
		return false
	}

	if isCommercial(doc) {
		// Known commercial type labels match the category field exactly; free
		// text subtypes ("techpark") fall through to the loose rule.
		if mapped, ok := commercialTypeMap[strings.ToLower(strings.TrimSpace(query))]; ok {
			return strings.ToLower(normalize.FieldString(doc, "category")) == mapped
		}
		return eitherContains(propType, query)
	}
	return eitherContains(propType, query) || eitherContains(selType, query)
}

// residentialTypeMap maps UI type labels onto selectedType values.
var residentialTypeMap = map[string]string{
	"rent":      "rent",
	"sale":      "sale",
	"pg/hostel": "pg",
	"flatmates": "flatmates",
}

// commercialTypeMap maps UI type labels onto the lower-cased commercial
// category field. The commercial branch requires an exact match where the
// residential branch allows containment; the asymmetry is inherited behavior,
// kept until product says otherwise.
var commercialTypeMap = map[string]string{
	"managed space":    "managed space",
	"unmanaged space":  "unmanaged space",
	"coworking space":  "coworking space",
	"private office":   "private office",
	"shops/showrooms":  "shops/showrooms",
	"office space":     "office space",
	"land/plots":       "land/plots",
	"industrial space": "industrial space",
}

var rangeFilterTypes = map[string]bool{
	"price per desk": true,
	"price per sqft": true,
	"no. of seats":   true,
}

func matchType(doc bson.M, p Params) bool {
	typ := strings.ToLower(strings.TrimSpace(p.Type))

	if rangeFilterTypes[typ] {
		return isCommercial(doc) && matchCabinRanges(doc, p)
	}

	if isCommercial(doc) {
		mapped, ok := commercialTypeMap[typ]
		if !ok {
			return false
		}
		return strings.ToLower(normalize.FieldString(doc, "category")) == mapped
	}

	mapped, ok := residentialTypeMap[typ]
	if !ok {
		return false
	}
	selType := normalize.FieldString(doc, "selectedType")
	return eitherContains(selType, mapped)
}

// matchCabinRanges requires at least one floor configuration whose dedicated
// cabin satisfies every supplied range constraint.
func matchCabinRanges(doc bson.M, p Params) bool {
	configs := normalize.AsSlice(doc["floorConfigurations"])
	if len(configs) == 0 {
		return false
	}
	for _, entry := range configs {
		cfg := normalize.AsMap(entry)
		cabin := normalize.AsMap(cfg["dedicatedCabin"])
		if cabin == nil {
			continue
		}
		ok := true
		if !vacuous(p.PricePerDesk) && !MatchesRange(normalize.AsString(cabin["pricePerSeat"]), p.PricePerDesk) {
			ok = false
		}
		if ok && !vacuous(p.PricePerSqft) && !MatchesRange(normalize.AsString(cabin["pricePerSqft"]), p.PricePerSqft) {
			ok = false
		}
		if ok && !vacuous(p.NoOfSeats) && !MatchesRange(normalize.AsString(cabin["seats"]), p.NoOfSeats) {
			ok = false
		}
		if ok {
			return true
		}
	}
	return false
}

func matchCity(doc bson.M, query string) bool {
	var city string
	switch addr := doc["address"].(type) {
	case string:
		city = addr
	default:
		city = strings.TrimSpace(normalize.AsString(normalize.AsMap(addr)["city"]))
	}
	return eitherContains(city, query)
}

func matchFloors(doc bson.M, query string) bool {
	for _, entry := range normalize.AsSlice(doc["selectedFloors"]) {
		if strings.EqualFold(strings.TrimSpace(normalize.AsString(entry)), strings.TrimSpace(query)) {
			return true
		}
	}
	return false
}

func matchFacility(doc bson.M, query string) bool {
	query = strings.TrimSpace(query)
	for _, name := range normalize.FacilityNames(doc["facilities"]) {
		if strings.EqualFold(name, query) {
			return true
		}
		if strings.EqualFold(query, "parking") && strings.Contains(strings.ToLower(name), "parking") {
			return true
		}
		if eitherContains(name, query) {
			return true
		}
	}
	return false
}

// preferenceMap maps the controlled preference vocabulary onto facility-name
// substrings. Preferences only apply to managed and unmanaged space searches.
var preferenceMap = map[string]string{
	"near-metro": "Metro",
	"parking":    "Parking",
	"cafeteria":  "Cafeteria",
	"gym":        "Gym",
}

func matchPreferences(doc bson.M, p Params) bool {
	typ := strings.ToLower(strings.TrimSpace(p.Type))
	if typ != "managed space" && typ != "unmanaged space" {
		return true
	}
	want, ok := preferenceMap[strings.ToLower(strings.TrimSpace(p.Preferences))]
	if !ok {
		return true
	}
	for _, name := range normalize.FacilityNames(doc["facilities"]) {
		if utils.ContainsIgnoreCase(name, want) {
			return true
		}
	}
	return false
}
