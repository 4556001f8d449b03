package normalize

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestImagesConcatAndLegacyFallback(t *testing.T) {
	doc := bson.M{
		"interiorImages": []any{
			bson.M{"url": "a.jpg"},
			bson.M{"tags": []any{"no-url"}},
			bson.M{"url": "b.jpg"},
		},
		"seatLayoutImages": []any{
			bson.M{"url": "c.jpg", "tags": []any{"3rd Floor"}},
		},
		"images": []any{"legacy.jpg"},
	}
	out := Property(doc)
	got := out["images"].([]string)
	want := []string{"a.jpg", "b.jpg", "c.jpg"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("images = %v, want %v", got, want)
	}

	legacy := Property(bson.M{"images": []any{"x.jpg", "y.jpg"}})
	if got := legacy["images"].([]string); !reflect.DeepEqual(got, []string{"x.jpg", "y.jpg"}) {
		t.Fatalf("legacy images = %v", got)
	}
}

func TestAddressJoin(t *testing.T) {
	doc := bson.M{"address": bson.M{
		"flat":     "A-101",
		"street":   " MG Road ",
		"city":     "Bengaluru",
		"state":    "Karnataka",
		"pincode":  560001,
		"landmark": "Near Metro",
	}}
	out := Property(doc)
	want := "A-101, MG Road, Bengaluru, Karnataka, 560001, Near Metro"
	if out["address"] != want {
		t.Fatalf("address = %q, want %q", out["address"], want)
	}
}

func TestAddressStringVerbatim(t *testing.T) {
	out := Property(bson.M{"address": "12, Custom Street, Pune"})
	if out["address"] != "12, Custom Street, Pune" {
		t.Fatalf("address = %q", out["address"])
	}
}

func TestAddressFallbacks(t *testing.T) {
	out := Property(bson.M{"address": bson.M{}, "city": "Mumbai"})
	if out["address"] != "Mumbai" {
		t.Fatalf("address = %q, want Mumbai", out["address"])
	}

	out = Property(bson.M{})
	if out["address"] != "Location not specified" {
		t.Fatalf("address = %q", out["address"])
	}
}

func TestCoordinateResolutionOrder(t *testing.T) {
	cases := []struct {
		name string
		doc  bson.M
		lat  float64
		lng  float64
	}{
		{"latitude-longitude", bson.M{"coordinates": bson.M{"latitude": 12.9, "longitude": 77.6}}, 12.9, 77.6},
		{"lat-lng", bson.M{"coordinates": bson.M{"lat": 19.0, "lng": 72.8}}, 19.0, 72.8},
		{"position", bson.M{"position": bson.M{"lat": 28.6, "lng": 77.2}}, 28.6, 77.2},
	}
	for _, tc := range cases {
		out := Property(tc.doc)
		coords, ok := out["coordinates"].(bson.M)
		if !ok {
			t.Fatalf("%s: coordinates missing", tc.name)
		}
		if coords["lat"] != tc.lat || coords["lng"] != tc.lng {
			t.Fatalf("%s: coordinates = %v", tc.name, coords)
		}
	}
}

// Documents without usable coordinates must omit the field entirely rather
// than emit null lat/lng.
func TestCoordinateTotality(t *testing.T) {
	for _, doc := range []bson.M{
		{},
		{"coordinates": bson.M{"latitude": 12.9}},
		{"coordinates": bson.M{"lat": 0, "lng": 77.6}},
	} {
		out := Property(doc)
		if _, ok := out["coordinates"]; ok {
			t.Fatalf("coordinates present for %v", doc)
		}
		if _, ok := out["position"]; ok {
			t.Fatalf("position present for %v", doc)
		}
	}
}

func TestPropertyTypeResolution(t *testing.T) {
	out := Property(bson.M{"Category": "Commercial", "propertyType": "Techpark"})
	if out["propertyType"] != "commercial" {
		t.Fatalf("propertyType = %q", out["propertyType"])
	}
	if out["displayPropertyType"] != "Techpark" {
		t.Fatalf("displayPropertyType = %q", out["displayPropertyType"])
	}

	out = Property(bson.M{"propertyType": "Villa"})
	if out["propertyType"] != "villa" || out["displayPropertyType"] != "Villa" {
		t.Fatalf("got %q / %q", out["propertyType"], out["displayPropertyType"])
	}
}

func TestFeaturedImageChain(t *testing.T) {
	out := Property(bson.M{
		"featuredImage":  bson.M{"url": "feat.jpg"},
		"interiorImages": []any{bson.M{"url": "a.jpg"}},
	})
	if out["featuredImageUrl"] != "feat.jpg" {
		t.Fatalf("featuredImageUrl = %q", out["featuredImageUrl"])
	}

	out = Property(bson.M{"interiorImages": []any{bson.M{"url": "a.jpg"}}})
	if out["featuredImageUrl"] != "a.jpg" {
		t.Fatalf("fallback featuredImageUrl = %q", out["featuredImageUrl"])
	}
}

func TestVerifiedResolution(t *testing.T) {
	if !Property(bson.M{"verificationStatus": "confirmed"})["is_verified"].(bool) {
		t.Fatal("confirmed should verify")
	}
	if !Property(bson.M{"is_verified": true})["is_verified"].(bool) {
		t.Fatal("is_verified true should hold")
	}
	if Property(bson.M{"verificationStatus": "pending"})["is_verified"].(bool) {
		t.Fatal("pending should not verify")
	}
}

func TestFacilityFlattening(t *testing.T) {
	got := FacilityNames([]any{
		"WiFi",
		bson.M{"name": "Parking"},
		bson.M{"Name": "Gym"},
		bson.M{"image": "x.png"},
		42,
	})
	want := []string{"WiFi", "Parking", "Gym"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("facilities = %v, want %v", got, want)
	}
}

func TestFloorPlanGrouping(t *testing.T) {
	out := Property(bson.M{
		"seatLayoutImages": []any{
			bson.M{"url": "f1.jpg", "tags": []any{"1st Floor"}},
			bson.M{"url": "f2.jpg", "tags": []any{"1st Floor", "2nd Floor"}},
		},
	})
	plans := out["floorPlans"].(bson.M)
	if !reflect.DeepEqual(plans["1st Floor"], []string{"f1.jpg", "f2.jpg"}) {
		t.Fatalf("1st Floor = %v", plans["1st Floor"])
	}
	if !reflect.DeepEqual(plans["2nd Floor"], []string{"f2.jpg"}) {
		t.Fatalf("2nd Floor = %v", plans["2nd Floor"])
	}
}

func TestDefaults(t *testing.T) {
	out := Property(bson.M{})
	if out["reviews"] == nil || out["ratings"] == nil || out["nearbyPlaces"] == nil {
		t.Fatalf("missing defaults: %v", out)
	}
}

// Normalizing an already-normalized document must not drift.
func TestIdempotence(t *testing.T) {
	doc := bson.M{
		"Category":     "Commercial",
		"propertyType": "Techpark",
		"address":      bson.M{"city": "Bengaluru", "state": "Karnataka"},
		"coordinates":  bson.M{"latitude": 12.9, "longitude": 77.6},
		"interiorImages": []any{
			bson.M{"url": "a.jpg"},
		},
		"facilities": []any{"WiFi", bson.M{"name": "Parking"}},
	}
	once := Property(doc)
	twice := Property(once)

	for _, key := range []string{"address", "propertyType", "featuredImageUrl", "displayPropertyType"} {
		if once[key] != twice[key] {
			t.Fatalf("%s drifted: %v vs %v", key, once[key], twice[key])
		}
	}
	if !reflect.DeepEqual(once["images"], twice["images"]) {
		t.Fatalf("images drifted: %v vs %v", once["images"], twice["images"])
	}
	if !reflect.DeepEqual(once["facilities"], twice["facilities"]) {
		t.Fatalf("facilities drifted: %v vs %v", once["facilities"], twice["facilities"])
	}
	if !reflect.DeepEqual(once["coordinates"], twice["coordinates"]) {
		t.Fatalf("coordinates drifted")
	}
}

func TestAsMapDocumentShapes(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bson.M
	}{
		{"bson.M", bson.M{"city": "Pune"}, bson.M{"city": "Pune"}},
		{"plain map", map[string]any{"city": "Pune"}, bson.M{"city": "Pune"}},
		{"bson.D", bson.D{{Key: "city", Value: "Pune"}}, bson.M{"city": "Pune"}},
		{"scalar", "Pune", nil},
		{"nil", nil, nil},
	}
	for _, tc := range cases {
		got := AsMap(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
