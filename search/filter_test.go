package search

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func sampleDocs() []bson.M {
	return []bson.M{
		{
			"Category":     "Commercial",
			"category":     "managed space",
			"propertyType": "Managed Space",
			"address":      bson.M{"city": "Bengaluru"},
			"facilities":   []any{"Car Parking", bson.M{"name": "Cafeteria"}},
			"selectedFloors": []any{
				"3rd Floor", "5th Floor",
			},
			"floorConfigurations": []any{
				bson.M{"dedicatedCabin": bson.M{
					"seats":        "50-100",
					"pricePerSeat": "6000-8000",
					"pricePerSqft": "120",
				}},
			},
		},
		{
			"Category":     "Commercial",
			"category":     "unmanaged space",
			"propertyType": "Techpark",
			"address":      bson.M{"city": "Pune"},
			"facilities":   []any{"Gym"},
		},
		{
			"Category":     "Residential",
			"propertyType": "Villa",
			"selectedType": "sale",
			"address":      bson.M{"city": "Bengaluru"},
		},
		{
			"Category":     "Residential",
			"propertyType": "PG/Hostel",
			"selectedType": "pg",
			"address":      bson.M{"city": "Chennai"},
		},
	}
}

// filter({}) must be the identity.
func TestFilterVacuousParams(t *testing.T) {
	docs := sampleDocs()
	got := Filter(docs, Params{})
	if !reflect.DeepEqual(got, docs) {
		t.Fatalf("empty params changed the result: %d of %d", len(got), len(docs))
	}
	got = Filter(docs, Params{City: "Any", Type: "see-all"})
	if len(got) != len(docs) {
		t.Fatalf("Any/see-all params should be vacuous, got %d", len(got))
	}
}

func TestFilterCategory(t *testing.T) {
	got := Filter(sampleDocs(), Params{Category: "commercial"})
	if len(got) != 2 {
		t.Fatalf("got %d commercial docs, want 2", len(got))
	}
	for _, doc := range got {
		if doc["Category"] != "Commercial" {
			t.Fatalf("non-commercial doc leaked: %v", doc["Category"])
		}
	}
}

func TestFilterCity(t *testing.T) {
	got := Filter(sampleDocs(), Params{City: "bengaluru"})
	if len(got) != 2 {
		t.Fatalf("got %d, want 2", len(got))
	}
}

// Known commercial type labels require an exact category match; the
// residential branch stays substring-based.
func TestFilterCommercialStrictMatch(t *testing.T) {
	got := Filter(sampleDocs(), Params{Category: "commercial", PropertyType: "managed space"})
	if len(got) != 1 {
		t.Fatalf("got %d, want 1", len(got))
	}
	if got[0]["category"] != "managed space" {
		t.Fatalf("wrong doc: %v", got[0]["category"])
	}
}

func TestFilterPropertyTypeSubstring(t *testing.T) {
	got := Filter(sampleDocs(), Params{PropertyType: "tech"})
	if len(got) != 1 || got[0]["propertyType"] != "Techpark" {
		t.Fatalf("substring match failed: %d", len(got))
	}
}

func TestFilterPGHostelSpecialCase(t *testing.T) {
	for _, q := range []string{"pg", "pg/hostel", "pg-hostel"} {
		got := Filter(sampleDocs(), Params{PropertyType: q})
		if len(got) != 1 || got[0]["propertyType"] != "PG/Hostel" {
			t.Fatalf("query %q: got %d", q, len(got))
		}
	}
}

func TestFilterResidentialType(t *testing.T) {
	got := Filter(sampleDocs(), Params{Category: "residential", Type: "sale"})
	if len(got) != 1 || got[0]["selectedType"] != "sale" {
		t.Fatalf("got %d", len(got))
	}
}

func TestFilterFloorsOffered(t *testing.T) {
	got := Filter(sampleDocs(), Params{FloorsOffered: "3rd floor"})
	if len(got) != 1 {
		t.Fatalf("got %d, want 1", len(got))
	}
	if len(Filter(sampleDocs(), Params{FloorsOffered: "9th Floor"})) != 0 {
		t.Fatal("9th Floor should match nothing")
	}
}

func TestFilterFacilityParkingSpecialCase(t *testing.T) {
	got := Filter(sampleDocs(), Params{Facilities: "parking"})
	if len(got) != 1 {
		t.Fatalf("got %d, want 1 (Car Parking)", len(got))
	}
}

func TestFilterCabinRanges(t *testing.T) {
	docs := sampleDocs()

	got := Filter(docs, Params{Type: "Price Per Desk", PricePerDesk: "5000-8000"})
	if len(got) != 1 {
		t.Fatalf("price per desk: got %d, want 1", len(got))
	}

	got = Filter(docs, Params{Type: "No. Of Seats", NoOfSeats: "100+"})
	if len(got) != 0 {
		t.Fatalf("seats 100+: got %d, want 0 (first integer is 50)", len(got))
	}

	got = Filter(docs, Params{Type: "No. Of Seats", NoOfSeats: "50+"})
	if len(got) != 1 {
		t.Fatalf("seats 50+: got %d, want 1", len(got))
	}
}

func TestFilterPreferences(t *testing.T) {
	got := Filter(sampleDocs(), Params{Type: "Managed Space", Preferences: "cafeteria"})
	if len(got) != 1 {
		t.Fatalf("got %d, want 1", len(got))
	}
	// Preferences outside managed/unmanaged searches are ignored.
	got = Filter(sampleDocs(), Params{Preferences: "cafeteria"})
	if len(got) != len(sampleDocs()) {
		t.Fatalf("got %d, want all", len(got))
	}
}

// Every result of a conjunctive query must satisfy each predicate alone.
func TestFilterConjunction(t *testing.T) {
	docs := sampleDocs()
	p := Params{Category: "commercial", City: "Bengaluru", Facilities: "Cafeteria"}
	got := Filter(docs, p)
	for _, doc := range got {
		for _, single := range []Params{
			{Category: p.Category},
			{City: p.City},
			{Facilities: p.Facilities},
		} {
			if len(Filter([]bson.M{doc}, single)) != 1 {
				t.Fatalf("doc fails individual predicate %+v", single)
			}
		}
	}
	if len(got) != 1 {
		t.Fatalf("got %d, want 1", len(got))
	}
}
