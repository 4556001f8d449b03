package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property covers the fields this service writes when a commercial listing is
// created. Listings read back from either collection stay schemaless (bson.M)
// because historical documents carry inconsistent field names and shapes; the
// normalize package canonicalizes them on the way out.
type Property struct {
	ID                  primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	PropertyName        string               `json:"propertyName,omitempty" bson:"propertyName,omitempty"`
	Name                string               `json:"name,omitempty" bson:"name,omitempty"`
	Category            string               `json:"Category,omitempty" bson:"Category,omitempty"`
	PropertyType        string               `json:"propertyType,omitempty" bson:"propertyType,omitempty"`
	SelectedType        string               `json:"selectedType,omitempty" bson:"selectedType,omitempty"`
	Address             *Address             `json:"address,omitempty" bson:"address,omitempty"`
	Coordinates         *Coordinates         `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
	FeaturedImage       *ImageRef            `json:"featuredImage,omitempty" bson:"featuredImage,omitempty"`
	InteriorImages      []ImageRef           `json:"interiorImages,omitempty" bson:"interiorImages,omitempty"`
	SeatLayoutImages    []ImageRef           `json:"seatLayoutImages,omitempty" bson:"seatLayoutImages,omitempty"`
	FloorConfigurations []FloorConfiguration `json:"floorConfigurations,omitempty" bson:"floorConfigurations,omitempty"`
	SelectedFloors      []string             `json:"selectedFloors,omitempty" bson:"selectedFloors,omitempty"`
	Facilities          []any                `json:"facilities,omitempty" bson:"facilities,omitempty"`
	Amenities           []Amenity            `json:"amenities,omitempty" bson:"amenities,omitempty"`
	OriginalPrice       float64              `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	DiscountedPrice     float64              `json:"discountedPrice,omitempty" bson:"discountedPrice,omitempty"`
	AdditionalPrice     float64              `json:"additionalPrice,omitempty" bson:"additionalPrice,omitempty"`
	ExpectedRent        float64              `json:"expectedRent,omitempty" bson:"expectedRent,omitempty"`
	VerificationStatus  string               `json:"verificationStatus,omitempty" bson:"verificationStatus,omitempty"`
	BuilderID           string               `json:"builderId,omitempty" bson:"builderId,omitempty"`
	Ratings             *Ratings             `json:"ratings,omitempty" bson:"ratings,omitempty"`
	Reviews             []Review             `json:"reviews,omitempty" bson:"reviews,omitempty"`
}

type Address struct {
	Flat     string `json:"flat,omitempty" bson:"flat,omitempty"`
	Street   string `json:"street,omitempty" bson:"street,omitempty"`
	Locality string `json:"locality,omitempty" bson:"locality,omitempty"`
	City     string `json:"city,omitempty" bson:"city,omitempty"`
	District string `json:"district,omitempty" bson:"district,omitempty"`
	State    string `json:"state,omitempty" bson:"state,omitempty"`
	Pincode  string `json:"pincode,omitempty" bson:"pincode,omitempty"`
	Country  string `json:"country,omitempty" bson:"country,omitempty"`
	Landmark string `json:"landmark,omitempty" bson:"landmark,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
	Lat       float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng       float64 `json:"lng,omitempty" bson:"lng,omitempty"`
}

type ImageRef struct {
	URL  string   `json:"url,omitempty" bson:"url,omitempty"`
	Tags []string `json:"tags,omitempty" bson:"tags,omitempty"`
}

type Amenity struct {
	Name  string `json:"name,omitempty" bson:"name,omitempty"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
}

// DedicatedCabin keeps its seat and price fields as range-encoded strings
// ("6000-8000", "< 5000", "100+") exactly as stored.
type DedicatedCabin struct {
	Seats        string `json:"seats,omitempty" bson:"seats,omitempty"`
	PricePerSeat string `json:"pricePerSeat,omitempty" bson:"pricePerSeat,omitempty"`
	PricePerSqft string `json:"pricePerSqft,omitempty" bson:"pricePerSqft,omitempty"`
}

type FloorConfiguration struct {
	Floor          string          `json:"floor,omitempty" bson:"floor,omitempty"`
	DedicatedCabin *DedicatedCabin `json:"dedicatedCabin,omitempty" bson:"dedicatedCabin,omitempty"`
}
