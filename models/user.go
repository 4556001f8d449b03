package models

import "time"

// User is keyed by phone number and upserted on login. There is no password;
// phone-number lookup is the whole identity story here.
type User struct {
	UserID      string    `json:"userid" bson:"userid"`
	PhoneNumber string    `json:"phoneNumber" bson:"phoneNumber"`
	Name        string    `json:"name,omitempty" bson:"name,omitempty"`
	Email       string    `json:"email,omitempty" bson:"email,omitempty"`
	Verified    bool      `json:"verified,omitempty" bson:"verified,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	LastLogin   time.Time `json:"lastLogin,omitempty" bson:"lastLogin,omitempty"`
}

type Favorite struct {
	UserPhoneNumber string    `json:"userPhoneNumber" bson:"userPhoneNumber"`
	PropertyID      string    `json:"propertyId" bson:"propertyId"`
	PropertyType    string    `json:"propertyType,omitempty" bson:"propertyType,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

type Page struct {
	Slug      string    `json:"slug" bson:"slug"`
	Title     string    `json:"title" bson:"title"`
	Body      string    `json:"body" bson:"body"`
	UpdatedAt time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
