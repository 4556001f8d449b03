package models

import "time"

type Builder struct {
	BuilderID      string            `json:"builderid" bson:"builderid"`
	Name           string            `json:"name" bson:"name"`
	FoundedYear    int               `json:"foundedYear,omitempty" bson:"foundedYear,omitempty"`
	Headquarters   string            `json:"headquarters,omitempty" bson:"headquarters,omitempty"`
	Description    string            `json:"description,omitempty" bson:"description,omitempty"`
	Logo           string            `json:"logo,omitempty" bson:"logo,omitempty"`
	Gallery        []string          `json:"gallery,omitempty" bson:"gallery,omitempty"`
	Awards         []string          `json:"awards,omitempty" bson:"awards,omitempty"`
	KeyPeople      []KeyPerson       `json:"keyPeople,omitempty" bson:"keyPeople,omitempty"`
	Stats          map[string]string `json:"stats,omitempty" bson:"stats,omitempty"`
	ContactEmail   string            `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
	ContactPhone   string            `json:"contactPhone,omitempty" bson:"contactPhone,omitempty"`
	Website        string            `json:"website,omitempty" bson:"website,omitempty"`
	OngoingCount   int               `json:"ongoingCount,omitempty" bson:"ongoingCount,omitempty"`
	CompletedCount int               `json:"completedCount,omitempty" bson:"completedCount,omitempty"`
	CreatedAt      time.Time         `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt      time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type KeyPerson struct {
	Name  string `json:"name" bson:"name"`
	Role  string `json:"role,omitempty" bson:"role,omitempty"`
	Photo string `json:"photo,omitempty" bson:"photo,omitempty"`
}
