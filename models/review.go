package models

// Review lives embedded in its property document, newest first.
type Review struct {
	ReviewID string `json:"reviewId,omitempty" bson:"reviewId,omitempty"`
	User     string `json:"user" bson:"user"`
	Rating   int    `json:"rating" bson:"rating"`
	Comment  string `json:"comment,omitempty" bson:"comment,omitempty"`
	Date     string `json:"date,omitempty" bson:"date,omitempty"`
}

// Ratings is the aggregate derived from the full review list.
// Invariant: TotalRatings == len(reviews), Breakdown[k] == count(rating==k),
// Overall == round1 of the weighted mean.
type Ratings struct {
	Overall      float64        `json:"overall" bson:"overall"`
	TotalRatings int            `json:"totalRatings" bson:"totalRatings"`
	Breakdown    map[string]int `json:"breakdown" bson:"breakdown"`
	WhatsGood    []string       `json:"whatsGood" bson:"whatsGood"`
	WhatsBad     []string       `json:"whatsBad" bson:"whatsBad"`
}

// ZeroRatings returns the zero-state aggregate for properties with no reviews.
func ZeroRatings() Ratings {
	return Ratings{
		Overall:      0,
		TotalRatings: 0,
		Breakdown:    map[string]int{},
		WhatsGood:    []string{},
		WhatsBad:     []string{},
	}
}
