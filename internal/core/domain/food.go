package domain

import "time"

// NutritionalFact is one nutrient amount listed for a food.
type NutritionalFact struct {
	Nutrient string  `json:"nutrient" bson:"nutrient"`
	Value    float64 `json:"value" bson:"value"`
	Unit     string  `json:"unit" bson:"unit"`
}

// Food is a catalogue entry trainers use when building diet plans.
type Food struct {
	ID               string            `json:"name" bson:"_id"`
	Ingredient       string            `json:"ingredient" bson:"ingredient"`
	Description      string            `json:"description,omitempty" bson:"description,omitempty"`
	Category         string            `json:"category,omitempty" bson:"category,omitempty"`
	FDCID            string            `json:"fdcid,omitempty" bson:"fdcid,omitempty"`
	Image            string            `json:"image,omitempty" bson:"image,omitempty"`
	Enabled          bool              `json:"enabled" bson:"enabled"`
	NutritionalFacts []NutritionalFact `json:"nutritional_facts" bson:"nutritional_facts"`
	CreatedAt        time.Time         `json:"creation" bson:"created_at"`
}
