package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recipe stores whole-recipe macros plus how many servings the recipe makes.
// Ingredients are a display snapshot, not catalog references.
type Recipe struct {
	gorm.Model
	Name        string         `gorm:"not null" json:"name"`
	Calories    float64        `json:"calories"`
	Protein     float64        `json:"protein"`
	Fat         float64        `json:"fat"`
	Carbs       float64        `json:"carbs"`
	Servings    float64        `gorm:"default:1" json:"servings"`
	Ingredients datatypes.JSON `json:"ingredients"`
}
