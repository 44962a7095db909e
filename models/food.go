package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Food is a catalog entry users search and log from.
type Food struct {
	gorm.Model
	Name     string         `gorm:"uniqueIndex;not null" json:"name"`
	Calories float64        `json:"calories"`
	Protein  float64        `json:"protein"`
	Fat      float64        `json:"fat"`
	Carbs    float64        `json:"carbs"`
	Tags     datatypes.JSON `json:"tags"` // lowercase strings, e.g. ["fruit","snack"]
}
