package models

import (
	"gorm.io/gorm"
)

// User carries login credentials plus the four daily macro targets. Goals are
// scalar columns on the user row and stay at zero until the user sets them.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`

	GoalCals    float64 `gorm:"default:0" json:"goal_cals"`
	GoalProtein float64 `gorm:"default:0" json:"goal_protein"`
	GoalCarbs   float64 `gorm:"default:0" json:"goal_carbs"`
	GoalFat     float64 `gorm:"default:0" json:"goal_fat"`

	SavedFoods []Food `gorm:"many2many:user_saved_foods" json:"-"`
}

// Goals is the wire shape for the four macro targets.
type Goals struct {
	Cal     float64 `json:"cal"`
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

func (u *User) Goals() Goals {
	return Goals{
		Cal:     u.GoalCals,
		Protein: u.GoalProtein,
		Carbs:   u.GoalCarbs,
		Fat:     u.GoalFat,
	}
}
