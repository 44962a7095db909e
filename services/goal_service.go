package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shnickelbob/Fall-2025-MacroPal/models"
	"github.com/Shnickelbob/Fall-2025-MacroPal/utils"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEmptyGoalPatch = errors.New("no valid goal fields provided")
)

// GoalService reads and patches the four macro targets stored on the user
// row.
type GoalService struct {
	db *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{db: db}
}

// Get returns the user's goals, each field defaulting to zero when never set.
func (s *GoalService) Get(userID uint) (models.Goals, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Goals{}, ErrUserNotFound
		}
		return models.Goals{}, err
	}
	return user.Goals(), nil
}

// GoalPatch carries an optional value per macro. A field is applied only when
// it is present and decodes to a usable number; absent, empty and
// non-numeric fields leave the stored value untouched.
type GoalPatch struct {
	Cal     *utils.Numeric `json:"cal"`
	Protein *utils.Numeric `json:"protein"`
	Carbs   *utils.Numeric `json:"carbs"`
	Fat     *utils.Numeric `json:"fat"`
}

// Fields maps the usable patch values onto their columns.
func (p GoalPatch) Fields() map[string]interface{} {
	set := map[string]interface{}{}
	if p.Cal != nil && p.Cal.Valid() {
		set["goal_cals"] = p.Cal.Or(0)
	}
	if p.Protein != nil && p.Protein.Valid() {
		set["goal_protein"] = p.Protein.Or(0)
	}
	if p.Carbs != nil && p.Carbs.Valid() {
		set["goal_carbs"] = p.Carbs.Or(0)
	}
	if p.Fat != nil && p.Fat.Valid() {
		set["goal_fat"] = p.Fat.Or(0)
	}
	return set
}

// Patch overwrites only the supplied fields in one field-level UPDATE and
// returns the fresh goals. A strict subset (say, calories only) never
// disturbs the other targets.
func (s *GoalService) Patch(userID uint, p GoalPatch) (models.Goals, error) {
	set := p.Fields()
	if len(set) == 0 {
		return models.Goals{}, ErrEmptyGoalPatch
	}

	tx := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(set)
	if tx.Error != nil {
		return models.Goals{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.Goals{}, ErrUserNotFound
	}

	return s.Get(userID)
}
