package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shnickelbob/Fall-2025-MacroPal/models"
	"github.com/Shnickelbob/Fall-2025-MacroPal/utils"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeService exposes the recipe catalog and turns recipes into log
// entries.
type RecipeService struct {
	db   *gorm.DB
	logs *LogService
}

func NewRecipeService(db *gorm.DB, logs *LogService) *RecipeService {
	return &RecipeService{db: db, logs: logs}
}

func (s *RecipeService) List() ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	err := s.db.Find(&recipes).Error
	return recipes, err
}

func (s *RecipeService) Get(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// LogRecipe records eating some servings of a recipe as a single entry in
// today's log. The entry holds per-serving macros and the eaten servings
// folded into qty, so the read-side aggregation stays a single-factor
// multiply.
func (s *RecipeService) LogRecipe(userID, recipeID uint, servings float64) (*models.LogEntry, error) {
	recipe, err := s.Get(recipeID)
	if err != nil {
		return nil, err
	}
	return s.logs.Create(userID, recipeEntryInput(recipe, servings))
}

// recipeEntryInput scales a recipe down to per-serving macros and puts the
// eaten servings in qty.
func recipeEntryInput(recipe *models.Recipe, servings float64) LogEntryInput {
	if servings <= 0 {
		servings = 1
	}
	yield := recipe.Servings
	if yield <= 0 {
		yield = 1
	}

	return LogEntryInput{
		Name:    recipe.Name,
		Cal:     utils.NewNumeric(recipe.Calories / yield),
		Protein: utils.NewNumeric(recipe.Protein / yield),
		Carbs:   utils.NewNumeric(recipe.Carbs / yield),
		Fat:     utils.NewNumeric(recipe.Fat / yield),
		Qty:     utils.NewNumeric(servings),
	}
}
