package services

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Shnickelbob/Fall-2025-MacroPal/models"
	"github.com/Shnickelbob/Fall-2025-MacroPal/utils"
)

var (
	ErrFoodExists   = errors.New("food already exists")
	ErrFoodNotFound = errors.New("food not found")
)

const (
	searchDefaultLimit = 25
	searchMaxLimit     = 50
)

// FoodService manages the shared food catalog.
type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

// FoodInput is the normalized food-create payload.
type FoodInput struct {
	Name     string
	Calories utils.Numeric
	Protein  utils.Numeric
	Fat      utils.Numeric
	Carbs    utils.Numeric
	Tags     []string
}

// ParseFoodPayload decodes a food payload, accepting both the legacy
// capitalized field names and the lowercase ones via the alias table.
func ParseFoodPayload(data []byte) (FoodInput, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return FoodInput{}, err
	}
	norm := utils.NormalizeFoodPayload(raw)

	var in FoodInput
	if v, ok := norm["name"]; ok {
		_ = json.Unmarshal(v, &in.Name)
	}
	if v, ok := norm["calories"]; ok {
		_ = in.Calories.UnmarshalJSON(v)
	}
	if v, ok := norm["protein"]; ok {
		_ = in.Protein.UnmarshalJSON(v)
	}
	if v, ok := norm["fat"]; ok {
		_ = in.Fat.UnmarshalJSON(v)
	}
	if v, ok := norm["carbs"]; ok {
		_ = in.Carbs.UnmarshalJSON(v)
	}
	if v, ok := norm["tags"]; ok {
		_ = json.Unmarshal(v, &in.Tags)
	}

	in.Name = strings.TrimSpace(in.Name)
	for i, t := range in.Tags {
		in.Tags[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return in, nil
}

// Create adds a catalog food, rejecting case-insensitive duplicate names.
func (s *FoodService) Create(in FoodInput) (*models.Food, error) {
	var existing models.Food
	err := s.db.Where("LOWER(name) = LOWER(?)", in.Name).First(&existing).Error
	if err == nil {
		return nil, ErrFoodExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tags, err := json.Marshal(in.Tags)
	if err != nil {
		return nil, err
	}

	food := &models.Food{
		Name:     in.Name,
		Calories: in.Calories.Or(0),
		Protein:  in.Protein.Or(0),
		Fat:      in.Fat.Or(0),
		Carbs:    in.Carbs.Or(0),
		Tags:     datatypes.JSON(tags),
	}
	if err := s.db.Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

// Search matches catalog foods by name substring or by tag terms
// (comma-separated), case-insensitively. Blank queries return no results and
// the limit is clamped to 1..50.
func (s *FoodService) Search(by, query string, limit int) ([]models.Food, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Food{}, nil
	}
	switch {
	case limit > searchMaxLimit:
		limit = searchMaxLimit
	case limit < 1:
		limit = searchDefaultLimit
	}

	tx := s.db.Model(&models.Food{})
	if by == "tags" {
		terms := make([]string, 0)
		for _, t := range strings.Split(query, ",") {
			if t = strings.TrimSpace(t); t != "" {
				terms = append(terms, t)
			}
		}
		if len(terms) == 0 {
			terms = []string{query}
		}
		for i, t := range terms {
			cond := "tags::text ILIKE ?"
			if i == 0 {
				tx = tx.Where(cond, "%"+t+"%")
			} else {
				tx = tx.Or(cond, "%"+t+"%")
			}
		}
	} else {
		tx = tx.Where("name ILIKE ?", "%"+query+"%")
	}

	foods := make([]models.Food, 0)
	err := tx.Limit(limit).Find(&foods).Error
	return foods, err
}
