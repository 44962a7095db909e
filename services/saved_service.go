package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shnickelbob/Fall-2025-MacroPal/models"
)

// SavedService manages a user's favorited catalog foods.
type SavedService struct {
	db *gorm.DB
}

func NewSavedService(db *gorm.DB) *SavedService {
	return &SavedService{db: db}
}

func (s *SavedService) List(userID uint) ([]models.Food, error) {
	var user models.User
	err := s.db.Preload("SavedFoods").First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.SavedFoods == nil {
		return []models.Food{}, nil
	}
	return user.SavedFoods, nil
}

// Add favorites a food for the user. Saving an already-saved food is a
// no-op, so repeated clicks stay idempotent.
func (s *SavedService) Add(userID, foodID uint) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	var food models.Food
	if err := s.db.First(&food, foodID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFoodNotFound
		}
		return err
	}

	var count int64
	err := s.db.Table("user_saved_foods").
		Where("user_id = ? AND food_id = ?", userID, foodID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return s.db.Model(&user).Association("SavedFoods").Append(&food)
}

func (s *SavedService) Remove(userID, foodID uint) error {
	user := models.User{Model: gorm.Model{ID: userID}}
	food := models.Food{Model: gorm.Model{ID: foodID}}
	return s.db.Model(&user).Association("SavedFoods").Delete(&food)
}
