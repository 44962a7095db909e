package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Shnickelbob/Fall-2025-MacroPal/models"
	"github.com/Shnickelbob/Fall-2025-MacroPal/utils"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewAuthService(db *gorm.DB, jwtSecret []byte) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

func (s *AuthService) Register(username, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Username: username, Password: hashed}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns a signed session token plus the
// resolved user id.
func (s *AuthService) Login(username, password string) (string, uint, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, ErrInvalidCredentials
		}
		return "", 0, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", 0, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(s.jwtSecret, user.ID)
	if err != nil {
		return "", 0, err
	}
	return token, user.ID, nil
}
