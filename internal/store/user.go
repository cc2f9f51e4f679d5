package store

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/recipebook-dev/recipebook/internal/models"
)

// UserStore handles registration and credential checks.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register creates a new account. The email check is an exact match on the
// stored value; the plaintext password is hashed and never persisted.
func (s *UserStore) Register(username, email, password string) (*models.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(passwordHash),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User

		err := tx.Where("email = ?", email).First(&existing).Error

		if err == nil {
			return conflictf("email already registered")
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(&user).Error
	})

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies email and password. Unknown email and wrong password
// return the same error so callers cannot probe which emails are registered.
func (s *UserStore) Authenticate(email, password string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("incorrect email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, notFoundf("incorrect email or password")
	}

	return &user, nil
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User

	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundf("user not found")
		}
		return nil, err
	}

	return &user, nil
}
