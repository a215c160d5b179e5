package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type BcryptService struct {
	cost int
}

func NewBcryptService(cost int) *BcryptService {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptService{cost: cost}
}

func (s *BcryptService) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

func (s *BcryptService) Compare(hash, password string) error {
	if hash == "" || password == "" {
		return fmt.Errorf("passwords cannot be empty")
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
