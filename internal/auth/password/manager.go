package password

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type manager struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *manager {
	return &manager{
		logger: logger,
	}
}

func (m *manager) GenerateHashFromPassword(password []byte) ([]byte, error) {
	passHash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		m.logger.Error("unexpected error when hashing password", zap.Error(err))
		return []byte{}, err
	}

	return passHash, nil
}

// CompareHashAndPassword runs in constant time relative to the
// submitted password; a mismatch is an expected condition and is not
// logged as an error.
func (m *manager) CompareHashAndPassword(hashedPassword []byte, password []byte) error {
	return bcrypt.CompareHashAndPassword(hashedPassword, password)
}
