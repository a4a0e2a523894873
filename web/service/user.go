package service

import (
	"strings"

	"github.com/aurify/priceboard/database"
	"github.com/aurify/priceboard/database/model"
	"github.com/aurify/priceboard/util/common"
	"github.com/aurify/priceboard/util/crypto"
)

// UserService provides account lookups.
type UserService struct{}

// GetUser fetches an account by id. Returns a gorm not-found error when the
// account no longer exists.
func (s *UserService) GetUser(id string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ResetPassword rehashes and stores a new password for the account with the
// given email. Used by the CLI only.
func (s *UserService) ResetPassword(email string, password string) error {
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	db := database.GetDB()
	result := db.Model(model.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Update("password_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return common.NewError("no account found for email", email)
	}
	return nil
}
