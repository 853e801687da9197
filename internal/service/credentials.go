package service

import (
	"errors"
	"strings"

	"funkopop-api/internal/apperror"
	"funkopop-api/internal/model"
	"funkopop-api/internal/repository"

	"gorm.io/gorm"
)

// Credential is one proof of identity a client can present. Each variant
// resolves itself to a user record or a typed failure.
type Credential interface {
	Resolve(users repository.UserRepository) (*model.User, error)
}

// PasswordCredential is a locally stored email and password pair
type PasswordCredential struct {
	Email    string
	Password string
}

// Resolve never reveals whether the email or the password was wrong
func (c PasswordCredential) Resolve(users repository.UserRepository) (*model.User, error) {
	user, err := users.FindByEmail(strings.TrimSpace(c.Email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.InvalidLogin()
	}
	if err != nil {
		return nil, err
	}
	if !user.CheckPassword(c.Password) {
		return nil, apperror.InvalidLogin()
	}
	return user, nil
}

// FederatedCredential is an identity the external provider already verified.
// The first successful login creates the account, with no local password.
type FederatedCredential struct {
	Subject string
	Email   string
}

func (c FederatedCredential) Resolve(users repository.UserRepository) (*model.User, error) {
	user, err := users.FindByGoogleID(c.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	subject := c.Subject
	user = &model.User{
		Email:    strings.TrimSpace(c.Email),
		GoogleID: &subject,
		Role:     model.RoleUser,
		Active:   false,
	}
	if err := users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
