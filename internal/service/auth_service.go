package service

import (
	"errors"

	"funkopop-api/internal/apperror"
	"funkopop-api/internal/model"
	"funkopop-api/internal/repository"
	"funkopop-api/pkg/jwt"
	"funkopop-api/pkg/validator"

	"gorm.io/gorm"
)

var credentialRules = []validator.Field{
	{
		Name: "email",
		Checks: []validator.Check{
			{Tag: "required", Message: "Email cannot be empty"},
			{Tag: "email", Message: "Please provide a valid email address"},
		},
	},
	{
		Name: "password",
		Checks: []validator.Check{
			{Tag: "required", Message: "Password cannot be empty"},
			{Tag: "min=8", Message: "Password must be atleast 8 characters long"},
		},
	},
}

type AuthService interface {
	Signup(payload map[string]interface{}) (*model.User, error)
	Signin(payload map[string]interface{}) (*model.User, string, error)
	FederatedSignin(credential FederatedCredential) (*model.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Signup creates a local account. Role and active are server-assigned; any
// values the client supplies for them are ignored.
func (s *authService) Signup(payload map[string]interface{}) (*model.User, error) {
	if errs := validator.Validate(payload, credentialRules); len(errs) > 0 {
		return nil, apperror.Validation(errs)
	}

	email := trimmed(payload["email"])

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.UserAlreadyExists()
	}

	user := &model.User{
		Email:  email,
		Role:   model.RoleUser,
		Active: false,
	}
	if err := user.SetPassword(trimmed(payload["password"])); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Signin(payload map[string]interface{}) (*model.User, string, error) {
	if errs := validator.Validate(payload, credentialRules); len(errs) > 0 {
		return nil, "", apperror.Validation(errs)
	}

	credential := PasswordCredential{
		Email:    trimmed(payload["email"]),
		Password: trimmed(payload["password"]),
	}
	return s.resolveAndMint(credential)
}

// FederatedSignin admits an identity the external provider verified, creating
// the account on first login.
func (s *authService) FederatedSignin(credential FederatedCredential) (*model.User, string, error) {
	return s.resolveAndMint(credential)
}

func (s *authService) resolveAndMint(credential Credential) (*model.User, string, error) {
	user, err := credential.Resolve(s.userRepo)
	if err != nil {
		return nil, "", err
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, "", apperror.TokenGeneration()
	}
	return user, token, nil
}
