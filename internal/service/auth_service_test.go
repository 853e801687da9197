package service

import (
	"errors"
	"testing"

	"funkopop-api/internal/apperror"
	"funkopop-api/internal/model"
	"funkopop-api/pkg/jwt"

	"github.com/stretchr/testify/require"
)

func signupPayload() map[string]interface{} {
	return map[string]interface{}{
		"email":    "user@mail.com",
		"password": "P4ssword!",
	}
}

func TestSignupCreatesUser(t *testing.T) {
	svc, db := newAuthService(t)

	user, err := svc.Signup(signupPayload())
	require.NoError(t, err)
	require.Equal(t, "user@mail.com", user.Email)
	require.Equal(t, model.RoleUser, user.Role)
	require.False(t, user.Active)
	require.NotNil(t, user.Password)
	require.NotEqual(t, "P4ssword!", *user.Password) // stored hashed

	var stored model.User
	require.NoError(t, db.First(&stored, "email = ?", "user@mail.com").Error)
	require.True(t, stored.CheckPassword("P4ssword!"))
}

func TestSignupIgnoresClientSuppliedRoleAndActive(t *testing.T) {
	svc, _ := newAuthService(t)

	payload := signupPayload()
	payload["role"] = "admin"
	payload["active"] = true

	user, err := svc.Signup(payload)
	require.NoError(t, err)
	require.Equal(t, model.RoleUser, user.Role)
	require.False(t, user.Active)
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup(signupPayload())
	require.NoError(t, err)

	_, err = svc.Signup(signupPayload())
	appErr, ok := err.(*apperror.Error)
	require.True(t, ok)
	require.Equal(t, 400, appErr.Status)
	require.Equal(t, "A user already exists with that email", appErr.Message)
}

func TestSignupValidationMessages(t *testing.T) {
	cases := []struct {
		field   string
		value   interface{}
		message string
	}{
		{"email", nil, "Email cannot be empty"},
		{"email", "", "Email cannot be empty"},
		{"email", "abx@ayc@com", "Please provide a valid email address"},
		{"email", "abx.com", "Please provide a valid email address"},
		{"password", nil, "Password cannot be empty"},
		{"password", "", "Password cannot be empty"},
		{"password", "test", "Password must be atleast 8 characters long"},
	}

	svc, _ := newAuthService(t)
	for _, tc := range cases {
		payload := signupPayload()
		payload[tc.field] = tc.value

		_, err := svc.Signup(payload)
		appErr, ok := err.(*apperror.Error)
		require.True(t, ok, "%s=%v", tc.field, tc.value)
		require.Equal(t, "Validation Failure", appErr.Message)
		require.Equal(t, tc.message, appErr.Fields[tc.field])
	}
}

func TestSigninIssuesTokenBoundToUser(t *testing.T) {
	svc, _ := newAuthService(t)

	created, err := svc.Signup(signupPayload())
	require.NoError(t, err)

	user, token, err := svc.Signin(signupPayload())
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)

	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, created.ID, claims.UserID)
}

// Unknown email and wrong password must be indistinguishable in the response
func TestSigninNeverRevealsWhichCredentialFailed(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Signup(signupPayload())
	require.NoError(t, err)

	_, _, unknownErr := svc.Signin(map[string]interface{}{
		"email":    "nobody@mail.com",
		"password": "P4ssword!",
	})
	_, _, wrongErr := svc.Signin(map[string]interface{}{
		"email":    "user@mail.com",
		"password": "WrongPass!",
	})

	for _, err := range []error{unknownErr, wrongErr} {
		appErr, ok := err.(*apperror.Error)
		require.True(t, ok)
		require.Equal(t, 400, appErr.Status)
		require.Equal(t, "Invalid email or password", appErr.Message)
	}
}

// A store failure during signin must surface as such, not masquerade as
// invalid credentials
func TestSigninPropagatesStoreFailure(t *testing.T) {
	svc, db := newAuthService(t)

	_, err := svc.Signup(signupPayload())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, _, err = svc.Signin(signupPayload())
	require.Error(t, err)
	var appErr *apperror.Error
	require.False(t, errors.As(err, &appErr), "store failure reported as %v", err)
}

func TestFederatedSigninCreatesAccountOnFirstLogin(t *testing.T) {
	svc, db := newAuthService(t)

	credential := FederatedCredential{Subject: "google-subject-1", Email: "remote@mail.com"}

	user, token, err := svc.FederatedSignin(credential)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "remote@mail.com", user.Email)
	require.Equal(t, model.RoleUser, user.Role)
	require.False(t, user.Active)
	require.Nil(t, user.Password)

	// second login resolves the same account
	again, _, err := svc.FederatedSignin(credential)
	require.NoError(t, err)
	require.Equal(t, user.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestFederatedAccountCannotSigninWithPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.FederatedSignin(FederatedCredential{Subject: "google-subject-1", Email: "remote@mail.com"})
	require.NoError(t, err)

	_, _, err = svc.Signin(map[string]interface{}{
		"email":    "remote@mail.com",
		"password": "AnyPassword1",
	})
	appErr, ok := err.(*apperror.Error)
	require.True(t, ok)
	require.Equal(t, "Invalid email or password", appErr.Message)
}
