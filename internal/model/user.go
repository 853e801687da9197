package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Role values a user account can hold
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// User represents an account created by signup or by a first federated login
type User struct {
	BaseModel
	Email    string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password *string `gorm:"type:varchar(255)" json:"-"` // nil for federated accounts
	GoogleID *string `gorm:"type:varchar(255)" json:"-"`
	Role     string  `gorm:"type:varchar(20);default:'user'" json:"role"`
	Active   bool    `gorm:"default:false" json:"active"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hash := string(hashedPassword)
	u.Password = &hash
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash.
// Federated accounts have no hash and never match.
func (u *User) CheckPassword(password string) bool {
	if u.Password == nil || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*u.Password), []byte(password)) == nil
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse is used for API responses (without credentials)
type UserResponse struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	Active bool      `json:"active"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:     u.ID,
		Email:  u.Email,
		Role:   u.Role,
		Active: u.Active,
	}
}
