package models

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/inkwell-app/inkwell/internal/pkg/security"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"type:varchar(100);not null" json:"username" validate:"required,min=3,max=100"`
	Email        string    `gorm:"uniqueIndex;type:varchar(100);not null" json:"email" validate:"required,email,max=100"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-" validate:"required"`
	Bio          string    `gorm:"type:text" json:"bio" validate:"max=1000"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	IsStaff      bool      `gorm:"default:false" json:"is_staff"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// NewUser builds a regular user with the plaintext password hashed. Only
// is_active is set; staff and admin stay false.
func NewUser(username, email, password, bio string) (*User, error) {
	return newUser(username, email, password, bio, false)
}

// NewAdmin builds an administrator: active, staff and admin all set.
func NewAdmin(username, email, password, bio string) (*User, error) {
	return newUser(username, email, password, bio, true)
}

func newUser(username, email, password, bio string, admin bool) (*User, error) {
	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return NewUserWithHash(username, email, hash, bio, admin)
}

// NewUserWithHash builds a user from an already-computed password hash, for
// callers that hash through a security.Hasher pool instead of inline.
func NewUserWithHash(username, email, hash, bio string, admin bool) (*User, error) {
	u := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Bio:          bio,
		IsActive:     true,
		IsStaff:      admin,
		IsAdmin:      admin,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

// CheckPassword verifies if the provided password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return security.CheckPasswordHash(password, u.PasswordHash)
}

// SetPassword hashes and sets a new password. This is the only path that
// hashes: save/update operations persist PasswordHash verbatim, so a repeated
// save can never hash an already-hashed value.
func (u *User) SetPassword(password string) error {
	hash, err := security.HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// Serialize returns the public view of a user. The password hash and the
// role flags are deliberately absent.
func (u *User) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"bio":      u.Bio,
	}
}
