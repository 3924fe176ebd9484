package models

import "time"

// User represents an account of the catalog. Every tag, ingredient and recipe
// belongs to exactly one user.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Email is the unique login of the user. The domain part is stored
	// lower-cased, the local part keeps its case.
	Email string `json:"email" validate:"required,email,max=255"`

	// Name is the display name of the user.
	Name string `json:"name" validate:"required,max=255"`

	// Password holds the plaintext password on the way in and the bcrypt
	// hash once the user is persisted. It is never serialized. bcrypt only
	// accepts up to 72 bytes.
	Password string `json:"-" validate:"required,min=4,max=72"`

	IsActive    bool `json:"-"`
	IsStaff     bool `json:"-"`
	IsSuperuser bool `json:"-"`

	// LastLogin is set every time a token is issued for the user.
	LastLogin *time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial profile update.
// Only non-nil fields are applied.
type UserUpdate struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=4,max=72"`
}

// IsEmpty reports whether the update carries no field at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Name == nil && u.Password == nil
}

// Credentials is the email and password pair exchanged for a token.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}
