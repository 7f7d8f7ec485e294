package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	GetByRole(ctx context.Context, role Role) ([]User, error)
	Create(ctx context.Context, user User) (User, error)
	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	// InTx runs fn against a store bound to a single transaction. The
	// transaction is committed when fn returns nil and rolled back otherwise.
	InTx(ctx context.Context, fn func(store UserStore) error) error
}

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleParent Role = "Parent"
	RoleChild  Role = "Child"
)

// Roles lists every role in display order.
var Roles = []Role{RoleAdmin, RoleParent, RoleChild}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleParent, RoleChild:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts s into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidFormat
	}
	return r, nil
}

// Gender of a user.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Valid reports whether g is one of the known genders.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// User represents a stored family account.
type User struct {
	ID             int64
	Username       string
	PasswordHash   string
	Role           Role
	Name           string
	Age            int
	Gender         Gender
	Interests      []string
	Hobbies        []string
	DateEntered    time.Time
	ProfilePicture string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Upload is an image submitted with a user form.
type Upload struct {
	Filename string
	Data     []byte
}

// UserForm carries raw, unvalidated field values of a user record as they
// arrive from a client.
type UserForm struct {
	Username        string
	Password        string
	ConfirmPassword string
	Role            string
	Name            string
	Age             string
	Gender          string
	Interests       string
	Hobbies         string
	DateEntered     string
	Picture         *Upload
}
