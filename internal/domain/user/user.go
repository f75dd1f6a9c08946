package user

import (
	"fmt"
	"regexp"
	"time"

	"gmao/internal/shared/authorization"
	"gmao/internal/shared/biztime"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,64}$`)

// User is an account that can authenticate against the API. The password is
// only ever held as a bcrypt hash; hashing and verification live in the
// infrastructure auth service.
type User struct {
	id           uint
	username     string
	displayName  string
	passwordHash string
	role         authorization.Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username, displayName, passwordHash string, role authorization.Role) (*User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, fmt.Errorf("username must be 3-64 characters of letters, digits, dot, dash or underscore")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}
	if displayName == "" {
		displayName = username
	}

	now := biztime.NowUTC()
	return &User{
		username:     username,
		displayName:  displayName,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	username, displayName, passwordHash string,
	role authorization.Role,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role")
	}

	return &User{
		id:           id,
		username:     username,
		displayName:  displayName,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.Role {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) ChangeRole(role authorization.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role")
	}
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangePasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = biztime.NowUTC()
	return nil
}
