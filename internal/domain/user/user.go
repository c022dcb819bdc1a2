package user

import (
	"fmt"
	"strings"
	"time"
)

// Role classifies what a user can do in the helpdesk.
type Role string

const (
	RoleUsuario Role = "usuario"
	RoleAgente  Role = "agente"
	RoleAdmin   Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleUsuario, RoleAgente, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// User is the aggregate root for helpdesk accounts. The password hash is
// produced by the infrastructure layer; the domain never sees plaintext.
type User struct {
	id                uint
	username          string
	passwordHash      string
	email             string
	name              string
	lastname          string
	phoneNumber       string
	active            bool
	role              Role
	profileImage      string
	lastLogin         *time.Time
	confirmationToken *string
	createdAt         time.Time
}

// NewUser creates a user pending persistence. Role defaults to usuario and
// accounts start inactive until confirmed or activated by an admin.
func NewUser(username, passwordHash, email string) (*User, error) {
	if len(strings.TrimSpace(username)) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if len(strings.TrimSpace(email)) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		username:     username,
		passwordHash: passwordHash,
		email:        email,
		active:       false,
		role:         RoleUsuario,
		createdAt:    time.Now(),
	}, nil
}

// ReconstructUser rehydrates a user from persistence.
func ReconstructUser(
	id uint,
	username string,
	passwordHash string,
	email string,
	name string,
	lastname string,
	phoneNumber string,
	active bool,
	role Role,
	profileImage string,
	lastLogin *time.Time,
	confirmationToken *string,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:                id,
		username:          username,
		passwordHash:      passwordHash,
		email:             email,
		name:              name,
		lastname:          lastname,
		phoneNumber:       phoneNumber,
		active:            active,
		role:              role,
		profileImage:      profileImage,
		lastLogin:         lastLogin,
		confirmationToken: confirmationToken,
		createdAt:         createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Lastname() string {
	return u.lastname
}

func (u *User) PhoneNumber() string {
	return u.phoneNumber
}

func (u *User) Active() bool {
	return u.active
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) ProfileImage() string {
	return u.profileImage
}

func (u *User) LastLogin() *time.Time {
	return u.lastLogin
}

func (u *User) ConfirmationToken() *string {
	return u.confirmationToken
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// FullName joins name and lastname for display.
func (u *User) FullName() string {
	return strings.TrimSpace(u.name + " " + u.lastname)
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

func (u *User) ChangeUsername(username string) error {
	if len(strings.TrimSpace(username)) == 0 {
		return fmt.Errorf("username cannot be empty")
	}
	u.username = username
	return nil
}

func (u *User) ChangeEmail(email string) error {
	if len(strings.TrimSpace(email)) == 0 {
		return fmt.Errorf("email cannot be empty")
	}
	u.email = email
	return nil
}

func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	return nil
}

func (u *User) SetActive(active bool) {
	u.active = active
}

func (u *User) SetPasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	return nil
}

// MergeContact overwrites name, lastname and phone number only when the
// incoming value is non-empty; absent fields keep their stored value.
func (u *User) MergeContact(name, lastname, phoneNumber string) {
	if name != "" {
		u.name = name
	}
	if lastname != "" {
		u.lastname = lastname
	}
	if phoneNumber != "" {
		u.phoneNumber = phoneNumber
	}
}

func (u *User) SetProfileImage(url string) {
	u.profileImage = url
}

// SetConfirmationToken marks a client-created account as pending
// confirmation.
func (u *User) SetConfirmationToken(token string) error {
	if len(token) == 0 {
		return fmt.Errorf("confirmation token cannot be empty")
	}
	u.confirmationToken = &token
	return nil
}

// Confirm activates a pending account and discards its token.
func (u *User) Confirm() error {
	if u.confirmationToken == nil {
		return fmt.Errorf("user has no pending confirmation")
	}
	u.confirmationToken = nil
	u.active = true
	return nil
}

// RecordLogin stamps the last successful authentication time.
func (u *User) RecordLogin(at time.Time) {
	u.lastLogin = &at
}
