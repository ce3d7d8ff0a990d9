package model

import (
	"errors"
	"regexp"
	"time"
)

// User represents a registered account.
type User struct {
	ID             int64     `db:"id" json:"id"`
	Username       string    `db:"username" json:"username"`
	PasswordHashed string    `db:"password_hashed" json:"-"` // "-" hides from JSON output
	Name           *string   `db:"name" json:"name"`
	Bio            *string   `db:"bio" json:"bio"`
	Pfp            string    `db:"pfp" json:"pfp"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// RegisterRequest represents the data needed to register a new user
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents the data needed to log in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries a partial profile edit. A nil field is left
// untouched; a non-nil name or bio that trims to "" is stored as NULL.
type UpdateProfileRequest struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
	Pfp  *string `json:"pfp"`
}

// Profile field constraints
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
	MinPasswordLength = 8
	MaxPasswordLength = 64
	MaxNameLength     = 50
	MaxBioLength      = 300

	// DefaultPfp is assigned at registration.
	DefaultPfp = "/static/images/1.jpg"
)

// usernamePattern: lowercase letters, digits, hyphen and underscore only.
var usernamePattern = regexp.MustCompile(`^[a-z0-9-_]+$`)

// ValidUsername reports whether s satisfies the username length and
// character constraints.
func ValidUsername(s string) bool {
	if len(s) < MinUsernameLength || len(s) > MaxUsernameLength {
		return false
	}
	return usernamePattern.MatchString(s)
}

// builtinPfps is the fixed set of selectable profile pictures.
var builtinPfps = map[string]bool{
	"/static/images/1.jpg": true,
	"/static/images/2.jpg": true,
	"/static/images/3.jpg": true,
	"/static/images/4.jpg": true,
	"/static/images/5.jpg": true,
	"/static/images/6.jpg": true,
	"/static/images/7.jpg": true,
}

// ValidPfp reports whether ref is one of the built-in profile pictures.
func ValidPfp(ref string) bool {
	return builtinPfps[ref]
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameExists is returned when attempting to create a user with a taken username
	ErrUsernameExists = errors.New("username already exists")

	// ErrInvalidCredentials is returned when login credentials are incorrect
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidUsername is returned when a username violates the length or character rules
	ErrInvalidUsername = errors.New("username must be 3-20 lowercase letters, digits, hyphen or underscore")

	// ErrInvalidPassword is returned when a password violates the length rules
	ErrInvalidPassword = errors.New("password must be 8-64 characters")

	// ErrNotProfileOwner is returned when a user edits a profile that is not theirs
	ErrNotProfileOwner = errors.New("not the owner of this profile")

	// ErrNameTooLong is returned when a display name exceeds the limit
	ErrNameTooLong = errors.New("name too long")

	// ErrBioTooLong is returned when a bio exceeds the limit
	ErrBioTooLong = errors.New("bio too long")

	// ErrInvalidPfp is returned when a profile picture is not one of the built-in set
	ErrInvalidPfp = errors.New("invalid profile picture")
)
