package domain

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrPasswordTooShort = errors.New("password must be at least 12 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword    = errors.New("password cannot be empty")
	ErrNegativePB       = errors.New("personal best cannot be negative")
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents a registered user of the training log.
// Personal bests are tracked separately for gym lifts and sanctioned
// competition lifts; a nil value means the lift has never been recorded.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext password, used temporarily during registration/updates
	HashedPassword string    `json:"-"` // Never expose password hash in JSON
	DisplayName    string    `json:"display_name"`
	PBSquatGym     *float64  `json:"pb_squat_gym"`
	PBBenchGym     *float64  `json:"pb_bench_gym"`
	PBDeadliftGym  *float64  `json:"pb_deadlift_gym"`
	PBSquatComp    *float64  `json:"pb_squat_comp"`
	PBBenchComp    *float64  `json:"pb_bench_comp"`
	PBDeadliftComp *float64  `json:"pb_deadlift_comp"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given email and password.
// It generates a new UUID for the user ID and sets the creation/update timestamps.
// Returns an error if validation fails.
//
// NOTE: This function only sets up the user structure with the plaintext password.
// The caller is responsible for hashing the password before storing the user.
func NewUser(email, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Password:  password, // Plaintext password - must be hashed before storage
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !emailRegex.MatchString(u.Email) {
		return ErrInvalidEmail
	}

	// During registration/updates the plaintext password is validated;
	// users loaded from the store carry only the hash.
	if u.Password != "" {
		if len(u.Password) < 12 {
			return ErrPasswordTooShort
		}
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	for _, pb := range []*float64{
		u.PBSquatGym, u.PBBenchGym, u.PBDeadliftGym,
		u.PBSquatComp, u.PBBenchComp, u.PBDeadliftComp,
	} {
		if pb != nil && *pb < 0 {
			return ErrNegativePB
		}
	}

	return nil
}
